package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// File loads the YAML configuration holding the listen address,
// credentials and the per-repository routing table.
type File struct {
	path string
}

// NewFile builds a loader for a fixed path, bypassing flag parsing.
func NewFile(path string) *File {
	return &File{path: path}
}

func (x *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to config file",
			Aliases:     []string{"c"},
			Category:    "Config",
			Value:       "config.yml",
			Sources:     cli.EnvVars("GHNOTIFY_CONFIG"),
			Destination: &x.path,
		},
	}
}

func (x *File) Load() (*model.Config, error) {
	fd, err := os.Open(filepath.Clean(x.path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", x.path))
	}
	defer safe.Close(fd)

	var cfg model.Config
	if err := yaml.NewDecoder(fd).Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", x.path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (x *File) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}
