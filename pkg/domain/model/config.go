package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Config is the startup configuration loaded from the YAML file. It is
// built once before the server starts and never mutated afterward.
type Config struct {
	Server       ServerConfig   `yaml:"server"`
	Telegram     TelegramConfig `yaml:"telegram"`
	Repositories []RepoPolicy   `yaml:"repository"`
}

type ServerConfig struct {
	Bind   string              `yaml:"bind"`
	Port   int                 `yaml:"port"`
	Secret types.WebhookSecret `yaml:"secret"`
	Token  types.AuthToken     `yaml:"token"`
}

// Addr returns the listen address in host:port form.
func (x *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", x.Bind, x.Port)
}

type TelegramConfig struct {
	BotToken  types.BotToken `yaml:"bot_token"`
	APIServer string         `yaml:"api_server"`
	SendTo    []types.ChatID `yaml:"send_to"`
}

// RepoPolicy is the per-repository delivery policy, keyed by the
// repository full name (owner/name).
type RepoPolicy struct {
	FullName     types.RepoFullName  `yaml:"full_name"`
	SendTo       []types.ChatID      `yaml:"send_to"`
	BranchIgnore []string            `yaml:"branch_ignore"`
	Secret       types.WebhookSecret `yaml:"secret"`
}

func (x *Config) Validate() error {
	if x.Server.Bind == "" {
		return goerr.Wrap(types.ErrInvalidConfig, "server.bind is required")
	}
	if x.Server.Port <= 0 || x.Server.Port > 65535 {
		return goerr.Wrap(types.ErrInvalidConfig, "server.port is out of range", goerr.V("port", x.Server.Port))
	}

	seen := map[types.RepoFullName]struct{}{}
	for _, repo := range x.Repositories {
		if !strings.Contains(string(repo.FullName), "/") {
			return goerr.Wrap(types.ErrInvalidConfig, "repository.full_name must be owner/name", goerr.V("full_name", repo.FullName))
		}
		if _, ok := seen[repo.FullName]; ok {
			return goerr.Wrap(types.ErrInvalidConfig, "repository.full_name is duplicated", goerr.V("full_name", repo.FullName))
		}
		seen[repo.FullName] = struct{}{}
	}

	return nil
}
