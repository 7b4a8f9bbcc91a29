package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ghnotify/pkg/cli/config"
	"github.com/m-mizutani/ghnotify/pkg/controller/server"
	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/infra"
	"github.com/m-mizutani/ghnotify/pkg/infra/telegram"
	"github.com/m-mizutani/ghnotify/pkg/usecase"
	"github.com/m-mizutani/ghnotify/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		queueSize int64

		cfgFile config.File
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "queue-size",
			Usage:       "Delivery queue capacity",
			Value:       1024,
			Sources:     cli.EnvVars("GHNOTIFY_QUEUE_SIZE"),
			Destination: &queueSize,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			cfgFile.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Config", &cfgFile),
				slog.Any("QueueSize", queueSize),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			cfg, err := cfgFile.Load()
			if err != nil {
				return err
			}
			route := model.NewRouteTable(cfg)

			var infraOptions []infra.Option
			if cfg.Telegram.BotToken != "" {
				tgOptions := []telegram.Option{}
				if cfg.Telegram.APIServer != "" {
					tgOptions = append(tgOptions, telegram.WithAPIServer(cfg.Telegram.APIServer))
				}
				notifier, err := telegram.New(cfg.Telegram.BotToken, tgOptions...)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithNotifier(notifier))
			} else {
				logging.Default().Warn("telegram bot token is empty, all notifications will be discarded")
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, usecase.WithQueueSize(int(queueSize)))
			uc.Start(context.Background())

			s := server.New(uc, route, server.WithAuthToken(cfg.Server.Token))

			addr := cfg.Server.Addr()
			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}

				if err := uc.Dispatch(shutdownCtx, model.TerminateCommand{}); err != nil {
					return goerr.Wrap(err, "failed to terminate delivery worker")
				}

				// A second signal overrides the wait in case the
				// worker is stuck on an outbound call.
				select {
				case <-uc.Done():
				case sig := <-quit:
					logging.Default().Warn("force exit before delivery worker drained", "signal", sig)
				}
			}

			return nil
		},
	}
}
