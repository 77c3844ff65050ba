package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgforge/pkg/controller/server"
	"github.com/m-mizutani/orgforge/pkg/infra"
	"github.com/m-mizutani/orgforge/pkg/infra/pusher"
	"github.com/m-mizutani/orgforge/pkg/infra/queue"
	"github.com/m-mizutani/orgforge/pkg/usecase"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 30 * time.Second

func serveCommand() *cli.Command {
	var (
		addr string
		cfg  infraConfig
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("ORGFORGE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			cfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Config", &cfg),
			)

			repo, closeRepo, err := cfg.newRepository(ctx, false)
			if err != nil {
				return err
			}
			defer closeRepo()

			hub := pusher.New()
			clients, err := cfg.newClients(ctx, repo, infra.WithPusher(hub))
			if err != nil {
				return err
			}

			q, err := queue.New(repo, cfg.worker.QueueOptions()...)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)
			s := server.New(uc,
				server.WithQueue(q),
				server.WithJobRepository(repo),
				server.WithSubscriber(hub),
			)

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

				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
				waitJobs(ctx, q)
			}

			return nil
		},
	}
}

// waitJobs waits for running jobs until ctx is done
func waitJobs(ctx context.Context, q *queue.Queue) {
	done := make(chan struct{})
	go func() {
		q.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logging.Default().Warn("shutdown timed out while jobs are running")
	}
}
