package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapthttp "wellness/internal/adapter/http"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.Config.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go a.Sessions.RunSweeper(ctx, sweepInterval(a.Config.SessionTTL))

			srv := &http.Server{
				Addr:              addr,
				Handler:           adapthttp.New(a.Sessions, a.Coach, a.Translator, a.Config.WebDir).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				slog.Info("listening", "addr", addr, "chatConfigured", a.Coach.Configured())
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from ADDR)")
	return cmd
}

// sweepInterval runs the sweeper a few times per TTL, at most once a minute.
func sweepInterval(ttl time.Duration) time.Duration {
	if iv := ttl / 4; iv > time.Minute {
		return iv
	}
	return time.Minute
}
