package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"tripplanner/config"
	"tripplanner/handlers"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Start the itinerary API with JSON, PDF and map downloads plus /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides server.port)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(cfg, cfg.Planner.Seed)
	if err != nil {
		return err
	}
	defer a.Close()

	h := handlers.New(a.planner, a.store, cfg.Planner.Limits(),
		handlers.Defaults{Budget: cfg.Planner.DefaultBudget, Days: cfg.Planner.DefaultDays}, a.log)

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           handlers.NewRouter(h, cfg.Server.FrontendURLs, a.log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("🚀 trip planner API starting", map[string]interface{}{"address": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
