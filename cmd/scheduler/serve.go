package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/meeting-planner/internal/config"
	"github.com/example/meeting-planner/internal/instrumentation"
	"github.com/example/meeting-planner/internal/logging"
	"github.com/example/meeting-planner/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP JSON API. Configuration is read from SCHEDULER_* environment
variables and an optional .env file. When metrics are enabled they are served
on a separate listener at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, logger, version)
		},
	}
}

// runServe serves the API, and metrics when enabled, until ctx is cancelled
// or a listener fails.
func runServe(ctx context.Context, cfg config.Config, logger *slog.Logger, version string) error {
	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		Enabled:        cfg.MetricsEnabled,
		ServiceName:    "meeting-planner",
		ServiceVersion: version,
		Exporter:       cfg.MetricsExporter,
	})
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics provider", "error", err)
		}
	}()

	metrics := provider.Metrics()
	a, err := newApp(cfg, logger, metrics, scheduler.DateOf(time.Now()))
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		"locations", len(a.catalog.AllLocations()),
		"rooms", a.catalog.RoomCount(),
		"persons", a.registry.Len(),
		"sample_bookings", a.seeded,
		"working_hours", cfg.WorkingHours.String(),
	)

	servers := []*http.Server{newServer(cfg.HTTPAddr(), a.handler(logger, metrics))}
	if handler := provider.Handler(); handler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		servers = append(servers, newServer(cfg.MetricsAddr, mux))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		logger.Info("servers stopped")
		return errors.Join(errs...)
	})

	return g.Wait()
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
