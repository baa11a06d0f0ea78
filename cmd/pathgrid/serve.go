package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/internal/cache"
	"github.com/katalvlaran/pathgrid/internal/config"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP search service",
		Long: `Serve exposes POST /v1/search, GET /healthz and GET /metrics.
Settings come from PATHGRID_* environment variables or a .env file;
--addr overrides PATHGRID_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if !cmd.Flags().Changed("log-level") {
				level, err := logging.ParseLevel(cfg.LogLevel)
				if err != nil {
					return err
				}
				a.logger = logging.New(level)
			}
			return serve(cmd.Context(), a, cfg)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", config.DefaultAddr, "Listen address")
	return cmd
}

func serve(ctx context.Context, a *app, cfg config.Config) error {
	log := a.logger

	var reportCache cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cache.WithTTL(cfg.CacheTTL))
		defer rc.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rc.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		reportCache = rc
		log.Info("report cache enabled", "redis", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	srvc := server.New(reg,
		server.WithCache(reportCache),
		server.WithLogger(log),
		server.WithMaxCells(cfg.MaxCells),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srvc.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "max_cells", cfg.MaxCells)
		serverErrors <- srv.ListenAndServe()
	}()

	// Blocking until the listener fails or the context is cancelled by a signal.
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)

	case <-ctx.Done():
		log.Info("shutting down")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("server: close: %w", err)
			}
		}
		log.Info("server stopped")
		return nil
	}
}
