package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alscos/probe-demo/internal/clock"
	"github.com/alscos/probe-demo/internal/config"
	"github.com/alscos/probe-demo/internal/httpserver"
	"github.com/alscos/probe-demo/internal/logging"
	"github.com/alscos/probe-demo/internal/metrics"
	"github.com/alscos/probe-demo/internal/sysinfo"
)

func main() {
	// The clock starts before anything else so uptime covers the whole process.
	clk := clock.New()

	if err := newRootCmd(clk).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(clk *clock.ServiceClock) *cobra.Command {
	var port int

	root := &cobra.Command{
		Use:          "probe-demo",
		Short:        "Demo HTTP service for exercising container probes, restarts and metrics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.LoadFromEnv()
			if cmd.Flags().Changed("port") {
				if !config.ValidPort(port) {
					return fmt.Errorf("invalid --port %d", port)
				}
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg, clk)
		},
	}
	root.Flags().IntVar(&port, "port", config.DefaultPort, "listen port (overrides PORT)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.LoadFromEnv().AppVersion)
		},
	})

	return root
}

func serve(ctx context.Context, cfg config.Config, clk *clock.ServiceClock) error {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = log.Sync() }()

	sys := sysinfo.NewCollector(log.Named("sysinfo"))

	r, err := httpserver.NewRouter(httpserver.RouterDeps{
		Config:  cfg,
		Clock:   clk,
		Log:     log.Named("http"),
		Sys:     sys,
		Metrics: metrics.Handler(metrics.NewRegistry(clk, sys)),
		Crasher: httpserver.NewCrasher(log.Named("crash")),
	})
	if err != nil {
		return fmt.Errorf("router init: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("probe-demo listening",
			zap.String("addr", srv.Addr),
			zap.String("version", cfg.AppVersion),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("http listen failed", zap.Error(err))
			return fmt.Errorf("http listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown error", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}
