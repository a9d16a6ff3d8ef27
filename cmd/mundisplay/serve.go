package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/mun-display/internal/config"
	"github.com/aaronzipp/mun-display/internal/handlers"
	"github.com/aaronzipp/mun-display/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

func serveRun(cmd *cobra.Command, _ []string) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		slog.Error("no config found in context")
		os.Exit(1)
	}
	logger := newLogger(cfg)

	if err := serve(cmd.Context(), cfg, logger); err != nil {
		logger.Error(err.Error(), "component", programName)
		os.Exit(1)
	}
}

func serve(parent context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	committees, err := loadCommittees(cfg)
	if err != nil {
		return err
	}

	m := metrics.Nop()
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	h, err := handlers.New(ctx, cfg, committees, m, logger)
	if err != nil {
		return err
	}
	defer h.Close()

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           h.Routes(metricsHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"component", programName,
			"addr", server.Addr,
			"public_url", cfg.PublicURL,
			"committees", len(committees.Codes()),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "component", programName)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// SSE streams end with baseCtx; Shutdown waits for them to return
	return server.Shutdown(shutdownCtx)
}

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web display server",
		Run:   serveRun,
	}
	return cmd
}
