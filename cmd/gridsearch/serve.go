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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves the search engine as a JSON API, with Prometheus metrics on /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr, _ = cmd.Flags().GetString("addr")
			}

			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address (GRIDSEARCH_ADDR)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cat, err := a.catalog()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	col, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: a.cfg.Addr,
		Handler: server.NewHandler(cat,
			server.WithMetrics(col, reg),
			server.WithLogger(a.log),
			server.WithMaxEvents(a.cfg.MaxEvents),
			server.WithMaxCells(a.cfg.MaxCells),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		a.log.Info("server starting", "addr", srv.Addr, "scenarios", cat.Len())
		serverErrors <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)

	case <-ctx.Done():
		a.log.Info("shutdown started")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			a.log.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		a.log.Info("server stopped")

		return nil
	}
}
