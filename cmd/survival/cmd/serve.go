package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rustyeddy/survival/api"
	"github.com/rustyeddy/survival/metrics"
	"github.com/rustyeddy/survival/sim"
	"github.com/rustyeddy/survival/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	Long: `Start an HTTP server backed by a pool of simulation workers.

Routes:
  POST /api/v1/simulate  run one simulation, body {"id": "...", "inputs": {...}}
  GET  /healthz          liveness
  GET  /metrics          Prometheus metrics

Example:
  survival serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

const shutdownTimeout = 5 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides server.addr")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	timeout, err := cfg.Server.ParseTimeout()
	if err != nil {
		return fmt.Errorf("server timeout: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New("", reg)

	engine := sim.NewEngine(sim.Options{
		ResamplePoints: cfg.Engine.ResamplePoints,
		Workers:        cfg.Engine.Workers,
		Logger:         logger,
	})
	pool := worker.StartPool(cmd.Context(), cfg.Server.Workers, engine, worker.Options{Logger: logger, Metrics: m})
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Error("worker pool", zap.Error(err))
		}
	}()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := api.NewServer(pool, api.Options{
		Defaults: cfg.Defaults,
		Timeout:  timeout,
		Logger:   logger,
		Gatherer: reg,
	})
	httpSrv := &http.Server{Addr: addr, Handler: srv.Router()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server starting", zap.String("addr", addr), zap.Int("workers", cfg.Server.Workers))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
