package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/server/internal/api"
	"github.com/cutgrade/cutgrade/server/internal/auth"
	"github.com/cutgrade/cutgrade/server/internal/config"
	"github.com/cutgrade/cutgrade/server/internal/metrics"
	"github.com/cutgrade/cutgrade/server/internal/store"
	"github.com/cutgrade/cutgrade/server/internal/ws"
)

// shutdownTimeout bounds how long in-flight requests get after a signal.
const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file; empty runs on defaults")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("cutgrade-server starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"auth_mode", cfg.Server.Auth.Mode,
		"store_ttl", cfg.Server.Store.TTL,
		"stream_interval", cfg.Server.Stream.Interval,
	)

	// The catalog is read once here and shared read-only by every handler.
	cat, err := catalog.Load(cfg.Server.Catalog.File)
	if err != nil {
		slog.Error("failed to load catalog", "file", cfg.Server.Catalog.File, "err", err)
		os.Exit(1)
	}

	if cfg.Server.Auth.Mode == "apikey" && cfg.Server.Auth.Key() == "" {
		slog.Warn("auth mode is apikey but the key variable is empty; requests are not authenticated",
			"key_env", cfg.Server.Auth.KeyEnv)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, cat); err != nil {
		slog.Error("cutgrade-server stopped", "err", err)
		os.Exit(1)
	}
	slog.Info("cutgrade-server shut down")
}

// components are the long-lived parts of the server.
type components struct {
	store   *store.Store
	hub     *ws.Hub
	metrics *metrics.Registry
	handler http.Handler
}

// build wires the store, hub, metrics and HTTP routes together.
func build(cfg *config.Config, cat *catalog.Catalog) *components {
	st := store.New(cfg.Server.Store.TTL)
	reg := metrics.New()
	hub := ws.New(st, cat, reg, cfg.Server.Stream.Interval)

	reg.Gauge("stored_cuts", "Live graded cuts held in memory.", func() float64 {
		return float64(len(st.List()))
	})
	reg.Gauge("stream_clients", "Connected WebSocket clients.", func() float64 {
		return float64(hub.Count())
	})

	authn := auth.APIKey(cfg.Server.Auth.Mode, cfg.Server.Auth.EffectiveHeader(), cfg.Server.Auth.Key())

	mux := http.NewServeMux()
	mux.Handle("/api/", authn(api.New(st, cat, reg)))
	mux.Handle("/ws/stream", authn(hub))
	mux.Handle("/metrics", reg)

	return &components{store: st, hub: hub, metrics: reg, handler: mux}
}

// run serves until ctx is cancelled or a component fails.
func run(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) error {
	c := build(cfg, cat)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           c.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Cut store with background TTL eviction.
	g.Go(func() error {
		c.store.Run(gctx)
		return nil
	})

	// WebSocket hub: broadcasts the cut snapshot to clients every interval.
	g.Go(func() error {
		c.hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort, "catalog", cat.Source())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("cutgrade-server shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})

	return g.Wait()
}
