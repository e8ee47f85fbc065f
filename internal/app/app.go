// Package app wires the store, services, notification hub and HTTP server
// into one runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MJE43/lotus-sim-go/internal/api"
	"github.com/MJE43/lotus-sim-go/internal/config"
	"github.com/MJE43/lotus-sim-go/internal/crafting"
	"github.com/MJE43/lotus-sim-go/internal/gamedata"
	"github.com/MJE43/lotus-sim-go/internal/inventory"
	"github.com/MJE43/lotus-sim-go/internal/notify"
	"github.com/MJE43/lotus-sim-go/internal/quest"
	"github.com/MJE43/lotus-sim-go/internal/store"
)

type App struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store
	hub   *notify.Hub
	api   *api.Server
}

// New opens the database and builds every service.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg.DBPath, log)
	if err != nil {
		return nil, err
	}

	items := inventory.NewService(gamedata.Default(), log,
		inventory.WithInfiniteCredits(cfg.InfiniteCredits))
	hub := notify.NewHub(log, cfg.NotifyWriteTimeout)

	server := api.NewServer(api.Config{
		Store:          st,
		Quests:         quest.NewService(items, st, log),
		Crafting:       crafting.NewService(items, log),
		Notifier:       hub,
		Websocket:      hub,
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})

	return &App{cfg: cfg, log: log, store: st, hub: hub, api: server}, nil
}

func (a *App) Handler() http.Handler {
	return a.api.Routes()
}

// Listen binds the configured address.
func (a *App) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", a.cfg.HTTPAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", a.cfg.HTTPAddr, err)
	}
	return ln, nil
}

// Serve handles requests on ln until ctx is cancelled, then shuts down
// within the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")
		a.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := a.Listen()
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

func (a *App) Close() error {
	return a.store.Close()
}
