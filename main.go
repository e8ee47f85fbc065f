package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/MJE43/lotus-sim-go/internal/app"
	"github.com/MJE43/lotus-sim-go/internal/config"
	"github.com/MJE43/lotus-sim-go/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info("starting",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db", cfg.DBPath),
		zap.Bool("infiniteCredits", cfg.InfiniteCredits))
	return a.Run(ctx)
}
