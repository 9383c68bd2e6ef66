package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcmexdev/cafe-console/internal/cafe"
	"github.com/jcmexdev/cafe-console/internal/config"
	"github.com/jcmexdev/cafe-console/internal/inventory"
	"github.com/jcmexdev/cafe-console/internal/pkg/cache"
	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
	"github.com/jcmexdev/cafe-console/internal/report/httpx"
	"github.com/jcmexdev/cafe-console/internal/shell"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cafe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logOut := telemetry.LogWriter(cfg.Log.File)
	defer logOut.Close()
	telemetry.InitLogger(logOut, cfg.Log.Level, "cafe-console")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg.MenuFile)
	if err != nil {
		return fmt.Errorf("load menu %q: %w", cfg.MenuFile, err)
	}

	var opts []cafe.Option
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr, "cafe")
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		opts = append(opts, cafe.WithTicketCache(redisCache, cfg.Redis.TicketTTL))
	}

	cf := cafe.New(catalog, opts...)

	if cfg.HTTPAddr != "" {
		srv, err := httpx.Start(cfg.HTTPAddr, cf)
		if err != nil {
			return fmt.Errorf("start report API: %w", err)
		}
		slog.Info("report API running", "addr", srv.Addr())
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("report API shutdown error", "error", err)
			}
		}()
	}

	done := make(chan error, 1)
	go func() {
		done <- shell.New(cf, os.Stdin, os.Stdout, cfg.Name).Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func loadCatalog(path string) (*inventory.Catalog, error) {
	if path == "" {
		return inventory.DefaultCatalog(), nil
	}
	seed, err := inventory.LoadSeed(path)
	if err != nil {
		return nil, err
	}
	return inventory.NewCatalog(seed...)
}
