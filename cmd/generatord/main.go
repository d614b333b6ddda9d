package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/config"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/db"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/httpapi"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "config file path")
	envFile := flag.String("env", ".env", "dotenv file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, *envFile)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	deps := httpapi.Deps{Cache: codec.NewCache(cfg.Cache.MaxEntries)}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	switch {
	case errors.Is(err, db.ErrNoDSN):
		slog.Warn("running without document library")
	case err != nil:
		slog.Error("db connect", "error", err)
		os.Exit(1)
	default:
		defer pool.Close()

		lib := store.New(pool)
		if err := lib.EnsureSchema(ctx); err != nil {
			slog.Error("prepare document library", "error", err)
			os.Exit(1)
		}
		deps.DB = pool
		deps.Library = lib
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      httpapi.NewRouter(cfg, deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("generator service listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
}
