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

	"moviecatalog/httpserver"
	"moviecatalog/memory"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		slog.Error("Cannot init logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	storeOpts := []memory.Option{
		memory.WithLogger(log.Named("memory")),
		memory.WithTopCount(cfg.Catalog.TopRatedLimit),
	}
	if cfg.Catalog.Seed != 0 {
		storeOpts = append(storeOpts, memory.WithSeed(cfg.Catalog.Seed))
	}
	if !cfg.Catalog.SeedRatings {
		storeOpts = append(storeOpts, memory.WithRatings())
	}
	store, err := memory.New(storeOpts...)
	if err != nil {
		slog.Error("Cannot build catalog store", "error", err)
		os.Exit(1)
	}

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log.Named("http")),
		httpserver.WithMovieService(movie.NewUsecase(store, movie.InfoMapper{})),
	)
	if err != nil {
		slog.Error("Cannot build http server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("server started!", "addr", server.Addr)
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped with error", "error", err)
		sentry.WithTags(map[string]string{"component": "httpserver"}).Fatal(err)
		os.Exit(1)
	}
}
