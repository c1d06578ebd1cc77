package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"landingpro.dev/web/internal/config"
	mw "landingpro.dev/web/internal/middleware"
	"landingpro.dev/web/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// flags override the environment
	flag.StringVar(&cfg.Addr, "addr", cfg.ListenAddr(), "HTTP listen address")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory (empty: embedded)")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory (empty: embedded)")
	flag.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "site catalog directory (empty: embedded)")
	flag.BoolVar(&cfg.Dev, "dev", cfg.Dev, "reparse templates on every request")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if mw.ConfigureSession(cfg.Session.SigningKey, cfg.IsProd()) {
		logger.Warn("session: using ephemeral signing key (dev). Set LANDING_WEB_SESSION_SIGNING_KEY for production.")
	}

	app, err := newServer(cfg, logger)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           app.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", srv.Addr), zap.Bool("dev", cfg.Dev))
	go func() {
		serverLogger.Info("web listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("listen", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
