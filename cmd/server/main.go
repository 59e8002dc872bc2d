package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Simplici0/adlots/internal/config"
	"github.com/Simplici0/adlots/internal/db"
	"github.com/Simplici0/adlots/internal/logger"
	"github.com/Simplici0/adlots/internal/metrics"
	"github.com/Simplici0/adlots/internal/migrations"
	"github.com/Simplici0/adlots/internal/seed"
	"github.com/Simplici0/adlots/internal/store"
)

func main() {
	configPath := flag.String("config", os.Getenv("ADLOTS_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("prod").Error("failed to load config", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.App.DBPath)
	if err != nil {
		log.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer database.Close()

	if cfg.App.MigrateOnStart {
		if err := migrations.Up(database); err != nil {
			log.Error("failed to run database migrations", "err", err)
			os.Exit(1)
		}
	}

	if cfg.App.Seed {
		stats, err := seed.Run(ctx, database)
		if err != nil {
			log.Error("failed to seed database", "err", err)
			os.Exit(1)
		}
		log.Info("seed applied", "inserts", stats.Inserts, "skipped", stats.Skipped)
	}

	srv := &server{
		store:          store.New(database),
		assumptions:    cfg.Assumptions(),
		currentLotCode: cfg.Business.CurrentLotCode,
		log:            log,
		metrics:        metrics.New(),
		now:            time.Now,
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      srv.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	log.Info("listening", "addr", httpServer.Addr, "env", cfg.App.Env)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
