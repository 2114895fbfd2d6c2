package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/claus-risk-server/internal/api"
	"github.com/claus-risk-server/internal/cache"
	"github.com/claus-risk-server/internal/config"
	"github.com/claus-risk-server/internal/domain"
	"github.com/claus-risk-server/internal/repository"
	"github.com/claus-risk-server/internal/service"
	"github.com/claus-risk-server/internal/tables"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(cfg.Logging)

	provider, err := tables.NewProvider()
	if err != nil {
		log.Fatalf("Failed to load Claus tables: %v", err)
	}
	clausTables, err := provider.Tables()
	if err != nil {
		log.Fatalf("Failed to load Claus tables: %v", err)
	}

	var store domain.AssessmentStore
	if cfg.Storage.SQLitePath != "" {
		sqliteStore, err := repository.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open assessment store: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
	}

	var resultCache domain.ResultCache
	switch cfg.Cache.Backend {
	case "memory":
		resultCache, err = cache.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Failed to create memory cache: %v", err)
		}
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis cache: %v", err)
		}
		defer redisCache.Close()
		resultCache = redisCache
	}

	calculator := service.NewClausCalculator(logger, clausTables)
	riskService := service.NewRiskService(logger, calculator, store, resultCache)
	server := api.NewServer(cfg, logger, riskService)

	logger.WithFields(logrus.Fields{
		"host":          cfg.Server.Host,
		"port":          cfg.Server.Port,
		"cache_backend": cfg.Cache.Backend,
		"storage":       cfg.Storage.SQLitePath,
	}).Info("Starting Claus risk server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

// newLogger builds the application logger from configuration.
func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
