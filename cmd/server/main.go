package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/homepantry/backend/config"
	httpDelivery "github.com/homepantry/backend/internal/delivery/http"
	"github.com/homepantry/backend/internal/domain"
	"github.com/homepantry/backend/internal/infrastructure/cache"
	"github.com/homepantry/backend/internal/infrastructure/store"
	"github.com/homepantry/backend/internal/logger"
	"github.com/homepantry/backend/internal/usecase"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting homepantry backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type),
		zap.String("store", cfg.Store.Path))

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		log.Fatal("creating store directory", zap.Error(err))
	}
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal("opening store", zap.Error(err))
	}
	defer db.Close()

	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			log.Fatal("connecting to redis", zap.Error(err))
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	default:
		memCache := cache.NewMemoryCache()
		defer memCache.Close()
		cacheRepo = memCache
	}

	service := usecase.NewIngredientService(
		db.Inventory(),
		db.ShoppingList(),
		cacheRepo,
		log,
		usecase.IngredientServiceConfig{
			CacheTTL:       cfg.Cache.TTL,
			MaxSubstitutes: cfg.Engine.MaxSubstitutes,
		},
	)

	handler := httpDelivery.NewHandler(service)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
