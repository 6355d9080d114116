package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"petro-catalog-api/internal/config"
	"petro-catalog-api/internal/handlers"
	"petro-catalog-api/internal/middleware"
	"petro-catalog-api/internal/services"
	"petro-catalog-api/internal/store"
	"petro-catalog-api/pkg/cache"
	logx "petro-catalog-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Env()})
	if cfg.Env() == logx.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataStore, closeStore := openStore(cfg)
	defer closeStore()

	redisCache := cache.NewRedisCache(ctx, cache.Options{
		URL: cfg.Redis.URL,
		DB:  cfg.Redis.DB,
		TTL: cfg.Redis.CacheTTL,
	})
	defer redisCache.Close()

	catalogService := services.NewCatalogService(dataStore, redisCache)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	go limiter.Run(ctx, time.Minute)
	router := handlers.New(catalogService, redisCache, limiter).Router()

	logx.Info().Str("port", cfg.Port).Msg("starting catalog server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logx.Fatal().Err(err).Msg("failed to start server")
	}
}

func openStore(cfg *config.Config) (store.Store, func()) {
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to connect to database")
		}
		logx.Info().Msg("using postgres store")
		return pg, func() { _ = pg.Close() }
	}

	if cfg.SeedFile != "" {
		mem, err := store.LoadMemoryStore(cfg.SeedFile)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to load seed file")
		}
		logx.Warn().Str("seed", cfg.SeedFile).Msg("DATABASE_URL not set, serving seed data from memory")
		return mem, func() {}
	}

	logx.Warn().Msg("DATABASE_URL not set, serving an empty in-memory catalog")
	return store.NewMemoryStore(store.Seed{}), func() {}
}
