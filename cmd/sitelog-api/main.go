package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sitelog/sitelog-api/api/swagger"
	"github.com/sitelog/sitelog-api/internal/handler"
	"github.com/sitelog/sitelog-api/internal/middleware"
	"github.com/sitelog/sitelog-api/internal/service"
	"github.com/sitelog/sitelog-api/internal/store"
	"github.com/sitelog/sitelog-api/pkg/cache"
	"github.com/sitelog/sitelog-api/pkg/clock"
	"github.com/sitelog/sitelog-api/pkg/config"
	"github.com/sitelog/sitelog-api/pkg/database"
	"github.com/sitelog/sitelog-api/pkg/logger"
	corsmiddleware "github.com/sitelog/sitelog-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sitelog/sitelog-api/pkg/middleware/requestid"
	"github.com/sitelog/sitelog-api/pkg/storage"
)

// @title SiteLog API
// @version 1.0.0
// @description Construction project record keeping
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	clk := clock.New()

	var entityStore store.Store
	var db *sqlx.DB
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		entityStore = store.NewPostgres(db, clk)
	default:
		entityStore = store.NewMemory(clk)
	}

	blobs, err := storage.NewBlobStore(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare upload storage", "dir", cfg.Uploads.StorageDir, "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var statsCache *service.CacheService
	if cfg.Stats.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		repo := cache.NewRepository(redisClient, logr)
		defer repo.Close() //nolint:errcheck
		statsCache = service.NewCacheService(repo, metricsSvc, cfg.Stats.CacheTTL, logr, true)
	}

	cleanup := service.NewBlobCleanup(blobs, logr)
	cleanup.Start(context.Background())
	defer cleanup.Stop()

	validate := service.NewValidator()

	handlers := handler.Handlers{
		Projects:      handler.NewProjectHandler(service.NewProjectService(entityStore, validate, clk, logr).WithCleanup(cleanup)),
		Photos:        handler.NewPhotoHandler(service.NewPhotoService(entityStore, blobs, validate, clk, logr), blobs, cfg.Uploads.MaxFileSizeBytes),
		Documents:     handler.NewDocumentHandler(service.NewDocumentService(entityStore, blobs, validate, clk, logr), blobs, cfg.Uploads.MaxFileSizeBytes),
		MaterialTests: handler.NewMaterialTestHandler(service.NewMaterialTestService(entityStore, validate, logr)),
		TestResults:   handler.NewTestResultHandler(service.NewTestResultService(entityStore, validate, clk, logr)),
		Reminders:     handler.NewReminderHandler(service.NewReminderService(entityStore, validate, logr)),
		Calendar:      handler.NewCalendarHandler(service.NewCalendarService(entityStore, validate, logr)),
		Stats:         handler.NewStatsHandler(service.NewStatsService(entityStore, statsCache, logr)),
		Reports:       handler.NewReportHandler(service.NewReportService(entityStore, clk, logr, nil, nil)),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if db != nil {
			if err := db.PingContext(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handlers.Register(r.Group(cfg.APIPrefix))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
