package main

import (
	"fmt"
	"log"
	"net/http"

	"tourquote/internal/config"
	"tourquote/internal/handlers"
	"tourquote/internal/middleware"
	"tourquote/internal/repositories/mongodb"
	"tourquote/internal/services"
	"tourquote/pkg/cache"
	"tourquote/pkg/database"
	"tourquote/pkg/logger"
	"tourquote/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Run index migrations
	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to Redis; rate lookups fall back to MongoDB when the cache is
	// unavailable, so a failed connection only disables caching.
	var cacheService mongodb.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, rate caching disabled")
	} else {
		defer redisCache.Close()
		cacheService = redisCache
	}

	// Initialize repositories
	transportRepo := mongodb.NewTransportRateRepository(db.Database, cacheService)
	guideRepo := mongodb.NewGuideRateRepository(db.Database, cacheService)
	ruleRepo := mongodb.NewPricingRuleRepository(db.Database, cacheService)

	// Initialize services and handlers
	pricingService := services.NewPricingService(transportRepo, guideRepo, ruleRepo, appLogger)
	pricingHandler := handlers.NewPricingHandler(pricingService, appLogger)

	// Initialize Gin router
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupPricingRoutes(v1, pricingHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
