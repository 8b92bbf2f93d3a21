package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"hawaiielite-properties/internal/handlers"
	"hawaiielite-properties/internal/middleware"
	"hawaiielite-properties/internal/repositories"
	"hawaiielite-properties/internal/services"
	"hawaiielite-properties/internal/transformers"
	"hawaiielite-properties/internal/validators"
	"hawaiielite-properties/pkg/cache"
	"hawaiielite-properties/pkg/config"
	"hawaiielite-properties/pkg/database"
	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/metrics"
	"hawaiielite-properties/pkg/redfin"
	"hawaiielite-properties/pkg/wordpress"
	"hawaiielite-properties/pkg/zillow"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	ContentHandler  *handlers.ContentHandler
	ListingHandler  *handlers.ListingHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server

	stopCleanup context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeDatabase()
	app.initializeCache()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the listing store when configured
func (a *App) initializeDatabase() {
	if !a.Config.Database.Enabled {
		logger.GlobalLogger.Println("MongoDB disabled, listing routes are not registered")
		return
	}
	if err := database.InitDB(a.Config.Database); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis search cache when configured
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		logger.GlobalLogger.Println("Redis disabled, search results are not cached")
		return
	}
	if err := cache.InitRedis(a.Config.Redis); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(
		middleware.PerMinute(a.Config.Server.RateLimitPerMinute),
		a.Config.Server.RateLimitBurst,
	)
	ctx, cancel := context.WithCancel(context.Background())
	a.stopCleanup = cancel
	go a.RateLimiter.Cleanup(ctx, time.Minute, 3*time.Minute)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	cfg := a.Config

	// transformers
	addrTrans := transformers.NewAddressTransformer()

	// validators
	propertyValidator := validators.NewPropertyValidator()
	listingValidator := validators.NewListingValidator()

	// upstream clients; a missing key leaves the source nil so sample data is served
	var zillowSrc services.ZillowSource
	if cfg.Zillow.APIKey != "" {
		zillowSrc = zillow.NewClient(cfg.Zillow.BaseURL, cfg.Zillow.Host, cfg.Zillow.APIKey, cfg.Zillow.Timeout())
	}
	var redfinSrc services.RedfinSource
	if cfg.Redfin.APIKey != "" {
		redfinSrc = redfin.NewClient(cfg.Redfin.BaseURL, cfg.Redfin.Host, cfg.Redfin.APIKey, cfg.Redfin.Timeout())
	}
	wpClient := wordpress.NewClient(cfg.WordPress.BaseURL, time.Duration(cfg.WordPress.TimeoutSeconds)*time.Second)

	// repositories
	var searchCache repositories.SearchCache
	if cfg.Redis.Enabled {
		searchCache = repositories.NewSearchCache(cache.RedisClient)
	}

	// services
	aggregation, err := services.NewAggregationService(zillowSrc, redfinSrc, searchCache, addrTrans, propertyValidator, services.AggregationOptions{
		UseSampleData:     cfg.Aggregation.UseSampleData,
		MapPropertyTypes:  cfg.Aggregation.MapPropertyTypes,
		CacheTTL:          time.Duration(cfg.Aggregation.CacheTTLMinutes) * time.Minute,
		DefaultRegionID:   cfg.Redfin.DefaultRegionID,
		DefaultSoldWithin: cfg.Redfin.DefaultSoldWithin,
	})
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize aggregation service: %v", err)
		os.Exit(1)
	}
	exporter := services.NewExportService(cfg.Export.Path, addrTrans)
	content := services.NewContentService(wpClient)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(aggregation, exporter, cfg.Export.OnSearch)
	a.ContentHandler = handlers.NewContentHandler(content)

	if cfg.Database.Enabled {
		listingRepo := repositories.NewListingRepository(database.DB.Collection(database.ListingsCollection))
		a.ListingHandler = handlers.NewListingHandler(services.NewListingService(listingRepo, listingValidator))
	}
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	database.CloseDB()
	cache.CloseRedis()
}
