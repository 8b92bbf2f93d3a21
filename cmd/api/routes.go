package main

import (
	"context"
	"net/http"
	"time"

	_ "hawaiielite-properties/docs"
	"hawaiielite-properties/internal/middleware"
	"hawaiielite-properties/pkg/cache"
	"hawaiielite-properties/pkg/database"
	"hawaiielite-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupStaticRoutes configures documentation and metrics
func (a *App) setupStaticRoutes() {
	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if a.Config.Database.Enabled {
			if err := database.Ping(ctx); err != nil {
				logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
				return
			}
		}

		if a.Config.Redis.Enabled {
			if err := cache.Ping(ctx); err != nil {
				logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")

	properties := api.Group("/properties")
	{
		properties.GET("/search", a.PropertyHandler.SearchProperties)
		properties.GET("/sold", a.PropertyHandler.GetSoldProperties)
		properties.GET("/for-sale", a.PropertyHandler.GetPropertiesForSale)
		properties.GET("/redfin/:id", a.PropertyHandler.GetRedfinPropertyDetails)
		properties.POST("/export", a.PropertyHandler.ExportProperties)
		properties.GET("/:id", a.PropertyHandler.GetPropertyDetails)
		properties.GET("/:id/images", a.PropertyHandler.GetPropertyImages)
	}

	content := api.Group("/content")
	{
		content.GET("/posts", a.ContentHandler.GetPosts)
		content.GET("/posts/recent", a.ContentHandler.GetRecentPosts)
		content.GET("/pages", a.ContentHandler.GetPages)
		content.GET("/categories", a.ContentHandler.GetCategories)
		content.GET("/all", a.ContentHandler.GetAllContent)
		content.GET("/:slug", a.ContentHandler.GetContentBySlug)
	}

	if a.ListingHandler == nil {
		return
	}

	listings := api.Group("/listings")
	{
		listings.GET("", a.ListingHandler.GetListings)
		listings.GET("/:id", a.ListingHandler.GetListing)

		// Protected routes
		protected := listings.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			protected.POST("", a.ListingHandler.CreateListing)
			protected.PUT("/:id", a.ListingHandler.UpdateListing)
			protected.DELETE("/:id", a.ListingHandler.DeleteListing)
		}
	}
}
