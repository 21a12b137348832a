// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/equipscout/equipscout-backend/internal/config"
	"github.com/equipscout/equipscout-backend/internal/handlers"
	"github.com/equipscout/equipscout-backend/internal/middleware"
	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
	"github.com/equipscout/equipscout-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	providerClient := services.NewProviderClient(cfg.Provider)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Export archival disabled")
	}

	searchService := services.NewSearchService(db, providerClient)
	sessionService := services.NewSessionService(cfg.Refine)
	exportService := services.NewExportService(storageService)
	chatService := services.NewChatService(providerClient)
	favoriteService := services.NewFavoriteService(db)
	savedSearchService := services.NewSavedSearchService(db)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(searchService, sessionService)
	resultsHandler := handlers.NewResultsHandler(sessionService, exportService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	savedSearchHandler := handlers.NewSavedSearchHandler(savedSearchService)
	chatHandler := handlers.NewChatHandler(chatService)
	metaHandler := handlers.NewMetaHandler(refine.NewRateTable(models.DefaultCurrencyRates))

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Search runs a provider query, so it carries its own tighter limit.
		v1.POST("/search", middleware.SearchRateLimit(), searchHandler.Search)

		// Session-scoped refinement routes
		sessions := v1.Group("/sessions/:id")
		{
			sessions.GET("/results", resultsHandler.GetResults)
			sessions.PUT("/filters", resultsHandler.UpdateFilters)
			sessions.POST("/filters/reset", resultsHandler.ResetFilters)
			sessions.PUT("/sort", resultsHandler.UpdateSort)
			sessions.GET("/export", resultsHandler.Export)
		}

		// Favorite routes
		favorites := v1.Group("/favorites")
		{
			favorites.GET("", favoriteHandler.GetFavorites)
			favorites.POST("/toggle", favoriteHandler.ToggleFavorite)
			favorites.DELETE("/:productId", favoriteHandler.RemoveFavorite)
		}

		// Saved search routes
		savedSearches := v1.Group("/saved-searches")
		{
			savedSearches.GET("", savedSearchHandler.GetSavedSearches)
			savedSearches.POST("", savedSearchHandler.CreateSavedSearch)
			savedSearches.DELETE("/:id", savedSearchHandler.DeleteSavedSearch)
		}

		// Assistant routes share the search limiter since both hit the provider.
		v1.POST("/chat", middleware.SearchRateLimit(), chatHandler.SendMessage)
		v1.POST("/compare/summary", middleware.SearchRateLimit(), chatHandler.CompareSummary)

		// Metadata routes (public, static)
		v1.GET("/meta", metaHandler.GetMeta)
		v1.GET("/currency/convert", metaHandler.ConvertCurrency)
	}

	return r
}
