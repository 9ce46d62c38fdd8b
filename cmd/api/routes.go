package main

import (
	"net/http"
	_ "net/http/pprof"

	"realestate-listings/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupAPIRoutes()
}

// health, metrics and, outside release mode, pprof
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/health", a.HealthHandler.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if a.Config.Server.Mode == gin.DebugMode {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	{
		api.GET("/properties/search", a.PropertyHandler.SearchProperties)
		api.GET("/properties/search/count", a.PropertyHandler.CountProperties)
		api.GET("/properties/:id", a.PropertyHandler.GetProperty)
		api.GET("/reference/:kind", a.CatalogHandler.GetReferenceData)
		api.GET("/settings", a.CatalogHandler.GetSiteSettings)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
	{
		admin.POST("/properties", a.AdminHandler.CreateProperty)
		admin.PUT("/properties/order", a.AdminHandler.ReorderProperties)
		admin.POST("/properties/reindex", a.AdminHandler.RebuildSearchText)
		admin.GET("/properties/:id", a.AdminHandler.GetProperty)
		admin.PUT("/properties/:id", a.AdminHandler.UpdateProperty)
		admin.DELETE("/properties/:id", a.AdminHandler.DeleteProperty)

		admin.PUT("/reference/:kind", a.AdminHandler.SaveReference)
		admin.PUT("/reference/:kind/:id", a.AdminHandler.SaveReference)
		admin.DELETE("/reference/:kind/:id", a.AdminHandler.DeleteReference)

		admin.PUT("/settings", a.AdminHandler.SaveSettings)

		admin.GET("/cache/stats", a.AdminHandler.CacheStats)
		admin.DELETE("/cache", a.AdminHandler.ClearCache)
	}
}
