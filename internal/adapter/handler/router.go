package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Andre-Diamond/scripts-for-scraps/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg         *config.Config
	syncHandler *Sync
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, syncHandler *Sync) *Router {
	return &Router{
		cfg:         cfg,
		syncHandler: syncHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupSyncRoutes(v1)
}

// setupSyncRoutes configures timeline browsing and comparison routes
func (rt *Router) setupSyncRoutes(g *echo.Group) {
	syncGroup := g.Group("/sync")

	syncGroup.GET("/years", rt.syncHandler.Years)
	syncGroup.GET("/months", rt.syncHandler.Months)
	syncGroup.GET("/files", rt.syncHandler.Files)
	syncGroup.GET("/compare", rt.syncHandler.Compare)
	syncGroup.GET("/compare-all", rt.syncHandler.CompareAll)
	syncGroup.POST("/reconcile", rt.syncHandler.Reconcile)
	syncGroup.POST("/export", rt.syncHandler.Export)
	syncGroup.GET("/exports", rt.syncHandler.Exports)
	syncGroup.GET("/participants", rt.syncHandler.Participants)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
