package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Изменяющие состояние маршруты закрыты ключом, если ключи заданы
	protected := api.Group("")
	if h.cfg != nil && len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	api.GET("/markers", h.getMarkers)
	api.GET("/markers.geojson", h.getMarkersGeoJSON)
	protected.POST("/groups/:id/activate", h.activateGroup)

	api.GET("/filters", h.getFilters)
	protected.PUT("/filters", h.changeFilter)
	protected.PUT("/filters/subdivision", h.changeSubdivision)
	protected.PUT("/filters/nap", h.changeNAP)

	protected.GET("/search", h.search)

	boundaries := api.Group("/boundaries")
	{
		boundaries.GET("", h.listBoundaries)
		boundaries.GET("/:name", h.getBoundary)
	}
	protected.PUT("/boundaries/:name/visibility", h.toggleBoundary)

	protected.POST("/reload", h.reload)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
