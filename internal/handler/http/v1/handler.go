package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/napmap/internal/config"
	"github.com/shenikar/napmap/internal/mapstate"
	"github.com/shenikar/napmap/internal/models"
	"github.com/shenikar/napmap/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	mapService service.MapService
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(mapService service.MapService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		mapService: mapService,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// errorStatus сопоставляет ошибки сервиса с HTTP-статусами
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, mapstate.ErrEmptyQuery):
		return http.StatusBadRequest, "search query is empty"
	case errors.Is(err, mapstate.ErrGroupNotFound):
		return http.StatusNotFound, "marker group not found"
	case errors.Is(err, mapstate.ErrBoundaryNotFound):
		return http.StatusNotFound, "boundary layer not found"
	case errors.Is(err, mapstate.ErrPointsNotLoaded):
		return http.StatusConflict, "points dataset is not loaded"
	case errors.Is(err, service.ErrReloadUnavailable):
		return http.StatusNotImplemented, "reload is not available"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// @Summary Get marker draw commands
// @Description Get draw commands for every marker group with current visibility
// @Tags Markers
// @Produce json
// @Success 200 {object} DrawBatchResponse
// @Router /markers [get]
func (h *Handler) getMarkers(c *gin.Context) {
	batch := h.mapService.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, ModelToDrawBatchResponse(batch))
}

// @Summary Get markers as GeoJSON
// @Description Get marker draw commands as a GeoJSON FeatureCollection of points
// @Tags Markers
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /markers.geojson [get]
func (h *Handler) getMarkersGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "getMarkersGeoJSON")
	batch := h.mapService.Snapshot(c.Request.Context())

	data, err := MarkersToFeatureCollection(batch.Markers).MarshalJSON()
	if err != nil {
		log.WithError(err).Error("Failed to marshal markers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// @Summary Toggle a marker group
// @Description Expand a collapsed group into a ring of markers, or collapse an expanded one. Requires API key when keys are configured.
// @Tags Markers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Marker group ID"
// @Success 200 {object} DrawBatchResponse
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 404 {object} map[string]string "Group not found"
// @Failure 409 {object} map[string]string "Points not loaded"
// @Router /groups/{id}/activate [post]
func (h *Handler) activateGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group ID"})
		return
	}
	log := h.logger.WithField("method", "activateGroup").WithField("id", id)

	batch, err := h.mapService.ActivateGroup(c.Request.Context(), id)
	if err != nil {
		status, msg := errorStatus(err)
		log.WithError(err).Warn("Failed to activate group in service")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToDrawBatchResponse(batch))
}

// @Summary Get filters
// @Description Get current filter selection and option lists
// @Tags Filters
// @Produce json
// @Success 200 {object} FiltersResponse
// @Router /filters [get]
func (h *Handler) getFilters(c *gin.Context) {
	state, opts := h.mapService.Filters(c.Request.Context())
	c.JSON(http.StatusOK, FiltersResponse{
		Subdivision: state.Subdivision,
		NAP:         state.NAP,
		Options:     optionsResponse(opts),
	})
}

// @Summary Change both filters
// @Description Apply subdivision and NAP selection. A subdivision change resets the NAP selection to All. Requires API key when keys are configured.
// @Tags Filters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filter body FilterRequest true "Filter state"
// @Success 200 {object} DrawBatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Points not loaded"
// @Router /filters [put]
func (h *Handler) changeFilter(c *gin.Context) {
	var input FilterRequest
	log := h.logger.WithField("method", "changeFilter")

	if !h.bind(c, &input, log) {
		return
	}

	batch, err := h.mapService.ChangeFilter(c.Request.Context(), DTOToFilterState(input))
	h.respondBatch(c, batch, err, log)
}

// @Summary Change subdivision filter
// @Description Select a subdivision. NAP options narrow to it and the NAP selection resets to All. Requires API key when keys are configured.
// @Tags Filters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filter body SubdivisionRequest true "Subdivision"
// @Success 200 {object} DrawBatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /filters/subdivision [put]
func (h *Handler) changeSubdivision(c *gin.Context) {
	var input SubdivisionRequest
	log := h.logger.WithField("method", "changeSubdivision")

	if !h.bind(c, &input, log) {
		return
	}

	batch, err := h.mapService.ChangeSubdivision(c.Request.Context(), input.Subdivision)
	h.respondBatch(c, batch, err, log)
}

// @Summary Change NAP filter
// @Description Select a NAP. Requires API key when keys are configured.
// @Tags Filters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filter body NAPRequest true "NAP"
// @Success 200 {object} DrawBatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /filters/nap [put]
func (h *Handler) changeNAP(c *gin.Context) {
	var input NAPRequest
	log := h.logger.WithField("method", "changeNAP")

	if !h.bind(c, &input, log) {
		return
	}

	batch, err := h.mapService.ChangeNAP(c.Request.Context(), input.NAP)
	h.respondBatch(c, batch, err, log)
}

// @Summary Locate a NAP
// @Description Find the first record with a NAP matching the query (case-insensitive) and return center and highlight commands. Requires API key when keys are configured.
// @Tags Search
// @Produce json
// @Security ApiKeyAuth
// @Param nap query string true "NAP identifier"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Empty query"
// @Failure 404 {object} SearchResponse "NAP not found"
// @Router /search [get]
func (h *Handler) search(c *gin.Context) {
	log := h.logger.WithField("method", "search")

	result, err := h.mapService.Search(c.Request.Context(), c.Query("nap"))
	if err != nil {
		status, msg := errorStatus(err)
		log.WithError(err).Warn("Search failed")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if !result.Found {
		c.JSON(http.StatusNotFound, ModelToSearchResponse(result))
		return
	}
	c.JSON(http.StatusOK, ModelToSearchResponse(result))
}

// @Summary List boundary layers
// @Description List loaded boundary layers with style and visibility
// @Tags Boundaries
// @Produce json
// @Success 200 {array} BoundaryResponse
// @Router /boundaries [get]
func (h *Handler) listBoundaries(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToBoundaryResponses(h.mapService.Boundaries(c.Request.Context())))
}

// @Summary Get boundary GeoJSON
// @Description Get a boundary layer's features as loaded
// @Tags Boundaries
// @Produce json
// @Param name path string true "Layer name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Layer not found"
// @Router /boundaries/{name} [get]
func (h *Handler) getBoundary(c *gin.Context) {
	name := c.Param("name")
	log := h.logger.WithField("method", "getBoundary").WithField("name", name)

	layer, err := h.mapService.Boundary(c.Request.Context(), name)
	if err != nil {
		status, msg := errorStatus(err)
		log.WithError(err).Warn("Failed to get boundary from service")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	data, err := layer.Features.MarshalJSON()
	if err != nil {
		log.WithError(err).Error("Failed to marshal boundary features")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// @Summary Toggle boundary layer
// @Description Show or hide a boundary layer. Requires API key when keys are configured.
// @Tags Boundaries
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param name path string true "Layer name"
// @Param visibility body BoundaryVisibilityRequest true "Visibility"
// @Success 200 {object} DrawBatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Layer not found"
// @Router /boundaries/{name}/visibility [put]
func (h *Handler) toggleBoundary(c *gin.Context) {
	var input BoundaryVisibilityRequest
	name := c.Param("name")
	log := h.logger.WithField("method", "toggleBoundary").WithField("name", name)

	if !h.bind(c, &input, log) {
		return
	}

	batch, err := h.mapService.ToggleBoundary(c.Request.Context(), name, *input.Visible)
	h.respondBatch(c, batch, err, log)
}

// @Summary Reload datasets
// @Description Drop all marker groups and boundary layers and load every dataset again. Requires API key when keys are configured.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DrawBatchResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reload [post]
func (h *Handler) reload(c *gin.Context) {
	log := h.logger.WithField("method", "reload")

	if err := h.mapService.Reload(c.Request.Context()); err != nil {
		status, msg := errorStatus(err)
		log.WithError(err).Error("Failed to reload datasets")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToDrawBatchResponse(h.mapService.Snapshot(c.Request.Context())))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) bind(c *gin.Context, input any, log *logrus.Entry) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) respondBatch(c *gin.Context, batch models.DrawBatch, err error, log *logrus.Entry) {
	if err != nil {
		status, msg := errorStatus(err)
		log.WithError(err).Warn("Service rejected event")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, ModelToDrawBatchResponse(batch))
}
