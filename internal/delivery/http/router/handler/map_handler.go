package handler

import (
	"log/slog"
	"net/http"

	"checkpoint/internal/delivery/http/response"
	"checkpoint/internal/domain/entity"
	"checkpoint/internal/usecase"
	"checkpoint/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapViewUC   usecase.MapViewUsecase
	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// MapHandler holds dependencies for map view handlers
type MapHandler struct {
	mapViewUC   usecase.MapViewUsecase
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapViewUC:   params.MapViewUC,
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// RefreshMapRequest represents the request body for refreshing the map
type RefreshMapRequest struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// GetMapState handles GET /map
func (h *MapHandler) GetMapState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.mapViewUC.Snapshot(), "")
}

// RefreshMap handles POST /map/refresh: run a discovery query and sync the
// map view with its result.
func (h *MapHandler) RefreshMap(c echo.Context) error {
	var req RefreshMapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid map refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	query := &usecase.DiscoveryQuery{
		Search:     req.Search,
		Categories: req.Categories,
	}
	if req.Latitude != nil && req.Longitude != nil {
		query.Position = &entity.UserPosition{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}
	}

	h.mapViewUC.SetLoading()

	locations, err := h.discoveryUC.ListLocations(c.Request().Context(), query)
	if err != nil {
		h.mapViewUC.SetError("Testing centers could not be loaded")

		return response.Success(c, http.StatusOK, h.mapViewUC.Snapshot(), "")
	}

	h.mapViewUC.SetLocations(locations)
	if query.Position != nil {
		h.mapViewUC.SetUserPosition(query.Position)
	}

	return response.Success(c, http.StatusOK, h.mapViewUC.Snapshot(), "")
}

// SelectMarker handles POST /map/markers/:id/select
func (h *MapHandler) SelectMarker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION_ID", "Location ID must be a UUID")
	}

	if err := h.mapViewUC.SelectMarker(id); err != nil {
		if errors.Is(err, impl.ErrMarkerNotFound) {
			return response.NotFound(c, "MARKER_NOT_FOUND", "No marker for this location")
		}

		return response.InternalServerError(c, "MARKER_SELECT_FAILED", "Could not select marker")
	}

	return response.Success(c, http.StatusOK, map[string]any{"selected": id}, "")
}
