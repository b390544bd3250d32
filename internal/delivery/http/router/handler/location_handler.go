package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"checkpoint/internal/delivery/http/response"
	"checkpoint/internal/domain/entity"
	domainerrors "checkpoint/internal/domain/errors"
	"checkpoint/internal/domain/repository"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	DiscoveryUC  usecase.DiscoveryUsecase
	EnrichmentUC usecase.EnrichmentUsecase
	QRCodeSvc    service.QRCodeService
	Logger       *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	discoveryUC  usecase.DiscoveryUsecase
	enrichmentUC usecase.EnrichmentUsecase
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		discoveryUC:  params.DiscoveryUC,
		enrichmentUC: params.EnrichmentUC,
		qrcodeSvc:    params.QRCodeSvc,
		logger:       params.Logger,
	}
}

// ListLocations handles GET /locations with optional search, category and
// position filters.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	query, err := h.buildQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	locations, err := h.discoveryUC.ListLocations(c.Request().Context(), query)
	if err != nil {
		return domainerrors.ErrStoreLoadFailed.WrapMessage(err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"locations": locations,
		"count":     len(locations),
	}, "")
}

// GetLocation handles GET /locations/:id
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION_ID", "Location ID must be a UUID")
	}

	location, err := h.discoveryUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return domainerrors.ErrStoreLoadFailed.WrapMessage(err.Error())
	}

	return response.Success(c, http.StatusOK, location, "")
}

// FindNearby handles GET /locations/nearby: resolve the caller's position
// and return the directory ranked by distance.
func (h *LocationHandler) FindNearby(c echo.Context) error {
	query, err := h.buildQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	position, locations, err := h.discoveryUC.FindNearby(c.Request().Context(), query)
	if err != nil {
		return mapPositionError(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"position":  position,
		"locations": locations,
		"count":     len(locations),
	}, "")
}

// EnrichLocations handles POST /locations/enrich: run one coordinate
// backfill pass over the stored directory.
func (h *LocationHandler) EnrichLocations(c echo.Context) error {
	result, err := h.enrichmentUC.EnrichAll(c.Request().Context())
	if err != nil {
		return domainerrors.ErrStoreLoadFailed.WrapMessage(err.Error())
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetLocationQR handles GET /locations/:id/qr
func (h *LocationHandler) GetLocationQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION_ID", "Location ID must be a UUID")
	}

	location, err := h.discoveryUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return domainerrors.ErrStoreLoadFailed.WrapMessage(err.Error())
	}

	png, err := h.qrcodeSvc.GenerateLocationQR(location)
	if err != nil {
		h.logger.Error("QR generation failed", slog.Any("error", err))

		return response.InternalServerError(c, "QR_GENERATION_FAILED", "Could not generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// buildQuery assembles a DiscoveryQuery from query parameters. lat and lng
// must come as a pair.
func (h *LocationHandler) buildQuery(c echo.Context) (*usecase.DiscoveryQuery, error) {
	query := &usecase.DiscoveryQuery{
		Search:     c.QueryParam("search"),
		Categories: c.QueryParams()["categories"],
	}

	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if latParam == "" && lngParam == "" {
		return query, nil
	}
	if latParam == "" || lngParam == "" {
		return nil, errors.New("lat and lng must be provided together")
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return nil, errors.New("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return nil, errors.New("lng must be a number")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errors.New("position out of range")
	}

	query.Position = &entity.UserPosition{Latitude: lat, Longitude: lng}

	return query, nil
}

// mapPositionError translates geolocation sentinels into AppErrors.
func mapPositionError(err error) error {
	switch {
	case errors.Is(err, service.ErrPositionDenied):
		return domainerrors.ErrPositionDenied
	case errors.Is(err, service.ErrPositionTimeout):
		return domainerrors.ErrPositionTimeout
	case errors.Is(err, service.ErrPositionUnavailable):
		return domainerrors.ErrPositionUnavailable
	default:
		return domainerrors.ErrStoreLoadFailed.WrapMessage(err.Error())
	}
}
