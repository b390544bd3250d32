package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkpoint/internal/delivery/http/middleware"
	"checkpoint/internal/delivery/http/router"
	"checkpoint/internal/delivery/http/router/handler"
	"checkpoint/internal/delivery/http/validator"
	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/repository"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/infra/qrcode"
	mockUsecase "checkpoint/internal/mocks/usecase"
	"checkpoint/internal/usecase"
	"checkpoint/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockDiscoveryUsecase, *mockUsecase.MockEnrichmentUsecase) {
	discoveryUC := mockUsecase.NewMockDiscoveryUsecase(t)
	enrichmentUC := mockUsecase.NewMockEnrichmentUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	locationHandler := handler.NewLocationHandler(handler.LocationHandlerParams{
		DiscoveryUC:  discoveryUC,
		EnrichmentUC: enrichmentUC,
		QRCodeSvc:    qrcode.NewQRCodeService(256, "M"),
		Logger:       logger,
	})
	mapHandler := handler.NewMapHandler(handler.MapHandlerParams{
		MapViewUC:   impl.NewMapViewService(logger),
		DiscoveryUC: discoveryUC,
		Logger:      logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	router.NewRouter(router.RouterParams{
		LocationHandler: locationHandler,
		MapHandler:      mapHandler,
	}).RegisterRoutes(e)

	return e, discoveryUC, enrichmentUC
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestLocationHandler_ListLocations(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	discoveryUC.EXPECT().
		ListLocations(mock.Anything, mock.MatchedBy(func(query *usecase.DiscoveryQuery) bool {
			return query.Search == "milano" && query.Position == nil
		})).
		Return([]*entity.Location{
			{ID: uuid.New(), Name: "Milano Check Point", City: "Milano"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations?search=milano", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["count"])
}

func TestLocationHandler_ListLocations_WithPosition(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	discoveryUC.EXPECT().
		ListLocations(mock.Anything, mock.MatchedBy(func(query *usecase.DiscoveryQuery) bool {
			return query.Position != nil && query.Position.Latitude == 45.4642
		})).
		Return([]*entity.Location{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations?lat=45.4642&lng=9.1900", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_ListLocations_LonelyLatitude(t *testing.T) {
	e, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/locations?lat=45.4642", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_GetLocation_NotFound(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	id := uuid.New()
	discoveryUC.EXPECT().GetLocation(mock.Anything, id).Return(nil, repository.ErrLocationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+id.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "LOCATION_NOT_FOUND", errInfo["code"])
}

func TestLocationHandler_GetLocation_InvalidID(t *testing.T) {
	e, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/locations/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_FindNearby_PositionDenied(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	discoveryUC.EXPECT().
		FindNearby(mock.Anything, mock.Anything).
		Return(nil, nil, service.ErrPositionDenied)

	req := httptest.NewRequest(http.MethodGet, "/locations/nearby", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "POSITION_DENIED", errInfo["code"])
}

func TestLocationHandler_FindNearby_Success(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	position := &entity.UserPosition{Latitude: 45.4642, Longitude: 9.1900}
	discoveryUC.EXPECT().
		FindNearby(mock.Anything, mock.Anything).
		Return(position, []*entity.Location{
			{ID: uuid.New(), Name: "Milano Check Point", Distance: "3.2 km"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/nearby", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.NotNil(t, data["position"])
	assert.EqualValues(t, 1, data["count"])
}

func TestLocationHandler_EnrichLocations(t *testing.T) {
	e, _, enrichmentUC := newTestServer(t)

	enrichmentUC.EXPECT().
		EnrichAll(mock.Anything).
		Return(&usecase.EnrichmentResult{Attempted: 4, Resolved: 3, Failed: 1, FailedNames: []string{"Center X"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/locations/enrich", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 3, data["resolved"])
	assert.EqualValues(t, 1, data["failed"])
}

func TestLocationHandler_GetLocationQR(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	location := &entity.Location{
		ID:          uuid.New(),
		Name:        "Milano Check Point",
		Coordinates: &entity.Coordinates{Latitude: 45.4895, Longitude: 9.2037},
	}
	discoveryUC.EXPECT().GetLocation(mock.Anything, location.ID).Return(location, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+location.ID.String()+"/qr", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestMapHandler_RefreshAndSelect(t *testing.T) {
	e, discoveryUC, _ := newTestServer(t)

	located := &entity.Location{
		ID:          uuid.New(),
		Name:        "Milano Check Point",
		Address:     "Via Mauro Macchi 44",
		Coordinates: &entity.Coordinates{Latitude: 45.4895, Longitude: 9.2037},
	}
	discoveryUC.EXPECT().
		ListLocations(mock.Anything, mock.Anything).
		Return([]*entity.Location{located}, nil)

	req := httptest.NewRequest(http.MethodPost, "/map/refresh", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ready", data["state"])
	assert.Len(t, data["markers"], 1)

	// Selecting the marker that was just placed succeeds.
	req = httptest.NewRequest(http.MethodPost, "/map/markers/"+located.ID.String()+"/select", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Selecting an unknown marker is a 404.
	req = httptest.NewRequest(http.MethodPost, "/map/markers/"+uuid.NewString()+"/select", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
