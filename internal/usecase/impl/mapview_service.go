package impl

import (
	"log/slog"
	"sync"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	// viewportPadding widens the marker bounding box in degrees so edge
	// markers are not clipped by the map frame.
	viewportPadding = 0.02

	// viewportMaxZoom caps the fit so a single marker does not zoom the map
	// to street level.
	viewportMaxZoom = 15
)

// ErrMarkerNotFound is returned when a selection targets an unknown marker
var ErrMarkerNotFound = errors.New("marker not found")

type mapViewService struct {
	mu           sync.Mutex
	state        usecase.MapState
	markers      []usecase.Marker
	userPosition *entity.UserPosition
	viewport     *usecase.Viewport
	errorMessage string
	onSelect     func(locationID uuid.UUID)
	logger       *slog.Logger
}

// NewMapViewService creates a new map view service instance
func NewMapViewService(logger *slog.Logger) usecase.MapViewUsecase {
	return &mapViewService{
		state:  usecase.MapStateEmpty,
		logger: logger,
	}
}

// SetLoading moves the view to the loading state. Markers already on screen
// stay visible while the next result set loads.
func (s *mapViewService) SetLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = usecase.MapStateLoading
	s.errorMessage = ""
}

// SetError moves the view to the error state with a display message.
func (s *mapViewService) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = usecase.MapStateError
	s.errorMessage = message
}

// SetLocations replaces the marker set with one marker per located center.
func (s *mapViewService) SetLocations(locations []*entity.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers = s.markers[:0]
	for _, loc := range locations {
		if !loc.HasCoordinates() {
			continue
		}
		s.markers = append(s.markers, usecase.Marker{
			LocationID: loc.ID,
			Latitude:   loc.Coordinates.Latitude,
			Longitude:  loc.Coordinates.Longitude,
			Popup: usecase.MarkerPopup{
				Name:     loc.Name,
				Address:  loc.Address,
				Category: loc.FilterCategory(),
			},
		})
	}

	s.errorMessage = ""
	if len(locations) == 0 {
		s.state = usecase.MapStateEmpty
	} else {
		s.state = usecase.MapStateReady
	}

	// An all-unlocated result set keeps the previous viewport rather than
	// collapsing the map to a zero box.
	if len(s.markers) > 0 {
		s.viewport = fitViewport(s.markers)
	}
}

// SetUserPosition pins the caller's position. The position marker is
// deliberately excluded from the viewport bounds.
func (s *mapViewService) SetUserPosition(position *entity.UserPosition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position == nil {
		s.userPosition = nil

		return
	}
	clone := *position
	s.userPosition = &clone
}

// SelectMarker reports a marker tap to the registered listener.
func (s *mapViewService) SelectMarker(locationID uuid.UUID) error {
	s.mu.Lock()
	var found bool
	for _, marker := range s.markers {
		if marker.LocationID == locationID {
			found = true

			break
		}
	}
	onSelect := s.onSelect
	s.mu.Unlock()

	if !found {
		return errors.Wrapf(ErrMarkerNotFound, "location %s", locationID)
	}

	s.logger.Debug("marker selected", slog.String("location_id", locationID.String()))

	if onSelect != nil {
		onSelect(locationID)
	}

	return nil
}

// OnSelect registers the marker tap listener.
func (s *mapViewService) OnSelect(fn func(locationID uuid.UUID)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onSelect = fn
}

// Snapshot returns a copy of the current view state.
func (s *mapViewService) Snapshot() *usecase.MapSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := &usecase.MapSnapshot{
		State:        s.state,
		Markers:      make([]usecase.Marker, len(s.markers)),
		ErrorMessage: s.errorMessage,
	}
	copy(snapshot.Markers, s.markers)

	if s.userPosition != nil {
		clone := *s.userPosition
		snapshot.UserPosition = &clone
	}
	if s.viewport != nil {
		clone := *s.viewport
		snapshot.Viewport = &clone
	}

	return snapshot
}

// fitViewport computes the padded bounding box over the marker set.
func fitViewport(markers []usecase.Marker) *usecase.Viewport {
	points := make(orb.MultiPoint, 0, len(markers))
	for _, marker := range markers {
		points = append(points, orb.Point{marker.Longitude, marker.Latitude})
	}

	bound := points.Bound().Pad(viewportPadding)

	return &usecase.Viewport{
		MinLatitude:  bound.Min.Lat(),
		MinLongitude: bound.Min.Lon(),
		MaxLatitude:  bound.Max.Lat(),
		MaxLongitude: bound.Max.Lon(),
		Padding:      viewportPadding,
		MaxZoom:      viewportMaxZoom,
	}
}
