package usecase

import (
	"checkpoint/internal/domain/entity"

	"github.com/google/uuid"
)

// MapState is the lifecycle state of the map view.
type MapState string

const (
	MapStateEmpty   MapState = "empty"
	MapStateLoading MapState = "loading"
	MapStateReady   MapState = "ready"
	MapStateError   MapState = "error"
)

// MarkerPopup is the content shown when a marker is opened.
type MarkerPopup struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category,omitempty"`
}

// Marker is a plottable point derived from a located center.
type Marker struct {
	LocationID uuid.UUID   `json:"location_id"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Popup      MarkerPopup `json:"popup"`
}

// Viewport describes the region the map should frame: the bounding box of
// the current markers plus padding, with the zoom capped so a lone marker
// does not zoom in to street level.
type Viewport struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
	Padding      float64 `json:"padding"`
	MaxZoom      int     `json:"max_zoom"`
}

// MapSnapshot is a point-in-time copy of the map view state, safe to render
// without holding any lock.
type MapSnapshot struct {
	State        MapState             `json:"state"`
	Markers      []Marker             `json:"markers"`
	UserPosition *entity.UserPosition `json:"user_position,omitempty"`
	Viewport     *Viewport            `json:"viewport,omitempty"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

// MapViewUsecase keeps the map presentation state in sync with discovery
// results. It owns no data loading; callers push state transitions into it.
type MapViewUsecase interface {
	// SetLoading moves the view to the loading state, keeping any markers
	// already on screen.
	SetLoading()

	// SetError moves the view to the error state with a display message.
	SetError(message string)

	// SetLocations replaces the marker set with one marker per located
	// center and recomputes the viewport. Coordinate-less centers are
	// skipped, never dropped from the caller's result list.
	SetLocations(locations []*entity.Location)

	// SetUserPosition pins the caller's position on the map without
	// widening the viewport bounds.
	SetUserPosition(position *entity.UserPosition)

	// SelectMarker reports a marker tap to the registered listener.
	SelectMarker(locationID uuid.UUID) error

	// OnSelect registers the marker tap listener.
	OnSelect(fn func(locationID uuid.UUID))

	// Snapshot returns a copy of the current view state.
	Snapshot() *MapSnapshot
}
