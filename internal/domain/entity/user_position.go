package entity

// UserPosition is the reference point for a single "find near me" ranking
// pass. It is obtained once per request and never persisted.
type UserPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinates converts the position into a Coordinates value for distance
// math.
func (p UserPosition) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
}
