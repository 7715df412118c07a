package domain

import "time"

type LocationSample struct {
	VehicleID string
	Lat       float64
	Lon       float64
	Timestamp time.Time
}

type VehicleState struct {
	VehicleID     string    `json:"vehicle_id"`
	LastLat       float64   `json:"last_lat"`
	LastLon       float64   `json:"last_lon"`
	LastTimestamp time.Time `json:"last_timestamp"`
	// CurrentZoneID is nil while the vehicle is outside every zone.
	CurrentZoneID *string `json:"current_zone_id"`
}

// Clone returns a copy that shares no memory with s.
func (s VehicleState) Clone() VehicleState {
	if s.CurrentZoneID != nil {
		id := *s.CurrentZoneID
		s.CurrentZoneID = &id
	}
	return s
}

type SampleResult struct {
	VehicleID     string
	CurrentZoneID *string
	Events        []ZoneEvent
}

func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
