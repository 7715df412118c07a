package domain

import "time"

type ZoneEventType string

const (
	ZoneEnter ZoneEventType = "enter"
	ZoneExit  ZoneEventType = "exit"
)

type ZoneEvent struct {
	Type      ZoneEventType `json:"event_type"`
	ZoneID    string        `json:"zone_id"`
	Timestamp time.Time     `json:"timestamp"`
}

// ZoneTransition is a ZoneEvent addressed to a vehicle, as it leaves the
// service through the broker and the archive.
type ZoneTransition struct {
	EventID   string
	VehicleID string
	Event     ZoneEvent
}
