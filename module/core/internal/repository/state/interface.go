package state

import (
	"github.com/nandanugg/geofence-events/module/core/domain"
)

// UpdateFunc receives the stored state for a vehicle, or nil if the vehicle
// has never been seen, and returns the state to store in its place.
type UpdateFunc func(prior *domain.VehicleState) (domain.VehicleState, error)

type VehicleStateStore interface {
	// Update runs fn while holding the vehicle's lock. Nothing is stored
	// when fn returns an error.
	Update(vehicleID string, fn UpdateFunc) error
	// UpdateThen is Update followed by committed, which runs after the new
	// state is stored and before the vehicle's lock is released. Work done in
	// committed is therefore ordered the same way as the state changes.
	UpdateThen(vehicleID string, fn UpdateFunc, committed func()) error
	Get(vehicleID string) (domain.VehicleState, bool)
}
