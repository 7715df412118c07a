package service

import (
	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/state"
)

// MembershipEngine tracks which zone each vehicle is in and reports
// enter/exit transitions. It performs no I/O.
type MembershipEngine struct {
	catalog *ZoneCatalog
	store   state.VehicleStateStore
}

func NewMembershipEngine(catalog *ZoneCatalog, store state.VehicleStateStore) *MembershipEngine {
	return &MembershipEngine{
		catalog: catalog,
		store:   store,
	}
}

func (e *MembershipEngine) ResolveZone(lat, lon float64) (string, bool) {
	hits := e.catalog.ContainingZones(lat, lon)
	if len(hits) == 0 {
		return "", false
	}
	return hits[0].ZoneID, true
}

func (e *MembershipEngine) RecordSample(sample domain.LocationSample) (domain.SampleResult, error) {
	return e.RecordSampleThen(sample, nil)
}

// RecordSampleThen records the sample and, once the new state is stored,
// calls committed with the result while the vehicle is still locked. Calls to
// committed for one vehicle happen in the order its state changed.
func (e *MembershipEngine) RecordSampleThen(sample domain.LocationSample, committed func(domain.SampleResult)) (domain.SampleResult, error) {
	if !domain.ValidCoordinates(sample.Lat, sample.Lon) {
		return domain.SampleResult{}, domain.ErrInvalidCoordinates
	}

	var result domain.SampleResult
	var onCommit func()
	if committed != nil {
		onCommit = func() { committed(result) }
	}

	err := e.store.UpdateThen(sample.VehicleID, func(prior *domain.VehicleState) (domain.VehicleState, error) {
		var oldZone *string
		if prior != nil {
			oldZone = prior.CurrentZoneID
		}

		var newZone *string
		if id, ok := e.ResolveZone(sample.Lat, sample.Lon); ok {
			newZone = &id
		}

		result = domain.SampleResult{
			VehicleID:     sample.VehicleID,
			CurrentZoneID: newZone,
			Events:        transitionEvents(oldZone, newZone, sample),
		}

		return domain.VehicleState{
			VehicleID:     sample.VehicleID,
			LastLat:       sample.Lat,
			LastLon:       sample.Lon,
			LastTimestamp: sample.Timestamp,
			CurrentZoneID: newZone,
		}, nil
	}, onCommit)
	if err != nil {
		return domain.SampleResult{}, err
	}
	return result, nil
}

func (e *MembershipEngine) GetStatus(vehicleID string) (domain.VehicleState, error) {
	st, ok := e.store.Get(vehicleID)
	if !ok {
		return domain.VehicleState{}, domain.ErrVehicleNotFound
	}
	return st, nil
}

func transitionEvents(oldZone, newZone *string, sample domain.LocationSample) []domain.ZoneEvent {
	if sameZone(oldZone, newZone) {
		return []domain.ZoneEvent{}
	}

	events := make([]domain.ZoneEvent, 0, 2)
	if oldZone != nil {
		events = append(events, domain.ZoneEvent{Type: domain.ZoneExit, ZoneID: *oldZone, Timestamp: sample.Timestamp})
	}
	if newZone != nil {
		events = append(events, domain.ZoneEvent{Type: domain.ZoneEnter, ZoneID: *newZone, Timestamp: sample.Timestamp})
	}
	return events
}

func sameZone(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
