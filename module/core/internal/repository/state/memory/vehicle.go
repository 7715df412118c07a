package memory

import (
	"sync"

	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/state"
)

var _ state.VehicleStateStore = (*VehicleStore)(nil)

type vehicleEntry struct {
	mu    sync.Mutex
	state *domain.VehicleState
}

// VehicleStore keeps one entry per vehicle for the lifetime of the process.
// mu only guards the entries map; each entry carries its own lock so that
// samples for different vehicles never wait on each other.
type VehicleStore struct {
	mu      sync.Mutex
	entries map[string]*vehicleEntry
}

func NewVehicleStore() *VehicleStore {
	return &VehicleStore{entries: make(map[string]*vehicleEntry)}
}

func (s *VehicleStore) entry(vehicleID string, create bool) *vehicleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[vehicleID]
	if !ok && create {
		e = &vehicleEntry{}
		s.entries[vehicleID] = e
	}
	return e
}

func (s *VehicleStore) Update(vehicleID string, fn state.UpdateFunc) error {
	return s.UpdateThen(vehicleID, fn, nil)
}

func (s *VehicleStore) UpdateThen(vehicleID string, fn state.UpdateFunc, committed func()) error {
	e := s.entry(vehicleID, true)

	e.mu.Lock()
	defer e.mu.Unlock()

	var prior *domain.VehicleState
	if e.state != nil {
		cp := e.state.Clone()
		prior = &cp
	}

	next, err := fn(prior)
	if err != nil {
		return err
	}
	next = next.Clone()
	e.state = &next

	if committed != nil {
		committed()
	}
	return nil
}

func (s *VehicleStore) Get(vehicleID string) (domain.VehicleState, bool) {
	e := s.entry(vehicleID, false)
	if e == nil {
		return domain.VehicleState{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return domain.VehicleState{}, false
	}
	return e.state.Clone(), true
}
