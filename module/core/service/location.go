package service

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/database"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/publisher"
)

type membershipEngine interface {
	RecordSampleThen(sample domain.LocationSample, committed func(domain.SampleResult)) (domain.SampleResult, error)
	GetStatus(vehicleID string) (domain.VehicleState, error)
}

// LocationService applies a sample to the membership engine and fans the
// outcome out to the archive and the broker while the vehicle is still locked,
// so both sinks see one vehicle's transitions in state order. Sink failures
// are logged only; the engine's result is authoritative.
type LocationService struct {
	engine    membershipEngine
	catalog   *ZoneCatalog
	locations database.LocationRepository
	events    database.ZoneEventRepository
	publisher publisher.ZoneEventPublisher
	newID     func() string
}

func NewLocationService(
	engine membershipEngine,
	catalog *ZoneCatalog,
	locations database.LocationRepository,
	events database.ZoneEventRepository,
	pub publisher.ZoneEventPublisher,
) *LocationService {
	return &LocationService{
		engine:    engine,
		catalog:   catalog,
		locations: locations,
		events:    events,
		publisher: pub,
		newID:     func() string { return uuid.NewString() },
	}
}

func (s *LocationService) Ingest(ctx context.Context, sample domain.LocationSample) (domain.SampleResult, error) {
	result, err := s.engine.RecordSampleThen(sample, func(result domain.SampleResult) {
		s.dispatch(ctx, sample, result)
	})
	if err != nil {
		return domain.SampleResult{}, err
	}
	return result, nil
}

func (s *LocationService) dispatch(ctx context.Context, sample domain.LocationSample, result domain.SampleResult) {
	logger := log.WithField("vehicle_id", sample.VehicleID)

	if err := s.locations.Insert(ctx, &sample, result.CurrentZoneID); err != nil {
		logger.Warnf("archive location: %v", err)
	}

	for _, ev := range result.Events {
		t := &domain.ZoneTransition{
			EventID:   s.newID(),
			VehicleID: sample.VehicleID,
			Event:     ev,
		}
		evLogger := logger.WithFields(log.Fields{"zone_id": ev.ZoneID, "event_type": ev.Type})
		evLogger.Info("zone transition")

		if err := s.events.Insert(ctx, t); err != nil {
			evLogger.Warnf("archive zone event: %v", err)
		}
		if err := s.publisher.PublishTransition(ctx, t); err != nil {
			evLogger.Warnf("publish zone event: %v", err)
		}
	}
}

func (s *LocationService) GetStatus(_ context.Context, vehicleID string) (domain.VehicleState, error) {
	return s.engine.GetStatus(vehicleID)
}

func (s *LocationService) ListZones(_ context.Context) []domain.Zone {
	return s.catalog.Zones()
}
