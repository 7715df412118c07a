package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

func TestInsertZoneEvent_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO zone_events \(event_id, vehicle_id, event_type, zone_id, timestamp\)`).
		WithArgs("evt-1", "V1", "exit", "zone_city", ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewZoneEventRepo(db)
	err = repo.Insert(context.Background(), &domain.ZoneTransition{
		EventID:   "evt-1",
		VehicleID: "V1",
		Event:     domain.ZoneEvent{Type: domain.ZoneExit, ZoneID: "zone_city", Timestamp: ts},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertZoneEvent_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO zone_events`).
		WillReturnError(sqlmock.ErrCancelled)

	repo := NewZoneEventRepo(db)
	err = repo.Insert(context.Background(), &domain.ZoneTransition{
		EventID:   "evt-1",
		VehicleID: "V1",
		Event:     domain.ZoneEvent{Type: domain.ZoneEnter, ZoneID: "zone_city", Timestamp: time.Unix(1, 0)},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
