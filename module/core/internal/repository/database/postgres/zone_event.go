package postgres

import (
	"context"
	"database/sql"

	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/database"
)

var _ database.ZoneEventRepository = (*ZoneEventRepo)(nil)

type ZoneEventRepo struct {
	db *sql.DB
}

func NewZoneEventRepo(db *sql.DB) *ZoneEventRepo {
	return &ZoneEventRepo{db: db}
}

func (r *ZoneEventRepo) Insert(ctx context.Context, t *domain.ZoneTransition) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO zone_events (event_id, vehicle_id, event_type, zone_id, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		t.EventID, t.VehicleID, string(t.Event.Type), t.Event.ZoneID, t.Event.Timestamp,
	)
	return err
}
