package postgres

import (
	"context"
	"database/sql"

	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/database"
)

var _ database.LocationRepository = (*LocationRepo)(nil)

type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) Insert(ctx context.Context, sample *domain.LocationSample, zoneID *string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicle_locations (vehicle_id, latitude, longitude, timestamp, zone_id) VALUES ($1, $2, $3, $4, $5)`,
		sample.VehicleID, sample.Lat, sample.Lon, sample.Timestamp, nullString(zoneID),
	)
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
