package database

import (
	"context"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

type LocationRepository interface {
	Insert(ctx context.Context, sample *domain.LocationSample, zoneID *string) error
}

type ZoneEventRepository interface {
	Insert(ctx context.Context, t *domain.ZoneTransition) error
}
