package publisher

import (
	"context"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

type ZoneEventPublisher interface {
	PublishTransition(ctx context.Context, t *domain.ZoneTransition) error
}
