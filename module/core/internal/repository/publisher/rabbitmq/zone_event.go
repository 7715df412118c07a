package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/events"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/publisher"
)

var _ publisher.ZoneEventPublisher = (*ZoneEventPublisher)(nil)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type ZoneEventPublisher struct {
	ch channel
}

func NewZoneEventPublisher(conn *amqp.Connection) (*ZoneEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := events.DeclareTopology(ch); err != nil {
		return nil, err
	}

	return &ZoneEventPublisher{ch: ch}, nil
}

func (p *ZoneEventPublisher) PublishTransition(ctx context.Context, t *domain.ZoneTransition) error {
	body, err := json.Marshal(events.NewZoneEventMessage(t))
	if err != nil {
		return fmt.Errorf("marshal zone event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, events.ExchangeName, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    t.EventID,
		Timestamp:    t.Event.Timestamp,
		Body:         body,
	})
}
