// Package events holds the RabbitMQ contract for zone transition events,
// shared by the server and by consumers such as cmd/event_listener.
package events

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

const (
	ExchangeName = "fleet.events"
	QueueName    = "zone_events"
)

// ZoneEventMessage is the JSON body published for every transition.
type ZoneEventMessage struct {
	EventID   string               `json:"event_id"`
	VehicleID string               `json:"vehicle_id"`
	EventType domain.ZoneEventType `json:"event_type"`
	ZoneID    string               `json:"zone_id"`
	Timestamp int64                `json:"timestamp"`
}

func NewZoneEventMessage(t *domain.ZoneTransition) ZoneEventMessage {
	return ZoneEventMessage{
		EventID:   t.EventID,
		VehicleID: t.VehicleID,
		EventType: t.Event.Type,
		ZoneID:    t.Event.ZoneID,
		Timestamp: t.Event.Timestamp.Unix(),
	}
}

// DeclareTopology declares the fanout exchange and the durable queue bound
// to it. Publisher and listener both call it so either may start first.
func DeclareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeName, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(QueueName, "", ExchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}
