package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nandanugg/geofence-events/module/core/domain"
	"github.com/nandanugg/geofence-events/module/core/events"
)

type fakeChannel struct {
	exchange string
	msgs     []amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, _ string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.msgs = append(f.msgs, msg)
	return f.err
}

func TestPublishTransition_Success(t *testing.T) {
	ch := &fakeChannel{}
	pub := &ZoneEventPublisher{ch: ch}

	ts := time.Unix(1715003456, 0)
	err := pub.PublishTransition(context.Background(), &domain.ZoneTransition{
		EventID:   "0b7c3f8e-6f53-4b8e-9d52-2f0a8f1f5a11",
		VehicleID: "V1",
		Event:     domain.ZoneEvent{Type: domain.ZoneEnter, ZoneID: "zone_airport", Timestamp: ts},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.exchange != events.ExchangeName {
		t.Errorf("expected exchange %s, got %s", events.ExchangeName, ch.exchange)
	}
	if len(ch.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(ch.msgs))
	}

	msg := ch.msgs[0]
	if msg.MessageId != "0b7c3f8e-6f53-4b8e-9d52-2f0a8f1f5a11" {
		t.Errorf("unexpected message id %s", msg.MessageId)
	}

	var body events.ZoneEventMessage
	if err := json.Unmarshal(msg.Body, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.EventType != domain.ZoneEnter {
		t.Errorf("expected enter, got %s", body.EventType)
	}
	if body.ZoneID != "zone_airport" {
		t.Errorf("expected zone_airport, got %s", body.ZoneID)
	}
	if body.Timestamp != 1715003456 {
		t.Errorf("expected 1715003456, got %d", body.Timestamp)
	}
}

func TestPublishTransition_ChannelError(t *testing.T) {
	pub := &ZoneEventPublisher{ch: &fakeChannel{err: errors.New("channel closed")}}

	err := pub.PublishTransition(context.Background(), &domain.ZoneTransition{
		VehicleID: "V1",
		Event:     domain.ZoneEvent{Type: domain.ZoneExit, ZoneID: "zone_city", Timestamp: time.Unix(1, 0)},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
