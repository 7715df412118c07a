package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

const topicPattern = "/fleet/vehicle/+/location"

type locationService interface {
	Ingest(ctx context.Context, sample domain.LocationSample) (domain.SampleResult, error)
}

type locationMessage struct {
	VehicleID string  `json:"vehicle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type LocationSubscriber struct {
	client      mqtt.Client
	locationSvc locationService
}

func NewLocationSubscriber(client mqtt.Client, locationSvc locationService) *LocationSubscriber {
	return &LocationSubscriber{
		client:      client,
		locationSvc: locationSvc,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithField("topic", msg.Topic()).Warnf("invalid location message: %v", err)
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		log.WithField("topic", msg.Topic()).Warnf("validation error: %v", err)
		return
	}

	sample := domain.LocationSample{
		VehicleID: raw.VehicleID,
		Lat:       raw.Latitude,
		Lon:       raw.Longitude,
		Timestamp: time.Unix(raw.Timestamp, 0),
	}

	result, err := s.locationSvc.Ingest(context.Background(), sample)
	if err != nil {
		entry := log.WithField("vehicle_id", raw.VehicleID)
		if errors.Is(err, domain.ErrInvalidCoordinates) {
			entry.Warnf("rejected sample: %v", err)
			return
		}
		entry.Errorf("ingest location: %v", err)
		return
	}

	log.WithFields(log.Fields{
		"vehicle_id": raw.VehicleID,
		"events":     len(result.Events),
	}).Debug("location processed")
}

// validateLocationMessage checks the wire payload only; coordinate ranges are
// enforced by the membership engine.
func validateLocationMessage(msg *locationMessage) error {
	if msg.VehicleID == "" {
		return fmt.Errorf("vehicle_id: required")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
