package core

import (
	"context"
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nandanugg/geofence-events/module/core/domain"
	handler "github.com/nandanugg/geofence-events/module/core/internal/handler/http"
	"github.com/nandanugg/geofence-events/module/core/internal/handler/subscriber"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/database/postgres"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/publisher/rabbitmq"
	"github.com/nandanugg/geofence-events/module/core/internal/repository/state/memory"
	"github.com/nandanugg/geofence-events/module/core/service"
)

type Module struct {
	Engine      *service.MembershipEngine
	LocationSvc *service.LocationService
	handler     *handler.VehicleHandler
	subscriber  *subscriber.LocationSubscriber
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, zones []domain.Zone) (*Module, error) {
	catalog, err := service.NewZoneCatalog(zones)
	if err != nil {
		return nil, fmt.Errorf("zone catalog: %w", err)
	}

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		return nil, err
	}

	zoneEventPub, err := rabbitmq.NewZoneEventPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("zone event publisher: %w", err)
	}

	engine := service.NewMembershipEngine(catalog, memory.NewVehicleStore())
	locationSvc := service.NewLocationService(
		engine,
		catalog,
		postgres.NewLocationRepo(db),
		postgres.NewZoneEventRepo(db),
		zoneEventPub,
	)

	h := handler.NewVehicleHandler(locationSvc)
	sub := subscriber.NewLocationSubscriber(mqttClient, locationSvc)

	return &Module{
		Engine:      engine,
		LocationSvc: locationSvc,
		handler:     h,
		subscriber:  sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}
