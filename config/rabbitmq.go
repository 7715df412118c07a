package config

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

func NewRabbitMQ(cfg *Config) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}

	watchClose(conn.NotifyClose(make(chan *amqp.Error, 1)))
	return conn, nil
}

// watchClose logs the reason a broker connection went away. A graceful
// Close delivers nothing and just closes the channel.
func watchClose(closed <-chan *amqp.Error) {
	go func() {
		for err := range closed {
			log.WithFields(log.Fields{
				"code":   err.Code,
				"server": err.Server,
			}).Warnf("rabbitmq connection lost: %s", err.Reason)
		}
	}()
}
