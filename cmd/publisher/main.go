package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nandanugg/geofence-events/config"
	"github.com/nandanugg/geofence-events/module/core/domain"
)

type locationMessage struct {
	VehicleID string  `json:"vehicle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type options struct {
	interval  time.Duration
	broker    string
	vehicles  int
	nearRatio float64
	zonesFile string
	logLevel  string
}

func randomVehicleID() string {
	letter := string(charset[rand.Intn(26)])
	digits := fmt.Sprintf("%04d", rand.Intn(10000))
	suffix := string([]byte{charset[rand.Intn(26)], charset[rand.Intn(26)], charset[rand.Intn(26)]})
	return letter + digits + suffix
}

// randomPoint picks a point inside or just outside a random zone with
// probability nearRatio, otherwise anywhere on the globe.
func randomPoint(zones []domain.Zone, nearRatio float64) (float64, float64) {
	if len(zones) > 0 && rand.Float64() < nearRatio {
		z := zones[rand.Intn(len(zones))]
		// 1 degree of latitude is ~111km; spread up to 1.5x the radius
		spread := z.RadiusM * 1.5 / 111000
		lat := z.CenterLat + (rand.Float64()*2-1)*spread
		lon := z.CenterLon + (rand.Float64()*2-1)*spread
		return clamp(lat, -90, 90), clamp(lon, -180, 180)
	}
	return -90 + rand.Float64()*180, -180 + rand.Float64()*360
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func newRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "publisher",
		Short:         "Publish mock vehicle location pings to MQTT.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.interval <= 0 {
				return fmt.Errorf("interval must be positive")
			}
			if opts.vehicles <= 0 {
				return fmt.Errorf("vehicles must be positive")
			}
			return run(opts)
		},
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	cmd.Flags().DurationVarP(&opts.interval, "interval", "i", 2*time.Second, "Delay between pings.")
	cmd.Flags().StringVar(&opts.broker, "broker", broker, "MQTT broker URL.")
	cmd.Flags().IntVar(&opts.vehicles, "vehicles", 5, "Size of the simulated vehicle pool.")
	cmd.Flags().Float64Var(&opts.nearRatio, "near-ratio", 0.7, "Share of pings placed around a zone.")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "INFO"), "DEBUG, INFO, WARN or ERROR.")
	cmd.Flags().StringVar(&opts.zonesFile, "zones", os.Getenv("ZONES_FILE"), "Zones YAML file; defaults to the built-in catalog.")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(opts options) error {
	if err := config.ConfigureLogging(&config.Config{LogLevel: opts.logLevel}); err != nil {
		return err
	}

	zones, err := config.LoadZones(opts.zonesFile)
	if err != nil {
		return err
	}

	mqttOpts := mqtt.NewClientOptions().
		AddBroker(opts.broker).
		SetClientID("fleet-mock-publisher")

	client := mqtt.NewClient(mqttOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	defer client.Disconnect(250)

	vehiclePool := make([]string, opts.vehicles)
	for i := range vehiclePool {
		vehiclePool[i] = randomVehicleID()
	}

	log.Infof("connected to %s, publishing every %s...", opts.broker, opts.interval)
	log.Infof("vehicle pool: %v", vehiclePool)

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for range ticker.C {
		vid := vehiclePool[rand.Intn(len(vehiclePool))]
		lat, lon := randomPoint(zones, opts.nearRatio)

		msg := locationMessage{
			VehicleID: vid,
			Latitude:  lat,
			Longitude: lon,
			Timestamp: time.Now().Unix(),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/fleet/vehicle/%s/location", vid)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			log.Warnf("publish to %s: %v", topic, err)
			continue
		}

		logPublished(topic, payload)
	}
	return nil
}

func logPublished(topic string, payload []byte) {
	log.WithField("topic", topic).Infof("published %s", payload)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
