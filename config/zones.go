package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

// DefaultZones is the catalog used when no zones file is configured.
var DefaultZones = []domain.Zone{
	{ID: "zone_airport", Name: "Airport", CenterLat: 12.955, CenterLon: 77.665, RadiusM: 1500},
	{ID: "zone_city", Name: "City Center", CenterLat: 12.975, CenterLon: 77.605, RadiusM: 1200},
}

type zonesFile struct {
	Zones []domain.Zone `yaml:"zones" validate:"required,min=1,unique=ID,dive"`
}

// LoadZones reads the zone catalog from a YAML file, or returns the default
// catalog when path is empty.
func LoadZones(path string) ([]domain.Zone, error) {
	if path == "" {
		return append([]domain.Zone(nil), DefaultZones...), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zones file: %w", err)
	}
	return ParseZones(data)
}

func ParseZones(data []byte) ([]domain.Zone, error) {
	var f zonesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse zones: %w", err)
	}

	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("validate zones: %w", err)
	}
	return f.Zones, nil
}
