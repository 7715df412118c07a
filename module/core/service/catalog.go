package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

const earthRadiusMeters = 6371000

// ZoneCatalog is an immutable set of circular zones. It is safe for
// concurrent use without locking.
type ZoneCatalog struct {
	zones []domain.Zone
}

func NewZoneCatalog(zones []domain.Zone) (*ZoneCatalog, error) {
	seen := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		if z.ID == "" {
			return nil, fmt.Errorf("%w: empty id", domain.ErrInvalidZone)
		}
		if _, dup := seen[z.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidZone, z.ID)
		}
		seen[z.ID] = struct{}{}

		if !(z.RadiusM > 0) {
			return nil, fmt.Errorf("%w: %s: radius must be positive", domain.ErrInvalidZone, z.ID)
		}
		if !domain.ValidCoordinates(z.CenterLat, z.CenterLon) {
			return nil, fmt.Errorf("%w: %s: center out of range", domain.ErrInvalidZone, z.ID)
		}
	}

	return &ZoneCatalog{zones: append([]domain.Zone(nil), zones...)}, nil
}

func (c *ZoneCatalog) Zones() []domain.Zone {
	return append([]domain.Zone(nil), c.zones...)
}

// ContainingZones returns every zone whose radius covers the point, closest
// center first. Equal distances are ordered by zone id.
func (c *ZoneCatalog) ContainingZones(lat, lon float64) []domain.ZoneDistance {
	var hits []domain.ZoneDistance
	for _, z := range c.zones {
		dist := haversine(lat, lon, z.CenterLat, z.CenterLon)
		if dist <= z.RadiusM {
			hits = append(hits, domain.ZoneDistance{ZoneID: z.ID, Distance: dist})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ZoneID < hits[j].ZoneID
	})
	return hits
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
