package domain

type Zone struct {
	ID        string  `json:"id" yaml:"id" validate:"required"`
	Name      string  `json:"name" yaml:"name"`
	CenterLat float64 `json:"center_lat" yaml:"center_lat" validate:"gte=-90,lte=90"`
	CenterLon float64 `json:"center_lon" yaml:"center_lon" validate:"gte=-180,lte=180"`
	RadiusM   float64 `json:"radius_m" yaml:"radius_m" validate:"gt=0"`
}

// ZoneDistance is a zone that contains a point, with the point's distance
// to the zone center in meters.
type ZoneDistance struct {
	ZoneID   string
	Distance float64
}
