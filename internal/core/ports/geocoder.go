package ports

import (
	"context"
)

// GeoPoint is a WGS84 coordinate pair resolved for a service area.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Geocoder resolves a service area name to map coordinates. Used by the
// dashboard to plot active orders; failures for individual areas are expected
// and should not fail the whole dashboard.
type Geocoder interface {
	Geocode(ctx context.Context, area string) (GeoPoint, error)
}
