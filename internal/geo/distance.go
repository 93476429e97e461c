// Package geo computes great-circle distances between contractor and order locations.
package geo

import (
	"math"

	"drillflow-dispatch/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Distance returns the haversine distance between a and b in kilometres.
// Missing or malformed points yield +Inf so that callers treat the distance as unknown.
func Distance(a, b *domain.Location) float64 {
	if !Valid(a) || !Valid(b) {
		return math.Inf(1)
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// Valid reports whether p is a usable coordinate. The (0,0) point is what
// upstream forms store for "no location" and is rejected.
func Valid(p *domain.Location) bool {
	if p == nil {
		return false
	}
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return false
	}
	return p.Lat != 0 || p.Lon != 0
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
