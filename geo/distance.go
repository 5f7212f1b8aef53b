package geo

import (
	"math"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

// earthRadius in meters, the value commonly used for haversine.
const earthRadius = 6371000.0

// Distance returns the great circle distance between two locations in
// meters, computed with the haversine formula.
func Distance(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
