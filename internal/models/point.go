package models

import (
	"math"
	"time"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// LocationPoint is a single position fix. Immutable once created.
type LocationPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLocationPoint(lat, lng float64, ts time.Time) LocationPoint {
	return LocationPoint{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: ts,
	}
}

// HaversineMeters returns the great-circle distance between two coordinates.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// DistanceTo returns the great-circle distance to another point in meters.
func (p LocationPoint) DistanceTo(other LocationPoint) float64 {
	return HaversineMeters(p.Latitude, p.Longitude, other.Latitude, other.Longitude)
}
