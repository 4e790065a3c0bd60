package models

// SafeZone is a named circular region. Zones are replaced on edit, never
// mutated in place.
type SafeZone struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius"`
}

// Contains reports whether the point lies within the zone's radius.
func (z SafeZone) Contains(p LocationPoint) bool {
	return HaversineMeters(z.Latitude, z.Longitude, p.Latitude, p.Longitude) <= z.RadiusMeters
}

type GeofenceEventType string

const (
	GeofenceEntry GeofenceEventType = "geofence_entry"
	GeofenceExit  GeofenceEventType = "geofence_exit"
)

// GeofenceEvent is emitted once per membership transition per zone.
type GeofenceEvent struct {
	ZoneID   string            `json:"zone_id"`
	Title    string            `json:"title"`
	Event    GeofenceEventType `json:"event"`
	Location LocationPoint     `json:"location"`
}
