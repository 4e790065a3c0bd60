package tracking

import (
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/structures"
	"sort"
	"sync"
)

func NewHistory(conf *structures.Config) *models.HistoryBuffer {
	return models.NewHistoryBuffer(conf.Tracking.MaxHistory)
}

// Tracker owns the current location, the movement history and the safe-zone
// set. Every sample flows through here: the provider produces a fix, the
// history records it and the zones are evaluated edge-triggered, emitting one
// entry and one exit event per zone per membership transition.
type Tracker struct {
	mu        sync.RWMutex
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	provider  LocationProvider
	clock     Clock
	history   *models.HistoryBuffer
	zones     map[string]models.SafeZone
	inside    map[string]bool
	current   models.LocationPoint
	observers []func(models.GeofenceEvent)
}

func NewTracker(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, provider LocationProvider, history *models.HistoryBuffer, clock Clock) *Tracker {
	return &Tracker{
		logger:   logger,
		metrics:  metrics,
		provider: provider,
		clock:    clock,
		history:  history,
		zones:    make(map[string]models.SafeZone),
		inside:   make(map[string]bool),
		current: models.NewLocationPoint(
			conf.Tracking.OriginLatitude,
			conf.Tracking.OriginLongitude,
			clock.Now(),
		),
	}
}

// Sample takes one fix from the provider, appends it to history and evaluates
// the safe zones. When the provider has no fix, the last known point is reused
// with a fresh timestamp: suspending would silently stop geofence evaluation,
// which is the safety-critical consumer.
func (t *Tracker) Sample() models.LocationPoint {
	t.mu.Lock()

	next, err := t.provider.NextPoint(t.current)
	if err != nil {
		t.logger.Warnf(providers.TypeTracking, "location fix failed, reusing last known point: %s", err)
		t.metrics.IncProviderFailures()
		next = models.NewLocationPoint(t.current.Latitude, t.current.Longitude, t.clock.Now())
	}

	t.current = next
	t.history.Append(next)
	t.metrics.IncSamples()
	t.metrics.SetHistorySize(t.history.Len())

	events := t.evaluateZonesLocked(next)
	observers := make([]func(models.GeofenceEvent), len(t.observers))
	copy(observers, t.observers)
	t.mu.Unlock()

	for _, ev := range events {
		for _, ob := range observers {
			ob(ev)
		}
	}
	return next
}

func (t *Tracker) evaluateZonesLocked(p models.LocationPoint) []models.GeofenceEvent {
	var events []models.GeofenceEvent
	for id, zone := range t.zones {
		in := zone.Contains(p)
		was := t.inside[id]
		if in == was {
			continue
		}
		t.inside[id] = in
		ev := models.GeofenceEvent{
			ZoneID:   id,
			Title:    zone.Title,
			Location: p,
		}
		if in {
			ev.Event = models.GeofenceEntry
			t.logger.Infof(providers.TypeTracking, "entered zone %q", zone.Title)
		} else {
			ev.Event = models.GeofenceExit
			t.logger.Infof(providers.TypeTracking, "exited zone %q", zone.Title)
		}
		t.metrics.IncZoneTransitions(string(ev.Event))
		events = append(events, ev)
	}
	return events
}

// OnZoneEvent registers an observer for geofence transitions.
func (t *Tracker) OnZoneEvent(fn func(models.GeofenceEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

func (t *Tracker) Current() models.LocationPoint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *Tracker) History() *models.HistoryBuffer {
	return t.history
}

func (t *Tracker) ClearHistory() {
	t.history.Clear()
	t.metrics.SetHistorySize(0)
}

// AddZone inserts or replaces a zone. Replacing resets the zone's membership
// state so the next sample re-evaluates it from scratch.
func (t *Tracker) AddZone(zone models.SafeZone) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.zones[zone.ID] = zone
	delete(t.inside, zone.ID)
}

func (t *Tracker) RemoveZone(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.zones[id]; !ok {
		return false
	}
	delete(t.zones, id)
	delete(t.inside, id)
	return true
}

func (t *Tracker) Zones() []models.SafeZone {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.SafeZone, 0, len(t.zones))
	for _, z := range t.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Title < out[j].Title
	})
	return out
}

func (t *Tracker) ZoneCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.zones)
}
