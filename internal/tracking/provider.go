package tracking

import (
	"guardian/internal/models"
	"guardian/internal/structures"
	"math/rand"
	"sync"
	"time"
)

// LocationProvider produces the next position fix. A production binding wraps
// a real GPS/location callback; the daemon ships with a simulated random walk.
type LocationProvider interface {
	NextPoint(prev models.LocationPoint) (models.LocationPoint, error)
}

// SimulatedProvider perturbs the previous coordinate by a small uniform delta
// per axis and stamps the current time.
type SimulatedProvider struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	jitter float64
	clock  Clock
}

func NewSimulatedProvider(conf *structures.Config, clock Clock) LocationProvider {
	return &SimulatedProvider{
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		jitter: conf.Tracking.JitterDegrees,
		clock:  clock,
	}
}

func (sp *SimulatedProvider) NextPoint(prev models.LocationPoint) (models.LocationPoint, error) {
	sp.mu.Lock()
	dLat := (sp.rnd.Float64() - 0.5) * 2 * sp.jitter
	dLng := (sp.rnd.Float64() - 0.5) * 2 * sp.jitter
	sp.mu.Unlock()

	return models.NewLocationPoint(prev.Latitude+dLat, prev.Longitude+dLng, sp.clock.Now()), nil
}

// ScriptedProvider replays a fixed sequence of points. A nil entry yields
// ErrNoFix; after the script runs out every call fails.
type ScriptedProvider struct {
	mu     sync.Mutex
	script []*models.LocationPoint
	pos    int
}

func NewScriptedProvider(script ...*models.LocationPoint) *ScriptedProvider {
	return &ScriptedProvider{script: script}
}

func (sp *ScriptedProvider) NextPoint(_ models.LocationPoint) (models.LocationPoint, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.pos >= len(sp.script) {
		return models.LocationPoint{}, ErrNoFix
	}
	p := sp.script[sp.pos]
	sp.pos++
	if p == nil {
		return models.LocationPoint{}, ErrNoFix
	}
	return *p, nil
}
