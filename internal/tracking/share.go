package tracking

import (
	"fmt"
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/structures"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// StartResult is what a successful session start hands back to the caller:
// the session itself, the public link and the message composed for the
// native share surface.
type StartResult struct {
	Session models.ShareSession `json:"session"`
	Link    string              `json:"link"`
	Message string              `json:"message"`
}

// ShareManager runs the live-share session state machine. At most one session
// is active at a time; an active session owns two timers, a repeating push and
// a single auto-expiry, both cancelled on stop from any path.
type ShareManager struct {
	mu        sync.Mutex
	conf      *structures.Config
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	clock     Clock
	transport ShareTransport
	tracker   *Tracker

	session     models.ShareSession
	pushTimer   Timer
	expiryTimer Timer
	active      atomic.Bool
}

func NewShareManager(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, tracker *Tracker, transport ShareTransport, clock Clock) *ShareManager {
	return &ShareManager{
		conf:      conf,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
		transport: transport,
		tracker:   tracker,
		session:   models.ShareSession{Status: models.SessionIdle},
	}
}

// Start begins a session. Fails with ErrShareActive when one is already
// running, without touching the existing session's timers. A non-positive
// duration falls back to the configured default.
func (m *ShareManager) Start(duration time.Duration) (StartResult, error) {
	if duration <= 0 {
		duration = m.conf.Share.DefaultDuration
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Status == models.SessionActive {
		return StartResult{}, ErrShareActive
	}

	id := uuid.NewString()
	m.session = models.ShareSession{
		ID:        id,
		StartedAt: m.clock.Now(),
		Duration:  duration,
		Status:    models.SessionActive,
	}
	m.schedulePushLocked()
	m.expiryTimer = m.clock.AfterFunc(duration, func() { m.stop(id, "expired") })
	m.active.Store(true)
	m.metrics.SetShareActive(true)

	link := fmt.Sprintf("https://%s/share/%s", m.conf.Share.LinkHost, id)
	m.logger.Infof(providers.TypeShare, "live share started: %s, expires in %s", id, duration)

	return StartResult{
		Session: m.session,
		Link:    link,
		Message: "I'm sharing my live location: " + link,
	}, nil
}

func (m *ShareManager) schedulePushLocked() {
	m.pushTimer = m.clock.AfterFunc(m.conf.Share.PushInterval, m.pushTick)
}

// pushTick forwards the current location to the transport. Failures are
// logged and counted, never retried, and never change session state.
func (m *ShareManager) pushTick() {
	m.mu.Lock()
	if m.session.Status != models.SessionActive {
		m.mu.Unlock()
		return
	}
	id := m.session.ID
	m.schedulePushLocked()
	m.mu.Unlock()

	point := m.tracker.Current()
	if err := m.transport.PushLocation(id, point); err != nil {
		m.logger.Warnf(providers.TypeShare, "share push failed: %s", err)
		m.metrics.IncSharePushes("error")
		return
	}
	m.metrics.IncSharePushes("ok")
}

// Stop terminates the session. Idempotent; a no-op when idle or stopped.
func (m *ShareManager) Stop() {
	m.mu.Lock()
	id := m.session.ID
	m.mu.Unlock()
	m.stop(id, "stopped")
}

func (m *ShareManager) stop(id, reason string) {
	m.mu.Lock()
	if m.session.Status != models.SessionActive || m.session.ID != id {
		m.mu.Unlock()
		return
	}
	if m.pushTimer != nil {
		m.pushTimer.Stop()
		m.pushTimer = nil
	}
	if m.expiryTimer != nil {
		m.expiryTimer.Stop()
		m.expiryTimer = nil
	}
	m.session = models.ShareSession{Status: models.SessionStopped}
	m.active.Store(false)
	m.metrics.SetShareActive(false)
	m.mu.Unlock()

	// Best-effort end-of-session notification so the remote channel can
	// retire the link; same fire-and-forget contract as pushes.
	if err := m.transport.EndSession(id); err != nil {
		m.logger.Warnf(providers.TypeShare, "share end notification failed: %s", err)
	}
	m.logger.Infof(providers.TypeShare, "live share %s: %s", reason, id)
}

// Active reports whether a session is running without taking the lock.
func (m *ShareManager) Active() bool {
	return m.active.Load()
}

func (m *ShareManager) Status() models.ShareSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}
