package testutil

import (
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/tracking"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel returns the number of recorded entries for a level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	Samples          int
	ProviderFailures int
	ZoneTransitions  map[string]int
	SharePushes      map[string]int
	SosDispatches    map[string]int
	HistorySize      int
	ShareActive      bool
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncSamples() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Samples++
}

func (m *MockMetrics) IncProviderFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProviderFailures++
}

func (m *MockMetrics) IncZoneTransitions(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ZoneTransitions == nil {
		m.ZoneTransitions = make(map[string]int)
	}
	m.ZoneTransitions[event]++
}

func (m *MockMetrics) IncSharePushes(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SharePushes == nil {
		m.SharePushes = make(map[string]int)
	}
	m.SharePushes[result]++
}

func (m *MockMetrics) IncSosDispatches(channel, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SosDispatches == nil {
		m.SosDispatches = make(map[string]int)
	}
	m.SosDispatches[channel+":"+result]++
}

func (m *MockMetrics) SetHistorySize(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistorySize = count
}

func (m *MockMetrics) SetShareActive(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShareActive = active
}

// MockCache implements providers.CacheProviderInterface over a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Data == nil {
		m.Data = make(map[string][]byte)
	}
	m.Data[key] = value
}

// PushCall records one transport push.
type PushCall struct {
	SessionID string
	Point     models.LocationPoint
}

// MockTransport implements tracking.ShareTransport; set PushErr to make
// pushes fail.
type MockTransport struct {
	mu      sync.Mutex
	Pushes  []PushCall
	Ended   []string
	PushErr error
}

func (m *MockTransport) PushLocation(sessionID string, p models.LocationPoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pushes = append(m.Pushes, PushCall{SessionID: sessionID, Point: p})
	return m.PushErr
}

func (m *MockTransport) EndSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Ended = append(m.Ended, sessionID)
	return nil
}

func (m *MockTransport) PushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Pushes)
}

// OpenCall records one SOS channel attempt.
type OpenCall struct {
	Kind    tracking.ChannelKind
	Payload string
}

// MockChannelOpener implements tracking.ChannelOpener. Accept lists the
// channel kinds that report as opened; nil accepts everything.
type MockChannelOpener struct {
	mu     sync.Mutex
	Accept []tracking.ChannelKind
	Calls  []OpenCall
}

func (m *MockChannelOpener) OpenChannel(kind tracking.ChannelKind, payload string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, OpenCall{Kind: kind, Payload: payload})
	if m.Accept == nil {
		return true
	}
	for _, k := range m.Accept {
		if k == kind {
			return true
		}
	}
	return false
}
