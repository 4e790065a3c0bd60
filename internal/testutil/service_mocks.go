package testutil

import (
	"guardian/internal/models"
	"guardian/internal/services"
	"guardian/internal/tracking"
	"sync"
	"time"
)

// MockTrackingService implements services.TrackingServiceInterface with
// settable return values and call recording.
type MockTrackingService struct {
	mu sync.Mutex

	CurrentPoint  models.LocationPoint
	HistoryPoints []models.LocationPoint
	ExportData    []byte
	ExportErr     error
	AddZoneResult models.SafeZone
	AddZoneErr    error
	RemoveResult  bool
	ZoneList      []models.SafeZone
	FavoriteList  []models.LocationPoint

	ClearCalls    []bool
	ClearErr      error
	AddedZones    []*services.ZoneInput
	RemovedIDs    []string
	AddedFavModes []bool
}

func (m *MockTrackingService) Current() models.LocationPoint {
	return m.CurrentPoint
}

func (m *MockTrackingService) History() []models.LocationPoint {
	return m.HistoryPoints
}

func (m *MockTrackingService) HistorySize() int {
	return len(m.HistoryPoints)
}

func (m *MockTrackingService) ClearHistory(confirm bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls = append(m.ClearCalls, confirm)
	if m.ClearErr != nil {
		return m.ClearErr
	}
	if !confirm {
		return services.ErrConfirmRequired
	}
	m.HistoryPoints = nil
	return nil
}

func (m *MockTrackingService) ExportHistory() ([]byte, error) {
	return m.ExportData, m.ExportErr
}

func (m *MockTrackingService) AddZone(input *services.ZoneInput) (models.SafeZone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddedZones = append(m.AddedZones, input)
	return m.AddZoneResult, m.AddZoneErr
}

func (m *MockTrackingService) RemoveZone(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovedIDs = append(m.RemovedIDs, id)
	return m.RemoveResult
}

func (m *MockTrackingService) Zones() []models.SafeZone {
	return m.ZoneList
}

func (m *MockTrackingService) ZoneCount() int {
	return len(m.ZoneList)
}

func (m *MockTrackingService) AddFavorite(p *models.LocationPoint) models.LocationPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddedFavModes = append(m.AddedFavModes, p != nil)
	point := m.CurrentPoint
	if p != nil {
		point = *p
	}
	m.FavoriteList = append(m.FavoriteList, point)
	return point
}

func (m *MockTrackingService) Favorites() []models.LocationPoint {
	return m.FavoriteList
}

// MockShareService implements services.ShareServiceInterface.
type MockShareService struct {
	mu sync.Mutex

	StartResult    tracking.StartResult
	StartErr       error
	Session        models.ShareSession
	IsActive       bool
	StartDurations []time.Duration
	StopCalls      int
}

func (m *MockShareService) Start(duration time.Duration) (tracking.StartResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartDurations = append(m.StartDurations, duration)
	return m.StartResult, m.StartErr
}

func (m *MockShareService) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StopCalls++
}

func (m *MockShareService) Status() models.ShareSession {
	return m.Session
}

func (m *MockShareService) Active() bool {
	return m.IsActive
}

// MockPlaybackService implements services.PlaybackServiceInterface.
type MockPlaybackService struct {
	mu sync.Mutex

	Current     models.PlaybackState
	ToggleCalls int
	SeekIndexes []int
}

func (m *MockPlaybackService) Toggle() models.PlaybackState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToggleCalls++
	m.Current.Playing = !m.Current.Playing
	return m.Current
}

func (m *MockPlaybackService) Seek(index int) models.PlaybackState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeekIndexes = append(m.SeekIndexes, index)
	m.Current.Index = index
	return m.Current
}

func (m *MockPlaybackService) State() models.PlaybackState {
	return m.Current
}

func (m *MockPlaybackService) Stop() {}

// MockSosService implements services.SosServiceInterface.
type MockSosService struct {
	mu sync.Mutex

	Result       tracking.SosResult
	Err          error
	TriggerCalls int
}

func (m *MockSosService) Trigger() (tracking.SosResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TriggerCalls++
	return m.Result, m.Err
}
