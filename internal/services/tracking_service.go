package services

import (
	"errors"
	"fmt"
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/tracking"
	"guardian/internal/tracking/interfaces"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gookit/validate"
)

const (
	DefaultZoneTitle  = "Safe Zone"
	DefaultZoneRadius = 100.0
)

var (
	// ErrInvalidZone rejects zone input with missing or out-of-range
	// coordinates before anything is created.
	ErrInvalidZone = errors.New("invalid zone input")

	// ErrConfirmRequired guards the destructive history clear.
	ErrConfirmRequired = errors.New("history clear requires confirmation")
)

// ZoneInput is the user-supplied shape of a safe zone. Coordinates are
// pointers so that absent and zero are distinguishable.
type ZoneInput struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Latitude     *float64 `json:"latitude" validate:"required|min:-90|max:90"`
	Longitude    *float64 `json:"longitude" validate:"required|min:-180|max:180"`
	RadiusMeters float64  `json:"radius" validate:"min:0"`
}

type TrackingServiceInterface interface {
	Current() models.LocationPoint
	History() []models.LocationPoint
	HistorySize() int
	ClearHistory(confirm bool) error
	ExportHistory() ([]byte, error)
	AddZone(input *ZoneInput) (models.SafeZone, error)
	RemoveZone(id string) bool
	Zones() []models.SafeZone
	ZoneCount() int
	AddFavorite(p *models.LocationPoint) models.LocationPoint
	Favorites() []models.LocationPoint
}

type TrackingService struct {
	logger     providers.Logger
	tracker    *tracking.Tracker
	playback   *tracking.PlaybackController
	favorites  *models.FavoriteStore
	compressor interfaces.CompressorInterface
}

func NewTrackingService(logger providers.Logger, tracker *tracking.Tracker, playback *tracking.PlaybackController, favorites *models.FavoriteStore, compressor interfaces.CompressorInterface) TrackingServiceInterface {
	return &TrackingService{
		logger:     logger,
		tracker:    tracker,
		playback:   playback,
		favorites:  favorites,
		compressor: compressor,
	}
}

func (ts *TrackingService) Current() models.LocationPoint {
	return ts.tracker.Current()
}

func (ts *TrackingService) History() []models.LocationPoint {
	return ts.tracker.History().Points()
}

func (ts *TrackingService) HistorySize() int {
	return ts.tracker.History().Len()
}

// ClearHistory empties the buffer and resets playback to the start. The
// confirmation flag stands in for the user-facing confirm dialog.
func (ts *TrackingService) ClearHistory(confirm bool) error {
	if !confirm {
		return ErrConfirmRequired
	}
	ts.tracker.ClearHistory()
	ts.playback.Reset()
	ts.logger.Infof(providers.TypeTracking, "history cleared")
	return nil
}

func (ts *TrackingService) ExportHistory() ([]byte, error) {
	gson, err := json.Marshal(ts.tracker.History().Points())
	if err != nil {
		return nil, err
	}
	return ts.compressor.Compress(gson)
}

func (ts *TrackingService) AddZone(input *ZoneInput) (models.SafeZone, error) {
	v := validate.Struct(input)
	if !v.Validate() {
		return models.SafeZone{}, fmt.Errorf("%w: %s", ErrInvalidZone, v.Errors.One())
	}

	zone := models.SafeZone{
		ID:           input.ID,
		Title:        input.Title,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		RadiusMeters: input.RadiusMeters,
	}
	if zone.ID == "" {
		zone.ID = uuid.NewString()
	}
	if zone.Title == "" {
		zone.Title = DefaultZoneTitle
	}
	if zone.RadiusMeters <= 0 {
		zone.RadiusMeters = DefaultZoneRadius
	}

	ts.tracker.AddZone(zone)
	ts.logger.Infof(providers.TypeTracking, "zone added: %q (%.0fm)", zone.Title, zone.RadiusMeters)
	return zone, nil
}

func (ts *TrackingService) RemoveZone(id string) bool {
	removed := ts.tracker.RemoveZone(id)
	if removed {
		ts.logger.Infof(providers.TypeTracking, "zone removed: %s", id)
	}
	return removed
}

func (ts *TrackingService) Zones() []models.SafeZone {
	return ts.tracker.Zones()
}

func (ts *TrackingService) ZoneCount() int {
	return ts.tracker.ZoneCount()
}

// AddFavorite snapshots a point. A nil point favors the current location.
func (ts *TrackingService) AddFavorite(p *models.LocationPoint) models.LocationPoint {
	point := ts.tracker.Current()
	if p != nil {
		point = *p
	}
	ts.favorites.Add(point)
	return point
}

func (ts *TrackingService) Favorites() []models.LocationPoint {
	return ts.favorites.Points()
}
