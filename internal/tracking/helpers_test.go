package tracking_test

import (
	"guardian/internal/models"
	"guardian/internal/structures"
	"guardian/internal/testutil"
	"guardian/internal/tracking"
	"time"
)

func testConfig() *structures.Config {
	return &structures.Config{
		Tracking: structures.TrackingConfig{
			SampleInterval:  5 * time.Second,
			MaxHistory:      200,
			OriginLatitude:  37.78825,
			OriginLongitude: -122.4324,
			JitterDegrees:   0.0003,
		},
		Share: structures.ShareConfig{
			PushInterval:    5 * time.Second,
			DefaultDuration: time.Hour,
			LinkHost:        "example.com",
		},
		Playback: structures.PlaybackConfig{
			TickInterval: time.Second,
		},
		Sos: structures.SosConfig{
			Preamble: "SOS! I need help.",
		},
	}
}

func newTestTracker(conf *structures.Config, provider tracking.LocationProvider, clock tracking.Clock) (*tracking.Tracker, *testutil.MockLogger, *testutil.MockMetrics) {
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	history := models.NewHistoryBuffer(conf.Tracking.MaxHistory)
	tracker := tracking.NewTracker(conf, logger, metrics, provider, history, clock)
	return tracker, logger, metrics
}

func lp(lat, lng float64) *models.LocationPoint {
	p := models.NewLocationPoint(lat, lng, time.Unix(0, 0))
	return &p
}
