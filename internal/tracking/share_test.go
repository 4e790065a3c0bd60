package tracking_test

import (
	"errors"
	"guardian/internal/models"
	"guardian/internal/structures"
	"guardian/internal/testutil"
	"guardian/internal/tracking"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShare(conf *structures.Config, clock tracking.Clock) (*tracking.ShareManager, *tracking.Tracker, *testutil.MockTransport, *testutil.MockMetrics) {
	provider := tracking.NewScriptedProvider(
		lp(10, 10), lp(10.0001, 10), lp(10.0002, 10), lp(10.0003, 10), lp(10.0004, 10),
	)
	tracker, logger, metrics := newTestTracker(conf, provider, clock)
	transport := &testutil.MockTransport{}
	mgr := tracking.NewShareManager(conf, logger, metrics, tracker, transport, clock)
	return mgr, tracker, transport, metrics
}

func TestShare_StartCreatesActiveSession(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, _, metrics := newTestShare(testConfig(), clock)

	res, err := mgr.Start(0)
	require.NoError(t, err)

	assert.NotEmpty(t, res.Session.ID)
	assert.Equal(t, models.SessionActive, res.Session.Status)
	assert.Equal(t, time.Hour, res.Session.Duration)
	assert.Equal(t, "https://example.com/share/"+res.Session.ID, res.Link)
	assert.Equal(t, "I'm sharing my live location: "+res.Link, res.Message)
	assert.True(t, mgr.Active())
	assert.True(t, metrics.ShareActive)
	assert.Equal(t, clock.Now().Add(time.Hour), res.Session.ExpiresAt())
}

func TestShare_SecondStartFails(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, transport, _ := newTestShare(testConfig(), clock)

	first, err := mgr.Start(0)
	require.NoError(t, err)

	_, err = mgr.Start(10 * time.Minute)
	assert.ErrorIs(t, err, tracking.ErrShareActive)

	// the running session is untouched: its pushes keep arriving
	clock.Advance(5 * time.Second)
	require.Equal(t, 1, transport.PushCount())
	assert.Equal(t, first.Session.ID, transport.Pushes[0].SessionID)
}

func TestShare_PushesCurrentLocationAtInterval(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, tracker, transport, metrics := newTestShare(testConfig(), clock)

	tracker.Sample()
	res, err := mgr.Start(0)
	require.NoError(t, err)

	clock.Advance(5 * time.Second)
	require.Equal(t, 1, transport.PushCount())
	assert.Equal(t, res.Session.ID, transport.Pushes[0].SessionID)
	assert.Equal(t, 10.0, transport.Pushes[0].Point.Latitude)

	// a fresh sample between ticks is what the next push carries
	tracker.Sample()
	clock.Advance(5 * time.Second)
	require.Equal(t, 2, transport.PushCount())
	assert.Equal(t, 10.0001, transport.Pushes[1].Point.Latitude)
	assert.Equal(t, 2, metrics.SharePushes["ok"])
}

func TestShare_ExpiresAfterDuration(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, transport, metrics := newTestShare(testConfig(), clock)

	res, err := mgr.Start(time.Second)
	require.NoError(t, err)

	clock.Advance(time.Second)

	assert.False(t, mgr.Active())
	assert.False(t, metrics.ShareActive)
	assert.Equal(t, models.SessionStopped, mgr.Status().Status)
	require.Len(t, transport.Ended, 1)
	assert.Equal(t, res.Session.ID, transport.Ended[0])

	// expired means silent: no pushes after the deadline
	pushes := transport.PushCount()
	clock.Advance(time.Minute)
	assert.Equal(t, pushes, transport.PushCount())
}

func TestShare_StopIsIdempotent(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, transport, _ := newTestShare(testConfig(), clock)

	_, err := mgr.Start(0)
	require.NoError(t, err)

	mgr.Stop()
	mgr.Stop()

	assert.False(t, mgr.Active())
	assert.Equal(t, models.SessionStopped, mgr.Status().Status)
	assert.Len(t, transport.Ended, 1)

	// both timers are cancelled: no push, no late expiry callback
	clock.Advance(2 * time.Hour)
	assert.Equal(t, 0, transport.PushCount())
	assert.Len(t, transport.Ended, 1)
}

func TestShare_StopWhenIdleIsNoop(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, transport, _ := newTestShare(testConfig(), clock)

	mgr.Stop()
	assert.False(t, mgr.Active())
	assert.Empty(t, transport.Ended)
}

func TestShare_PushFailureKeepsSessionAlive(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, transport, metrics := newTestShare(testConfig(), clock)
	transport.PushErr = errors.New("connection refused")

	_, err := mgr.Start(0)
	require.NoError(t, err)

	clock.Advance(15 * time.Second)

	assert.True(t, mgr.Active())
	assert.Equal(t, 3, transport.PushCount())
	assert.Equal(t, 3, metrics.SharePushes["error"])
}

func TestShare_CanRestartAfterStop(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	mgr, _, _, _ := newTestShare(testConfig(), clock)

	first, err := mgr.Start(0)
	require.NoError(t, err)
	mgr.Stop()

	second, err := mgr.Start(0)
	require.NoError(t, err)
	assert.NotEqual(t, first.Session.ID, second.Session.ID)
	assert.True(t, mgr.Active())
}
