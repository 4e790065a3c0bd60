package tracking_test

import (
	"guardian/internal/tracking"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_StopBeforeInit(t *testing.T) {
	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	tracker, logger, _ := newTestTracker(testConfig(), tracking.NewScriptedProvider(), clock)

	s := tracking.NewScheduler(testConfig(), logger, tracker)
	// Should not panic with nil cron
	s.Stop()
}

func TestScheduler_InitSamplesPeriodically(t *testing.T) {
	conf := testConfig()
	conf.Tracking.SampleInterval = 20 * time.Millisecond

	clock := tracking.NewFakeClock(time.Unix(1000, 0))
	provider := tracking.NewScriptedProvider(lp(1, 1), lp(2, 2), lp(3, 3), lp(4, 4), lp(5, 5))
	tracker, logger, metrics := newTestTracker(conf, provider, clock)

	s := tracking.NewScheduler(conf, logger, tracker)
	s.Init()
	time.Sleep(90 * time.Millisecond)
	s.Stop()

	// let an in-flight tick finish
	time.Sleep(10 * time.Millisecond)
	sampled := metrics.Samples
	assert.GreaterOrEqual(t, sampled, 2)

	// stopped means stopped
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, sampled, metrics.Samples)
}
