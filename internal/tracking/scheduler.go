package tracking

import (
	"guardian/internal/providers"
	"guardian/internal/structures"
	"guardian/internal/tracking/interfaces"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler drives the periodic sampling tick. Share pushes, auto-expiry and
// playback run on their own timers owned by their components; this keeps
// every periodic activity independently startable and cancellable.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	tracker *Tracker
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Tracking.SampleInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		p := s.tracker.Sample()
		s.logger.Debugf(providers.TypeTracking, "sampled %.6f, %.6f", p.Latitude, p.Longitude)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, tracker *Tracker) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		tracker: tracker,
	}
}
