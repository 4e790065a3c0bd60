package tracking

import (
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/structures"
	"sync"
	"time"
)

// PlaybackController replays the movement history at a fixed rate. It is
// independent of the live sampling flow: play/pause/seek never touch the
// buffer, only the cursor over it.
type PlaybackController struct {
	mu       sync.Mutex
	logger   providers.Logger
	clock    Clock
	history  *models.HistoryBuffer
	interval time.Duration
	index    int
	playing  bool
	timer    Timer
	onIndex  func(models.LocationPoint)
}

func NewPlaybackController(conf *structures.Config, logger providers.Logger, history *models.HistoryBuffer, clock Clock) *PlaybackController {
	return &PlaybackController{
		logger:   logger,
		clock:    clock,
		history:  history,
		interval: conf.Playback.TickInterval,
	}
}

// OnIndexChange registers the advisory "center view on this point" hook.
func (pc *PlaybackController) OnIndexChange(fn func(models.LocationPoint)) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.onIndex = fn
}

// Toggle flips between playing and paused. Starting with an empty history is
// a no-op.
func (pc *PlaybackController) Toggle() models.PlaybackState {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.playing {
		pc.playing = false
		pc.stopTimerLocked()
		return pc.stateLocked()
	}

	if pc.history.Len() == 0 {
		return pc.stateLocked()
	}

	pc.playing = true
	pc.scheduleLocked()
	return pc.stateLocked()
}

func (pc *PlaybackController) tick() {
	pc.mu.Lock()
	if !pc.playing {
		pc.mu.Unlock()
		return
	}

	length := pc.history.Len()
	if pc.index < length-1 {
		pc.index++
	}
	point, ok := pc.history.Get(pc.index)
	notify := pc.onIndex

	if pc.index >= length-1 {
		// end of history: stop, don't loop
		pc.playing = false
		pc.timer = nil
	} else {
		pc.scheduleLocked()
	}
	pc.mu.Unlock()

	if ok && notify != nil {
		notify(point)
	}
}

// Seek moves the cursor directly, clamped to the valid range. Works in both
// states; this is what a scrub control calls.
func (pc *PlaybackController) Seek(index int) models.PlaybackState {
	pc.mu.Lock()

	length := pc.history.Len()
	if index < 0 {
		index = 0
	}
	if index > length-1 {
		index = length - 1
	}
	if index < 0 {
		index = 0
	}
	pc.index = index
	point, ok := pc.history.Get(pc.index)
	notify := pc.onIndex
	state := pc.stateLocked()
	pc.mu.Unlock()

	if ok && notify != nil {
		notify(point)
	}
	return state
}

func (pc *PlaybackController) State() models.PlaybackState {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.stateLocked()
}

// Reset returns the cursor to the start and pauses. Called when the history
// buffer is cleared.
func (pc *PlaybackController) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.index = 0
	pc.playing = false
	pc.stopTimerLocked()
}

// Stop cancels the playback timer. Part of module teardown.
func (pc *PlaybackController) Stop() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.playing = false
	pc.stopTimerLocked()
}

func (pc *PlaybackController) scheduleLocked() {
	pc.timer = pc.clock.AfterFunc(pc.interval, pc.tick)
}

func (pc *PlaybackController) stopTimerLocked() {
	if pc.timer != nil {
		pc.timer.Stop()
		pc.timer = nil
	}
}

func (pc *PlaybackController) stateLocked() models.PlaybackState {
	return models.PlaybackState{Index: pc.index, Playing: pc.playing}
}
