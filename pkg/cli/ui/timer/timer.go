// Package timer provides stage-aware wall-clock timing for CLI feedback.
package timer

import "time"

// Timer tracks the total elapsed time of a run and the elapsed time of the
// current stage.
type Timer interface {
	// Start begins timing. Calling Start again resets both clocks.
	Start()
	// NewStage marks the beginning of a new stage.
	NewStage()
	// GetTiming returns the total elapsed time and the current stage's
	// elapsed time.
	GetTiming() (total, stage time.Duration)
}

// clockTimer implements Timer using the system clock.
type clockTimer struct {
	start time.Time
	stage time.Time
}

// New creates a started Timer.
func New() Timer {
	now := time.Now()

	return &clockTimer{start: now, stage: now}
}

func (t *clockTimer) Start() {
	now := time.Now()
	t.start = now
	t.stage = now
}

func (t *clockTimer) NewStage() {
	t.stage = time.Now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	now := time.Now()

	return now.Sub(t.start), now.Sub(t.stage)
}
