// Package pomodoro holds the timer state machine: phases, the pause-aware
// countdown and the session that alternates work and break phases.
package pomodoro

import "time"

// Phase is one of the two alternating timer modes.
type Phase int

const (
	Work Phase = iota
	Break
)

func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "work"
}

// Opposite returns the phase that follows p.
func (p Phase) Opposite() Phase {
	if p == Work {
		return Break
	}
	return Work
}

// Durations holds the configured phase lengths in minutes.
type Durations struct {
	WorkMinutes  uint64
	BreakMinutes uint64
}

// Millis returns the length of phase p in milliseconds.
func (d Durations) Millis(p Phase) uint64 {
	if p == Work {
		return d.WorkMinutes * 60 * 1000
	}
	return d.BreakMinutes * 60 * 1000
}

// Clock supplies wall-clock readings. Readings are not required to be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
