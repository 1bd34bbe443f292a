package pomodoro

import "time"

// TimerState is the countdown of one phase instance. It is a value: every
// transition returns a new TimerState and leaves the receiver untouched.
//
// Elapsed time is recomputed from two clock samples on each Update instead of
// being driven by a running ticker, so pause and resume stay exact no matter
// how irregular the polling is.
type TimerState struct {
	elapsedMillis  uint64
	paused         bool
	lastSample     time.Time
	durationMillis uint64
}

// NewTimerState returns a paused timer with nothing elapsed for phase p.
func NewTimerState(p Phase, d Durations, now time.Time) TimerState {
	return TimerState{
		paused:         true,
		lastSample:     now,
		durationMillis: d.Millis(p),
	}
}

// Pause stops accumulation. The last sample is left where it was.
func (t TimerState) Pause() TimerState {
	t.paused = true
	return t
}

// Resume restarts accumulation from the last sample.
func (t TimerState) Resume() TimerState {
	t.paused = false
	return t
}

// TogglePause resumes a paused timer and pauses a running one.
func (t TimerState) TogglePause() TimerState {
	if t.paused {
		return t.Resume()
	}
	return t.Pause()
}

// Update samples the clock at now. A paused timer only moves its sample point
// so the paused interval is never counted after a resume. A running timer adds
// the whole milliseconds since the previous sample; a clock that went
// backwards adds nothing.
func (t TimerState) Update(now time.Time) TimerState {
	if !t.paused {
		if delta := now.Sub(t.lastSample); delta > 0 {
			t.elapsedMillis += uint64(delta.Milliseconds())
		}
	}
	t.lastSample = now
	return t
}

// TimeRemainingSeconds returns the whole seconds left, never below zero.
func (t TimerState) TimeRemainingSeconds() uint64 {
	if t.elapsedMillis >= t.durationMillis {
		return 0
	}
	return (t.durationMillis - t.elapsedMillis) / 1000
}

// IsFinished reports whether the elapsed time reached the phase duration.
func (t TimerState) IsFinished() bool {
	return t.elapsedMillis >= t.durationMillis
}

// Paused reports whether the timer is paused.
func (t TimerState) Paused() bool { return t.paused }

// Elapsed returns the accumulated unpaused time.
func (t TimerState) Elapsed() time.Duration {
	return time.Duration(t.elapsedMillis) * time.Millisecond
}

// Duration returns the full length of the phase instance.
func (t TimerState) Duration() time.Duration {
	return time.Duration(t.durationMillis) * time.Millisecond
}

// LastSample returns the clock reading used by the previous Update.
func (t TimerState) LastSample() time.Time { return t.lastSample }

// Progress returns the elapsed fraction of the phase in [0, 1].
func (t TimerState) Progress() float64 {
	if t.durationMillis == 0 || t.elapsedMillis >= t.durationMillis {
		return 1
	}
	return float64(t.elapsedMillis) / float64(t.durationMillis)
}
