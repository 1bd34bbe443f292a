package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession() (*Session, *fakeClock) {
	clock := &fakeClock{now: epoch}
	return NewSession(defaultDurations, clock), clock
}

type snapshot struct {
	running   bool
	paused    bool
	units     uint64
	phase     Phase
	remaining uint64
	timer     TimerState
}

func snap(s *Session) snapshot {
	return snapshot{
		running:   s.IsRunning(),
		paused:    s.IsPaused(),
		units:     s.CompletedWorkUnits(),
		phase:     s.CurrentPhase(),
		remaining: s.TimeRemainingSeconds(),
		timer:     s.Timer(),
	}
}

// runUntilPhaseChange ticks the session once per second of simulated time
// until the phase flips, and returns the effects of the completing tick.
func runUntilPhaseChange(t *testing.T, s *Session, clock *fakeClock) []Effect {
	t.Helper()
	start := s.CurrentPhase()
	for i := 0; i < 24*60*60; i++ {
		clock.Advance(time.Second)
		effects := s.Update()
		if s.CurrentPhase() != start {
			return effects
		}
		require.Empty(t, effects)
	}
	t.Fatalf("phase %s never completed", start)
	return nil
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession()
	assert.True(t, s.IsRunning())
	assert.True(t, s.IsPaused())
	assert.Equal(t, Work, s.CurrentPhase())
	assert.Zero(t, s.CompletedWorkUnits())
	assert.EqualValues(t, 1500, s.TimeRemainingSeconds())
	assert.Equal(t, defaultDurations, s.Durations())
}

func TestNewSessionDefaultsToSystemClock(t *testing.T) {
	s := NewSession(defaultDurations, nil)
	assert.Equal(t, SystemClock, s.clock)
}

func TestSessionUpdateWhilePausedDoesNothing(t *testing.T) {
	s, clock := newTestSession()
	clock.Advance(2 * time.Hour)
	assert.Nil(t, s.Update())
	assert.Equal(t, Work, s.CurrentPhase())
	assert.EqualValues(t, 1500, s.TimeRemainingSeconds())
}

func TestSessionWorkCompletion(t *testing.T) {
	s, clock := newTestSession()
	s.TogglePause()
	require.False(t, s.IsPaused())

	effects := runUntilPhaseChange(t, s, clock)

	assert.EqualValues(t, 1, s.CompletedWorkUnits())
	assert.Equal(t, Break, s.CurrentPhase())
	assert.True(t, s.IsPaused(), "next phase must not auto-start")
	assert.EqualValues(t, 300, s.TimeRemainingSeconds())
	assert.Equal(t, []Effect{
		{Kind: EffectSound},
		{Kind: EffectNotify, Title: NotificationTitle, Body: AskStartBreak},
	}, effects)
}

func TestSessionBreakCompletionDoesNotCount(t *testing.T) {
	s, clock := newTestSession()
	s.Skip()
	require.Equal(t, Break, s.CurrentPhase())
	s.TogglePause()

	effects := runUntilPhaseChange(t, s, clock)

	assert.Zero(t, s.CompletedWorkUnits())
	assert.Equal(t, Work, s.CurrentPhase())
	assert.True(t, s.IsPaused())
	assert.EqualValues(t, 1500, s.TimeRemainingSeconds())
	assert.Equal(t, []Effect{
		{Kind: EffectNotify, Title: NotificationTitle, Body: AskStartWork},
		{Kind: EffectSound},
	}, effects)
}

func TestSessionCompletesOnTheSameTick(t *testing.T) {
	s, clock := newTestSession()
	s.TogglePause()
	clock.Advance(25 * time.Minute)
	effects := s.Update()
	assert.Len(t, effects, 2)
	assert.Equal(t, Break, s.CurrentPhase())
}

func TestSessionFullCycles(t *testing.T) {
	s, clock := newTestSession()
	for cycle := 1; cycle <= 3; cycle++ {
		s.TogglePause()
		runUntilPhaseChange(t, s, clock)
		require.Equal(t, Break, s.CurrentPhase())
		s.TogglePause()
		runUntilPhaseChange(t, s, clock)
		require.Equal(t, Work, s.CurrentPhase())
		assert.EqualValues(t, cycle, s.CompletedWorkUnits())
	}
}

func TestSessionSkip(t *testing.T) {
	s, clock := newTestSession()
	s.TogglePause()
	clock.Advance(10 * time.Minute)
	s.Update()

	s.Skip()
	assert.Equal(t, Break, s.CurrentPhase())
	assert.Zero(t, s.CompletedWorkUnits())
	assert.True(t, s.IsPaused())
	assert.EqualValues(t, 300, s.TimeRemainingSeconds())

	s.Skip()
	assert.Equal(t, Work, s.CurrentPhase())
	assert.Zero(t, s.CompletedWorkUnits())
	assert.EqualValues(t, 1500, s.TimeRemainingSeconds())
}

func TestSessionReset(t *testing.T) {
	s, clock := newTestSession()
	s.TogglePause()
	runUntilPhaseChange(t, s, clock)
	s.TogglePause()
	clock.Advance(90 * time.Second)
	s.Update()
	require.EqualValues(t, 210, s.TimeRemainingSeconds())

	s.Reset()
	assert.Equal(t, Break, s.CurrentPhase())
	assert.EqualValues(t, 1, s.CompletedWorkUnits())
	assert.True(t, s.IsPaused())
	assert.EqualValues(t, 300, s.TimeRemainingSeconds())
	assert.Equal(t, clock.now, s.Timer().LastSample())
}

func TestSessionQuitIsTerminal(t *testing.T) {
	s, clock := newTestSession()
	s.TogglePause()
	clock.Advance(3 * time.Minute)
	s.Update()
	s.Quit()
	before := snap(s)
	require.False(t, before.running)

	clock.Advance(time.Hour)
	assert.Nil(t, s.Update())
	s.TogglePause()
	s.Reset()
	s.Skip()
	clock.Advance(time.Hour)
	s.Update()
	s.Quit()

	assert.Equal(t, before, snap(s))
}

func TestSessionClockGoingBackwards(t *testing.T) {
	s, clock := newTestSession()
	s.TogglePause()
	clock.Advance(time.Minute)
	s.Update()
	clock.Advance(-10 * time.Minute)
	s.Update()
	assert.EqualValues(t, 1440, s.TimeRemainingSeconds())
	clock.Advance(time.Minute)
	s.Update()
	assert.EqualValues(t, 1380, s.TimeRemainingSeconds())
}

func TestPhaseHelpers(t *testing.T) {
	assert.Equal(t, Break, Work.Opposite())
	assert.Equal(t, Work, Break.Opposite())
	assert.Equal(t, "work", Work.String())
	assert.Equal(t, "break", Break.String())
	assert.EqualValues(t, 1500000, defaultDurations.Millis(Work))
	assert.EqualValues(t, 300000, defaultDurations.Millis(Break))
}
