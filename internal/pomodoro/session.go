package pomodoro

// NotificationTitle is the title of every phase completion notification.
const NotificationTitle = "Pomoxide Timer"

// Notification bodies for the two completions.
const (
	AskStartBreak = "Start a break?"
	AskStartWork  = "Start working?"
)

// EffectKind identifies a side effect requested by a phase completion.
type EffectKind int

const (
	EffectSound EffectKind = iota
	EffectNotify
)

// Effect is a side effect the host loop must run outside the state machine.
type Effect struct {
	Kind  EffectKind
	Title string
	Body  string
}

func soundEffect() Effect {
	return Effect{Kind: EffectSound}
}

func notifyEffect(body string) Effect {
	return Effect{Kind: EffectNotify, Title: NotificationTitle, Body: body}
}

// Session owns the current phase and its timer from start until quit.
// It is not safe for concurrent use; the host loop owns it.
type Session struct {
	completedWorkUnits uint64
	currentPhase       Phase
	timer              TimerState
	running            bool
	durations          Durations
	clock              Clock
}

// NewSession starts a session in a paused work phase.
func NewSession(d Durations, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock
	}
	return &Session{
		currentPhase: Work,
		timer:        NewTimerState(Work, d, clock.Now()),
		running:      true,
		durations:    d,
		clock:        clock,
	}
}

// Update samples the clock and, when the current phase is finished, moves to
// the next phase. The returned effects must be run by the caller; they are
// nil unless a phase completed.
func (s *Session) Update() []Effect {
	if !s.running {
		return nil
	}
	now := s.clock.Now()
	s.timer = s.timer.Update(now)
	if !s.timer.IsFinished() {
		return nil
	}

	switch s.currentPhase {
	case Work:
		s.completedWorkUnits++
		s.currentPhase = Break
		s.timer = NewTimerState(Break, s.durations, now)
		return []Effect{soundEffect(), notifyEffect(AskStartBreak)}
	default:
		s.currentPhase = Work
		s.timer = NewTimerState(Work, s.durations, now)
		return []Effect{notifyEffect(AskStartWork), soundEffect()}
	}
}

// TogglePause pauses or resumes the current timer.
func (s *Session) TogglePause() {
	if !s.running {
		return
	}
	s.timer = s.timer.TogglePause()
}

// Reset re-arms the current phase: full duration, nothing elapsed, paused.
func (s *Session) Reset() {
	if !s.running {
		return
	}
	s.timer = NewTimerState(s.currentPhase, s.durations, s.clock.Now())
}

// Skip jumps to the other phase without counting a completion and without
// any effects.
func (s *Session) Skip() {
	if !s.running {
		return
	}
	s.currentPhase = s.currentPhase.Opposite()
	s.timer = NewTimerState(s.currentPhase, s.durations, s.clock.Now())
}

// Quit stops the session for good.
func (s *Session) Quit() {
	s.running = false
}

func (s *Session) IsRunning() bool            { return s.running }
func (s *Session) IsPaused() bool             { return s.timer.Paused() }
func (s *Session) CompletedWorkUnits() uint64 { return s.completedWorkUnits }
func (s *Session) CurrentPhase() Phase        { return s.currentPhase }
func (s *Session) Durations() Durations       { return s.durations }

// TimeRemainingSeconds returns the whole seconds left in the current phase.
func (s *Session) TimeRemainingSeconds() uint64 {
	return s.timer.TimeRemainingSeconds()
}

// Timer returns a copy of the live timer.
func (s *Session) Timer() TimerState {
	return s.timer
}
