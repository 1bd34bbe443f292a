// Package ui holds the palette and the display strings of the timer screen.
package ui

import (
	"fmt"

	"github.com/ViliLipo/pomoxide/internal/pomodoro"
)

// Title heads the timer box.
const Title = "Pomodoro"

// Presentation is the plain text shown for a session at one instant.
type Presentation struct {
	TimeLeft     string
	Phase        string
	TomatoesDone string
	Paused       string
	Title        string
}

// NewPresentation derives the display strings from the session state.
func NewPresentation(s *pomodoro.Session) Presentation {
	p := Presentation{
		TimeLeft:     TimeLeft(s.TimeRemainingSeconds()),
		Phase:        PhaseText(s.CurrentPhase()),
		TomatoesDone: fmt.Sprintf("🍅 X %d", s.CompletedWorkUnits()),
		Title:        Title,
	}
	if s.IsPaused() {
		p.Paused = "Paused"
	}
	return p
}

// TimeLeft formats seconds as "Time left: MM:SS". Minutes are not wrapped
// into hours.
func TimeLeft(seconds uint64) string {
	return fmt.Sprintf("Time left: %02d:%02d", seconds/60, seconds%60)
}

// PhaseText describes what the user should be doing.
func PhaseText(p pomodoro.Phase) string {
	if p == pomodoro.Break {
		return "You are on a break."
	}
	return "You are working."
}
