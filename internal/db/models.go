// Package db keeps an in-memory SQLite journal of the phase events of one run.
package db

import (
	"fmt"
	"time"
)

// EventKind names what happened to the timer.
type EventKind string

const (
	EventCompleted EventKind = "completed"
	EventSkipped   EventKind = "skipped"
	EventReset     EventKind = "reset"
	EventPaused    EventKind = "paused"
	EventResumed   EventKind = "resumed"
	EventQuit      EventKind = "quit"
)

// Event is one journal entry. Phase is the phase the event happened in and
// Elapsed the unpaused time spent in it at that moment.
type Event struct {
	ID      string
	RunID   string
	Kind    EventKind
	Phase   string
	At      time.Time
	Elapsed time.Duration
}

// Summary aggregates the events of a run.
type Summary struct {
	Tomatoes int
	Focused  time.Duration
	Skipped  int
}

// String renders the summary as a single line, e.g.
// "3 tomatoes, 75m focused, 1 skipped".
func (s Summary) String() string {
	noun := "tomatoes"
	if s.Tomatoes == 1 {
		noun = "tomato"
	}
	return fmt.Sprintf("%d %s, %dm focused, %d skipped",
		s.Tomatoes, noun, int(s.Focused/time.Minute), s.Skipped)
}
