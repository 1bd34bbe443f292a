package app

import "time"

// TickMsg drives the polling loop. One is scheduled after each tick.
type TickMsg struct {
	Time time.Time
}

// JournalErrorMsg is sent when an event could not be written to the journal.
type JournalErrorMsg struct {
	Err error
}

// ClearErrorMsg clears a transient error after a timeout.
type ClearErrorMsg struct{}
