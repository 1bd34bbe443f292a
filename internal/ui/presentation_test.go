package ui

import (
	"testing"
	"time"

	"github.com/ViliLipo/pomoxide/internal/pomodoro"
)

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

func TestNewPresentationFreshSession(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := pomodoro.NewSession(pomodoro.Durations{WorkMinutes: 25, BreakMinutes: 5}, clock)

	got := NewPresentation(s)
	want := Presentation{
		TimeLeft:     "Time left: 25:00",
		Phase:        "You are working.",
		TomatoesDone: "🍅 X 0",
		Paused:       "Paused",
		Title:        "Pomodoro",
	}
	if got != want {
		t.Errorf("NewPresentation() = %+v, want %+v", got, want)
	}
}

func TestNewPresentationRunningBreak(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := pomodoro.NewSession(pomodoro.Durations{WorkMinutes: 1, BreakMinutes: 5}, clock)
	s.TogglePause()
	s.Update()
	clock.now = clock.now.Add(time.Minute)
	s.Update()

	s.TogglePause()
	s.Update()
	clock.now = clock.now.Add(90*time.Second + 500*time.Millisecond)
	s.Update()

	got := NewPresentation(s)
	if got.Phase != "You are on a break." {
		t.Errorf("Phase = %q, want %q", got.Phase, "You are on a break.")
	}
	if got.TomatoesDone != "🍅 X 1" {
		t.Errorf("TomatoesDone = %q, want %q", got.TomatoesDone, "🍅 X 1")
	}
	if got.TimeLeft != "Time left: 03:29" {
		t.Errorf("TimeLeft = %q, want %q", got.TimeLeft, "Time left: 03:29")
	}
	if got.Paused != "" {
		t.Errorf("Paused = %q, want empty", got.Paused)
	}
}

func TestTimeLeft(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "Time left: 00:00"},
		{59, "Time left: 00:59"},
		{61, "Time left: 01:01"},
		{1500, "Time left: 25:00"},
		{1440 * 60, "Time left: 1440:00"},
	}
	for _, tt := range tests {
		if got := TimeLeft(tt.seconds); got != tt.want {
			t.Errorf("TimeLeft(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
