// Package controller maps single-key input to session operations.
package controller

import (
	"sort"
	"strings"

	"github.com/ViliLipo/pomoxide/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Operation is a session action that can be bound to a key.
type Operation int

const (
	Pause Operation = iota
	Quit
	Reset
	Skip
)

func (op Operation) String() string {
	switch op {
	case Pause:
		return "Pause"
	case Quit:
		return "Quit"
	case Reset:
		return "Reset"
	case Skip:
		return "Skip"
	}
	return "Unknown"
}

// Target is the set of session operations a Controller drives.
type Target interface {
	TogglePause()
	Quit()
	Reset()
	Skip()
}

// Apply runs the operation on t.
func (op Operation) Apply(t Target) {
	switch op {
	case Pause:
		t.TogglePause()
	case Quit:
		t.Quit()
	case Reset:
		t.Reset()
	case Skip:
		t.Skip()
	}
}

// Control is one entry of the binding table.
type Control struct {
	Name string
	Key  rune
	Op   Operation
}

// Label renders the control as "Name:key".
func (c Control) Label() string {
	return c.Name + ":" + string(c.Key)
}

// Controller dispatches key presses through a binding table built once from
// the configuration.
type Controller struct {
	bindings    map[rune]Control
	description string
}

// New builds the binding table. Controls are registered in the order Pause,
// Quit, Reset, Skip; when two share a key the later one replaces the earlier.
func New(kb config.Keybindings) *Controller {
	bindings := make(map[rune]Control)
	for _, c := range controls(kb) {
		bindings[c.Key] = c
	}
	return &Controller{
		bindings:    bindings,
		description: buildDescription(bindings),
	}
}

func controls(kb config.Keybindings) []Control {
	entries := []struct {
		op  Operation
		key rune
	}{
		{Pause, kb.Pause},
		{Quit, kb.Quit},
		{Reset, kb.Reset},
		{Skip, kb.Skip},
	}
	out := make([]Control, 0, len(entries))
	for _, e := range entries {
		out = append(out, Control{Name: e.op.String(), Key: e.key, Op: e.op})
	}
	return out
}

// Dispatch runs the operation bound to msg, if any, and reports whether one
// ran. Only presses of a single printable character are considered.
func (c *Controller) Dispatch(msg tea.KeyMsg, t Target) bool {
	control, ok := c.Resolve(msg)
	if !ok {
		return false
	}
	control.Op.Apply(t)
	return true
}

// Resolve returns the control bound to msg without running it.
func (c *Controller) Resolve(msg tea.KeyMsg) (Control, bool) {
	r, ok := character(msg)
	if !ok {
		return Control{}, false
	}
	control, ok := c.bindings[r]
	return control, ok
}

func character(msg tea.KeyMsg) (rune, bool) {
	if msg.Alt || msg.Paste {
		return 0, false
	}
	switch msg.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return msg.Runes[0], true
		}
	}
	return 0, false
}

// Describe returns the human readable summary of the active bindings, for
// example "Controls: Pause:s, Quit:q, Reset:d, Skip:f".
func (c *Controller) Describe() string {
	return c.description
}

func buildDescription(bindings map[rune]Control) string {
	parts := make([]string, 0, len(bindings))
	for _, control := range bindings {
		parts = append(parts, control.Label())
	}
	sort.Strings(parts)
	return "Controls: " + strings.Join(parts, ", ")
}
