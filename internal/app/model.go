// Package app is the bubbletea program that hosts the pomodoro session.
package app

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/ViliLipo/pomoxide/internal/controller"
	"github.com/ViliLipo/pomoxide/internal/db"
	"github.com/ViliLipo/pomoxide/internal/effects"
	"github.com/ViliLipo/pomoxide/internal/pomodoro"
	"github.com/ViliLipo/pomoxide/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTick is how often the session is sampled and the screen redrawn.
const DefaultTick = 200 * time.Millisecond

const (
	defaultBarWidth = 30
	maxBarWidth     = 50
)

// Journal records session events. *db.Store satisfies it.
type Journal interface {
	Record(ctx context.Context, ev db.Event) (db.Event, error)
}

// Options wires a Model. Session and Controller are required.
type Options struct {
	Session      *pomodoro.Session
	Controller   *controller.Controller
	Executor     *effects.Executor
	Journal      Journal
	ShowBindings bool
	Tick         time.Duration
	// Notice is shown under the timer from the start, for problems found
	// before the program started.
	Notice string
}

// Model is the root bubbletea model.
type Model struct {
	// Session
	session    *pomodoro.Session
	controller *controller.Controller
	executor   *effects.Executor
	journal    Journal

	// UI state
	keys         KeyMap
	bar          progress.Model
	showBindings bool
	tick         time.Duration
	width        int
	height       int

	// Messages
	notice         string
	errorMessage   string
	errorTransient bool
}

// New creates a Model from opts.
func New(opts Options) Model {
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	executor := opts.Executor
	if executor == nil {
		executor = effects.NewExecutor(nil, nil)
	}
	return Model{
		session:      opts.Session,
		controller:   opts.Controller,
		executor:     executor,
		journal:      opts.Journal,
		keys:         DefaultKeyMap(),
		bar:          progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		showBindings: opts.ShowBindings,
		tick:         tick,
		notice:       opts.Notice,
	}
}

// Init starts the polling loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// recordCmd writes ev to the journal off the update loop.
func recordCmd(j Journal, ev db.Event) tea.Cmd {
	if j == nil {
		return nil
	}
	return func() tea.Msg {
		if _, err := j.Record(context.Background(), ev); err != nil {
			return JournalErrorMsg{Err: err}
		}
		return nil
	}
}

// clearErrorCmd fires after a delay to clear transient errors.
func clearErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(maxBarWidth, max(10, msg.Width-8))
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case JournalErrorMsg:
		log.Printf("journal: %v", msg.Err)
		m.errorMessage = msg.Err.Error()
		m.errorTransient = true
		return m, clearErrorCmd()

	case ClearErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	return m, nil
}

// handleTick samples the session and starts the effects of a completed phase.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.session.IsRunning() {
		return m, tea.Quit
	}

	phase := m.session.CurrentPhase()
	timer := m.session.Timer()
	effs := m.session.Update()

	var cmds []tea.Cmd
	if len(effs) > 0 {
		m.executor.Run(effs)
		cmds = append(cmds, recordCmd(m.journal, db.Event{
			Kind:    db.EventCompleted,
			Phase:   phase.String(),
			At:      msg.Time,
			Elapsed: timer.Duration(),
		}))
	}
	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.session.Quit()
		return m, tea.Quit
	}

	control, ok := m.controller.Resolve(msg)
	if !ok {
		return m, nil
	}

	phase := m.session.CurrentPhase()
	timer := m.session.Timer()
	control.Op.Apply(m.session)

	if !m.session.IsRunning() {
		return m, tea.Quit
	}

	ev := db.Event{Phase: phase.String(), At: time.Now(), Elapsed: timer.Elapsed()}
	switch control.Op {
	case controller.Pause:
		ev.Kind = db.EventResumed
		if m.session.IsPaused() {
			ev.Kind = db.EventPaused
		}
	case controller.Reset:
		ev.Kind = db.EventReset
	case controller.Skip:
		ev.Kind = db.EventSkipped
	default:
		return m, nil
	}
	return m, recordCmd(m.journal, ev)
}

// View renders the timer screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderTimer())

	if m.showBindings {
		sections = append(sections, ui.BindingsStyle.Render(m.controller.Describe()))
	}

	if m.notice != "" {
		sections = append(sections, ui.NoticeStyle.Render(m.notice))
	}

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderTimer() string {
	p := ui.NewPresentation(m.session)

	phaseStyle := ui.WorkPhaseStyle
	if m.session.CurrentPhase() == pomodoro.Break {
		phaseStyle = ui.BreakPhaseStyle
	}

	lines := []string{
		ui.TitleStyle.Render(p.Title),
		"",
		ui.TimeStyle.Render(p.TimeLeft),
		phaseStyle.Render(p.Phase),
		m.bar.ViewAs(m.session.Timer().Progress()),
		ui.TomatoStyle.Render(p.TomatoesDone),
		ui.PausedStyle.Render(padRight(p.Paused, len("Paused"))),
	}
	return ui.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	help := m.keys.ForceQuit.Help()
	return ui.FooterKeyStyle.Render(help.Key) + ui.FooterDescStyle.Render(" "+help.Desc)
}

// Helpers

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
