package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ViliLipo/pomoxide/internal/app"
	"github.com/ViliLipo/pomoxide/internal/config"
	"github.com/ViliLipo/pomoxide/internal/controller"
	"github.com/ViliLipo/pomoxide/internal/db"
	"github.com/ViliLipo/pomoxide/internal/effects"
	"github.com/ViliLipo/pomoxide/internal/notify"
	"github.com/ViliLipo/pomoxide/internal/pomodoro"
	"github.com/ViliLipo/pomoxide/internal/sound"
	"github.com/jessevdk/go-flags"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	appName = "Pomoxide"

	// drainTimeout bounds how long a sound started right before quitting
	// may keep the process alive.
	drainTimeout = 2 * time.Second
)

// run is the whole program; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if opts.Version {
		fmt.Fprintln(stdout, Version())
		return 0
	}

	var notices []string

	logFile, err := setupLogging(opts.LogFile)
	if err != nil {
		log.SetOutput(io.Discard)
		notices = append(notices, err.Error())
	} else {
		defer logFile.Close()
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		log.Printf("config: %v", err)
		notices = append(notices, fmt.Sprintf("config: %v (using defaults)", err))
	}
	cfg, err = cfg.Apply(opts.Overrides())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	session := pomodoro.NewSession(cfg.Durations(), pomodoro.SystemClock)
	executor := effects.NewExecutor(newNotifier(cfg), newPlayer(cfg, &notices))

	model := app.Options{
		Session:      session,
		Controller:   controller.New(cfg.Keybindings),
		Executor:     executor,
		ShowBindings: cfg.ShowBindings,
		Tick:         opts.Tick,
		Notice:       strings.Join(notices, "; "),
	}

	// The journal is optional; the timer runs without it.
	journal, err := db.Open(db.MemoryDSN)
	if err != nil {
		log.Printf("journal: %v", err)
	} else {
		defer journal.Close()
		model.Journal = journal
	}

	p := tea.NewProgram(app.New(model), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}

	if !executor.Drain(drainTimeout) {
		log.Printf("effects: still running after %s, exiting anyway", drainTimeout)
	}

	if journal != nil {
		summary, err := finish(context.Background(), journal, session)
		if err != nil {
			log.Printf("journal: %v", err)
			return 0
		}
		fmt.Fprintln(stdout, summary)
	}
	return 0
}

// setupLogging sends the standard logger to a file; the terminal belongs to
// the TUI.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("locate log directory: %w", err)
		}
		path = filepath.Join(dir, "pomoxide", "pomoxide.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "pomoxide")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

func newNotifier(cfg config.Config) notify.Notifier {
	if !cfg.Notifications {
		return notify.Discard{}
	}
	return notify.NewDesktop(appName)
}

func newPlayer(cfg config.Config, notices *[]string) sound.Player {
	if !cfg.Sound {
		return sound.Silent{}
	}
	clip, err := sound.Ding()
	if err != nil {
		log.Printf("sound: %v", err)
		*notices = append(*notices, "sound: "+err.Error())
		return sound.Silent{}
	}
	return sound.NewSpeaker(clip)
}

// finish journals the final state of the session and returns the summary of
// the run.
func finish(ctx context.Context, journal *db.Store, session *pomodoro.Session) (db.Summary, error) {
	_, err := journal.Record(ctx, db.Event{
		Kind:    db.EventQuit,
		Phase:   session.CurrentPhase().String(),
		Elapsed: session.Timer().Elapsed(),
	})
	if err != nil {
		return db.Summary{}, err
	}
	return journal.Summary(ctx)
}
