package main

import (
	"time"

	"github.com/ViliLipo/pomoxide/internal/config"
	"github.com/jessevdk/go-flags"
)

// Options are the command line flags. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config       string        `short:"c" long:"config" description:"config file path (.toml, .yaml or .yml)"`
	Work         uint64        `short:"w" long:"work" description:"work phase length in minutes"`
	Break        uint64        `short:"b" long:"break" description:"break phase length in minutes"`
	NoSound      bool          `long:"no-sound" description:"do not play a sound when a phase ends"`
	NoNotify     bool          `long:"no-notify" description:"do not show desktop notifications"`
	HideBindings bool          `long:"hide-bindings" description:"hide the controls line"`
	LogFile      string        `long:"log-file" description:"log file path"`
	Tick         time.Duration `long:"tick" default:"200ms" description:"how often the timer is sampled and redrawn"`
	Version      bool          `short:"v" long:"version" description:"print the version and exit"`
}

func parseArgs(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "pomoxide"
	if _, err := parser.ParseArgs(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// Overrides returns the flags that take precedence over the config file.
func (o *Options) Overrides() config.Overrides {
	return config.Overrides{
		WorkMinutes:  o.Work,
		BreakMinutes: o.Break,
		NoSound:      o.NoSound,
		NoNotify:     o.NoNotify,
		HideBindings: o.HideBindings,
	}
}
