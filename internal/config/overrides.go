package config

// Overrides carries command line values that take precedence over the file.
// Zero values leave the loaded configuration alone.
type Overrides struct {
	WorkMinutes  uint64
	BreakMinutes uint64
	NoSound      bool
	NoNotify     bool
	HideBindings bool
}

// Apply returns c with the overrides applied.
func (c Config) Apply(o Overrides) (Config, error) {
	if o.WorkMinutes != 0 {
		if err := validMinutes("work", o.WorkMinutes); err != nil {
			return c, err
		}
		c.WorkMinutes = o.WorkMinutes
	}
	if o.BreakMinutes != 0 {
		if err := validMinutes("break", o.BreakMinutes); err != nil {
			return c, err
		}
		c.BreakMinutes = o.BreakMinutes
	}
	if o.NoSound {
		c.Sound = false
	}
	if o.NoNotify {
		c.Notifications = false
	}
	if o.HideBindings {
		c.ShowBindings = false
	}
	return c, nil
}
