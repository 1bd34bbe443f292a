// Package config loads the timer configuration from TOML or YAML files and
// falls back to defaults whenever the file is missing or unusable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/ViliLipo/pomoxide/internal/pomodoro"
	"gopkg.in/yaml.v3"
)

const (
	appDir         = "pomoxide"
	configFileName = "config.toml"
	legacyFileName = "pomoxide-config.toml"

	maxMinutes = 24 * 60
)

// ErrInvalid marks a configuration file that parsed but holds unusable values.
var ErrInvalid = errors.New("invalid config")

// Keybindings maps each control to a single character.
type Keybindings struct {
	Pause rune
	Quit  rune
	Reset rune
	Skip  rune
}

// Config is the runtime configuration of the timer.
type Config struct {
	WorkMinutes   uint64
	BreakMinutes  uint64
	Keybindings   Keybindings
	ShowBindings  bool
	Sound         bool
	Notifications bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WorkMinutes:  25,
		BreakMinutes: 5,
		Keybindings: Keybindings{
			Pause: 's',
			Quit:  'q',
			Reset: 'd',
			Skip:  'f',
		},
		ShowBindings:  true,
		Sound:         true,
		Notifications: true,
	}
}

// Durations returns the phase lengths for a new session.
func (c Config) Durations() pomodoro.Durations {
	return pomodoro.Durations{
		WorkMinutes:  c.WorkMinutes,
		BreakMinutes: c.BreakMinutes,
	}
}

// fileConfig mirrors the on-disk layout. Pointers tell a missing key from a
// zero value so absent keys keep their defaults.
type fileConfig struct {
	WorkDuration  *int64          `toml:"work_duration" yaml:"work_duration"`
	BreakDuration *int64          `toml:"break_duration" yaml:"break_duration"`
	Keybindings   fileKeybindings `toml:"keybindings" yaml:"keybindings"`
	ShowBindings  *bool           `toml:"show_bindings" yaml:"show_bindings"`
	Sound         *bool           `toml:"sound" yaml:"sound"`
	Notifications *bool           `toml:"notifications" yaml:"notifications"`
}

type fileKeybindings struct {
	Pause *string `toml:"pause" yaml:"pause"`
	Quit  *string `toml:"quit" yaml:"quit"`
	Reset *string `toml:"reset" yaml:"reset"`
	Skip  *string `toml:"skip" yaml:"skip"`
}

// Load reads the configuration at path. A missing file yields the defaults
// and no error. Any other failure yields the defaults together with the
// error, so callers can report it and carry on.
func Load(path string) (Config, error) {
	cfg := Default()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	fileData, err := decode(path, rawData)
	if err != nil {
		return cfg, err
	}

	loaded := cfg
	if err := applyFileConfig(&loaded, fileData); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

func decode(path string, rawData []byte) (fileConfig, error) {
	var fileData fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return fileData, fmt.Errorf("parse config yaml: %w", err)
		}
	default:
		if err := toml.Unmarshal(rawData, &fileData); err != nil {
			return fileData, fmt.Errorf("parse config toml: %w", err)
		}
	}
	return fileData, nil
}

func applyFileConfig(cfg *Config, fileData fileConfig) error {
	if fileData.WorkDuration != nil {
		minutes, err := fileMinutes("work_duration", *fileData.WorkDuration)
		if err != nil {
			return err
		}
		cfg.WorkMinutes = minutes
	}
	if fileData.BreakDuration != nil {
		minutes, err := fileMinutes("break_duration", *fileData.BreakDuration)
		if err != nil {
			return err
		}
		cfg.BreakMinutes = minutes
	}

	keys := []struct {
		name  string
		value *string
		dst   *rune
	}{
		{"pause", fileData.Keybindings.Pause, &cfg.Keybindings.Pause},
		{"quit", fileData.Keybindings.Quit, &cfg.Keybindings.Quit},
		{"reset", fileData.Keybindings.Reset, &cfg.Keybindings.Reset},
		{"skip", fileData.Keybindings.Skip, &cfg.Keybindings.Skip},
	}
	for _, k := range keys {
		if k.value == nil {
			continue
		}
		r, err := singleRune(k.name, *k.value)
		if err != nil {
			return err
		}
		*k.dst = r
	}

	if fileData.ShowBindings != nil {
		cfg.ShowBindings = *fileData.ShowBindings
	}
	if fileData.Sound != nil {
		cfg.Sound = *fileData.Sound
	}
	if fileData.Notifications != nil {
		cfg.Notifications = *fileData.Notifications
	}
	return nil
}

func fileMinutes(name string, minutes int64) (uint64, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, minutes)
	}
	return uint64(minutes), validMinutes(name, uint64(minutes))
}

func validMinutes(name string, minutes uint64) error {
	if minutes == 0 || minutes > maxMinutes {
		return fmt.Errorf("%w: %s must be between 1 and %d minutes, got %d", ErrInvalid, name, maxMinutes, minutes)
	}
	return nil
}

func singleRune(name, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%w: keybindings.%s must be a single character, got %q", ErrInvalid, name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || r < ' ' || r == 0x7f {
		return 0, fmt.Errorf("%w: keybindings.%s must be a printable character, got %q", ErrInvalid, name, value)
	}
	return r, nil
}

// DefaultPath returns the configuration file to read when none is given.
// The legacy ~/.config/pomoxide-config.toml wins only while the per-app
// file does not exist.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	path := filepath.Join(configDir, appDir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, ".config", legacyFileName)
		if _, err := os.Stat(legacy); err == nil {
			return legacy, nil
		}
	}
	return path, nil
}
