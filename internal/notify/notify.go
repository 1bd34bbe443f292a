// Package notify delivers desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier shows a notification with a title and a body.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the platform notification service
// (D-Bus or notify-send on Linux, osascript on macOS, toast on Windows).
type Desktop struct {
	icon string
}

// NewDesktop returns a Desktop notifier that reports itself as appName.
// appName is process wide: the underlying library keeps it in a global.
func NewDesktop(appName string) *Desktop {
	beeep.AppName = appName
	return &Desktop{}
}

// Notify shows the notification. It may block while the platform service
// answers, so callers run it off the UI loop.
func (d *Desktop) Notify(title, body string) error {
	if err := beeep.Notify(title, body, d.icon); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	return nil
}

// Discard drops every notification. It stands in when notifications are
// turned off in the configuration.
type Discard struct{}

func (Discard) Notify(string, string) error { return nil }
