// Package effects runs the side effects of phase changes away from the UI loop.
package effects

import (
	"log"
	"sync"
	"time"

	"github.com/ViliLipo/pomoxide/internal/notify"
	"github.com/ViliLipo/pomoxide/internal/pomodoro"
	"github.com/ViliLipo/pomoxide/internal/sound"
)

// Executor hands each effect to its sink on its own goroutine. Run never
// waits for a sink; failures are logged and dropped.
type Executor struct {
	notifier notify.Notifier
	player   sound.Player

	wg sync.WaitGroup
}

// NewExecutor returns an Executor. Nil sinks are replaced with no-ops.
func NewExecutor(n notify.Notifier, p sound.Player) *Executor {
	if n == nil {
		n = notify.Discard{}
	}
	if p == nil {
		p = sound.Silent{}
	}
	return &Executor{notifier: n, player: p}
}

// Run starts every effect and returns immediately.
func (e *Executor) Run(effects []pomodoro.Effect) {
	for _, eff := range effects {
		e.wg.Add(1)
		go func(eff pomodoro.Effect) {
			defer e.wg.Done()
			e.execute(eff)
		}(eff)
	}
}

func (e *Executor) execute(eff pomodoro.Effect) {
	switch eff.Kind {
	case pomodoro.EffectNotify:
		if err := e.notifier.Notify(eff.Title, eff.Body); err != nil {
			log.Printf("notify: %v", err)
		}
	case pomodoro.EffectSound:
		if err := e.player.Play(); err != nil {
			log.Printf("sound: %v", err)
		}
	default:
		log.Printf("effects: unknown effect kind %d", eff.Kind)
	}
}

// Wait blocks until every started effect has finished.
func (e *Executor) Wait() {
	e.wg.Wait()
}

// Drain waits up to timeout for running effects. It reports whether they
// all finished in time.
func (e *Executor) Drain(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}
