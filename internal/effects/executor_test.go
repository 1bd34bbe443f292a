package effects

import (
	"bytes"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/ViliLipo/pomoxide/internal/pomodoro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu     sync.Mutex
	bodies []string
	err    error
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, title+"|"+body)
	return f.err
}

func (f *fakeNotifier) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

type fakePlayer struct {
	mu    sync.Mutex
	plays int
	err   error
	block chan struct{}
}

func (f *fakePlayer) Play() error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	return f.err
}

func (f *fakePlayer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays
}

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return buf
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var workDone = []pomodoro.Effect{
	{Kind: pomodoro.EffectSound},
	{Kind: pomodoro.EffectNotify, Title: pomodoro.NotificationTitle, Body: pomodoro.AskStartBreak},
}

func TestRunDeliversEveryEffect(t *testing.T) {
	n := &fakeNotifier{}
	p := &fakePlayer{}
	e := NewExecutor(n, p)

	e.Run(workDone)
	e.Wait()

	assert.Equal(t, []string{"Pomoxide Timer|Start a break?"}, n.seen())
	assert.Equal(t, 1, p.count())
}

func TestRunDoesNotWaitForSinks(t *testing.T) {
	p := &fakePlayer{block: make(chan struct{})}
	e := NewExecutor(&fakeNotifier{}, p)

	returned := make(chan struct{})
	go func() {
		e.Run(workDone)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Run blocked on a sink")
	}

	assert.False(t, e.Drain(20*time.Millisecond))
	close(p.block)
	assert.True(t, e.Drain(time.Second))
	assert.Equal(t, 1, p.count())
}

func TestFailuresAreLogged(t *testing.T) {
	logs := captureLog(t)
	n := &fakeNotifier{err: errors.New("no notification daemon")}
	p := &fakePlayer{err: errors.New("no output device")}
	e := NewExecutor(n, p)

	e.Run(workDone)
	e.Run(workDone)
	e.Wait()

	assert.Len(t, n.seen(), 2)
	assert.Equal(t, 2, p.count())
	out := logs.String()
	assert.Contains(t, out, "notify: no notification daemon")
	assert.Contains(t, out, "sound: no output device")
}

func TestNilSinksAreSilent(t *testing.T) {
	e := NewExecutor(nil, nil)
	e.Run(workDone)
	require.True(t, e.Drain(time.Second))
}

func TestDrainWithNothingRunning(t *testing.T) {
	e := NewExecutor(nil, nil)
	assert.True(t, e.Drain(time.Second))
	e.Run(nil)
	e.Wait()
}
