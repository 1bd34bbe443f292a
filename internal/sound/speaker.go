package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays the cue and returns once it finished.
type Player interface {
	Play() error
}

// Speaker plays a clip on the default audio output. The output is opened on
// the first Play; if that fails every later Play reports the same error.
type Speaker struct {
	clip Clip

	once    sync.Once
	context *oto.Context
	err     error
}

// NewSpeaker returns a Speaker for clip.
func NewSpeaker(clip Clip) *Speaker {
	return &Speaker{clip: clip}
}

// Play blocks until the clip has been played. Concurrent calls mix.
func (s *Speaker) Play() error {
	ctx, err := s.open()
	if err != nil {
		return err
	}

	player := ctx.NewPlayer(bytes.NewReader(s.clip.PCM))
	defer player.Close()

	player.Play()
	deadline := time.Now().Add(s.clip.Duration() + 2*time.Second)
	for player.IsPlaying() {
		if time.Now().After(deadline) {
			return fmt.Errorf("play clip: still playing after %s", s.clip.Duration())
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err := player.Err(); err != nil {
		return fmt.Errorf("play clip: %w", err)
	}
	return nil
}

// The audio backend allows a single context per process.
func (s *Speaker) open() (*oto.Context, error) {
	s.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   s.clip.SampleRate,
			ChannelCount: s.clip.Channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			s.err = fmt.Errorf("open audio output: %w", err)
			return
		}
		<-ready
		s.context = ctx
	})
	return s.context, s.err
}

// Silent never makes a sound. It stands in when sound is turned off.
type Silent struct{}

func (Silent) Play() error { return nil }
