// Package sound plays the phase change cue.
package sound

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/wav"
)

//go:embed ding.wav
var dingWAV []byte

// Clip is decoded signed 16-bit little-endian PCM ready for the audio device.
type Clip struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

// Duration returns the playing time of the clip.
func (c Clip) Duration() time.Duration {
	frameBytes := 2 * c.Channels
	if frameBytes == 0 || c.SampleRate == 0 {
		return 0
	}
	frames := len(c.PCM) / frameBytes
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

// Ding returns the embedded notification cue.
func Ding() (Clip, error) {
	return DecodeWAV(dingWAV)
}

// DecodeWAV decodes a 16-bit PCM WAV file.
func DecodeWAV(data []byte) (Clip, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return Clip{}, errors.New("decode wav: not a valid wav file")
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("decode wav: %w", err)
	}
	if buf.SourceBitDepth != 16 {
		return Clip{}, fmt.Errorf("decode wav: unsupported bit depth %d", buf.SourceBitDepth)
	}

	pcm := make([]byte, 2*len(buf.Data))
	for i, sample := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(sample)))
	}
	return Clip{
		PCM:        pcm,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}
