// Package assets produces the game's audio players, either decoded from wav
// files on disk or synthesized from tone descriptions.
package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context. Ebiten allows only one.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Tone is a synthesized sound: a sine (or noise) burst whose pitch slides
// from Frequency to Frequency+Slide and decays to silence over Duration.
type Tone struct {
	Frequency float64
	Slide     float64
	Duration  float64
	Volume    float64
	Noise     bool
}

// SynthesizePCM renders a tone as 16-bit little-endian stereo PCM, the
// format audio players consume directly.
func SynthesizePCM(t Tone, sampleRate int) []byte {
	if t.Duration <= 0 || sampleRate <= 0 {
		return nil
	}
	vol := t.Volume
	if vol <= 0 {
		vol = 1
	}
	n := int(t.Duration * float64(sampleRate))
	out := make([]byte, 0, n*4)
	rng := rand.New(rand.NewPCG(uint64(n), uint64(t.Frequency)))
	phase := 0.0
	for i := range n {
		progress := float64(i) / float64(n)
		freq := t.Frequency + t.Slide*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var s float64
		if t.Noise {
			s = rng.Float64()*2 - 1
		} else {
			s = math.Sin(phase)
		}
		s *= vol * (1 - progress)

		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
	}
	return out
}

// NewTonePlayer synthesizes a tone into a player.
func NewTonePlayer(t Tone) *audio.Player {
	ctx := Context()
	return ctx.NewPlayerFromBytes(SynthesizePCM(t, ctx.SampleRate()))
}

// LoadAudioPlayer decodes a wav file from disk into a player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("assets: unsupported audio format %q", path)
	}
	b, err := os.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, err
	}
	ctx := Context()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return ctx.NewPlayer(stream)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if !strings.HasPrefix(s, "assets/") && !filepath.IsAbs(path) {
		s = "assets/" + s
	}
	return filepath.FromSlash(s)
}
