package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/quintesse/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes menu cues and caches the PCM bytes
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a cue without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = Synthesize(tone, l.context.SampleRate())
	return true
}

// LoadSFX returns a new player for a cue each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, bool) {
	if !l.PreloadSFX(id) {
		return nil, false
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), true
}

// Synthesize renders tone as 16-bit little endian stereo PCM, the format
// audio.Context players consume. A short linear fade avoids clicks.
func Synthesize(tone cfg.Tone, sampleRate int) []byte {
	n := sampleRate * tone.Duration / 1000
	if n <= 0 {
		return nil
	}
	fade := n / 8
	if fade == 0 {
		fade = 1
	}

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.Frequency + tone.Slide*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 0.3
		if i < fade {
			amp *= float64(i) / float64(fade)
		} else if n-i < fade {
			amp *= float64(n-i) / float64(fade)
		}

		// square-ish wave, softened with a cubic
		s := math.Sin(phase)
		s = 1.5*s - 0.5*s*s*s
		v := int16(s * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
