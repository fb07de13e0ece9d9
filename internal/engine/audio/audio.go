// Package audio plays the pet's sound cues.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and the pet's preloaded sound cues. Cues are short
// one-shot effects (a bounce thud, a launch whoosh) mixed over each other
// when they overlap.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	cues        map[string]*beep.Buffer
}

// New creates a manager with the given cue volume (0.0 to 1.0).
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		mixer:      &beep.Mixer{},
		volume:     clamp(volume, 0, 1),
		cues:       make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and starts the cue mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the speaker has been opened.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// LoadCue decodes WAV data and stores it under name, resampled to the
// playback rate so Play never touches the decoder.
func (m *Manager) LoadCue(name string, data []byte) error {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode cue %s: %w", name, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		src = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  m.sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(src)

	m.mu.Lock()
	m.cues[name] = buf
	m.mu.Unlock()
	return nil
}

// HasCue reports whether a cue was loaded under name.
func (m *Manager) HasCue(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cues[name]
	return ok
}

// Play mixes the named cue into the output. Unknown cues and a closed
// speaker are ignored so callers can fire cues without checking whether
// sound is available.
func (m *Manager) Play(name string) {
	m.mu.RLock()
	buf, ok := m.cues[name]
	initialized := m.initialized
	vol := m.volume
	m.mu.RUnlock()

	if !ok || !initialized {
		return
	}

	// Gain is Base^Volume, so a dB figure pairs with base 10 and a /20
	// exponent; the result is the plain linear volume.
	streamer := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
		Silent:   vol <= 0,
	}

	// The mixer is being pulled by the speaker goroutine, so mutations
	// happen under the speaker lock.
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
