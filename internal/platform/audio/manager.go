package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and synthesizes the game's sound effects.
// All Play methods are safe to call before Initialize or after a failed
// Initialize; they simply do nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a sound manager with the given master volume in [0, 1].
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences the mixer. beep's speaker has no Close, so clearing
// the mixer is as far as shutdown goes.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Clear()
	m.initialized = false
}

// play queues a one-shot streamer on the mixer.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayFlap plays a short rising blip for a wing flap.
func (m *Manager) PlayFlap() {
	osc := newOscillator(523.25, 60*time.Millisecond, WaveSine, sampleRate)
	shaped := newEnvelope(osc, 60*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, sampleRate)
	m.play(newVolume(shaped, 0.5*m.volume))
}

// PlayScore plays a two-note chime when a pipe is cleared.
func (m *Manager) PlayScore() {
	n1 := newOscillator(987.77, 70*time.Millisecond, WaveSquare, sampleRate)
	n1Shaped := newEnvelope(n1, 70*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, sampleRate)

	n2 := newOscillator(1318.51, 110*time.Millisecond, WaveSquare, sampleRate)
	n2Shaped := newEnvelope(n2, 110*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, sampleRate)

	m.play(newVolume(beep.Seq(n1Shaped, n2Shaped), 0.35*m.volume))
}

// PlayCrash plays a noise burst when the bird hits a pipe or the bounds.
func (m *Manager) PlayCrash() {
	noise := newOscillator(0, 250*time.Millisecond, WaveNoise, sampleRate)
	shaped := newEnvelope(noise, 250*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond, sampleRate)

	thump := newOscillator(90, 250*time.Millisecond, WaveSine, sampleRate)
	thumpShaped := newEnvelope(thump, 250*time.Millisecond, 2*time.Millisecond, 180*time.Millisecond, sampleRate)

	mixed := beep.Mix(
		newVolume(shaped, 0.4),
		newVolume(thumpShaped, 0.6),
	)
	m.play(newVolume(mixed, 0.6*m.volume))
}
