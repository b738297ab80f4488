// Package audio synthesizes the runner's sound effects with beep. The
// simulation only reports edge events; this package turns them into sound.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the linear master volume.
	DefaultVolume = 0.3
)

// SoundManager plays effects through a shared mixer. Every method is safe to
// call before Initialize succeeds or after Close; they do nothing then, so
// the game runs the same without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      map[Sound]int
}

// NewSoundManager creates a manager with the given linear volume.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[Sound]int),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open; beep has no
// way to release it.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether sounds reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts an effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := Effect(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}

func (sm *SoundManager) PlayJump()     { sm.Play(SoundJump) }
func (sm *SoundManager) PlayLand()     { sm.Play(SoundLand) }
func (sm *SoundManager) PlayStageUp()  { sm.Play(SoundStageUp) }
func (sm *SoundManager) PlayGameOver() { sm.Play(SoundGameOver) }

// Handle plays the effects for one tick's events.
func (sm *SoundManager) Handle(ev core.Events) {
	for _, s := range SoundsFor(ev) {
		sm.Play(s)
	}
}

// Played returns how many times s has been started.
func (sm *SoundManager) Played(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// SoundsFor lists the effects for a set of events. Game over drowns out
// everything else raised on the same tick.
func SoundsFor(ev core.Events) []Sound {
	if ev.Has(core.EventGameOver) {
		return []Sound{SoundGameOver}
	}

	var sounds []Sound
	if ev.Has(core.EventStageUp) {
		sounds = append(sounds, SoundStageUp)
	}
	if ev.Has(core.EventJump) {
		sounds = append(sounds, SoundJump)
	}
	if ev.Has(core.EventLand) {
		sounds = append(sounds, SoundLand)
	}
	return sounds
}
