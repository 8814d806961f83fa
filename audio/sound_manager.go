// Package audio plays short key clicks for the typewriter line
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	keyClickFreq   = 1800.0
	eraseClickFreq = 900.0
	clickDuration  = 18 * time.Millisecond
)

// SoundManager plays click streamers on the speaker
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool

	// init is swapped in tests to avoid touching an audio device
	init func(beep.SampleRate, int) error
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		init: speaker.Init,
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}

// SetMuted silences new clicks without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMuted flips mute and returns the new state
func (sm *SoundManager) ToggleMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayKey plays the bright click of a revealed character
func (sm *SoundManager) PlayKey() {
	sm.play(NewClickGenerator(sampleRate, keyClickFreq, clickDuration, 0.25))
}

// PlayErase plays the softer, lower click of a retracted character
func (sm *SoundManager) PlayErase() {
	sm.play(NewClickGenerator(sampleRate, eraseClickFreq, clickDuration, 0.15))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	active := sm.initialized && !sm.muted
	sm.mu.Unlock()

	if !active {
		return
	}
	speaker.Play(s)
}
