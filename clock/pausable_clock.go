package clock

import (
	"sync"
	"time"
)

// PausableClock reports scene time elapsed since mount, excluding paused spans
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider
	start  time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a clock at the source's current time
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns scene time since mount, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPaused
}

// Seconds returns Elapsed as float seconds for the animator
func (pc *PausableClock) Seconds() float64 {
	return pc.Elapsed().Seconds()
}

// Pause freezes scene time
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.pause()
}

// Resume continues scene time from where it was frozen
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.resume()
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		pc.resume()
		return false
	}
	pc.pause()
	return true
}

// pause and resume expect the caller to hold the write lock
func (pc *PausableClock) pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

func (pc *PausableClock) resume() {
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause duration including an active pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
