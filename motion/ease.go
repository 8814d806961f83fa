package motion

import (
	"github.com/charmbracelet/harmonica"
)

// Hover spring, slightly underdamped so emphasis lands with a small overshoot
const (
	HoverSpringFrequency = 10.0
	HoverSpringDamping   = 0.5
)

// Ease follows a moving scalar target with a damped spring, one step per frame
// Frame values stay pure; the host eases the hover scale between frames
type Ease struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	primed bool
}

// NewEase creates an ease stepping at fps frames per second
func NewEase(fps int, frequency, damping float64) *Ease {
	return &Ease{spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), frequency, damping)}
}

// NewHoverEase creates the ease used for hover emphasis
func NewHoverEase(fps int) *Ease {
	return NewEase(fps, HoverSpringFrequency, HoverSpringDamping)
}

// Step advances one frame toward target and returns the eased value
// The first step snaps to target
func (e *Ease) Step(target float64) float64 {
	if !e.primed {
		e.Reset(target)
		return target
	}
	e.pos, e.vel = e.spring.Update(e.pos, e.vel, target)
	return e.pos
}

// Reset places the ease at rest on v
func (e *Ease) Reset(v float64) {
	e.pos, e.vel, e.primed = v, 0, true
}

// Value returns the current eased value
func (e *Ease) Value() float64 {
	return e.pos
}
