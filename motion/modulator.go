package motion

import (
	"math"

	"github.com/lixenwraith/holofolio/pointer"
)

// Modulator layers pointer tilt and an idle wobble onto a base transform
type Modulator struct {
	Gain            float64 // Radians of tilt per unit of pointer offset from center
	WobbleAmplitude float64 // Radians about Z
	WobbleRate      float64 // Radians per second
}

// DefaultModulator matches the holographic card
var DefaultModulator = Modulator{
	Gain:            0.3,
	WobbleAmplitude: 0.1,
	WobbleRate:      1,
}

// Tilt maps pointer offset from center to rotations about X and Y
// Pointer Y drives X rotation and pointer X drives Y rotation; zero at center
func (m Modulator) Tilt(s pointer.State) (rx, ry float64) {
	s = s.Clamped()
	return (s.Y - 0.5) * m.Gain, (s.X - 0.5) * m.Gain
}

// Wobble is the time-only Z rotation that keeps an idle element moving
func (m Modulator) Wobble(t float64) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	return math.Sin(t*m.WobbleRate) * m.WobbleAmplitude
}

// Apply adds tilt and wobble after the base transform
func (m Modulator) Apply(base Transform, s pointer.State, t float64) Transform {
	rx, ry := m.Tilt(s)
	out := base
	out.Rotation.X += rx
	out.Rotation.Y += ry
	out.Rotation.Z += m.Wobble(t)
	return out
}

// GradientAngle maps pointer X to a gradient direction in degrees
func GradientAngle(s pointer.State) float64 {
	return s.Clamped().X * 360
}
