package motion

import (
	"math"

	"github.com/lixenwraith/holofolio/registry"
	"github.com/lixenwraith/holofolio/vmath"
)

// Drive selects how rotation evolves with time
type Drive uint8

const (
	// DriveOscillate swings each axis along a bounded sine
	DriveOscillate Drive = iota
	// DriveSpin rotates each axis at a constant rate
	DriveSpin
)

// Profile is a per-context animation policy
// All rates are multiplied by the descriptor speed factor
type Profile struct {
	Drive Drive

	Amplitude vmath.Vec3F // Oscillation amplitude per axis, radians
	Rate      vmath.Vec3F // Harmonic ratio (oscillate) or angular velocity in rad/s (spin)

	// PhaseByPosition shifts each axis by the element's base position so neighbours desync
	PhaseByPosition bool

	Bob     vmath.Vec3F // Positional bob amplitude per axis, world units
	BobRate vmath.Vec3F
}

// Preset profiles matching the hero scene elements
var (
	// FieldProfile drives the floating shape field, Y and Z run at 0.8x and 0.6x of X
	FieldProfile = Profile{
		Drive:           DriveOscillate,
		Amplitude:       vmath.V3F(0.4, 0.3, 0.2),
		Rate:            vmath.V3F(1, 0.8, 0.6),
		PhaseByPosition: true,
		Bob:             vmath.V3F(0.1, 0.2, 0),
		BobRate:         vmath.V3F(0.5, 1, 0),
	}

	// SwayProfile drives the pointer-reactive sphere with a single sine per axis
	SwayProfile = Profile{
		Drive:     DriveOscillate,
		Amplitude: vmath.V3F(0.3, 0.3, 0),
		Rate:      vmath.V3F(1, 0.8, 0),
	}

	// DriftProfile slowly rocks the particle cloud
	DriftProfile = Profile{
		Drive:     DriveOscillate,
		Amplitude: vmath.V3F(0.2, 0.2, 0.1),
		Rate:      vmath.V3F(0.05, 0.08, 0.03),
	}

	// SpinProfile turns the morphing centre sphere
	SpinProfile = Profile{
		Drive: DriveSpin,
		Rate:  vmath.V3F(0.2, 0.3, 0.1),
	}

	// WobbleSpinProfile turns the wobbly sphere about X and Y only
	WobbleSpinProfile = Profile{
		Drive: DriveSpin,
		Rate:  vmath.V3F(0.2, 0.3, 0),
	}
)

// Compute evaluates the field profile, the default policy for registry elements
func Compute(t float64, d registry.Descriptor) Transform {
	return FieldProfile.Compute(t, d)
}

// Compute maps elapsed seconds and a descriptor to a transform
// Negative t mirrors the waveform; non-finite t yields the rest pose
func (p Profile) Compute(t float64, d registry.Descriptor) Transform {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return Rest(d.Position)
	}

	ts := t * d.Speed

	var phase vmath.Vec3F
	if p.PhaseByPosition {
		phase = d.Position
	}

	var rot vmath.Vec3F
	switch p.Drive {
	case DriveSpin:
		rot = vmath.Vec3F{
			X: vmath.WrapAngle(ts * p.Rate.X),
			Y: vmath.WrapAngle(ts * p.Rate.Y),
			Z: vmath.WrapAngle(ts * p.Rate.Z),
		}
	default:
		rot = vmath.Vec3F{
			X: math.Sin(ts*p.Rate.X+phase.X) * p.Amplitude.X,
			Y: math.Sin(ts*p.Rate.Y+phase.Y) * p.Amplitude.Y,
			Z: math.Sin(ts*p.Rate.Z+phase.Z) * p.Amplitude.Z,
		}
	}

	// X bob is cosine keyed on Y phase, Y bob is sine keyed on X phase
	bob := vmath.Vec3F{
		X: math.Cos(ts*p.BobRate.X+phase.Y) * p.Bob.X,
		Y: math.Sin(ts*p.BobRate.Y+phase.X) * p.Bob.Y,
		Z: math.Sin(ts*p.BobRate.Z+phase.Z) * p.Bob.Z,
	}

	return Transform{
		Rotation: rot,
		Position: vmath.V3FAdd(d.Position, bob),
		Scale:    1,
	}
}

// Bound returns the largest absolute rotation per axis the profile can produce
func (p Profile) Bound() vmath.Vec3F {
	if p.Drive == DriveSpin {
		return vmath.V3F(math.Pi, math.Pi, math.Pi)
	}
	return vmath.Vec3F{
		X: math.Abs(p.Amplitude.X),
		Y: math.Abs(p.Amplitude.Y),
		Z: math.Abs(p.Amplitude.Z),
	}
}
