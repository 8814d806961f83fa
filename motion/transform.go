package motion

import (
	"github.com/lixenwraith/holofolio/vmath"
)

// Transform is the rotation, position and scale applied to an element for one frame
type Transform struct {
	Rotation vmath.Vec3F // Euler angles in radians
	Position vmath.Vec3F // Base position plus procedural offset
	Scale    float64
}

// Rest is the static pose of an element at its base position
func Rest(position vmath.Vec3F) Transform {
	return Transform{Position: position, Scale: 1}
}

// Offset returns the procedural displacement from base
func (tf Transform) Offset(base vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FSub(tf.Position, base)
}

// Apply transforms a point in element-local space to world space
func (tf Transform) Apply(local vmath.Vec3F) vmath.Vec3F {
	scaled := vmath.V3FScale(local, tf.Scale)
	return vmath.V3FAdd(vmath.RotateEuler(scaled, tf.Rotation), tf.Position)
}

// Emphasis returns the hover scale for an element, 1 when idle
func Emphasis(hovered bool, factor float64) float64 {
	if hovered {
		return factor
	}
	return 1
}
