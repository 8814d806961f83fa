package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for transforms and projection
type Vec3F struct {
	X, Y, Z float64
}

// V3F builds a vector from components
func V3F(x, y, z float64) Vec3F {
	return Vec3F{x, y, z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FMul multiplies component-wise
func V3FMul(a, b Vec3F) Vec3F {
	return Vec3F{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FAbsMax returns the largest absolute component
func V3FAbsMax(v Vec3F) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// WrapAngle folds an angle into [-π, π]
func WrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// RotateX rotates v about the X axis by a radians
func RotateX(v Vec3F, a float64) Vec3F {
	s, c := math.Sincos(a)
	return Vec3F{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v about the Y axis by a radians
func RotateY(v Vec3F, a float64) Vec3F {
	s, c := math.Sincos(a)
	return Vec3F{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ rotates v about the Z axis by a radians
func RotateZ(v Vec3F, a float64) Vec3F {
	s, c := math.Sincos(a)
	return Vec3F{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// RotateEuler applies intrinsic XYZ Euler angles, Z first then Y then X
func RotateEuler(v Vec3F, euler Vec3F) Vec3F {
	return RotateX(RotateY(RotateZ(v, euler.Z), euler.Y), euler.X)
}

// Lerp interpolates scalars
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
