package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/holofolio/vmath"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	require.Equal(t, 7, r.Len())

	first := r.At(0)
	assert.Equal(t, ShapeSphere, first.Shape)
	assert.Equal(t, vmath.V3F(-3, 2, -2), first.Position)
	assert.Equal(t, 0.8, first.Speed)
	assert.Equal(t, "#667eea", first.Color.Hex())

	assert.Equal(t, ShapeBox, r.At(6).Shape)
}

func TestRegistryReadTwiceIsStable(t *testing.T) {
	r := Default()
	a := r.All()
	b := r.All()
	assert.Equal(t, a, b)

	// Mutating a returned copy must not leak into the registry
	a[0].Speed = 99
	a[0].Position = vmath.V3F(9, 9, 9)
	assert.Equal(t, b, r.All())
}

func TestRegistryCopiesInput(t *testing.T) {
	descs := []Descriptor{{Shape: ShapeTorus, Speed: 1}}
	r, err := New(descs...)
	require.NoError(t, err)

	descs[0].Speed = 5
	assert.Equal(t, 1.0, r.At(0).Speed)
}

func TestRegistryEachOrder(t *testing.T) {
	r := Default()
	var shapes []ShapeKind
	r.Each(func(i int, d Descriptor) {
		assert.Equal(t, r.At(i), d)
		shapes = append(shapes, d.Shape)
	})
	assert.Equal(t, []ShapeKind{
		ShapeSphere, ShapeBox, ShapeTorus, ShapeOctahedron, ShapeIcosahedron, ShapeSphere, ShapeBox,
	}, shapes)
}

func TestRegistryRejectsBadSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := New(Descriptor{Shape: ShapeSphere, Speed: speed})
		assert.True(t, errors.Is(err, ErrInvalidSpeed), "speed %v: got %v", speed, err)
	}
}

func TestRegistryRejectsBadShape(t *testing.T) {
	_, err := New(Descriptor{Shape: ShapeKind(42), Speed: 1})
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestEmptyRegistry(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.All())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(Descriptor{Speed: 0}) })
}

func TestParseShape(t *testing.T) {
	cases := map[string]ShapeKind{
		"sphere":      ShapeSphere,
		"Box":         ShapeBox,
		" torus ":     ShapeTorus,
		"OCTAHEDRON":  ShapeOctahedron,
		"icosahedron": ShapeIcosahedron,
	}
	for name, want := range cases {
		got, err := ParseShape(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
		assert.Equal(t, shapeNames[want], want.String())
	}

	_, err := ParseShape("dodecahedron")
	assert.ErrorIs(t, err, ErrUnknownShape)
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
}
