package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseSnapsFirstStep(t *testing.T) {
	e := NewHoverEase(30)
	assert.Equal(t, 1.0, e.Step(1))
	assert.Equal(t, 1.0, e.Value())
	assert.Equal(t, 1.0, e.Step(1), "at rest on target stays put")
}

func TestEaseConvergesToHoverScale(t *testing.T) {
	e := NewHoverEase(30)
	e.Step(1)

	peak := 0.0
	v := 0.0
	for i := 0; i < 90; i++ {
		v = e.Step(1.2)
		peak = math.Max(peak, v)
	}
	assert.InDelta(t, 1.2, v, 1e-3)
	assert.Greater(t, peak, 1.2, "underdamped spring overshoots")
	assert.Less(t, peak, 1.3)

	for i := 0; i < 90; i++ {
		v = e.Step(1)
	}
	assert.InDelta(t, 1.0, v, 1e-3)
}

func TestEaseFirstFrameMovesPartway(t *testing.T) {
	e := NewHoverEase(30)
	e.Step(1)
	v := e.Step(1.2)
	assert.Greater(t, v, 1.0)
	assert.Less(t, v, 1.2)
}

func TestEaseReset(t *testing.T) {
	e := NewEase(60, 6, 1)
	e.Step(0)
	e.Step(10)
	e.Reset(3)
	assert.Equal(t, 3.0, e.Value())
	assert.Equal(t, 3.0, e.Step(3))
}

func TestEaseZeroFPS(t *testing.T) {
	e := NewEase(0, 6, 1)
	e.Step(0)
	assert.False(t, math.IsNaN(e.Step(1)))
}
