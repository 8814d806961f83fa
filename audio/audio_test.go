package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/holofolio/typewriter"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestClickGeneratorLengthAndEnvelope(t *testing.T) {
	g := NewClickGenerator(sampleRate, 1000, 10*time.Millisecond, 0.5)
	require.Equal(t, 480, g.Len())

	samples := drain(g)
	require.Len(t, samples, 480)
	assert.NoError(t, g.Err())

	peak := 0.0
	for _, s := range samples {
		assert.Equal(t, s[0], s[1], "mono click on both channels")
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.05)

	assert.Equal(t, 0.0, samples[0][0], "attack starts from silence")

	head := math.Abs(samples[30][0]) + math.Abs(samples[40][0]) + math.Abs(samples[50][0])
	tail := math.Abs(samples[430][0]) + math.Abs(samples[440][0]) + math.Abs(samples[450][0])
	assert.Greater(t, head, tail, "click decays")
}

func TestClickGeneratorExhausted(t *testing.T) {
	g := NewClickGenerator(sampleRate, 1000, time.Millisecond, 0.5)
	drain(g)
	n, ok := g.Stream(make([][2]float64, 8))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestSoundManagerInitFailureIsReported(t *testing.T) {
	sm := NewSoundManager()
	sm.init = func(beep.SampleRate, int) error { return errors.New("no device") }

	assert.EqualError(t, sm.Initialize(), "no device")

	// Uninitialized manager ignores playback and cleanup
	sm.PlayKey()
	sm.PlayErase()
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	assert.False(t, sm.Muted())
	assert.True(t, sm.ToggleMuted())
	assert.True(t, sm.Muted())
	sm.SetMuted(false)
	assert.False(t, sm.Muted())
}

func TestTypewriterHookClassifiesSteps(t *testing.T) {
	sm := NewSoundManager()
	hook := sm.TypewriterHook()

	// Uninitialized manager: the hook must be safe to call for every transition kind
	hook(typewriter.State{Visible: 0}, typewriter.State{Visible: 1}, "A")
	hook(typewriter.State{Visible: 1, Phase: typewriter.PhasePausedFull}, typewriter.State{Visible: 1, Phase: typewriter.PhaseDeleting}, "A")
	hook(typewriter.State{Visible: 1, Phase: typewriter.PhaseDeleting}, typewriter.State{Index: 1}, "")
}
