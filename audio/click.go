package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ClickGenerator emits a short exponentially decaying sine burst
type ClickGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	samples   int
	pos       int
}

// NewClickGenerator creates a click of the given pitch, length and peak amplitude
func NewClickGenerator(sr beep.SampleRate, freq float64, d time.Duration, amplitude float64) *ClickGenerator {
	return &ClickGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
		samples:   sr.N(d),
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		// Fast attack over the first 2% then exponential decay
		envelope := math.Exp(-progress * 6)
		if progress < 0.02 {
			envelope *= progress / 0.02
		}
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// Len returns the total number of samples the click produces
func (g *ClickGenerator) Len() int {
	return g.samples
}
