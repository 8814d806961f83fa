package renderer

import (
	"github.com/lixenwraith/holofolio/render"
)

const (
	particleNear = 1.0
	particleFar  = 14.0
)

// ParticlesRenderer draws the drifting background cloud
type ParticlesRenderer struct{}

// NewParticlesRenderer creates a particle cloud renderer
func NewParticlesRenderer() *ParticlesRenderer {
	return &ParticlesRenderer{}
}

// Render rotates the cloud by the drift transform and plots each point behind everything else
func (r *ParticlesRenderer) Render(ctx render.Context, buf *render.Buffer) {
	f := ctx.Frame
	if len(f.ParticlePoints) == 0 {
		return
	}
	for _, pt := range f.ParticlePoints {
		proj := ctx.Project(f.Particles.Apply(pt))
		if !proj.OK {
			continue
		}
		fade := render.DepthFade(proj.Depth, particleNear, particleFar)
		glyph := '·'
		if fade < 0.25 {
			glyph = '∙'
		}
		buf.Plot(int(proj.X), int(proj.Y), proj.Depth+particleFar, glyph, render.Shade(f.ParticleColor, 0.3+fade*0.5))
	}
}
