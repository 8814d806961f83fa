package renderer

import (
	"math"

	"github.com/lixenwraith/holofolio/render"
	"github.com/lixenwraith/holofolio/scene"
	"github.com/lixenwraith/holofolio/vmath"
)

const (
	sphereNear = 8.0
	sphereFar  = 12.0

	// Shading ramp from dark rim to lit centre
	sphereRamp = " .:-=+*#%@"
)

// Light direction in view space
var lightDir = vmath.V3FNormalize(vmath.V3F(-0.35, 0.55, 0.75))

// surface perturbs the unit sphere outline
type surface struct {
	distort float64 // Radial displacement fraction
	lobes   float64 // Angular frequency of the displacement
	rate    float64 // Radians per second
	wobble  bool    // Displace along screen Y instead of radially
}

var (
	morphSurface       = surface{distort: 0.18, lobes: 3, rate: 2}
	interactiveSurface = surface{distort: 0.1, lobes: 4, rate: 1.5}
	wobblySurface      = surface{distort: 0.12, lobes: 4, rate: 3, wobble: true}
)

// SpheresRenderer draws the morphing, interactive and wobbly spheres as shaded discs
type SpheresRenderer struct{}

// NewSpheresRenderer creates the feature sphere renderer
func NewSpheresRenderer() *SpheresRenderer {
	return &SpheresRenderer{}
}

// Render draws the three feature spheres
func (r *SpheresRenderer) Render(ctx render.Context, buf *render.Buffer) {
	f := ctx.Frame
	drawSphere(ctx, buf, f.Morph, morphSurface, f.Time)
	drawSphere(ctx, buf, f.Interactive, interactiveSurface, f.Time)
	drawSphere(ctx, buf, f.Wobbly, wobblySurface, f.Time)
}

// radius returns the displaced outline radius at screen angle theta
func (s surface) radius(theta, ny, t float64) float64 {
	if s.wobble {
		return 1 + s.distort*math.Sin(ny*s.lobes+t*s.rate)
	}
	return 1 + s.distort*math.Sin(theta*s.lobes+t*s.rate)*math.Cos(theta*(s.lobes-1)-t*s.rate*0.7)
}

// clipSpan converts a float cell range to inclusive ints inside [0, limit)
func clipSpan(lo, hi float64, limit int) (int, int) {
	lo = math.Max(math.Floor(lo), 0)
	hi = math.Min(math.Ceil(hi), float64(limit-1))
	return int(lo), int(hi)
}

func drawSphere(ctx render.Context, buf *render.Buffer, p scene.Placement, s surface, t float64) {
	proj := ctx.Project(p.Transform.Position)
	if !proj.OK {
		return
	}
	radius := render.SphereRadius * p.Transform.Scale * proj.Scale
	if !(radius >= 0.5) || math.IsInf(radius, 0) {
		return
	}
	reach := radius * (1 + s.distort)
	minX, maxX := clipSpan(proj.X-reach*vmath.CellAspect, proj.X+reach*vmath.CellAspect, ctx.Width)
	minY, maxY := clipSpan(proj.Y-reach, proj.Y+reach, render.ViewHeight(ctx.Height))

	depthShade := render.DepthFade(proj.Depth, sphereNear, sphereFar) * 0.4
	base := p.Descriptor.Color
	if p.Hovered {
		base = render.Brighten(base, 0.2)
	}

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - proj.X) / (radius * vmath.CellAspect)
			ny := (proj.Y - float64(sy) - 0.5) / radius
			d := math.Hypot(nx, ny)
			edge := s.radius(math.Atan2(ny, nx), ny, t)
			if d > edge {
				continue
			}
			// Remap into the unit disc so the shading follows the displaced outline
			nx, ny = nx/edge, ny/edge
			nz := math.Sqrt(math.Max(0, 1-nx*nx-ny*ny))
			normal := vmath.V3F(nx, ny, nz)

			lambert := math.Max(0, vmath.V3FDot(normal, lightDir))
			// Bands of longitude in object space make the spin visible
			local := vmath.RotateEuler(normal, vmath.V3FScale(p.Transform.Rotation, -1))
			band := 0.5 + 0.5*math.Sin(6*math.Atan2(local.X, local.Z))
			intensity := 0.15 + 0.65*lambert + 0.2*band

			idx := int(intensity * float64(len(sphereRamp)-1))
			idx = max(1, min(idx, len(sphereRamp)-1))
			fg := render.Shade(base, depthShade+(1-intensity)*0.5)
			depth := proj.Depth - nz*render.SphereRadius*p.Transform.Scale
			buf.Plot(sx, sy, depth, rune(sphereRamp[idx]), fg)
		}
	}
}
