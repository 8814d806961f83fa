package renderer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/holofolio/pointer"
	"github.com/lixenwraith/holofolio/registry"
	"github.com/lixenwraith/holofolio/render"
	"github.com/lixenwraith/holofolio/vmath"
)

const (
	// Perspective distance of the card plane in card half-widths
	cardFocal = 4.0
	cardAlpha = 0.35
)

// Card gradient stops
var cardStops = []colorful.Color{registry.Indigo, registry.Purple, registry.Orchid}

// CardRenderer draws the holographic card: a pointer-angled gradient and a tilted outline
type CardRenderer struct{}

// NewCardRenderer creates the card renderer
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{}
}

// Render paints the card background then its outline
func (r *CardRenderer) Render(ctx render.Context, buf *render.Buffer) {
	rect := ctx.Layout.Card
	if rect.Empty() {
		return
	}
	paintGradient(buf, rect, ctx.Frame.GradientAngle)

	corners := cardCorners(rect, ctx.Frame.Card.Transform.Rotation, ctx.Frame.Card.Transform.Scale)
	edge := render.Accent
	if ctx.Frame.Card.Hovered {
		edge = render.Brighten(edge, 0.35)
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		buf.Line(a[0], a[1], b[0], b[1], edgeGlyph(a, b), edge)
	}
	for _, c := range corners {
		buf.Set(c[0], c[1], '◆', edge)
	}
}

// GradientAt returns the card gradient color at normalised card coordinates
func GradientAt(u, v, angleDeg float64) colorful.Color {
	a := angleDeg * math.Pi / 180
	// 0 degrees runs bottom to top, clockwise like a CSS linear-gradient
	t := 0.5 + (u-0.5)*math.Sin(a) - (v-0.5)*math.Cos(a)
	t = vmath.Clamp(t, 0, 1)
	seg := t * float64(len(cardStops)-1)
	i := min(int(seg), len(cardStops)-2)
	return cardStops[i].BlendLab(cardStops[i+1], seg-float64(i)).Clamped()
}

func paintGradient(buf *render.Buffer, rect pointer.Rect, angle float64) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			u := (float64(x-rect.X) + 0.5) / float64(rect.W)
			v := (float64(y-rect.Y) + 0.5) / float64(rect.H)
			buf.BlendBg(x, y, GradientAt(u, v, angle), cardAlpha)
		}
	}
}

// cardCorners rotates the card plane and projects its corners into rect, clockwise from top-left
func cardCorners(rect pointer.Rect, rot vmath.Vec3F, scale float64) [4][2]int {
	hw := float64(rect.W-1) / 2
	hh := float64(rect.H-1) / 2
	cx := float64(rect.X) + hw
	cy := float64(rect.Y) + hh
	// Local card units: one half-width across, aspect from the rect in square units
	aspect := hh * vmath.CellAspect / math.Max(hw, 1)

	local := [4]vmath.Vec3F{
		vmath.V3F(-1, aspect, 0),
		vmath.V3F(1, aspect, 0),
		vmath.V3F(1, -aspect, 0),
		vmath.V3F(-1, -aspect, 0),
	}
	var out [4][2]int
	for i, p := range local {
		w := vmath.RotateEuler(vmath.V3FScale(p, scale), rot)
		f := cardFocal / (cardFocal - w.Z)
		out[i] = [2]int{
			int(math.Round(cx + w.X*f*hw)),
			int(math.Round(cy - w.Y*f*hw/vmath.CellAspect)),
		}
	}
	return out
}

func edgeGlyph(a, b [2]int) rune {
	dx, dy := b[0]-a[0], b[1]-a[1]
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case abs(dx) > 2*abs(dy):
		return '─'
	case float64(abs(dy))*vmath.CellAspect > 2*float64(abs(dx)):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
