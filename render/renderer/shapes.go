package renderer

import (
	"github.com/lixenwraith/holofolio/render"
)

// Depth band used for shape shading, in view units
const (
	shapeNear = 4.0
	shapeFar  = 10.0
)

var depthGlyphs = []rune{'●', '•', '∙', '·'}

// ShapesRenderer draws the floating shape field as depth-shaded point clouds
type ShapesRenderer struct{}

// NewShapesRenderer creates a shape field renderer
func NewShapesRenderer() *ShapesRenderer {
	return &ShapesRenderer{}
}

// Render plots every mesh point of every shape in registry order
func (r *ShapesRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for _, p := range ctx.Frame.Shapes {
		for _, local := range Mesh(p.Descriptor.Shape) {
			proj := ctx.Project(p.Transform.Apply(local))
			if !proj.OK {
				continue
			}
			fade := render.DepthFade(proj.Depth, shapeNear, shapeFar)
			glyph := depthGlyphs[min(int(fade*float64(len(depthGlyphs))), len(depthGlyphs)-1)]
			buf.Plot(int(proj.X), int(proj.Y), proj.Depth, glyph, render.Shade(p.Descriptor.Color, fade*0.6))
		}
	}
}
