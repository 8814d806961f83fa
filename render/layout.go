package render

import (
	"math"

	"github.com/lixenwraith/holofolio/pointer"
	"github.com/lixenwraith/holofolio/scene"
	"github.com/lixenwraith/holofolio/vmath"
)

const (
	cardMaxWidth  = 56
	cardMaxHeight = 12
	statusRows    = 1

	// SphereRadius is the world radius of the feature spheres
	SphereRadius = 1.0
)

// Layout holds the screen rectangles shared by renderers and pointer surfaces
type Layout struct {
	Card   pointer.Rect
	Sphere pointer.Rect // Hover area of the interactive sphere
	Status pointer.Rect
}

// NewLayout computes the layout for a w x h screen
// The card is centred above the status line; the sphere area follows its projection
func NewLayout(w, h int, cam vmath.Camera) Layout {
	var l Layout
	if w <= 0 || h <= 0 {
		return l
	}
	view := max(h-statusRows, 0)

	cw := min(max(w-4, 0), cardMaxWidth)
	ch := min(max(view-2, 0), cardMaxHeight)
	l.Card = pointer.Rect{X: (w - cw) / 2, Y: (view - ch) / 2, W: cw, H: ch}
	l.Status = pointer.Rect{X: 0, Y: h - statusRows, W: w, H: statusRows}

	p := cam.Project(scene.InteractiveSphere.Position, w, view)
	if p.OK {
		ry := SphereRadius * p.Scale
		rx := ry * vmath.CellAspect
		x0 := int(math.Floor(p.X - rx))
		y0 := int(math.Floor(p.Y - ry))
		x1 := int(math.Ceil(p.X + rx))
		y1 := int(math.Ceil(p.Y + ry))
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, w), min(y1, view)
		if x1 > x0 && y1 > y0 {
			l.Sphere = pointer.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
		}
	}
	return l
}

// ViewHeight is the number of rows available to the 3D scene
func ViewHeight(h int) int {
	return max(h-statusRows, 0)
}
