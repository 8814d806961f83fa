package render

import (
	"github.com/lixenwraith/holofolio/scene"
	"github.com/lixenwraith/holofolio/vmath"
)

// DefaultCamera sits in front of the hero scene looking down -Z
var DefaultCamera = vmath.Camera{
	Position: vmath.V3F(0, 0, 5),
	FOVScale: 0.65,
}

// Context provides frame state for renderers, passed by value
type Context struct {
	Frame  scene.Frame
	Width  int
	Height int
	Layout Layout
	Camera vmath.Camera

	Paused bool
	Muted  bool
	FPS    float64 // Measured, zero when unknown
}

// Project maps a world point through the context camera into the scene viewport
func (c Context) Project(p vmath.Vec3F) vmath.Projected {
	return c.Camera.Project(p, c.Width, ViewHeight(c.Height))
}

// NewContext derives the layout for a frame on a w x h screen
func NewContext(frame scene.Frame, w, h int, cam vmath.Camera) Context {
	return Context{
		Frame:  frame,
		Width:  w,
		Height: h,
		Layout: NewLayout(w, h, cam),
		Camera: cam,
	}
}
