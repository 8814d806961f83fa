package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Base palette
var (
	Background = mustHex("#0a0a14")
	Foreground = mustHex("#e5e7eb")
	Muted      = mustHex("#6b7280")
	Accent     = mustHex("#a78bfa")
)

var emptyCell = Cell{
	Fg:    Foreground,
	Bg:    Background,
	Depth: math.Inf(1),
	Width: 1,
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToTcell converts to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Shade darkens c toward the background as t goes from 0 to 1
func Shade(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(Background, clampUnit(t)).Clamped()
}

// Brighten lifts c toward white by t
func Brighten(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, clampUnit(t)).Clamped()
}

// DepthFade maps a view depth to a shade factor between near and far
func DepthFade(depth, near, far float64) float64 {
	if far <= near {
		return 0
	}
	return clampUnit((depth - near) / (far - near))
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
