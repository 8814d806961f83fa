package registry

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/holofolio/vmath"
)

// MustHex parses a #rrggbb color, panicking on malformed constants
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette colors shared by the hero scene
var (
	Indigo = MustHex("#667eea")
	Purple = MustHex("#764ba2")
	Orchid = MustHex("#f093fb")
	Coral  = MustHex("#f5576c")
	Azure  = MustHex("#4facfe")
	Mint   = MustHex("#43e97b")
	Aqua   = MustHex("#38f9d7")
	Cobalt = MustHex("#3b82f6")
)

// Default returns the floating shape field behind the hero section
func Default() *Registry {
	return MustNew(
		Descriptor{Position: vmath.V3F(-3, 2, -2), Shape: ShapeSphere, Color: Indigo, Speed: 0.8},
		Descriptor{Position: vmath.V3F(3, -1, -3), Shape: ShapeBox, Color: Purple, Speed: 1.2},
		Descriptor{Position: vmath.V3F(0, 3, -2.5), Shape: ShapeTorus, Color: Orchid, Speed: 0.6},
		Descriptor{Position: vmath.V3F(-2, -2, -1.5), Shape: ShapeOctahedron, Color: Coral, Speed: 1.0},
		Descriptor{Position: vmath.V3F(2.5, 1.5, -3), Shape: ShapeIcosahedron, Color: Azure, Speed: 0.9},
		Descriptor{Position: vmath.V3F(-1, 0, -1), Shape: ShapeSphere, Color: Mint, Speed: 1.1},
		Descriptor{Position: vmath.V3F(1, -3, -2), Shape: ShapeBox, Color: Aqua, Speed: 0.7},
	)
}
