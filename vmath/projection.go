package vmath

// CellAspect compensates for terminal cells being twice as tall as wide
const CellAspect = 2.0

// Camera is a pinhole camera looking down -Z from Position
type Camera struct {
	Position Vec3F
	FOVScale float64 // Screen rows covered by one world unit at distance 1
}

// Projected is a world point mapped onto the cell grid
type Projected struct {
	X, Y  float64 // Cell coordinates, fractional
	Depth float64 // Distance along view axis, larger is farther
	Scale float64 // Cells per world unit at this depth (vertical)
	OK    bool    // False when the point is behind the near plane
}

// NearPlane is the minimum view depth accepted by Project
const NearPlane = 0.1

// Project maps a world point into a viewport of w x h cells
func (c Camera) Project(p Vec3F, w, h int) Projected {
	rel := V3FSub(p, c.Position)
	depth := -rel.Z
	if depth < NearPlane {
		return Projected{Depth: depth}
	}

	scale := c.FOVScale * float64(h) / depth
	return Projected{
		X:     float64(w)/2 + rel.X*scale*CellAspect,
		Y:     float64(h)/2 - rel.Y*scale,
		Depth: depth,
		Scale: scale,
		OK:    true,
	}
}
