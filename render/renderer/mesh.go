package renderer

import (
	"math"

	"github.com/lixenwraith/holofolio/registry"
	"github.com/lixenwraith/holofolio/vmath"
)

// Local-space point clouds per shape kind, sized to roughly one world unit across
var meshes = map[registry.ShapeKind][]vmath.Vec3F{
	registry.ShapeSphere:      fibonacciSphere(40, 0.55),
	registry.ShapeBox:         boxMesh(0.45, 4),
	registry.ShapeTorus:       torusMesh(0.5, 0.18, 16, 5),
	registry.ShapeOctahedron:  octahedronMesh(0.6, 4),
	registry.ShapeIcosahedron: icosahedronMesh(0.55, 3),
}

// Mesh returns the point cloud for kind, shared and read only
func Mesh(kind registry.ShapeKind) []vmath.Vec3F {
	return meshes[kind]
}

func fibonacciSphere(n int, radius float64) []vmath.Vec3F {
	pts := make([]vmath.Vec3F, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		a := golden * float64(i)
		pts[i] = vmath.V3F(math.Cos(a)*r*radius, y*radius, math.Sin(a)*r*radius)
	}
	return pts
}

func torusMesh(major, minor float64, rings, sides int) []vmath.Vec3F {
	pts := make([]vmath.Vec3F, 0, rings*sides)
	for i := 0; i < rings; i++ {
		u := 2 * math.Pi * float64(i) / float64(rings)
		for j := 0; j < sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			d := major + minor*math.Cos(v)
			pts = append(pts, vmath.V3F(d*math.Cos(u), d*math.Sin(u), minor*math.Sin(v)))
		}
	}
	return pts
}

func boxMesh(half float64, samples int) []vmath.Vec3F {
	var verts []vmath.Vec3F
	for _, x := range []float64{-half, half} {
		for _, y := range []float64{-half, half} {
			for _, z := range []float64{-half, half} {
				verts = append(verts, vmath.V3F(x, y, z))
			}
		}
	}
	return edgeCloud(verts, 2*half, samples)
}

func octahedronMesh(radius float64, samples int) []vmath.Vec3F {
	verts := []vmath.Vec3F{
		vmath.V3F(radius, 0, 0), vmath.V3F(-radius, 0, 0),
		vmath.V3F(0, radius, 0), vmath.V3F(0, -radius, 0),
		vmath.V3F(0, 0, radius), vmath.V3F(0, 0, -radius),
	}
	return edgeCloud(verts, radius*math.Sqrt2, samples)
}

func icosahedronMesh(radius float64, samples int) []vmath.Vec3F {
	phi := (1 + math.Sqrt(5)) / 2
	var verts []vmath.Vec3F
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			verts = append(verts,
				vmath.V3F(0, a, b),
				vmath.V3F(a, b, 0),
				vmath.V3F(b, 0, a),
			)
		}
	}
	scale := radius / math.Sqrt(1+phi*phi)
	for i := range verts {
		verts[i] = vmath.V3FScale(verts[i], scale)
	}
	return edgeCloud(verts, 2*scale, samples)
}

// edgeCloud connects every vertex pair separated by edge length and samples points along each edge
func edgeCloud(verts []vmath.Vec3F, edge float64, samples int) []vmath.Vec3F {
	pts := append([]vmath.Vec3F(nil), verts...)
	tol := edge * 1e-6
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			d := vmath.V3FMag(vmath.V3FSub(verts[i], verts[j]))
			if math.Abs(d-edge) > tol {
				continue
			}
			for k := 1; k <= samples; k++ {
				t := float64(k) / float64(samples+1)
				pts = append(pts, vmath.V3F(
					vmath.Lerp(verts[i].X, verts[j].X, t),
					vmath.Lerp(verts[i].Y, verts[j].Y, t),
					vmath.Lerp(verts[i].Z, verts[j].Z, t),
				))
			}
		}
	}
	return pts
}
