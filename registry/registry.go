// Package registry holds the immutable, ordered list of visual element descriptors that seed the animator
package registry

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/holofolio/vmath"
)

var (
	ErrInvalidSpeed = errors.New("speed factor must be positive and finite")
	ErrUnknownShape = errors.New("unknown shape kind")
)

// ShapeKind selects the geometry drawn for an element
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapeTorus
	ShapeOctahedron
	ShapeIcosahedron
)

var shapeNames = [...]string{
	ShapeSphere:      "sphere",
	ShapeBox:         "box",
	ShapeTorus:       "torus",
	ShapeOctahedron:  "octahedron",
	ShapeIcosahedron: "icosahedron",
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", k)
}

// ParseShape resolves a case-insensitive shape name
func ParseShape(name string) (ShapeKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Descriptor is the static configuration of one visual element
type Descriptor struct {
	Position vmath.Vec3F
	Shape    ShapeKind
	Color    colorful.Color
	Speed    float64
}

// Validate rejects descriptors the animator cannot drive
func (d Descriptor) Validate() error {
	if !(d.Speed > 0) || math.IsInf(d.Speed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, d.Speed)
	}
	if int(d.Shape) >= len(shapeNames) {
		return fmt.Errorf("%w: %d", ErrUnknownShape, d.Shape)
	}
	return nil
}

// Registry is a read-only ordered sequence of descriptors
// Changing the composition means building a new Registry
type Registry struct {
	items []Descriptor
}

// New validates and copies descs into a registry
func New(descs ...Descriptor) (*Registry, error) {
	items := make([]Descriptor, len(descs))
	for i, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("descriptor %d (%s): %w", i, d.Shape, err)
		}
		items[i] = d
	}
	return &Registry{items: items}, nil
}

// MustNew is New for static tables known to be valid
func MustNew(descs ...Descriptor) *Registry {
	r, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of elements
func (r *Registry) Len() int {
	return len(r.items)
}

// At returns the i-th descriptor by value
func (r *Registry) At(i int) Descriptor {
	return r.items[i]
}

// All returns a copy of the descriptors in order
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.items))
	copy(out, r.items)
	return out
}

// Each visits descriptors in order
func (r *Registry) Each(fn func(i int, d Descriptor)) {
	for i, d := range r.items {
		fn(i, d)
	}
}
