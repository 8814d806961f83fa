// Package scene assembles the hero section: the floating shape field, the
// feature spheres, the holographic card and the particle cloud
// Frame is a pure function of time and the current pointer snapshots
package scene

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/holofolio/config"
	"github.com/lixenwraith/holofolio/motion"
	"github.com/lixenwraith/holofolio/pointer"
	"github.com/lixenwraith/holofolio/registry"
	"github.com/lixenwraith/holofolio/vmath"
)

var ErrNoField = errors.New("scene needs a shape registry")

// Feature spheres flank the card behind the shape field
var (
	MorphSphere       = registry.Descriptor{Position: vmath.V3F(0, 0, -6), Shape: registry.ShapeSphere, Color: registry.Indigo, Speed: 1}
	InteractiveSphere = registry.Descriptor{Position: vmath.V3F(-7, -0.5, -5), Shape: registry.ShapeSphere, Color: registry.Orchid, Speed: 1}
	WobblySphere      = registry.Descriptor{Position: vmath.V3F(7, -0.5, -5), Shape: registry.ShapeSphere, Color: registry.Mint, Speed: 1}
)

// Options configures a scene
type Options struct {
	Field          *registry.Registry
	Modulator      motion.Modulator
	HoverScale     float64 // Interactive sphere emphasis
	CardHoverScale float64

	ParticleCount  int
	ParticleSpread float64 // Edge length of the cube holding the cloud
	ParticleSeed   uint64
	ParticleColor  colorful.Color
}

// Placement is one element's transform for a frame
type Placement struct {
	Descriptor registry.Descriptor
	Transform  motion.Transform
	Hovered    bool
}

// Frame is everything a renderer needs for one instant
type Frame struct {
	Time        float64
	Shapes      []Placement // Registry order
	Morph       Placement
	Interactive Placement
	Wobbly      Placement
	Card        Placement

	Particles      motion.Transform
	ParticlePoints []vmath.Vec3F // Shared with the scene, read only
	ParticleColor  colorful.Color

	Pointer       pointer.State // Card surface
	GradientAngle float64
}

// Scene owns the element tables and the pointer surfaces
type Scene struct {
	field          *registry.Registry
	modulator      motion.Modulator
	hoverScale     float64
	cardHoverScale float64

	particles     []vmath.Vec3F
	particleColor colorful.Color

	card   *pointer.Tracker
	sphere *pointer.Tracker

	mu       sync.Mutex
	hub      *pointer.Hub
	releases []func()
}

// New builds a scene; particle positions are fixed by the seed
func New(opts Options) (*Scene, error) {
	if opts.Field == nil {
		return nil, ErrNoField
	}
	s := &Scene{
		field:          opts.Field,
		modulator:      opts.Modulator,
		hoverScale:     opts.HoverScale,
		cardHoverScale: opts.CardHoverScale,
		particles:      scatter(opts.ParticleCount, opts.ParticleSpread, opts.ParticleSeed),
		particleColor:  opts.ParticleColor,
		card:           pointer.NewTracker(),
		sphere:         pointer.NewTracker(),
	}
	return s, nil
}

// FromConfig builds a scene from a validated config
func FromConfig(cfg *config.Config) (*Scene, error) {
	field, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return New(Options{
		Field:          field,
		Modulator:      cfg.Modulator(),
		HoverScale:     cfg.Motion.HoverScale,
		CardHoverScale: cfg.Motion.CardHoverScale,
		ParticleCount:  cfg.Particles.Count,
		ParticleSpread: cfg.Particles.Spread,
		ParticleSeed:   cfg.Particles.Seed,
		ParticleColor:  cfg.ParticleColor(),
	})
}

func scatter(n int, spread float64, seed uint64) []vmath.Vec3F {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pts := make([]vmath.Vec3F, n)
	for i := range pts {
		pts[i] = vmath.V3F(
			(rng.Float64()-0.5)*spread,
			(rng.Float64()-0.5)*spread,
			(rng.Float64()-0.5)*spread,
		)
	}
	return pts
}

// CardTracker returns the pointer tracker of the card surface
func (s *Scene) CardTracker() *pointer.Tracker {
	return s.card
}

// SphereTracker returns the pointer tracker of the interactive sphere
func (s *Scene) SphereTracker() *pointer.Tracker {
	return s.sphere
}

// Frame evaluates every element at time t
// Animator output comes first, pointer tilt is layered on top
func (s *Scene) Frame(t float64) Frame {
	f := Frame{
		Time:           t,
		Shapes:         make([]Placement, 0, s.field.Len()),
		ParticlePoints: s.particles,
		ParticleColor:  s.particleColor,
	}

	s.field.Each(func(_ int, d registry.Descriptor) {
		f.Shapes = append(f.Shapes, Placement{Descriptor: d, Transform: motion.Compute(t, d)})
	})

	f.Morph = Placement{Descriptor: MorphSphere, Transform: motion.SpinProfile.Compute(t, MorphSphere)}
	f.Wobbly = Placement{Descriptor: WobblySphere, Transform: motion.WobbleSpinProfile.Compute(t, WobblySphere)}

	hovered := s.sphere.Hovered()
	f.Interactive = Placement{
		Descriptor: InteractiveSphere,
		Transform:  motion.SwayProfile.Compute(t, InteractiveSphere),
		Hovered:    hovered,
	}
	f.Interactive.Transform.Scale *= motion.Emphasis(hovered, s.hoverScale)

	ps := s.card.Load()
	cardHovered := s.card.Hovered()
	base := motion.Rest(vmath.Vec3F{})
	f.Card = Placement{
		Transform: s.modulator.Apply(base, ps, t),
		Hovered:   cardHovered,
	}
	f.Card.Transform.Scale *= motion.Emphasis(cardHovered, s.cardHoverScale)
	f.Pointer = ps
	f.GradientAngle = motion.GradientAngle(ps)

	f.Particles = motion.DriftProfile.Compute(t, registry.Descriptor{Speed: 1})
	return f
}

// Mount attaches the card and interactive sphere to hub
// A mounted scene is unmounted first
func (s *Scene) Mount(hub *pointer.Hub, card, sphere pointer.Rect) {
	s.Unmount()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hub = hub
	s.releases = append(s.releases,
		hub.Attach(card, s.card),
		hub.Attach(sphere, s.sphere),
	)
}

// Resize moves the pointer surfaces after a terminal resize
func (s *Scene) Resize(card, sphere pointer.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hub == nil {
		return
	}
	s.hub.Resize(s.card, card)
	s.hub.Resize(s.sphere, sphere)
}

// Unmount releases the pointer surfaces and recentres the trackers
func (s *Scene) Unmount() {
	s.mu.Lock()
	releases := s.releases
	s.releases = nil
	s.hub = nil
	s.mu.Unlock()

	for _, release := range releases {
		release()
	}
	s.card.Reset()
	s.sphere.Reset()
}

// Mounted reports whether the scene holds pointer surfaces
func (s *Scene) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hub != nil
}
