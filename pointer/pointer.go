// Package pointer tracks normalized pointer positions over bounded surfaces
package pointer

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/holofolio/vmath"
)

// State is a pointer position normalized to a surface, both axes in [0,1]
type State struct {
	X, Y float64
}

// Center is the resting state when no interaction has happened
var Center = State{X: 0.5, Y: 0.5}

// Clamped returns s with both axes bounded to [0,1], NaN maps to center
func (s State) Clamped() State {
	return State{X: clampUnit(s.X), Y: clampUnit(s.Y)}
}

func clampUnit(v float64) float64 {
	if v != v {
		return 0.5
	}
	return vmath.Clamp(v, 0, 1)
}

// Rect is a surface bounding box in cell coordinates
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports a zero-area rect
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Normalize maps a cell position to surface coordinates, sampling cell centers
func Normalize(x, y int, r Rect) State {
	if r.Empty() {
		return Center
	}
	return State{
		X: (float64(x-r.X) + 0.5) / float64(r.W),
		Y: (float64(y-r.Y) + 0.5) / float64(r.H),
	}.Clamped()
}

// Tracker holds the latest committed pointer state for one surface
// Writers and the render reader may live on different goroutines, reads see whole snapshots
type Tracker struct {
	state   atomic.Pointer[State]
	hovered atomic.Bool
}

// NewTracker creates a tracker resting at Center
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Load returns the latest snapshot
func (t *Tracker) Load() State {
	if s := t.state.Load(); s != nil {
		return *s
	}
	return Center
}

// Store commits a new state, clamped on input
func (t *Tracker) Store(s State) {
	c := s.Clamped()
	t.state.Store(&c)
}

// Reset returns the tracker to Center and clears hover
func (t *Tracker) Reset() {
	c := Center
	t.state.Store(&c)
	t.hovered.Store(false)
}

// Hovered reports whether the pointer is currently over the surface
func (t *Tracker) Hovered() bool {
	return t.hovered.Load()
}

// SetHovered updates hover flag
func (t *Tracker) SetHovered(v bool) {
	t.hovered.Store(v)
}

type surface struct {
	id      uint64
	rect    Rect
	tracker *Tracker
}

// Hub routes pointer moves to attached surfaces
type Hub struct {
	mu       sync.Mutex
	surfaces []surface
	nextID   uint64
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Attach registers a surface and returns its release function
// Release is idempotent; after it returns the tracker receives no further updates
func (h *Hub) Attach(rect Rect, t *Tracker) (release func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.surfaces = append(h.surfaces, surface{id: id, rect: rect, tracker: t})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.detach(id) })
	}
}

func (h *Hub) detach(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.surfaces {
		if s.id == id {
			h.surfaces = append(h.surfaces[:i], h.surfaces[i+1:]...)
			return
		}
	}
}

// Resize updates the bounds of the surface backed by t
func (h *Hub) Resize(t *Tracker, rect Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.surfaces {
		if h.surfaces[i].tracker == t {
			h.surfaces[i].rect = rect
		}
	}
}

// Move dispatches a pointer position in cell coordinates
// Surfaces containing the point get a new state, the rest lose hover and keep their last state
func (h *Hub) Move(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.surfaces {
		inside := s.rect.Contains(x, y)
		s.tracker.SetHovered(inside)
		if inside {
			s.tracker.Store(Normalize(x, y, s.rect))
		}
	}
}

// Leave clears hover on every surface, used when the pointer exits the screen
func (h *Hub) Leave() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.surfaces {
		s.tracker.SetHovered(false)
	}
}

// Len returns the number of attached surfaces
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.surfaces)
}
