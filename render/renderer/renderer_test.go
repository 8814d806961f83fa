package renderer

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/holofolio/config"
	"github.com/lixenwraith/holofolio/pointer"
	"github.com/lixenwraith/holofolio/registry"
	"github.com/lixenwraith/holofolio/render"
	"github.com/lixenwraith/holofolio/scene"
	"github.com/lixenwraith/holofolio/typewriter"
)

const (
	screenW = 120
	screenH = 40
)

type staticText struct {
	text string
}

func (s staticText) Snapshot() (typewriter.State, string) {
	return typewriter.State{Visible: len(s.text)}, s.text
}

func newScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc, err := scene.FromConfig(config.Default())
	require.NoError(t, err)
	return sc
}

func newContext(t *testing.T, sc *scene.Scene, at float64) render.Context {
	t.Helper()
	return render.NewContext(sc.Frame(at), screenW, screenH, render.DefaultCamera)
}

// rowText reads a buffer row back as a string, skipping wide-rune tails
func rowText(buf *render.Buffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := buf.Cell(x, y)
		if c.Width == 0 {
			continue
		}
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func bufferText(buf *render.Buffer) string {
	_, h := buf.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(buf, y)
	}
	return strings.Join(rows, "\n")
}

func countRunes(buf *render.Buffer) int {
	w, h := buf.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf.Cell(x, y).Rune != 0 {
				n++
			}
		}
	}
	return n
}

func TestMeshes(t *testing.T) {
	for _, kind := range []registry.ShapeKind{
		registry.ShapeSphere, registry.ShapeBox, registry.ShapeTorus,
		registry.ShapeOctahedron, registry.ShapeIcosahedron,
	} {
		assert.NotEmpty(t, Mesh(kind), kind.String())
	}
	// 8 corners and 12 edges
	assert.Len(t, Mesh(registry.ShapeBox), 8+12*4)
	// 6 corners and 12 edges
	assert.Len(t, Mesh(registry.ShapeOctahedron), 6+12*4)
	// 12 corners and 30 edges
	assert.Len(t, Mesh(registry.ShapeIcosahedron), 12+30*3)
}

func TestShapesRenderer(t *testing.T) {
	buf := render.NewBuffer(screenW, screenH)
	NewShapesRenderer().Render(newContext(t, newScene(t), 0.5), buf)
	assert.Greater(t, countRunes(buf), 40)
}

func TestShapesMove(t *testing.T) {
	sc := newScene(t)
	a := render.NewBuffer(screenW, screenH)
	b := render.NewBuffer(screenW, screenH)
	NewShapesRenderer().Render(newContext(t, sc, 0), a)
	NewShapesRenderer().Render(newContext(t, sc, 2), b)
	assert.NotEqual(t, bufferText(a), bufferText(b))
}

func TestParticlesRenderBehindShapes(t *testing.T) {
	sc := newScene(t)
	ctx := newContext(t, sc, 1)
	buf := render.NewBuffer(screenW, screenH)

	NewParticlesRenderer().Render(ctx, buf)
	particles := countRunes(buf)
	assert.Greater(t, particles, 50)

	NewShapesRenderer().Render(ctx, buf)
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := buf.Cell(x, y); c.Rune == '●' {
				assert.Less(t, c.Depth, 20.0)
			}
		}
	}
}

func TestSpheresRenderer(t *testing.T) {
	sc := newScene(t)
	ctx := newContext(t, sc, 0)
	buf := render.NewBuffer(screenW, screenH)
	NewSpheresRenderer().Render(ctx, buf)

	for _, p := range []scene.Placement{ctx.Frame.Morph, ctx.Frame.Interactive, ctx.Frame.Wobbly} {
		proj := ctx.Project(p.Transform.Position)
		require.True(t, proj.OK)
		c := buf.Cell(int(proj.X), int(proj.Y))
		assert.NotZero(t, c.Rune, "sphere centre at %v is drawn", p.Descriptor.Position)
	}
}

func TestHoveredSphereGrows(t *testing.T) {
	sc := newScene(t)
	hub := pointer.NewHub()
	layout := render.NewLayout(screenW, screenH, render.DefaultCamera)
	sc.Mount(hub, layout.Card, layout.Sphere)

	idle := render.NewBuffer(screenW, screenH)
	NewSpheresRenderer().Render(newContext(t, sc, 0), idle)

	hub.Move(layout.Sphere.X+layout.Sphere.W/2, layout.Sphere.Y+layout.Sphere.H/2)
	hovered := render.NewBuffer(screenW, screenH)
	NewSpheresRenderer().Render(newContext(t, sc, 0), hovered)

	assert.Greater(t, countRunes(hovered), countRunes(idle))
}

func TestHugeSphereClipsToBuffer(t *testing.T) {
	ctx := newContext(t, newScene(t), 0)
	ctx.Frame.Interactive.Transform.Scale = 2000
	ctx.Frame.Interactive.Hovered = true
	buf := render.NewBuffer(screenW, screenH)

	start := time.Now()
	NewSpheresRenderer().Render(ctx, buf)
	assert.Less(t, time.Since(start), 2*time.Second, "scan is bounded by the buffer")
	assert.Positive(t, countRunes(buf))

	for _, scale := range []float64{math.Inf(1), math.NaN()} {
		ctx.Frame.Interactive.Transform.Scale = scale
		assert.NotPanics(t, func() {
			NewSpheresRenderer().Render(ctx, render.NewBuffer(screenW, screenH))
		})
	}
}

func TestCardOutlineAtRest(t *testing.T) {
	ctx := newContext(t, newScene(t), 0)
	buf := render.NewBuffer(screenW, screenH)
	NewCardRenderer().Render(ctx, buf)

	r := ctx.Layout.Card
	for _, c := range [][2]int{{r.X, r.Y}, {r.X + r.W - 1, r.Y}, {r.X, r.Y + r.H - 1}, {r.X + r.W - 1, r.Y + r.H - 1}} {
		assert.Equal(t, '◆', buf.Cell(c[0], c[1]).Rune, "corner %v", c)
	}
	assert.Equal(t, '─', buf.Cell(r.X+r.W/2, r.Y).Rune)
	assert.Equal(t, '│', buf.Cell(r.X, r.Y+r.H/2).Rune)

	inside := buf.Cell(r.X+r.W/2, r.Y+r.H/2).Bg
	assert.Greater(t, inside.DistanceLab(render.Background), 0.05, "gradient tints the card")
	outside := buf.Cell(0, 0).Bg
	assert.InDelta(t, 0, outside.DistanceLab(render.Background), 1e-9)
}

func TestCardTiltsWithPointer(t *testing.T) {
	sc := newScene(t)
	hub := pointer.NewHub()
	layout := render.NewLayout(screenW, screenH, render.DefaultCamera)
	sc.Mount(hub, layout.Card, layout.Sphere)

	rest := cardCorners(layout.Card, sc.Frame(0).Card.Transform.Rotation, 1)

	hub.Move(layout.Card.X+layout.Card.W-1, layout.Card.Y+layout.Card.H-1)
	f := sc.Frame(0)
	tilted := cardCorners(layout.Card, f.Card.Transform.Rotation, 1)
	assert.NotEqual(t, rest, tilted)
	assert.True(t, f.Card.Hovered)
}

func TestGradientAt(t *testing.T) {
	// 0 degrees runs bottom to top
	assert.InDelta(t, 0, GradientAt(0.5, 1, 0).DistanceLab(registry.Indigo), 1e-6)
	assert.InDelta(t, 0, GradientAt(0.5, 0, 0).DistanceLab(registry.Orchid), 1e-6)
	// 90 degrees runs left to right
	assert.InDelta(t, 0, GradientAt(0, 0.5, 90).DistanceLab(registry.Indigo), 1e-6)
	assert.InDelta(t, 0, GradientAt(1, 0.5, 90).DistanceLab(registry.Orchid), 1e-6)
	assert.InDelta(t, 0, GradientAt(0.5, 0.5, 45).DistanceLab(registry.Purple), 1e-6)
}

func TestHeroRenderer(t *testing.T) {
	ctx := newContext(t, newScene(t), 0.25)
	buf := render.NewBuffer(screenW, screenH)
	NewHeroRenderer(config.Default().Hero, staticText{text: "3D Anim"}).Render(ctx, buf)

	text := bufferText(buf)
	assert.Contains(t, text, "Hi, I'm")
	assert.Contains(t, text, "Devansh Prakash")
	assert.Contains(t, text, "3D Anim|")
	assert.Contains(t, text, "[ DP ]")
	assert.Contains(t, text, "Crafting digital experiences")
}

func TestHeroCaretBlinks(t *testing.T) {
	sc := newScene(t)
	hero := NewHeroRenderer(config.Default().Hero, staticText{text: "UI"})

	on := render.NewBuffer(screenW, screenH)
	hero.Render(newContext(t, sc, 0.1), on)
	off := render.NewBuffer(screenW, screenH)
	hero.Render(newContext(t, sc, 0.6), off)

	assert.Contains(t, bufferText(on), "UI|")
	assert.NotContains(t, bufferText(off), "UI|")
	assert.Contains(t, bufferText(off), "UI")
}

func TestHeroShortCard(t *testing.T) {
	ctx := render.NewContext(newScene(t).Frame(0), 40, 7, render.DefaultCamera)
	buf := render.NewBuffer(40, 7)
	NewHeroRenderer(config.Default().Hero, staticText{text: "Go"}).Render(ctx, buf)

	text := bufferText(buf)
	assert.Contains(t, text, "Devansh Prakash")
	assert.NotContains(t, text, "[ DP ]")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 8))
	assert.Equal(t, []string{"abcd", "ef"}, Wrap("abcdef", 4))
	assert.Equal(t, []string{"世界", "世"}, Wrap("世界世", 4))
	assert.Nil(t, Wrap("x", 0))
	assert.Empty(t, Wrap("   ", 5))

	for _, l := range Wrap(config.Default().Hero.Tagline, 30) {
		assert.LessOrEqual(t, render.StringWidth(l), 30)
	}
}

func TestStatusRenderer(t *testing.T) {
	ctx := newContext(t, newScene(t), 0)
	ctx.Paused, ctx.Muted, ctx.FPS = true, true, 29.7
	buf := render.NewBuffer(screenW, screenH)
	NewStatusRenderer().Render(ctx, buf)

	row := rowText(buf, screenH-1)
	assert.True(t, strings.HasPrefix(row, statusHelp))
	assert.Contains(t, row, "paused · muted · 30 fps")
	assert.Equal(t, "", StatusFlags(render.Context{}))
}

func TestFullFrameOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(screenW, screenH)
	defer screen.Fini()

	o := render.NewOrchestrator(screen)
	Register(o, config.Default().Hero, staticText{text: "Digital Artist"})

	ctx := newContext(t, newScene(t), 0.2)
	o.RenderFrame(ctx)

	var sb strings.Builder
	for y := 0; y < screenH; y++ {
		for x := 0; x < screenW; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(r)
		}
	}
	assert.Contains(t, sb.String(), "Devansh Prakash")
	assert.Contains(t, sb.String(), "Digital Artist")
}
