package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/holofolio/clock"
	"github.com/lixenwraith/holofolio/config"
	"github.com/lixenwraith/holofolio/pointer"
)

func newSimApp(t *testing.T, muted bool) (*app, tcell.SimulationScreen, *clock.Mock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 32)

	mock := clock.NewMock(epoch)
	a, err := newApp(config.Default(), screen, options{muted: muted, sched: mock})
	require.NoError(t, err)
	return a, screen, mock
}

func TestHeadlessRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runHeadless(config.Default(), 90, &out))

	text := out.String()
	assert.Contains(t, text, "Devansh Prakash")
	assert.Contains(t, text, "Hi, I'm")
	// 3s in: the first role is fully typed and pausing
	assert.Contains(t, text, "Creative Developer")
	assert.Len(t, strings.Split(strings.TrimRight(text, "\n"), "\n"), 32)
}

func TestHeadlessRunPartialRole(t *testing.T) {
	var out bytes.Buffer
	// 30 frames at 30 fps is 1s, six characters typed
	require.NoError(t, runHeadless(config.Default(), 30, &out))
	assert.Contains(t, out.String(), "Creati")
	assert.NotContains(t, out.String(), "Creativ")
}

func TestHeadlessRejectsNegativeFrames(t *testing.T) {
	assert.Error(t, runHeadless(config.Default(), -1, nil))
}

func TestHeadlessUnmounts(t *testing.T) {
	a, screen, mock := newSimApp(t, true)
	defer screen.Fini()

	require.NoError(t, a.runHeadless(mock, 10))
	assert.False(t, a.driver.Mounted())
	assert.False(t, a.scene.Mounted())
	assert.Zero(t, a.hub.Len())
	assert.Zero(t, mock.Pending(), "no timers left armed")
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig("", 60)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)

	_, err = loadConfig("", -5)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestHandleKeys(t *testing.T) {
	a, screen, _ := newSimApp(t, false)
	defer screen.Fini()

	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, a.anim.IsPaused())
	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.False(t, a.anim.IsPaused())

	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.True(t, a.sound.Muted())

	assert.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestMouseDrivesCard(t *testing.T) {
	a, screen, _ := newSimApp(t, true)
	defer screen.Fini()
	require.NoError(t, a.mount())
	defer a.unmount()

	card := a.layout.Card
	a.handleEvent(tcell.NewEventMouse(card.X, card.Y, tcell.ButtonNone, tcell.ModNone))

	want := pointer.Normalize(card.X, card.Y, card)
	assert.Equal(t, want, a.scene.Frame(0).Pointer)
	assert.True(t, a.scene.CardTracker().Hovered())
}

func TestFocusLossClearsHover(t *testing.T) {
	a, screen, _ := newSimApp(t, true)
	defer screen.Fini()
	require.NoError(t, a.mount())
	defer a.unmount()

	card := a.layout.Card
	a.handleEvent(tcell.NewEventMouse(card.X+1, card.Y+1, tcell.ButtonNone, tcell.ModNone))
	require.True(t, a.scene.CardTracker().Hovered())

	assert.True(t, a.handleEvent(tcell.NewEventFocus(true)))
	assert.True(t, a.scene.CardTracker().Hovered(), "regaining focus keeps hover")

	assert.True(t, a.handleEvent(tcell.NewEventFocus(false)))
	assert.False(t, a.scene.CardTracker().Hovered())
	assert.False(t, a.scene.Frame(0).Card.Hovered)
}

func TestHoverEmphasisEases(t *testing.T) {
	a, screen, mock := newSimApp(t, true)
	defer screen.Fini()
	require.NoError(t, a.mount())
	defer a.unmount()

	a.renderFrame()
	assert.Equal(t, 1.0, a.sphereEase.Value())

	sphere := a.layout.Sphere
	a.handleEvent(tcell.NewEventMouse(sphere.X+sphere.W/2, sphere.Y+sphere.H/2, tcell.ButtonNone, tcell.ModNone))

	mock.Advance(a.cfg.FrameInterval())
	a.renderFrame()
	first := a.sphereEase.Value()
	assert.Greater(t, first, 1.0)
	assert.Less(t, first, 1.2)

	for i := 0; i < 90; i++ {
		mock.Advance(a.cfg.FrameInterval())
		a.renderFrame()
	}
	assert.InDelta(t, 1.2, a.sphereEase.Value(), 1e-3)
	assert.InDelta(t, 1.0, a.cardEase.Value(), 1e-9)
}

func TestResizeUpdatesLayout(t *testing.T) {
	a, screen, _ := newSimApp(t, true)
	defer screen.Fini()
	require.NoError(t, a.mount())
	defer a.unmount()

	screen.SetSize(60, 20)
	a.handleEvent(tcell.NewEventResize(60, 20))

	assert.Equal(t, 60, a.width)
	assert.Equal(t, 20, a.height)
	w, h := a.orch.Buffer().Size()
	assert.Equal(t, 60, w)
	assert.Equal(t, 20, h)
	assert.LessOrEqual(t, a.layout.Card.X+a.layout.Card.W, 60)

	a.renderFrame()
}

func TestRunQuitsOnKey(t *testing.T) {
	a, screen, _ := newSimApp(t, true)

	done := make(chan error, 1)
	go func() { done <- a.run(context.Background()) }()

	// Let the loop start before injecting input
	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after quit key")
	}
	assert.False(t, a.driver.Mounted())
	assert.Zero(t, a.hub.Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _, _ := newSimApp(t, true)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
