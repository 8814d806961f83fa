package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/holofolio/audio"
	"github.com/lixenwraith/holofolio/clock"
	"github.com/lixenwraith/holofolio/config"
	"github.com/lixenwraith/holofolio/motion"
	"github.com/lixenwraith/holofolio/pointer"
	"github.com/lixenwraith/holofolio/render"
	"github.com/lixenwraith/holofolio/render/renderer"
	"github.com/lixenwraith/holofolio/scene"
	"github.com/lixenwraith/holofolio/service"
	"github.com/lixenwraith/holofolio/typewriter"
)

// errQuit ends the run loop on user request
var errQuit = errors.New("quit")

// options carries command-line state into the app
type options struct {
	muted bool
	sched clock.Scheduler // Drives the typewriter and animation clock
}

// app wires the scene, renderers, typewriter and audio to a screen
type app struct {
	cfg    *config.Config
	screen tcell.Screen
	sched  clock.Scheduler

	scene    *scene.Scene
	hub      *pointer.Hub
	driver   *typewriter.Driver
	sound    *audio.SoundManager
	orch     *render.Orchestrator
	anim     *clock.PausableClock
	services *service.Hub

	// Hover emphasis easing for the interactive sphere and the card
	sphereEase *motion.Ease
	cardEase   *motion.Ease

	width, height int
	layout        render.Layout
	fps           float64
}

// newApp builds every component; the screen must already be initialised
func newApp(cfg *config.Config, screen tcell.Screen, opts options) (*app, error) {
	sc, err := scene.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	sound := audio.NewSoundManager()
	sound.SetMuted(opts.muted || !cfg.Audio)

	driver, err := typewriter.NewDriver(cfg.TypewriterConfig(), opts.sched, typewriter.WithStepHook(sound.TypewriterHook()))
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		screen: screen,
		sched:  opts.sched,
		scene:  sc,
		hub:    pointer.NewHub(),
		driver: driver,
		sound:  sound,
		orch:   render.NewOrchestrator(screen),
		anim:   clock.NewPausableClock(opts.sched),

		sphereEase: motion.NewHoverEase(cfg.FPS),
		cardEase:   motion.NewHoverEase(cfg.FPS),
	}
	renderer.Register(a.orch, cfg.Hero, driver)

	a.width, a.height = screen.Size()
	a.layout = render.NewLayout(a.width, a.height, render.DefaultCamera)

	if a.services, err = newServiceHub(a); err != nil {
		return nil, err
	}
	return a, nil
}

// mount starts audio, pointer surfaces and the typewriter
func (a *app) mount() error {
	return a.services.StartAll()
}

// unmount releases everything mount acquired
func (a *app) unmount() {
	if err := a.services.StopAll(); err != nil {
		slog.Warn("service shutdown", "error", err)
	}
}

// run drives the interactive session until quit or ctx cancellation
func (a *app) run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	if err := a.mount(); err != nil {
		a.screen.Fini()
		return err
	}
	defer a.unmount()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(guarded(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	}))

	g.Go(guarded(func() error {
		// Sole writer of the screen; Fini here unblocks the poller
		defer a.screen.Fini()
		return a.loop(gctx, events)
	}))

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	frames := 0
	windowStart := a.sched.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !a.handleEvent(ev) {
				slog.Debug("quit requested")
				return errQuit
			}

		case <-ticker.C:
			a.renderFrame()
			frames++
			if elapsed := a.sched.Now().Sub(windowStart); elapsed >= time.Second {
				a.fps = float64(frames) / elapsed.Seconds()
				frames = 0
				windowStart = a.sched.Now()
			}
		}
	}
}

// handleEvent applies one input event and reports whether to keep running
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				paused := a.anim.Toggle()
				slog.Debug("animation toggled", "paused", paused)
			case 'm', 'M':
				if muted := a.sound.ToggleMuted(); !muted {
					if err := a.sound.Initialize(); err != nil {
						slog.Warn("audio initialization failed", "error", err)
						a.sound.SetMuted(true)
					}
				}
				slog.Debug("sound toggled", "muted", a.sound.Muted())
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.hub.Move(x, y)

	case *tcell.EventFocus:
		// A pointer outside the window reports no further moves
		if !ev.Focused {
			a.hub.Leave()
		}

	case *tcell.EventResize:
		a.resize()
	}
	return true
}

func (a *app) resize() {
	a.width, a.height = a.screen.Size()
	a.orch.Resize(a.width, a.height)
	a.layout = render.NewLayout(a.width, a.height, render.DefaultCamera)
	a.scene.Resize(a.layout.Card, a.layout.Sphere)
	slog.Debug("resized", "width", a.width, "height", a.height)
}

// renderFrame evaluates the scene at the animation clock and draws it
func (a *app) renderFrame() {
	frame := a.scene.Frame(a.anim.Seconds())
	frame.Interactive.Transform.Scale = a.sphereEase.Step(frame.Interactive.Transform.Scale)
	frame.Card.Transform.Scale = a.cardEase.Step(frame.Card.Transform.Scale)
	ctx := render.Context{
		Frame:  frame,
		Width:  a.width,
		Height: a.height,
		Layout: a.layout,
		Camera: render.DefaultCamera,
		Paused: a.anim.IsPaused(),
		Muted:  a.sound.Muted(),
		FPS:    a.fps,
	}
	a.orch.RenderFrame(ctx)
}

// runHeadless renders a fixed number of frames on a virtual clock
// Used with a simulation screen for smoke runs; no input, no audio
func (a *app) runHeadless(mock *clock.Mock, frames int) error {
	if err := a.mount(); err != nil {
		return err
	}
	defer a.unmount()

	step := a.cfg.FrameInterval()
	for i := 0; i < frames; i++ {
		mock.Advance(step)
		a.renderFrame()
	}
	slog.Debug("headless run complete", "frames", frames, "elapsed", a.anim.Elapsed())
	return nil
}
