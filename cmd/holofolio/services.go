package main

import (
	"log/slog"

	"github.com/lixenwraith/holofolio/audio"
	"github.com/lixenwraith/holofolio/pointer"
	"github.com/lixenwraith/holofolio/render"
	"github.com/lixenwraith/holofolio/scene"
	"github.com/lixenwraith/holofolio/service"
	"github.com/lixenwraith/holofolio/typewriter"
)

// audioService opens the speaker on start; failure degrades to muted
type audioService struct {
	sound *audio.SoundManager
}

func (s *audioService) Name() string           { return "audio" }
func (s *audioService) Dependencies() []string { return nil }

func (s *audioService) Start() error {
	if s.sound.Muted() {
		return nil
	}
	if err := s.sound.Initialize(); err != nil {
		slog.Warn("audio initialization failed, continuing without sound", "error", err)
		s.sound.SetMuted(true)
	}
	return nil
}

func (s *audioService) Stop() error {
	s.sound.Cleanup()
	return nil
}

// pointerService attaches the scene's pointer surfaces at the current layout
type pointerService struct {
	scene  *scene.Scene
	hub    *pointer.Hub
	layout func() render.Layout
}

func (s *pointerService) Name() string           { return "pointer" }
func (s *pointerService) Dependencies() []string { return nil }

func (s *pointerService) Start() error {
	l := s.layout()
	s.scene.Mount(s.hub, l.Card, l.Sphere)
	return nil
}

func (s *pointerService) Stop() error {
	s.scene.Unmount()
	return nil
}

// typewriterService mounts the cycling line; its step hook plays clicks
type typewriterService struct {
	driver *typewriter.Driver
}

func (s *typewriterService) Name() string           { return "typewriter" }
func (s *typewriterService) Dependencies() []string { return []string{"audio"} }

func (s *typewriterService) Start() error {
	s.driver.Start()
	return nil
}

func (s *typewriterService) Stop() error {
	s.driver.Stop()
	return nil
}

// newServiceHub registers the app's long-lived subsystems
func newServiceHub(a *app) (*service.Hub, error) {
	hub := service.NewHub()
	for _, svc := range []service.Service{
		&audioService{sound: a.sound},
		&pointerService{scene: a.scene, hub: a.hub, layout: func() render.Layout { return a.layout }},
		&typewriterService{driver: a.driver},
	} {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}
	return hub, nil
}
