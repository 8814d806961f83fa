package renderer

import (
	"github.com/lixenwraith/holofolio/config"
	"github.com/lixenwraith/holofolio/render"
)

// Register installs the hero scene renderers at their priorities
func Register(o *render.Orchestrator, hero config.HeroConfig, text TextSource) {
	o.Register(NewParticlesRenderer(), render.PriorityParticles)
	o.Register(NewShapesRenderer(), render.PriorityShapes)
	o.Register(NewSpheresRenderer(), render.PrioritySpheres)
	o.Register(NewCardRenderer(), render.PriorityCard)
	o.Register(NewHeroRenderer(hero, text), render.PriorityHero)
	o.Register(NewStatusRenderer(), render.PriorityStatus)
}
