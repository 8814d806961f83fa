package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityParticles Priority = iota
	PriorityShapes
	PrioritySpheres
	PriorityCard
	PriorityHero
	PriorityStatus
)
