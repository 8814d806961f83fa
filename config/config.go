// Package config loads the scene configuration from YAML
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/holofolio/motion"
	"github.com/lixenwraith/holofolio/registry"
	"github.com/lixenwraith/holofolio/typewriter"
	"github.com/lixenwraith/holofolio/vmath"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("invalid config")

// MaxHoverScale caps hover emphasis so a hovered element stays on screen
const MaxHoverScale = 3.0

// Config is the full scene configuration
type Config struct {
	FPS        int              `yaml:"fps"`
	Audio      bool             `yaml:"audio"`
	Hero       HeroConfig       `yaml:"hero"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Motion     MotionConfig     `yaml:"motion"`
	Shapes     []ShapeConfig    `yaml:"shapes"`
	Particles  ParticleConfig   `yaml:"particles"`
}

// HeroConfig is the static copy of the hero card
type HeroConfig struct {
	Initials string `yaml:"initials"`
	Greeting string `yaml:"greeting"`
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
}

// TypewriterConfig drives the cycling role line
type TypewriterConfig struct {
	Roles              []string `yaml:"roles"`
	TypingIntervalMs   int      `yaml:"typing_interval_ms"`
	DeletingIntervalMs int      `yaml:"deleting_interval_ms"`
	PauseAfterFullMs   int      `yaml:"pause_after_full_ms"`
}

// MotionConfig tunes the pointer modulator and hover emphasis
type MotionConfig struct {
	TiltGain        float64 `yaml:"tilt_gain"`
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleRate      float64 `yaml:"wobble_rate"`
	HoverScale      float64 `yaml:"hover_scale"`
	CardHoverScale  float64 `yaml:"card_hover_scale"`
}

// ShapeConfig is one floating shape
type ShapeConfig struct {
	Shape    string    `yaml:"shape"`
	Position []float64 `yaml:"position"`
	Color    string    `yaml:"color"`
	Speed    float64   `yaml:"speed"`
}

// ParticleConfig sets up the background point cloud
type ParticleConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"`
	Seed   uint64  `yaml:"seed"`
	Color  string  `yaml:"color"`
}

// Default returns the embedded default configuration
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return &cfg
}

// Load reads path over the defaults and validates the result
// An empty path yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %q: %w", path, err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg; keys absent from data keep their current values
func Parse(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

// Validate fails fast on anything the scene cannot run with
func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of range (1-240)", ErrInvalid, c.FPS)
	}
	if err := c.TypewriterConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Registry(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalid, c.Particles.Count)
	}
	if c.Particles.Count > 0 && !(c.Particles.Spread > 0 && finite(c.Particles.Spread)) {
		return fmt.Errorf("%w: particle spread must be positive and finite", ErrInvalid)
	}
	if _, err := colorful.Hex(c.Particles.Color); err != nil {
		return fmt.Errorf("%w: particle color %q: %w", ErrInvalid, c.Particles.Color, err)
	}
	if !validScale(c.Motion.HoverScale) || !validScale(c.Motion.CardHoverScale) {
		return fmt.Errorf("%w: hover scales must be in (0, %g]", ErrInvalid, MaxHoverScale)
	}
	m := c.Motion
	if !finite(m.TiltGain) || !finite(m.WobbleAmplitude) || !finite(m.WobbleRate) {
		return fmt.Errorf("%w: motion tuning must be finite", ErrInvalid)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validScale also rejects NaN, which fails both comparisons
func validScale(v float64) bool {
	return v > 0 && v <= MaxHoverScale
}

// TypewriterConfig converts the millisecond fields to a typewriter config
func (c *Config) TypewriterConfig() typewriter.Config {
	return typewriter.Config{
		Strings:          c.Typewriter.Roles,
		TypingInterval:   time.Duration(c.Typewriter.TypingIntervalMs) * time.Millisecond,
		DeletingInterval: time.Duration(c.Typewriter.DeletingIntervalMs) * time.Millisecond,
		PauseAfterFull:   time.Duration(c.Typewriter.PauseAfterFullMs) * time.Millisecond,
	}
}

// Registry builds the floating shape registry
func (c *Config) Registry() (*registry.Registry, error) {
	descs := make([]registry.Descriptor, 0, len(c.Shapes))
	for i, s := range c.Shapes {
		kind, err := registry.ParseShape(s.Shape)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if len(s.Position) != 3 {
			return nil, fmt.Errorf("shape %d: position needs 3 components, got %d", i, len(s.Position))
		}
		col, err := colorful.Hex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("shape %d: color %q: %w", i, s.Color, err)
		}
		descs = append(descs, registry.Descriptor{
			Position: vmath.V3F(s.Position[0], s.Position[1], s.Position[2]),
			Shape:    kind,
			Color:    col,
			Speed:    s.Speed,
		})
	}
	return registry.New(descs...)
}

// Modulator builds the pointer modulator
func (c *Config) Modulator() motion.Modulator {
	return motion.Modulator{
		Gain:            c.Motion.TiltGain,
		WobbleAmplitude: c.Motion.WobbleAmplitude,
		WobbleRate:      c.Motion.WobbleRate,
	}
}

// ParticleColor returns the parsed particle color, valid after Validate
func (c *Config) ParticleColor() colorful.Color {
	col, err := colorful.Hex(c.Particles.Color)
	if err != nil {
		return registry.Cobalt
	}
	return col
}

// FrameInterval returns the render period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
