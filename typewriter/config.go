package typewriter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoStrings   = errors.New("typewriter needs at least one string")
	ErrEmptyString = errors.New("typewriter strings must be non-empty")
	ErrInterval    = errors.New("typewriter interval out of range")
)

// Default cadence for the hero role line
const (
	DefaultTypingInterval   = 150 * time.Millisecond
	DefaultDeletingInterval = 100 * time.Millisecond
	DefaultPauseAfterFull   = 2000 * time.Millisecond
)

// Config is the recognized option set for a cycling text line
type Config struct {
	Strings          []string
	TypingInterval   time.Duration
	DeletingInterval time.Duration
	PauseAfterFull   time.Duration
}

// DefaultConfig returns the hero cadence for the given strings
func DefaultConfig(strings ...string) Config {
	return Config{
		Strings:          strings,
		TypingInterval:   DefaultTypingInterval,
		DeletingInterval: DefaultDeletingInterval,
		PauseAfterFull:   DefaultPauseAfterFull,
	}
}

// Validate fails fast on configurations that cannot cycle
func (c Config) Validate() error {
	if len(c.Strings) == 0 {
		return ErrNoStrings
	}
	for i, s := range c.Strings {
		if s == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyString, i)
		}
	}
	if c.TypingInterval <= 0 {
		return fmt.Errorf("%w: typing interval %v must be positive", ErrInterval, c.TypingInterval)
	}
	if c.DeletingInterval <= 0 {
		return fmt.Errorf("%w: deleting interval %v must be positive", ErrInterval, c.DeletingInterval)
	}
	if c.PauseAfterFull < 0 {
		return fmt.Errorf("%w: pause %v must not be negative", ErrInterval, c.PauseAfterFull)
	}
	return nil
}
