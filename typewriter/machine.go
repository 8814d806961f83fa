// Package typewriter reveals and retracts a rotating list of strings one character at a time
package typewriter

import (
	"fmt"
	"time"
)

// Phase is the cycle phase of the text machine
// Deletion that reaches zero restarts typing on the next string directly, so there is no empty pause
type Phase uint8

const (
	PhaseTyping Phase = iota
	PhasePausedFull
	PhaseDeleting
)

func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhasePausedFull:
		return "pausedFull"
	case PhaseDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// State is the observable machine state
type State struct {
	Index   int // Current string
	Visible int // Revealed runes, always within [0, len(current)]
	Phase   Phase
}

// Machine is the timer-free core: explicit deadlines advanced by Step
// Deadlines are offsets from mount, so callers choose the clock
type Machine struct {
	cfg      Config
	runes    [][]rune
	state    State
	deadline time.Duration
}

// NewMachine validates cfg and returns a machine in its initial state
func NewMachine(cfg Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		cfg:   cfg,
		runes: make([][]rune, len(cfg.Strings)),
	}
	m.cfg.Strings = append([]string(nil), cfg.Strings...)
	for i, s := range m.cfg.Strings {
		m.runes[i] = []rune(s)
	}
	m.Reset()
	return m, nil
}

// Reset returns to {0, 0, typing} with the first reveal one typing interval after mount
func (m *Machine) Reset() {
	m.state = State{}
	m.deadline = m.cfg.TypingInterval
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Deadline returns when the next transition is due, relative to mount
func (m *Machine) Deadline() time.Duration {
	return m.deadline
}

// Current returns the full string being cycled
func (m *Machine) Current() string {
	return m.cfg.Strings[m.state.Index]
}

// Visible returns the revealed prefix of the current string
func (m *Machine) Visible() string {
	return string(m.runes[m.state.Index][:m.state.Visible])
}

// Step performs the transition due at Deadline and schedules the next one
func (m *Machine) Step() {
	cur := len(m.runes[m.state.Index])

	switch m.state.Phase {
	case PhaseTyping:
		m.state.Visible++
		if m.state.Visible >= cur {
			m.state.Visible = cur
			m.state.Phase = PhasePausedFull
			m.deadline += m.cfg.PauseAfterFull
			return
		}
		m.deadline += m.cfg.TypingInterval

	case PhasePausedFull:
		m.state.Phase = PhaseDeleting
		m.deadline += m.cfg.DeletingInterval

	case PhaseDeleting:
		m.state.Visible--
		if m.state.Visible <= 0 {
			m.state.Visible = 0
			m.state.Index = (m.state.Index + 1) % len(m.runes)
			m.state.Phase = PhaseTyping
			m.deadline += m.cfg.TypingInterval
			return
		}
		m.deadline += m.cfg.DeletingInterval
	}
}

// AdvanceTo steps through every transition due at or before now, returning the count
func (m *Machine) AdvanceTo(now time.Duration) int {
	steps := 0
	for m.deadline <= now {
		m.Step()
		steps++
	}
	return steps
}
