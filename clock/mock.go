package clock

import (
	"sort"
	"sync"
	"time"
)

// Mock is a controllable scheduler for tests
// Timers fire synchronously inside Advance, in deadline order
type Mock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*mockTimer
	nextSeq uint64
}

type mockTimer struct {
	mock    *Mock
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewMock creates a mock scheduler starting at the given time
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to fire once the mock reaches now+d
func (m *Mock) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTimer{
		mock: m,
		due:  m.now.Add(d),
		seq:  m.nextSeq,
		fn:   f,
	}
	m.nextSeq++
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing every timer that falls due
// Callbacks run without the lock held, so they may arm new timers
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		next := m.popDue(target)
		if next == nil {
			break
		}
		if next.due.After(m.now) {
			m.now = next.due
		}
		next.fired = true
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}

	if target.After(m.now) {
		m.now = target
	}
	m.mu.Unlock()
}

// Pending returns the number of armed timers
func (m *Mock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// popDue removes and returns the earliest timer due at or before target, caller holds lock
func (m *Mock) popDue(target time.Time) *mockTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due.Equal(m.timers[j].due) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].due.Before(m.timers[j].due)
	})
	head := m.timers[0]
	if head.due.After(target) {
		return nil
	}
	m.timers = m.timers[1:]
	return head
}

func (t *mockTimer) Stop() bool {
	m := t.mock
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			break
		}
	}
	return true
}
