package clock

import "time"

// TimeProvider is a source of monotonic time readings
type TimeProvider interface {
	Now() time.Time
}

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop cancels the callback, returns false if it already fired or was stopped
	Stop() bool
}

// Scheduler arms one-shot callbacks
// Implementations must never invoke f synchronously from AfterFunc
type Scheduler interface {
	TimeProvider
	AfterFunc(d time.Duration, f func()) Timer
}

// Real provides wall clock time with monotonic readings and runtime timers
type Real struct{}

// NewReal creates a real time scheduler
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time with monotonic clock reading
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine after d
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
