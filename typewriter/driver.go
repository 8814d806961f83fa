package typewriter

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/holofolio/clock"
)

// StepFunc observes committed state after one or more transitions
type StepFunc func(prev, next State, visible string)

// Driver runs a Machine on a scheduler with a single cancel-and-reschedule timer
// Consumers poll Snapshot each frame; the optional step hook runs outside the lock
type Driver struct {
	mu     sync.Mutex
	hookMu sync.Mutex // Held while a hook runs so Stop can wait it out

	sched   clock.Scheduler
	machine *Machine
	onStep  StepFunc

	timer     clock.Timer
	mountedAt time.Time
	mounted   bool
	gen       uint64 // Bumped on every mount and teardown, stale timer fires compare against it
}

// Option configures a Driver
type Option func(*Driver)

// WithStepHook registers a hook invoked after each fire that changed state
// No hook runs once Stop has returned; a hook must not call Stop itself
func WithStepHook(fn StepFunc) Option {
	return func(d *Driver) {
		d.onStep = fn
	}
}

// NewDriver validates cfg and builds an unmounted driver
func NewDriver(cfg Config, sched clock.Scheduler, opts ...Option) (*Driver, error) {
	m, err := NewMachine(cfg)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		sched:   sched,
		machine: m,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Start mounts the driver, resetting state and arming the first timer
// Starting a mounted driver is a no-op
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mounted {
		return
	}
	d.mounted = true
	d.gen++
	d.mountedAt = d.sched.Now()
	d.machine.Reset()
	d.arm(0)
}

// Stop tears the driver down; pending and in-flight fires become no-ops
// It returns after any hook already running has finished
func (d *Driver) Stop() {
	d.mu.Lock()
	if !d.mounted {
		d.mu.Unlock()
		return
	}
	d.mounted = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.hookMu.Lock()
	d.hookMu.Unlock()
}

// Run mounts the driver until ctx is done, then tears it down
func (d *Driver) Run(ctx context.Context) error {
	d.Start()
	defer d.Stop()
	<-ctx.Done()
	return ctx.Err()
}

// Mounted reports whether the driver is live
func (d *Driver) Mounted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounted
}

// Snapshot returns the latest committed state and visible text
func (d *Driver) Snapshot() (State, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.machine.State(), d.machine.Visible()
}

// arm schedules the next fire relative to elapsed mount time, caller holds lock
func (d *Driver) arm(elapsed time.Duration) {
	if d.timer != nil {
		d.timer.Stop()
	}
	delay := d.machine.Deadline() - elapsed
	if delay < 0 {
		delay = 0
	}
	gen := d.gen
	d.timer = d.sched.AfterFunc(delay, func() { d.fire(gen) })
}

func (d *Driver) fire(gen uint64) {
	d.mu.Lock()
	if !d.mounted || gen != d.gen {
		d.mu.Unlock()
		return
	}

	prev := d.machine.State()
	elapsed := d.sched.Now().Sub(d.mountedAt)
	steps := d.machine.AdvanceTo(elapsed)
	d.timer = nil
	d.arm(elapsed)

	next := d.machine.State()
	visible := d.machine.Visible()
	hook := d.onStep
	d.mu.Unlock()

	if hook == nil || steps == 0 {
		return
	}
	d.hookMu.Lock()
	defer d.hookMu.Unlock()
	if !d.live(gen) {
		return
	}
	hook(prev, next, visible)
}

// live reports whether gen still names the current mount
func (d *Driver) live(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounted && gen == d.gen
}
