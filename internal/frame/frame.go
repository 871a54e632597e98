// Package frame drives the per-frame update loop. Callbacks registered in
// the BeforePhysics stage run before the physics step of the same frame,
// so kinematic pose targets written there are consumed by that step.
package frame

import (
	"slices"
	"time"

	"github.com/vovakirdan/hazard-course/internal/physics"
)

// Stage orders callbacks around the physics step.
type Stage int

const (
	BeforePhysics Stage = iota
	AfterPhysics
)

// String returns the stage name.
func (s Stage) String() string {
	if s == AfterPhysics {
		return "after_physics"
	}
	return "before_physics"
}

// Context is passed to every callback of one frame.
type Context struct {
	Tick    uint64
	Elapsed float64 // seconds since the driver started
	Delta   float64 // seconds since the previous frame
}

// Func is a per-frame callback.
type Func func(Context)

type entry struct {
	id     uint64
	stage  Stage
	name   string
	fn     Func
	active bool
}

// Driver runs registered callbacks once per Tick. It is not safe for
// concurrent use; the game loop owns it.
type Driver struct {
	stepper physics.Stepper
	entries []*entry
	nextID  uint64
	tick    uint64
	elapsed time.Duration
}

// NewDriver creates a driver that steps the given engine between stages.
// A nil stepper runs the stages back to back.
func NewDriver(stepper physics.Stepper) *Driver {
	return &Driver{stepper: stepper}
}

// Registration is a handle to one registered callback.
type Registration struct {
	d  *Driver
	id uint64
}

// Cancel unregisters the callback. Calling it more than once is safe.
func (r Registration) Cancel() {
	if r.d == nil {
		return
	}
	r.d.entries = slices.DeleteFunc(r.d.entries, func(e *entry) bool {
		if e.id == r.id {
			e.active = false
			return true
		}
		return false
	})
}

// Register adds fn to stage. Callbacks within a stage run in registration
// order.
func (d *Driver) Register(stage Stage, name string, fn Func) Registration {
	d.nextID++
	d.entries = append(d.entries, &entry{id: d.nextID, stage: stage, name: name, fn: fn, active: true})
	return Registration{d: d, id: d.nextID}
}

// Len returns the number of registered callbacks.
func (d *Driver) Len() int {
	return len(d.entries)
}

// Names lists registered callback names for stage in run order.
func (d *Driver) Names(stage Stage) []string {
	var names []string
	for _, e := range d.entries {
		if e.stage == stage {
			names = append(names, e.name)
		}
	}
	return names
}

// Elapsed returns the total simulated time.
func (d *Driver) Elapsed() time.Duration {
	return d.elapsed
}

// Tick advances time by dt and runs one frame: BeforePhysics callbacks,
// the physics step, then AfterPhysics callbacks. Callbacks may register or
// cancel other callbacks; a callback cancelled mid-frame does not run.
func (d *Driver) Tick(dt time.Duration) Context {
	if dt < 0 {
		dt = 0
	}

	d.tick++
	d.elapsed += dt
	ctx := Context{
		Tick:    d.tick,
		Elapsed: d.elapsed.Seconds(),
		Delta:   dt.Seconds(),
	}

	d.run(BeforePhysics, ctx)
	if d.stepper != nil {
		d.stepper.Step(ctx.Delta)
	}
	d.run(AfterPhysics, ctx)
	return ctx
}

func (d *Driver) run(stage Stage, ctx Context) {
	snapshot := make([]*entry, 0, len(d.entries))
	for _, e := range d.entries {
		if e.stage == stage {
			snapshot = append(snapshot, e)
		}
	}

	for _, e := range snapshot {
		if e.active {
			e.fn(ctx)
		}
	}
}
