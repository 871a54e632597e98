// Package motion drives kinematic obstacle bodies from elapsed time. A
// controller is open loop: it writes pose targets every frame and never
// reads the body's pose back.
package motion

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/frame"
	"github.com/vovakirdan/hazard-course/internal/hazard"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

// Controller owns the motion parameters of one obstacle instance.
type Controller struct {
	kind   hazard.Type
	params hazard.Params
	base   core.Vec3
	body   physics.KinematicBody

	reg      frame.Registration
	attached bool
	detached bool
	writes   uint64
	skipped  uint64
}

// New creates a controller for body. base is the body's rest position in
// world space; poses are expressed relative to it. body may be nil while
// the engine is still creating it.
func New(kind hazard.Type, params hazard.Params, base core.Vec3, body physics.KinematicBody) *Controller {
	return &Controller{
		kind:   kind,
		params: params,
		base:   base,
		body:   body,
	}
}

// Kind returns the hazard type driven by c.
func (c *Controller) Kind() hazard.Type { return c.kind }

// Params returns the parameters drawn for this instance.
func (c *Controller) Params() hazard.Params { return c.params }

// Pose returns the target pose at t seconds.
func (c *Controller) Pose(t float64) core.Pose {
	return hazard.Pose(c.kind, t, c.params, c.base)
}

// Tick writes the pose targets for ctx.Elapsed. A missing or disposed body
// is skipped for this frame.
func (c *Controller) Tick(ctx frame.Context) {
	if c.detached {
		return
	}
	if c.body == nil || !c.body.Ready() {
		c.skipped++
		return
	}

	pose := c.Pose(ctx.Elapsed)
	if pose.DrivesTranslation {
		c.body.SetNextKinematicTranslation(pose.Translation)
	}
	if pose.DrivesRotation {
		c.body.SetNextKinematicRotation(pose.Rotation)
	}
	c.writes++
}

// Attach registers Tick to run before every physics step of driver.
// Attaching twice, or after Detach, does nothing.
func (c *Controller) Attach(driver *frame.Driver) {
	if c.detached || c.attached {
		return
	}
	c.attached = true
	c.reg = driver.Register(frame.BeforePhysics, "motion:"+c.kind.String(), c.Tick)
}

// Detach stops all further writes. The controller cannot be reattached.
func (c *Controller) Detach() {
	if c.detached {
		return
	}
	c.detached = true
	c.reg.Cancel()
}

// Detached reports whether Detach has been called.
func (c *Controller) Detached() bool { return c.detached }

// Writes returns how many frames produced pose writes.
func (c *Controller) Writes() uint64 { return c.writes }

// Skipped returns how many frames were skipped because the body was not
// available.
func (c *Controller) Skipped() uint64 { return c.skipped }

// ParamsFor draws the parameters of the obstacle at block index for a
// course seed. Every (seed, index) pair gets its own stream, so an
// instance's parameters do not depend on how many others were spawned.
func ParamsFor(seed int64, index int, kind hazard.Type) hazard.Params {
	return hazard.DrawParams(kind, rand.New(rand.NewSource(StreamSeed(seed, index))))
}

// StreamSeed hashes (seed, index) into the seed of an instance stream.
func StreamSeed(seed int64, index int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(index))
	return int64(xxhash.Sum64(buf[:]))
}
