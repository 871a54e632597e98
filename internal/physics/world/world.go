// Package world is a small headless stand-in for a rigid-body engine. It is
// stepped from the frame loop and is not safe for concurrent use. It
// keeps bodies and colliders, applies kinematic targets on Step, moves a
// single probe body under gravity and reports start, goal and fall
// events. Collision candidates come from a resolv space laid over the XZ
// plane and are confirmed with box overlap tests in 3D.
package world

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

const (
	tagSolid = "solid"

	defaultHalfWidth = 16.0
	defaultDepth     = 512.0
	defaultMargin    = 16.0
	defaultKillPlane = -5.0
	defaultGravity   = 9.81

	// space units per meter; one resolv cell covers one square meter
	spaceScale = 16
)

// ErrOutOfBounds is returned for a collider that leaves the tracked area.
// Such a collider would be invisible to collision queries.
var ErrOutOfBounds = errors.New("world: collider outside tracked area")

// Options configure a World.
type Options struct {
	// HalfWidth is the extent of the tracked area on both sides of X=0.
	HalfWidth float64
	// Depth is how far the tracked area reaches along -Z. Size it from the
	// course span; colliders placed deeper are rejected.
	Depth float64
	// KillPlane is the height below which the probe counts as fallen.
	KillPlane float64
	// Gravity is the downward acceleration applied to the probe.
	Gravity float64
	Logger  *log.Logger
}

// DefaultOptions returns options that fit a course of 128 blocks.
func DefaultOptions() Options {
	return Options{
		HalfWidth: defaultHalfWidth,
		Depth:     defaultDepth,
		KillPlane: defaultKillPlane,
		Gravity:   defaultGravity,
	}
}

// World implements physics.Bridge.
type World struct {
	opts      Options
	log       *log.Logger
	space     *resolv.Space
	bodies    map[physics.BodyID]*Body
	order     []physics.BodyID
	byObject  map[*resolv.Object]*collider
	events    []physics.Event
	probe     *Probe
	steps     uint64
	colliders uint64
}

var _ physics.Bridge = (*World)(nil)

// New creates an empty world.
func New(opts Options) *World {
	def := DefaultOptions()
	if opts.HalfWidth <= 0 {
		opts.HalfWidth = def.HalfWidth
	}
	if opts.Depth <= 0 {
		opts.Depth = def.Depth
	}
	if opts.Gravity <= 0 {
		opts.Gravity = def.Gravity
	}
	if opts.KillPlane == 0 {
		opts.KillPlane = def.KillPlane
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := int(2 * opts.HalfWidth * spaceScale)
	h := int((opts.Depth + defaultMargin) * spaceScale)
	return &World{
		opts:     opts,
		log:      logger,
		space:    resolv.NewSpace(w, h, spaceScale, spaceScale),
		bodies:   make(map[physics.BodyID]*Body),
		byObject: make(map[*resolv.Object]*collider),
	}
}

// CreateBody adds a body with no colliders.
func (w *World) CreateBody(desc physics.BodyDesc) (physics.Body, error) {
	switch desc.Type {
	case physics.BodyFixed, physics.BodyKinematicPosition:
	default:
		return nil, fmt.Errorf("world: unsupported body type %d", desc.Type)
	}

	rot := desc.Rotation
	if rot == (core.Quat{}) {
		rot = core.Identity()
	}

	b := &Body{
		world:    w,
		id:       physics.BodyID(uuid.NewString()),
		typ:      desc.Type,
		label:    desc.Label,
		position: desc.Position,
		rotation: rot,
	}

	w.bodies[b.id] = b
	w.order = append(w.order, b.id)

	w.log.Debug("body created", "id", b.id, "type", b.typ, "label", b.label)
	return b, nil
}

// RemoveBody disposes of b and its colliders. Removing twice is a no-op.
func (w *World) RemoveBody(pb physics.Body) {
	if pb == nil {
		return
	}

	b, ok := w.bodies[pb.ID()]
	if !ok {
		return
	}
	for _, c := range b.colliders {
		w.space.Remove(c.obj)
		delete(w.byObject, c.obj)
	}
	b.removed = true
	b.colliders = nil
	delete(w.bodies, b.id)
	w.order = slices.DeleteFunc(w.order, func(id physics.BodyID) bool { return id == b.id })

	w.log.Debug("body removed", "id", b.id, "label", b.label)
}

// Step applies pending kinematic targets, then integrates the probe.
func (w *World) Step(dt float64) {
	w.steps++
	for _, id := range w.order {
		w.bodies[id].applyTargets()
	}
	if w.probe != nil {
		w.probe.step(dt)
	}
}

// Events drains the events produced since the last call.
func (w *World) Events() []physics.Event {
	out := w.events
	w.events = nil
	return out
}

// Steps returns the number of solver steps taken.
func (w *World) Steps() uint64 {
	return w.steps
}

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Pose returns the current pose of the body with id.
func (w *World) Pose(id physics.BodyID) (core.Vec3, core.Quat, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return core.Vec3{}, core.Quat{}, false
	}
	return b.position, b.rotation, true
}

func (w *World) emit(kind physics.EventKind, id physics.BodyID) {
	w.events = append(w.events, physics.Event{Kind: kind, Body: id})
	w.log.Debug("event", "kind", kind, "body", id)
}

// toSpace maps a world XZ rectangle onto resolv coordinates. Space X
// follows world X, space Y follows world -Z.
func (w *World) toSpace(min, max core.Vec3) (x, y, width, height float64) {
	x = (min.X() + w.opts.HalfWidth) * spaceScale
	y = (-max.Z() + defaultMargin) * spaceScale
	width = (max.X() - min.X()) * spaceScale
	height = (max.Z() - min.Z()) * spaceScale
	return x, y, width, height
}

// tracks reports whether the box lies inside the area the space covers.
func (w *World) tracks(min, max core.Vec3) bool {
	return min.X() >= -w.opts.HalfWidth && max.X() <= w.opts.HalfWidth &&
		max.Z() <= defaultMargin && min.Z() >= -w.opts.Depth
}

func (w *World) place(obj *resolv.Object, min, max core.Vec3) {
	obj.Position.X, obj.Position.Y, obj.Size.X, obj.Size.Y = w.toSpace(min, max)
	obj.Update()
}
