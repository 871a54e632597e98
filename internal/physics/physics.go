// Package physics describes the capabilities the course consumes from a
// rigid-body engine. The engine itself (solver, broad and narrow phase) is
// an external collaborator; the course only creates bodies, registers
// colliders and writes kinematic targets.
package physics

import (
	"errors"

	"github.com/vovakirdan/hazard-course/internal/core"
)

// ErrBodyRemoved is returned when an operation targets a body that has
// already been removed from the engine.
var ErrBodyRemoved = errors.New("physics: body removed")

// BodyType classifies rigid bodies.
type BodyType int

const (
	// BodyFixed never moves.
	BodyFixed BodyType = iota
	// BodyKinematicPosition follows externally driven pose targets and
	// still takes part in collision resolution.
	BodyKinematicPosition
)

// String returns the body type name.
func (t BodyType) String() string {
	switch t {
	case BodyFixed:
		return "fixed"
	case BodyKinematicPosition:
		return "kinematicPosition"
	default:
		return "unknown"
	}
}

// Shape is a collider shape.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeHull
)

// String returns the shape name.
func (s Shape) String() string {
	if s == ShapeHull {
		return "hull"
	}
	return "box"
}

// Collider tags understood by trigger-aware engines.
const (
	TagStart = "start"
	TagGoal  = "goal"
	TagProbe = "probe"
)

// ColliderDesc describes one collider attached to a body.
type ColliderDesc struct {
	Shape       Shape
	HalfExtents core.Vec3 // half size along each axis
	Offset      core.Vec3 // relative to the body origin
	Restitution float64
	Friction    float64
	Sensor      bool   // reports overlaps, no contact response
	Tag         string // optional label for trigger events
}

// Size returns the full extent of the collider.
func (c ColliderDesc) Size() core.Vec3 {
	return c.HalfExtents.Mul(2)
}

// BodyDesc describes a body to create.
type BodyDesc struct {
	Type     BodyType
	Position core.Vec3
	Rotation core.Quat
	Label    string
}

// BodyID identifies a body within one engine.
type BodyID string

// Body is a rigid body owned by the engine.
type Body interface {
	ID() BodyID
	Type() BodyType
	AddCollider(c ColliderDesc) error
}

// KinematicBody accepts write-only pose targets consumed by the next
// solver step. Ready reports whether the body can still take writes; it
// turns false once the engine disposes of the body.
type KinematicBody interface {
	Body
	SetNextKinematicTranslation(t core.Vec3)
	SetNextKinematicRotation(r core.Quat)
	Ready() bool
}

// EventKind classifies trigger events.
type EventKind int

const (
	EventEnterStart EventKind = iota
	EventEnterGoal
	EventFellOff
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventEnterStart:
		return "enter_start"
	case EventEnterGoal:
		return "enter_goal"
	case EventFellOff:
		return "fell_off"
	default:
		return "unknown"
	}
}

// Event is a collision or trigger notification delivered after a step.
type Event struct {
	Kind EventKind
	Body BodyID
}

// Stepper advances the engine by one solver step.
type Stepper interface {
	Step(dt float64)
}

// Bridge is the full set of engine capabilities used by the course.
type Bridge interface {
	Stepper
	CreateBody(desc BodyDesc) (Body, error)
	RemoveBody(b Body)
	// Events drains the events produced by the last steps.
	Events() []Event
}
