// Package hazard defines the obstacle archetypes of the course and their
// pure time-to-pose motion functions.
package hazard

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

// Type selects a pose function and a collider shape. It carries no state.
type Type int

const (
	Spinner Type = iota
	Limbo
	Axe
)

// All lists every hazard type in declaration order.
var All = []Type{Spinner, Limbo, Axe}

// Gameplay tuning. Changing any of these changes how the course plays.
const (
	spinnerMinSpeed  = 0.2
	limboLift        = 1.15
	axeSwing         = 1.25
	axeHeight        = 0.75
	obstacleBounce   = 0.2
	obstacleFriction = 0.0
)

// BodyOffset is where the obstacle body sits relative to its block before
// the first pose write.
var BodyOffset = core.V3(0, 0.3, 0)

// String returns the lowercase id of the type.
func (t Type) String() string {
	switch t {
	case Spinner:
		return "spinner"
	case Limbo:
		return "limbo"
	case Axe:
		return "axe"
	default:
		return fmt.Sprintf("hazard(%d)", int(t))
	}
}

// Valid reports whether t is a known hazard type.
func (t Type) Valid() bool {
	return t >= Spinner && t <= Axe
}

// ParseType converts an id such as "spinner" into a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spinner":
		return Spinner, nil
	case "limbo":
		return Limbo, nil
	case "axe":
		return Axe, nil
	}
	return 0, fmt.Errorf("hazard: unknown type %q", name)
}

// ParsePalette converts a list of ids into types, preserving order and
// duplicates.
func ParsePalette(names []string) ([]Type, error) {
	palette := make([]Type, 0, len(names))
	for _, n := range names {
		t, err := ParseType(n)
		if err != nil {
			return nil, err
		}
		palette = append(palette, t)
	}
	return palette, nil
}

// Params holds the per-instance values drawn once at spawn. Only one of the
// fields is meaningful for a given type.
type Params struct {
	AngularVelocity float64 // Spinner, radians per second, signed
	PhaseOffset     float64 // Limbo and Axe, radians in [0, 2π)
}

// DrawParams draws the spawn parameters for one instance of t.
func DrawParams(t Type, rng *rand.Rand) Params {
	switch t {
	case Spinner:
		speed := rng.Float64() + spinnerMinSpeed
		if rng.Float64() < 0.5 {
			speed = -speed
		}
		return Params{AngularVelocity: speed}
	case Limbo, Axe:
		return Params{PhaseOffset: rng.Float64() * math.Pi * 2}
	}
	return Params{}
}

// Collider returns the collider of the obstacle body for t. The
// description is a value; every instance of a type gets an equal copy.
func Collider(t Type) physics.ColliderDesc {
	size := core.V3(3.5, 0.3, 0.3)
	if t == Axe {
		size = core.V3(1.5, 1.5, 0.3)
	}
	return physics.ColliderDesc{
		Shape:       physics.ShapeBox,
		HalfExtents: size.Mul(0.5),
		Restitution: obstacleBounce,
		Friction:    obstacleFriction,
	}
}
