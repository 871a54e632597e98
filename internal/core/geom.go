// Package core provides fundamental types and utilities for the hazard course.
// It has no dependency on any physics engine or renderer so course logic
// stays pure and testable.
package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a position or extent in course space. The course runs along -Z,
// +Y is up.
type Vec3 = mgl64.Vec3

// Quat is an orientation.
type Quat = mgl64.Quat

// UpAxis is the vertical axis spinners rotate around.
var UpAxis = Vec3{0, 1, 0}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Yaw returns the rotation of angle radians about the vertical axis.
func Yaw(angle float64) Quat {
	return mgl64.QuatRotate(angle, UpAxis)
}

// Identity returns the identity rotation.
func Identity() Quat {
	return mgl64.QuatIdent()
}

// Transform places an object in course space.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform creates an unrotated transform.
func NewTransform(position, scale Vec3) Transform {
	return Transform{Position: position, Rotation: Identity(), Scale: scale}
}

// Pose is a kinematic target for one tick. Only the parts flagged as driven
// are written to the physics body.
type Pose struct {
	Translation       Vec3
	Rotation          Quat
	DrivesTranslation bool
	DrivesRotation    bool
}
