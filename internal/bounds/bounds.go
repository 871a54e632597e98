// Package bounds builds the static colliders that keep the player on the
// course: two side walls, an end wall behind the goal and one floor slab
// spanning every block.
package bounds

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

// ErrInvalidLength is returned for a course with no blocks.
var ErrInvalidLength = errors.New("bounds: length must be at least 1")

const (
	blockSize     = 4.0
	wallThickness = 0.3
	wallHeight    = 1.5
	wallOffsetX   = 2.15
	floorDepth    = 0.2

	restitution   = 0.2
	wallFriction  = 0.0
	floorFriction = 1.0
)

// Set is the bounds of one course. Every collider hangs off a single fixed
// body placed at the world origin, so Offset is the world position.
type Set struct {
	Length    int
	LeftWall  physics.ColliderDesc
	RightWall physics.ColliderDesc
	EndWall   physics.ColliderDesc
	Floor     physics.ColliderDesc
}

// Build returns the bounds for a course of length blocks.
func Build(length int) (Set, error) {
	if length < 1 {
		return Set{}, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	span := Span(length)
	centerZ := -span/2 + blockSize/2

	wall := func(x float64) physics.ColliderDesc {
		return box(core.V3(wallThickness, wallHeight, span), core.V3(x, wallHeight/2, centerZ), wallFriction)
	}

	return Set{
		Length:    length,
		LeftWall:  wall(-wallOffsetX),
		RightWall: wall(wallOffsetX),
		EndWall: box(
			core.V3(blockSize, wallHeight, wallThickness),
			core.V3(0, wallHeight/2, -span+blockSize/2),
			wallFriction,
		),
		Floor: box(
			core.V3(blockSize, floorDepth, span),
			core.V3(0, -floorDepth/2, centerZ),
			floorFriction,
		),
	}, nil
}

// Span returns how far a course of length blocks reaches along -Z from the
// first block's far edge to the last block's near edge.
func Span(length int) float64 {
	return blockSize * float64(length)
}

func box(size, at core.Vec3, friction float64) physics.ColliderDesc {
	return physics.ColliderDesc{
		Shape:       physics.ShapeBox,
		HalfExtents: size.Mul(0.5),
		Offset:      at,
		Restitution: restitution,
		Friction:    friction,
	}
}

// Colliders lists left wall, right wall, end wall and floor in that order.
func (s Set) Colliders() []physics.ColliderDesc {
	return []physics.ColliderDesc{s.LeftWall, s.RightWall, s.EndWall, s.Floor}
}

// Walls returns the visible parts of the bounds. The floor slab has no
// mesh of its own; block tiles cover it.
func (s Set) Walls() []core.Drawable {
	walls := []physics.ColliderDesc{s.LeftWall, s.RightWall, s.EndWall}
	out := make([]core.Drawable, 0, len(walls))
	for _, w := range walls {
		out = append(out, core.Drawable{
			Geometry:  core.GeometryBox,
			Material:  core.MaterialWall,
			Transform: core.NewTransform(w.Offset, w.Size()),
		})
	}
	return out
}

// Spawn creates the fixed bounds body and attaches every collider.
func (s Set) Spawn(bridge physics.Bridge) (physics.Body, error) {
	body, err := bridge.CreateBody(physics.BodyDesc{
		Type:     physics.BodyFixed,
		Position: core.V3(0, 0, 0),
		Rotation: core.Identity(),
		Label:    "bounds",
	})
	if err != nil {
		return nil, fmt.Errorf("bounds: create body: %w", err)
	}
	for _, c := range s.Colliders() {
		if err := body.AddCollider(c); err != nil {
			bridge.RemoveBody(body)
			return nil, fmt.Errorf("bounds: add collider: %w", err)
		}
	}
	return body, nil
}
