package world

import (
	"fmt"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

type collider struct {
	seq  uint64
	body *Body
	desc physics.ColliderDesc
	obj  *resolv.Object
}

// bounds returns the world-space box of c.
func (c *collider) bounds() (min, max core.Vec3) {
	return boxBounds(c.body.position, c.body.rotation, c.desc.Offset, c.desc.HalfExtents)
}

func boxBounds(pos core.Vec3, rot core.Quat, offset, half core.Vec3) (min, max core.Vec3) {
	center := pos.Add(rot.Rotate(offset))
	m := rot.Mat4().Mat3()
	var ext core.Vec3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := m.At(i, j)
			if v < 0 {
				v = -v
			}
			ext[i] += v * half[j]
		}
	}
	return center.Sub(ext), center.Add(ext)
}

// Body is a rigid body of the reference world. Kinematic bodies accept
// pose targets that take effect on the next Step.
type Body struct {
	world     *World
	id        physics.BodyID
	typ       physics.BodyType
	label     string
	position  core.Vec3
	rotation  core.Quat
	colliders []*collider

	nextTranslation *core.Vec3
	nextRotation    *core.Quat
	removed         bool
	dropped         uint64
}

var _ physics.KinematicBody = (*Body)(nil)

func (b *Body) ID() physics.BodyID { return b.id }
func (b *Body) Type() physics.BodyType { return b.typ }
func (b *Body) Label() string { return b.label }

// AddCollider attaches c to the body.
func (b *Body) AddCollider(c physics.ColliderDesc) error {
	w := b.world
	if b.removed {
		return physics.ErrBodyRemoved
	}
	if c.HalfExtents.X() <= 0 || c.HalfExtents.Y() <= 0 || c.HalfExtents.Z() <= 0 {
		return fmt.Errorf("world: collider half extents must be positive, got %v", c.HalfExtents)
	}

	col := &collider{body: b, desc: c}
	min, max := col.bounds()
	if !w.tracks(min, max) {
		return fmt.Errorf("%w: %q spans %v..%v, depth %v", ErrOutOfBounds, b.label, min, max, w.opts.Depth)
	}

	tag := tagSolid
	if c.Sensor {
		tag = c.Tag
	}
	w.colliders++
	col.seq = w.colliders
	x, y, width, height := w.toSpace(min, max)
	col.obj = resolv.NewObject(x, y, width, height, tag)
	w.space.Add(col.obj)
	w.byObject[col.obj] = col
	b.colliders = append(b.colliders, col)
	return nil
}

// Ready reports whether the body is still part of the world.
func (b *Body) Ready() bool {
	return !b.removed
}

// SetNextKinematicTranslation sets the position reached on the next Step.
func (b *Body) SetNextKinematicTranslation(t core.Vec3) {
	if b.removed || b.typ != physics.BodyKinematicPosition {
		b.dropped++
		return
	}
	b.nextTranslation = &t
}

// SetNextKinematicRotation sets the rotation reached on the next Step.
func (b *Body) SetNextKinematicRotation(r core.Quat) {
	if b.removed || b.typ != physics.BodyKinematicPosition {
		b.dropped++
		return
	}
	b.nextRotation = &r
}

// Dropped returns how many pose writes were ignored.
func (b *Body) Dropped() uint64 {
	return b.dropped
}

func (b *Body) applyTargets() {
	if b.nextTranslation == nil && b.nextRotation == nil {
		return
	}
	if b.nextTranslation != nil {
		b.position = *b.nextTranslation
		b.nextTranslation = nil
	}
	if b.nextRotation != nil {
		b.rotation = *b.nextRotation
		b.nextRotation = nil
	}
	for _, c := range b.colliders {
		min, max := c.bounds()
		b.world.place(c.obj, min, max)
	}
}
