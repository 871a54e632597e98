package world

import (
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

// ProbeHalfExtents is the default size of the probe box.
var ProbeHalfExtents = core.V3(0.3, 0.3, 0.3)

// Probe is a dynamic box standing in for the player. Horizontal velocity
// is set by its driver; gravity and contacts are handled by the world.
type Probe struct {
	world    *World
	id       physics.BodyID
	half     core.Vec3
	position core.Vec3
	velocity core.Vec3
	obj      *resolv.Object
	inside   map[string]bool
	grounded bool
	fallen   bool
	contacts uint64
}

// SpawnProbe places the probe at pos, replacing any previous probe.
func (w *World) SpawnProbe(pos core.Vec3) *Probe {
	if w.probe != nil {
		w.space.Remove(w.probe.obj)
	}

	p := &Probe{
		world:    w,
		id:       physics.BodyID(uuid.NewString()),
		half:     ProbeHalfExtents,
		position: pos,
		inside:   make(map[string]bool),
	}
	min, max := p.bounds()
	x, y, width, height := w.toSpace(min, max)
	p.obj = resolv.NewObject(x, y, width, height, physics.TagProbe)
	w.space.Add(p.obj)
	w.probe = p

	w.log.Debug("probe spawned", "id", p.id, "position", pos)
	return p
}

// ID returns the body id used in events about the probe.
func (p *Probe) ID() physics.BodyID { return p.id }

// Position returns the probe center.
func (p *Probe) Position() core.Vec3 {
	return p.position
}

// Grounded reports whether the probe rested on something after the last
// step.
func (p *Probe) Grounded() bool {
	return p.grounded
}

// Contacts returns how many solid contacts were resolved so far.
func (p *Probe) Contacts() uint64 {
	return p.contacts
}

// Drive sets the horizontal velocity in meters per second.
func (p *Probe) Drive(vx, vz float64) {
	p.velocity[0] = vx
	p.velocity[2] = vz
}

// Jump gives the probe an upward speed if it is grounded.
func (p *Probe) Jump(speed float64) bool {
	if !p.grounded {
		return false
	}
	p.velocity[1] = speed
	p.grounded = false
	return true
}

// Respawn moves the probe to pos and clears its motion and trigger state.
func (p *Probe) Respawn(pos core.Vec3) {
	p.position = pos
	p.velocity = core.Vec3{}
	p.grounded = false
	p.fallen = false
	clear(p.inside)
	p.sync()
}

func (p *Probe) bounds() (min, max core.Vec3) {
	return p.position.Sub(p.half), p.position.Add(p.half)
}

func (p *Probe) sync() {
	min, max := p.bounds()
	p.world.place(p.obj, min, max)
}

func (p *Probe) step(dt float64) {
	w := p.world
	if dt > 0 {
		p.velocity[1] -= w.opts.Gravity * dt
		p.position = p.position.Add(p.velocity.Mul(dt))
	}
	p.sync()

	p.grounded = false
	candidates := p.candidates()
	for _, c := range candidates {
		if c.desc.Sensor {
			continue
		}
		p.resolve(c)
	}
	p.sync()

	p.triggers(candidates)

	if p.position.Y() < w.opts.KillPlane && !p.fallen {
		p.fallen = true
		w.emit(physics.EventFellOff, p.id)
	}
}

// candidates returns the colliders sharing a resolv cell with the probe in
// creation order.
func (p *Probe) candidates() []*collider {
	hit := p.obj.Check(0, 0)
	if hit == nil {
		return nil
	}
	out := make([]*collider, 0, len(hit.Objects))
	for _, obj := range hit.Objects {
		if c, ok := p.world.byObject[obj]; ok {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b *collider) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}

// resolve pushes the probe out of c along the axis of least penetration.
func (p *Probe) resolve(c *collider) {
	cmin, cmax := c.bounds()
	pmin, pmax := p.bounds()
	if !overlaps(pmin, pmax, cmin, cmax) {
		return
	}

	axis, depth := 0, math.Inf(1)
	sign := 1.0
	for i := 0; i < 3; i++ {
		up := cmax[i] - pmin[i]
		down := pmax[i] - cmin[i]
		if up < depth {
			axis, depth, sign = i, up, 1
		}
		if down < depth {
			axis, depth, sign = i, down, -1
		}
	}

	p.position[axis] += sign * depth
	if p.velocity[axis]*sign < 0 {
		p.velocity[axis] = 0
	}
	if axis == 1 && sign > 0 {
		p.grounded = true
	}
	p.contacts++
}

func (p *Probe) triggers(candidates []*collider) {
	pmin, pmax := p.bounds()
	now := make(map[string]bool)
	for _, c := range candidates {
		if !c.desc.Sensor {
			continue
		}
		cmin, cmax := c.bounds()
		if overlaps(pmin, pmax, cmin, cmax) {
			now[c.desc.Tag] = true
		}
	}

	for _, tag := range []string{physics.TagStart, physics.TagGoal} {
		if now[tag] && !p.inside[tag] {
			kind := physics.EventEnterStart
			if tag == physics.TagGoal {
				kind = physics.EventEnterGoal
			}
			p.world.emit(kind, p.id)
		}
	}
	p.inside = now
}

func overlaps(amin, amax, bmin, bmax core.Vec3) bool {
	for i := 0; i < 3; i++ {
		if amax[i] <= bmin[i] || bmax[i] <= amin[i] {
			return false
		}
	}
	return true
}
