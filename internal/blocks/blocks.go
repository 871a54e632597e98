// Package blocks implements the built-in course blocks: the start
// platform, one platform per hazard type and the goal platform. Each
// registers itself with the registry on import.
package blocks

import (
	"fmt"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/hazard"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/registry"
)

func init() {
	registry.Register("start", func() registry.Builder { return Start{} })
	registry.Register("end", func() registry.Builder { return End{} })
	for _, t := range hazard.All {
		registry.Register(t.String(), func() registry.Builder { return Obstacle{Type: t} })
	}
}

// Floor tile geometry shared by every block.
var (
	TileScale     = core.V3(4, 0.2, 4)
	tileOffset    = core.V3(0, -0.1, 0)
	endTileOffset = core.V3(0, 0, 0)

	sensorHalfExtents = core.V3(2, 1, 2)
	sensorOffset      = core.V3(0, 1, 0)
)

func tile(at core.Vec3, material core.MaterialHandle) core.Drawable {
	return core.Drawable{
		Geometry:  core.GeometryBox,
		Material:  material,
		Transform: core.NewTransform(at, TileScale),
	}
}

func sensor(tag string) physics.ColliderDesc {
	return physics.ColliderDesc{
		Shape:       physics.ShapeBox,
		HalfExtents: sensorHalfExtents,
		Offset:      sensorOffset,
		Sensor:      true,
		Tag:         tag,
	}
}

// spawner creates bodies and removes all of them again if any step fails.
type spawner struct {
	bridge physics.Bridge
	bodies []physics.Body
}

func (s *spawner) body(desc physics.BodyDesc, colliders ...physics.ColliderDesc) (physics.Body, error) {
	if desc.Rotation == (core.Quat{}) {
		desc.Rotation = core.Identity()
	}
	b, err := s.bridge.CreateBody(desc)
	if err != nil {
		return nil, fmt.Errorf("blocks: create %s body: %w", desc.Label, err)
	}
	s.bodies = append(s.bodies, b)
	for _, c := range colliders {
		if err := b.AddCollider(c); err != nil {
			return nil, fmt.Errorf("blocks: add collider to %s: %w", desc.Label, err)
		}
	}
	return b, nil
}

func (s *spawner) rollback() {
	for _, b := range s.bodies {
		s.bridge.RemoveBody(b)
	}
	s.bodies = nil
}
