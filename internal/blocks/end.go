package blocks

import (
	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/registry"
)

var (
	goalOffset      = core.V3(0, 0.25, 0)
	goalHalfExtents = core.V3(0.5, 0.25, 0.5)
)

// End is the goal platform. The goal model sits on a fixed hull collider
// and a trigger reports the player reaching the platform.
type End struct{}

func (End) ID() string { return "end" }
func (End) Title() string { return "Goal platform" }

// Spawn creates the goal hull and the goal trigger.
func (End) Spawn(env registry.Env, b course.Block) (registry.Spawned, error) {
	s := &spawner{bridge: env.Bridge}
	goalAt := b.Position.Add(goalOffset)

	if _, err := s.body(physics.BodyDesc{
		Type:     physics.BodyFixed,
		Position: goalAt,
		Label:    "goal",
	}, physics.ColliderDesc{
		Shape:       physics.ShapeHull,
		HalfExtents: goalHalfExtents,
		Restitution: 0.2,
		Friction:    0,
	}); err != nil {
		s.rollback()
		return registry.Spawned{}, err
	}

	if _, err := s.body(physics.BodyDesc{
		Type:     physics.BodyFixed,
		Position: b.Position,
		Label:    "goal-trigger",
	}, sensor(physics.TagGoal)); err != nil {
		s.rollback()
		return registry.Spawned{}, err
	}

	return registry.Spawned{
		Bodies: s.bodies,
		Drawables: []core.Drawable{
			tile(b.Position.Add(endTileOffset), core.MaterialFloorSafe),
			{
				Geometry:  core.GeometryGoal,
				Material:  core.MaterialNone,
				Transform: core.NewTransform(goalAt, core.V3(1, 1, 1)),
			},
		},
	}, nil
}
