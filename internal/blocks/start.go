package blocks

import (
	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/registry"
)

// Start is the first platform. It has no obstacle, only a trigger that
// reports the player entering the course.
type Start struct{}

func (Start) ID() string { return "start" }
func (Start) Title() string { return "Start platform" }

// Spawn creates the start trigger.
func (Start) Spawn(env registry.Env, b course.Block) (registry.Spawned, error) {
	s := &spawner{bridge: env.Bridge}
	if _, err := s.body(physics.BodyDesc{
		Type:     physics.BodyFixed,
		Position: b.Position,
		Label:    "start",
	}, sensor(physics.TagStart)); err != nil {
		s.rollback()
		return registry.Spawned{}, err
	}

	return registry.Spawned{
		Bodies:    s.bodies,
		Drawables: []core.Drawable{tile(b.Position.Add(tileOffset), core.MaterialFloorSafe)},
	}, nil
}
