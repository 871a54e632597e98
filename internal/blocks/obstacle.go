package blocks

import (
	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/hazard"
	"github.com/vovakirdan/hazard-course/internal/motion"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/registry"
)

// Obstacle is a hazard platform: a floor tile and one kinematic obstacle
// driven by a motion controller.
type Obstacle struct {
	Type hazard.Type
}

func (o Obstacle) ID() string { return o.Type.String() }

func (o Obstacle) Title() string {
	switch o.Type {
	case hazard.Spinner:
		return "Spinning bar"
	case hazard.Limbo:
		return "Limbo bar"
	case hazard.Axe:
		return "Swinging axe"
	}
	return o.Type.String()
}

// Spawn creates the obstacle body at its rest position and a controller
// for it. The controller is returned detached.
func (o Obstacle) Spawn(env registry.Env, b course.Block) (registry.Spawned, error) {
	collider := hazard.Collider(o.Type)
	rest := b.Position.Add(hazard.BodyOffset)

	s := &spawner{bridge: env.Bridge}
	body, err := s.body(physics.BodyDesc{
		Type:     physics.BodyKinematicPosition,
		Position: rest,
		Label:    o.ID(),
	}, collider)
	if err != nil {
		s.rollback()
		return registry.Spawned{}, err
	}

	// A bridge may hand back bodies that cannot be driven. The controller
	// then skips every frame instead of failing.
	kinematic, _ := body.(physics.KinematicBody)
	params := motion.ParamsFor(env.Seed, b.Index, o.Type)

	return registry.Spawned{
		Bodies: s.bodies,
		Drawables: []core.Drawable{
			tile(b.Position.Add(tileOffset), core.MaterialFloorHazard),
			{
				Geometry:  core.GeometryBox,
				Material:  core.MaterialObstacle,
				Transform: core.NewTransform(rest, collider.Size()),
			},
		},
		Controller: motion.New(o.Type, params, b.Position, kinematic),
	}, nil
}
