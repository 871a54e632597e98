package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/hazard"
	"github.com/vovakirdan/hazard-course/internal/motion"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/physics/world"
	"github.com/vovakirdan/hazard-course/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"start", "spinner", "limbo", "axe", "end"} {
		assert.True(t, registry.Exists(id), "block %q should be registered", id)
	}
}

func TestSpawnEveryKind(t *testing.T) {
	tests := []struct {
		kind       course.Kind
		bodies     int
		drawables  int
		controller bool
		tileY      float64
	}{
		{course.KindStart, 1, 1, false, -0.1},
		{course.HazardKind(hazard.Spinner), 1, 2, true, -0.1},
		{course.HazardKind(hazard.Limbo), 1, 2, true, -0.1},
		{course.HazardKind(hazard.Axe), 1, 2, true, -0.1},
		{course.KindEnd, 2, 2, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w := world.New(world.DefaultOptions())
			block := course.Block{Kind: tc.kind, Index: 2, Position: course.PositionAt(2)}

			spawned, err := registry.Spawn(registry.Env{Bridge: w, Seed: 9}, block)
			require.NoError(t, err)

			assert.Len(t, spawned.Bodies, tc.bodies)
			assert.Equal(t, tc.bodies, w.BodyCount())
			require.Len(t, spawned.Drawables, tc.drawables)
			assert.Equal(t, tc.controller, spawned.Controller != nil)

			floorTile := spawned.Drawables[0]
			assert.Equal(t, TileScale, floorTile.Transform.Scale)
			assert.Equal(t, core.V3(0, tc.tileY, -8), floorTile.Transform.Position)
		})
	}
}

func TestObstacleBodyAndController(t *testing.T) {
	w := world.New(world.DefaultOptions())
	block := course.Block{Kind: course.HazardKind(hazard.Axe), Index: 3, Position: course.PositionAt(3)}

	spawned, err := registry.Spawn(registry.Env{Bridge: w, Seed: 4}, block)
	require.NoError(t, err)

	body := spawned.Bodies[0]
	assert.Equal(t, physics.BodyKinematicPosition, body.Type())

	pos, _, ok := w.Pose(body.ID())
	require.True(t, ok)
	assert.Equal(t, core.V3(0, 0.3, -12), pos)

	c := spawned.Controller
	assert.Equal(t, motion.ParamsFor(4, 3, hazard.Axe), c.Params())
	assert.Equal(t, hazard.Axe, c.Kind())
	assert.False(t, c.Detached())
}

func TestObstacleMaterialsAreShared(t *testing.T) {
	w := world.New(world.DefaultOptions())
	var materials []core.MaterialHandle
	for i := 1; i <= 3; i++ {
		s, err := registry.Spawn(registry.Env{Bridge: w}, course.Block{
			Kind:     course.HazardKind(hazard.Spinner),
			Index:    i,
			Position: course.PositionAt(i),
		})
		require.NoError(t, err)
		materials = append(materials, s.Drawables[1].Material)
	}
	assert.Equal(t, []core.MaterialHandle{core.MaterialObstacle, core.MaterialObstacle, core.MaterialObstacle}, materials)
}

type failingBridge struct {
	*world.World
	failAfter int
	created   int
}

func (f *failingBridge) CreateBody(desc physics.BodyDesc) (physics.Body, error) {
	if f.created >= f.failAfter {
		return nil, errors.New("out of bodies")
	}
	f.created++
	return f.World.CreateBody(desc)
}

func TestSpawnRollsBackOnError(t *testing.T) {
	w := world.New(world.DefaultOptions())
	bridge := &failingBridge{World: w, failAfter: 1}

	_, err := registry.Spawn(registry.Env{Bridge: bridge}, course.Block{Kind: course.KindEnd, Index: 1, Position: course.PositionAt(1)})
	require.Error(t, err)
	assert.Zero(t, w.BodyCount(), "partially spawned block must be removed")
}
