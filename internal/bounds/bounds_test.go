package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

const eps = 1e-9

func TestBuildScalesWithLength(t *testing.T) {
	tests := []struct {
		length     int
		wallLength float64
		centerZ    float64
		endWallZ   float64
	}{
		{1, 4, 0, -2},
		{2, 8, -2, -6},
		{7, 28, -12, -26},
		{22, 88, -42, -86},
	}

	for _, tc := range tests {
		set, err := Build(tc.length)
		require.NoError(t, err)

		for _, w := range []physics.ColliderDesc{set.LeftWall, set.RightWall} {
			assert.InDelta(t, 0.3, w.Size().X(), eps)
			assert.InDelta(t, 1.5, w.Size().Y(), eps)
			assert.InDelta(t, tc.wallLength, w.Size().Z(), eps)
			assert.InDelta(t, 0.75, w.Offset.Y(), eps)
			assert.InDelta(t, tc.centerZ, w.Offset.Z(), eps)
		}
		assert.InDelta(t, -2.15, set.LeftWall.Offset.X(), eps)
		assert.InDelta(t, 2.15, set.RightWall.Offset.X(), eps)

		assert.True(t, set.EndWall.Size().ApproxEqualThreshold(core.V3(4, 1.5, 0.3), eps))
		assert.True(t, set.EndWall.Offset.ApproxEqualThreshold(core.V3(0, 0.75, tc.endWallZ), eps))

		assert.True(t, set.Floor.HalfExtents.ApproxEqualThreshold(core.V3(2, 0.1, 2*float64(tc.length)), eps))
		assert.True(t, set.Floor.Offset.ApproxEqualThreshold(core.V3(0, -0.1, tc.centerZ), eps))
	}
}

func TestBuildScenarioSevenBlocks(t *testing.T) {
	set, err := Build(7)
	require.NoError(t, err)
	assert.InDelta(t, 28, set.LeftWall.Size().Z(), eps)
	assert.InDelta(t, -26, set.EndWall.Offset.Z(), eps)
}

func TestMaterialProperties(t *testing.T) {
	set, err := Build(3)
	require.NoError(t, err)

	for _, c := range set.Colliders() {
		assert.Equal(t, 0.2, c.Restitution)
		assert.Equal(t, physics.ShapeBox, c.Shape)
		assert.False(t, c.Sensor)
	}
	assert.Equal(t, 0.0, set.LeftWall.Friction)
	assert.Equal(t, 0.0, set.RightWall.Friction)
	assert.Equal(t, 0.0, set.EndWall.Friction)
	assert.Equal(t, 1.0, set.Floor.Friction)
}

func TestCollidersOrder(t *testing.T) {
	set, err := Build(2)
	require.NoError(t, err)
	assert.Equal(t, []physics.ColliderDesc{set.LeftWall, set.RightWall, set.EndWall, set.Floor}, set.Colliders())
	assert.Len(t, set.Walls(), 3)
}

func TestBuildRejectsEmptyCourse(t *testing.T) {
	for _, length := range []int{0, -3} {
		_, err := Build(length)
		assert.ErrorIs(t, err, ErrInvalidLength)
	}
}
