package hazard

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"spinner", Spinner, false},
		{"Limbo", Limbo, false},
		{" axe ", Axe, false},
		{"saw", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseType(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String() should round-trip")
		})
	}
}

func mustParse(t *testing.T, name string) Type {
	t.Helper()
	got, err := ParseType(name)
	require.NoError(t, err)
	return got
}

func TestParsePaletteKeepsOrderAndDuplicates(t *testing.T) {
	palette, err := ParsePalette([]string{"axe", "spinner", "axe"})
	require.NoError(t, err)
	assert.Equal(t, []Type{Axe, Spinner, Axe}, palette)

	_, err = ParsePalette([]string{"spinner", "bogus"})
	assert.Error(t, err)
}

func TestDrawParamsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawPositive, sawNegative := false, false

	for i := 0; i < 500; i++ {
		p := DrawParams(Spinner, rng)
		mag := math.Abs(p.AngularVelocity)
		assert.GreaterOrEqual(t, mag, 0.2)
		assert.Less(t, mag, 1.2)
		assert.Zero(t, p.PhaseOffset)
		if p.AngularVelocity > 0 {
			sawPositive = true
		} else {
			sawNegative = true
		}

		for _, kind := range []Type{Limbo, Axe} {
			q := DrawParams(kind, rng)
			assert.GreaterOrEqual(t, q.PhaseOffset, 0.0)
			assert.Less(t, q.PhaseOffset, 2*math.Pi)
			assert.Zero(t, q.AngularVelocity)
		}
	}

	assert.True(t, sawPositive, "spinners should turn both ways")
	assert.True(t, sawNegative, "spinners should turn both ways")
}

func TestPoseBoundaryValues(t *testing.T) {
	base := core.V3(0, 0, -8)

	t.Run("spinner angle is zero at t=0", func(t *testing.T) {
		assert.Zero(t, SpinnerAngle(0, 0.9))
		assert.True(t, SpinnerRotation(0, -1.1).ApproxEqual(core.Identity()))
	})

	t.Run("limbo height at t=0", func(t *testing.T) {
		phase := 1.0
		got := LimboTranslation(0, phase, base)
		assert.InDelta(t, math.Sin(phase)+1.15, got.Y(), 1e-12)
		assert.Equal(t, base.X(), got.X())
		assert.Equal(t, base.Z(), got.Z())
	})

	t.Run("axe swing at t=0", func(t *testing.T) {
		phase := 2.5
		got := AxeTranslation(0, phase, base)
		assert.InDelta(t, math.Sin(phase)*1.25, got.X(), 1e-12)
		assert.InDelta(t, 0.75, got.Y(), 1e-12)
		assert.Equal(t, base.Z(), got.Z())
	})
}

func TestPoseDrivesOnlyItsAxis(t *testing.T) {
	base := core.V3(0, 0, -4)
	p := Params{AngularVelocity: 0.5, PhaseOffset: 0.3}

	spin := Pose(Spinner, 2, p, base)
	assert.True(t, spin.DrivesRotation)
	assert.False(t, spin.DrivesTranslation)
	assert.True(t, spin.Rotation.ApproxEqualThreshold(core.Yaw(1.0), 1e-12))

	limbo := Pose(Limbo, 2, p, base)
	assert.True(t, limbo.DrivesTranslation)
	assert.False(t, limbo.DrivesRotation)
	assert.InDelta(t, math.Sin(2.3)+1.15, limbo.Translation.Y(), 1e-12)

	axe := Pose(Axe, 2, p, base)
	assert.True(t, axe.DrivesTranslation)
	assert.InDelta(t, math.Sin(2.3)*1.25, axe.Translation.X(), 1e-12)
}

func TestColliderShapes(t *testing.T) {
	tests := []struct {
		kind Type
		size core.Vec3
	}{
		{Spinner, core.V3(3.5, 0.3, 0.3)},
		{Limbo, core.V3(3.5, 0.3, 0.3)},
		{Axe, core.V3(1.5, 1.5, 0.3)},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			c := Collider(tc.kind)
			assert.Equal(t, physics.ShapeBox, c.Shape)
			assert.True(t, c.Size().ApproxEqualThreshold(tc.size, 1e-12), "size = %v", c.Size())
			assert.Equal(t, 0.2, c.Restitution)
			assert.Zero(t, c.Friction)
		})
	}
}
