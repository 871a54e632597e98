package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/frame"
	"github.com/vovakirdan/hazard-course/internal/hazard"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

type fakeBody struct {
	ready        bool
	translations []core.Vec3
	rotations    []core.Quat
}

func (b *fakeBody) ID() physics.BodyID { return "fake" }
func (b *fakeBody) Type() physics.BodyType { return physics.BodyKinematicPosition }
func (b *fakeBody) AddCollider(physics.ColliderDesc) error { return nil }
func (b *fakeBody) Ready() bool { return b.ready }

func (b *fakeBody) SetNextKinematicTranslation(t core.Vec3) {
	b.translations = append(b.translations, t)
}

func (b *fakeBody) SetNextKinematicRotation(r core.Quat) {
	b.rotations = append(b.rotations, r)
}

func TestTickWritesOnlyDrivenAxis(t *testing.T) {
	base := core.V3(0, 0.3, -8)
	tests := []struct {
		kind         hazard.Type
		params       hazard.Params
		translations int
		rotations    int
	}{
		{hazard.Spinner, hazard.Params{AngularVelocity: 0.7}, 0, 1},
		{hazard.Limbo, hazard.Params{PhaseOffset: 1}, 1, 0},
		{hazard.Axe, hazard.Params{PhaseOffset: 2}, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			body := &fakeBody{ready: true}
			c := New(tc.kind, tc.params, base, body)

			c.Tick(frame.Context{Tick: 1, Elapsed: 1.5})

			assert.Len(t, body.translations, tc.translations)
			assert.Len(t, body.rotations, tc.rotations)
			assert.Equal(t, uint64(1), c.Writes())

			want := hazard.Pose(tc.kind, 1.5, tc.params, base)
			if tc.translations > 0 {
				assert.Equal(t, want.Translation, body.translations[0])
			}
			if tc.rotations > 0 {
				assert.Equal(t, want.Rotation, body.rotations[0])
			}
		})
	}
}

func TestTickIsOpenLoop(t *testing.T) {
	body := &fakeBody{ready: true}
	c := New(hazard.Axe, hazard.Params{PhaseOffset: 0.5}, core.V3(0, 0.3, -4), body)

	c.Tick(frame.Context{Elapsed: 2})
	c.Tick(frame.Context{Elapsed: 2})

	require.Len(t, body.translations, 2)
	assert.Equal(t, body.translations[0], body.translations[1], "same time gives the same target")
}

func TestTickSkipsMissingBody(t *testing.T) {
	c := New(hazard.Limbo, hazard.Params{}, core.V3(0, 0, 0), nil)
	c.Tick(frame.Context{Elapsed: 1})
	assert.Equal(t, uint64(1), c.Skipped())

	body := &fakeBody{ready: false}
	c = New(hazard.Limbo, hazard.Params{}, core.V3(0, 0, 0), body)
	c.Tick(frame.Context{Elapsed: 1})
	assert.Empty(t, body.translations)
	assert.Equal(t, uint64(1), c.Skipped())

	body.ready = true
	c.Tick(frame.Context{Elapsed: 1})
	assert.Len(t, body.translations, 1)
}

func TestAttachRunsBeforeStepAndDetachStops(t *testing.T) {
	body := &fakeBody{ready: true}
	d := frame.NewDriver(nil)
	c := New(hazard.Spinner, hazard.Params{AngularVelocity: 1}, core.V3(0, 0.3, -4), body)

	c.Attach(d)
	c.Attach(d)
	assert.Equal(t, []string{"motion:spinner"}, d.Names(frame.BeforePhysics))

	d.Tick(100 * time.Millisecond)
	d.Tick(100 * time.Millisecond)
	assert.Len(t, body.rotations, 2)

	c.Detach()
	c.Detach()
	assert.True(t, c.Detached())
	assert.Zero(t, d.Len())

	d.Tick(100 * time.Millisecond)
	c.Tick(frame.Context{Elapsed: 5})
	assert.Len(t, body.rotations, 2, "no writes after detach")

	c.Attach(d)
	assert.Zero(t, d.Len(), "detached controller cannot be reattached")
}

func TestParamsForIsReproducible(t *testing.T) {
	for index := 1; index <= 20; index++ {
		a := ParamsFor(42, index, hazard.Spinner)
		b := ParamsFor(42, index, hazard.Spinner)
		assert.Equal(t, a, b)

		speed := a.AngularVelocity
		if speed < 0 {
			speed = -speed
		}
		assert.GreaterOrEqual(t, speed, 0.2)
		assert.Less(t, speed, 1.2)
	}

	assert.NotEqual(t, StreamSeed(42, 1), StreamSeed(42, 2))
	assert.NotEqual(t, StreamSeed(42, 1), StreamSeed(43, 1))
}
