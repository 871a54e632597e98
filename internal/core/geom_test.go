package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYaw(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    Vec3
		want  Vec3
	}{
		{"zero angle keeps vector", 0, V3(1, 0, 0), V3(1, 0, 0)},
		{"quarter turn", math.Pi / 2, V3(1, 0, 0), V3(0, 0, -1)},
		{"half turn", math.Pi, V3(1, 0, 0), V3(-1, 0, 0)},
		{"vertical axis untouched", 1.3, V3(0, 2, 0), V3(0, 2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Yaw(tc.angle).Rotate(tc.in)
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-9, "Yaw(%v).Rotate(%v) = %v, expected %v", tc.angle, tc.in, got, tc.want)
			}
		})
	}
}

func TestNewTransform(t *testing.T) {
	tr := NewTransform(V3(1, 2, 3), V3(4, 0.2, 4))

	assert.Equal(t, V3(1, 2, 3), tr.Position)
	assert.Equal(t, V3(4, 0.2, 4), tr.Scale)
	assert.True(t, tr.Rotation.ApproxEqual(Identity()))
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	c.Advance(-time.Second)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now(), "negative advance should be ignored")
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, RuntimeConfig{TickRate: 60}.TickInterval())
	assert.Equal(t, time.Second/30, RuntimeConfig{TickRate: 30}.TickInterval())
	assert.Equal(t, time.Second/60, RuntimeConfig{}.TickInterval(), "zero rate falls back to 60")
}

func TestInputFrameMovement(t *testing.T) {
	f := NewInputFrame()
	assert.False(t, f.HasMovement())

	f.Set(ActionRestart)
	assert.False(t, f.HasMovement(), "restart is not movement")

	f.Set(ActionLeftward)
	assert.True(t, f.HasMovement())

	f.Clear()
	assert.False(t, f.Has(ActionLeftward))
}

func TestMaterialHandles(t *testing.T) {
	assert.Equal(t, "orangered", MaterialObstacle.Color())
	assert.Equal(t, "#708090", MaterialWall.Hex())
	assert.Equal(t, "none", MaterialNone.String())
	assert.Equal(t, "box", GeometryBox.String())
}
