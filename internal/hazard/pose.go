package hazard

import (
	"math"

	"github.com/vovakirdan/hazard-course/internal/core"
)

// SpinnerAngle is the yaw of a spinner at time t.
func SpinnerAngle(t, angularVelocity float64) float64 {
	return t * angularVelocity
}

// SpinnerRotation rotates about the vertical axis at angularVelocity.
func SpinnerRotation(t, angularVelocity float64) core.Quat {
	return core.Yaw(SpinnerAngle(t, angularVelocity))
}

// LimboHeight is the vertical offset of a limbo bar at time t.
func LimboHeight(t, phase float64) float64 {
	return math.Sin(t+phase) + limboLift
}

// LimboTranslation raises and lowers the bar above base.
func LimboTranslation(t, phase float64, base core.Vec3) core.Vec3 {
	return core.V3(base.X(), base.Y()+LimboHeight(t, phase), base.Z())
}

// AxeSwing is the sideways offset of an axe at time t.
func AxeSwing(t, phase float64) float64 {
	return math.Sin(t+phase) * axeSwing
}

// AxeTranslation swings the axe across the platform at a fixed height.
func AxeTranslation(t, phase float64, base core.Vec3) core.Vec3 {
	return core.V3(base.X()+AxeSwing(t, phase), base.Y()+axeHeight, base.Z())
}

// Pose evaluates the kinematic target of one instance at time t. Base is
// the block position.
func Pose(kind Type, t float64, p Params, base core.Vec3) core.Pose {
	switch kind {
	case Spinner:
		return core.Pose{
			Rotation:       SpinnerRotation(t, p.AngularVelocity),
			DrivesRotation: true,
		}
	case Limbo:
		return core.Pose{
			Translation:       LimboTranslation(t, p.PhaseOffset, base),
			DrivesTranslation: true,
		}
	case Axe:
		return core.Pose{
			Translation:       AxeTranslation(t, p.PhaseOffset, base),
			DrivesTranslation: true,
		}
	}
	return core.Pose{}
}
