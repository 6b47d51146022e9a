package preprocessing

import (
	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

const (
	// NormalizedRadius is the radius distances are normalized to; a diameter
	// of 100 for easier mental maths.
	NormalizedRadius = 50.0

	CircleSizeBuffThreshold = 30.0
)

// ScalingFactor converts the circle-size setting into the object radius,
// the distance normalization factor and the stacking offset unit.
type ScalingFactor struct {
	radius float64
	factor float32

	// stackUnit is the positional nudge per unit of stack height, applied
	// on both axes.
	stackUnit float32
}

func NewScalingFactor(diff *difficulty.Difficulty) *ScalingFactor {
	radius := diff.CircleRadius

	factor := float32(NormalizedRadius / radius)

	if radius < CircleSizeBuffThreshold {
		smallCircleBonus := min(CircleSizeBuffThreshold-float32(radius), 5.0) / 50.0
		factor *= 1.0 + smallCircleBonus
	}

	return &ScalingFactor{
		radius:    radius,
		factor:    factor,
		stackUnit: float32(radius) / 64 * -6.4,
	}
}

// Factor scales raw playfield distances into normalized-radius space.
func (scaling *ScalingFactor) Factor() float32 {
	return scaling.factor
}

func (scaling *ScalingFactor) Radius() float64 {
	return scaling.radius
}

// StackOffset is the positional shift of an object with the given stack
// height.
func (scaling *ScalingFactor) StackOffset(stackHeight float64) vector.Vector2f {
	offset := float32(stackHeight) * scaling.stackUnit

	return vector.NewVec2f(offset, offset)
}
