package evaluators

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

const (
	angleBonusBegin = math.Pi / 3
	timingThreshold = 107.0
	angleBonusScale = 90.0
)

// EvaluateAim rates the cursor movement onto current. last is the previous
// pair in the chart, nil at the start. With withSliders false the distance
// a cursor travels along sliders is ignored.
func EvaluateAim(current, last *preprocessing.DifficultyObject, withSliders bool) float64 {
	if current.IsSpinner {
		return 0
	}

	travelDistance := 0.0
	if withSliders {
		travelDistance = current.TravelDistance
	}

	result := 0.0

	if last != nil && !math.IsNaN(current.Angle) && current.Angle > angleBonusBegin {
		angleBonus := math.Sqrt(
			math.Max(last.JumpDistance-angleBonusScale, 0) *
				math.Pow(math.Sin(current.Angle-angleBonusBegin), 2) *
				math.Max(current.JumpDistance-angleBonusScale, 0))

		result = 1.4 * applyDiminishingExp(angleBonus) / math.Max(timingThreshold, last.StrainTime)
	}

	jumpDistExp := applyDiminishingExp(current.JumpDistance)
	travelDistExp := applyDiminishingExp(travelDistance)

	sharedDist := math.Sqrt(travelDistExp * jumpDistExp)

	return math.Max(
		result+(jumpDistExp+travelDistExp+sharedDist)/math.Max(current.StrainTime, timingThreshold),
		(sharedDist+jumpDistExp+travelDistExp)/current.StrainTime,
	)
}

func applyDiminishingExp(val float64) float64 {
	return math.Pow(val, 0.99)
}
