package evaluators

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

// EvaluateFlashlight rates how hard current is to read with a limited view
// circle. history holds the preceding pairs, most recent first.
func EvaluateFlashlight(current *preprocessing.DifficultyObject, history []*preprocessing.DifficultyObject) float64 {
	if current.IsSpinner {
		return 0
	}

	scalingFactor := 52.0 / current.Diff.CircleRadius

	smallDistNerf := 1.0
	cumulativeStrainTime := 0.0
	result := 0.0

	for i, previous := range history {
		if previous.IsSpinner {
			continue
		}

		jumpDistance := float64(current.BaseObject.Pos.Dst(previous.EndCursorPos))

		cumulativeStrainTime += previous.StrainTime

		// Objects resting inside the view circle need no reaction.
		if i == 0 {
			smallDistNerf = math.Min(1, jumpDistance/75.0)
		}

		// Of a stack only the first object demands reading.
		stackNerf := math.Min(1, previous.JumpDistance/scalingFactor/25.0)

		result += math.Pow(0.8, float64(i)) * stackNerf * scalingFactor * jumpDistance / cumulativeStrainTime
	}

	return math.Pow(smallDistNerf*result, 2)
}
