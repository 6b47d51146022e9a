package evaluators

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/framework/math/mutils"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

const (
	singleSpacingThreshold = 125.0
	minSpeedBonus          = 75.0
	speedBalancingFactor   = 40.0
)

// EvaluateSpeed rates how fast current has to be tapped. greatWindow is the
// full-accuracy hit window in clock-rate adjusted milliseconds.
func EvaluateSpeed(current *preprocessing.DifficultyObject, greatWindow float64) float64 {
	if current.IsSpinner {
		return 0
	}

	strainTime := current.StrainTime
	greatWindowFull := greatWindow * 2
	speedWindowRatio := strainTime / greatWindowFull

	// Fast doubles with long gaps around them would otherwise rate like a
	// sustained stream, so stretch them towards the previous gap.
	if !math.IsNaN(current.PrevStrainTime) && strainTime < greatWindowFull && current.PrevStrainTime > strainTime {
		strainTime = mutils.Lerp(current.PrevStrainTime, strainTime, speedWindowRatio)
	}

	// Cap the gap to the full-accuracy hit window.
	strainTime /= mutils.Clamp(strainTime/greatWindowFull/0.93, 0.92, 1)

	speedBonus := 1.0
	if strainTime < minSpeedBonus {
		speedBonus = 1 + math.Pow((minSpeedBonus-strainTime)/speedBalancingFactor, 2)
	}

	dist := math.Min(singleSpacingThreshold, current.TravelDistance+current.JumpDistance)

	return (speedBonus + speedBonus*math.Pow(dist/singleSpacingThreshold, 3.5)) / strainTime
}
