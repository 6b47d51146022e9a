package evaluators

import (
	"math"
	"testing"

	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

func pairAt(jump, strainTime float64) *preprocessing.DifficultyObject {
	return &preprocessing.DifficultyObject{
		Diff:           difficulty.NewDifficulty(5, 4, 8, 9, difficulty.None),
		JumpDistance:   jump,
		DeltaTime:      strainTime,
		StrainTime:     strainTime,
		Angle:          math.NaN(),
		PrevStrainTime: math.NaN(),
	}
}

func TestAimLargerJumpsRateHigher(t *testing.T) {
	small := EvaluateAim(pairAt(50, 200), nil, true)
	large := EvaluateAim(pairAt(200, 200), nil, true)

	if large <= small {
		t.Errorf("aim: large jump %v, small jump %v, want large > small", large, small)
	}
}

func TestAimSpinnerIsFree(t *testing.T) {
	obj := pairAt(100, 200)
	obj.IsSpinner = true

	if got := EvaluateAim(obj, nil, true); got != 0 {
		t.Errorf("aim on spinner = %v, want 0", got)
	}
}

func TestAimAngleBonusNeedsWideAngle(t *testing.T) {
	last := pairAt(200, 200)

	narrow := pairAt(200, 200)
	narrow.Angle = math.Pi / 6

	wide := pairAt(200, 200)
	wide.Angle = math.Pi * 0.75

	if EvaluateAim(wide, last, true) <= EvaluateAim(narrow, last, true) {
		t.Error("aim: wide angle should rate higher than a narrow one")
	}
}

func TestSpeedShorterGapsRateHigher(t *testing.T) {
	slow := EvaluateSpeed(pairAt(50, 300), 32)
	fast := EvaluateSpeed(pairAt(50, 100), 32)

	if fast <= slow {
		t.Errorf("speed: fast %v, slow %v, want fast > slow", fast, slow)
	}
}

func TestSpeedBonusBelowThreshold(t *testing.T) {
	atThreshold := EvaluateSpeed(pairAt(0, 75), 32)
	below := EvaluateSpeed(pairAt(0, 50), 32)

	// Below 75ms the bonus kicks in on top of the 1/time growth.
	if below <= atThreshold*75/50 {
		t.Errorf("speed: below threshold %v, want > %v", below, atThreshold*75/50)
	}
}

func TestFlashlightNoHistoryIsFree(t *testing.T) {
	if got := EvaluateFlashlight(pairAt(100, 200), nil); got != 0 {
		t.Errorf("flashlight without history = %v, want 0", got)
	}
}
