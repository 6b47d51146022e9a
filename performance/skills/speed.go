package skills

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance/evaluators"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

const (
	speedSkillMultiplier float64 = 1400
	speedStrainDecayBase float64 = 0.3
)

type SpeedSkill struct {
	*Skill
	currentStrain float64

	greatWindow float64
}

// NewSpeedSkill rates tapping. The full-accuracy hit window dampens rhythms
// that are only fast on paper.
func NewSpeedSkill(d *difficulty.Difficulty) *SpeedSkill {
	skill := &SpeedSkill{Skill: NewSkill(d), greatWindow: d.Hit300}

	skill.StrainValueOf = skill.speedStrainValue
	skill.CalculateInitialStrain = skill.speedInitialStrain

	return skill
}

func (skill *SpeedSkill) strainDecay(ms float64) float64 {
	return math.Pow(speedStrainDecayBase, ms/1000)
}

func (skill *SpeedSkill) speedInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	return skill.currentStrain * skill.strainDecay(time-current.LastStartTime)
}

func (skill *SpeedSkill) speedStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= skill.strainDecay(current.DeltaTime)
	skill.currentStrain += evaluators.EvaluateSpeed(current, skill.greatWindow) * speedSkillMultiplier

	return skill.currentStrain
}
