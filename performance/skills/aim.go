package skills

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance/evaluators"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

const (
	aimSkillMultiplier float64 = 26.25
	aimStrainDecayBase float64 = 0.15
)

type AimSkill struct {
	*Skill
	withSliders   bool
	currentStrain float64

	last *preprocessing.DifficultyObject
}

// NewAimSkill rates cursor movement. With withSliders false the travel
// along slider bodies is left out, which feeds the slider factor.
func NewAimSkill(d *difficulty.Difficulty, withSliders bool) *AimSkill {
	skill := &AimSkill{Skill: NewSkill(d), withSliders: withSliders}

	skill.StrainValueOf = skill.aimStrainValue
	skill.CalculateInitialStrain = skill.aimInitialStrain

	return skill
}

func (skill *AimSkill) strainDecay(ms float64) float64 {
	return math.Pow(aimStrainDecayBase, ms/1000)
}

func (skill *AimSkill) aimInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	return skill.currentStrain * skill.strainDecay(time-current.LastStartTime)
}

func (skill *AimSkill) aimStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= skill.strainDecay(current.DeltaTime)
	skill.currentStrain += evaluators.EvaluateAim(current, skill.last, skill.withSliders) * aimSkillMultiplier

	skill.last = current

	return skill.currentStrain
}
