package skills

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance/evaluators"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

const (
	flashlightSkillMultiplier float64 = 0.15
	flashlightStrainDecayBase float64 = 0.15

	flashlightHistoryLength = 10
)

type FlashlightSkill struct {
	*Skill
	currentStrain float64

	// history holds the last few pairs, most recent first.
	history []*preprocessing.DifficultyObject
}

func NewFlashlightSkill(d *difficulty.Difficulty) *FlashlightSkill {
	skill := &FlashlightSkill{
		Skill:   NewSkill(d),
		history: make([]*preprocessing.DifficultyObject, 0, flashlightHistoryLength),
	}

	skill.StrainValueOf = skill.flashlightStrainValue
	skill.CalculateInitialStrain = skill.flashlightInitialStrain

	return skill
}

func (skill *FlashlightSkill) strainDecay(ms float64) float64 {
	return math.Pow(flashlightStrainDecayBase, ms/1000)
}

func (skill *FlashlightSkill) flashlightInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	return skill.currentStrain * skill.strainDecay(time-current.LastStartTime)
}

func (skill *FlashlightSkill) flashlightStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= skill.strainDecay(current.DeltaTime)
	skill.currentStrain += evaluators.EvaluateFlashlight(current, skill.history) * flashlightSkillMultiplier

	if len(skill.history) == flashlightHistoryLength {
		copy(skill.history[1:], skill.history[:flashlightHistoryLength-1])
		skill.history[0] = current
	} else {
		skill.history = append(skill.history, nil)
		copy(skill.history[1:], skill.history)
		skill.history[0] = current
	}

	return skill.currentStrain
}
