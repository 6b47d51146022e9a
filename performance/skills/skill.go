package skills

import (
	"math"
	"sort"

	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
)

// Skill is the shared strain bookkeeping of the concrete skills. Each skill
// plugs its formula in through StrainValueOf and CalculateInitialStrain and
// feeds difficulty objects to Process in chart order.
type Skill struct {
	// SectionLength is how many clock-rate adjusted milliseconds one strain
	// section covers.
	SectionLength float64

	// DecayWeight scales each following strain peak when they are summed
	// into the difficulty value.
	DecayWeight float64

	StrainValueOf          func(obj *preprocessing.DifficultyObject) float64
	CalculateInitialStrain func(time float64, current *preprocessing.DifficultyObject) float64

	diff *difficulty.Difficulty

	currentSectionPeak float64
	currentSectionEnd  float64

	strainPeaks []float64
}

func NewSkill(d *difficulty.Difficulty) *Skill {
	return &Skill{
		SectionLength: 400,
		DecayWeight:   0.9,
		diff:          d,
	}
}

// Process updates the skill with the next difficulty object of the chart.
func (skill *Skill) Process(current *preprocessing.DifficultyObject) {
	if current.Index == 0 {
		skill.currentSectionEnd = math.Ceil(current.StartTime/skill.SectionLength) * skill.SectionLength
	}

	for current.StartTime > skill.currentSectionEnd {
		skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
		skill.currentSectionPeak = skill.CalculateInitialStrain(skill.currentSectionEnd, current)
		skill.currentSectionEnd += skill.SectionLength
	}

	skill.currentSectionPeak = math.Max(skill.StrainValueOf(current), skill.currentSectionPeak)
}

// GetCurrentStrainPeaks returns the peaks of all closed sections plus the
// one still in progress.
func (skill *Skill) GetCurrentStrainPeaks() []float64 {
	peaks := make([]float64, len(skill.strainPeaks), len(skill.strainPeaks)+1)
	copy(peaks, skill.strainPeaks)

	return append(peaks, skill.currentSectionPeak)
}

// DifficultyValue sums the strain peaks from highest to lowest with each
// next peak weighted down by DecayWeight.
func (skill *Skill) DifficultyValue() float64 {
	strains := skill.GetCurrentStrainPeaks()

	sort.Sort(sort.Reverse(sort.Float64Slice(strains)))

	value := 0.0
	weight := 1.0

	for _, strain := range strains {
		value += strain * weight
		weight *= skill.DecayWeight
	}

	return value
}
