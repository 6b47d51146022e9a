package performance

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/api"
	"github.com/Mamestagram/mamestagram-pp/beatmap"
	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/performance/preprocessing"
	"github.com/Mamestagram/mamestagram-pp/performance/skills"
)

const (
	sectionLength        = 400.0
	difficultyMultiplier = 0.0675
)

// CalculateDifficulty rates the whole chart under the given settings.
func CalculateDifficulty(beatMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	return CalculateDifficultyPassed(beatMap, diff, len(beatMap.HitObjects))
}

// CalculateDifficultyPassed rates only the first passedObjects objects of
// the chart, for partial plays such as fails.
func CalculateDifficultyPassed(beatMap *beatmap.Beatmap, diff *difficulty.Difficulty, passedObjects int) api.Attributes {
	skillSet, attr := calculateSkills(beatMap, diff, passedObjects)
	if skillSet == nil {
		return attr
	}

	attr.Aim = strainToRating(skillSet.aim.DifficultyValue())

	attr.SliderFactor = 1
	if attr.Aim > 0 {
		attr.SliderFactor = strainToRating(skillSet.aimNoSliders.DifficultyValue()) / attr.Aim
	}

	if skillSet.speed != nil {
		attr.Speed = strainToRating(skillSet.speed.DifficultyValue())
	}

	if skillSet.flashlight != nil {
		attr.Flashlight = strainToRating(skillSet.flashlight.DifficultyValue())
	}

	attr.Stars = calculateStarRating(attr.Aim, attr.Speed, attr.Flashlight)

	return attr
}

// CalculateStrainPeaks returns the per-section strain peaks of the chart,
// suitable for plotting difficulty over time.
func CalculateStrainPeaks(beatMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.StrainPeaks {
	skillSet, _ := calculateSkills(beatMap, diff, len(beatMap.HitObjects))

	peaks := api.StrainPeaks{SectionLength: sectionLength * diff.Speed}

	if skillSet == nil {
		return peaks
	}

	peaks.Aim = skillSet.aim.GetCurrentStrainPeaks()

	if skillSet.speed != nil {
		peaks.Speed = skillSet.speed.GetCurrentStrainPeaks()
	} else {
		peaks.Speed = make([]float64, len(peaks.Aim))
	}

	if skillSet.flashlight != nil {
		peaks.Flashlight = skillSet.flashlight.GetCurrentStrainPeaks()
	} else {
		peaks.Flashlight = make([]float64, len(peaks.Aim))
	}

	peaks.Total = make([]float64, len(peaks.Aim))
	for i := range peaks.Total {
		peaks.Total[i] = peaks.Aim[i] + peaks.Speed[i] + peaks.Flashlight[i]
	}

	return peaks
}

type skillSet struct {
	aim          *skills.AimSkill
	aimNoSliders *skills.AimSkill
	speed        *skills.SpeedSkill
	flashlight   *skills.FlashlightSkill
}

func (set *skillSet) process(obj *preprocessing.DifficultyObject) {
	set.aim.Process(obj)
	set.aimNoSliders.Process(obj)

	if set.speed != nil {
		set.speed.Process(obj)
	}

	if set.flashlight != nil {
		set.flashlight.Process(obj)
	}
}

func calculateSkills(beatMap *beatmap.Beatmap, diff *difficulty.Difficulty, passedObjects int) (*skillSet, api.Attributes) {
	attr := api.Attributes{
		AR: diff.ARReal,
		OD: diff.ODReal,
		HP: diff.HP,
	}

	take := min(passedObjects, len(beatMap.HitObjects))

	params := &preprocessing.ObjectParameters{}
	objs := preprocessing.BuildObjects(beatMap, diff, params, take)

	attr.ObjectCount = len(objs)
	attr.Circles = params.Circles
	attr.Sliders = params.Sliders
	attr.Spinners = params.Spinners

	if take < 2 {
		return nil, attr
	}

	attr.MaxCombo = params.MaxCombo
	attr.SliderEnds = params.SliderEnds
	attr.Ticks = params.Ticks

	stackThreshold := diff.Preempt * beatMap.StackLeniency
	preprocessing.ResolveStacking(objs, beatMap.FormatVersion, stackThreshold)

	scaling := preprocessing.NewScalingFactor(diff)

	applyStackOffsets(objs, scaling)

	set := &skillSet{
		aim:          skills.NewAimSkill(diff, true),
		aimNoSliders: skills.NewAimSkill(diff, false),
	}

	if !diff.CheckModActive(difficulty.Relax) {
		set.speed = skills.NewSpeedSkill(diff)
	}

	if diff.CheckModActive(difficulty.Flashlight) {
		set.flashlight = skills.NewFlashlightSkill(diff)
	}

	var last, lastLast *preprocessing.Object

	prevStrainTime := math.NaN()

	for i, obj := range objs {
		if i == 0 {
			last = obj
			continue
		}

		diffObj := preprocessing.NewDifficultyObject(obj, last, lastLast, diff, scaling, i-1)
		diffObj.PrevStrainTime = prevStrainTime
		prevStrainTime = diffObj.StrainTime

		set.process(diffObj)

		lastLast = last
		last = obj
	}

	return set, attr
}

// applyStackOffsets folds the resolved stack heights into the start
// positions. End and lazy-end positions stay where the path put them.
func applyStackOffsets(objs []*preprocessing.Object, scaling *preprocessing.ScalingFactor) {
	for _, obj := range objs {
		obj.Pos = obj.Pos.Add(scaling.StackOffset(obj.StackHeight))
	}
}

func strainToRating(difficultyValue float64) float64 {
	return math.Sqrt(difficultyValue) * difficultyMultiplier
}

func calculateStarRating(aimRating, speedRating, flashlightRating float64) float64 {
	basePerformance := math.Pow(
		math.Pow(baseDifficultyPerformance(aimRating), 1.1)+
			math.Pow(baseDifficultyPerformance(speedRating), 1.1)+
			math.Pow(flashlightRating*flashlightRating*25, 1.1),
		1/1.1,
	)

	if basePerformance <= 0.00001 {
		return 0
	}

	return math.Cbrt(1.12) * 0.027 * (math.Cbrt(100000/math.Exp2(1/1.1)*basePerformance) + 4)
}

// baseDifficultyPerformance is the performance a rating alone is worth with
// everything else ideal.
func baseDifficultyPerformance(rating float64) float64 {
	base := 5*math.Max(rating/0.0675, 1) - 4

	return base * base * base / 100000
}
