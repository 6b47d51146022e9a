package performance

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/api"
	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/framework/math/mutils"
)

// Score describes one play of a chart. Counts set to -1 are treated as not
// recorded and reconstructed from the chart totals and Accuracy.
type Score struct {
	Mods difficulty.Modifier

	// MaxCombo is the highest combo of the play, -1 when unknown. Without
	// it no combo scaling is applied.
	MaxCombo int

	// Accuracy in [0, 1], -1 when unknown.
	Accuracy float64

	Greats     int
	Oks        int
	Ticks      int
	TickMisses int

	Misses int
}

// NewScore returns a score with every optional field unset.
func NewScore() Score {
	return Score{
		MaxCombo:   -1,
		Accuracy:   -1,
		Greats:     -1,
		Oks:        -1,
		Ticks:      -1,
		TickMisses: -1,
	}
}

// hitCounts are fully specified judgement counts of a play.
type hitCounts struct {
	greats     int
	oks        int
	ticks      int
	tickMisses int
	misses     int
}

func (c hitCounts) comboHits() int {
	return c.greats + c.oks + c.misses
}

func (c hitCounts) successfulHits() int {
	return c.greats + c.oks + c.ticks
}

func (c hitCounts) totalHits() int {
	return c.successfulHits() + c.tickMisses + c.misses
}

func (c hitCounts) accuracy() float64 {
	total := c.totalHits()
	if total == 0 {
		return 1
	}

	return mutils.Clamp(float64(c.successfulHits())/float64(total), 0, 1)
}

// CalculatePerformance rates a play on a chart with the given difficulty
// attributes.
func CalculatePerformance(attr api.Attributes, score Score) api.PerformanceAttributes {
	counts := resolveHitCounts(attr, score)

	acc := counts.accuracy()

	stars := attr.Stars

	pp := math.Pow(5*math.Max(stars/0.0675, 1)-4, 3) / 100000

	comboHits := counts.comboHits()
	if comboHits == 0 {
		comboHits = attr.MaxCombo
	}

	// Longer charts are worth more.
	lenBonus := 0.95 + 0.3*math.Min(float64(comboHits)/2500, 1)
	if comboHits > 2500 {
		lenBonus += math.Log10(float64(comboHits)/2500) * 0.475
	}

	pp *= lenBonus

	pp *= math.Pow(0.97, float64(counts.misses))

	if score.MaxCombo >= 0 && attr.MaxCombo > 0 {
		pp *= math.Min(math.Pow(float64(score.MaxCombo)/float64(attr.MaxCombo), 0.8), 1)
	}

	ar := attr.AR
	arFactor := 1.0
	if ar > 9 {
		arFactor += 0.1 * (ar - 9)
		if ar > 10 {
			arFactor += 0.1 * (ar - 10)
		}
	} else if ar < 8 {
		arFactor += 0.025 * (8 - ar)
	}
	pp *= arFactor

	if score.Mods.Active(difficulty.Hidden) {
		if ar <= 10 {
			pp *= 1.05 + 0.075*(10-ar)
		} else {
			pp *= 1.01 + 0.04*(11-math.Min(ar, 11))
		}
	}

	if score.Mods.Active(difficulty.Flashlight) {
		pp *= 1.35 * lenBonus
	}

	pp *= math.Pow(acc, 5.5)

	if score.Mods.Active(difficulty.NoFail) {
		pp *= 0.9
	}

	result := api.PerformanceAttributes{
		Difficulty: attr,
		Total:      pp,
		Accuracy:   acc,
	}

	attributeBreakdown(&result)

	return result
}

// resolveHitCounts turns the partially specified score into full judgement
// counts, reconstructing missing ones from accuracy and correcting
// inconsistent ones against the chart totals.
func resolveHitCounts(attr api.Attributes, score Score) hitCounts {
	totalGreats := saturatingSub(attr.MaxCombo, attr.SliderEnds)

	greats, oks, ticks, tickMisses := score.Greats, score.Oks, score.Ticks, score.TickMisses

	if score.Accuracy >= 0 {
		if oks < 0 {
			oks = saturatingSub(attr.SliderEnds, score.Misses)
		}

		if greats < 0 {
			greats = saturatingSub(saturatingSub(attr.MaxCombo, score.Misses), oks)
		}

		if ticks < 0 {
			target := int(math.Round(score.Accuracy * float64(attr.MaxCombo+attr.Ticks)))
			ticks = saturatingSub(saturatingSub(target, greats), oks)
		}

		tickMisses = saturatingSub(attr.Ticks, ticks)
	}

	consistent := greats >= 0 && oks >= 0 && ticks >= 0 && tickMisses >= 0 &&
		greats+oks+score.Misses == attr.MaxCombo &&
		greats >= saturatingSub(totalGreats, score.Misses) &&
		oks >= saturatingSub(attr.SliderEnds, score.Misses) &&
		ticks+tickMisses == attr.Ticks

	if consistent {
		return hitCounts{
			greats:     greats,
			oks:        oks,
			ticks:      ticks,
			tickMisses: tickMisses,
			misses:     score.Misses,
		}
	}

	greats = max(greats, 0)
	oks = max(oks, 0)
	ticks = max(ticks, 0)
	tickMisses = max(tickMisses, 0)

	missing := saturatingSub(saturatingSub(saturatingSub(attr.MaxCombo, greats), oks), score.Misses)
	missingGreats := saturatingSub(missing, saturatingSub(attr.SliderEnds, oks))

	greats += missingGreats
	oks += saturatingSub(missing, missingGreats)
	ticks += saturatingSub(saturatingSub(attr.Ticks, ticks), tickMisses)

	return hitCounts{
		greats:     greats,
		oks:        oks,
		ticks:      ticks,
		tickMisses: tickMisses,
		misses:     score.Misses,
	}
}

// attributeBreakdown splits the total into the shares the skill ratings are
// responsible for.
func attributeBreakdown(result *api.PerformanceAttributes) {
	aim := math.Pow(baseDifficultyPerformance(result.Difficulty.Aim), 1.1)
	speed := math.Pow(baseDifficultyPerformance(result.Difficulty.Speed), 1.1)
	flashlight := math.Pow(result.Difficulty.Flashlight*result.Difficulty.Flashlight*25, 1.1)

	sum := aim + speed + flashlight
	if sum <= 0 {
		return
	}

	result.Aim = result.Total * aim / sum
	result.Speed = result.Total * speed / sum
	result.Flashlight = result.Total * flashlight / sum
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}

	return a - b
}
