package performance

import (
	"math"
	"testing"

	"github.com/Mamestagram/mamestagram-pp/api"
	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
)

func testAttributes() api.Attributes {
	return api.Attributes{
		Stars:      5.3,
		Aim:        2.8,
		Speed:      2.4,
		AR:         9.3,
		OD:         8.7,
		MaxCombo:   1200,
		SliderEnds: 300,
		Ticks:      150,
	}
}

func TestPerformanceFullCombo(t *testing.T) {
	attr := testAttributes()

	score := NewScore()
	result := CalculatePerformance(attr, score)

	if result.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", result.Accuracy)
	}

	if result.Total <= 0 {
		t.Errorf("pp = %v, want > 0", result.Total)
	}
}

func TestPerformanceAccuracyReconstruction(t *testing.T) {
	attr := testAttributes()

	for _, acc := range []float64{1, 0.99, 0.95, 0.9} {
		score := NewScore()
		score.Accuracy = acc

		result := CalculatePerformance(attr, score)

		// Counts are integers, so the recomputed accuracy drifts by at
		// most one judgement.
		maxDrift := 1 / float64(attr.MaxCombo+attr.Ticks)

		if math.Abs(result.Accuracy-acc) > maxDrift {
			t.Errorf("accuracy %v reconstructed as %v", acc, result.Accuracy)
		}
	}
}

func TestPerformanceMissesLowerResult(t *testing.T) {
	attr := testAttributes()

	full := CalculatePerformance(attr, NewScore())

	missed := NewScore()
	missed.Misses = 10

	if got := CalculatePerformance(attr, missed); got.Total >= full.Total {
		t.Errorf("pp with misses = %v, want < %v", got.Total, full.Total)
	}
}

func TestPerformanceComboScalingBound(t *testing.T) {
	attr := testAttributes()

	full := CalculatePerformance(attr, NewScore())

	partial := NewScore()
	partial.MaxCombo = attr.MaxCombo / 2

	if got := CalculatePerformance(attr, partial); got.Total >= full.Total {
		t.Errorf("pp at half combo = %v, want < %v", got.Total, full.Total)
	}

	capped := NewScore()
	capped.MaxCombo = attr.MaxCombo

	if got := CalculatePerformance(attr, capped); got.Total != full.Total {
		t.Errorf("pp at max combo = %v, want %v", got.Total, full.Total)
	}
}

func TestPerformanceCountConservation(t *testing.T) {
	attr := testAttributes()

	score := NewScore()
	score.Accuracy = 0.97
	score.Misses = 5

	counts := resolveHitCounts(attr, score)

	if got := counts.greats + counts.oks + counts.misses; got != attr.MaxCombo {
		t.Errorf("combo hits = %v, want %v", got, attr.MaxCombo)
	}

	if got := counts.ticks + counts.tickMisses; got != attr.Ticks {
		t.Errorf("minor hits = %v, want %v", got, attr.Ticks)
	}
}

func TestPerformanceHiddenBonus(t *testing.T) {
	attr := testAttributes()

	plain := CalculatePerformance(attr, NewScore())

	hidden := NewScore()
	hidden.Mods = difficulty.Hidden

	if got := CalculatePerformance(attr, hidden); got.Total <= plain.Total {
		t.Errorf("pp with HD = %v, want > %v", got.Total, plain.Total)
	}
}

func TestPerformanceNoFailPenalty(t *testing.T) {
	attr := testAttributes()

	plain := CalculatePerformance(attr, NewScore())

	noFail := NewScore()
	noFail.Mods = difficulty.NoFail

	got := CalculatePerformance(attr, noFail)

	if math.Abs(got.Total-plain.Total*0.9) > 1e-9 {
		t.Errorf("pp with NF = %v, want %v", got.Total, plain.Total*0.9)
	}
}

func TestPerformanceBreakdownSumsToTotal(t *testing.T) {
	attr := testAttributes()
	attr.Flashlight = 1.7

	result := CalculatePerformance(attr, NewScore())

	sum := result.Aim + result.Speed + result.Flashlight

	if math.Abs(sum-result.Total) > 1e-9 {
		t.Errorf("breakdown sum = %v, want %v", sum, result.Total)
	}
}

func TestPerformanceEmptyChart(t *testing.T) {
	result := CalculatePerformance(api.Attributes{}, NewScore())

	if result.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", result.Accuracy)
	}

	if math.IsNaN(result.Total) || math.IsInf(result.Total, 0) {
		t.Errorf("pp = %v, want finite", result.Total)
	}
}
