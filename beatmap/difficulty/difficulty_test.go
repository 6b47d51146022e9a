package difficulty

import (
	"math"
	"testing"
)

func TestDifficultyRange(t *testing.T) {
	cases := []struct {
		value    float64
		min, mid float64
		max      float64
		want     float64
	}{
		{0, 1800, 1200, 450, 1800},
		{5, 1800, 1200, 450, 1200},
		{10, 1800, 1200, 450, 450},
		{9, 1800, 1200, 450, 600},
		{0, 80, 50, 20, 80},
		{10, 80, 50, 20, 20},
	}

	for _, tc := range cases {
		if got := DifficultyRange(tc.value, tc.min, tc.mid, tc.max); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DifficultyRange(%v, %v, %v, %v) = %v, want %v",
				tc.value, tc.min, tc.mid, tc.max, got, tc.want)
		}
	}
}

func TestNewDifficultyNoMod(t *testing.T) {
	diff := NewDifficulty(5, 4, 8, 9, None)

	if diff.Speed != 1 {
		t.Errorf("speed = %v, want 1", diff.Speed)
	}

	wantRadius := 32 * (1 - 0.7*(4.0-5)/5)
	if math.Abs(diff.CircleRadius-wantRadius) > 1e-9 {
		t.Errorf("radius = %v, want %v", diff.CircleRadius, wantRadius)
	}

	if math.Abs(diff.Preempt-600) > 1e-9 {
		t.Errorf("preempt = %v, want 600", diff.Preempt)
	}

	if math.Abs(diff.ARReal-9) > 1e-9 || math.Abs(diff.ODReal-8) > 1e-9 {
		t.Errorf("real values: AR %v, OD %v", diff.ARReal, diff.ODReal)
	}
}

func TestNewDifficultyHardRockCaps(t *testing.T) {
	diff := NewDifficulty(8, 9, 8, 9, HardRock)

	if diff.CS != 10 || diff.AR != 10 || diff.OD != 10 {
		t.Errorf("HR settings: CS %v, AR %v, OD %v, want all capped at 10", diff.CS, diff.AR, diff.OD)
	}

	if math.Abs(diff.HP-10) > 1e-9 {
		t.Errorf("HR HP = %v, want 10", diff.HP)
	}
}

func TestNewDifficultyEasyHalves(t *testing.T) {
	diff := NewDifficulty(6, 4, 8, 9, Easy)

	if diff.CS != 2 || diff.AR != 4.5 || diff.OD != 4 || diff.HP != 3 {
		t.Errorf("EZ settings: CS %v, AR %v, OD %v, HP %v", diff.CS, diff.AR, diff.OD, diff.HP)
	}
}

func TestNewDifficultyDoubleTimeReal(t *testing.T) {
	diff := NewDifficulty(5, 4, 8, 9, DoubleTime)

	// Preempt stays in chart time, the real values move.
	if math.Abs(diff.Preempt-600) > 1e-9 {
		t.Errorf("preempt = %v, want 600", diff.Preempt)
	}

	if diff.ARReal <= 9 {
		t.Errorf("DT ARReal = %v, want > 9", diff.ARReal)
	}

	if diff.ODReal <= 8 {
		t.Errorf("DT ODReal = %v, want > 8", diff.ODReal)
	}

	wantWindow := DifficultyRange(8, 80, 50, 20) / 1.5
	if math.Abs(diff.Hit300-wantWindow) > 1e-9 {
		t.Errorf("DT hit window = %v, want %v", diff.Hit300, wantWindow)
	}
}

func TestParseMods(t *testing.T) {
	cases := []struct {
		input string
		want  Modifier
	}{
		{"", None},
		{"HD", Hidden},
		{"HDDT", Hidden | DoubleTime},
		{"hdhr", Hidden | HardRock},
		{"NC", Nightcore | DoubleTime},
		{"XX", None},
	}

	for _, tc := range cases {
		if got := ParseMods(tc.input); got != tc.want {
			t.Errorf("ParseMods(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	cases := []struct {
		mods Modifier
		want string
	}{
		{None, "NM"},
		{Hidden, "HD"},
		{Hidden | DoubleTime, "HDDT"},
		{Nightcore | DoubleTime, "NC"},
	}

	for _, tc := range cases {
		if got := tc.mods.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.mods, got, tc.want)
		}
	}
}

func TestModifierSpeed(t *testing.T) {
	if got := (DoubleTime).Speed(); got != 1.5 {
		t.Errorf("DT speed = %v, want 1.5", got)
	}

	if got := (HalfTime).Speed(); got != 0.75 {
		t.Errorf("HT speed = %v, want 0.75", got)
	}

	if got := (Hidden | HardRock).Speed(); got != 1 {
		t.Errorf("HDHR speed = %v, want 1", got)
	}
}
