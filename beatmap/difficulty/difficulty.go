package difficulty

// Difficulty carries the mod-adjusted settings of one chart+modifier
// combination. It is built once per calculation and treated as read-only
// by the pipeline.
type Difficulty struct {
	Mods Modifier

	// Speed is the clock rate (DT 1.5, HT 0.75, otherwise 1).
	Speed float64

	// Setting values after EZ/HR, before clock-rate conversion.
	CS float64
	AR float64
	OD float64
	HP float64

	// CircleRadius is the hit-circle radius in playfield pixels.
	CircleRadius float64

	// Preempt is the approach duration in chart-time milliseconds, used for
	// the stacking threshold.
	Preempt float64

	// Hit300 is the great hit window in real-time milliseconds.
	Hit300 float64

	// ARReal and ODReal are the effective values after clock rate, as shown
	// to players.
	ARReal float64
	ODReal float64
}

// NewDifficulty applies the mod set to a chart's base settings.
func NewDifficulty(hp, cs, od, ar float64, mods Modifier) *Difficulty {
	diff := &Difficulty{
		Mods:  mods,
		Speed: mods.Speed(),
		CS:    cs,
		AR:    ar,
		OD:    od,
		HP:    hp,
	}

	if mods.Active(HardRock) {
		diff.CS = min(diff.CS*1.3, 10)
		diff.AR = min(diff.AR*1.4, 10)
		diff.OD = min(diff.OD*1.4, 10)
		diff.HP = min(diff.HP*1.4, 10)
	} else if mods.Active(Easy) {
		diff.CS /= 2
		diff.AR /= 2
		diff.OD /= 2
		diff.HP /= 2
	}

	diff.CircleRadius = 32 * (1 - 0.7*(diff.CS-5)/5)
	diff.Preempt = DifficultyRange(diff.AR, 1800, 1200, 450)
	diff.Hit300 = DifficultyRange(diff.OD, 80, 50, 20) / diff.Speed

	diff.ODReal = (80 - diff.Hit300) / 6

	preemptReal := diff.Preempt / diff.Speed
	if preemptReal > 1200 {
		diff.ARReal = (1800 - preemptReal) / 120
	} else {
		diff.ARReal = (1200-preemptReal)/150 + 5
	}

	return diff
}

func (diff *Difficulty) CheckModActive(mods Modifier) bool {
	return diff.Mods&mods > 0
}

// DifficultyRange maps a 0-10 setting to its millisecond value, linearly on
// both sides of the midpoint 5.
func DifficultyRange(difficulty, min, mid, max float64) float64 {
	switch {
	case difficulty > 5:
		return mid + (max-mid)*(difficulty-5)/5
	case difficulty < 5:
		return mid + (mid-min)*(difficulty-5)/5
	}

	return mid
}
