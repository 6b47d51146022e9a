package api

// Attributes is the result of a difficulty calculation for one
// chart+modifier combination. Immutable once produced; safe to cache and
// reuse across performance calculations.
type Attributes struct {
	// Stars is the total star rating, visible on the chart's page
	Stars float64

	// Aim stars, needed for performance point calculations
	Aim float64

	// Speed stars, needed for performance point calculations
	Speed float64

	// Flashlight stars, only non-zero with the Flashlight mod
	Flashlight float64

	// SliderFactor is a ratio of Aim calculated without sliders to Aim with them
	SliderFactor float64

	// AR, OD and HP as effectively played, after mods and clock rate
	AR float64
	OD float64
	HP float64

	ObjectCount int
	Circles     int
	Sliders     int
	Spinners    int

	// MaxCombo counts circles, spinners, slider heads, repeats and tails.
	MaxCombo int

	// SliderEnds counts slider repeats and tails, the combo objects that can
	// be hit partially.
	SliderEnds int

	// Ticks counts slider ticks, the minor objects outside the combo.
	Ticks int
}

// PerformanceAttributes is the terminal output of a performance
// calculation: the total performance points with a per-component breakdown,
// plus the difficulty attributes it was derived from.
type PerformanceAttributes struct {
	Difficulty Attributes

	// Total performance points
	Total float64

	// Aim, Speed and Flashlight are the skill shares of Total
	Aim        float64
	Speed      float64
	Flashlight float64

	// Accuracy is the effective hit accuracy in [0, 1] recomputed from the
	// final judgement counts
	Accuracy float64
}

// StrainPeaks is the per-section strain time series of one calculation,
// a read-only projection for difficulty-over-time plots.
type StrainPeaks struct {
	// Aim peaks
	Aim []float64

	// Speed peaks
	Speed []float64

	// Flashlight peaks
	Flashlight []float64

	// Total contains the per-section sums of all active skills
	Total []float64

	// SectionLength is the real-time width of one section in milliseconds
	SectionLength float64
}
