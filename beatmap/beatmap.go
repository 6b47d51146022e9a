package beatmap

import (
	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
)

// TimingPoint is one control point of a chart. Uninherited points set the
// beat length; inherited points scale the slider velocity.
type TimingPoint struct {
	Time        float64
	BeatLength  float64
	SpeedMult   float64
	Uninherited bool
}

// Beatmap is the raw chart as read from a .osu file, limited to the fields
// the difficulty pipeline consumes.
type Beatmap struct {
	FormatVersion int

	Title   string
	Version string

	StackLeniency float64
	Mode          int

	HPDrainRate       float64
	CircleSize        float64
	OverallDifficulty float64
	ApproachRate      float64
	SliderMultiplier  float64
	SliderTickRate    float64

	TimingPoints []TimingPoint
	HitObjects   []objects.HitObject
}

// TimingAt returns the active beat length and slider velocity multiplier
// at the given chart time.
func (beatMap *Beatmap) TimingAt(time float64) (beatLength, speedMult float64) {
	beatLength = 500
	speedMult = 1

	for _, point := range beatMap.TimingPoints {
		if point.Time > time {
			break
		}

		if point.Uninherited {
			beatLength = point.BeatLength
			speedMult = 1
		} else {
			speedMult = point.SpeedMult
		}
	}

	return beatLength, speedMult
}
