package preprocessing

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

const minDeltaTime = 25.0

// DifficultyObject couples a processed object with movement features
// relative to its predecessors. Skills consume these one by one.
type DifficultyObject struct {
	Index int

	BaseObject *Object

	Diff *difficulty.Difficulty

	IsSlider  bool
	IsSpinner bool

	DeltaTime float64
	StartTime float64
	EndTime   float64

	// LastStartTime is the start time of the preceding object, already
	// clock-rate adjusted like the times above.
	LastStartTime float64

	// JumpDistance is the normalized distance from the end cursor position
	// of the previous object to this one's start.
	JumpDistance float64

	// TravelDistance is the normalized distance a cursor moves while
	// tracking the previous object, non-zero only after sliders.
	TravelDistance float64

	// Angle spanned at the previous object by its two neighbours, NaN when
	// there is no object before the previous one.
	Angle float64

	// StrainTime is DeltaTime with very short gaps clamped away.
	StrainTime float64

	// PrevStrainTime is the StrainTime of the previous pair, NaN for the
	// first pair of a chart.
	PrevStrainTime float64

	// EndCursorPos is where the cursor rests once this object is done,
	// stack-resolved but not normalized.
	EndCursorPos vector.Vector2f
}

// NewDifficultyObject extracts the movement features between hitObject and
// lastObject. lastLastObject may be nil, in which case no angle is produced.
func NewDifficultyObject(hitObject, lastObject, lastLastObject *Object, d *difficulty.Difficulty, scaling *ScalingFactor, index int) *DifficultyObject {
	obj := &DifficultyObject{
		Index:          index,
		BaseObject:     hitObject,
		Diff:           d,
		IsSlider:       hitObject.IsSlider(),
		IsSpinner:      hitObject.IsSpinner(),
		StartTime:      hitObject.StartTime / d.Speed,
		EndTime:        hitObject.EndTime / d.Speed,
		LastStartTime:  lastObject.StartTime / d.Speed,
		Angle:          math.NaN(),
		PrevStrainTime: math.NaN(),
		EndCursorPos:   hitObject.EndCursorPos(),
	}

	obj.DeltaTime = (hitObject.StartTime - lastObject.StartTime) / d.Speed
	obj.StrainTime = max(obj.DeltaTime, minDeltaTime)

	obj.setDistances(lastObject, lastLastObject, scaling)

	return obj
}

func (obj *DifficultyObject) setDistances(lastObject, lastLastObject *Object, scaling *ScalingFactor) {
	if obj.BaseObject.IsSpinner() {
		return
	}

	if lastObject.IsSlider() {
		obj.TravelDistance = lastObject.LazyTravelDistance * float64(scaling.Factor())
	}

	lastCursor := lastObject.EndCursorPos()

	obj.JumpDistance = float64(obj.BaseObject.Pos.Scl(scaling.Factor()).Dst(lastCursor.Scl(scaling.Factor())))

	if lastLastObject != nil && !lastLastObject.IsSpinner() {
		v1 := lastLastObject.Pos.Sub(lastObject.Pos)
		v2 := obj.BaseObject.Pos.Sub(lastObject.Pos)

		dot := v1.Dot(v2)
		det := v1.Crs(v2)

		obj.Angle = math.Abs(math.Atan2(float64(det), float64(dot)))
	}
}
