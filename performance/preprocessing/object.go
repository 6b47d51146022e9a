package preprocessing

import (
	"github.com/Mamestagram/mamestagram-pp/beatmap"
	"github.com/Mamestagram/mamestagram-pp/beatmap/difficulty"
	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
	"github.com/Mamestagram/mamestagram-pp/curves"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

// Object is one processed hit object of a difficulty calculation run. It is
// created by BuildObjects, mutated by the stack resolver and then read-only
// for feature extraction.
type Object struct {
	kind objects.Kind

	StartTime float64
	EndTime   float64

	// Pos is the start position with HardRock applied; the stack offset is
	// folded in after stacking resolves.
	Pos    vector.Vector2f
	EndPos vector.Vector2f

	// LazyEndPos is where a follow-circle cursor ends up after tracking a
	// slider, LazyTravelDistance the raw distance it moved. Equal to Pos and
	// 0 for non-sliders.
	LazyEndPos         vector.Vector2f
	LazyTravelDistance float64

	StackHeight float64
}

func (o *Object) IsCircle() bool  { return o.kind == objects.Circle }
func (o *Object) IsSlider() bool  { return o.kind == objects.Slider }
func (o *Object) IsSpinner() bool { return o.kind == objects.Spinner }

// EndCursorPos is the position a cursor naturally rests at when the object
// is done with.
func (o *Object) EndCursorPos() vector.Vector2f {
	if o.IsSlider() {
		return o.LazyEndPos
	}

	return o.Pos
}

// ObjectParameters accumulates chart-wide counts while objects are built
// and owns the scratch buffers shared across sliders of one run.
type ObjectParameters struct {
	MaxCombo   int
	SliderEnds int
	Ticks      int

	Circles  int
	Sliders  int
	Spinners int

	bufs       curves.Buffers
	progresses []float64
}

// The cursor is assumed to track a slider inside three radii of its center.
const followRadiusScale = 3.0

const playfieldHeight = 384.0

// BuildObjects converts the first takeCount raw objects into processed
// objects, counting combo points, slider ends and ticks along the way.
func BuildObjects(beatMap *beatmap.Beatmap, diff *difficulty.Difficulty, params *ObjectParameters, takeCount int) []*Object {
	hardRock := diff.CheckModActive(difficulty.HardRock)

	processed := make([]*Object, 0, takeCount)

	for i := 0; i < min(takeCount, len(beatMap.HitObjects)); i++ {
		raw := beatMap.HitObjects[i]

		pos := raw.Pos
		if hardRock {
			pos.Y = playfieldHeight - pos.Y
		}

		obj := &Object{
			kind:       raw.Kind,
			StartTime:  raw.StartTime,
			EndTime:    raw.StartTime,
			Pos:        pos,
			EndPos:     pos,
			LazyEndPos: pos,
		}

		params.MaxCombo++

		switch raw.Kind {
		case objects.Circle:
			params.Circles++
		case objects.Spinner:
			params.Spinners++
			obj.EndTime = raw.EndTime
		case objects.Slider:
			params.Sliders++
			buildSlider(obj, raw, beatMap, diff, params, hardRock)
		}

		processed = append(processed, obj)
	}

	return processed
}

func buildSlider(obj *Object, raw objects.HitObject, beatMap *beatmap.Beatmap, diff *difficulty.Difficulty, params *ObjectParameters, hardRock bool) {
	path := raw.Path

	if hardRock {
		flipped := make([]vector.Vector2f, len(path.ControlPoints))
		for i, point := range path.ControlPoints {
			flipped[i] = vector.NewVec2f(point.X, playfieldHeight-point.Y)
		}

		path.ControlPoints = flipped
	}

	curve := curves.NewCurve(path, &params.bufs)

	beatLength, speedMult := beatMap.TimingAt(raw.StartTime)

	scoringDistance := 100 * beatMap.SliderMultiplier * speedMult

	velocity := scoringDistance / max(beatLength, 1e-3)
	spanDuration := curve.PixelLength / max(velocity, 1e-9)

	obj.EndTime = raw.StartTime + spanDuration*float64(raw.Slides)

	// Repeats and the tail are combo points; ticks are minor objects kept
	// out of the combo.
	params.MaxCombo += raw.Slides
	params.SliderEnds += raw.Slides

	tickDistance := scoringDistance / max(beatMap.SliderTickRate, 1e-3)

	ticksPerSpan := 0
	if tickDistance > 0 {
		for dist := tickDistance; dist < curve.PixelLength-tickDistance/8; dist += tickDistance {
			ticksPerSpan++
		}
	}

	params.Ticks += ticksPerSpan * raw.Slides

	// Progress values of every nested position the cursor is pulled
	// through, in time order: per-span ticks plus each span end.
	params.progresses = params.progresses[:0]

	for span := 0; span < raw.Slides; span++ {
		for tick := 1; tick <= ticksPerSpan; tick++ {
			spanProgress := float64(tick) * tickDistance / curve.PixelLength

			params.progresses = append(params.progresses, spanDirection(span, spanProgress))
		}

		params.progresses = append(params.progresses, spanDirection(span, 1))
	}

	obj.EndPos = curve.PointAt(spanDirection(raw.Slides-1, 1))

	computeLazyTravel(obj, curve, params.progresses, diff.CircleRadius)
}

// spanDirection mirrors a within-span progress on odd (reversed) spans.
func spanDirection(span int, progress float64) float64 {
	if span%2 == 1 {
		return 1 - progress
	}

	return progress
}

func computeLazyTravel(obj *Object, curve *curves.Curve, progresses []float64, radius float64) {
	followRadius := float32(radius * followRadiusScale)

	cursor := obj.Pos
	travel := 0.0

	for _, progress := range progresses {
		target := curve.PointAt(progress)

		diff := target.Sub(cursor)
		dist := diff.Len()

		if dist > followRadius {
			dist -= followRadius
			cursor = cursor.Add(diff.Nor().Scl(dist))
			travel += float64(dist)
		}
	}

	obj.LazyEndPos = cursor
	obj.LazyTravelDistance = travel
}
