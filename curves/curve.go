package curves

import (
	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
	"github.com/Mamestagram/mamestagram-pp/framework/math/mutils"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

// Curve is a flattened slider path with a cumulative arc-length table,
// clipped or linearly extended to the authored pixel length.
type Curve struct {
	points     []vector.Vector2f
	cumLengths []float64

	// PixelLength is the playable length of one span.
	PixelLength float64
}

// NewCurve flattens the path using bufs as scratch storage and builds the
// length table.
func NewCurve(path objects.SliderPath, bufs *Buffers) *Curve {
	flattened := bufs.Flatten(path)

	curve := &Curve{
		points:      append([]vector.Vector2f(nil), flattened...),
		PixelLength: path.PixelLength,
	}

	curve.cumLengths = make([]float64, len(curve.points))

	length := 0.0
	for i := 1; i < len(curve.points); i++ {
		length += float64(curve.points[i].Dst(curve.points[i-1]))
		curve.cumLengths[i] = length
	}

	if curve.PixelLength <= 0 {
		curve.PixelLength = length
	}

	return curve
}

// PathLength is the geometric length of the flattened polyline before
// clipping to PixelLength.
func (curve *Curve) PathLength() float64 {
	if len(curve.cumLengths) == 0 {
		return 0
	}

	return curve.cumLengths[len(curve.cumLengths)-1]
}

// PointAt returns the position after travelling progress*PixelLength along
// the path from the head. Progress outside [0, 1] is clamped; paths shorter
// than PixelLength are extended along their last segment like the client
// renders them.
func (curve *Curve) PointAt(progress float64) vector.Vector2f {
	if len(curve.points) == 0 {
		return vector.Vector2f{}
	}

	if len(curve.points) == 1 {
		return curve.points[0]
	}

	target := mutils.Clamp(progress, 0, 1) * curve.PixelLength

	for i := 1; i < len(curve.points); i++ {
		if target <= curve.cumLengths[i] {
			segment := curve.cumLengths[i] - curve.cumLengths[i-1]
			if segment == 0 {
				return curve.points[i]
			}

			t := (target - curve.cumLengths[i-1]) / segment

			return curve.points[i-1].Lerp(curve.points[i], float32(t))
		}
	}

	last := curve.points[len(curve.points)-1]
	prev := curve.points[len(curve.points)-2]

	direction := last.Sub(prev)
	segment := float64(direction.Len())
	if segment == 0 {
		return last
	}

	overshoot := target - curve.PathLength()

	return last.Add(direction.Scl(float32(overshoot / segment)))
}
