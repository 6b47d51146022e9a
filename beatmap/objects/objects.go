package objects

import (
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

type Kind uint8

const (
	Circle Kind = iota
	Slider
	Spinner
)

type PathType uint8

const (
	Bezier PathType = iota
	Linear
	Catmull
	Perfect
)

// SliderPath is the raw path description of a slider as stored in the
// beatmap: a curve type, the control points (first point is the slider
// head) and the authored pixel length the path is clipped/extended to.
type SliderPath struct {
	Type          PathType
	ControlPoints []vector.Vector2f
	PixelLength   float64
}

// HitObject is one raw, immutable timed object of a beatmap. Slider-only
// fields are zero for circles and spinners; EndTime is only meaningful for
// spinners (slider end times derive from timing).
type HitObject struct {
	Kind      Kind
	StartTime float64
	EndTime   float64
	Pos       vector.Vector2f

	Path   SliderPath
	Slides int
}
