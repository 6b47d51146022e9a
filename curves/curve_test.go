package curves

import (
	"math"
	"testing"

	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

func almostEqual(a, b vector.Vector2f, eps float32) bool {
	return a.Dst(b) < eps
}

func TestLinearCurve(t *testing.T) {
	var bufs Buffers

	curve := NewCurve(objects.SliderPath{
		Type: objects.Linear,
		ControlPoints: []vector.Vector2f{
			vector.NewVec2f(0, 0),
			vector.NewVec2f(100, 0),
		},
		PixelLength: 100,
	}, &bufs)

	if math.Abs(curve.PathLength()-100) > 1e-3 {
		t.Errorf("path length = %v, want 100", curve.PathLength())
	}

	if got := curve.PointAt(0); !almostEqual(got, vector.NewVec2f(0, 0), 1e-3) {
		t.Errorf("PointAt(0) = %v", got)
	}

	if got := curve.PointAt(0.5); !almostEqual(got, vector.NewVec2f(50, 0), 1e-3) {
		t.Errorf("PointAt(0.5) = %v", got)
	}

	if got := curve.PointAt(1); !almostEqual(got, vector.NewVec2f(100, 0), 1e-3) {
		t.Errorf("PointAt(1) = %v", got)
	}
}

func TestCurveClampsProgress(t *testing.T) {
	var bufs Buffers

	curve := NewCurve(objects.SliderPath{
		Type: objects.Linear,
		ControlPoints: []vector.Vector2f{
			vector.NewVec2f(0, 0),
			vector.NewVec2f(100, 0),
		},
		PixelLength: 100,
	}, &bufs)

	if got := curve.PointAt(-1); !almostEqual(got, vector.NewVec2f(0, 0), 1e-3) {
		t.Errorf("PointAt(-1) = %v", got)
	}

	if got := curve.PointAt(2); !almostEqual(got, vector.NewVec2f(100, 0), 1e-3) {
		t.Errorf("PointAt(2) = %v", got)
	}
}

func TestCurveExtendsShortPath(t *testing.T) {
	var bufs Buffers

	// Authored length is longer than the drawn path, so the tail keeps
	// going along the last segment.
	curve := NewCurve(objects.SliderPath{
		Type: objects.Linear,
		ControlPoints: []vector.Vector2f{
			vector.NewVec2f(0, 0),
			vector.NewVec2f(100, 0),
		},
		PixelLength: 150,
	}, &bufs)

	if got := curve.PointAt(1); !almostEqual(got, vector.NewVec2f(150, 0), 1e-2) {
		t.Errorf("PointAt(1) = %v, want extension to x=150", got)
	}

	// Progress past 1 still stops at the authored length.
	if got := curve.PointAt(2); !almostEqual(got, vector.NewVec2f(150, 0), 1e-2) {
		t.Errorf("PointAt(2) = %v, want clamp at x=150", got)
	}
}

func TestBezierCurveEndpoints(t *testing.T) {
	var bufs Buffers

	head := vector.NewVec2f(0, 0)
	tail := vector.NewVec2f(100, 100)

	curve := NewCurve(objects.SliderPath{
		Type: objects.Bezier,
		ControlPoints: []vector.Vector2f{
			head,
			vector.NewVec2f(100, 0),
			tail,
		},
	}, &bufs)

	if got := curve.PointAt(0); !almostEqual(got, head, 1e-2) {
		t.Errorf("PointAt(0) = %v, want head", got)
	}

	if got := curve.PointAt(1); !almostEqual(got, tail, 1e-2) {
		t.Errorf("PointAt(1) = %v, want tail", got)
	}

	// The control point bends the path away from the straight line.
	straight := float64(head.Dst(tail))
	if curve.PathLength() <= straight {
		t.Errorf("path length = %v, want > %v", curve.PathLength(), straight)
	}
}

func TestPerfectCurveFollowsArc(t *testing.T) {
	var bufs Buffers

	// Half circle of radius 50 around (50, 0).
	curve := NewCurve(objects.SliderPath{
		Type: objects.Perfect,
		ControlPoints: []vector.Vector2f{
			vector.NewVec2f(0, 0),
			vector.NewVec2f(50, 50),
			vector.NewVec2f(100, 0),
		},
	}, &bufs)

	wantLength := math.Pi * 50
	if math.Abs(curve.PathLength()-wantLength) > 1 {
		t.Errorf("path length = %v, want about %v", curve.PathLength(), wantLength)
	}

	center := vector.NewVec2f(50, 0)
	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		point := curve.PointAt(progress)

		if radius := point.Dst(center); math.Abs(float64(radius)-50) > 1 {
			t.Errorf("PointAt(%v) = %v, radius %v off the arc", progress, point, radius)
		}
	}
}

func TestCatmullCurvePassesThroughPoints(t *testing.T) {
	var bufs Buffers

	points := []vector.Vector2f{
		vector.NewVec2f(0, 0),
		vector.NewVec2f(50, 50),
		vector.NewVec2f(100, 0),
	}

	curve := NewCurve(objects.SliderPath{
		Type:          objects.Catmull,
		ControlPoints: points,
	}, &bufs)

	if got := curve.PointAt(0); !almostEqual(got, points[0], 1e-2) {
		t.Errorf("PointAt(0) = %v, want first control point", got)
	}

	if got := curve.PointAt(1); !almostEqual(got, points[len(points)-1], 1) {
		t.Errorf("PointAt(1) = %v, want last control point", got)
	}
}

func TestBuffersReuse(t *testing.T) {
	var bufs Buffers

	path := objects.SliderPath{
		Type: objects.Linear,
		ControlPoints: []vector.Vector2f{
			vector.NewVec2f(0, 0),
			vector.NewVec2f(100, 0),
		},
		PixelLength: 100,
	}

	first := NewCurve(path, &bufs)
	second := NewCurve(path, &bufs)

	if first.PathLength() != second.PathLength() {
		t.Errorf("reused buffers changed the result: %v vs %v", first.PathLength(), second.PathLength())
	}
}
