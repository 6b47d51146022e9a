package preprocessing

import (
	"testing"

	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

func circleAt(time float64, x, y float32) *Object {
	pos := vector.NewVec2f(x, y)

	return &Object{
		kind:       objects.Circle,
		StartTime:  time,
		EndTime:    time,
		Pos:        pos,
		EndPos:     pos,
		LazyEndPos: pos,
	}
}

func TestStackingCoincidentCircles(t *testing.T) {
	objs := []*Object{
		circleAt(0, 100, 100),
		circleAt(100, 100, 100),
		circleAt(200, 100, 100),
	}

	ResolveStacking(objs, 14, 500)

	want := []float64{2, 1, 0}
	for i, obj := range objs {
		if obj.StackHeight != want[i] {
			t.Errorf("object %d: stack height = %v, want %v", i, obj.StackHeight, want[i])
		}
	}
}

func TestStackingUnderSliderEnd(t *testing.T) {
	slider := &Object{
		kind:       objects.Slider,
		StartTime:  0,
		EndTime:    200,
		Pos:        vector.NewVec2f(50, 100),
		EndPos:     vector.NewVec2f(150, 100),
		LazyEndPos: vector.NewVec2f(150, 100),
	}

	objs := []*Object{
		slider,
		circleAt(300, 150, 100),
		circleAt(400, 150, 100),
	}

	ResolveStacking(objs, 14, 1000)

	if slider.StackHeight != 0 {
		t.Errorf("slider stack height = %v, want 0", slider.StackHeight)
	}

	// Circles on the slider end go below it.
	want := []float64{-1, -2}
	for i, obj := range objs[1:] {
		if obj.StackHeight != want[i] {
			t.Errorf("circle %d: stack height = %v, want %v", i, obj.StackHeight, want[i])
		}
	}
}

func TestStackingNoCoincidence(t *testing.T) {
	objs := []*Object{
		circleAt(0, 100, 100),
		circleAt(100, 200, 100),
		circleAt(200, 300, 100),
	}

	ResolveStacking(objs, 14, 500)

	for i, obj := range objs {
		if obj.StackHeight != 0 {
			t.Errorf("object %d: stack height = %v, want 0", i, obj.StackHeight)
		}
	}
}

func TestStackingOutsideTimeThreshold(t *testing.T) {
	objs := []*Object{
		circleAt(0, 100, 100),
		circleAt(2000, 100, 100),
	}

	ResolveStacking(objs, 14, 500)

	for i, obj := range objs {
		if obj.StackHeight != 0 {
			t.Errorf("object %d: stack height = %v, want 0", i, obj.StackHeight)
		}
	}
}

func TestLegacyStackingCoincidentCircles(t *testing.T) {
	objs := []*Object{
		circleAt(0, 100, 100),
		circleAt(100, 100, 100),
		circleAt(200, 100, 100),
	}

	ResolveStacking(objs, 5, 500)

	// The legacy resolver counts followers onto the first object.
	if objs[0].StackHeight != 2 {
		t.Errorf("base stack height = %v, want 2", objs[0].StackHeight)
	}
}
