package curves

import (
	"math"

	"github.com/Mamestagram/mamestagram-pp/beatmap/objects"
	"github.com/Mamestagram/mamestagram-pp/framework/math/mutils"
	"github.com/Mamestagram/mamestagram-pp/framework/math/vector"
)

const (
	// bezierToleranceSq is the squared flatness tolerance of the adaptive
	// Bézier subdivision.
	bezierToleranceSq = 0.25 * 0.25

	// circularArcTolerance is the sagitta tolerance of arc stepping.
	circularArcTolerance = 0.1

	// catmullDetail is the sample count per Catmull segment.
	catmullDetail = 50
)

// Buffers is scratch storage reused across sliders of one calculation run
// so path flattening does not reallocate per object.
type Buffers struct {
	points []vector.Vector2f
	stack  [][]vector.Vector2f
	deCast []vector.Vector2f
}

// Flatten converts a raw slider path to a polyline. The first point is the
// slider head; duplicate consecutive points are dropped. The returned slice
// is owned by the buffer and only valid until the next Flatten call.
func (bufs *Buffers) Flatten(path objects.SliderPath) []vector.Vector2f {
	bufs.points = bufs.points[:0]

	switch path.Type {
	case objects.Linear:
		for _, p := range path.ControlPoints {
			bufs.push(p)
		}
	case objects.Catmull:
		bufs.flattenCatmull(path.ControlPoints)
	case objects.Perfect:
		if len(path.ControlPoints) == 3 {
			bufs.flattenCircularArc(path.ControlPoints[0], path.ControlPoints[1], path.ControlPoints[2])
		} else {
			bufs.flattenBezier(path.ControlPoints)
		}
	default:
		// Bézier, split into segments at repeated control points (red anchors).
		start := 0
		for i := 1; i <= len(path.ControlPoints); i++ {
			if i == len(path.ControlPoints) || path.ControlPoints[i] == path.ControlPoints[i-1] {
				if i-start > 1 {
					bufs.flattenBezier(path.ControlPoints[start:i])
				}

				start = i
			}
		}
	}

	return bufs.points
}

func (bufs *Buffers) push(p vector.Vector2f) {
	n := len(bufs.points)
	if n == 0 || bufs.points[n-1] != p {
		bufs.points = append(bufs.points, p)
	}
}

func (bufs *Buffers) flattenBezier(controlPoints []vector.Vector2f) {
	bufs.stack = bufs.stack[:0]
	bufs.stack = append(bufs.stack, append([]vector.Vector2f(nil), controlPoints...))

	for len(bufs.stack) > 0 {
		current := bufs.stack[len(bufs.stack)-1]
		bufs.stack = bufs.stack[:len(bufs.stack)-1]

		if bezierFlatEnough(current) {
			bufs.push(current[0])
			continue
		}

		left, right := bufs.subdivide(current)
		bufs.stack = append(bufs.stack, right, left)
	}

	bufs.push(controlPoints[len(controlPoints)-1])
}

func bezierFlatEnough(controlPoints []vector.Vector2f) bool {
	for i := 1; i < len(controlPoints)-1; i++ {
		second := controlPoints[i-1].Sub(controlPoints[i].Scl(2)).Add(controlPoints[i+1])
		if float64(second.LenSq()) > bezierToleranceSq {
			return false
		}
	}

	return true
}

// subdivide splits a Bézier at t=0.5 via de Casteljau.
func (bufs *Buffers) subdivide(controlPoints []vector.Vector2f) (left, right []vector.Vector2f) {
	n := len(controlPoints)

	if cap(bufs.deCast) < n {
		bufs.deCast = make([]vector.Vector2f, n)
	}

	midpoints := bufs.deCast[:n]
	copy(midpoints, controlPoints)

	left = make([]vector.Vector2f, n)
	right = make([]vector.Vector2f, n)

	for i := 0; i < n; i++ {
		left[i] = midpoints[0]
		right[n-1-i] = midpoints[n-1-i]

		for j := 0; j < n-i-1; j++ {
			midpoints[j] = midpoints[j].Add(midpoints[j+1]).Scl(0.5)
		}
	}

	return left, right
}

func (bufs *Buffers) flattenCatmull(points []vector.Vector2f) {
	if len(points) == 0 {
		return
	}

	bufs.push(points[0])

	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		for s := 1; s <= catmullDetail; s++ {
			bufs.push(catmullPoint(p0, p1, p2, p3, float32(s)/catmullDetail))
		}
	}
}

func catmullPoint(p0, p1, p2, p3 vector.Vector2f, t float32) vector.Vector2f {
	t2 := t * t
	t3 := t2 * t

	return vector.NewVec2f(
		0.5*(2*p1.X+(-p0.X+p2.X)*t+(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2+(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		0.5*(2*p1.Y+(-p0.Y+p2.Y)*t+(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2+(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	)
}

func (bufs *Buffers) flattenCircularArc(p1, p2, p3 vector.Vector2f) {
	center, ok := circumcenter(p1, p2, p3)
	if !ok {
		// Degenerate (collinear) arc, same fallback as the client.
		bufs.flattenBezier([]vector.Vector2f{p1, p2, p3})
		return
	}

	radius := float64(center.Dst(p1))

	angleStart := math.Atan2(float64(p1.Y-center.Y), float64(p1.X-center.X))
	angleEnd := math.Atan2(float64(p3.Y-center.Y), float64(p3.X-center.X))

	dir := 1.0
	if p2.Sub(p1).Crs(p3.Sub(p2)) < 0 {
		dir = -1.0
	}

	delta := angleEnd - angleStart
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}

	if dir < 0 && delta > 0 {
		delta -= 2 * math.Pi
	} else if dir > 0 && delta < 0 {
		delta += 2 * math.Pi
	}

	step := 2 * math.Acos(mutils.Clamp(1-circularArcTolerance/radius, -1, 1))
	if step <= 0 || math.IsNaN(step) || step > math.Pi {
		step = math.Pi
	}

	steps := max(int(math.Ceil(math.Abs(delta)/step)), 2)

	bufs.push(p1)
	for i := 1; i < steps; i++ {
		angle := angleStart + delta*float64(i)/float64(steps)
		bufs.push(vector.NewVec2f(
			center.X+float32(math.Cos(angle)*radius),
			center.Y+float32(math.Sin(angle)*radius),
		))
	}
	bufs.push(p3)
}

func circumcenter(a, b, c vector.Vector2f) (vector.Vector2f, bool) {
	d := 2 * float64(a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-8 {
		return vector.Vector2f{}, false
	}

	a2 := float64(a.LenSq())
	b2 := float64(b.LenSq())
	c2 := float64(c.LenSq())

	x := (a2*float64(b.Y-c.Y) + b2*float64(c.Y-a.Y) + c2*float64(a.Y-b.Y)) / d
	y := (a2*float64(c.X-b.X) + b2*float64(a.X-c.X) + c2*float64(b.X-a.X)) / d

	return vector.NewVec2f(float32(x), float32(y)), true
}
