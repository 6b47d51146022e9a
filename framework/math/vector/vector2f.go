package vector

import (
	"math"
)

// Vector2f is a 2d vector in playfield space. Positions are kept in float32
// like the game client stores them; lengths and angles are promoted to
// float64 by the callers that need the precision.
type Vector2f struct {
	X, Y float32
}

func NewVec2f(x, y float32) Vector2f {
	return Vector2f{x, y}
}

func (v Vector2f) Add(v1 Vector2f) Vector2f {
	return Vector2f{v.X + v1.X, v.Y + v1.Y}
}

func (v Vector2f) Sub(v1 Vector2f) Vector2f {
	return Vector2f{v.X - v1.X, v.Y - v1.Y}
}

func (v Vector2f) Scl(s float32) Vector2f {
	return Vector2f{v.X * s, v.Y * s}
}

func (v Vector2f) Dot(v1 Vector2f) float32 {
	return v.X*v1.X + v.Y*v1.Y
}

// Crs is the z component of the 3d cross product.
func (v Vector2f) Crs(v1 Vector2f) float32 {
	return v.X*v1.Y - v.Y*v1.X
}

func (v Vector2f) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v Vector2f) LenSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2f) Dst(v1 Vector2f) float32 {
	return v.Sub(v1).Len()
}

func (v Vector2f) DstSq(v1 Vector2f) float32 {
	return v.Sub(v1).LenSq()
}

func (v Vector2f) Nor() Vector2f {
	length := v.Len()

	if length == 0 {
		return v
	}

	return Vector2f{v.X / length, v.Y / length}
}

func (v Vector2f) Lerp(v1 Vector2f, t float32) Vector2f {
	return Vector2f{v.X + (v1.X-v.X)*t, v.Y + (v1.Y-v.Y)*t}
}

func (v Vector2f) AngleRV(v1 Vector2f) float64 {
	return math.Atan2(float64(v.Y-v1.Y), float64(v.X-v1.X))
}
