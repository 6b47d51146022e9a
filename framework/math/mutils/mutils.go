package mutils

import (
	"cmp"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

func Clamp[T cmp.Ordered](v, minV, maxV T) T {
	return min(maxV, max(minV, v))
}

func Lerp[T Number](v1, v2, t T) T {
	return v1 + (v2-v1)*t
}
