package raster

import "golang.org/x/exp/constraints"

func minOf[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func maxOf[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

func absOf[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ordered returns a and b with the smaller one first.
func ordered[T constraints.Ordered](a, b T) (T, T) {
	if a > b {
		return b, a
	}
	return a, b
}
