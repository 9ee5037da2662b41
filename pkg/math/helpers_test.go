package math

import "math"

func near[T Float](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}

func near3[T Float](a, b Vector3[T], eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

func near2[T Float](a, b Vector2[T], eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps)
}

func nearFrame3[T Float](a, b Orientation3[T], eps float64) bool {
	return near3(a.X, b.X, eps) && near3(a.Y, b.Y, eps) && near3(a.Z, b.Z, eps)
}

func nearFrame2[T Float](a, b Orientation2[T], eps float64) bool {
	return near2(a.X, b.X, eps) && near2(a.Y, b.Y, eps)
}
