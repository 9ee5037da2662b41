package math

// Vector2 is a 2D vector.
type Vector2[T Float] struct {
	X, Y T
}

// Vector2f is a single precision 2D vector.
type Vector2f = Vector2[float32]

// Vector2d is a double precision 2D vector.
type Vector2d = Vector2[float64]

// Left2 returns (-1, 0).
func Left2[T Float]() Vector2[T] { return Vector2[T]{-1, 0} }

// Right2 returns (1, 0).
func Right2[T Float]() Vector2[T] { return Vector2[T]{1, 0} }

// Up2 returns (0, 1).
func Up2[T Float]() Vector2[T] { return Vector2[T]{0, 1} }

// Down2 returns (0, -1).
func Down2[T Float]() Vector2[T] { return Vector2[T]{0, -1} }

// One2 returns (1, 1).
func One2[T Float]() Vector2[T] { return Vector2[T]{1, 1} }

// Angle returns the angle vector (cos θ, sin θ) for θ in radians.
func Angle[T Float](radians T) Vector2[T] {
	s, c := sincos(radians)
	return Vector2[T]{c, s}
}

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// Mul returns the component-wise product.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

// Div returns the component-wise quotient.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// AddScalar returns v + s.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v.X + s, v.Y + s}
}

// SubScalar returns v - s.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v.X - s, v.Y - s}
}

// RSub returns s - v.
func (v Vector2[T]) RSub(s T) Vector2[T] {
	return Vector2[T]{s - v.X, s - v.Y}
}

// Scale returns v * s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// DivScalar returns v / s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{v.X / s, v.Y / s}
}

// RDiv returns s / v.
func (v Vector2[T]) RDiv(s T) Vector2[T] {
	return Vector2[T]{s / v.X, s / v.Y}
}

// Dot returns the dot product.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns v turned a quarter counter-clockwise, (-y, x).
func (v Vector2[T]) Cross() Vector2[T] {
	return Vector2[T]{-v.Y, v.X}
}

// PerpDot returns the z component of the 3D cross product of v and other.
func (v Vector2[T]) PerpDot(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// LengthSquared returns the sum of squares.
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vector2[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vector2[T]) Normalize() Vector2[T] {
	l := v.Length()
	if l == 0 {
		return Vector2[T]{}
	}
	return Vector2[T]{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vector2[T]) Distance(other Vector2[T]) T {
	return v.Sub(other).Length()
}

// IsZero reports whether both components are exactly zero.
func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates v by the angle vector (cos θ, sin θ).
func (v Vector2[T]) Rotate(angle Vector2[T]) Vector2[T] {
	return Vector2[T]{
		angle.X*v.X - angle.Y*v.Y,
		angle.Y*v.X + angle.X*v.Y,
	}
}

// Equals reports exact component equality.
func (v Vector2[T]) Equals(other Vector2[T]) bool {
	return v == other
}

// Less orders vectors by X, then Y.
func (v Vector2[T]) Less(other Vector2[T]) bool {
	return v.Compare(other) < 0
}

// Greater is the inverse of Less.
func (v Vector2[T]) Greater(other Vector2[T]) bool {
	return v.Compare(other) > 0
}

// Compare returns -1, 0 or 1 ordering by X, then Y.
func (v Vector2[T]) Compare(other Vector2[T]) int {
	switch {
	case v.X < other.X:
		return -1
	case v.X > other.X:
		return 1
	case v.Y < other.Y:
		return -1
	case v.Y > other.Y:
		return 1
	}
	return 0
}

// Hash returns a hash consistent with Equals.
func (v Vector2[T]) Hash() uint64 {
	h := hashCombine(hashSeed, hashFloat(v.X))
	return hashCombine(h, hashFloat(v.Y))
}

// ToVector2d widens v to double precision.
func (v Vector2[T]) ToVector2d() Vector2d {
	return Vector2d{float64(v.X), float64(v.Y)}
}

// ToVector2f narrows v to single precision. Precision may be lost.
func (v Vector2[T]) ToVector2f() Vector2f {
	return Vector2f{float32(v.X), float32(v.Y)}
}

// Lerp2 returns (1-t)*a + t*b.
func Lerp2[T Float](a, b Vector2[T], t T) Vector2[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Hermite2 evaluates the cubic Hermite curve through p0 and p1 with
// tangents m0 and m1 at t in [0, 1].
func Hermite2[T Float](p0, m0, p1, m1 Vector2[T], t T) Vector2[T] {
	h00, h10, h01, h11 := hermiteBasis(t)
	return p0.Scale(h00).Add(m0.Scale(h10)).Add(p1.Scale(h01)).Add(m1.Scale(h11))
}

func hermiteBasis[T Float](t T) (h00, h10, h01, h11 T) {
	t2 := t * t
	t3 := t2 * t
	h00 = 2*t3 - 3*t2 + 1
	h10 = t3 - 2*t2 + t
	h01 = 3*t2 - 2*t3
	h11 = t3 - t2
	return h00, h10, h01, h11
}
