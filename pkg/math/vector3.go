package math

// Vector3 is a 3D vector.
type Vector3[T Float] struct {
	X, Y, Z T
}

// Vector3f is a single precision 3D vector.
type Vector3f = Vector3[float32]

// Vector3d is a double precision 3D vector.
type Vector3d = Vector3[float64]

// World axes.
func Right[T Float]() Vector3[T]   { return Vector3[T]{1, 0, 0} }
func Left[T Float]() Vector3[T]    { return Vector3[T]{-1, 0, 0} }
func Up[T Float]() Vector3[T]      { return Vector3[T]{0, 1, 0} }
func Down[T Float]() Vector3[T]    { return Vector3[T]{0, -1, 0} }
func Forward[T Float]() Vector3[T] { return Vector3[T]{0, 0, 1} }
func Back[T Float]() Vector3[T]    { return Vector3[T]{0, 0, -1} }

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the component-wise product.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the component-wise quotient.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// AddScalar returns v + s.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar returns v - s.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

// RSub returns s - v.
func (v Vector3[T]) RSub(s T) Vector3[T] {
	return Vector3[T]{s - v.X, s - v.Y, s - v.Z}
}

// Scale returns v * s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v / s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// RDiv returns s / v.
func (v Vector3[T]) RDiv(s T) Vector3[T] {
	return Vector3[T]{s / v.X, s / v.Y, s / v.Z}
}

// Dot returns the dot product.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the sum of squares.
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vector3[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vector3[T]) Normalize() Vector3[T] {
	l := v.Length()
	if l == 0 {
		return Vector3[T]{}
	}
	return Vector3[T]{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vector3[T]) Distance(other Vector3[T]) T {
	return v.Sub(other).Length()
}

// IsZero reports whether all components are exactly zero.
func (v Vector3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// XZ returns the XZ components as Vector2.
func (v Vector3[T]) XZ() Vector2[T] {
	return Vector2[T]{v.X, v.Z}
}

// RotateXY rotates v in the XY plane by the angle vector (cos θ, sin θ).
func (v Vector3[T]) RotateXY(angle Vector2[T]) Vector3[T] {
	return Vector3[T]{
		angle.X*v.X - angle.Y*v.Y,
		angle.Y*v.X + angle.X*v.Y,
		v.Z,
	}
}

// RotateXZ rotates v in the XZ plane by the angle vector (cos θ, sin θ).
func (v Vector3[T]) RotateXZ(angle Vector2[T]) Vector3[T] {
	return Vector3[T]{
		angle.X*v.X - angle.Y*v.Z,
		v.Y,
		angle.Y*v.X + angle.X*v.Z,
	}
}

// RotateYZ rotates v in the YZ plane by the angle vector (cos θ, sin θ).
func (v Vector3[T]) RotateYZ(angle Vector2[T]) Vector3[T] {
	return Vector3[T]{
		v.X,
		angle.X*v.Y - angle.Y*v.Z,
		angle.Y*v.Y + angle.X*v.Z,
	}
}

// RotateAbout rotates v counter-clockwise around the unit axis by the
// angle vector (cos θ, sin θ), following Rodrigues' rotation formula.
func (v Vector3[T]) RotateAbout(axis Vector3[T], angle Vector2[T]) Vector3[T] {
	cosa, sina := angle.X, angle.Y
	cosb := 1 - cosa
	d := axis
	return Vector3[T]{
		(cosa+cosb*d.X*d.X)*v.X + (cosb*d.X*d.Y-sina*d.Z)*v.Y + (cosb*d.X*d.Z+sina*d.Y)*v.Z,
		(cosb*d.X*d.Y+sina*d.Z)*v.X + (cosa+cosb*d.Y*d.Y)*v.Y + (cosb*d.Y*d.Z-sina*d.X)*v.Z,
		(cosb*d.X*d.Z-sina*d.Y)*v.X + (cosb*d.Y*d.Z+sina*d.X)*v.Y + (cosa+cosb*d.Z*d.Z)*v.Z,
	}
}

// Equals reports exact component equality.
func (v Vector3[T]) Equals(other Vector3[T]) bool {
	return v == other
}

// Less orders vectors by X, then Y, then Z.
func (v Vector3[T]) Less(other Vector3[T]) bool {
	return v.Compare(other) < 0
}

// Greater is the inverse of Less.
func (v Vector3[T]) Greater(other Vector3[T]) bool {
	return v.Compare(other) > 0
}

// Compare returns -1, 0 or 1 ordering by X, then Y, then Z.
func (v Vector3[T]) Compare(other Vector3[T]) int {
	switch {
	case v.X < other.X:
		return -1
	case v.X > other.X:
		return 1
	case v.Y < other.Y:
		return -1
	case v.Y > other.Y:
		return 1
	case v.Z < other.Z:
		return -1
	case v.Z > other.Z:
		return 1
	}
	return 0
}

// Hash returns a hash consistent with Equals.
func (v Vector3[T]) Hash() uint64 {
	h := hashCombine(hashSeed, hashFloat(v.X))
	h = hashCombine(h, hashFloat(v.Y))
	return hashCombine(h, hashFloat(v.Z))
}

// ToVector3d widens v to double precision.
func (v Vector3[T]) ToVector3d() Vector3d {
	return Vector3d{float64(v.X), float64(v.Y), float64(v.Z)}
}

// ToVector3f narrows v to single precision. Precision may be lost.
func (v Vector3[T]) ToVector3f() Vector3f {
	return Vector3f{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Lerp3 returns (1-t)*a + t*b.
func Lerp3[T Float](a, b Vector3[T], t T) Vector3[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Hermite3 evaluates the cubic Hermite curve through p0 and p1 with
// tangents m0 and m1 at t in [0, 1].
func Hermite3[T Float](p0, m0, p1, m1 Vector3[T], t T) Vector3[T] {
	h00, h10, h01, h11 := hermiteBasis(t)
	return p0.Scale(h00).Add(m0.Scale(h10)).Add(p1.Scale(h01)).Add(m1.Scale(h11))
}
