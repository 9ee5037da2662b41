package math

// Orientation2 is a 2D coordinate frame. After Orthonormalize the axes
// are unit length, perpendicular, and Y is X turned a quarter
// counter-clockwise.
type Orientation2[T Float] struct {
	X, Y Vector2[T]
}

// Orientation2f is a single precision 2D frame.
type Orientation2f = Orientation2[float32]

// Orientation2d is a double precision 2D frame.
type Orientation2d = Orientation2[float64]

// DefaultOrientation2 returns the world frame (Right2, Up2).
func DefaultOrientation2[T Float]() Orientation2[T] {
	return Orientation2[T]{Right2[T](), Up2[T]()}
}

// Orthonormalize repairs an approximate frame. Both axes are normalized
// and their bisector is rotated by -45° and +45° to produce the new X
// and Y. A zero axis is rebuilt from the other one; if both are zero the
// world frame is returned.
func (o Orientation2[T]) Orthonormalize() Orientation2[T] {
	x := o.X.Normalize()
	y := o.Y.Normalize()
	switch {
	case x.IsZero() && y.IsZero():
		return DefaultOrientation2[T]()
	case x.IsZero():
		x = Vector2[T]{y.Y, -y.X}
	case y.IsZero():
		y = x.Cross()
	}

	h := x.Add(y).Normalize()
	if h.IsZero() {
		// Opposite axes have no bisector; keep X.
		return Orientation2[T]{x, x.Cross()}
	}
	c := sqrt(T(0.5))
	return Orientation2[T]{
		X: h.Rotate(Vector2[T]{c, -c}),
		Y: h.Rotate(Vector2[T]{c, c}),
	}
}

// Rotate rotates both axes by the angle vector (cos θ, sin θ).
func (o Orientation2[T]) Rotate(angle Vector2[T]) Orientation2[T] {
	return Orientation2[T]{o.X.Rotate(angle), o.Y.Rotate(angle)}
}

// Apply maps a vector expressed in this frame into world space.
func (o Orientation2[T]) Apply(v Vector2[T]) Vector2[T] {
	return o.X.Scale(v.X).Add(o.Y.Scale(v.Y))
}

// Compose returns the frame relative expressed in world space, treating
// relative as a frame local to o.
func (o Orientation2[T]) Compose(relative Orientation2[T]) Orientation2[T] {
	return Orientation2[T]{o.Apply(relative.X), o.Apply(relative.Y)}
}

// Transpose treats the axes as matrix rows and returns the transpose.
func (o Orientation2[T]) Transpose() Orientation2[T] {
	return Orientation2[T]{
		X: Vector2[T]{o.X.X, o.Y.X},
		Y: Vector2[T]{o.X.Y, o.Y.Y},
	}
}

// Hash returns a hash consistent with ==.
func (o Orientation2[T]) Hash() uint64 {
	return hashCombine(o.X.Hash(), o.Y.Hash())
}

// ToOrientation2f narrows o to single precision.
func (o Orientation2[T]) ToOrientation2f() Orientation2f {
	return Orientation2f{o.X.ToVector2f(), o.Y.ToVector2f()}
}

// ToOrientation2d widens o to double precision.
func (o Orientation2[T]) ToOrientation2d() Orientation2d {
	return Orientation2d{o.X.ToVector2d(), o.Y.ToVector2d()}
}

// Nlerp2 interpolates the axes linearly and orthonormalizes the result.
func Nlerp2[T Float](p0, p1 Orientation2[T], t T) Orientation2[T] {
	return Orientation2[T]{
		X: Lerp2(p0.X, p1.X, t),
		Y: Lerp2(p0.Y, p1.Y, t),
	}.Orthonormalize()
}
