package math

// Orientation3 is a 3D coordinate frame. After Orthonormalize the axes
// are unit length, mutually perpendicular and Z = X × Y.
type Orientation3[T Float] struct {
	X, Y, Z Vector3[T]
}

// Orientation3f is a single precision 3D frame.
type Orientation3f = Orientation3[float32]

// Orientation3d is a double precision 3D frame.
type Orientation3d = Orientation3[float64]

// DefaultOrientation3 returns the world frame (Right, Up, Forward).
func DefaultOrientation3[T Float]() Orientation3[T] {
	return Orientation3[T]{Right[T](), Up[T](), Forward[T]()}
}

// Orthonormalize repairs an approximate or degenerate frame.
//
// X is kept in direction and Y, Z are rebuilt around it. If X is zero
// Y takes its place, then Z. Whenever a cross product collapses, a world
// axis not parallel to the surviving axis is used instead. The all-zero
// frame becomes the world frame.
func (o Orientation3[T]) Orthonormalize() Orientation3[T] {
	x := o.X.Normalize()
	if !x.IsZero() {
		y := o.Z.Cross(x).Normalize()
		if y.IsZero() {
			y = x.Cross(o.Y).Cross(x).Normalize()
		}
		if y.IsZero() {
			y = perpendicular(x, Up[T](), Forward[T](), Right[T]())
		}
		return Orientation3[T]{x, y, x.Cross(y)}
	}

	y := o.Y.Normalize()
	if !y.IsZero() {
		x = y.Cross(o.Z).Normalize()
		if x.IsZero() {
			x = perpendicular(y, Right[T](), Forward[T](), Up[T]())
		}
		return Orientation3[T]{x, y, x.Cross(y)}
	}

	z := o.Z.Normalize()
	if !z.IsZero() {
		x = perpendicular(z, Right[T](), Up[T](), Forward[T]())
		return Orientation3[T]{x, z.Cross(x), z}
	}

	return DefaultOrientation3[T]()
}

// perpendicular returns the first candidate whose component orthogonal
// to the unit vector n is non-zero, normalized. Three world axes always
// contain one that is not parallel to n.
func perpendicular[T Float](n Vector3[T], candidates ...Vector3[T]) Vector3[T] {
	for _, c := range candidates {
		p := c.Sub(n.Scale(c.Dot(n))).Normalize()
		if !p.IsZero() {
			return p
		}
	}
	return Vector3[T]{}
}

// Apply maps a vector expressed in this frame into world space.
func (o Orientation3[T]) Apply(v Vector3[T]) Vector3[T] {
	return o.X.Scale(v.X).Add(o.Y.Scale(v.Y)).Add(o.Z.Scale(v.Z))
}

// Compose returns the frame relative expressed in world space, treating
// relative as a frame local to o. This is the matrix product of the two
// frames with axes as rows.
func (o Orientation3[T]) Compose(relative Orientation3[T]) Orientation3[T] {
	return Orientation3[T]{
		X: o.Apply(relative.X),
		Y: o.Apply(relative.Y),
		Z: o.Apply(relative.Z),
	}
}

// RotateAbout rotates every axis around the unit axis by the angle
// vector (cos θ, sin θ).
func (o Orientation3[T]) RotateAbout(axis Vector3[T], angle Vector2[T]) Orientation3[T] {
	return Orientation3[T]{
		X: o.X.RotateAbout(axis, angle),
		Y: o.Y.RotateAbout(axis, angle),
		Z: o.Z.RotateAbout(axis, angle),
	}
}

// Transpose treats the axes as matrix rows and returns the transpose.
// For an orthonormal frame this is its inverse.
func (o Orientation3[T]) Transpose() Orientation3[T] {
	return Orientation3[T]{
		X: Vector3[T]{o.X.X, o.Y.X, o.Z.X},
		Y: Vector3[T]{o.X.Y, o.Y.Y, o.Z.Y},
		Z: Vector3[T]{o.X.Z, o.Y.Z, o.Z.Z},
	}
}

// Hash returns a hash consistent with ==.
func (o Orientation3[T]) Hash() uint64 {
	h := hashCombine(o.X.Hash(), o.Y.Hash())
	return hashCombine(h, o.Z.Hash())
}

// ToOrientation3f narrows o to single precision.
func (o Orientation3[T]) ToOrientation3f() Orientation3f {
	return Orientation3f{o.X.ToVector3f(), o.Y.ToVector3f(), o.Z.ToVector3f()}
}

// ToOrientation3d widens o to double precision.
func (o Orientation3[T]) ToOrientation3d() Orientation3d {
	return Orientation3d{o.X.ToVector3d(), o.Y.ToVector3d(), o.Z.ToVector3d()}
}

// Nlerp3 interpolates the axes linearly and orthonormalizes the result.
// It is not a spherical interpolation.
func Nlerp3[T Float](p0, p1 Orientation3[T], t T) Orientation3[T] {
	return Orientation3[T]{
		X: Lerp3(p0.X, p1.X, t),
		Y: Lerp3(p0.Y, p1.Y, t),
		Z: Lerp3(p0.Z, p1.Z, t),
	}.Orthonormalize()
}
