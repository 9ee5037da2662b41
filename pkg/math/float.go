// Package math provides the value types used by mesh geometry checks:
// 2D and 3D vectors, byte colours and orthonormal orientation frames.
//
// Every type is generic over the float precision. The f and d suffixed
// aliases name the single and double precision instantiations.
package math

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the set of scalar types a vector can be built from.
type Float interface {
	~float32 | ~float64
}

// Sign returns -1, 0 or 1. NaN yields 0.
func Sign[T Float](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func sincos[T Float](x T) (sin, cos T) {
	if v, ok := any(x).(float32); ok {
		s, c := math32.Sincos(v)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// hashFloat returns the bit pattern of x widened to float64. Both zeros
// map to the same value since they compare equal.
func hashFloat[T Float](x T) uint64 {
	if x == 0 {
		return 0
	}
	return math.Float64bits(float64(x))
}

const (
	hashSeed  = 0x2545F4914F6CDD1D
	hashPrime = 0x100000001B3
)

func hashCombine(h, v uint64) uint64 {
	return (h ^ v) * hashPrime
}
