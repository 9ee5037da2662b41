package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Color24 is an RGB colour with one byte per channel.
type Color24 struct {
	R, G, B uint8
}

// Named colours.
var (
	Black   = Color24{0, 0, 0}
	White   = Color24{255, 255, 255}
	Red     = Color24{255, 0, 0}
	Green   = Color24{0, 255, 0}
	Blue    = Color24{0, 0, 255}
	Cyan    = Color24{0, 255, 255}
	Magenta = Color24{255, 0, 255}
	Yellow  = Color24{255, 255, 0}
)

// Equals reports channel equality.
func (c Color24) Equals(other Color24) bool {
	return c == other
}

// Hash packs the channels into a single value.
func (c Color24) Hash() uint64 {
	return uint64(c.R)<<16 | uint64(c.G)<<8 | uint64(c.B)
}

// String returns the colour as #rrggbb.
func (c Color24) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Vector returns the channels scaled to [0, 1].
func (c Color24) Vector() Vector3f {
	return Vector3f{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Color24FromVector converts channels in [0, 1] to bytes, clamping
// values outside the range.
func Color24FromVector(v Vector3f) Color24 {
	return Color24{channel(v.X), channel(v.Y), channel(v.Z)}
}

func channel(x float32) uint8 {
	switch {
	case x <= 0 || math32.IsNaN(x):
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}
