package raster

import (
	"fmt"
	"image/color"
)

// ChannelRangeError reports a colour channel outside 0-255.
type ChannelRangeError struct {
	Channel string // "a", "r", "g" or "b"
	Value   int
}

func (e *ChannelRangeError) Error() string {
	return fmt.Sprintf("%d is not a valid value, must be 0 <= %s <= 255", e.Value, e.Channel)
}

// Color is a single 8-bit-per-channel ARGB pixel.
//
// The packed form keeps alpha in bits 24-31, red in 16-23, green in 8-15
// and blue in 0-7. A Color is immutable once built.
type Color struct {
	a, r, g, b uint8
	argb       uint32
}

// NewColor builds a Color from separate channel values.
//
// Returns a *ChannelRangeError naming the first channel (in a, r, g, b
// order) that falls outside 0-255.
func NewColor(a, r, g, b int) (Color, error) {
	for _, ch := range []struct {
		name string
		v    int
	}{{"a", a}, {"r", r}, {"g", g}, {"b", b}} {
		if ch.v < 0 || ch.v > 255 {
			return Color{}, &ChannelRangeError{Channel: ch.name, Value: ch.v}
		}
	}
	return FromARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
}

// NewRGB builds a fully opaque Color. It is NewColor(255, r, g, b).
func NewRGB(r, g, b int) (Color, error) {
	return NewColor(255, r, g, b)
}

// FromARGB unpacks a 32-bit ARGB value. It never fails.
func FromARGB(argb uint32) Color {
	return Color{
		a:    uint8(argb >> 24 & 0xff),
		r:    uint8(argb >> 16 & 0xff),
		g:    uint8(argb >> 8 & 0xff),
		b:    uint8(argb & 0xff),
		argb: argb,
	}
}

// Opaque builds a fully opaque Color from byte channels, which cannot be
// out of range.
func Opaque(r, g, b uint8) Color {
	return FromARGB(0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Gray returns the opaque gray (v, v, v).
func Gray(v uint8) Color {
	return Opaque(v, v, v)
}

func (c Color) A() uint8 { return c.a }
func (c Color) R() uint8 { return c.r }
func (c Color) G() uint8 { return c.g }
func (c Color) B() uint8 { return c.b }

// ARGB returns the packed representation.
func (c Color) ARGB() uint32 { return c.argb }

// NRGBA converts to the standard library's non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

func (c Color) String() string {
	return fmt.Sprintf("0x%08X", c.argb)
}
