package filter

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-filters-mcp/internal/raster"
)

// BoundaryPolicy decides what a window sees when it reaches past the edge
// of the image.
type BoundaryPolicy int

const (
	// Wrap takes pixels from the opposite side of the image.
	Wrap BoundaryPolicy = iota
	// Stretch repeats the nearest edge pixel.
	Stretch
	// Black treats every out-of-bounds pixel as 0.
	Black
	// White treats every out-of-bounds pixel as 255.
	White
	// Gray treats every out-of-bounds pixel as 128.
	Gray
)

var policyNames = []string{
	Wrap:    "wrap",
	Stretch: "stretch",
	Black:   "black",
	White:   "white",
	Gray:    "gray",
}

func (p BoundaryPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("BoundaryPolicy(%d)", int(p))
	}
	return policyNames[p]
}

// ParseBoundaryPolicy accepts the lower-case names printed by String,
// ignoring case and surrounding space.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return BoundaryPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown boundary policy %q (want one of %s)", s, strings.Join(policyNames, ", "))
}

// Sample returns the single-channel value at (x, y).
//
// In-bounds coordinates always read the image directly. Out-of-bounds
// coordinates are resolved by the policy. The channel is the low byte of
// the packed pixel, so callers wanting luminance must convert to grayscale
// first. An empty image reads as black under Wrap and Stretch.
func (p BoundaryPolicy) Sample(img *raster.Image, x, y int) uint8 {
	if img.InBounds(x, y) {
		return lowByte(img.ARGB(x, y))
	}

	switch p {
	case Black:
		return 0x00
	case White:
		return 0xff
	case Gray:
		return 0x80
	}

	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return 0x00
	}

	switch p {
	case Stretch:
		return lowByte(img.ARGB(clamp(x, 0, w-1), clamp(y, 0, h-1)))
	case Wrap:
		return lowByte(img.ARGB(wrap(x, w), wrap(y, h)))
	default:
		panic(fmt.Sprintf("filter: invalid boundary policy %d", int(p)))
	}
}

func lowByte(argb uint32) uint8 {
	return uint8(argb & 0xff)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// wrap reduces v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
