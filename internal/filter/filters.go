package filter

import (
	"fmt"

	"github.com/ironsheep/image-filters-mcp/internal/raster"
)

// DegenerateRangeError is returned by MaxRangeStretch when every pixel has
// the same value, or there are no pixels, leaving no range to stretch.
type DegenerateRangeError struct {
	Value uint8

	// Empty is set when the image has no pixels; Value is then meaningless.
	Empty bool
}

func (e *DegenerateRangeError) Error() string {
	if e.Empty {
		return "cannot stretch an empty image"
	}
	return fmt.Sprintf("cannot stretch a uniform image: every pixel is %d", e.Value)
}

// Grayscale converts every pixel to its ITU-R BT.601 luminance
// (0.299*R + 0.587*G + 0.114*B), truncated, keeping the source alpha.
func Grayscale(img *raster.Image) *raster.Image {
	w, h := img.Width(), img.Height()
	out := raster.New(w, h)

	forEachRow(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				c := img.Color(x, y)
				// Integer form of the weights so pure grays map to themselves.
				gray := uint32((299*int(c.R()) + 587*int(c.G()) + 114*int(c.B())) / 1000)
				out.SetARGB(x, y, uint32(c.A())<<24|gray<<16|gray<<8|gray)
			}
		}
	})
	return out
}

// GradientVertical highlights vertical edges: grayscale, then the 3x3
// VerticalKernel with Stretch borders, absolute value. Output is opaque.
func GradientVertical(img *raster.Image) *raster.Image {
	return Convolve(Grayscale(img), VerticalKernel, Stretch)
}

// GradientHorizontal highlights horizontal edges the same way with
// HorizontalKernel.
func GradientHorizontal(img *raster.Image) *raster.Image {
	return Convolve(Grayscale(img), HorizontalKernel, Stretch)
}

// EdgeDetect is the saturating sum of both gradient maps.
func EdgeDetect(img *raster.Image) *raster.Image {
	return Compose(GradientHorizontal(img), GradientVertical(img))
}

// Range returns the smallest and largest low byte across the image.
// An empty image reports lo=255, hi=0.
func Range(img *raster.Image) (lo, hi uint8) {
	lo, hi = 0xff, 0x00
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			v := lowByte(img.ARGB(x, y))
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// MaxRangeStretch linearly maps the observed [lo, hi] range of the low
// byte onto [0, 255] and writes opaque gray pixels.
//
// A uniform (or empty) image has no range and fails with a
// *DegenerateRangeError.
func MaxRangeStretch(img *raster.Image) (*raster.Image, error) {
	if img.Width() == 0 || img.Height() == 0 {
		return nil, &DegenerateRangeError{Empty: true}
	}
	lo, hi := Range(img)
	if hi <= lo {
		return nil, &DegenerateRangeError{Value: lo}
	}
	span := float64(hi - lo)

	w, h := img.Width(), img.Height()
	out := raster.New(w, h)
	forEachRow(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				d := float64(lowByte(img.ARGB(x, y)) - lo)
				out.SetColor(x, y, raster.Gray(uint8(d*255/span)))
			}
		}
	})
	return out, nil
}
