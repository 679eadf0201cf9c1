package imaging

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-filters-mcp/internal/raster"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel value in several representations.
//
// ARGB is the packed form the filters operate on; Sample is the single
// channel a window or max-range scan reads from this pixel.
type ColorResult struct {
	Hex    string    `json:"hex"`    // Hex format "#rrggbb" (no alpha)
	ARGB   string    `json:"argb"`   // Packed "0xAARRGGBB"
	RGB    RGBColor  `json:"rgb"`    // RGB components
	RGBA   RGBAColor `json:"rgba"`   // RGBA components with alpha
	HSL    HSLColor  `json:"hsl"`    // HSL representation
	Sample uint8     `json:"sample"` // Low byte of the packed value
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Returns an error if (x, y) lies outside the image. Hex and HSL are
// computed from the colour channels and ignore alpha.
func SampleColor(img *raster.Image, x, y int) (*ColorResult, error) {
	if !img.InBounds(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := img.Color(x, y)
	cf := colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
	h, s, l := cf.Hsl()

	return &ColorResult{
		Hex:    cf.Hex(),
		ARGB:   c.String(),
		RGB:    RGBColor{R: c.R(), G: c.G(), B: c.B()},
		RGBA:   RGBAColor{R: c.R(), G: c.G(), B: c.B(), A: c.A()},
		HSL:    HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Sample: c.B(),
	}, nil
}
