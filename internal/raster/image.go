package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Image is a width x height grid of packed ARGB pixels stored row-major.
//
// Image implements image.Image with non-premultiplied colour, so it can be
// handed straight to any encoder. Filters never modify their input; they
// allocate a fresh Image for every result.
type Image struct {
	width, height int
	pix           []uint32
}

// New allocates a zero-filled (transparent black) image.
// It panics if either dimension is negative.
func New(width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative image size %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// FromImage copies any decoded image into a new Image.
//
// The source is first normalised to 8-bit NRGBA, so premultiplied and
// 16-bit inputs are converted the same way an encoder would see them.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	out := New(b.Dx(), b.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			i := nrgba.PixOffset(x+b.Min.X, y+b.Min.Y)
			p := nrgba.Pix[i : i+4 : i+4]
			out.pix[y*out.width+x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return out
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

// InBounds reports whether (x, y) lies inside [0,width) x [0,height).
func (m *Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// ARGB returns the packed pixel at (x, y). The coordinate must be in bounds.
func (m *Image) ARGB(x, y int) uint32 {
	return m.pix[y*m.width+x]
}

// SetARGB stores a packed pixel at (x, y). The coordinate must be in bounds.
func (m *Image) SetARGB(x, y int, argb uint32) {
	m.pix[y*m.width+x] = argb
}

func (m *Image) Color(x, y int) Color {
	return FromARGB(m.ARGB(x, y))
}

func (m *Image) SetColor(x, y int, c Color) {
	m.SetARGB(x, y, c.ARGB())
}

// Clone returns an independent copy.
func (m *Image) Clone() *Image {
	out := New(m.width, m.height)
	copy(out.pix, m.pix)
	return out
}

// ToNRGBA converts the image to the standard library representation.
func (m *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(m.Bounds())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			out.SetNRGBA(x, y, m.Color(x, y).NRGBA())
		}
	}
	return out
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image. Points outside the image are transparent black.
func (m *Image) At(x, y int) color.Color {
	if !m.InBounds(x, y) {
		return color.NRGBA{}
	}
	return m.Color(x, y).NRGBA()
}
