package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/image-filters-mcp/internal/raster"
)

// ErrZeroWeight is returned when every weight is zero, which would make the
// weighted average divide by zero.
var ErrZeroWeight = errors.New("weights sum to zero in absolute value")

// SizeMismatchError reports samples and weights of different lengths.
type SizeMismatchError struct {
	Samples int
	Weights int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("pixels and weights size mismatch: %d samples, %d weights", e.Samples, e.Weights)
}

// WeightedAverage returns sum(weights[i]*samples[i]) / sum(|weights[i]|).
func WeightedAverage(samples []uint8, weights []int) (float64, error) {
	if len(samples) != len(weights) {
		return 0, &SizeMismatchError{Samples: len(samples), Weights: len(weights)}
	}
	divisor := absSum(weights)
	if divisor == 0 {
		return 0, ErrZeroWeight
	}
	return weightedAverage(samples, weights, divisor), nil
}

func weightedAverage(samples []uint8, weights []int, divisor int) float64 {
	var total int
	for i, w := range weights {
		total += w * int(samples[i])
	}
	return float64(total) / float64(divisor)
}

func absSum(weights []int) int {
	var sum int
	for _, w := range weights {
		if w < 0 {
			sum -= w
		} else {
			sum += w
		}
	}
	return sum
}

// Kernel is an immutable odd-sized grid of integer weights, stored row-major.
type Kernel struct {
	width, height int
	weights       []int
	divisor       int
}

// NewKernel validates and copies a weight grid.
//
// Both dimensions must be odd and positive, len(weights) must equal
// width*height, and at least one weight must be non-zero.
func NewKernel(width, height int, weights []int) (*Kernel, error) {
	if width <= 0 || height <= 0 || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("kernel size %dx%d: dimensions must be odd and positive", width, height)
	}
	if len(weights) != width*height {
		return nil, &SizeMismatchError{Samples: width * height, Weights: len(weights)}
	}
	divisor := absSum(weights)
	if divisor == 0 {
		return nil, ErrZeroWeight
	}
	return &Kernel{
		width:   width,
		height:  height,
		weights: append([]int(nil), weights...),
		divisor: divisor,
	}, nil
}

func mustKernel(width, height int, weights []int) *Kernel {
	k, err := NewKernel(width, height, weights)
	if err != nil {
		panic(err)
	}
	return k
}

func (k *Kernel) Width() int  { return k.width }
func (k *Kernel) Height() int { return k.height }

// Weights returns a copy of the row-major weights.
func (k *Kernel) Weights() []int {
	return append([]int(nil), k.weights...)
}

// Apply is WeightedAverage against the kernel's weights.
func (k *Kernel) Apply(samples []uint8) (float64, error) {
	if len(samples) != len(k.weights) {
		return 0, &SizeMismatchError{Samples: len(samples), Weights: len(k.weights)}
	}
	return weightedAverage(samples, k.weights, k.divisor), nil
}

// Sobel-style 3x3 kernels. Vertical responds to vertical edges (changes
// along x), Horizontal to horizontal edges (changes along y).
var (
	VerticalKernel = mustKernel(3, 3, []int{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
	HorizontalKernel = mustKernel(3, 3, []int{
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	})
)

// Convolve centres k on every pixel of img, samples the window with the
// given policy and writes |weighted average| as an opaque gray pixel.
//
// Only the low byte of each pixel is sampled; convert to grayscale first
// for luminance. The magnitude cannot exceed the largest sample, so it
// always fits in a byte.
func Convolve(img *raster.Image, k *Kernel, policy BoundaryPolicy) *raster.Image {
	w, h := img.Width(), img.Height()
	out := raster.New(w, h)
	offX, offY := k.width/2, k.height/2

	forEachRow(h, func(start, end int) {
		window := make([]uint8, len(k.weights))
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				sampleWindowInto(window, img, x-offX, y-offY, k.width, k.height, policy)
				v := int(math.Abs(weightedAverage(window, k.weights, k.divisor)))
				out.SetColor(x, y, raster.Gray(uint8(clamp(v, 0, 255))))
			}
		}
	})
	return out
}
