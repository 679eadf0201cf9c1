package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/image-filters-mcp/internal/raster"
)

// Func is a named single-input filter.
type Func func(*raster.Image) (*raster.Image, error)

// UnknownFilterError reports a name missing from the registry.
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter %q (want one of %s)", e.Name, strings.Join(Names(), ", "))
}

// DefaultPipeline is the sequence run when a caller names no filters:
// edge detection followed by a contrast stretch of the edge map.
var DefaultPipeline = []string{"edge-detect", "max-range"}

var registry = map[string]Func{
	"grayscale":           total(Grayscale),
	"gradient-horizontal": total(GradientHorizontal),
	"gradient-vertical":   total(GradientVertical),
	"edge-detect":         total(EdgeDetect),
	"max-range":           maxRangeOrCopy,
}

func total(fn func(*raster.Image) *raster.Image) Func {
	return func(img *raster.Image) (*raster.Image, error) {
		return fn(img), nil
	}
}

// maxRangeOrCopy passes uniform images through unchanged so pipelines over
// flat inputs still produce a result.
func maxRangeOrCopy(img *raster.Image) (*raster.Image, error) {
	out, err := MaxRangeStretch(img)
	var degenerate *DegenerateRangeError
	if errors.As(err, &degenerate) {
		return img.Clone(), nil
	}
	return out, err
}

// Names lists the registered filters in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named filter. Inside a named step, max-range returns an
// unchanged copy of a uniform image instead of failing.
func Apply(name string, img *raster.Image) (*raster.Image, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, &UnknownFilterError{Name: name}
	}
	return fn(img)
}

// Pipeline applies the named filters left to right, each consuming the
// previous output. All names are checked before any filter runs. An empty
// pipeline returns a copy of img.
func Pipeline(img *raster.Image, names ...string) (*raster.Image, error) {
	for _, name := range names {
		if _, ok := registry[name]; !ok {
			return nil, &UnknownFilterError{Name: name}
		}
	}

	out := img.Clone()
	for i, name := range names {
		next, err := Apply(name, out)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, name, err)
		}
		out = next
	}
	return out, nil
}
