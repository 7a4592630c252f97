// Package terrain provides the height and color fields the renderer samples.
package terrain

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrDimensionMismatch is returned when a raster's sample count does not
// equal width*height.
var ErrDimensionMismatch = errors.New("sample count does not match dimensions")

// HeightField is a row-major raster of 8-bit terrain elevations.
type HeightField struct {
	width   int
	height  int
	samples []uint8
}

// NewHeightField builds a height field from row-major samples.
func NewHeightField(samples []uint8, width, height int) (*HeightField, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrDimensionMismatch, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: got %d samples for %dx%d", ErrDimensionMismatch, len(samples), width, height)
	}
	return &HeightField{width: width, height: height, samples: samples}, nil
}

// At returns the elevation at (x, y) with toroidal wraparound. It is total
// over all integer inputs.
func (f *HeightField) At(x, y int) uint8 {
	return f.samples[wrap(y, f.height)*f.width+wrap(x, f.width)]
}

// Size returns the field dimensions.
func (f *HeightField) Size() (int, int) { return f.width, f.height }

// ColorField is a row-major raster of RGBA terrain surface colors. Its
// dimensions are independent of any height field.
type ColorField struct {
	width   int
	height  int
	samples []color.RGBA
}

// NewColorField builds a color field from row-major samples.
func NewColorField(samples []color.RGBA, width, height int) (*ColorField, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrDimensionMismatch, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: got %d samples for %dx%d", ErrDimensionMismatch, len(samples), width, height)
	}
	return &ColorField{width: width, height: height, samples: samples}, nil
}

// At returns the color at (x, y) with toroidal wraparound.
func (f *ColorField) At(x, y int) color.RGBA {
	return f.samples[wrap(y, f.height)*f.width+wrap(x, f.width)]
}

// Size returns the field dimensions.
func (f *ColorField) Size() (int, int) { return f.width, f.height }

// wrap maps v into [0, n) using floored modulo, so negative coordinates
// wrap to the far edge instead of panicking or clamping.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
