package terrain

import "image/color"

// Maps bundles the current height and color fields. Sampling reads the
// current snapshot; Replace* swaps a whole field at once, so a failed
// replacement leaves the previous field untouched.
//
// A replacement must not race an in-flight render; callers swap between
// frames.
type Maps struct {
	height *HeightField
	colors *ColorField
}

// NewMaps creates a Maps from an existing pair of fields.
func NewMaps(height *HeightField, colors *ColorField) *Maps {
	return &Maps{height: height, colors: colors}
}

// SampleHeight returns the elevation at (x, y), wrapping both coordinates
// into the height field's bounds.
func (m *Maps) SampleHeight(x, y int) uint8 {
	return m.height.At(x, y)
}

// SampleColor returns the surface color at (x, y), wrapping both
// coordinates into the color field's own bounds.
func (m *Maps) SampleColor(x, y int) color.RGBA {
	return m.colors.At(x, y)
}

// HeightSize returns the height field dimensions.
func (m *Maps) HeightSize() (int, int) { return m.height.Size() }

// ColorSize returns the color field dimensions.
func (m *Maps) ColorSize() (int, int) { return m.colors.Size() }

// ReplaceHeightField swaps in a new height field. On dimension mismatch the
// current field stays active.
func (m *Maps) ReplaceHeightField(samples []uint8, width, height int) error {
	f, err := NewHeightField(samples, width, height)
	if err != nil {
		return err
	}
	m.height = f
	return nil
}

// ReplaceColorField swaps in a new color field. On dimension mismatch the
// current field stays active.
func (m *Maps) ReplaceColorField(samples []color.RGBA, width, height int) error {
	f, err := NewColorField(samples, width, height)
	if err != nil {
		return err
	}
	m.colors = f
	return nil
}
