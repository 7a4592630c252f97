package render

import (
	"image/color"
	"testing"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestImageCanvas_FillRect(t *testing.T) {
	ic := NewImageCanvas(4, 4)
	ic.FillRect(1, 1, 2, 2, red)

	if got := ic.Img.RGBAAt(1, 1); got != red {
		t.Errorf("pixel (1, 1) = %v, want red", got)
	}
	if got := ic.Img.RGBAAt(2, 2); got != red {
		t.Errorf("pixel (2, 2) = %v, want red", got)
	}
	if got := ic.Img.RGBAAt(0, 0); got == red {
		t.Error("pixel (0, 0) painted outside the rectangle")
	}
	if got := ic.Img.RGBAAt(3, 1); got == red {
		t.Error("pixel (3, 1) painted outside the rectangle")
	}
}

func TestImageCanvas_VerticalLineClipsToBounds(t *testing.T) {
	ic := NewImageCanvas(3, 5)

	// Entirely off the sides: no panic, no paint.
	ic.VerticalLine(-1, 0, 5, red)
	ic.VerticalLine(3, 0, 5, red)

	// Overhanging top and bottom clips to the surface.
	ic.VerticalLine(1, -10, 100, blue)
	for y := 0; y < 5; y++ {
		if got := ic.Img.RGBAAt(1, y); got != blue {
			t.Errorf("pixel (1, %d) = %v, want blue", y, got)
		}
	}
	if got := ic.Img.RGBAAt(0, 0); got == red || got == blue {
		t.Error("column 0 painted by clipped lines")
	}
}

func TestImageCanvas_VerticalLineBottomExclusive(t *testing.T) {
	ic := NewImageCanvas(1, 4)
	ic.VerticalLine(0, 1, 3, red)

	if got := ic.Img.RGBAAt(0, 0); got == red {
		t.Error("pixel above yTop painted")
	}
	if got := ic.Img.RGBAAt(0, 1); got != red {
		t.Error("pixel at yTop not painted")
	}
	if got := ic.Img.RGBAAt(0, 2); got != red {
		t.Error("pixel below yTop not painted")
	}
	if got := ic.Img.RGBAAt(0, 3); got == red {
		t.Error("pixel at yBottom painted; yBottom is exclusive")
	}
}

func TestPlay_LaterCommandsOverdraw(t *testing.T) {
	ic := NewImageCanvas(2, 2)
	Play([]Command{
		FillRect{X: 0, Y: 0, W: 2, H: 2, Color: red},
		VerticalLine{X: 0, YTop: 0, YBottom: 2, Color: blue},
	}, ic)

	if got := ic.Img.RGBAAt(0, 0); got != blue {
		t.Errorf("pixel (0, 0) = %v, want line drawn over rect", got)
	}
	if got := ic.Img.RGBAAt(1, 0); got != red {
		t.Errorf("pixel (1, 0) = %v, want rect color", got)
	}
}
