// Package render implements the voxel-space terrain renderer. A frame is a
// sequence of draw commands that any Canvas can replay.
package render

import (
	"image"
	"image/color"
)

// Canvas is a playback surface for draw commands. The SDL window and the
// headless image canvas both implement it.
type Canvas interface {
	FillRect(x, y, w, h int, c color.RGBA)
	// VerticalLine paints column x from yTop (inclusive) to yBottom
	// (exclusive). Coordinates may lie outside the surface; the canvas clips.
	VerticalLine(x, yTop, yBottom int, c color.RGBA)
}

// Command is a single drawing operation within a frame.
type Command interface {
	Draw(Canvas)
}

// FillRect fills an axis-aligned rectangle.
type FillRect struct {
	X, Y, W, H int
	Color      color.RGBA
}

// Draw implements Command.
func (r FillRect) Draw(c Canvas) { c.FillRect(r.X, r.Y, r.W, r.H, r.Color) }

// VerticalLine fills one screen column between two Y coordinates.
type VerticalLine struct {
	X       int
	YTop    int
	YBottom int
	Color   color.RGBA
}

// Draw implements Command.
func (l VerticalLine) Draw(c Canvas) { c.VerticalLine(l.X, l.YTop, l.YBottom, l.Color) }

// Play replays a frame's commands onto a canvas in order.
func Play(cmds []Command, c Canvas) {
	for _, cmd := range cmds {
		cmd.Draw(c)
	}
}

// ImageCanvas replays draw commands into an RGBA image, clipping to its
// bounds. It backs the snapshot tool and headless tests.
type ImageCanvas struct {
	Img *image.RGBA
}

// NewImageCanvas allocates an image canvas of the given size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FillRect implements Canvas.
func (ic *ImageCanvas) FillRect(x, y, w, h int, c color.RGBA) {
	b := ic.Img.Bounds()
	x0, y0 := max(x, b.Min.X), max(y, b.Min.Y)
	x1, y1 := min(x+w, b.Max.X), min(y+h, b.Max.Y)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			ic.Img.SetRGBA(px, py, c)
		}
	}
}

// VerticalLine implements Canvas.
func (ic *ImageCanvas) VerticalLine(x, yTop, yBottom int, c color.RGBA) {
	b := ic.Img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	y0, y1 := max(yTop, b.Min.Y), min(yBottom, b.Max.Y)
	for py := y0; py < y1; py++ {
		ic.Img.SetRGBA(x, py, c)
	}
}
