package terrain

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/png" // map rasters ship as PNG
)

// HeightFieldFromImage converts an image to elevations using 8-bit
// luminance. An image with empty bounds is rejected.
func HeightFieldFromImage(img image.Image) (*HeightField, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	samples := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			samples[y*w+x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
	}
	return NewHeightField(samples, w, h)
}

// ColorFieldFromImage converts an image to an RGBA color field. An image
// with empty bounds is rejected.
func ColorFieldFromImage(img image.Image) (*ColorField, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	samples := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			samples[y*w+x] = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
		}
	}
	return NewColorField(samples, w, h)
}

// LoadMaps decodes a height map and a color map image and bundles them. The
// two images may have different dimensions; each field wraps independently.
func LoadMaps(heightPath, colorPath string) (*Maps, error) {
	hImg, err := decodeImage(heightPath)
	if err != nil {
		return nil, fmt.Errorf("loading height map: %w", err)
	}
	cImg, err := decodeImage(colorPath)
	if err != nil {
		return nil, fmt.Errorf("loading color map: %w", err)
	}

	hf, err := HeightFieldFromImage(hImg)
	if err != nil {
		return nil, fmt.Errorf("height map %s: %w", heightPath, err)
	}
	cf, err := ColorFieldFromImage(cImg)
	if err != nil {
		return nil, fmt.Errorf("color map %s: %w", colorPath, err)
	}
	return NewMaps(hf, cf), nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
