package terrain

import (
	"image/color"

	"github.com/aquilax/go-perlin"
)

// GenConfig controls procedural map generation.
type GenConfig struct {
	Width  int
	Height int
	Seed   int64
	// Scale is the noise sample spacing; smaller values give smoother
	// terrain. Zero means the default.
	Scale float64
}

const (
	defaultGenScale = 0.015
	defaultGenSize  = 1024
)

// Elevation bands for the color ramp, from low to high.
var elevationRamp = []struct {
	ceiling uint8
	shade   color.RGBA
}{
	{60, color.RGBA{0x1d, 0x4e, 0x89, 0xff}},  // water
	{75, color.RGBA{0xc2, 0xb2, 0x80, 0xff}},  // shore
	{140, color.RGBA{0x4a, 0x7c, 0x3f, 0xff}}, // grassland
	{190, color.RGBA{0x6e, 0x5f, 0x4b, 0xff}}, // rock
	{255, color.RGBA{0xee, 0xee, 0xf2, 0xff}}, // snow
}

// Generate builds a Maps pair from Perlin noise with an elevation-banded
// color ramp. The same seed always produces the same maps. Non-positive
// dimensions fall back to the defaults, so Generate always returns usable
// maps.
func Generate(cfg GenConfig) *Maps {
	if cfg.Scale <= 0 {
		cfg.Scale = defaultGenScale
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultGenSize
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultGenSize
	}
	noise := perlin.NewPerlin(2, 2, 3, cfg.Seed)

	heights := make([]uint8, cfg.Width*cfg.Height)
	colors := make([]color.RGBA, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			// Noise2D returns roughly [-1, 1]; shift into [0, 255].
			n := noise.Noise2D(float64(x)*cfg.Scale, float64(y)*cfg.Scale)
			elev := uint8(clamp((n+1.0)/2.0*255.0, 0, 255))
			heights[y*cfg.Width+x] = elev
			colors[y*cfg.Width+x] = shadeFor(elev)
		}
	}

	return NewMaps(
		&HeightField{width: cfg.Width, height: cfg.Height, samples: heights},
		&ColorField{width: cfg.Width, height: cfg.Height, samples: colors},
	)
}

func shadeFor(elev uint8) color.RGBA {
	for _, band := range elevationRamp {
		if elev <= band.ceiling {
			return band.shade
		}
	}
	return elevationRamp[len(elevationRamp)-1].shade
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
