package terrain

import "testing"

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GenConfig{Width: 64, Height: 64, Seed: 42}
	a := Generate(cfg)
	b := Generate(cfg)

	for y := 0; y < 64; y += 7 {
		for x := 0; x < 64; x += 5 {
			if a.SampleHeight(x, y) != b.SampleHeight(x, y) {
				t.Fatalf("height differs at (%d, %d) for same seed", x, y)
			}
			if a.SampleColor(x, y) != b.SampleColor(x, y) {
				t.Fatalf("color differs at (%d, %d) for same seed", x, y)
			}
		}
	}
}

func TestGenerate_SeedChangesTerrain(t *testing.T) {
	a := Generate(GenConfig{Width: 64, Height: 64, Seed: 1})
	b := Generate(GenConfig{Width: 64, Height: 64, Seed: 2})

	same := true
	for y := 0; y < 64 && same; y++ {
		for x := 0; x < 64; x++ {
			if a.SampleHeight(x, y) != b.SampleHeight(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical height fields")
	}
}

func TestGenerate_InvalidDimensionsFallBack(t *testing.T) {
	m := Generate(GenConfig{Width: 0, Height: -5, Seed: 1})

	if w, h := m.HeightSize(); w != defaultGenSize || h != defaultGenSize {
		t.Errorf("HeightSize() = %dx%d, want %dx%d", w, h, defaultGenSize, defaultGenSize)
	}
	// Sampling must not panic on a fallback-sized map.
	_ = m.SampleHeight(0, 0)
	_ = m.SampleColor(-3, 9999)
}

func TestGenerate_ColorMatchesElevationBand(t *testing.T) {
	m := Generate(GenConfig{Width: 32, Height: 32, Seed: 7})

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			elev := m.SampleHeight(x, y)
			if got, want := m.SampleColor(x, y), shadeFor(elev); got != want {
				t.Fatalf("color at (%d, %d) = %v, want band shade %v for elevation %d",
					x, y, got, want, elev)
			}
		}
	}
}
