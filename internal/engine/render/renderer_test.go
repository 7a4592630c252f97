package render

import (
	"image/color"
	"reflect"
	"testing"
)

// flatTerrain has the same elevation and color everywhere.
type flatTerrain struct {
	elevation uint8
	shade     color.RGBA
}

func (f flatTerrain) SampleHeight(x, y int) uint8     { return f.elevation }
func (f flatTerrain) SampleColor(x, y int) color.RGBA { return f.shade }

// bumpyTerrain derives elevation from the coordinates, so different
// columns see different heights.
type bumpyTerrain struct{}

func (bumpyTerrain) SampleHeight(x, y int) uint8 {
	return uint8((x*31 + y*17) % 256)
}

func (bumpyTerrain) SampleColor(x, y int) color.RGBA {
	return color.RGBA{R: uint8(x), G: uint8(y), A: 0xff}
}

// testConfig keeps the march short and the projection mild so lines show
// up on a small screen.
func testConfig() Config {
	return Config{
		MaxDistance: 40,
		StepStart:   1.0,
		StepGrowth:  0.005,
		HeightScale: 1.0,
		Sky:         color.RGBA{B: 0xff, A: 0xff},
		Ground:      color.RGBA{G: 0xff, A: 0xff},
	}
}

func testPose() Pose {
	return Pose{X: 100, Y: 100, Height: 100, Yaw: 0, Horizon: 20}
}

func TestRenderFrame_BackgroundFirst(t *testing.T) {
	r := New(testConfig())
	cmds := r.RenderFrame(testPose(), 8, 100, flatTerrain{elevation: 50, shade: color.RGBA{A: 0xff}})

	if len(cmds) < 2 {
		t.Fatalf("expected at least 2 commands, got %d", len(cmds))
	}

	sky, ok := cmds[0].(FillRect)
	if !ok {
		t.Fatalf("first command is %T, want FillRect", cmds[0])
	}
	if sky.X != 0 || sky.Y != 0 || sky.W != 8 || sky.H != 20 {
		t.Errorf("sky rect = %+v, want 0,0 8x20", sky)
	}

	ground, ok := cmds[1].(FillRect)
	if !ok {
		t.Fatalf("second command is %T, want FillRect", cmds[1])
	}
	if ground.X != 0 || ground.Y != 20 || ground.W != 8 || ground.H != 80 {
		t.Errorf("ground rect = %+v, want 0,20 8x80", ground)
	}

	for i, cmd := range cmds[2:] {
		if _, ok := cmd.(VerticalLine); !ok {
			t.Fatalf("command %d is %T, want VerticalLine", i+2, cmd)
		}
	}
}

func TestRenderFrame_OcclusionMonotonicPerColumn(t *testing.T) {
	r := New(testConfig())
	cmds := r.RenderFrame(testPose(), 32, 100, bumpyTerrain{})

	lastTop := make(map[int]int)
	for _, cmd := range cmds {
		line, ok := cmd.(VerticalLine)
		if !ok {
			continue
		}
		if line.YTop >= line.YBottom {
			t.Fatalf("degenerate line in column %d: yTop %d >= yBottom %d",
				line.X, line.YTop, line.YBottom)
		}
		if prev, seen := lastTop[line.X]; seen {
			if line.YTop >= prev {
				t.Fatalf("column %d: yTop %d not below previous %d", line.X, line.YTop, prev)
			}
			// Front-to-back seams: each new line ends where the last began.
			if line.YBottom != prev {
				t.Fatalf("column %d: yBottom %d != previous yTop %d", line.X, line.YBottom, prev)
			}
		} else if line.YBottom != 100 {
			t.Fatalf("column %d: first line yBottom %d, want screen height 100", line.X, line.YBottom)
		}
		lastTop[line.X] = line.YTop
	}

	if len(lastTop) == 0 {
		t.Fatal("no vertical lines emitted")
	}
}

func TestRenderFrame_Deterministic(t *testing.T) {
	r := New(testConfig())
	pose := Pose{X: 33.5, Y: -7.25, Height: 120, Yaw: 0.7, Horizon: 40}

	a := r.RenderFrame(pose, 24, 80, bumpyTerrain{})
	b := r.RenderFrame(pose, 24, 80, bumpyTerrain{})

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different command sequences")
	}

	// A fresh renderer must agree as well; the reused occlusion buffer
	// carries no state across frames.
	c := New(testConfig()).RenderFrame(pose, 24, 80, bumpyTerrain{})
	if !reflect.DeepEqual(a, c) {
		t.Error("fresh renderer produced a different command sequence")
	}
}

func TestRenderFrame_FlatTerrainSkyline(t *testing.T) {
	r := New(testConfig())
	const width = 16
	cmds := r.RenderFrame(testPose(), width, 100, flatTerrain{elevation: 50, shade: color.RGBA{R: 0x7f, A: 0xff}})

	// With constant terrain the projected Y depends only on z, so every
	// column must emit the same YTop sequence and end on the same skyline.
	tops := make([][]int, width)
	for _, cmd := range cmds {
		if line, ok := cmd.(VerticalLine); ok {
			tops[line.X] = append(tops[line.X], line.YTop)
		}
	}

	if len(tops[0]) == 0 {
		t.Fatal("no lines emitted for column 0")
	}
	for i := 1; i < width; i++ {
		if !reflect.DeepEqual(tops[i], tops[0]) {
			t.Fatalf("column %d YTop sequence %v differs from column 0 %v", i, tops[i], tops[0])
		}
	}

	// Strictly decreasing until occlusion saturates; no repeats emitted.
	for j := 1; j < len(tops[0]); j++ {
		if tops[0][j] >= tops[0][j-1] {
			t.Fatalf("YTop sequence not strictly decreasing: %v", tops[0])
		}
	}
}

func TestRenderFrame_ZeroWidth(t *testing.T) {
	r := New(testConfig())
	cmds := r.RenderFrame(testPose(), 0, 100, flatTerrain{elevation: 50})

	if len(cmds) != 2 {
		t.Fatalf("expected exactly 2 background commands, got %d", len(cmds))
	}
	for i, cmd := range cmds {
		if _, ok := cmd.(FillRect); !ok {
			t.Errorf("command %d is %T, want FillRect", i, cmd)
		}
	}
}

func TestRenderFrame_ZeroHeight(t *testing.T) {
	r := New(testConfig())
	if cmds := r.RenderFrame(testPose(), 32, 0, flatTerrain{elevation: 50}); len(cmds) != 0 {
		t.Errorf("expected empty command sequence, got %d commands", len(cmds))
	}
}

func TestRenderFrame_NegativeCameraPosition(t *testing.T) {
	// Wraparound sampling must keep the renderer total far off the map.
	r := New(testConfig())
	pose := Pose{X: -5000, Y: -5000, Height: 90, Yaw: 2.1, Horizon: 30}
	cmds := r.RenderFrame(pose, 16, 60, bumpyTerrain{})
	if len(cmds) < 2 {
		t.Errorf("expected background plus terrain commands, got %d", len(cmds))
	}
}
