package render

import (
	"image/color"
	"math"
)

// Terrain supplies height and color samples with wraparound addressing.
type Terrain interface {
	SampleHeight(x, y int) uint8
	SampleColor(x, y int) color.RGBA
}

// Pose is the camera state for one frame.
type Pose struct {
	X, Y    float64 // world position, in map cell units
	Height  float64 // eye height, in elevation units
	Yaw     float64 // radians
	Horizon float64 // skyline baseline, in pixels from the top
}

// Config holds the renderer tuning constants. Tests substitute smaller
// distances; production uses the defaults.
type Config struct {
	MaxDistance float64 // far clip of the ray march
	StepStart   float64 // initial per-iteration distance step
	StepGrowth  float64 // step increase per iteration
	HeightScale float64 // world-height to screen-pixel coupling
	Sky         color.RGBA
	Ground      color.RGBA
}

// DefaultConfig returns the tuned production constants. Changing any of
// these changes the rendered output.
func DefaultConfig() Config {
	return Config{
		MaxDistance: 1000,
		StepStart:   1.0,
		StepGrowth:  0.005,
		HeightScale: 240.0,
		Sky:         color.RGBA{0x87, 0xce, 0xeb, 0xff},
		Ground:      color.RGBA{0x44, 0x35, 0x28, 0xff},
	}
}

// Renderer produces one frame of draw commands per RenderFrame call. The
// per-column occlusion buffer is reused across frames, so a Renderer
// instance is not safe for concurrent use.
type Renderer struct {
	cfg    Config
	hidden []int
}

// New creates a renderer with the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// RenderFrame renders a complete frame front to back.
//
// It first emits the sky and ground rectangles, then marches rays outward
// from the camera. At each depth it walks the visible scanline across all
// screen columns and emits a vertical line wherever the projected terrain
// rises above everything already drawn in that column. Because terrain has
// no overhangs, a per-column high-water mark is a sufficient depth test.
func (r *Renderer) RenderFrame(pose Pose, screenWidth, screenHeight int, t Terrain) []Command {
	if screenHeight <= 0 || screenWidth < 0 {
		return nil
	}

	cmds := make([]Command, 0, 2+screenWidth)
	cmds = append(cmds,
		FillRect{X: 0, Y: 0, W: screenWidth, H: int(pose.Horizon), Color: r.cfg.Sky},
		FillRect{X: 0, Y: int(pose.Horizon), W: screenWidth, H: screenHeight - int(pose.Horizon), Color: r.cfg.Ground},
	)
	if screenWidth == 0 {
		return cmds
	}

	if cap(r.hidden) < screenWidth {
		r.hidden = make([]int, screenWidth)
	}
	hidden := r.hidden[:screenWidth]
	for i := range hidden {
		hidden[i] = screenHeight
	}

	sinYaw, cosYaw := math.Sincos(pose.Yaw)

	deltaZ := r.cfg.StepStart
	for z := 1.0; z < r.cfg.MaxDistance; {
		// Endpoints of the scanline at this depth, left and right frustum
		// edges rotated by the camera yaw.
		plx := -cosYaw*z - sinYaw*z
		ply := sinYaw*z - cosYaw*z
		prx := cosYaw*z - sinYaw*z
		pry := -sinYaw*z - cosYaw*z

		dx := (prx - plx) / float64(screenWidth)
		dy := (pry - ply) / float64(screenWidth)
		plx += pose.X
		ply += pose.Y

		invZ := 1.0 / z * r.cfg.HeightScale

		for i := 0; i < screenWidth; i++ {
			h := t.SampleHeight(int(plx), int(ply))
			screenY := int((pose.Height-float64(h))*invZ + pose.Horizon)
			if screenY < hidden[i] {
				c := t.SampleColor(int(plx), int(ply))
				cmds = append(cmds, VerticalLine{X: i, YTop: screenY, YBottom: hidden[i], Color: c})
				hidden[i] = screenY
			}
			plx += dx
			ply += dy
		}

		z += deltaZ
		deltaZ += r.cfg.StepGrowth
	}

	return cmds
}
