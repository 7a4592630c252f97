// Package game implements the main viewer loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/hexaflare/voxelview/internal/config"
	"github.com/hexaflare/voxelview/internal/engine/input"
	"github.com/hexaflare/voxelview/internal/engine/render"
	"github.com/hexaflare/voxelview/internal/engine/terrain"
	"github.com/hexaflare/voxelview/internal/engine/window"
	"github.com/hexaflare/voxelview/internal/logger"
)

// Game is the main viewer instance.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *render.Renderer
	input    *input.Input
	maps     *terrain.Maps
	player   Player
	running  bool
}

// New creates a viewer from the loaded configuration. Maps come from the
// configured image files, or from the procedural generator when no files
// are set.
func New(cfg *config.Config) (*Game, error) {
	maps, err := loadMaps(cfg.Maps)
	if err != nil {
		return nil, err
	}

	win, err := window.New(window.Config{
		Title:        "voxelview",
		Width:        cfg.Graphics.WindowWidth,
		Height:       cfg.Graphics.WindowHeight,
		RenderWidth:  cfg.Graphics.RenderWidth,
		RenderHeight: cfg.Graphics.RenderHeight,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		window:   win,
		renderer: render.New(render.DefaultConfig()),
		input:    input.New(),
		maps:     maps,
		player: Player{
			Pose: render.Pose{
				X:       cfg.Camera.StartX,
				Y:       cfg.Camera.StartY,
				Height:  cfg.Camera.StartHeight,
				Horizon: float64(cfg.Graphics.RenderHeight) / 2,
			},
			MoveSpeed:  cfg.Camera.MoveSpeed,
			TurnSpeed:  cfg.Camera.TurnSpeed,
			ClimbSpeed: cfg.Camera.ClimbSpeed,
			PitchSpeed: float64(cfg.Graphics.RenderHeight) / 2,
			Clearance:  cfg.Camera.Clearance,
		},
	}
	return g, nil
}

func loadMaps(cfg config.MapsConfig) (*terrain.Maps, error) {
	if cfg.HeightMap != "" && cfg.ColorMap != "" {
		logger.Info("loading terrain maps",
			zap.String("height_map", cfg.HeightMap),
			zap.String("color_map", cfg.ColorMap),
		)
		return terrain.LoadMaps(cfg.HeightMap, cfg.ColorMap)
	}

	logger.Info("generating terrain",
		zap.Int64("seed", cfg.Seed),
		zap.Int("width", cfg.GenWidth),
		zap.Int("height", cfg.GenHeight),
	)
	return terrain.Generate(terrain.GenConfig{
		Width:  cfg.GenWidth,
		Height: cfg.GenHeight,
		Seed:   cfg.Seed,
	}), nil
}

// Run drives the main loop until quit. Per frame: poll input, update the
// player, render the frame's draw commands, replay them onto the window.
func (g *Game) Run() error {
	g.running = true

	last := time.Now()
	frames := 0
	fpsMark := last

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleKeys()

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		if dt > 0.1 {
			dt = 0.1 // clamp after stalls so the camera doesn't teleport
		}

		g.player.Update(dt, g.controls(), g.maps)

		cmds := g.renderer.RenderFrame(
			g.player.Pose,
			g.cfg.Graphics.RenderWidth,
			g.cfg.Graphics.RenderHeight,
			g.maps,
		)
		render.Play(cmds, g.window)
		g.window.Present()

		frames++
		if g.cfg.Graphics.ShowFPS && now.Sub(fpsMark) >= time.Second {
			g.window.SetTitle(fmt.Sprintf("voxelview (%d fps)", frames))
			frames = 0
			fpsMark = now
		}
	}

	return nil
}

// handleKeys applies one-shot actions from this frame's key-down events,
// as opposed to the held keys that drive continuous movement.
func (g *Game) handleKeys() {
	for _, ev := range g.input.Events() {
		if ev.Type == input.EventKeyDown {
			g.handleKey(ev.Key)
		}
	}
}

func (g *Game) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_F1:
		g.cfg.Graphics.ShowFPS = !g.cfg.Graphics.ShowFPS
		if !g.cfg.Graphics.ShowFPS && g.window != nil {
			g.window.SetTitle("voxelview")
		}

	case sdl.SCANCODE_F5:
		if g.cfg.Maps.HeightMap != "" && g.cfg.Maps.ColorMap != "" {
			return // file-backed maps have nothing to regenerate
		}
		// Swapping between frames keeps replacement atomic for the renderer.
		g.cfg.Maps.Seed++
		g.maps = terrain.Generate(terrain.GenConfig{
			Width:  g.cfg.Maps.GenWidth,
			Height: g.cfg.Maps.GenHeight,
			Seed:   g.cfg.Maps.Seed,
		})
		logger.Info("regenerated terrain", zap.Int64("seed", g.cfg.Maps.Seed))
	}
}

// controls maps held keys to movement intent. Arrows and WASD both steer.
func (g *Game) controls() Controls {
	return Controls{
		Forward:   g.input.Held(sdl.SCANCODE_W) || g.input.Held(sdl.SCANCODE_UP),
		Backward:  g.input.Held(sdl.SCANCODE_S) || g.input.Held(sdl.SCANCODE_DOWN),
		TurnLeft:  g.input.Held(sdl.SCANCODE_A) || g.input.Held(sdl.SCANCODE_LEFT),
		TurnRight: g.input.Held(sdl.SCANCODE_D) || g.input.Held(sdl.SCANCODE_RIGHT),
		Rise:      g.input.Held(sdl.SCANCODE_Q),
		Sink:      g.input.Held(sdl.SCANCODE_E),
		LookUp:    g.input.Held(sdl.SCANCODE_R),
		LookDown:  g.input.Held(sdl.SCANCODE_F),
	}
}

// Close releases the window and SDL resources.
func (g *Game) Close() {
	if g.window != nil {
		g.window.Close()
	}
}
