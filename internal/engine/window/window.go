// Package window handles SDL2 window creation and frame presentation.
package window

import (
	"fmt"
	"image/color"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/hexaflare/voxelview/internal/logger"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title        string
	Width        int // window size in screen pixels
	Height       int
	RenderWidth  int // logical frame size the renderer draws at
	RenderHeight int
	Fullscreen   bool
	VSync        bool
}

// Window wraps an SDL2 window with an accelerated 2D renderer. It
// implements render.Canvas, so a frame's draw commands replay straight
// onto it; the logical size lets the low-resolution frame fill the window.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	sdlRender *sdl.Renderer
}

// New creates a window and its renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{config: cfg}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	renderFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		renderFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.sdlRender, err = sdl.CreateRenderer(w.sdlWindow, -1, renderFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	if err := w.sdlRender.SetLogicalSize(int32(cfg.RenderWidth), int32(cfg.RenderHeight)); err != nil {
		logger.Warn("failed to set logical size", zap.Error(err))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("render_width", cfg.RenderWidth),
		zap.Int("render_height", cfg.RenderHeight),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.sdlRender != nil {
		w.sdlRender.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// FillRect implements render.Canvas.
func (w *Window) FillRect(x, y, width, height int, c color.RGBA) {
	w.sdlRender.SetDrawColor(c.R, c.G, c.B, c.A)
	w.sdlRender.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(width), H: int32(height)})
}

// VerticalLine implements render.Canvas. yBottom is exclusive, SDL line
// endpoints are inclusive.
func (w *Window) VerticalLine(x, yTop, yBottom int, c color.RGBA) {
	if yTop >= yBottom {
		return
	}
	w.sdlRender.SetDrawColor(c.R, c.G, c.B, c.A)
	w.sdlRender.DrawLine(int32(x), int32(yTop), int32(x), int32(yBottom-1))
}

// Present flips the composed frame to the screen.
func (w *Window) Present() {
	w.sdlRender.Present()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
