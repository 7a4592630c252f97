// Package main renders a single terrain frame to a PNG without a window.
// Useful for CI, screenshots, and comparing output across changes.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/hexaflare/voxelview/internal/engine/render"
	"github.com/hexaflare/voxelview/internal/engine/terrain"
)

var (
	flagHeightMap = flag.String("heightmap", "", "Path to height map image (with -colormap)")
	flagColorMap  = flag.String("colormap", "", "Path to color map image (with -heightmap)")
	flagSeed      = flag.Int64("seed", 1, "Procedural map seed when no images are given")
	flagOut       = flag.String("out", "snapshot.png", "Output PNG path")
	flagWidth     = flag.Int("width", 320, "Frame width in pixels")
	flagHeight    = flag.Int("height", 200, "Frame height in pixels")
	flagScale     = flag.Int("scale", 2, "Integer upscale factor for the output image")
	flagX         = flag.Float64("x", 512, "Camera X position")
	flagY         = flag.Float64("y", 512, "Camera Y position")
	flagEye       = flag.Float64("eye", 150, "Camera eye height")
	flagYaw       = flag.Float64("yaw", 0, "Camera yaw in radians")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var maps *terrain.Maps
	if *flagHeightMap != "" && *flagColorMap != "" {
		var err error
		maps, err = terrain.LoadMaps(*flagHeightMap, *flagColorMap)
		if err != nil {
			return err
		}
	} else {
		maps = terrain.Generate(terrain.GenConfig{
			Width:  1024,
			Height: 1024,
			Seed:   *flagSeed,
		})
	}

	width, height, scale := *flagWidth, *flagHeight, *flagScale

	r := render.New(render.DefaultConfig())
	pose := render.Pose{
		X:       *flagX,
		Y:       *flagY,
		Height:  *flagEye,
		Yaw:     *flagYaw,
		Horizon: float64(height) / 2,
	}

	canvas := render.NewImageCanvas(width, height)
	render.Play(r.RenderFrame(pose, width, height, maps), canvas)

	out := image.Image(canvas.Img)
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas.Img, canvas.Img.Bounds(), xdraw.Src, nil)
		out = scaled
	}

	f, err := os.Create(*flagOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encoding %s: %w", *flagOut, err)
	}
	fmt.Printf("wrote %s\n", *flagOut)
	return nil
}
