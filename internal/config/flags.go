package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagHeightMap  = flag.String("heightmap", "", "Path to height map image")
	flagColorMap   = flag.String("colormap", "", "Path to color map image")
	flagSeed       = flag.Int64("seed", 0, "Procedural map seed")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.WindowWidth = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.WindowHeight = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagHeightMap != "" {
		cfg.Maps.HeightMap = *flagHeightMap
	}
	if *flagColorMap != "" {
		cfg.Maps.ColorMap = *flagColorMap
	}
	if *flagSeed != 0 {
		cfg.Maps.Seed = *flagSeed
	}
}
