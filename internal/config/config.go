// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Maps     MapsConfig     `yaml:"maps"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings. Render width/height set the
// internal frame resolution; the window scales it up.
type GraphicsConfig struct {
	WindowWidth  int  `yaml:"window_width"`
	WindowHeight int  `yaml:"window_height"`
	RenderWidth  int  `yaml:"render_width"`
	RenderHeight int  `yaml:"render_height"`
	Fullscreen   bool `yaml:"fullscreen"`
	VSync        bool `yaml:"vsync"`
	ShowFPS      bool `yaml:"show_fps"`
}

// MapsConfig selects the terrain source. When both image paths are set
// they are loaded; otherwise a procedural map is generated from the seed.
type MapsConfig struct {
	HeightMap string `yaml:"height_map"`
	ColorMap  string `yaml:"color_map"`
	Seed      int64  `yaml:"seed"`
	GenWidth  int    `yaml:"gen_width"`
	GenHeight int    `yaml:"gen_height"`
}

// CameraConfig holds the starting pose and movement tuning.
type CameraConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	StartHeight float64 `yaml:"start_height"`
	MoveSpeed   float64 `yaml:"move_speed"`   // world units per second
	TurnSpeed   float64 `yaml:"turn_speed"`   // radians per second
	ClimbSpeed  float64 `yaml:"climb_speed"`  // elevation units per second
	Clearance   float64 `yaml:"clearance"`    // minimum eye height above terrain
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			WindowWidth:  1280,
			WindowHeight: 800,
			RenderWidth:  320,
			RenderHeight: 200,
			Fullscreen:   false,
			VSync:        true,
			ShowFPS:      false,
		},
		Maps: MapsConfig{
			Seed:      1,
			GenWidth:  1024,
			GenHeight: 1024,
		},
		Camera: CameraConfig{
			StartX:      512,
			StartY:      512,
			StartHeight: 150,
			MoveSpeed:   60,
			TurnSpeed:   1.2,
			ClimbSpeed:  50,
			Clearance:   10,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
