// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Input    InputConfig    `yaml:"input"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Vertical field of view, degrees
}

// InputConfig holds mouse-look settings.
type InputConfig struct {
	// MouseSensitivity is the yaw rotation applied per motion sample,
	// in degrees. Rotation speed does not depend on pointer distance.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`

	// Pointer warp band: when the pointer's x coordinate leaves
	// [WarpMinX, WarpMaxX] it is warped back to (WarpHomeX, WarpHomeY).
	WarpMinX  int `yaml:"warp_min_x"`
	WarpMaxX  int `yaml:"warp_max_x"`
	WarpHomeX int `yaml:"warp_home_x"`
	WarpHomeY int `yaml:"warp_home_y"`
}

// SceneConfig holds optional disk overrides for the built-in meshes,
// keyed by scene-object name.
type SceneConfig struct {
	BottomPath string `yaml:"bottom_path"`
	StairsPath string `yaml:"stairs_path"`
	TopPath    string `yaml:"top_path"`
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
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
		},
		Input: InputConfig{
			MouseSensitivity: 0.4,
			WarpMinX:         100,
			WarpMaxX:         600,
			WarpHomeX:        400,
			WarpHomeY:        100,
		},
		Scene: SceneConfig{},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
