package litscene

import (
	"errors"
	"flag"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width            int
	Height           int
	Title            string
	TextureDir       string
	Debug            bool
	LogLevel         string
	MoveSpeed        float64
	MouseSensitivity float64
	Flashlight       bool
}

func DefaultConfig() Config {
	return Config{
		Width:            1280,
		Height:           960,
		Title:            "OpenGL",
		TextureDir:       "./assets/textures",
		LogLevel:         "info",
		MoveSpeed:        2.5,
		MouseSensitivity: 0.1,
		Flashlight:       true,
	}
}

// RegisterFlags binds every field to fs using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.StringVar(&c.TextureDir, "textures", c.TextureDir, "directory holding the scene textures")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging, overrides -log-level")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "minimum log level: debug, info, warn or error")
	fs.Float64Var(&c.MoveSpeed, "speed", c.MoveSpeed, "camera movement speed in units per second")
	fs.Float64Var(&c.MouseSensitivity, "sensitivity", c.MouseSensitivity, "mouse look degrees per pixel")
	fs.BoolVar(&c.Flashlight, "flashlight", c.Flashlight, "start with the flashlight on")
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("%w: speed %v", ErrInvalidConfig, c.MoveSpeed)
	}
	if c.MouseSensitivity <= 0 {
		return fmt.Errorf("%w: sensitivity %v", ErrInvalidConfig, c.MouseSensitivity)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level is the logger threshold. -debug wins over -log-level.
func (c Config) Level() Level {
	if c.Debug {
		return LevelDebug
	}
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return LevelInfo
	}
	return level
}

// Aspect is fixed for the session; resizing only changes the viewport.
func (c Config) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}
