// Package config loads the optional demo settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filename is looked up in the working directory.
const Filename = "instancing.yml"

// maxConfigSize guards against reading an unrelated large file by mistake.
const maxConfigSize = 64 * 1024

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shaders ShaderConfig  `yaml:"shaders"`
	Camera  [3]float32    `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	ShowFPS   bool   `yaml:"show_fps"`
	Resizable bool   `yaml:"resizable"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type RenderConfig struct {
	Instances int32 `yaml:"instances"`
}

type InputConfig struct {
	ToggleKey string `yaml:"toggle_key"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     600,
			Height:    600,
			Title:     "Example",
			VSync:     true,
			ShowFPS:   true,
			Resizable: true,
		},
		Shaders: ShaderConfig{
			Vertex:   "./glsl/vertShader.glsl",
			Fragment: "./glsl/fragShader.glsl",
		},
		Camera:  [3]float32{0, 0, 420},
		Render:  RenderConfig{Instances: 100000},
		Input:   InputConfig{ToggleKey: "space"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Parse decodes data over the defaults, so omitted keys keep their default
// values, then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// Load reads path. A missing file yields the defaults silently; any other
// problem is logged and also yields the defaults.
func Load(path string) Config {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to stat config", "path", path, "error", err)
		}
		return Default()
	}
	if info.Size() > maxConfigSize {
		slog.Warn("config file too large", "path", path, "size", info.Size())
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read config", "path", path, "error", err)
		return Default()
	}

	cfg, err := Parse(data)
	if err != nil {
		slog.Warn("failed to parse config", "path", path, "error", err)
		return Default()
	}
	slog.Debug("loaded config", "path", path)
	return cfg
}

// Validate resets out-of-range values to their defaults.
func (c *Config) Validate() {
	def := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		slog.Warn("invalid window size, using default",
			"width", c.Window.Width, "height", c.Window.Height)
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Render.Instances <= 0 {
		slog.Warn("invalid instance count, using default", "instances", c.Render.Instances)
		c.Render.Instances = def.Render.Instances
	}
	if _, ok := levels[strings.ToLower(c.Logging.Level)]; !ok {
		slog.Warn("unknown log level, using default", "level", c.Logging.Level)
		c.Logging.Level = def.Logging.Level
	}
	if strings.TrimSpace(c.Input.ToggleKey) == "" {
		c.Input.ToggleKey = def.Input.ToggleKey
	}
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the configured slog level.
func (c Config) LogLevel() slog.Level {
	if l, ok := levels[strings.ToLower(c.Logging.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}
