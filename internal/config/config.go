// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	GL       GLConfig       `mapstructure:"gl"`
	Platform PlatformConfig `mapstructure:"platform"`
	Input    InputConfig    `mapstructure:"input"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// WindowConfig contains the initial display window settings
type WindowConfig struct {
	Title      string   `mapstructure:"title"`
	Width      int      `mapstructure:"width"`
	Height     int      `mapstructure:"height"`
	Resizable  bool     `mapstructure:"resizable"`
	Fullscreen bool     `mapstructure:"fullscreen"`
	VSync      bool     `mapstructure:"vsync"`
	Icons      []string `mapstructure:"icons"` // PNG paths, square images
}

// GLConfig contains OpenGL context hints
type GLConfig struct {
	VersionMajor         int  `mapstructure:"version_major"`
	VersionMinor         int  `mapstructure:"version_minor"`
	BackwardCompatible   bool `mapstructure:"backward_compatible"`
	Debug                bool `mapstructure:"debug"`
	NoError              bool `mapstructure:"no_error"`
	SRGB                 bool `mapstructure:"srgb"`
	DoubleBuffer         bool `mapstructure:"double_buffer"`
	FullscreenBorderless bool `mapstructure:"fullscreen_borderless"`
	// Makes the borderless window one pixel taller so Windows does not treat
	// it as exclusive fullscreen
	BorderlessWindowsFix bool `mapstructure:"borderless_windows_fix"`
}

// PlatformConfig contains window-system specific identifiers
type PlatformConfig struct {
	CocoaFrameName         string `mapstructure:"cocoa_frame_name"`
	CocoaRetinaFramebuffer bool   `mapstructure:"cocoa_retina_framebuffer"`
	X11ClassName           string `mapstructure:"x11_class_name"`
	WaylandAppID           string `mapstructure:"wayland_app_id"`
}

// InputConfig contains keyboard and mouse settings
type InputConfig struct {
	KeyboardCapacity int  `mapstructure:"keyboard_capacity"`
	MouseCapacity    int  `mapstructure:"mouse_capacity"`
	RepeatEvents     bool `mapstructure:"repeat_events"`
	RawMouseMotion   bool `mapstructure:"raw_mouse_motion"`
	ClipMouse        bool `mapstructure:"clip_mouse"`
}

// AudioConfig contains audio device settings
type AudioConfig struct {
	Frequency    int  `mapstructure:"frequency"`
	Refresh      int  `mapstructure:"refresh"`
	Synchronized bool `mapstructure:"synchronized"`
	OpenDevice   bool `mapstructure:"open_device"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	FileLogging bool   `mapstructure:"file_logging"` // Enable/disable file logging
	LogLevel    string `mapstructure:"log_level"`    // Override LOG_LEVEL env var
	File        string `mapstructure:"file"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups"`
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Window: WindowConfig{
			Title:      "glcompat",
			Width:      854,
			Height:     480,
			Resizable:  true,
			Fullscreen: false,
			VSync:      true,
			Icons:      []string{},
		},
		GL: GLConfig{
			VersionMajor:         2,
			VersionMinor:         1,
			BackwardCompatible:   false,
			Debug:                false,
			NoError:              false,
			SRGB:                 false,
			DoubleBuffer:         true,
			FullscreenBorderless: false,
			BorderlessWindowsFix: true,
		},
		Platform: PlatformConfig{
			CocoaFrameName:         "Minecraft",
			CocoaRetinaFramebuffer: false,
			X11ClassName:           "Minecraft",
			WaylandAppID:           "Minecraft",
		},
		Input: InputConfig{
			KeyboardCapacity: 128,
			MouseCapacity:    256,
			RepeatEvents:     false,
			RawMouseMotion:   true,
			ClipMouse:        false,
		},
		Audio: AudioConfig{
			Frequency:    44100,
			Refresh:      60,
			Synchronized: false,
			OpenDevice:   true,
		},
		Logging: LoggingConfig{
			FileLogging: false,
			LogLevel:    "", // Empty means use LOG_LEVEL env var
			File:        defaultLogFile(),
			MaxSizeMB:   10,
			MaxBackups:  3,
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("glcompat")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		// Add config paths in order of precedence
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "glcompat"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	return nil
}

// setDefaults registers every field individually so partial files merge
func setDefaults() {
	d := DefaultConfig

	viper.SetDefault("window.title", d.Window.Title)
	viper.SetDefault("window.width", d.Window.Width)
	viper.SetDefault("window.height", d.Window.Height)
	viper.SetDefault("window.resizable", d.Window.Resizable)
	viper.SetDefault("window.fullscreen", d.Window.Fullscreen)
	viper.SetDefault("window.vsync", d.Window.VSync)
	viper.SetDefault("window.icons", d.Window.Icons)

	viper.SetDefault("gl.version_major", d.GL.VersionMajor)
	viper.SetDefault("gl.version_minor", d.GL.VersionMinor)
	viper.SetDefault("gl.backward_compatible", d.GL.BackwardCompatible)
	viper.SetDefault("gl.debug", d.GL.Debug)
	viper.SetDefault("gl.no_error", d.GL.NoError)
	viper.SetDefault("gl.srgb", d.GL.SRGB)
	viper.SetDefault("gl.double_buffer", d.GL.DoubleBuffer)
	viper.SetDefault("gl.fullscreen_borderless", d.GL.FullscreenBorderless)
	viper.SetDefault("gl.borderless_windows_fix", d.GL.BorderlessWindowsFix)

	viper.SetDefault("platform.cocoa_frame_name", d.Platform.CocoaFrameName)
	viper.SetDefault("platform.cocoa_retina_framebuffer", d.Platform.CocoaRetinaFramebuffer)
	viper.SetDefault("platform.x11_class_name", d.Platform.X11ClassName)
	viper.SetDefault("platform.wayland_app_id", d.Platform.WaylandAppID)

	viper.SetDefault("input.keyboard_capacity", d.Input.KeyboardCapacity)
	viper.SetDefault("input.mouse_capacity", d.Input.MouseCapacity)
	viper.SetDefault("input.repeat_events", d.Input.RepeatEvents)
	viper.SetDefault("input.raw_mouse_motion", d.Input.RawMouseMotion)
	viper.SetDefault("input.clip_mouse", d.Input.ClipMouse)

	viper.SetDefault("audio.frequency", d.Audio.Frequency)
	viper.SetDefault("audio.refresh", d.Audio.Refresh)
	viper.SetDefault("audio.synchronized", d.Audio.Synchronized)
	viper.SetDefault("audio.open_device", d.Audio.OpenDevice)

	viper.SetDefault("logging.file_logging", d.Logging.FileLogging)
	viper.SetDefault("logging.log_level", d.Logging.LogLevel)
	viper.SetDefault("logging.file", d.Logging.File)
	viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
}

// Validate rejects settings the display and input layers cannot honour
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Input.KeyboardCapacity <= 0 {
		return fmt.Errorf("input.keyboard_capacity must be positive, got %d", c.Input.KeyboardCapacity)
	}
	if c.Input.MouseCapacity <= 0 {
		return fmt.Errorf("input.mouse_capacity must be positive, got %d", c.Input.MouseCapacity)
	}
	if c.GL.VersionMajor < 1 {
		return fmt.Errorf("invalid GL version %d.%d", c.GL.VersionMajor, c.GL.VersionMinor)
	}
	if c.Audio.OpenDevice && c.Audio.Frequency <= 0 {
		return fmt.Errorf("audio.frequency must be positive, got %d", c.Audio.Frequency)
	}
	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		d := DefaultConfig
		return &d
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	// Check if config file is already loaded
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "glcompat.toml"
	}

	return filepath.Join(dir, "glcompat", "glcompat.toml")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "glcompat.log"
	}
	return filepath.Join(dir, "glcompat", "glcompat.log")
}
