package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetState(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfg = nil
	configPathOverride = ""
	t.Cleanup(func() {
		viper.Reset()
		cfg = nil
		configPathOverride = ""
	})
}

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		resetState(t)

		// Search path points at empty directories only
		oldWd, _ := os.Getwd()
		require.NoError(t, os.Chdir(t.TempDir()))
		defer os.Chdir(oldWd)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())

		require.NoError(t, Init())

		c := Get()
		assert.Equal(t, "glcompat", c.Window.Title)
		assert.Equal(t, 854, c.Window.Width)
		assert.Equal(t, 480, c.Window.Height)
		assert.Equal(t, 2, c.GL.VersionMajor)
		assert.Equal(t, 1, c.GL.VersionMinor)
		assert.True(t, c.GL.DoubleBuffer)
		assert.Equal(t, 128, c.Input.KeyboardCapacity)
		assert.Equal(t, 256, c.Input.MouseCapacity)
		assert.Equal(t, 44100, c.Audio.Frequency)
	})

	t.Run("merges a partial file over defaults", func(t *testing.T) {
		resetState(t)
		path := filepath.Join(t.TempDir(), "glcompat.toml")
		content := `[window]
title = "Legacy Game"
width = 1280

[input]
repeat_events = true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		SetConfigPath(path)

		require.NoError(t, Init())

		c := Get()
		assert.Equal(t, "Legacy Game", c.Window.Title)
		assert.Equal(t, 1280, c.Window.Width)
		assert.Equal(t, 480, c.Window.Height)
		assert.True(t, c.Input.RepeatEvents)
		assert.Equal(t, 128, c.Input.KeyboardCapacity)
	})

	t.Run("rejects invalid capacities", func(t *testing.T) {
		resetState(t)
		path := filepath.Join(t.TempDir(), "glcompat.toml")
		require.NoError(t, os.WriteFile(path, []byte("[input]\nmouse_capacity = 0\n"), 0644))
		SetConfigPath(path)

		err := Init()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mouse_capacity")
	})

	t.Run("reports malformed TOML", func(t *testing.T) {
		resetState(t)
		path := filepath.Join(t.TempDir(), "glcompat.toml")
		require.NoError(t, os.WriteFile(path, []byte("[window\ntitle = 1"), 0644))
		SetConfigPath(path)

		assert.Error(t, Init())
	})
}

func TestGetReturnsCopyOfDefaults(t *testing.T) {
	resetState(t)

	c := Get()
	c.Window.Title = "changed"
	assert.Equal(t, "glcompat", DefaultConfig.Window.Title)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, true},
		{"negative keyboard capacity", func(c *Config) { c.Input.KeyboardCapacity = -1 }, true},
		{"GL major zero", func(c *Config) { c.GL.VersionMajor = 0 }, true},
		{"no audio device skips frequency", func(c *Config) {
			c.Audio.OpenDevice = false
			c.Audio.Frequency = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndPath(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "nested", "glcompat.toml")
	SetConfigPath(path)
	assert.Equal(t, path, GetConfigPath())

	setDefaults()
	require.NoError(t, Save())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
