package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"Warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"nonsense", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestSetLevel(t *testing.T) {
	orig := Logger.GetLevel()
	defer Logger.SetLevel(orig)

	Logger.SetLevel(log.InfoLevel)
	SetLevel("")
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())

	SetLevel("debug")
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glcompat.log")

	EnableFile(FileOptions{Path: path, MaxSizeMB: 1})
	Info("written to file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	// Closing twice is harmless
	assert.NoError(t, Close())
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warnf("dropped %d", 3)
	assert.Contains(t, buf.String(), "dropped 3")
}
