package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
}

func TestNew(t *testing.T) {
	t.Run("console format", func(t *testing.T) {
		logger, err := New(&Config{Level: "debug", Format: "console", Output: "stdout", TimeFormat: "15:04:05"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("json format", func(t *testing.T) {
		logger, err := New(&Config{Level: "warn", Format: "json", Output: "stderr", TimeFormat: "15:04:05"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		logger, err := New(&Config{Level: "info", Format: "json", Output: path, TimeFormat: "15:04:05"})
		require.NoError(t, err)
		logger.Info("written to file")
		require.NoError(t, logger.Sync())
		assert.FileExists(t, path)
	})
}

func TestNewForEnvironment(t *testing.T) {
	t.Run("production defaults to json", func(t *testing.T) {
		logger, err := NewForEnvironment("production", "", "", "")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("overrides win over environment defaults", func(t *testing.T) {
		logger, err := NewForEnvironment("production", "error", "", "")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":    zapcore.DebugLevel,
		"info":     zapcore.InfoLevel,
		"warn":     zapcore.WarnLevel,
		"warning":  zapcore.WarnLevel,
		"error":    zapcore.ErrorLevel,
		"fatal":    zapcore.FatalLevel,
		"ERROR":    zapcore.ErrorLevel,
		"nonsense": zapcore.InfoLevel,
		"":         zapcore.InfoLevel,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestJSONLogOutput(t *testing.T) {
	var buf bytes.Buffer
	encoder := createEncoder(&Config{Format: "json", TimeFormat: "15:04:05"})
	core := zapcore.NewCore(encoder, zapcore.AddSync(&buf), zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("snapshot refreshed", zap.Int("orders", 3))
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot refreshed", entry["msg"])
	assert.Equal(t, float64(3), entry["orders"])
	assert.Equal(t, "info", entry["level"])
}
