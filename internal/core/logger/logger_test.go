package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, sync := Build(Options{Level: "info", JSON: true, Output: zapcore.AddSync(&buf)})

	l.Debug("hidden")
	l.Info("hello", zap.String("entity", "User"))
	sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "User", entry["entity"])
	assert.Contains(t, entry, "ts")
}

func TestBuild_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l, _ := Build(Options{Level: "loud", JSON: true, Output: zapcore.AddSync(&buf)})

	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestBuild_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer
	l, sync := Build(Options{
		Level:  "info",
		JSON:   true,
		Output: zapcore.AddSync(&buf),
		Rotate: FileRotate{Filename: path, MaxSizeMB: 1},
	})

	l.Info("to both sinks")
	sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to both sinks")
	assert.Contains(t, buf.String(), "to both sinks")
}

func TestToWriter(t *testing.T) {
	var buf bytes.Buffer
	l, _ := Build(Options{Level: "debug", JSON: true, Output: zapcore.AddSync(&buf)})

	n, err := ToWriter(l, zapcore.WarnLevel).Write([]byte("from gin\n"))
	require.NoError(t, err)
	assert.Equal(t, len("from gin\n"), n)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "from gin", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
}
