package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "loud")
}

func TestNewWritesSessionTaggedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	logger, err := New(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("dispatch")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(strings.Split(string(data), "\n")[0])

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "DEBUG", entry["level"])
	require.Equal(t, "dispatch", entry["msg"])
	require.NotEmpty(t, entry["session"])
}
