package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
log_level: debug
color: false
prompt: "lox> "
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.False(t, cfg.Color)
	require.Equal(t, "lox> ", cfg.Prompt)
	// Keys left out keep their default
	require.Equal(t, DefaultConfig().HistoryFile, cfg.HistoryFile)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, level)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "log_level: loud\n"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "colour: true\n"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "prompt: [\n"))
	require.Error(t, err)
}

func TestConfigNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "info"

	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
