package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ModeDemo, cfg.Panel.Mode)
	assert.Equal(t, time.Second, cfg.DataInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.DisplayInterval())
	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.Equal(t, "localhost:8080", cfg.HTTP.Listen)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hwpanel.yaml")
	cfgText := "serial:\n  port: /dev/ttyACM0\n  baud: 115200\npanel:\n  data_interval_ms: 2000\n"
	require.NoError(t, os.WriteFile(path, []byte(cfgText), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, 2*time.Second, cfg.DataInterval())
	// Port configured, mode unset: real-data path is implied.
	assert.Equal(t, ModeSerial, cfg.Panel.Mode)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hwpanel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panel:\n  mode: wat\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsSerialModeWithoutPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hwpanel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panel:\n  mode: serial\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
