package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"scrambleLength": 40,
		"scrambleSeed": 7,
		"color": false
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 40, s.ScrambleLength)
	assert.Equal(t, uint64(7), s.ScrambleSeed)
	assert.False(t, s.Color)
	assert.Equal(t, 1260, s.OrderLimit)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "", s.DBPath)
	assert.Equal(t, 25, s.ScrambleLength)
	assert.Equal(t, uint64(0), s.ScrambleSeed)
	assert.False(t, s.InvariantChecks)
	assert.True(t, s.Color)
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("GOCUBE_SCRAMBLELENGTH", "12")

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, 12, GetInt("scrambleLength"))
}

func TestCurrent_RejectsBadLength(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(t.TempDir()))

	Set("scrambleLength", 0)
	_, err := Current()
	require.Error(t, err)
}

func TestGetters(t *testing.T) {
	t.Cleanup(viper.Reset)
	Set("logLevel", "warn")
	Set("color", true)
	assert.Equal(t, "warn", GetString("logLevel"))
	assert.True(t, GetBool("color"))
}
