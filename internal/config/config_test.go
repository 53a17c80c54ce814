package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"nfo", "txt"}, cfg.NonMedia)
}

func TestConfig_GetNonMedia(t *testing.T) {
	tests := []struct {
		name     string
		nonMedia []string
		expected []string
	}{
		{"returns configured list", []string{"nfo", "srt"}, []string{"nfo", "srt"}},
		{"returns default when nil", nil, []string{"nfo", "txt"}},
		{"returns default when empty", []string{}, []string{"nfo", "txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{NonMedia: tt.nonMedia}
			assert.Equal(t, tt.expected, cfg.GetNonMedia())
		})
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  format: json
  level: debug
non_media:
  - nfo
  - srt
  - sub
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.loadFromFile(configPath))

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"nfo", "srt", "sub"}, cfg.NonMedia)
}

func TestConfig_LoadFromFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{not yaml"), 0o644))

	cfg := DefaultConfig()
	assert.Error(t, cfg.loadFromFile(configPath))
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0o644))

	t.Setenv("PLEXTOOLS_CONFIG", configPath)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingEnvPathFails(t *testing.T) {
	t.Setenv("PLEXTOOLS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
