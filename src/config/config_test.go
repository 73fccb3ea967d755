package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for key := range defaults {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPIBaseURL)
	assert.Equal(t, 6, cfg.TeamSize)
	assert.Equal(t, "Winning Team", cfg.WinnerDir)
	assert.Equal(t, "battles", cfg.BucketPrefix)
	assert.False(t, cfg.MirrorToS3())
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POKEAPI_BASE_URL", "http://localhost:9000/api/v2")
	t.Setenv("TEAM_SIZE", "3")
	t.Setenv("BUCKET_NAME", "sprites")
	t.Setenv("_HANDLER", "battle")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api/v2", cfg.PokeAPIBaseURL)
	assert.Equal(t, 3, cfg.TeamSize)
	assert.True(t, cfg.MirrorToS3())
	assert.Equal(t, "battle", cfg.Handler)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WINNER_DIR=champions\nLOG_LEVEL=debug\nTEAM_SIZE=4\n"), 0o644))
	t.Setenv("TEAM_SIZE", "5")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "champions", cfg.WinnerDir)
	assert.Equal(t, 5, cfg.TeamSize)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TeamSize)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero team", key: "TEAM_SIZE", val: "0"},
		{name: "non numeric team", key: "TEAM_SIZE", val: "six"},
		{name: "unknown level", key: "LOG_LEVEL", val: "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load("")

			assert.Error(t, err)
		})
	}
}
