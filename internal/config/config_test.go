package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"TRIAGE_THEME", "TRIAGE_LOG_LEVEL", "TRIAGE_LOG_FILE", "TRIAGE_DB", "TRIAGE_CARRY_ANSWERS"}

// clearEnv unsets the config variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":memory:", cfg.DB)
	assert.False(t, cfg.CarryAnswers)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIAGE_THEME", "light")
	t.Setenv("TRIAGE_LOG_LEVEL", "debug")
	t.Setenv("TRIAGE_DB", "/tmp/triage.db")
	t.Setenv("TRIAGE_CARRY_ANSWERS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "/tmp/triage.db", cfg.DB)
	assert.True(t, cfg.CarryAnswers)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRIAGE_THEME=light\nTRIAGE_CARRY_ANSWERS=true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.True(t, cfg.CarryAnswers)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIAGE_THEME", "dark")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRIAGE_THEME=light\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"theme", "TRIAGE_THEME", "neon", "TRIAGE_THEME"},
		{"level", "TRIAGE_LOG_LEVEL", "loud", "TRIAGE_LOG_LEVEL"},
		{"bool", "TRIAGE_CARRY_ANSWERS", "maybe", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLogPath(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		cfg := &Config{LogFile: StderrLog}
		p, err := cfg.LogPath()
		require.NoError(t, err)
		assert.Equal(t, "-", p)
	})

	t.Run("xdg state home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)

		p, err := (&Config{}).LogPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "triage", "triage.log"), p)
	})
}
