package config

import (
	"testing"

	"matchline/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, StorePrefs, cfg.Store)
	assert.Equal(t, "ANSWERS", cfg.StorageKey)
	assert.Equal(t, "matchline.db", cfg.DBPath)
	assert.True(t, cfg.HotReload)

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, 2.0, style.Width)
	assert.Equal(t, colorutil.Blue, style.Stroke)
	assert.Equal(t, colorutil.Red, style.Incorrect)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MATCHLINE_STORE":         "sqlite",
		"MATCHLINE_DB":            "/tmp/answers.db",
		"MATCHLINE_STROKE_WIDTH":  "3.5",
		"MATCHLINE_CORRECT_COLOR": "#0a0",
		"MATCHLINE_HOT_RELOAD":    "false",
	})
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/answers.db", cfg.DBPath)
	assert.False(t, cfg.HotReload)

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, 3.5, style.Width)
	assert.Equal(t, colorutil.Blue, style.Stroke)
	assert.NotEqual(t, colorutil.Blue, style.Correct)
}

func TestLoadRejects(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"store":      {"MATCHLINE_STORE": "redis"},
		"width":      {"MATCHLINE_STROKE_WIDTH": "0"},
		"bad number": {"MATCHLINE_STROKE_WIDTH": "wide"},
		"color":      {"MATCHLINE_INCORRECT_COLOR": "mauve"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(vars)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromProcessEnv(t *testing.T) {
	t.Setenv("MATCHLINE_QUIZ", "capitals.yaml")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "capitals.yaml", cfg.QuizPath)
}
