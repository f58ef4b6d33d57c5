package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides_Session(t *testing.T) {
	t.Run("NAUTILUS_BACKEND replaces backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NAUTILUS_BACKEND", "scripted")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "scripted", cfg.Session.Backend)
	})

	t.Run("empty NAUTILUS_BACKEND keeps file value", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Session: SessionConfig{Backend: "line"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "line", cfg.Session.Backend)
	})

	t.Run("NAUTILUS_PROBLEM_FILE sets points file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NAUTILUS_PROBLEM_FILE", "/tmp/points.yaml")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/points.yaml", cfg.Problem.PointsFile)
	})
}

func TestEnvOverrides_Logging(t *testing.T) {
	t.Run("NAUTILUS_DEBUG parses booleans", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NAUTILUS_DEBUG", "true")
		t.Setenv("NAUTILUS_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("invalid NAUTILUS_DEBUG is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NAUTILUS_DEBUG", "maybe")

		cfg := &Config{Logging: LoggingConfig{DebugMode: true}}
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
	})
}

func TestEnvOverrides_NoColor(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.True(t, cfg.UI.NoColor)
}
