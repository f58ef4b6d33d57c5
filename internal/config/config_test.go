package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NAUTILUS_BACKEND", "NAUTILUS_PROBLEM_FILE", "NAUTILUS_LOG_LEVEL", "NAUTILUS_DEBUG", "NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "nautilus" {
		t.Errorf("expected Name=nautilus, got %s", cfg.Name)
	}
	if cfg.Session.NautilusIterations != 5 {
		t.Errorf("expected NautilusIterations=5, got %d", cfg.Session.NautilusIterations)
	}
	if cfg.Session.Branching != 5 {
		t.Errorf("expected Branching=5, got %d", cfg.Session.Branching)
	}
	if len(cfg.Script.Preferences) != 4 {
		t.Errorf("expected 4 scripted preferences, got %d", len(cfg.Script.Preferences))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Session.Backend = "line"
	cfg.Problem.PointsFile = "points.yaml"
	cfg.Script.Selections = []string{"2", "1"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Session.Backend != "line" {
		t.Errorf("expected Backend=line, got %s", loaded.Session.Backend)
	}
	if loaded.Problem.PointsFile != "points.yaml" {
		t.Errorf("expected PointsFile=points.yaml, got %s", loaded.Problem.PointsFile)
	}
	if len(loaded.Script.Selections) != 2 || loaded.Script.Selections[0] != "2" {
		t.Errorf("unexpected selections %v", loaded.Script.Selections)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.Backend != "auto" {
		t.Errorf("expected default backend, got %s", cfg.Session.Backend)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session:\n  branching: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.Branching != 3 {
		t.Errorf("expected Branching=3, got %d", cfg.Session.Branching)
	}
	if cfg.Session.NautilusIterations != 5 {
		t.Errorf("expected default NautilusIterations=5, got %d", cfg.Session.NautilusIterations)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Session.Backend = "gui" }},
		{"iterations", func(c *Config) { c.Session.NautilusIterations = 0 }},
		{"enautilus iterations", func(c *Config) { c.Session.ENautilusIterations = -1 }},
		{"branching", func(c *Config) { c.Session.Branching = 0 }},
		{"problem", func(c *Config) { c.Problem.Name = "dtlz2" }},
		{"samples", func(c *Config) { c.Problem.Samples = 1 }},
		{"style", func(c *Config) { c.Script.PreferenceStyle = 4 }},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Problem.Name = "custom"
	cfg.Problem.PointsFile = "points.yaml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("points file should allow any problem name: %v", err)
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	if lc.IsCategoryEnabled("method") {
		t.Error("categories are off outside debug mode")
	}
	lc.DebugMode = true
	if !lc.IsCategoryEnabled("method") {
		t.Error("categories default to on in debug mode")
	}
	lc.Categories = map[string]bool{"method": false}
	if lc.IsCategoryEnabled("method") {
		t.Error("explicit toggle ignored")
	}
	if !lc.IsCategoryEnabled("prompt") {
		t.Error("unlisted category should be on")
	}
}

func TestLoggingConfig_Options(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json", Dir: "logs", DebugMode: true}
	opts := lc.Options()
	if !opts.JSONFormat || opts.Dir != "logs" || !opts.DebugMode || opts.Level != "debug" {
		t.Errorf("unexpected options %+v", opts)
	}
}
