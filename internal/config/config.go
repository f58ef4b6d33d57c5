package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"nautilus/internal/logging"
)

// Config holds all nautilus configuration.
type Config struct {
	Name string `yaml:"name"`

	// Decision session settings
	Session SessionConfig `yaml:"session"`

	// Problem source
	Problem ProblemConfig `yaml:"problem"`

	// Headless answers
	Script ScriptConfig `yaml:"script"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`
}

// SessionConfig configures the iteration loop.
type SessionConfig struct {
	Backend             string `yaml:"backend"` // auto, terminal, line, scripted
	NautilusIterations  int    `yaml:"nautilus_iterations"`
	ENautilusIterations int    `yaml:"enautilus_iterations"`
	Branching           int    `yaml:"branching"`
}

// ProblemConfig selects the problem to solve.
type ProblemConfig struct {
	Name       string `yaml:"name"`        // built-in problem name
	PointsFile string `yaml:"points_file"` // YAML point set; overrides Name
	Samples    int    `yaml:"samples"`     // grid samples per variable for built-ins
}

// ScriptConfig holds the answers given by the scripted backend.
type ScriptConfig struct {
	PreferenceStyle     int      `yaml:"preference_style"`
	Iterations          int      `yaml:"iterations"`
	ENautilusIterations int      `yaml:"enautilus_iterations"`
	Branching           int      `yaml:"branching"`
	Preferences         []string `yaml:"preferences"`
	Selections          []string `yaml:"selections"`
	Rankings            []string `yaml:"rankings"`
	StopAtRemaining     int      `yaml:"stop_at_remaining"`
}

// UIConfig configures terminal styling.
type UIConfig struct {
	Theme   string `yaml:"theme"` // auto, light, dark
	NoColor bool   `yaml:"no_color"`
}

// BuiltinProblems lists the problems that can be named without a points file.
var BuiltinProblems = []string{"river-pollution"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "nautilus",

		Session: SessionConfig{
			Backend:             "auto",
			NautilusIterations:  5,
			ENautilusIterations: 5,
			Branching:           5,
		},

		Problem: ProblemConfig{
			Name:    "river-pollution",
			Samples: 40,
		},

		Script: ScriptConfig{
			PreferenceStyle:     2,
			Iterations:          4,
			ENautilusIterations: 5,
			Branching:           5,
			Preferences: []string{
				"2,2,1,1",
				"2,2,1,1",
				"2,3,1,4",
				"1,1,2,2",
			},
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			Dir:       ".nautilus/logs",
			DebugMode: false,
		},

		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NAUTILUS_BACKEND"); v != "" {
		c.Session.Backend = v
		logging.Config("backend overridden by NAUTILUS_BACKEND=%s", v)
	}
	if v := os.Getenv("NAUTILUS_PROBLEM_FILE"); v != "" {
		c.Problem.PointsFile = v
		logging.Config("points file overridden by NAUTILUS_PROBLEM_FILE=%s", v)
	}
	if v := os.Getenv("NAUTILUS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("NAUTILUS_DEBUG"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = on
		}
	}
	// https://no-color.org: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
}

// ValidBackends lists the accepted session backends.
var ValidBackends = []string{"auto", "terminal", "line", "scripted", "headless"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidBackends, strings.ToLower(c.Session.Backend)) {
		return fmt.Errorf("invalid session backend: %s (valid: %v)", c.Session.Backend, ValidBackends)
	}
	if c.Session.NautilusIterations < 1 {
		return fmt.Errorf("session.nautilus_iterations must be at least 1, got %d", c.Session.NautilusIterations)
	}
	if c.Session.ENautilusIterations < 1 {
		return fmt.Errorf("session.enautilus_iterations must be at least 1, got %d", c.Session.ENautilusIterations)
	}
	if c.Session.Branching < 1 {
		return fmt.Errorf("session.branching must be at least 1, got %d", c.Session.Branching)
	}

	if c.Problem.PointsFile == "" && !contains(BuiltinProblems, c.Problem.Name) {
		return fmt.Errorf("unknown problem: %s (valid: %v, or set problem.points_file)", c.Problem.Name, BuiltinProblems)
	}
	if c.Problem.PointsFile == "" && c.Problem.Samples < 2 {
		return fmt.Errorf("problem.samples must be at least 2, got %d", c.Problem.Samples)
	}

	if s := c.Script.PreferenceStyle; s < 0 || s > 3 {
		return fmt.Errorf("script.preference_style must be 1, 2 or 3, got %d", s)
	}

	switch c.UI.Theme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme: %s (valid: auto, light, dark)", c.UI.Theme)
	}

	return c.Logging.Validate()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
