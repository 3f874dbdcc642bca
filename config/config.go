// Package config builds the process configuration exactly once at startup.
// Nothing else in the repository reads environment state; collaborators
// receive what they need from this object.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the optional YAML configuration file looked up in the
// working directory.
const DefaultFile = ".browseruse.yaml"

const (
	DefaultProvider       = "gemini"
	DefaultAddr           = ":8501"
	DefaultGIFSpeedFactor = 2
	DefaultReplayPath     = "agent_history.json"
)

type Config struct {
	// Provider is the default LLM provider key, one of "openai", "gemini".
	Provider string `yaml:"provider"`
	// Addr is the listen address of the web UI.
	Addr string `yaml:"addr"`
	// GIFSpeedFactor divides each frame duration of the replay GIF.
	GIFSpeedFactor int `yaml:"gif_speed_factor"`
	// StrictErrors makes recorded errors fail a run even when the engine
	// reported a "done" action.
	StrictErrors bool `yaml:"strict_errors"`
	// RunHeadful shows the browser window when a session is launched.
	RunHeadful bool `yaml:"headful"`
	// ChromePath points at the user's own Chrome executable for the
	// "use browser instance" toggle.
	ChromePath string `yaml:"chrome_path"`
	// ReplayPath is the recorded-run file the replay engine reads.
	ReplayPath string `yaml:"replay_path"`

	// Credentials come from the environment only, never from the file.
	OpenAIAPIKey string `yaml:"-"`
	GoogleAPIKey string `yaml:"-"`
}

// Load builds the configuration from defaults, then the YAML file at path
// (missing file is fine when path is DefaultFile), then environment
// variables, in that order of increasing precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Provider:       DefaultProvider,
		Addr:           DefaultAddr,
		GIFSpeedFactor: DefaultGIFSpeedFactor,
		ReplayPath:     DefaultReplayPath,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) || path != DefaultFile {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LLM_TYPE"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.GoogleAPIKey = v
	}
	if v := os.Getenv("CHROME_INSTANCE_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("GIF_SPEED_FACTOR"); v != "" {
		if factor, err := strconv.Atoi(v); err == nil {
			c.GIFSpeedFactor = factor
		}
	}
}

func (c *Config) validate() error {
	if c.GIFSpeedFactor < 1 {
		return fmt.Errorf("gif_speed_factor must be a positive integer, got %d", c.GIFSpeedFactor)
	}
	return nil
}
