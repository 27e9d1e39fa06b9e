package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"maitri/internal/wellbeing"
)

// YAMLConfig represents the structure of the config.yaml file.
// Holds the crew roster, which is easier to manage in YAML than env vars.
type YAMLConfig struct {
	Mission MissionConfig         `yaml:"mission"`
	Crew    []wellbeing.Astronaut `yaml:"crew"`
}

// MissionConfig defines mission-wide settings.
type MissionConfig struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"` // YYYY-MM-DD
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// A missing file yields the built-in roster and mission start.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	cfg := &YAMLConfig{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// Set defaults
	if len(cfg.Crew) == 0 {
		cfg.Crew = wellbeing.DefaultCrew()
	}
	if cfg.Mission.Start != "" {
		if _, err := time.Parse(time.DateOnly, cfg.Mission.Start); err != nil {
			return nil, fmt.Errorf("mission.start: %w", err)
		}
	}

	return cfg, nil
}

// MissionStart returns the configured mission start date, or the default.
func (c *YAMLConfig) MissionStart() time.Time {
	if c == nil || c.Mission.Start == "" {
		return wellbeing.DefaultMissionStart
	}
	t, err := time.Parse(time.DateOnly, c.Mission.Start)
	if err != nil {
		return wellbeing.DefaultMissionStart
	}
	return t
}

// GetAstronaut finds a crew member by name.
func (c *YAMLConfig) GetAstronaut(name string) *wellbeing.Astronaut {
	if c == nil {
		return nil
	}
	for i := range c.Crew {
		if c.Crew[i].Name == name {
			return &c.Crew[i]
		}
	}
	return nil
}
