package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/avelez/haulplan/internal/planner"
)

const (
	defaultLogLevel = "info"

	envLocations = "HAULPLAN_LOCATIONS"
	envPlanFile  = "HAULPLAN_PLAN"
	envLogLevel  = "HAULPLAN_LOG_LEVEL"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Locations holds the default roster names offered at the prompts; it is
// always normalized to exactly four entries.
type Config struct {
	Locations []string
	PlanFile  string
	LogLevel  string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Locations []string `yaml:"locations"`
	PlanFile  string   `yaml:"plan_file"`
	LogLevel  string   `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile   string
	LocationsStr *string
	PlanFile     *string
	LogLevel     *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults.
// A .env file in the working directory, when present, seeds the environment
// before the lookup.
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	_ = godotenv.Load()
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	// Normalize and validate the final roster
	locations, err := planner.NormalizeLocations(cfg.Locations)
	if err != nil {
		return Config{}, err
	}
	cfg.Locations = locations

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Locations: nil, // normalized to "Location N" names at the end of Load
		LogLevel:  defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if len(yamlCfg.Locations) > 0 {
		cfg.Locations = yamlCfg.Locations
	}
	if yamlCfg.PlanFile != "" {
		cfg.PlanFile = yamlCfg.PlanFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv(envLocations)); raw != "" {
		cfg.Locations = parseLocations(raw)
	}

	if plan := strings.TrimSpace(os.Getenv(envPlanFile)); plan != "" {
		cfg.PlanFile = plan
	}

	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		cfg.LogLevel = level
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.LocationsStr != nil && *overrides.LocationsStr != "" {
		cfg.Locations = parseLocations(*overrides.LocationsStr)
	}

	if overrides.PlanFile != nil && *overrides.PlanFile != "" {
		cfg.PlanFile = *overrides.PlanFile
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// parseLocations splits a comma-separated location list. Blank entries are
// kept so "Depot,,Ridge" leaves the second roster slot on its default name.
func parseLocations(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = strings.TrimSpace(part)
	}
	return names
}
