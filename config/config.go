// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Reproduction modes.
const (
	ReproduceSingle    = "single"     // exactly one child per reproduction event
	ReproducePerEnergy = "per_energy" // one child per whole unit of energy
)

// Config holds all simulation configuration parameters.
type Config struct {
	Gene         GeneConfig         `yaml:"gene"`
	Individual   IndividualConfig   `yaml:"individual"`
	Population   PopulationConfig   `yaml:"population"`
	Environment  EnvironmentConfig  `yaml:"environment"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Kinship      KinshipConfig      `yaml:"kinship"`
	Lineage      LineageConfig      `yaml:"lineage"`
	Play         PlayConfig         `yaml:"play"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
	Viewer       ViewerConfig       `yaml:"viewer"`
	Server       ServerConfig       `yaml:"server"`
}

// GeneConfig holds the value domain and mutation parameters shared by all genes.
type GeneConfig struct {
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	ShiftRange float64 `yaml:"shift_range"` // Full width of the uniform shift noise
	FlipChance float64 `yaml:"flip_chance"` // Probability a mutation inverts instead of shifting
}

// IndividualConfig holds per-individual energy and age parameters.
type IndividualConfig struct {
	MaxEnergy     float64 `yaml:"max_energy"`
	InitialEnergy float64 `yaml:"initial_energy"`
	AdultAge      int     `yaml:"adult_age"`
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Target          int `yaml:"target"`           // Environment scale: resources are sized for this many
	MigrationFloor  int `yaml:"migration_floor"`  // Migrants arrive while living count is below this
	InitialFounders int `yaml:"initial_founders"` // Random individuals created on day 0
	InitialDays     int `yaml:"initial_days"`     // Doubling rounds before the founders are discarded
}

// EnvironmentConfig holds daily resource regeneration parameters.
// Food and shelter are drawn uniformly from [min, max] * population.target.
type EnvironmentConfig struct {
	MinFoodFactor    float64 `yaml:"min_food_factor"`
	MaxFoodFactor    float64 `yaml:"max_food_factor"`
	MinShelterFactor float64 `yaml:"min_shelter_factor"`
	MaxShelterFactor float64 `yaml:"max_shelter_factor"`
	StarvedBodies    bool    `yaml:"starved_bodies"` // Starved individuals leave scavengeable bodies
}

// ReproductionConfig holds reproduction parameters.
type ReproductionConfig struct {
	Mode           string  `yaml:"mode"`            // "single" or "per_energy"
	MinEnergy      float64 `yaml:"min_energy"`      // Energy must exceed this to reproduce
	RequireShelter bool    `yaml:"require_shelter"` // Only sheltered individuals reproduce
}

// KinshipConfig holds the strategy similarity margin used to spare family from predation.
type KinshipConfig struct {
	SimilarityMargin int `yaml:"similarity_margin"`
}

// LineageConfig holds lineage pruning parameters.
type LineageConfig struct {
	ParentRetentionDays int `yaml:"parent_retention_days"` // Days a departed parent id is kept on its children
}

// PlayConfig holds the timer intervals used in play mode.
type PlayConfig struct {
	SlowInterval time.Duration `yaml:"slow_interval"`
	FastInterval time.Duration `yaml:"fast_interval"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow     int `yaml:"stats_window"` // Days per stats window
	BookmarkHistory int `yaml:"bookmark_history"`
}

// ViewerConfig holds display settings for the graphical viewer.
type ViewerConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	MaxRows   int `yaml:"max_rows"` // Table lines visible at once
}

// ServerConfig holds live feed settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Gene.Min >= c.Gene.Max {
		errs = append(errs, fmt.Errorf("gene.min (%g) must be below gene.max (%g)", c.Gene.Min, c.Gene.Max))
	}
	if c.Gene.ShiftRange < 0 {
		errs = append(errs, fmt.Errorf("gene.shift_range must not be negative, got %g", c.Gene.ShiftRange))
	}
	if c.Gene.FlipChance < 0 || c.Gene.FlipChance > 1 {
		errs = append(errs, fmt.Errorf("gene.flip_chance must be in [0, 1], got %g", c.Gene.FlipChance))
	}
	if c.Individual.MaxEnergy <= 0 {
		errs = append(errs, fmt.Errorf("individual.max_energy must be positive, got %g", c.Individual.MaxEnergy))
	}
	if c.Individual.InitialEnergy < 0 || c.Individual.InitialEnergy > c.Individual.MaxEnergy {
		errs = append(errs, fmt.Errorf("individual.initial_energy (%g) must be in [0, max_energy (%g)]",
			c.Individual.InitialEnergy, c.Individual.MaxEnergy))
	}
	if c.Individual.AdultAge < 1 {
		errs = append(errs, fmt.Errorf("individual.adult_age must be at least 1, got %d", c.Individual.AdultAge))
	}
	if c.Environment.MinFoodFactor > c.Environment.MaxFoodFactor {
		errs = append(errs, errors.New("environment.min_food_factor exceeds max_food_factor"))
	}
	if c.Environment.MinShelterFactor > c.Environment.MaxShelterFactor {
		errs = append(errs, errors.New("environment.min_shelter_factor exceeds max_shelter_factor"))
	}
	switch c.Reproduction.Mode {
	case ReproduceSingle, ReproducePerEnergy:
	default:
		errs = append(errs, fmt.Errorf("reproduction.mode %q is not one of %q, %q",
			c.Reproduction.Mode, ReproduceSingle, ReproducePerEnergy))
	}
	if c.Population.Target < 0 || c.Population.MigrationFloor < 0 {
		errs = append(errs, errors.New("population sizes must not be negative"))
	}
	if c.Telemetry.StatsWindow < 1 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window must be at least 1, got %d", c.Telemetry.StatsWindow))
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy suitable for per-run modification.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
