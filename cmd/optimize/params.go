package main

import (
	"math"

	"github.com/pthm-cable/foodchain/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
// Resource ranges are searched as a minimum plus a spread so that every
// vector yields min <= max.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Environment
			{Name: "min_food_factor", Path: "environment.min_food_factor", Min: 0.05, Max: 1.0, Default: 0.3},
			{Name: "food_spread", Path: "environment.max_food_factor - min_food_factor", Min: 0, Max: 0.8, Default: 0.4},
			{Name: "min_shelter_factor", Path: "environment.min_shelter_factor", Min: 0, Max: 0.5, Default: 0.1},
			{Name: "shelter_spread", Path: "environment.max_shelter_factor - min_shelter_factor", Min: 0, Max: 0.4, Default: 0.1},
			// Reproduction
			{Name: "repro_min_energy", Path: "reproduction.min_energy", Min: 0, Max: 3, Default: 0},
			// Kinship (rounded)
			{Name: "similarity_margin", Path: "kinship.similarity_margin", Min: 0, Max: 3, Default: 1},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Max(spec.Min, math.Min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)

	cfg.Environment.MinFoodFactor = c[0]
	cfg.Environment.MaxFoodFactor = c[0] + c[1]
	cfg.Environment.MinShelterFactor = c[2]
	cfg.Environment.MaxShelterFactor = c[2] + c[3]
	cfg.Reproduction.MinEnergy = c[4]
	cfg.Kinship.SimilarityMargin = int(math.Round(c[5]))
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	env := cfg.Environment
	return []float64{
		env.MinFoodFactor,
		env.MaxFoodFactor - env.MinFoodFactor,
		env.MinShelterFactor,
		env.MaxShelterFactor - env.MinShelterFactor,
		cfg.Reproduction.MinEnergy,
		float64(cfg.Kinship.SimilarityMargin),
	}
}
