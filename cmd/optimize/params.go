package main

import (
	"github.com/pthm-cable/aquarium/config"
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

// NewParamVector creates the standard set of swarm parameters to tune.
// The cap, spawn rows, band and margins stay as configured.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "spawn_chance", Path: "swarm.spawn_chance", Min: 0.002, Max: 0.1, Default: 0.02},
			{Name: "speed_min", Path: "swarm.speed_min", Min: 0.1, Max: 1.0, Default: 0.3},
			{Name: "speed_range", Path: "swarm.speed_range", Min: 0.0, Max: 1.2, Default: 0.6},
			{Name: "avoid_radius", Path: "swarm.avoid_radius", Min: 50, Max: 300, Default: 150},
			{Name: "avoid_strength", Path: "swarm.avoid_strength", Min: 0.5, Max: 6.0, Default: 2.5},
			{Name: "decay_active", Path: "swarm.decay_active", Min: 0.8, Max: 0.99, Default: 0.92},
			{Name: "decay_inactive", Path: "swarm.decay_inactive", Min: 0.8, Max: 0.99, Default: 0.90},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize maps raw values onto [0,1] per parameter.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize maps [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp returns v with every value inside its bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped values into the swarm section of cfg.
// Order matches Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	s := &cfg.Swarm
	s.SpawnChance = c[0]
	s.SpeedMin = c[1]
	s.SpeedRange = c[2]
	s.AvoidRadius = c[3]
	s.AvoidStrength = c[4]
	s.DecayActive = c[5]
	s.DecayInactive = c[6]
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	s := cfg.Swarm
	return []float64{
		s.SpawnChance,
		s.SpeedMin,
		s.SpeedRange,
		s.AvoidRadius,
		s.AvoidStrength,
		s.DecayActive,
		s.DecayInactive,
	}
}
