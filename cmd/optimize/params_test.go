package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestParamVectorDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	want := pv.DefaultVector()
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("%s: expected default %v in config, got %v", pv.Specs[i].Name, want[i], got[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	pv := NewParamVector()
	values := []float64{1, -5, 0.5, 1000, 2, 0.5, 0.95}
	pv.ApplyToConfig(cfg, values)

	if cfg.Swarm.SpawnChance != 0.1 {
		t.Errorf("expected spawn chance clamped to 0.1, got %v", cfg.Swarm.SpawnChance)
	}
	if cfg.Swarm.SpeedMin != 0.1 {
		t.Errorf("expected speed min clamped to 0.1, got %v", cfg.Swarm.SpeedMin)
	}
	if cfg.Swarm.AvoidRadius != 300 {
		t.Errorf("expected avoid radius clamped to 300, got %v", cfg.Swarm.AvoidRadius)
	}
	if cfg.Swarm.DecayActive != 0.8 {
		t.Errorf("expected decay active clamped to 0.8, got %v", cfg.Swarm.DecayActive)
	}
	if cfg.Swarm.DecayInactive != 0.95 {
		t.Errorf("expected decay inactive 0.95, got %v", cfg.Swarm.DecayInactive)
	}
}

func TestComputeQuality(t *testing.T) {
	if q := computeQuality(nil, 12); q != 0 {
		t.Errorf("expected zero quality with no windows, got %v", q)
	}

	ideal := make([]telemetry.WindowStats, 6)
	for i := range ideal {
		ideal[i] = telemetry.WindowStats{FishCount: 8, Exits: 4, AvoidRate: 8 * targetPushed, AvoidMax: 2}
	}
	empty := make([]telemetry.WindowStats, 6)

	qi := computeQuality(ideal, 12)
	qe := computeQuality(empty, 12)
	if qi <= qe {
		t.Errorf("expected a lively tank to beat an empty one, got %v <= %v", qi, qe)
	}
	if qi < 0.8 || qi > 1 {
		t.Errorf("expected near-ideal quality in [0.8, 1], got %v", qi)
	}
}
