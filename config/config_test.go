package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Swarm.MaxFish != 12 {
		t.Errorf("expected max_fish 12, got %d", cfg.Swarm.MaxFish)
	}
	if cfg.Swarm.SpawnChance != 0.02 {
		t.Errorf("expected spawn_chance 0.02, got %f", cfg.Swarm.SpawnChance)
	}
	if cfg.Swarm.BandMin != 50 || cfg.Swarm.BandMax != 450 {
		t.Errorf("expected band [50, 450], got [%f, %f]", cfg.Swarm.BandMin, cfg.Swarm.BandMax)
	}
	if cfg.Swarm.AvoidRadius != 150 {
		t.Errorf("expected avoid_radius 150, got %f", cfg.Swarm.AvoidRadius)
	}
	if cfg.Bubbles.Count != 14 {
		t.Errorf("expected 14 bubbles, got %d", cfg.Bubbles.Count)
	}
	if cfg.Derived.SceneH32 != float32(cfg.Screen.Height*2) {
		t.Errorf("expected scene height to default to 2x screen, got %f", cfg.Derived.SceneH32)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("swarm:\n  max_fish: 3\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Swarm.MaxFish != 3 {
		t.Errorf("expected overlay max_fish 3, got %d", cfg.Swarm.MaxFish)
	}
	// Untouched fields keep their defaults
	if cfg.Swarm.AvoidRadius != 150 {
		t.Errorf("expected default avoid_radius to survive overlay, got %f", cfg.Swarm.AvoidRadius)
	}
}

func TestLoadRejectsInvertedBand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("swarm:\n  band_min: 500\n"), 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for band_min > band_max")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Swarm.SpawnChance = 0.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written config failed: %v", err)
	}
	if loaded.Swarm.SpawnChance != 0.5 {
		t.Errorf("expected spawn_chance 0.5 after roundtrip, got %f", loaded.Swarm.SpawnChance)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}
