package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayRegistryDefaults(t *testing.T) {
	reg := NewOverlayRegistry()

	if len(reg.All()) != 5 {
		t.Fatalf("expected 5 overlays, got %d", len(reg.All()))
	}
	if len(reg.EnabledOverlays()) != 0 {
		t.Errorf("expected all overlays off, got %v", reg.EnabledOverlays())
	}

	cats := reg.Categories()
	if len(cats) != 2 || cats[0] != "pointer" || cats[1] != "tank" {
		t.Errorf("expected categories [pointer tank], got %v", cats)
	}
	if n := len(reg.ByCategory("tank")); n != 3 {
		t.Errorf("expected 3 tank overlays, got %d", n)
	}
}

func TestOverlayToggleByKey(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, ok := reg.HandleKeyPress(rl.KeyA)
	if !ok || id != OverlayAvoidRadius || !on {
		t.Fatalf("expected avoid radius toggled on, got %q %v %v", id, on, ok)
	}
	if !reg.IsEnabled(OverlayAvoidRadius) {
		t.Error("expected avoid radius enabled")
	}

	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("expected unbound key to be ignored")
	}

	reg.HandleKeyPress(rl.KeyA)
	if reg.IsEnabled(OverlayAvoidRadius) {
		t.Error("expected second press to disable avoid radius")
	}
}

func TestOverlayEnabledOrder(t *testing.T) {
	reg := NewOverlayRegistry()
	reg.SetEnabled(OverlayWaterLine, true)
	reg.SetEnabled(OverlayAvoidRadius, true)
	reg.SetEnabled("unknown", true)

	got := reg.EnabledOverlays()
	if len(got) != 2 || got[0] != OverlayAvoidRadius || got[1] != OverlayWaterLine {
		t.Errorf("expected [avoid_radius water_line], got %v", got)
	}
}

func TestOverlayReRegisterKeepsState(t *testing.T) {
	reg := NewOverlayRegistry()
	reg.SetEnabled(OverlaySwimBand, true)
	reg.Register(OverlayDescriptor{ID: OverlaySwimBand, Name: "Band", Key: rl.KeyJ, Category: "tank"})

	if len(reg.All()) != 5 {
		t.Errorf("expected re-register not to add an entry, got %d", len(reg.All()))
	}
	if !reg.IsEnabled(OverlaySwimBand) {
		t.Error("expected swim band to stay enabled")
	}
	if id, _, ok := reg.HandleKeyPress(rl.KeyJ); !ok || id != OverlaySwimBand {
		t.Errorf("expected new key to toggle swim band, got %q %v", id, ok)
	}
}

func TestBarRatio(t *testing.T) {
	tests := []struct {
		value, max, want float32
	}{
		{6, 12, 0.5},
		{20, 12, 1},
		{-1, 12, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := barRatio(tt.value, tt.max); got != tt.want {
			t.Errorf("barRatio(%v, %v): expected %v, got %v", tt.value, tt.max, tt.want, got)
		}
	}
}
