package renderer

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

func newEntities(n int) []ecs.Entity {
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = posMap.NewEntity(&components.Position{})
	}
	return out
}

func TestFishRendererLifecycle(t *testing.T) {
	r := NewFishRenderer()
	es := newEntities(3)

	for i, e := range es {
		r.Create(e, components.KindBlueTang, float32(i*10), 100, false)
	}
	if r.Count() != 3 {
		t.Fatalf("expected 3 sprites, got %d", r.Count())
	}

	r.Update(es[1], 55, 120, true)
	s := r.sprites[es[1]]
	if s.x != 55 || s.y != 120 || !s.mirrored {
		t.Errorf("expected sprite at (55, 120) mirrored, got (%f, %f) %v", s.x, s.y, s.mirrored)
	}

	r.Destroy(es[1])
	if r.Count() != 2 {
		t.Errorf("expected 2 sprites after destroy, got %d", r.Count())
	}
	if r.order[0] != es[0] || r.order[1] != es[2] {
		t.Error("expected draw order to keep creation order")
	}

	// Unknown entities are ignored
	r.Destroy(es[1])
	r.Update(es[1], 0, 0, false)
	if r.Count() != 2 {
		t.Errorf("expected repeated destroy to be a no-op, got %d", r.Count())
	}
}

func TestFishRendererSatisfiesSink(t *testing.T) {
	var _ systems.FishSink = NewFishRenderer()
}

func TestFacing(t *testing.T) {
	if Facing(true) != 1 || Facing(false) != -1 {
		t.Error("expected mirrored sprites to face right")
	}
}

func TestShapesAndColorsCoverKinds(t *testing.T) {
	for k := components.FishKind(0); k < components.NumFishKinds; k++ {
		if ShapeFor(k).Length <= 0 {
			t.Errorf("expected a shape for %s", k)
		}
		if ColorsFor(k).Body.A == 0 {
			t.Errorf("expected an opaque body color for %s", k)
		}
	}
	if ShapeFor(components.FishKind(99)) != ShapeFor(components.KindClownfish) {
		t.Error("expected unknown kinds to fall back to clownfish")
	}
}

func TestPaletteFor(t *testing.T) {
	day := PaletteFor(systems.ThemeDay)
	night := PaletteFor(systems.ThemeNight)
	if day == night {
		t.Fatal("expected distinct palettes")
	}
	if night.WaterTop.B >= day.WaterTop.B {
		t.Error("expected night water to be darker than day water")
	}
}

func TestSceneLayout(t *testing.T) {
	l := SceneLayout{SceneH: 1440, SurfaceBottom: 160, SeabedHeight: 70}
	if l.SurfaceTop() != 120 {
		t.Errorf("expected surface top 120, got %f", l.SurfaceTop())
	}
	if l.SeabedTop() != 1370 {
		t.Errorf("expected seabed top 1370, got %f", l.SeabedTop())
	}

	l.SurfaceBottom = 20
	if l.SurfaceTop() != 0 {
		t.Errorf("expected surface top clamped to 0, got %f", l.SurfaceTop())
	}
}
