package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newEntity() ecs.Entity {
	world := ecs.NewWorld()
	return ecs.NewMap1[components.Position](world).NewEntity(&components.Position{})
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	out := make([]rune, 0, w)
	for col := 0; col < w; col++ {
		r, _, _, _ := s.GetContent(col, row)
		out = append(out, r)
	}
	return string(out)
}

func TestGlyphFacing(t *testing.T) {
	if Glyph(components.KindTropical, true) != "><>" {
		t.Errorf("expected right-facing tropical fish, got %q", Glyph(components.KindTropical, true))
	}
	if Glyph(components.KindTropical, false) != "<><" {
		t.Errorf("expected left-facing tropical fish, got %q", Glyph(components.KindTropical, false))
	}
}

func TestFishLayerDraw(t *testing.T) {
	screen := newScreen(t, 40, 20)
	layer := NewFishLayer(8, 16)
	var _ systems.FishSink = layer

	e := newEntity()
	// Cell (10, 5) center
	layer.Create(e, components.KindTropical, 10*8+4, 5*16+8, true)
	layer.Draw(screen, 0)

	if got := rowText(screen, 5)[9:12]; got != "><>" {
		t.Errorf("expected fish centered at column 10, got %q", got)
	}

	// Above the clip row nothing is drawn
	screen.Clear()
	layer.Draw(screen, 6)
	if got := rowText(screen, 5)[9:12]; got == "><>" {
		t.Error("expected fish above the clip row to be hidden")
	}

	layer.Destroy(e)
	if layer.Count() != 0 {
		t.Errorf("expected empty layer, got %d", layer.Count())
	}
}

func TestFishLayerDorsalFin(t *testing.T) {
	screen := newScreen(t, 40, 20)
	layer := NewFishLayer(8, 16)
	layer.Create(newEntity(), components.KindYellowTang, 10*8+4, 5*16+8, false)
	layer.Draw(screen, 0)

	if r, _, _, _ := screen.GetContent(10, 4); r != '^' {
		t.Errorf("expected dorsal fin above the yellow tang, got %q", r)
	}
}

func TestFishLayerCell(t *testing.T) {
	layer := NewFishLayer(8, 16)
	if col, row := layer.Cell(-1, 15); col != -1 || row != 0 {
		t.Errorf("expected (-1, 0), got (%d, %d)", col, row)
	}
}

func TestInputFeed(t *testing.T) {
	ptr := systems.NewPointer()
	vp := systems.Viewport{}
	cam := camera.New(320, 320, 1000)
	feed := NewInputFeed(&ptr, &vp, cam, 8, 16, 40)

	feed.Handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	if !ptr.Active || ptr.X != 28 || ptr.Y != 40 {
		t.Errorf("expected active pointer at (28, 40), got (%f, %f) active=%v", ptr.X, ptr.Y, ptr.Active)
	}

	feed.Handle(tcell.NewEventFocus(false))
	if ptr.Active {
		t.Error("expected focus loss to deactivate the pointer")
	}
	if ptr.X != 28 {
		t.Error("expected deactivation to keep the last coordinates")
	}

	feed.Handle(tcell.NewEventResize(100, 30))
	if vp.Width != 800 || vp.Height != 480 {
		t.Errorf("expected viewport 800x480, got %fx%f", vp.Width, vp.Height)
	}

	feed.Handle(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if cam.ScrollY != 40 {
		t.Errorf("expected wheel to scroll 40, got %f", cam.ScrollY)
	}

	if feed.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) != ActionQuit {
		t.Error("expected q to quit")
	}
	if feed.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) != ActionReset {
		t.Error("expected r to reset")
	}
}

type countingObserver struct {
	spawns, exits, avoids int
}

func (o *countingObserver) RecordSpawn(bool) { o.spawns++ }
func (o *countingObserver) RecordExit()      { o.exits++ }
func (o *countingObserver) RecordAvoid()     { o.avoids++ }

func TestChimeRateLimitsAndForwards(t *testing.T) {
	next := &countingObserver{}
	c := NewChime(next, false)

	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }
	plays := 0
	c.play = func() { plays++ }

	c.RecordSpawn(true)
	c.RecordSpawn(true)
	now = now.Add(plopGap)
	c.RecordSpawn(false)
	c.RecordExit()
	c.RecordAvoid()

	if plays != 2 {
		t.Errorf("expected 2 plops, got %d", plays)
	}
	if next.spawns != 3 || next.exits != 1 || next.avoids != 1 {
		t.Errorf("expected all events forwarded, got %+v", next)
	}
}

func TestAppRunsFrames(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	screen := newScreen(t, 160, 45)
	noon := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local) }
	app := NewApp(screen, cfg, Options{Seed: 1, Now: noon})

	for i := 0; i < 180; i++ {
		app.Step()
	}
	app.Draw()

	// Warm-up releases six fish over the first 2.5 seconds
	if app.Swarm().Count() < 1 {
		t.Fatal("expected fish after three seconds")
	}
	if app.Layer().Count() != app.Swarm().Count() {
		t.Errorf("expected layer to mirror swarm, got %d vs %d", app.Layer().Count(), app.Swarm().Count())
	}

	if !app.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("expected reset to keep the app running")
	}
	if app.Swarm().Count() != 0 || app.Layer().Count() != 0 {
		t.Error("expected reset to clear the tank")
	}
	if app.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("expected escape to quit")
	}
}
