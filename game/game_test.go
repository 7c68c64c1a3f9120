package game

import (
	"testing"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func runHeadless(t *testing.T, opts Options, ticks int) (*Game, []telemetry.WindowStats) {
	t.Helper()
	var windows []telemetry.WindowStats
	opts.Headless = true
	opts.StatsWindowSec = 2
	opts.Now = fixedNow
	opts.StatsCallback = func(s telemetry.WindowStats) {
		windows = append(windows, s)
	}
	if opts.Config == nil {
		opts.Config = loadDefaults(t)
	}

	g := NewGameWithOptions(opts)
	t.Cleanup(g.Unload)
	for g.Tick() < int32(ticks) {
		g.UpdateHeadless()
	}
	return g, windows
}

func TestHeadlessWarmupFillsTank(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Swarm.SpawnChance = 0
	g, windows := runHeadless(t, Options{Seed: 1, Config: cfg}, 600)

	if g.Tick() != 600 {
		t.Fatalf("expected 600 ticks, got %d", g.Tick())
	}
	if len(windows) != 5 {
		t.Fatalf("expected 5 stats windows, got %d", len(windows))
	}

	var warmups int
	for _, w := range windows {
		warmups += w.WarmupSpawns
	}
	if warmups != 6 {
		t.Errorf("expected 6 warm-up spawns, got %d", warmups)
	}

	// No fish can cross 1480px in 600 frames at under 1px/frame
	n := g.FishCount()
	if n != 6 {
		t.Errorf("expected 6 fish, got %d", n)
	}
	if last := g.LastStats(); last.FishCount != n {
		t.Errorf("expected last window fish %d, got %d", n, last.FishCount)
	}
}

func TestHeadlessNoPointerNoAvoidance(t *testing.T) {
	_, windows := runHeadless(t, Options{Seed: 2}, 600)

	for _, w := range windows {
		if w.AvoidFrames != 0 {
			t.Errorf("expected no avoidance without a pointer, got %d at tick %d", w.AvoidFrames, w.WindowEndTick)
		}
	}
}

func TestHeadlessPointerScriptPushesFish(t *testing.T) {
	// Sweep across the swim band every two seconds
	sweep := func(sec float32) (float32, float32, bool) {
		phase := sec/2 - float32(int(sec/2))
		return phase * 1280, 300, true
	}
	g, windows := runHeadless(t, Options{Seed: 3, Pointer: sweep}, 900)

	if !g.Swarm().Pointer().Active {
		t.Error("expected scripted pointer to be active")
	}

	var avoid int
	for _, w := range windows {
		avoid += w.AvoidFrames
	}
	if avoid == 0 {
		t.Error("expected the sweeping pointer to push some fish")
	}

	p := g.Swarm().Params()
	g.Swarm().Each(func(_ ecs.Entity, pos *components.Position, _ *components.Fish) {
		if pos.Y < p.BandMin || pos.Y > p.BandMax {
			t.Errorf("expected fish inside band, got y=%.1f", pos.Y)
		}
	})
}

func TestHeadlessDeterministic(t *testing.T) {
	positions := func() []components.Position {
		g, _ := runHeadless(t, Options{Seed: 42}, 900)
		var out []components.Position
		g.Swarm().Each(func(_ ecs.Entity, pos *components.Position, _ *components.Fish) {
			out = append(out, *pos)
		})
		return out
	}

	a := positions()
	b := positions()
	if len(a) != len(b) {
		t.Fatalf("expected equal fish counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("fish %d: expected %v, got %v", i, a[i], b[i])
		}
	}
}

func TestHeadlessStepsPerUpdate(t *testing.T) {
	cfg := loadDefaults(t)
	g := NewGameWithOptions(Options{Headless: true, StepsPerUpdate: 4, Config: cfg, Now: fixedNow})
	defer g.Unload()

	g.UpdateHeadless()
	if g.Tick() != 4 {
		t.Errorf("expected 4 ticks per update, got %d", g.Tick())
	}
}

func TestHeadlessWritesOutput(t *testing.T) {
	dir := t.TempDir()
	g, _ := runHeadless(t, Options{Seed: 5, OutputDir: dir}, 240)
	if g.outputManager == nil {
		t.Fatal("expected output manager to be created")
	}
}

func TestPerfStatsRolling(t *testing.T) {
	p := NewPerfStats()
	for i := 0; i < renderWindow+10; i++ {
		p.Record(RenderFish, 2*time.Millisecond)
	}
	p.Record(RenderScene, time.Millisecond)

	if got := p.Avg(RenderFish); got != 2*time.Millisecond {
		t.Errorf("expected fish avg 2ms, got %s", got)
	}
	if got := p.Total(); got != 3*time.Millisecond {
		t.Errorf("expected total 3ms, got %s", got)
	}
	names := p.SortedNames()
	if len(names) != 2 || names[0] != RenderFish {
		t.Errorf("expected fish first, got %v", names)
	}
	if p.Avg("missing") != 0 {
		t.Error("expected zero for unknown phase")
	}
}

func TestLissajousPointerStaysInBand(t *testing.T) {
	script := LissajousPointer(1280, 50, 450, 4, 0.25)

	if _, _, active := script(0.5); active {
		t.Error("expected pointer idle in the first quarter of the loop")
	}
	for i := 0; i < 400; i++ {
		sec := float32(i) * 0.05
		x, y, active := script(sec)
		if !active {
			continue
		}
		if x < 0 || x > 1280 || y < 50 || y > 450 {
			t.Fatalf("t=%.2f: expected point inside viewport band, got (%.1f, %.1f)", sec, x, y)
		}
	}
}
