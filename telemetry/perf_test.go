package telemetry

import (
	"testing"
	"time"
)

func runTicks(pc *PerfCollector, n int, swarm, scene time.Duration) {
	for i := 0; i < n; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSwarm)
		time.Sleep(swarm)
		pc.StartPhase(PhaseScene)
		time.Sleep(scene)
		pc.EndTick()
	}
}

func TestPerfCollectorPhases(t *testing.T) {
	pc := NewPerfCollector(10)
	runTicks(pc, 5, 50*time.Microsecond, 300*time.Microsecond)

	stats := pc.Stats()
	if stats.Tick.Avg <= 0 {
		t.Error("expected positive average tick duration")
	}
	swarm, ok := stats.Phases[PhaseSwarm]
	if !ok {
		t.Fatal("expected swarm phase to be tracked")
	}
	if scene := stats.Phases[PhaseScene]; scene.Pct <= swarm.Pct {
		t.Errorf("expected scene (%v%%) > swarm (%v%%)", scene.Pct, swarm.Pct)
	}
	if swarm.Min > swarm.Avg || swarm.Avg > swarm.Max {
		t.Errorf("expected min <= avg <= max, got %v %v %v", swarm.Min, swarm.Avg, swarm.Max)
	}
	if _, ok := stats.Phases[PhaseTelemetry]; ok {
		t.Error("expected untimed phase to be absent")
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	runTicks(pc, 12, 0, 0)

	stats := pc.Stats()
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second after window wrapped")
	}
	if stats.Tick.Min > stats.Tick.Max {
		t.Errorf("expected min <= max, got %v > %v", stats.Tick.Min, stats.Tick.Max)
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	stats := NewPerfCollector(0).Stats()

	if stats.Tick.Avg != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.Phases == nil {
		t.Error("expected non-nil phase map")
	}
}

func TestPerfCollectorIgnoresUnknownPhase(t *testing.T) {
	pc := NewPerfCollector(4)
	pc.StartTick()
	pc.StartPhase("unknown")
	pc.StartPhase(PhasePlants)
	pc.EndTick()

	stats := pc.Stats()
	if len(stats.Phases) != 1 {
		t.Errorf("expected only plants to be tracked, got %v", stats.Phases)
	}
}

func TestPerfStatsRows(t *testing.T) {
	stats := PerfStats{
		Tick: Timing{Avg: 250 * time.Microsecond, Min: 200 * time.Microsecond, Max: 400 * time.Microsecond, Pct: 100},
		Phases: map[string]Timing{
			PhasePlants: {Avg: 60 * time.Microsecond, Pct: 24},
			PhaseSwarm:  {Avg: 150 * time.Microsecond, Pct: 60},
		},
		FPS: 59.5,
	}

	rows := stats.Rows(600)
	if len(rows) != 3 {
		t.Fatalf("expected tick row plus 2 phase rows, got %d", len(rows))
	}
	if rows[0].Phase != PhaseTick || rows[0].AvgUS != 250 || rows[0].MaxUS != 400 {
		t.Errorf("expected tick row 250/400us, got %+v", rows[0])
	}
	// Phase rows follow execution order, not map order
	if rows[1].Phase != PhaseSwarm || rows[2].Phase != PhasePlants {
		t.Errorf("expected swarm then plants, got %s then %s", rows[1].Phase, rows[2].Phase)
	}
	for _, r := range rows {
		if r.WindowEnd != 600 || r.FPS != 59.5 {
			t.Errorf("expected window 600 at 59.5 fps, got %d %v", r.WindowEnd, r.FPS)
		}
	}
}
