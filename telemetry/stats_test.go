package telemetry

import (
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	s := ComputeSpeedStats(values)

	if math.Abs(s.Mean-3) > 1e-9 {
		t.Errorf("expected mean 3, got %v", s.Mean)
	}
	// Sample standard deviation of 1..5
	if math.Abs(s.Std-math.Sqrt(2.5)) > 1e-9 {
		t.Errorf("expected std %v, got %v", math.Sqrt(2.5), s.Std)
	}
	if s.P50 != 3 {
		t.Errorf("expected p50 3, got %v", s.P50)
	}
	if s.P10 > s.P50 || s.P50 > s.P90 {
		t.Errorf("expected ordered percentiles, got %v %v %v", s.P10, s.P50, s.P90)
	}
	// Input must not be reordered
	if values[0] != 5 {
		t.Error("expected input slice to be left unsorted")
	}
}

func TestComputeSpeedStatsSmall(t *testing.T) {
	if s := ComputeSpeedStats(nil); s != (SpeedStats{}) {
		t.Errorf("expected zero stats for empty input, got %+v", s)
	}

	s := ComputeSpeedStats([]float64{0.7})
	if s.Mean != 0.7 || s.Std != 0 || s.P90 != 0.7 {
		t.Errorf("expected single-value stats, got %+v", s)
	}
}

func TestComputeAvoidStats(t *testing.T) {
	mean, maxVal := ComputeAvoidStats([]float64{0, 1, 2.5})
	if math.Abs(mean-3.5/3) > 1e-9 {
		t.Errorf("expected mean %v, got %v", 3.5/3, mean)
	}
	if maxVal != 2.5 {
		t.Errorf("expected max 2.5, got %v", maxVal)
	}

	mean, maxVal = ComputeAvoidStats(nil)
	if mean != 0 || maxVal != 0 {
		t.Errorf("expected zeros for empty input, got %v %v", mean, maxVal)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(5.0, 0.5)
	if c.WindowDurationTicks() != 10 {
		t.Fatalf("expected 10 ticks per window, got %d", c.WindowDurationTicks())
	}

	c.RecordSpawn(true)
	c.RecordSpawn(false)
	c.RecordExit()
	for i := 0; i < 5; i++ {
		c.RecordAvoid()
	}

	if c.ShouldFlush(9) {
		t.Error("expected no flush before window end")
	}
	if !c.ShouldFlush(10) {
		t.Error("expected flush at window end")
	}

	stats := c.Flush(10, 3, []float64{0.3, 0.6, 0.9}, []float64{0, 0, 1.5})
	if stats.Spawns != 2 || stats.WarmupSpawns != 1 || stats.Exits != 1 {
		t.Errorf("expected 2 spawns, 1 warm-up, 1 exit, got %d %d %d", stats.Spawns, stats.WarmupSpawns, stats.Exits)
	}
	if stats.AvoidRate != 0.5 {
		t.Errorf("expected avoid rate 0.5, got %v", stats.AvoidRate)
	}
	if stats.FishCount != 3 || math.Abs(stats.SpeedMean-0.6) > 1e-9 {
		t.Errorf("expected 3 fish with mean speed 0.6, got %d %v", stats.FishCount, stats.SpeedMean)
	}
	if stats.AvoidMax != 1.5 {
		t.Errorf("expected avoid max 1.5, got %v", stats.AvoidMax)
	}

	// Counters reset for the next window
	next := c.Flush(20, 3, nil, nil)
	if next.Spawns != 0 || next.AvoidFrames != 0 || next.WindowStartTick != 10 {
		t.Errorf("expected reset window starting at 10, got %+v", next)
	}
}
