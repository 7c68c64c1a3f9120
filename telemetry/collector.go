// Package telemetry provides swarm statistics, bookmarks and performance tracking.
package telemetry

// Collector accumulates swarm events within time windows and produces WindowStats.
// It satisfies the swarm's observer interface.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	spawns       int
	warmupSpawns int
	exits        int
	avoidFrames  int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records a fish entering the tank.
func (c *Collector) RecordSpawn(warmup bool) {
	c.spawns++
	if warmup {
		c.warmupSpawns++
	}
}

// RecordExit records a fish leaving through the far edge.
func (c *Collector) RecordExit() {
	c.exits++
}

// RecordAvoid records one fish-frame of pointer repulsion.
func (c *Collector) RecordAvoid() {
	c.avoidFrames++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// speeds and avoids are the per-fish base speeds and repulsion speeds sampled
// at window end.
func (c *Collector) Flush(currentTick int32, fishCount int, speeds, avoids []float64) WindowStats {
	ticks := currentTick - c.windowStartTick
	var avoidRate float64
	if ticks > 0 {
		avoidRate = float64(c.avoidFrames) / float64(ticks)
	}

	speed := ComputeSpeedStats(speeds)
	avoidMean, avoidMax := ComputeAvoidStats(avoids)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		FishCount: fishCount,

		Spawns:       c.spawns,
		WarmupSpawns: c.warmupSpawns,
		Exits:        c.exits,
		AvoidFrames:  c.avoidFrames,
		AvoidRate:    avoidRate,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		AvoidMean: avoidMean,
		AvoidMax:  avoidMax,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawns = 0
	c.warmupSpawns = 0
	c.exits = 0
	c.avoidFrames = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
