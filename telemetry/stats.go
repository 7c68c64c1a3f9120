package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	FishCount int `csv:"fish"`

	// Events during window
	Spawns       int     `csv:"spawns"`
	WarmupSpawns int     `csv:"warmup_spawns"`
	Exits        int     `csv:"exits"`
	AvoidFrames  int     `csv:"avoid_frames"` // fish-frames pushed by the pointer
	AvoidRate    float64 `csv:"avoid_rate"`   // avoid frames per tick

	// Base speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Repulsion speed (sampled at window end)
	AvoidMean float64 `csv:"avoid_mean"`
	AvoidMax  float64 `csv:"avoid_max"`
}

// SpeedStats summarizes a distribution of speeds.
type SpeedStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeSpeedStats calculates mean, sample standard deviation and empirical
// percentiles. Returns zeros for an empty slice.
func ComputeSpeedStats(values []float64) SpeedStats {
	n := len(values)
	if n == 0 {
		return SpeedStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := SpeedStats{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// ComputeAvoidStats returns the mean and max repulsion speed.
func ComputeAvoidStats(values []float64) (mean, maxVal float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.Mean(values, nil), floats.Max(values)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("fish", s.FishCount),
		slog.Int("spawns", s.Spawns),
		slog.Int("warmup_spawns", s.WarmupSpawns),
		slog.Int("exits", s.Exits),
		slog.Int("avoid_frames", s.AvoidFrames),
		slog.Float64("avoid_rate", s.AvoidRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("avoid_mean", s.AvoidMean),
		slog.Float64("avoid_max", s.AvoidMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
