package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Targets the tuner steers toward.
const (
	targetFill      = 0.7  // mean fish / max fish
	fillTolerance   = 0.2
	targetPushed    = 0.15 // share of fish pushed per frame while the pointer sweeps
	pushedTolerance = 0.1
	maxGentleAvoid  = 3.0 // px/frame of repulsion before it looks like a flinch
)

// Quality component weights.
const (
	weightFill      = 0.30
	weightTurnover  = 0.20
	weightResponse  = 0.25
	weightGentle    = 0.10
	weightStability = 0.15

	warmupWindows = 2 // skip the warm-up burst
)

// FitnessEvaluator runs headless tanks under a scripted pointer and scores
// how they look.
type FitnessEvaluator struct {
	params      *ParamVector
	ticks       int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu          sync.Mutex
	lastQuality float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, ticks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		ticks:       ticks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 10.0,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean quality over all seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	qualities := make([]float64, len(fe.seeds))
	maxFish := max(fe.baseConfig.Swarm.MaxFish, 1)
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			qualities[idx] = computeQuality(fe.runSimulation(x, s), maxFish)
		}(i, seed)
	}
	wg.Wait()

	q := stat.Mean(qualities, nil)

	fe.mu.Lock()
	fe.lastQuality = q
	fe.mu.Unlock()

	return -q
}

// runSimulation runs one headless tank for the configured number of ticks
// and returns its stats windows.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) []telemetry.WindowStats {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var windows []telemetry.WindowStats
	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: 1,
		Config:         cfg,
		Pointer: game.LissajousPointer(
			cfg.Derived.ScreenW32,
			float32(cfg.Swarm.BandMin), float32(cfg.Swarm.BandMax),
			8, 0.25,
		),
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	defer g.Unload()

	for g.Tick() < fe.ticks {
		g.UpdateHeadless()
	}
	return windows
}

// copyConfig returns a copy of the base config safe to modify.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeQuality scores a run in [0, 1] from its stats windows.
func computeQuality(windows []telemetry.WindowStats, maxFish int) float64 {
	if len(windows) <= warmupWindows {
		return 0
	}
	valid := windows[warmupWindows:]

	counts := make([]float64, len(valid))
	var exits, pushedSum float64
	var pushedN int
	var gentleSum float64
	for i, w := range valid {
		counts[i] = float64(w.FishCount)
		exits += float64(w.Exits)
		if w.FishCount > 0 {
			pushedSum += w.AvoidRate / float64(w.FishCount)
			pushedN++
		}
		over := math.Max(0, w.AvoidMax-maxGentleAvoid)
		gentleSum += math.Exp(-over * over)
	}

	fill := stat.Mean(counts, nil) / float64(maxFish)
	fillScore := gauss(fill, targetFill, fillTolerance)

	// At least a couple of fish should cross per window
	turnoverScore := 1 - math.Exp(-exits/float64(len(valid))/2)

	responseScore := 0.0
	if pushedN > 0 {
		responseScore = gauss(pushedSum/float64(pushedN), targetPushed, pushedTolerance)
	}

	gentleScore := gentleSum / float64(len(valid))

	stabilityScore := 0.0
	if len(counts) >= 2 {
		c := cv(counts)
		stabilityScore = math.Exp(-c * c)
	}

	quality := weightFill*fillScore +
		weightTurnover*turnoverScore +
		weightResponse*responseScore +
		weightGentle*gentleScore +
		weightStability*stabilityScore

	return clamp01(quality)
}

func gauss(x, target, tolerance float64) float64 {
	d := (x - target) / tolerance
	return math.Exp(-d * d)
}

// cv computes the coefficient of variation (std/mean).
func cv(values []float64) float64 {
	mean, std := stat.PopMeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
