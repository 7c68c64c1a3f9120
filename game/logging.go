package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// renderLogEvery is how many drawn frames pass between render perf logs.
const renderLogEvery = 600

// maybeLogRenderPerf logs the draw breakdown when stats logging is on.
func (g *Game) maybeLogRenderPerf() {
	if !g.logStats || g.frame%renderLogEvery != 0 {
		return
	}

	total := g.renderPerf.Total()
	attrs := []any{
		"frame", g.frame,
		"fps", rl.GetFPS(),
		"total", total.Round(time.Microsecond).String(),
	}
	for _, name := range g.renderPerf.SortedNames() {
		attrs = append(attrs, name, g.renderPerf.Avg(name).Round(time.Microsecond).String())
	}
	slog.Info("render", attrs...)
}

// logSwarmState logs a one-line snapshot of the tank.
func (g *Game) logSwarmState(reason string) {
	ptr := g.swarm.Pointer()
	slog.Info("swarm",
		"reason", reason,
		"tick", g.tick,
		"fish", g.swarm.Count(),
		"max_fish", g.swarm.Params().MaxFish,
		"warmup_pending", g.swarm.WarmupPending(),
		"pointer_active", ptr.Active,
		"theme", g.dayNight.Theme().String(),
	)
}
