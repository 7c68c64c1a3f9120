package game

import (
	"log/slog"

	"github.com/pthm-cable/aquarium/telemetry"
)

// simulationStep advances the swarm and the scene around it by one frame.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseSwarm)
	g.swarm.Tick()

	// Bubbles are positioned from time at draw; nothing to step
	g.perfCollector.StartPhase(telemetry.PhasePlants)
	g.plants.Update(g.seconds())

	g.perfCollector.StartPhase(telemetry.PhaseScene)
	g.updateScene()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// updateScene re-evaluates the theme and the water-line clip.
func (g *Game) updateScene() {
	if g.dayNight.Update() {
		slog.Info("theme changed", "theme", g.dayNight.Theme().String(), "tick", g.tick)
	}

	surface := g.cam.SceneToScreen(g.layout.SurfaceBottom)
	if y, changed := g.clip.Update(surface); changed && g.logStats {
		slog.Debug("water line moved", "clip_top", y)
	}
}
