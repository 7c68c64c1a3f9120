package game

import (
	"log/slog"

	"github.com/pthm-cable/aquarium/systems"
)

// resetSwarm clears the tank and restarts the warm-up burst.
func (g *Game) resetSwarm() {
	before := g.swarm.Count()
	if g.inspector != nil {
		g.inspector.Deselect()
	}
	g.swarm.Reset()
	slog.Info("swarm reset", "tick", g.tick, "removed", before)
}

// togglePause stops or resumes the simulation. Drawing continues.
func (g *Game) togglePause() {
	g.paused = !g.paused
	reason := "resumed"
	if g.paused {
		reason = "paused"
	}
	g.logSwarmState(reason)
}

// applyParams swaps the swarm tuning. Fish already swimming keep their speed
// and heading; the cap applies from the next spawn.
func (g *Game) applyParams(p systems.SwarmParams) {
	old := g.swarm.Params()
	if p == old {
		return
	}
	g.swarm.SetParams(p)
	slog.Info("swarm params changed",
		"spawn_chance", p.SpawnChance,
		"avoid_radius", p.AvoidRadius,
		"avoid_strength", p.AvoidStrength,
		"max_fish", p.MaxFish,
	)
}
