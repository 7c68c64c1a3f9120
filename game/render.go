package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/ui"
)

const controlsLegend = "[Space] Pause  [<>] Speed  [R] Reset  [N] Theme  [Tab] Overlays  [F3] Perf  [Wheel] Scroll  [Click] Inspect"

// Draw renders one frame: scene, decor, fish, overlays and UI, back to front.
func (g *Game) Draw() {
	g.frame++
	g.perfCollector.RecordFrame()

	t := g.seconds()
	night := g.dayNight.Night()
	pal := renderer.PaletteFor(g.dayNight.Theme())
	w := int32(g.screenWidth)
	h := int32(g.screenHeight)

	rl.BeginDrawing()
	rl.ClearBackground(pal.SkyTop)

	done := g.renderPerf.Measure(RenderScene)
	g.sceneRenderer.Draw(g.cam, g.layout, pal, t, night)
	done()

	done = g.renderPerf.Measure(RenderDecor)
	g.decorRenderer.DrawPlants(g.plants, g.cam, g.layout, pal)
	g.decorRenderer.DrawBubbles(g.bubbles, g.cam, g.layout, t, g.clip.Current(), pal)
	done()

	done = g.renderPerf.Measure(RenderFish)
	selected, ok := g.inspector.Selected()
	if !ok {
		selected = ecs.Entity{}
	}
	g.fishRenderer.Draw(g.clip.Current(), w, h, selected)
	done()

	done = g.renderPerf.Measure(RenderOverlays)
	g.drawActiveOverlays()
	done()

	done = g.renderPerf.Measure(RenderUI)
	g.drawUI(w, h)
	done()

	rl.EndDrawing()

	g.maybeLogRenderPerf()
}

// drawUI draws the HUD, panels and inspector, and applies tuning edits.
func (g *Game) drawUI(w, h int32) {
	params := g.swarm.Params()
	viewTop, viewBottom := g.cam.VisibleSceneBounds()
	g.hud.Draw(ui.HUDData{
		Title:         "Aquarium",
		FishCount:     g.swarm.Count(),
		MaxFish:       params.MaxFish,
		Tick:          g.tick,
		Speed:         g.stepsPerUpdate,
		FPS:           rl.GetFPS(),
		Paused:        g.paused,
		Theme:         g.dayNight.Theme().String(),
		ThemeForced:   g.dayNight.Overridden(),
		PointerActive: g.swarm.Pointer().Active,
		Exits:         g.lastStats.Exits,
		ViewTop:       viewTop,
		ViewBottom:    viewBottom,
	})
	g.hud.DrawControls(h, controlsLegend)

	g.controls.Draw(g.overlays)

	if g.showPerf {
		order := append(telemetry.Phases(), g.renderPerfOrder()...)
		g.perfPanel.Draw(g.perfStatsWithRender(), order)
	}

	res := g.tuning.Draw(params, g.paused, g.dayNight.Theme().String())
	g.applyParams(res.Params)
	if res.TogglePause {
		g.togglePause()
	}
	if res.Reset {
		g.resetSwarm()
	}
	if res.ToggleTheme {
		g.toggleTheme()
	}

	g.inspector.Draw(g.swarm)
}

// renderPerfOrder lists the render phases as "draw:<phase>", slowest first.
func (g *Game) renderPerfOrder() []string {
	names := g.renderPerf.SortedNames()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "draw:" + n
	}
	return out
}

// perfStatsWithRender adds the render phase averages to the simulation
// phase stats so one panel can show both. Render percentages are of the
// draw total.
func (g *Game) perfStatsWithRender() telemetry.PerfStats {
	stats := g.perfCollector.Stats()
	total := g.renderPerf.Total()
	for _, n := range g.renderPerf.SortedNames() {
		t := telemetry.Timing{Avg: g.renderPerf.Avg(n)}
		if total > 0 {
			t.Pct = float64(t.Avg) / float64(total) * 100
		}
		stats.Phases["draw:"+n] = t
	}
	return stats
}
