package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/ui"
)

// velocityScale stretches per-frame velocities into visible vectors.
const velocityScale = 20

var (
	colorAvoidRing = rl.Color{R: 255, G: 120, B: 90, A: 160}
	colorAvoidFill = rl.Color{R: 255, G: 120, B: 90, A: 25}
	colorCruise    = rl.Color{R: 120, G: 220, B: 255, A: 200}
	colorRepulsion = rl.Color{R: 255, G: 90, B: 90, A: 230}
	colorBand      = rl.Color{R: 255, G: 220, B: 90, A: 160}
	colorWaterLine = rl.Color{R: 120, G: 255, B: 160, A: 200}
	colorLane      = rl.Color{R: 200, G: 140, B: 255, A: 50}
	colorLaneText  = rl.Color{R: 220, G: 200, B: 255, A: 220}
)

// drawActiveOverlays renders all currently enabled overlays.
func (g *Game) drawActiveOverlays() {
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayAvoidRadius:
			g.drawAvoidRadius()
		case ui.OverlayVelocity:
			g.drawVelocities()
		case ui.OverlaySwimBand:
			g.drawSwimBand()
		case ui.OverlayWaterLine:
			g.drawWaterLine()
		case ui.OverlayExitLanes:
			g.drawExitLanes()
		}
	}
}

// drawAvoidRadius rings the cursor with the repulsion radius.
func (g *Game) drawAvoidRadius() {
	ptr := g.swarm.Pointer()
	if !ptr.Active {
		return
	}
	r := g.swarm.Params().AvoidRadius
	rl.DrawCircle(int32(ptr.X), int32(ptr.Y), r, colorAvoidFill)
	rl.DrawCircleLines(int32(ptr.X), int32(ptr.Y), r, colorAvoidRing)
}

// drawVelocities draws each fish's cruise velocity and, on top, its
// repulsion component.
func (g *Game) drawVelocities() {
	g.swarm.Each(func(_ ecs.Entity, pos *components.Position, fish *components.Fish) {
		from := rl.Vector2{X: pos.X, Y: pos.Y}
		cruise := rl.Vector2{X: pos.X + fish.BaseSpeed*fish.Heading*velocityScale, Y: pos.Y}
		rl.DrawLineEx(from, cruise, 1.5, colorCruise)

		if fish.AvoidX == 0 && fish.AvoidY == 0 {
			return
		}
		push := rl.Vector2{X: pos.X + fish.AvoidX*velocityScale, Y: pos.Y + fish.AvoidY*velocityScale}
		rl.DrawLineEx(from, push, 2, colorRepulsion)
	})
}

// drawSwimBand marks the vertical limits fish are clamped to.
func (g *Game) drawSwimBand() {
	p := g.swarm.Params()
	w := int32(g.screenWidth)
	rl.DrawLine(0, int32(p.BandMin), w, int32(p.BandMin), colorBand)
	rl.DrawLine(0, int32(p.BandMax), w, int32(p.BandMax), colorBand)
	rl.DrawText(fmt.Sprintf("band min %.0f", p.BandMin), 8, int32(p.BandMin)-14, 12, colorBand)
	rl.DrawText(fmt.Sprintf("band max %.0f", p.BandMax), 8, int32(p.BandMax)+4, 12, colorBand)
}

// drawWaterLine marks the row fish and bubbles are clipped at.
func (g *Game) drawWaterLine() {
	y := g.clip.Current()
	rl.DrawLine(0, int32(y), int32(g.screenWidth), int32(y), colorWaterLine)
	rl.DrawText(fmt.Sprintf("clip %.0f", y), int32(g.screenWidth)/2, int32(y)+4, 12, colorWaterLine)
}

// drawExitLanes shades the spawn rows at both edges and counts the fish
// heading toward each.
func (g *Game) drawExitLanes() {
	p := g.swarm.Params()
	w := int32(g.screenWidth)
	const lane = 24

	var left, right int
	g.swarm.Each(func(_ ecs.Entity, _ *components.Position, fish *components.Fish) {
		if fish.Heading > 0 {
			right++
		} else {
			left++
		}
	})

	top := int32(p.SpawnYMin)
	h := int32(p.SpawnYRange)
	rl.DrawRectangle(0, top, lane, h, colorLane)
	rl.DrawRectangle(w-lane, top, lane, h, colorLane)

	rl.DrawText(fmt.Sprintf("< %d  exit -%.0f", left, p.ExitMargin), 4, top+h+4, 12, colorLaneText)
	label := fmt.Sprintf("exit +%.0f  %d >", p.ExitMargin, right)
	rl.DrawText(label, w-rl.MeasureText(label, 12)-4, top+h+4, 12, colorLaneText)
}
