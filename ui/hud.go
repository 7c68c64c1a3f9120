package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title         string
	FishCount     int
	MaxFish       int
	Tick          int32
	Speed         int
	FPS           int32
	Paused        bool
	Theme         string
	ThemeForced   bool
	PointerActive bool
	Exits         int // in the last stats window
	ViewTop       float32
	ViewBottom    float32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	r.DrawPanel(5, 5, 260, 118)

	rl.DrawText(data.Title, 12, 10, 20, r.Theme.ValueColor)
	y := r.DrawBar(12, 35, "Fish", float32(data.FishCount), float32(data.MaxFish), 250)

	rl.DrawText(fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		12, y, 12, r.Theme.LabelColor)
	y += r.Theme.LineHeight

	theme := data.Theme
	if data.ThemeForced {
		theme += " (forced)"
	}
	pointer := "idle"
	if data.PointerActive {
		pointer = "active"
	}
	rl.DrawText(fmt.Sprintf("Theme: %s | Pointer: %s | Exits: %d", theme, pointer, data.Exits),
		12, y, 12, r.Theme.LabelColor)
	y += r.Theme.LineHeight

	y = r.DrawLabelValue(12, y, "View", fmt.Sprintf("%.0f-%.0f px", data.ViewTop, data.ViewBottom))

	if data.Paused {
		rl.DrawText("PAUSED", 12, y, 14, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-22, 14, h.renderer.Theme.LabelColor)
}

// PerfPanel renders the tick phase breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// Draw renders the phase timings in the given order.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, order []string) {
	r := p.renderer
	height := int32(len(order)+2)*14 + r.Theme.Padding*2
	r.DrawPanel(p.x, p.y, 220, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	rl.DrawText(fmt.Sprintf("Tick %s  (%.0f/s)", stats.Tick.Avg.Round(time.Microsecond), stats.TicksPerSecond),
		x, y, 12, r.Theme.SectionHeader)
	y += 16

	for _, name := range order {
		t := stats.Phases[name]
		pct := t.Pct
		color := r.Theme.LabelColor
		if pct > 50 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-10s %8s %5.1f%%", name, t.Avg.Round(time.Microsecond), pct),
			x, y, 12, color)
		y += 14
	}
}
