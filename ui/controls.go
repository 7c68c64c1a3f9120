package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/systems"
)

// ControlsPanel renders the overlay toggle legend.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel, hidden.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns the y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	rows := len(categories) + len(overlays.All())
	panelHeight := int32(rows)*lineHeight + padding*3 + lineHeight
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding
	rl.DrawText("Overlays", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight
		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
	}

	return y
}

func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Gray)
	}
}

func categoryLabel(cat string) string {
	switch cat {
	case "pointer":
		return "Pointer"
	case "tank":
		return "Tank"
	default:
		return cat
	}
}

// Tuning panel layout.
const (
	TuningPanelWidth  = 260
	tuningPanelHeight = 300
	sliderHeight      = 18
	rowGap            = 34
)

// Slider ranges for the tuning panel.
var (
	spawnChanceRange   = [2]float32{0, 0.2}
	avoidRadiusRange   = [2]float32{0, 400}
	avoidStrengthRange = [2]float32{0, 8}
	speedMinRange      = [2]float32{0.05, 2}
	maxFishRange       = [2]float32{0, 40}
)

// TuningResult is what the user changed in one frame of the tuning panel.
type TuningResult struct {
	Params      systems.SwarmParams
	TogglePause bool
	Reset       bool
	ToggleTheme bool
}

// TuningPanel renders raygui sliders over the live swarm parameters.
type TuningPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewTuningPanel creates a tuning panel at (x, y).
func NewTuningPanel(x, y int32) *TuningPanel {
	return &TuningPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition moves the panel.
func (t *TuningPanel) SetPosition(x, y int32) {
	t.x = x
	t.y = y
}

// Contains reports whether p is over the panel, so clicks and wheel events
// there don't reach the tank.
func (t *TuningPanel) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, rl.Rectangle{
		X: float32(t.x), Y: float32(t.y),
		Width: TuningPanelWidth, Height: tuningPanelHeight,
	})
}

// Draw renders the panel for p and returns the edited parameters and the
// buttons pressed.
func (t *TuningPanel) Draw(p systems.SwarmParams, paused bool, theme string) TuningResult {
	r := t.renderer
	r.DrawPanel(t.x, t.y, TuningPanelWidth, tuningPanelHeight)

	x := float32(t.x + r.Theme.Padding)
	y := float32(t.y + r.Theme.Padding)
	width := float32(TuningPanelWidth - r.Theme.Padding*2 - 40)

	y = float32(r.DrawSectionHeader(int32(x), int32(y), "Swarm Tuning")) + 8

	slider := func(label string, value float32, rng [2]float32, format string) float32 {
		rl.DrawText(label, int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
		y += 14
		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: width, Height: sliderHeight},
			"", "",
			value, rng[0], rng[1],
		)
		rl.DrawText(fmt.Sprintf(format, v), int32(x+width+6), int32(y+3), r.Theme.FontSize, r.Theme.ValueColor)
		y += rowGap - 14
		return v
	}

	res := TuningResult{Params: p}
	res.Params.SpawnChance = slider("Spawn chance / frame", p.SpawnChance, spawnChanceRange, "%.3f")
	res.Params.AvoidRadius = slider("Avoid radius (px)", p.AvoidRadius, avoidRadiusRange, "%.0f")
	res.Params.AvoidStrength = slider("Avoid strength", p.AvoidStrength, avoidStrengthRange, "%.1f")
	res.Params.SpeedMin = slider("Min speed (px/frame)", p.SpeedMin, speedMinRange, "%.2f")
	maxFish := slider("Max fish", float32(p.MaxFish), maxFishRange, "%.0f")
	res.Params.MaxFish = int(math.Round(float64(maxFish)))

	y += 6
	buttonW := (float32(TuningPanelWidth) - float32(r.Theme.Padding)*2 - 10) / 3
	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	res.TogglePause = gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: 26}, pauseLabel)
	res.Reset = gui.Button(rl.Rectangle{X: x + buttonW + 5, Y: y, Width: buttonW, Height: 26}, "Reset")
	res.ToggleTheme = gui.Button(rl.Rectangle{X: x + 2*(buttonW+5), Y: y, Width: buttonW, Height: 26}, theme)

	return res
}
