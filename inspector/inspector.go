// Package inspector shows the components of a selected fish in a side panel.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/systems"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 20, G: 30, B: 40, A: 235}
	ColorPanelHeader = rl.Color{R: 35, G: 55, B: 75, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 100, B: 130, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 40, G: 60, B: 80, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 220, B: 240, A: 255}
)

// Inspector manages fish selection and panel rendering.
type Inspector struct {
	selected     ecs.Entity
	hasSelected  bool
	panelX       int32
	panelY       int32
	panelHeight  int32
	screenWidth  int32
	screenHeight int32
}

// NewInspector creates a new inspector anchored to the lower right.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth, screenHeight)
	return ins
}

// Resize repositions the panel for a new screen size.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.screenWidth = screenWidth
	ins.screenHeight = screenHeight
	ins.panelX = screenWidth - PanelWidth - 10
	ins.panelY = screenHeight / 2
}

// Select makes e the inspected fish.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.selected = ecs.Entity{}
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether (x, y) is over the open panel.
func (ins *Inspector) Contains(x, y float32) bool {
	if !ins.hasSelected {
		return false
	}
	return int32(x) >= ins.panelX && int32(x) <= ins.panelX+PanelWidth &&
		int32(y) >= ins.panelY && int32(y) <= ins.panelY+ins.panelHeight
}

// Sections returns the inspected components of the selected fish.
// A fish that has left the tank clears the selection.
func (ins *Inspector) Sections(swarm *systems.Swarm) []Section {
	if !ins.hasSelected {
		return nil
	}
	pos, fish, ok := swarm.Get(ins.selected)
	if !ok {
		ins.Deselect()
		return nil
	}
	return []Section{
		Inspect("POSITION", pos),
		Inspect("FISH", fish),
	}
}

// Draw renders the inspector panel if a fish is selected.
func (ins *Inspector) Draw(swarm *systems.Swarm) {
	sections := ins.Sections(swarm)
	if sections == nil {
		return
	}

	height := int32(HeaderHeight + PanelPadding + 22)
	for _, s := range sections {
		height += sectionHeight(s)
	}
	ins.panelHeight = height

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding
	rl.DrawText(fmt.Sprintf("Entity %d", ins.selected.ID()), x, y, 14, ColorHeaderText)
	y += 22

	for _, s := range sections {
		rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
		rl.DrawText(s.Title, x+2, y, 14, ColorSectionText)
		y += 22
		for _, f := range s.Fields {
			y += DrawField(x, y, f)
		}
		y += 6
	}
}

// CloseHit reports whether (x, y) is on the panel's close button.
func (ins *Inspector) CloseHit(x, y float32) bool {
	if !ins.hasSelected {
		return false
	}
	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	return int32(x) >= closeX && int32(x) <= closeX+20 &&
		int32(y) >= closeY && int32(y) <= closeY+20
}
