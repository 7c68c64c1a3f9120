package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/ui"
)

// selectRadius is how close a click must land to a fish to select it.
const selectRadius = 40

// handleInput processes mouse, window and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()
	g.handlePointer()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.resetSwarm()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.toggleTheme()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}
	if key := rl.GetKeyPressed(); key != 0 {
		g.overlays.HandleKeyPress(key)
	}

	g.handleCameraInput()
	g.handleSelection()
}

// handlePointer feeds the cursor into the swarm. The pointer goes inactive
// whenever the window loses focus, the cursor leaves it, or it is hidden.
func (g *Game) handlePointer() {
	ptr := g.swarm.Pointer()
	if !rl.IsWindowFocused() || !rl.IsCursorOnScreen() || rl.IsWindowHidden() || rl.IsWindowMinimized() {
		ptr.Deactivate()
		return
	}

	mouse := rl.GetMousePosition()
	// Only real movement (re)activates the pointer
	if ptr.Active || mouse.X != ptr.X || mouse.Y != ptr.Y {
		ptr.Move(mouse.X, mouse.Y)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.swarm.Viewport().Resize(w, h)
	g.cam.Resize(w, h)
	g.inspector.Resize(int32(w), int32(h))
	g.tuning.SetPosition(int32(w)-ui.TuningPanelWidth-10, 10)
}

// handleCameraInput scrolls the page with the wheel, arrows and Home/End.
func (g *Game) handleCameraInput() {
	step := float32(g.cfg.Scene.ScrollStep)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !g.tuning.Contains(rl.GetMousePosition()) {
		g.cam.Scroll(-wheel * step)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Scroll(step / 4)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Scroll(-step / 4)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		g.cam.ScrollTo(g.cam.MaxScroll())
	}
}

// handleSelection selects the fish under a left click; right click or
// Escape clears the selection.
func (g *Game) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		g.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	if g.inspector.CloseHit(mouse.X, mouse.Y) {
		g.inspector.Deselect()
		return
	}
	if g.tuning.Contains(mouse) || g.inspector.Contains(mouse.X, mouse.Y) {
		return
	}
	if e, ok := g.swarm.FishAt(mouse.X, mouse.Y, selectRadius); ok {
		g.inspector.Select(e)
	}
}

// toggleTheme cycles auto -> forced opposite -> auto.
func (g *Game) toggleTheme() {
	switch {
	case g.dayNight.Overridden():
		g.dayNight.ClearOverride()
	case g.dayNight.Night():
		g.dayNight.SetOverride(systems.ThemeDay)
	default:
		g.dayNight.SetOverride(systems.ThemeNight)
	}
}
