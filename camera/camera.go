// Package camera provides the vertical page camera over the aquarium scene.
package camera

// Camera scrolls a viewport down a scene that is taller than the screen.
// The fish layer is fixed to the viewport; only the scene scrolls under it.
type Camera struct {
	// ScrollY is the scene y at the top edge of the viewport
	ScrollY float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Total scene height
	SceneH float32
}

// New creates a camera at the top of the scene.
func New(viewportW, viewportH, sceneH float32) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		SceneH:    sceneH,
	}
}

// MaxScroll returns the largest valid ScrollY.
func (c *Camera) MaxScroll() float32 {
	m := c.SceneH - c.ViewportH
	if m < 0 {
		return 0
	}
	return m
}

// Scroll moves the viewport down by dy scene pixels (negative scrolls up).
func (c *Camera) Scroll(dy float32) {
	c.ScrollTo(c.ScrollY + dy)
}

// ScrollTo places the top of the viewport at scene y, clamped to the scene.
func (c *Camera) ScrollTo(y float32) {
	c.ScrollY = clamp(y, 0, c.MaxScroll())
}

// SceneToScreen converts a scene y to a screen y.
func (c *Camera) SceneToScreen(sy float32) float32 {
	return sy - c.ScrollY
}

// ScreenToScene converts a screen y to a scene y.
func (c *Camera) ScreenToScene(y float32) float32 {
	return y + c.ScrollY
}

// IsVisible returns true if the scene span [sy, sy+h] overlaps the viewport.
func (c *Camera) IsVisible(sy, h float32) bool {
	top := c.SceneToScreen(sy)
	return top+h >= 0 && top <= c.ViewportH
}

// Resize updates viewport dimensions and keeps the scroll in range.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.ScrollTo(c.ScrollY)
}

// Reset returns to the top of the scene.
func (c *Camera) Reset() {
	c.ScrollY = 0
}

// VisibleSceneBounds returns the scene y range shown on screen.
func (c *Camera) VisibleSceneBounds() (minY, maxY float32) {
	return c.ScrollY, c.ScrollY + c.ViewportH
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
