package systems

import "math"

// ClipTop returns the first screen row a water layer may draw on, given the
// screen y of the water surface's lower edge. Once the surface has scrolled
// above the viewport the whole layer is visible.
func ClipTop(surfaceBottom float32) float32 {
	if surfaceBottom <= 0 {
		return 0
	}
	return float32(math.Floor(float64(surfaceBottom)))
}

// ClipTracker remembers the last applied clip so a layer is only re-clipped
// when the water line actually moved.
type ClipTracker struct {
	last float32
	set  bool
}

// Update computes the clip for surfaceBottom and reports whether it differs
// from the previous one.
func (c *ClipTracker) Update(surfaceBottom float32) (float32, bool) {
	y := ClipTop(surfaceBottom)
	if c.set && y == c.last {
		return y, false
	}
	c.last = y
	c.set = true
	return y, true
}

// Current returns the last applied clip.
func (c *ClipTracker) Current() float32 {
	return c.last
}
