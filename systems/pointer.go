package systems

// Offscreen pointer coordinates used before the first movement.
const (
	PointerUnsetX = -1000
	PointerUnsetY = -1000
)

// Pointer is the last known cursor state.
// Input collaborators write it; the swarm reads it once per frame.
type Pointer struct {
	X, Y   float32
	Active bool
}

// NewPointer returns an inactive pointer parked off screen.
func NewPointer() Pointer {
	return Pointer{X: PointerUnsetX, Y: PointerUnsetY}
}

// Move records a cursor movement and marks the pointer active.
func (p *Pointer) Move(x, y float32) {
	p.X = x
	p.Y = y
	p.Active = true
}

// Deactivate marks the pointer inactive (blur, leave, hidden).
// The last coordinates are kept.
func (p *Pointer) Deactivate() {
	p.Active = false
}

// Viewport is the current size of the fish layer in pixels.
type Viewport struct {
	Width, Height float32
}

// Resize updates the viewport dimensions.
func (v *Viewport) Resize(w, h float32) {
	v.Width = w
	v.Height = h
}
