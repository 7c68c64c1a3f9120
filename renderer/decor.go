package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

// plantSegments is how many pieces a plant stalk bends in.
const plantSegments = 6

// DecorRenderer draws the bubbles and plants.
type DecorRenderer struct{}

// NewDecorRenderer creates a new decor renderer.
func NewDecorRenderer() *DecorRenderer {
	return &DecorRenderer{}
}

// DrawBubbles renders the bubbles rising through the water, clipped at clipTop.
func (r *DecorRenderer) DrawBubbles(field *systems.BubbleField, cam *camera.Camera, layout SceneLayout, t, clipTop float32, pal *Palette) {
	w := int32(cam.ViewportW)
	h := int32(cam.ViewportH)
	top := int32(clipTop)
	if top >= h {
		return
	}

	rl.BeginScissorMode(0, top, w, h-top)
	field.Each(t, cam.ViewportW, layout.SurfaceBottom, layout.SeabedTop(), func(b systems.BubbleState) {
		y := cam.SceneToScreen(b.Y)
		radius := b.Size / 2
		if y+radius < 0 || y-radius > cam.ViewportH {
			return
		}

		// Fade in off the seabed and out at the surface
		fade := min(b.Progress*5, (1-b.Progress)*5, 1)
		rl.DrawCircle(int32(b.X), int32(y), radius, dim(pal.Bubble, fade))
		rl.DrawCircleLines(int32(b.X), int32(y), radius, dim(pal.BubbleRim, fade))
		rl.DrawCircle(int32(b.X-radius*0.35), int32(y-radius*0.35), radius*0.2, dim(pal.BubbleRim, fade))
	})
	rl.EndScissorMode()
}

// DrawPlants renders the plants standing on the seabed.
func (r *DecorRenderer) DrawPlants(bed *systems.PlantBed, cam *camera.Camera, layout SceneLayout, pal *Palette) {
	base := cam.SceneToScreen(layout.SeabedTop()) + 8
	bed.Each(func(p *components.Plant) {
		if base-p.Height > cam.ViewportH || base < 0 {
			return
		}
		color := pal.Plants[int(p.Hue)%len(pal.Plants)]
		x := p.XFrac * cam.ViewportW
		drawStalk(x, base, p.Height, p.Angle, color)
	})
}

// drawStalk draws a stalk whose bend grows toward the tip.
func drawStalk(x, y, height, angle float32, color rl.Color) {
	seg := height / plantSegments
	thick := float32(7)
	for i := 0; i < plantSegments; i++ {
		a := float64(angle) * float64(i+1) / plantSegments
		nx := x + float32(math.Sin(a))*seg
		ny := y - float32(math.Cos(a))*seg
		rl.DrawLineEx(rl.Vector2{X: x, Y: y}, rl.Vector2{X: nx, Y: ny}, thick, color)
		rl.DrawCircle(int32(nx), int32(ny), thick/2, color)
		x, y = nx, ny
		thick *= 0.85
	}
}
