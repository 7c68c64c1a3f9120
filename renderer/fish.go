package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// fishSprite is the drawable state of one fish.
type fishSprite struct {
	kind     components.FishKind
	x, y     float32
	mirrored bool
}

// FishShape holds the outline of a fish kind, in pixels.
type FishShape struct {
	Length, Height float32
	TailLength     float32
	Stripes        int
}

var fishShapes = [components.NumFishKinds]FishShape{
	components.KindClownfish:  {Length: 44, Height: 22, TailLength: 12, Stripes: 3},
	components.KindBlueTang:   {Length: 52, Height: 26, TailLength: 14},
	components.KindAngelfish:  {Length: 40, Height: 36, TailLength: 10, Stripes: 2},
	components.KindTropical:   {Length: 40, Height: 18, TailLength: 12, Stripes: 1},
	components.KindYellowTang: {Length: 46, Height: 30, TailLength: 12},
}

// ShapeFor returns the outline of a fish kind.
func ShapeFor(kind components.FishKind) FishShape {
	if int(kind) >= len(fishShapes) {
		return fishShapes[components.KindClownfish]
	}
	return fishShapes[kind]
}

// Facing returns +1 when the sprite faces right and -1 when it faces left.
// The unmirrored sprite faces left.
func Facing(mirrored bool) float32 {
	if mirrored {
		return 1
	}
	return -1
}

// FishRenderer is the raylib visual sink of the swarm. It keeps one sprite
// per fish entity and draws them in creation order.
type FishRenderer struct {
	sprites map[ecs.Entity]*fishSprite
	order   []ecs.Entity
}

// NewFishRenderer creates an empty fish renderer.
func NewFishRenderer() *FishRenderer {
	return &FishRenderer{
		sprites: make(map[ecs.Entity]*fishSprite),
	}
}

// Create adds a sprite for a new fish.
func (r *FishRenderer) Create(e ecs.Entity, kind components.FishKind, x, y float32, mirrored bool) {
	r.sprites[e] = &fishSprite{kind: kind, x: x, y: y, mirrored: mirrored}
	r.order = append(r.order, e)
}

// Update moves a fish's sprite.
func (r *FishRenderer) Update(e ecs.Entity, x, y float32, mirrored bool) {
	s, ok := r.sprites[e]
	if !ok {
		return
	}
	s.x, s.y, s.mirrored = x, y, mirrored
}

// Destroy removes a fish's sprite.
func (r *FishRenderer) Destroy(e ecs.Entity) {
	if _, ok := r.sprites[e]; !ok {
		return
	}
	delete(r.sprites, e)
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Count returns the number of live sprites.
func (r *FishRenderer) Count() int {
	return len(r.order)
}

// Draw renders every fish below clipTop. Fish are drawn centered on their position.
func (r *FishRenderer) Draw(clipTop float32, screenW, screenH int32, selected ecs.Entity) {
	top := int32(clipTop)
	if top >= screenH {
		return
	}
	rl.BeginScissorMode(0, top, screenW, screenH-top)
	for _, e := range r.order {
		s := r.sprites[e]
		drawFish(s)
		if e == selected {
			shape := ShapeFor(s.kind)
			rl.DrawCircleLines(int32(s.x), int32(s.y), shape.Length*0.8, rl.Color{R: 255, G: 255, B: 255, A: 180})
		}
	}
	rl.EndScissorMode()
}

func drawFish(s *fishSprite) {
	shape := ShapeFor(s.kind)
	colors := ColorsFor(s.kind)
	dir := Facing(s.mirrored)

	halfL := shape.Length / 2
	halfH := shape.Height / 2

	// Tail behind the body
	tailBase := rl.Vector2{X: s.x - dir*halfL*0.8, Y: s.y}
	tailEnd := s.x - dir*(halfL+shape.TailLength)
	upper := rl.Vector2{X: tailEnd, Y: s.y - halfH*0.9}
	lower := rl.Vector2{X: tailEnd, Y: s.y + halfH*0.9}
	drawTriangle(tailBase, upper, lower, colors.Fin)

	if s.kind.HasDorsalFin() {
		finFront := rl.Vector2{X: s.x + dir*halfL*0.3, Y: s.y - halfH*0.8}
		finBack := rl.Vector2{X: s.x - dir*halfL*0.5, Y: s.y - halfH*0.8}
		finTip := rl.Vector2{X: s.x - dir*halfL*0.3, Y: s.y - halfH*1.6}
		drawTriangle(finFront, finBack, finTip, colors.Fin)
	}

	rl.DrawEllipse(int32(s.x), int32(s.y), halfL, halfH, colors.Body)

	// Vertical bands across the body
	for i := 1; i <= shape.Stripes; i++ {
		bx := s.x + dir*halfL*(0.6-float32(i)*1.2/float32(shape.Stripes+1))
		rl.DrawRectangle(int32(bx-2), int32(s.y-halfH*0.8), 4, int32(shape.Height*0.8), colors.Accent)
	}

	eyeX := s.x + dir*halfL*0.55
	eyeY := s.y - halfH*0.2
	rl.DrawCircle(int32(eyeX), int32(eyeY), 3, rl.White)
	rl.DrawCircle(int32(eyeX+dir), int32(eyeY), 1.5, rl.Black)
}

// drawTriangle draws a filled triangle regardless of winding.
// raylib culls one winding, so both are submitted.
func drawTriangle(a, b, c rl.Vector2, color rl.Color) {
	rl.DrawTriangle(a, b, c, color)
	rl.DrawTriangle(a, c, b, color)
}
