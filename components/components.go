// Package components defines ECS components for the aquarium.
package components

// FishKind selects one of the visual fish variants.
type FishKind uint8

const (
	KindClownfish FishKind = iota
	KindBlueTang
	KindAngelfish
	KindTropical
	KindYellowTang

	NumFishKinds = 5
)

var fishKindNames = [NumFishKinds]string{
	"clownfish",
	"blue-tang",
	"angelfish",
	"tropical",
	"yellow-tang",
}

// String returns the variant's name.
func (k FishKind) String() string {
	if int(k) < len(fishKindNames) {
		return fishKindNames[k]
	}
	return "unknown"
}

// HasDorsalFin reports whether the variant is drawn with a dorsal fin.
func (k FishKind) HasDorsalFin() bool {
	return k == KindYellowTang
}

// Position is a point in viewport pixels.
// For fish it is the visual center of the sprite.
type Position struct {
	X float32 `inspect:"label,fmt:%.1f"`
	Y float32 `inspect:"label,fmt:%.1f"`
}

// Fish holds the swimming state of one fish.
// Kind, BaseSpeed and Heading are fixed at spawn.
type Fish struct {
	Kind      FishKind `inspect:"label"`
	BaseSpeed float32  `inspect:"bar,max:1"`
	Heading   float32  `inspect:"label,fmt:%+.0f"` // +1 swims right, -1 swims left
	AvoidX    float32  `inspect:"label,fmt:%.3f"`  // decaying repulsion velocity
	AvoidY    float32  `inspect:"label,fmt:%.3f"`
	Mirrored  bool     `inspect:"bool"` // sprite faces right
}

// VelocityX returns the horizontal velocity for the current frame.
func (f *Fish) VelocityX() float32 {
	return f.BaseSpeed*f.Heading + f.AvoidX
}

// Bubble is a decorative bubble that rises and loops.
type Bubble struct {
	Size     float32 // diameter in pixels
	XFrac    float32 // horizontal position as a fraction of width
	Delay    float32 // seconds before the first rise
	Duration float32 // seconds per rise
	Seed     float32 // noise offset for drift
}

// Plant is a sea-floor plant anchored at its base.
type Plant struct {
	XFrac  float32 // anchor as a fraction of width
	Height float32
	Phase  float32 // sway phase offset in radians
	Angle  float32 // current sway angle in radians
	Hue    uint8   // palette index
}
