package systems

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// BubbleState is where a bubble is drawn this frame.
type BubbleState struct {
	X, Y     float32
	Size     float32
	Progress float32 // 0 at the seabed, 1 at the surface
}

// BubbleField is the decorative column of bubbles rising through the water.
// Bubbles are created once and loop forever.
type BubbleField struct {
	bubbleMap *ecs.Map1[components.Bubble]
	filter    *ecs.Filter1[components.Bubble]
	noise     *perlin.Perlin
	drift     float32
	count     int
}

// NewBubbleField creates cfg.Count bubble entities in world.
func NewBubbleField(world *ecs.World, cfg config.BubblesConfig, rng *rand.Rand) *BubbleField {
	f := &BubbleField{
		bubbleMap: ecs.NewMap1[components.Bubble](world),
		filter:    ecs.NewFilter1[components.Bubble](world),
		noise:     perlin.NewPerlin(2, 2, 3, rng.Int63()),
		drift:     float32(cfg.DriftAmplitude),
	}
	for i := 0; i < cfg.Count; i++ {
		b := components.Bubble{
			Size:     float32(math.Round(cfg.SizeMin + rng.Float64()*cfg.SizeRange)),
			XFrac:    rng.Float32(),
			Delay:    rng.Float32() * float32(cfg.DelayMax),
			Duration: float32(cfg.DurationMin + rng.Float64()*cfg.DurationRange),
			Seed:     rng.Float32() * 100,
		}
		f.bubbleMap.NewEntity(&b)
		f.count++
	}
	return f
}

// Count returns the number of bubbles.
func (f *BubbleField) Count() int {
	return f.count
}

// Each calls fn for every bubble visible at time t (seconds). Bubbles rise from
// bottom to top across width; a bubble is hidden until its delay has passed.
func (f *BubbleField) Each(t, width, top, bottom float32, fn func(BubbleState)) {
	query := f.filter.Query()
	for query.Next() {
		b := query.Get()
		st, ok := bubbleAt(b, t, width, top, bottom, f.drift, f.noise)
		if ok {
			fn(st)
		}
	}
}

func bubbleAt(b *components.Bubble, t, width, top, bottom, drift float32, noise *perlin.Perlin) (BubbleState, bool) {
	local := t - b.Delay
	if local < 0 || b.Duration <= 0 {
		return BubbleState{}, false
	}
	progress := float32(math.Mod(float64(local), float64(b.Duration))) / b.Duration

	wobble := clampFloat(float32(noise.Noise1D(float64(b.Seed+local*0.5))), -1, 1)
	return BubbleState{
		X:        b.XFrac*width + wobble*drift,
		Y:        bottom - progress*(bottom-top),
		Size:     b.Size,
		Progress: progress,
	}, true
}
