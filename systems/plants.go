package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// PlantBed holds the swaying plants along the seabed.
type PlantBed struct {
	plantMap *ecs.Map1[components.Plant]
	filter   *ecs.Filter1[components.Plant]
	noise    opensimplex.Noise

	amp    float32
	freq   float32
	jitter float32
	speed  float32
}

// PlantHues is the number of palette entries a plant may use.
const PlantHues = 4

// NewPlantBed spreads cfg.Count plants across the seabed with a little jitter.
func NewPlantBed(world *ecs.World, cfg config.PlantsConfig, rng *rand.Rand) *PlantBed {
	b := &PlantBed{
		plantMap: ecs.NewMap1[components.Plant](world),
		filter:   ecs.NewFilter1[components.Plant](world),
		noise:    opensimplex.New(rng.Int63()),
		amp:      float32(cfg.SwayAmp),
		freq:     float32(cfg.SwayFreq),
		jitter:   clampFloat(float32(cfg.JitterScale), 0, 1),
		speed:    float32(cfg.JitterSpeed),
	}

	slot := float32(1) / float32(max(cfg.Count, 1))
	for i := 0; i < cfg.Count; i++ {
		p := components.Plant{
			XFrac:  (float32(i) + 0.25 + rng.Float32()*0.5) * slot,
			Height: float32(cfg.HeightMin + rng.Float64()*cfg.HeightRange),
			Phase:  rng.Float32() * 2 * math.Pi,
			Hue:    uint8(rng.Intn(PlantHues)),
		}
		b.plantMap.NewEntity(&p)
	}
	return b
}

// Update sets every plant's sway angle for time t (seconds).
// The angle never exceeds the sway amplitude.
func (b *PlantBed) Update(t float32) {
	query := b.filter.Query()
	for query.Next() {
		p := query.Get()
		p.Angle = b.swayAt(p, t)
	}
}

func (b *PlantBed) swayAt(p *components.Plant, t float32) float32 {
	wave := float32(math.Sin(float64(2*math.Pi*b.freq*t + p.Phase)))
	n := float32(b.noise.Eval2(float64(p.XFrac*10), float64(t*b.speed)))
	n = clampFloat(n, -1, 1)
	return b.amp * ((1-b.jitter)*wave + b.jitter*n)
}

// Each calls fn for every plant.
func (b *PlantBed) Each(fn func(p *components.Plant)) {
	query := b.filter.Query()
	for query.Next() {
		fn(query.Get())
	}
}
