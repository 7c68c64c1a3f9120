// Package systems provides the ECS systems of the aquarium: the fish swarm and
// the decorative scene around it.
package systems

import (
	"math/rand"
	"time"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// SwarmParams holds the tuning of the fish swarm.
type SwarmParams struct {
	MaxFish        int
	SpawnChance    float32
	SpawnMargin    float32
	SpawnYMin      float32
	SpawnYRange    float32
	SpeedMin       float32
	SpeedRange     float32
	BandMin        float32
	BandMax        float32
	BounceDamping  float32
	AvoidRadius    float32
	AvoidStrength  float32
	DecayActive    float32
	DecayInactive  float32
	FlipThreshold  float32
	ExitMargin     float32
	WarmupCount    int
	WarmupInterval time.Duration
}

// DefaultSwarmParams returns the stock swarm tuning.
func DefaultSwarmParams() SwarmParams {
	return SwarmParams{
		MaxFish:        12,
		SpawnChance:    0.02,
		SpawnMargin:    100,
		SpawnYMin:      100,
		SpawnYRange:    400,
		SpeedMin:       0.3,
		SpeedRange:     0.6,
		BandMin:        50,
		BandMax:        450,
		BounceDamping:  0.5,
		AvoidRadius:    150,
		AvoidStrength:  2.5,
		DecayActive:    0.92,
		DecayInactive:  0.90,
		FlipThreshold:  0.1,
		ExitMargin:     100,
		WarmupCount:    6,
		WarmupInterval: 500 * time.Millisecond,
	}
}

// SwarmParamsFromConfig converts the swarm section of the config.
func SwarmParamsFromConfig(cfg *config.Config) SwarmParams {
	s := cfg.Swarm
	return SwarmParams{
		MaxFish:        s.MaxFish,
		SpawnChance:    float32(s.SpawnChance),
		SpawnMargin:    float32(s.SpawnMargin),
		SpawnYMin:      float32(s.SpawnYMin),
		SpawnYRange:    float32(s.SpawnYRange),
		SpeedMin:       float32(s.SpeedMin),
		SpeedRange:     float32(s.SpeedRange),
		BandMin:        float32(s.BandMin),
		BandMax:        float32(s.BandMax),
		BounceDamping:  float32(s.BounceDamping),
		AvoidRadius:    float32(s.AvoidRadius),
		AvoidStrength:  float32(s.AvoidStrength),
		DecayActive:    float32(s.DecayActive),
		DecayInactive:  float32(s.DecayInactive),
		FlipThreshold:  float32(s.FlipThreshold),
		ExitMargin:     float32(s.ExitMargin),
		WarmupCount:    s.WarmupCount,
		WarmupInterval: time.Duration(s.WarmupInterval * float64(time.Second)),
	}
}

// NewFish builds a fish just off one edge of the viewport.
// The side is chosen 50/50; a left spawn heads right and a right spawn heads left.
func NewFish(rng *rand.Rand, viewportW float32, p *SwarmParams) (components.Position, components.Fish) {
	kind := components.FishKind(rng.Intn(components.NumFishKinds))

	x, heading := -p.SpawnMargin, float32(1)
	if rng.Float32() >= 0.5 {
		x, heading = viewportW+p.SpawnMargin, -1
	}
	y := p.SpawnYMin + rng.Float32()*p.SpawnYRange
	speed := p.SpeedMin + rng.Float32()*p.SpeedRange

	pos := components.Position{X: x, Y: y}
	fish := components.Fish{
		Kind:      kind,
		BaseSpeed: speed,
		Heading:   heading,
		Mirrored:  heading > 0,
	}
	return pos, fish
}

// Advance moves one fish by one frame.
//
// Inside the avoidance radius the repulsion velocity is replaced by a push away
// from the pointer that falls off linearly to zero at the radius. Otherwise it
// decays, faster when the pointer is inactive. The result is clamped to the
// vertical band, with a soft bounce.
//
// exited reports that the fish crossed the far edge and must be removed;
// avoiding reports that the pointer pushed it this frame.
func Advance(pos *components.Position, f *components.Fish, ptr Pointer, viewportW float32, p *SwarmParams) (exited, avoiding bool) {
	if ptr.Active {
		dx := ptr.X - pos.X
		dy := ptr.Y - pos.Y
		d := distance(ptr.X, ptr.Y, pos.X, pos.Y)

		// d > 0 keeps the direction defined
		if d < p.AvoidRadius && d > 0 {
			force := (p.AvoidRadius - d) / p.AvoidRadius
			f.AvoidX = -dx / d * p.AvoidStrength * force
			f.AvoidY = -dy / d * p.AvoidStrength * force
			avoiding = true
		} else {
			f.AvoidX *= p.DecayActive
			f.AvoidY *= p.DecayActive
		}
	} else {
		f.AvoidX *= p.DecayInactive
		f.AvoidY *= p.DecayInactive
	}

	vx := f.VelocityX()
	pos.X += vx
	pos.Y += f.AvoidY

	if pos.Y < p.BandMin {
		pos.Y = p.BandMin
		f.AvoidY = absf(f.AvoidY) * p.BounceDamping
	} else if pos.Y > p.BandMax {
		pos.Y = p.BandMax
		f.AvoidY = -absf(f.AvoidY) * p.BounceDamping
	}

	// No hysteresis: sub-threshold speeds keep the last orientation
	if absf(vx) > p.FlipThreshold {
		f.Mirrored = vx > 0
	}

	if f.Heading > 0 {
		exited = pos.X > viewportW+p.ExitMargin
	} else {
		exited = pos.X < -p.ExitMargin
	}
	return exited, avoiding
}
