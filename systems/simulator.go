package systems

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// FishSink receives the visual lifecycle of every fish.
// The swarm never draws; the sink owns whatever represents a fish on screen.
type FishSink interface {
	Create(e ecs.Entity, kind components.FishKind, x, y float32, mirrored bool)
	Update(e ecs.Entity, x, y float32, mirrored bool)
	Destroy(e ecs.Entity)
}

// SwarmObserver receives swarm events for telemetry.
type SwarmObserver interface {
	RecordSpawn(warmup bool)
	RecordExit()
	RecordAvoid()
}

// Swarm owns the active fish and the snapshots they are advanced against.
type Swarm struct {
	world   *ecs.World
	fishMap *ecs.Map2[components.Position, components.Fish]
	filter  *ecs.Filter2[components.Position, components.Fish]

	// Insertion order, used for deterministic iteration and removal
	order  []ecs.Entity
	exited []ecs.Entity

	rng      *rand.Rand
	clock    Clock
	sink     FishSink
	observer SwarmObserver
	params   SwarmParams

	pointer  Pointer
	viewport Viewport

	warmupSpawned int
	warmupStart   time.Duration
	frame         int32
	disabled      bool
}

// NewSwarm creates a swarm for a viewport of the given size.
// A nil sink leaves the swarm disabled: Tick does nothing.
func NewSwarm(params SwarmParams, viewport Viewport, rng *rand.Rand, clock Clock, sink FishSink) *Swarm {
	world := ecs.NewWorld()
	s := &Swarm{
		world:    world,
		fishMap:  ecs.NewMap2[components.Position, components.Fish](world),
		filter:   ecs.NewFilter2[components.Position, components.Fish](world),
		order:    make([]ecs.Entity, 0, params.MaxFish),
		rng:      rng,
		clock:    clock,
		sink:     sink,
		params:   params,
		pointer:  NewPointer(),
		viewport: viewport,
	}
	if sink == nil {
		slog.Warn("fish swarm disabled: no visual sink")
		s.disabled = true
	}
	return s
}

// SetObserver attaches a telemetry observer.
func (s *Swarm) SetObserver(o SwarmObserver) {
	s.observer = o
}

// Pointer returns the pointer snapshot for input collaborators to update.
func (s *Swarm) Pointer() *Pointer {
	return &s.pointer
}

// Viewport returns the viewport snapshot for resize collaborators to update.
func (s *Swarm) Viewport() *Viewport {
	return &s.viewport
}

// Params returns the current tuning.
func (s *Swarm) Params() SwarmParams {
	return s.params
}

// SetParams replaces the tuning. Fish already swimming keep their speed and heading.
// Lowering MaxFish below Count removes nobody: Count stays above the new cap
// until enough fish swim out, and no fish spawns until it is back under.
func (s *Swarm) SetParams(p SwarmParams) {
	s.params = p
}

// Count returns the number of active fish.
func (s *Swarm) Count() int {
	return len(s.order)
}

// Frame returns the number of ticks run so far.
func (s *Swarm) Frame() int32 {
	return s.frame
}

// Disabled reports whether the swarm has no sink and never runs.
func (s *Swarm) Disabled() bool {
	return s.disabled
}

// Tick runs one frame: due warm-up spawns, the probabilistic spawn, then one
// Advance per fish in insertion order. Exited fish are removed after the pass.
func (s *Swarm) Tick() {
	if s.disabled {
		return
	}

	s.warmupTick()
	s.SpawnTick()

	ptr := s.pointer
	width := s.viewport.Width
	s.exited = s.exited[:0]

	for _, e := range s.order {
		pos, fish := s.fishMap.Get(e)
		exited, avoiding := Advance(pos, fish, ptr, width, &s.params)
		if avoiding && s.observer != nil {
			s.observer.RecordAvoid()
		}
		if exited {
			s.exited = append(s.exited, e)
			continue
		}
		s.sink.Update(e, pos.X, pos.Y, fish.Mirrored)
	}

	if len(s.exited) > 0 {
		s.removeExited()
	}
	s.frame++
}

// SpawnTick admits one new fish with probability SpawnChance while below the cap.
// A rejected spawn is skipped, not retried.
func (s *Swarm) SpawnTick() {
	if s.disabled || len(s.order) >= s.params.MaxFish {
		return
	}
	if s.rng.Float32() >= s.params.SpawnChance {
		return
	}
	s.spawn(false)
}

// warmupTick releases the staggered start-up fish whose time has come.
func (s *Swarm) warmupTick() {
	now := s.clock.Elapsed()
	for s.warmupSpawned < s.params.WarmupCount {
		due := s.warmupStart + time.Duration(s.warmupSpawned)*s.params.WarmupInterval
		if now < due {
			return
		}
		s.warmupSpawned++
		if len(s.order) < s.params.MaxFish {
			s.spawn(true)
		}
	}
}

// WarmupPending returns how many warm-up fish are still scheduled.
func (s *Swarm) WarmupPending() int {
	return s.params.WarmupCount - s.warmupSpawned
}

func (s *Swarm) spawn(warmup bool) {
	pos, fish := NewFish(s.rng, s.viewport.Width, &s.params)
	s.Add(pos, fish)
	if s.observer != nil {
		s.observer.RecordSpawn(warmup)
	}
}

// Add inserts a fish as-is, bypassing the spawn policy but not the cap.
// Returns the zero entity if the swarm is full or disabled.
func (s *Swarm) Add(pos components.Position, fish components.Fish) ecs.Entity {
	if s.disabled || len(s.order) >= s.params.MaxFish {
		return ecs.Entity{}
	}
	e := s.fishMap.NewEntity(&pos, &fish)
	s.order = append(s.order, e)
	s.sink.Create(e, fish.Kind, pos.X, pos.Y, fish.Mirrored)
	return e
}

// removeExited destroys the fish collected during the last pass.
func (s *Swarm) removeExited() {
	for _, e := range s.exited {
		s.sink.Destroy(e)
		s.world.RemoveEntity(e)
		if s.observer != nil {
			s.observer.RecordExit()
		}
	}

	kept := s.order[:0]
	for _, e := range s.order {
		if s.world.Alive(e) {
			kept = append(kept, e)
		}
	}
	s.order = kept
}

// Get returns the components of a live fish.
func (s *Swarm) Get(e ecs.Entity) (*components.Position, *components.Fish, bool) {
	if !s.world.Alive(e) {
		return nil, nil, false
	}
	pos, fish := s.fishMap.Get(e)
	return pos, fish, true
}

// Each calls fn for every active fish in insertion order.
func (s *Swarm) Each(fn func(e ecs.Entity, pos *components.Position, fish *components.Fish)) {
	for _, e := range s.order {
		pos, fish := s.fishMap.Get(e)
		fn(e, pos, fish)
	}
}

// FishAt returns the fish nearest to (x, y) within radius.
func (s *Swarm) FishAt(x, y, radius float32) (ecs.Entity, bool) {
	var best ecs.Entity
	bestDist := radius
	found := false

	query := s.filter.Query()
	for query.Next() {
		pos, _ := query.Get()
		d := distance(x, y, pos.X, pos.Y)
		if d <= bestDist {
			best = query.Entity()
			bestDist = d
			found = true
		}
	}
	return best, found
}

// Sample appends the base speed and current avoid speed of every fish.
func (s *Swarm) Sample(speeds, avoids []float64) ([]float64, []float64) {
	query := s.filter.Query()
	for query.Next() {
		_, fish := query.Get()
		speeds = append(speeds, float64(fish.BaseSpeed))
		avoids = append(avoids, float64(velocityMagnitude(fish.AvoidX, fish.AvoidY)))
	}
	return speeds, avoids
}

// Reset discards every fish and restarts the warm-up schedule.
func (s *Swarm) Reset() {
	for _, e := range s.order {
		if !s.disabled {
			s.sink.Destroy(e)
		}
		s.world.RemoveEntity(e)
	}
	s.order = s.order[:0]
	s.warmupSpawned = 0
	s.warmupStart = s.clock.Elapsed()
}
