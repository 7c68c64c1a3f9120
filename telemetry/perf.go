package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Phase names for one aquarium tick.
const (
	PhaseSwarm     = "swarm"
	PhasePlants    = "plants"
	PhaseScene     = "scene"
	PhaseTelemetry = "telemetry"
)

// PhaseTick labels the whole-tick row in perf output.
const PhaseTick = "tick"

// phases lists the tick phases in execution order.
var phases = []string{PhaseSwarm, PhasePlants, PhaseScene, PhaseTelemetry}

// Phases returns the tick phase names in execution order.
func Phases() []string {
	return append([]string(nil), phases...)
}

func phaseIndex(name string) int {
	for i, p := range phases {
		if p == name {
			return i
		}
	}
	return -1
}

// tickSample is one tick's wall time split by phase slot.
type tickSample struct {
	total time.Duration
	spent []time.Duration
	timed []bool
}

// PerfCollector keeps the last N tick timings.
type PerfCollector struct {
	ring []tickSample
	next int
	full bool

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	active     int

	lastFrame time.Time
	frameTime time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
// Sizes below one fall back to 60, one second of ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	p := &PerfCollector{ring: make([]tickSample, windowSize), active: -1}
	for i := range p.ring {
		p.ring[i] = newTickSample()
	}
	p.cur = newTickSample()
	return p
}

func newTickSample() tickSample {
	return tickSample{
		spent: make([]time.Duration, len(phases)),
		timed: make([]bool, len(phases)),
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	clear(p.cur.spent)
	clear(p.cur.timed)
	p.active = -1
}

// StartPhase closes the running phase and opens the named one.
// Names outside Phases are timed as part of the tick only.
func (p *PerfCollector) StartPhase(name string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.active = phaseIndex(name)
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.active < 0 {
		return
	}
	p.cur.spent[p.active] += now.Sub(p.phaseStart)
	p.cur.timed[p.active] = true
}

// EndTick closes the running phase and stores the tick in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.active = -1
	p.cur.total = now.Sub(p.tickStart)

	slot := &p.ring[p.next]
	slot.total = p.cur.total
	copy(slot.spent, p.cur.spent)
	copy(slot.timed, p.cur.timed)

	p.next = (p.next + 1) % len(p.ring)
	if p.next == 0 {
		p.full = true
	}
}

// RecordFrame notes the time since the previous drawn frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameTime = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

func (p *PerfCollector) count() int {
	if p.full {
		return len(p.ring)
	}
	return p.next
}

// Timing summarises one phase, or the whole tick, over the window.
type Timing struct {
	Avg time.Duration
	Min time.Duration
	Max time.Duration
	// Pct is Avg as a share of the average tick.
	Pct float64
}

// PerfStats is the window summary.
type PerfStats struct {
	Tick           Timing
	Phases         map[string]Timing
	TicksPerSecond float64
	FPS            float64
}

// summarize reduces nanosecond samples to a Timing.
func summarize(ns []float64) Timing {
	if len(ns) == 0 {
		return Timing{}
	}
	return Timing{
		Avg: time.Duration(floats.Sum(ns) / float64(len(ns))),
		Min: time.Duration(floats.Min(ns)),
		Max: time.Duration(floats.Max(ns)),
	}
}

// Stats summarises the current window. Phases never timed in the
// window are absent from Phases.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{Phases: make(map[string]Timing)}
	if p.frameTime > 0 {
		stats.FPS = float64(time.Second) / float64(p.frameTime)
	}

	n := p.count()
	if n == 0 {
		return stats
	}

	ns := make([]float64, n)
	for i := 0; i < n; i++ {
		ns[i] = float64(p.ring[i].total)
	}
	stats.Tick = summarize(ns)
	if stats.Tick.Avg > 0 {
		stats.Tick.Pct = 100
		stats.TicksPerSecond = float64(time.Second) / float64(stats.Tick.Avg)
	}

	for j, name := range phases {
		timed := false
		for i := 0; i < n; i++ {
			ns[i] = float64(p.ring[i].spent[j])
			timed = timed || p.ring[i].timed[j]
		}
		if !timed {
			continue
		}
		t := summarize(ns)
		if stats.Tick.Avg > 0 {
			t.Pct = float64(t.Avg) / float64(stats.Tick.Avg) * 100
		}
		stats.Phases[name] = t
	}
	return stats
}

// LogStats logs the tick summary and each phase's share.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.Tick.Avg.Microseconds(),
		"max_tick_us", s.Tick.Max.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, name := range phases {
		if t, ok := s.Phases[name]; ok && t.Pct > 0.1 {
			attrs = append(attrs, name+"_pct", int(t.Pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfRow is one line of perf.csv: the whole tick or a single phase.
type PerfRow struct {
	WindowEnd int32   `csv:"window_end"`
	Phase     string  `csv:"phase"`
	AvgUS     int64   `csv:"avg_us"`
	MinUS     int64   `csv:"min_us"`
	MaxUS     int64   `csv:"max_us"`
	Pct       float64 `csv:"pct"`
	FPS       float64 `csv:"fps"`
}

func perfRow(windowEnd int32, phase string, t Timing, fps float64) PerfRow {
	return PerfRow{
		WindowEnd: windowEnd,
		Phase:     phase,
		AvgUS:     t.Avg.Microseconds(),
		MinUS:     t.Min.Microseconds(),
		MaxUS:     t.Max.Microseconds(),
		Pct:       t.Pct,
		FPS:       fps,
	}
}

// Rows flattens the summary into a tick row followed by one row per
// timed phase, in phase order.
func (s PerfStats) Rows(windowEnd int32) []PerfRow {
	rows := []PerfRow{perfRow(windowEnd, PhaseTick, s.Tick, s.FPS)}
	for _, name := range phases {
		if t, ok := s.Phases[name]; ok {
			rows = append(rows, perfRow(windowEnd, name, t, s.FPS))
		}
	}
	return rows
}
