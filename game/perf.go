package game

import (
	"sort"
	"time"
)

// Render phases timed each frame.
const (
	RenderScene    = "scene"
	RenderDecor    = "decor"
	RenderFish     = "fish"
	RenderOverlays = "overlays"
	RenderUI       = "ui"
)

// renderWindow is how many frames of samples are averaged (~2s at 60fps).
const renderWindow = 120

// PerfStats keeps a rolling window of draw timings per render phase.
type PerfStats struct {
	samples map[string]*ring
}

type ring struct {
	buf   [renderWindow]time.Duration
	next  int
	count int
	sum   time.Duration
}

func (r *ring) add(d time.Duration) {
	if r.count == renderWindow {
		r.sum -= r.buf[r.next]
	} else {
		r.count++
	}
	r.buf[r.next] = d
	r.sum += d
	r.next = (r.next + 1) % renderWindow
}

// NewPerfStats creates an empty render timing tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{samples: make(map[string]*ring)}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	r, ok := p.samples[name]
	if !ok {
		r = &ring{}
		p.samples[name] = r
	}
	r.add(d)
}

// Measure starts timing name; call the returned func when the phase ends.
func (p *PerfStats) Measure(name string) func() {
	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	r, ok := p.samples[name]
	if !ok || r.count == 0 {
		return 0
	}
	return r.sum / time.Duration(r.count)
}

// Total returns the sum of all phase averages.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.samples {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns phase names by average duration, slowest first.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ai, aj := p.Avg(names[i]), p.Avg(names[j])
		if ai != aj {
			return ai > aj
		}
		return names[i] < names[j]
	})
	return names
}
