package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

func TestFrameClockRoundsStep(t *testing.T) {
	clock := NewFrameClock(1.0 / 60.0)
	for i := 0; i < 30; i++ {
		clock.Step()
	}
	if got := clock.Elapsed(); got < 500*time.Millisecond {
		t.Errorf("expected 30 frames to reach 500ms, got %v", got)
	}
	if got := clock.Elapsed(); got > 500*time.Millisecond+time.Microsecond {
		t.Errorf("expected 30 frames to stay near 500ms, got %v", got)
	}
}

func TestClipTop(t *testing.T) {
	tests := []struct {
		bottom float32
		want   float32
	}{
		{160, 160},
		{160.7, 160},
		{0.4, 0},
		{0, 0},
		{-35, 0},
	}
	for _, tt := range tests {
		if got := ClipTop(tt.bottom); got != tt.want {
			t.Errorf("ClipTop(%f): expected %f, got %f", tt.bottom, tt.want, got)
		}
	}
}

func TestClipTrackerReportsChangesOnly(t *testing.T) {
	var c ClipTracker

	if _, changed := c.Update(120.2); !changed {
		t.Error("expected first update to report a change")
	}
	if _, changed := c.Update(120.9); changed {
		t.Error("expected same floored clip to report no change")
	}
	y, changed := c.Update(80)
	if !changed || y != 80 {
		t.Errorf("expected change to 80, got %f (changed=%v)", y, changed)
	}
	c.Update(-10)
	if _, changed := c.Update(-50); changed {
		t.Error("expected clip to stay at 0 once the surface is off screen")
	}
}

func TestIsNight(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour < 6 || hour >= 18
		if got := IsNight(hour, 18, 6); got != want {
			t.Errorf("hour %d: expected night=%v, got %v", hour, want, got)
		}
	}
	if !IsNight(2, 1, 5) || IsNight(5, 1, 5) {
		t.Error("expected non-wrapping window [1, 5)")
	}
}

func TestDayNightRefreshInterval(t *testing.T) {
	hour := 12
	now := func() time.Time {
		return time.Date(2024, 1, 1, hour, 0, 0, 0, time.Local)
	}
	clock := NewFrameClock(1.0)
	cfg := config.DayNightConfig{NightStart: 18, NightEnd: 6, RefreshInterval: 60}
	dn := NewDayNight(cfg, now, clock)

	dn.Update()
	if dn.Night() {
		t.Fatal("expected day at noon")
	}

	hour = 20
	clock.Advance(30 * time.Second)
	if dn.Update() {
		t.Error("expected no re-evaluation before the refresh interval")
	}
	if dn.Night() {
		t.Error("expected theme to hold until refresh")
	}

	clock.Advance(30 * time.Second)
	if !dn.Update() {
		t.Error("expected theme change after the refresh interval")
	}
	if !dn.Night() {
		t.Error("expected night at 20:00")
	}
}

func TestDayNightOverride(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local) }
	dn := NewDayNight(config.DayNightConfig{NightStart: 18, NightEnd: 6, RefreshInterval: 60}, now, NewFrameClock(1.0))
	dn.Update()

	dn.SetOverride(ThemeNight)
	if !dn.Night() || !dn.Overridden() {
		t.Error("expected override to force night")
	}
	dn.ClearOverride()
	if dn.Night() {
		t.Error("expected wall clock theme after clearing override")
	}
}

func testBubbleConfig() config.BubblesConfig {
	return config.BubblesConfig{
		Count:          14,
		SizeMin:        12,
		SizeRange:      24,
		DelayMax:       3,
		DurationMin:    5,
		DurationRange:  5,
		DriftAmplitude: 12,
	}
}

func TestBubbleFieldSetup(t *testing.T) {
	world := ecs.NewWorld()
	field := NewBubbleField(world, testBubbleConfig(), rand.New(rand.NewSource(3)))

	if field.Count() != 14 {
		t.Fatalf("expected 14 bubbles, got %d", field.Count())
	}

	filter := ecs.NewFilter1[components.Bubble](world)
	query := filter.Query()
	for query.Next() {
		b := query.Get()
		if b.Size < 12 || b.Size > 36 {
			t.Errorf("expected size in [12, 36], got %f", b.Size)
		}
		if b.Delay < 0 || b.Delay > 3 {
			t.Errorf("expected delay in [0, 3], got %f", b.Delay)
		}
		if b.Duration < 5 || b.Duration > 10 {
			t.Errorf("expected duration in [5, 10], got %f", b.Duration)
		}
	}
}

func TestBubbleFieldRise(t *testing.T) {
	world := ecs.NewWorld()
	field := NewBubbleField(world, testBubbleConfig(), rand.New(rand.NewSource(3)))

	// Before any delay can elapse some bubbles are still hidden
	visible := 0
	field.Each(0, 1000, 160, 1400, func(BubbleState) { visible++ })
	if visible == 14 {
		t.Error("expected delayed bubbles to be hidden at t=0")
	}

	visible = 0
	field.Each(4, 1000, 160, 1400, func(st BubbleState) {
		visible++
		if st.Y < 160 || st.Y > 1400 {
			t.Errorf("expected bubble between surface and seabed, got y=%f", st.Y)
		}
		if st.Progress < 0 || st.Progress >= 1 {
			t.Errorf("expected progress in [0, 1), got %f", st.Progress)
		}
		if st.X < -12 || st.X > 1012 {
			t.Errorf("expected drift within amplitude, got x=%f", st.X)
		}
	})
	if visible != 14 {
		t.Errorf("expected all bubbles visible after max delay, got %d", visible)
	}
}

func TestPlantSwayBounded(t *testing.T) {
	cfg := config.PlantsConfig{
		Count:       9,
		HeightMin:   60,
		HeightRange: 90,
		SwayAmp:     0.18,
		SwayFreq:    0.25,
		JitterScale: 0.35,
		JitterSpeed: 0.4,
	}
	bed := NewPlantBed(ecs.NewWorld(), cfg, rand.New(rand.NewSource(5)))

	n := 0
	for step := 0; step < 600; step++ {
		bed.Update(float32(step) / 60)
		bed.Each(func(p *components.Plant) {
			if absf(p.Angle) > 0.18+1e-6 {
				t.Fatalf("expected |angle| <= 0.18, got %f", p.Angle)
			}
		})
	}

	prev := float32(-1)
	bed.Each(func(p *components.Plant) {
		n++
		if p.XFrac <= prev || p.XFrac >= 1 {
			t.Errorf("expected plants spread left to right in [0, 1), got %f after %f", p.XFrac, prev)
		}
		prev = p.XFrac
		if p.Height < 60 || p.Height > 150 {
			t.Errorf("expected height in [60, 150], got %f", p.Height)
		}
	})
	if n != 9 {
		t.Errorf("expected 9 plants, got %d", n)
	}
}
