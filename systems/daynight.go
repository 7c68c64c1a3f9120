package systems

import (
	"time"

	"github.com/pthm-cable/aquarium/config"
)

// Theme is the scene palette.
type Theme uint8

const (
	ThemeDay Theme = iota
	ThemeNight
)

// String returns the theme name.
func (t Theme) String() string {
	if t == ThemeNight {
		return "night"
	}
	return "day"
}

// IsNight reports whether hour falls in the night window [nightStart, nightEnd),
// wrapping past midnight when nightStart > nightEnd.
func IsNight(hour, nightStart, nightEnd int) bool {
	if nightStart > nightEnd {
		return hour >= nightStart || hour < nightEnd
	}
	return hour >= nightStart && hour < nightEnd
}

// DayNight tracks the theme from the wall clock, re-evaluated on an interval
// of host clock time.
type DayNight struct {
	now        func() time.Time
	clock      Clock
	interval   time.Duration
	nightStart int
	nightEnd   int

	lastEval  time.Duration
	evaluated bool
	theme     Theme

	override    Theme
	hasOverride bool
}

// NewDayNight creates a tracker. now is usually time.Now.
func NewDayNight(cfg config.DayNightConfig, now func() time.Time, clock Clock) *DayNight {
	return &DayNight{
		now:        now,
		clock:      clock,
		interval:   time.Duration(cfg.RefreshInterval * float64(time.Second)),
		nightStart: cfg.NightStart,
		nightEnd:   cfg.NightEnd,
	}
}

// Update re-evaluates the theme when the refresh interval has passed.
// Returns true if the effective theme changed.
func (d *DayNight) Update() bool {
	elapsed := d.clock.Elapsed()
	if d.evaluated && elapsed-d.lastEval < d.interval {
		return false
	}

	before := d.Theme()
	d.lastEval = elapsed
	d.theme = ThemeDay
	if IsNight(d.now().Hour(), d.nightStart, d.nightEnd) {
		d.theme = ThemeNight
	}
	changed := d.evaluated && d.Theme() != before
	d.evaluated = true
	return changed
}

// Theme returns the effective theme.
func (d *DayNight) Theme() Theme {
	if d.hasOverride {
		return d.override
	}
	return d.theme
}

// Night reports whether the effective theme is night.
func (d *DayNight) Night() bool {
	return d.Theme() == ThemeNight
}

// SetOverride forces a theme; ClearOverride returns to the wall clock.
func (d *DayNight) SetOverride(t Theme) {
	d.override = t
	d.hasOverride = true
}

// ClearOverride removes a forced theme.
func (d *DayNight) ClearOverride() {
	d.hasOverride = false
}

// Overridden reports whether a theme is forced.
func (d *DayNight) Overridden() bool {
	return d.hasOverride
}
