package game

import "math"

// LissajousPointer traces a figure-eight over the band [top, bottom] of a
// w-wide viewport, one loop per period seconds. The pointer is idle for
// idleFrac of each loop, the way a real cursor comes and goes.
func LissajousPointer(w, top, bottom, period, idleFrac float32) PointerScript {
	cx := w / 2
	cy := (top + bottom) / 2
	ax := w * 0.45
	ay := (bottom - top) / 2
	return func(t float32) (float32, float32, bool) {
		phase := t / period
		phase -= float32(math.Floor(float64(phase)))
		if phase < idleFrac {
			return 0, 0, false
		}
		a := 2 * math.Pi * float64(phase)
		x := cx + ax*float32(math.Sin(a))
		y := cy + ay*float32(math.Sin(2*a))
		return x, y, true
	}
}
