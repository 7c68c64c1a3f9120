package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/systems"
)

// Action is what the loop should do after an event.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionToggleTheme
)

// InputFeed turns terminal events into pointer, viewport and camera updates.
type InputFeed struct {
	ptr *systems.Pointer
	vp  *systems.Viewport
	cam *camera.Camera

	cellW, cellH float32
	scrollStep   float32
}

// NewInputFeed creates a feed writing into the given snapshots.
func NewInputFeed(ptr *systems.Pointer, vp *systems.Viewport, cam *camera.Camera, cellW, cellH int, scrollStep float32) *InputFeed {
	return &InputFeed{
		ptr:        ptr,
		vp:         vp,
		cam:        cam,
		cellW:      float32(cellW),
		cellH:      float32(cellH),
		scrollStep: scrollStep,
	}
}

// Handle applies one event.
func (f *InputFeed) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		// Pointer sits at the center of the cell
		f.ptr.Move((float32(col)+0.5)*f.cellW, (float32(row)+0.5)*f.cellH)

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			f.cam.Scroll(-f.scrollStep)
		}
		if buttons&tcell.WheelDown != 0 {
			f.cam.Scroll(f.scrollStep)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			f.ptr.Deactivate()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		f.Resize(cols, rows)

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyUp:
			f.cam.Scroll(-f.scrollStep)
		case tcell.KeyDown:
			f.cam.Scroll(f.scrollStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return ActionQuit
			case 'r':
				return ActionReset
			case 'n':
				return ActionToggleTheme
			}
		}
	}
	return ActionNone
}

// Resize maps a terminal of cols x rows cells onto the pixel viewport.
func (f *InputFeed) Resize(cols, rows int) {
	w := float32(cols) * f.cellW
	h := float32(rows) * f.cellH
	f.vp.Resize(w, h)
	f.cam.Resize(w, h)
}
