// Package tty renders the aquarium in a terminal with tcell.
package tty

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// glyphs are the right-facing and left-facing drawings of each fish kind.
var glyphs = [components.NumFishKinds][2]string{
	components.KindClownfish:  {"><(|>", "<|)><"},
	components.KindBlueTang:   {">=(°>", "<°)=<"},
	components.KindAngelfish:  {"><)>", "<(><"},
	components.KindTropical:   {"><>", "<><"},
	components.KindYellowTang: {">{°>", "<°}<"},
}

var fishStyles = [components.NumFishKinds]tcell.Style{
	components.KindClownfish:  tcell.StyleDefault.Foreground(tcell.ColorOrange),
	components.KindBlueTang:   tcell.StyleDefault.Foreground(tcell.ColorRoyalBlue),
	components.KindAngelfish:  tcell.StyleDefault.Foreground(tcell.ColorKhaki),
	components.KindTropical:   tcell.StyleDefault.Foreground(tcell.ColorHotPink),
	components.KindYellowTang: tcell.StyleDefault.Foreground(tcell.ColorGold),
}

// Glyph returns the text drawn for a fish.
func Glyph(kind components.FishKind, mirrored bool) string {
	if int(kind) >= len(glyphs) {
		kind = components.KindTropical
	}
	if mirrored {
		return glyphs[kind][0]
	}
	return glyphs[kind][1]
}

type cellFish struct {
	kind     components.FishKind
	x, y     float32
	mirrored bool
}

// FishLayer is the terminal visual sink of the swarm. Fish positions are in
// pixels and are mapped onto cells of cellW x cellH pixels.
type FishLayer struct {
	fish  map[ecs.Entity]*cellFish
	order []ecs.Entity

	cellW, cellH float32
}

// NewFishLayer creates an empty layer for the given cell size in pixels.
func NewFishLayer(cellW, cellH int) *FishLayer {
	return &FishLayer{
		fish:  make(map[ecs.Entity]*cellFish),
		cellW: float32(cellW),
		cellH: float32(cellH),
	}
}

// Create adds a new fish.
func (l *FishLayer) Create(e ecs.Entity, kind components.FishKind, x, y float32, mirrored bool) {
	l.fish[e] = &cellFish{kind: kind, x: x, y: y, mirrored: mirrored}
	l.order = append(l.order, e)
}

// Update moves a fish.
func (l *FishLayer) Update(e ecs.Entity, x, y float32, mirrored bool) {
	if f, ok := l.fish[e]; ok {
		f.x, f.y, f.mirrored = x, y, mirrored
	}
}

// Destroy removes a fish.
func (l *FishLayer) Destroy(e ecs.Entity) {
	if _, ok := l.fish[e]; !ok {
		return
	}
	delete(l.fish, e)
	for i, o := range l.order {
		if o == e {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Count returns the number of fish on the layer.
func (l *FishLayer) Count() int {
	return len(l.order)
}

// Cell returns the cell holding pixel (x, y).
func (l *FishLayer) Cell(x, y float32) (col, row int) {
	return floorDiv(x, l.cellW), floorDiv(y, l.cellH)
}

// Draw puts every fish on screen. Rows above clipRow are left untouched.
func (l *FishLayer) Draw(s tcell.Screen, clipRow int) {
	w, h := s.Size()
	for _, e := range l.order {
		f := l.fish[e]
		col, row := l.Cell(f.x, f.y)
		if row < clipRow || row < 0 || row >= h {
			continue
		}

		text := []rune(Glyph(f.kind, f.mirrored))
		style := fishStyles[f.kind%components.NumFishKinds]
		start := col - len(text)/2
		for i, r := range text {
			c := start + i
			if c >= 0 && c < w {
				s.SetContent(c, row, r, nil, style)
			}
		}

		if f.kind.HasDorsalFin() && row-1 >= clipRow && row-1 >= 0 && col >= 0 && col < w {
			s.SetContent(col, row-1, '^', nil, style)
		}
	}
}

func floorDiv(v, size float32) int {
	c := int(v / size)
	if v < 0 && float32(c)*size != v {
		c--
	}
	return c
}
