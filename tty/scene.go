package tty

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

// surfaceBand is the wavy surface height in scene pixels.
const surfaceBand = 40

// Palette holds the terminal styles for one theme.
type Palette struct {
	Sky, Surface, Water, Deep, Sand tcell.Style
	Bubble                          tcell.Style
	Plants                          [systems.PlantHues]tcell.Color
	Status                          tcell.Style
}

var dayPalette = Palette{
	Sky:     tcell.StyleDefault.Background(tcell.ColorSkyblue).Foreground(tcell.ColorYellow),
	Surface: tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite),
	Water:   tcell.StyleDefault.Background(tcell.ColorDodgerBlue),
	Deep:    tcell.StyleDefault.Background(tcell.ColorNavy),
	Sand:    tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorSaddleBrown),
	Bubble:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Plants:  [systems.PlantHues]tcell.Color{tcell.ColorSeaGreen, tcell.ColorMediumSeaGreen, tcell.ColorForestGreen, tcell.ColorOliveDrab},
	Status:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
}

var nightPalette = Palette{
	Sky:     tcell.StyleDefault.Background(tcell.ColorMidnightBlue).Foreground(tcell.ColorWhiteSmoke),
	Surface: tcell.StyleDefault.Background(tcell.ColorDarkSlateBlue).Foreground(tcell.ColorLightSteelBlue),
	Water:   tcell.StyleDefault.Background(tcell.ColorDarkBlue),
	Deep:    tcell.StyleDefault.Background(tcell.ColorBlack),
	Sand:    tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorGray),
	Bubble:  tcell.StyleDefault.Foreground(tcell.ColorLightSteelBlue),
	Plants:  [systems.PlantHues]tcell.Color{tcell.ColorDarkGreen, tcell.ColorDarkOliveGreen, tcell.ColorDarkSlateGray, tcell.ColorDarkCyan},
	Status:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray),
}

// PaletteFor returns the terminal palette of a theme.
func PaletteFor(theme systems.Theme) *Palette {
	if theme == systems.ThemeNight {
		return &nightPalette
	}
	return &dayPalette
}

// Layout holds the vertical structure of the scene, in scene pixels.
type Layout struct {
	SurfaceBottom float32
	SeabedTop     float32
}

// SceneView draws the scene behind the fish.
type SceneView struct {
	cam          *camera.Camera
	layout       Layout
	cellW, cellH float32
}

// NewSceneView creates a view over cam.
func NewSceneView(cam *camera.Camera, layout Layout, cellW, cellH int) *SceneView {
	return &SceneView{
		cam:    cam,
		layout: layout,
		cellW:  float32(cellW),
		cellH:  float32(cellH),
	}
}

// ClipRow returns the first row below the water surface.
func (v *SceneView) ClipRow() int {
	clip := systems.ClipTop(v.cam.SceneToScreen(v.layout.SurfaceBottom))
	return int(math.Ceil(float64(clip / v.cellH)))
}

// rowSceneY returns the scene y at the middle of a row.
func (v *SceneView) rowSceneY(row int) float32 {
	return v.cam.ScreenToScene((float32(row) + 0.5) * v.cellH)
}

// sceneRow returns the row showing scene y.
func (v *SceneView) sceneRow(y float32) int {
	return floorDiv(v.cam.SceneToScreen(y), v.cellH)
}

// DrawBackground fills every cell with sky, surface, water or sand.
func (v *SceneView) DrawBackground(s tcell.Screen, pal *Palette, t float32) {
	w, h := s.Size()
	surfaceTop := v.layout.SurfaceBottom - surfaceBand
	for row := 0; row < h; row++ {
		y := v.rowSceneY(row)
		for col := 0; col < w; col++ {
			switch {
			case y < surfaceTop:
				s.SetContent(col, row, ' ', nil, pal.Sky)
			case y < v.layout.SurfaceBottom:
				r := ' '
				wave := math.Sin(float64(col)*0.35 + float64(t)*2)
				if wave > 0.3 {
					r = '~'
				}
				s.SetContent(col, row, r, nil, pal.Surface)
			case y < v.layout.SeabedTop:
				style := pal.Water
				if (y-v.layout.SurfaceBottom)/(v.layout.SeabedTop-v.layout.SurfaceBottom) > 0.6 {
					style = pal.Deep
				}
				s.SetContent(col, row, ' ', nil, style)
			default:
				r := ' '
				if (col*7+row*3)%5 == 0 {
					r = '.'
				}
				s.SetContent(col, row, r, nil, pal.Sand)
			}
		}
	}
}

// DrawPlants draws each plant as a column of cells bending with its angle.
func (v *SceneView) DrawPlants(s tcell.Screen, bed *systems.PlantBed, pal *Palette) {
	w, h := s.Size()
	base := v.sceneRow(v.layout.SeabedTop)
	bed.Each(func(p *components.Plant) {
		cells := int(p.Height / v.cellH)
		col0 := p.XFrac * float32(w)
		_, bg, _ := pal.Water.Decompose()
		style := tcell.StyleDefault.Foreground(pal.Plants[int(p.Hue)%len(pal.Plants)]).Background(bg)
		for i := 0; i <= cells; i++ {
			row := base - i
			if row < 0 || row >= h {
				continue
			}
			bend := float64(p.Angle) * float64(i) / float64(max(cells, 1))
			col := int(col0 + float32(math.Sin(bend))*float32(i)*v.cellH/v.cellW)
			if col < 0 || col >= w {
				continue
			}
			r := '|'
			switch {
			case bend > 0.05:
				r = '/'
			case bend < -0.05:
				r = '\\'
			}
			s.SetContent(col, row, r, nil, style)
		}
	})
}

// DrawBubbles draws the rising bubbles, never above clipRow.
func (v *SceneView) DrawBubbles(s tcell.Screen, field *systems.BubbleField, pal *Palette, t float32, clipRow int) {
	w, h := s.Size()
	field.Each(t, v.cam.ViewportW, v.layout.SurfaceBottom, v.layout.SeabedTop, func(b systems.BubbleState) {
		col := floorDiv(b.X, v.cellW)
		row := v.sceneRow(b.Y)
		if row < clipRow || row < 0 || row >= h || col < 0 || col >= w {
			return
		}
		r := 'o'
		switch {
		case b.Size >= 28:
			r = 'O'
		case b.Progress > 0.85:
			r = '°'
		}
		_, _, style, _ := s.GetContent(col, row)
		_, bg, _ := style.Decompose()
		s.SetContent(col, row, r, nil, pal.Bubble.Background(bg))
	})
}
