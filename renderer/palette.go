package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

// Palette holds the scene colors for one theme.
type Palette struct {
	SkyTop, SkyBottom     rl.Color
	Surface, SurfaceFoam  rl.Color
	WaterTop, WaterBottom rl.Color
	Sand, SandShadow      rl.Color
	Bubble, BubbleRim     rl.Color
	Plants                [systems.PlantHues]rl.Color
	Glow                  rl.Color // sun or moon
	Text                  rl.Color
}

var dayPalette = Palette{
	SkyTop:      rl.Color{R: 135, G: 206, B: 235, A: 255},
	SkyBottom:   rl.Color{R: 200, G: 235, B: 250, A: 255},
	Surface:     rl.Color{R: 64, G: 164, B: 223, A: 255},
	SurfaceFoam: rl.Color{R: 230, G: 247, B: 255, A: 200},
	WaterTop:    rl.Color{R: 30, G: 136, B: 200, A: 255},
	WaterBottom: rl.Color{R: 8, G: 48, B: 107, A: 255},
	Sand:        rl.Color{R: 222, G: 196, B: 140, A: 255},
	SandShadow:  rl.Color{R: 190, G: 160, B: 105, A: 255},
	Bubble:      rl.Color{R: 255, G: 255, B: 255, A: 60},
	BubbleRim:   rl.Color{R: 255, G: 255, B: 255, A: 150},
	Plants: [systems.PlantHues]rl.Color{
		{R: 46, G: 139, B: 87, A: 255},
		{R: 60, G: 179, B: 113, A: 255},
		{R: 34, G: 120, B: 60, A: 255},
		{R: 107, G: 142, B: 35, A: 255},
	},
	Glow: rl.Color{R: 255, G: 220, B: 120, A: 255},
	Text: rl.Color{R: 20, G: 40, B: 60, A: 255},
}

var nightPalette = Palette{
	SkyTop:      rl.Color{R: 10, G: 14, B: 40, A: 255},
	SkyBottom:   rl.Color{R: 30, G: 40, B: 80, A: 255},
	Surface:     rl.Color{R: 20, G: 60, B: 110, A: 255},
	SurfaceFoam: rl.Color{R: 160, G: 190, B: 230, A: 140},
	WaterTop:    rl.Color{R: 12, G: 50, B: 95, A: 255},
	WaterBottom: rl.Color{R: 2, G: 12, B: 35, A: 255},
	Sand:        rl.Color{R: 90, G: 85, B: 90, A: 255},
	SandShadow:  rl.Color{R: 65, G: 60, B: 70, A: 255},
	Bubble:      rl.Color{R: 200, G: 220, B: 255, A: 40},
	BubbleRim:   rl.Color{R: 200, G: 220, B: 255, A: 110},
	Plants: [systems.PlantHues]rl.Color{
		{R: 20, G: 70, B: 60, A: 255},
		{R: 30, G: 90, B: 75, A: 255},
		{R: 15, G: 60, B: 45, A: 255},
		{R: 45, G: 75, B: 40, A: 255},
	},
	Glow: rl.Color{R: 230, G: 235, B: 255, A: 255},
	Text: rl.Color{R: 220, G: 230, B: 255, A: 255},
}

// PaletteFor returns the palette of a theme.
func PaletteFor(theme systems.Theme) *Palette {
	if theme == systems.ThemeNight {
		return &nightPalette
	}
	return &dayPalette
}

// FishColors are the body and accent colors of a fish kind.
type FishColors struct {
	Body, Accent, Fin rl.Color
}

var fishColors = [components.NumFishKinds]FishColors{
	components.KindClownfish:  {Body: rl.Color{R: 255, G: 127, B: 39, A: 255}, Accent: rl.White, Fin: rl.Color{R: 230, G: 100, B: 20, A: 255}},
	components.KindBlueTang:   {Body: rl.Color{R: 30, G: 90, B: 220, A: 255}, Accent: rl.Color{R: 10, G: 20, B: 60, A: 255}, Fin: rl.Color{R: 250, G: 210, B: 40, A: 255}},
	components.KindAngelfish:  {Body: rl.Color{R: 240, G: 230, B: 140, A: 255}, Accent: rl.Color{R: 60, G: 60, B: 60, A: 255}, Fin: rl.Color{R: 220, G: 200, B: 100, A: 255}},
	components.KindTropical:   {Body: rl.Color{R: 220, G: 60, B: 140, A: 255}, Accent: rl.Color{R: 90, G: 220, B: 230, A: 255}, Fin: rl.Color{R: 180, G: 40, B: 110, A: 255}},
	components.KindYellowTang: {Body: rl.Color{R: 255, G: 220, B: 0, A: 255}, Accent: rl.Color{R: 255, G: 250, B: 200, A: 255}, Fin: rl.Color{R: 240, G: 190, B: 0, A: 255}},
}

// ColorsFor returns the colors of a fish kind.
func ColorsFor(kind components.FishKind) FishColors {
	if int(kind) >= len(fishColors) {
		return fishColors[components.KindClownfish]
	}
	return fishColors[kind]
}

// dim scales a color's alpha.
func dim(c rl.Color, a float32) rl.Color {
	c.A = uint8(float32(c.A) * a)
	return c
}
