package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GlowState places the sun or moon in the sky band.
type GlowState struct {
	// Normalized position over the sky (0-1), e.g. top-right = {0.8, 0.35}
	PosX, PosY float32
	// Light intensity (0-1)
	Intensity float32
	Night     bool
}

// SkyGlowRenderer draws the sun by day and the moon by night above the water.
type SkyGlowRenderer struct {
	width float32
}

// NewSkyGlowRenderer creates a new sky glow renderer.
func NewSkyGlowRenderer(width int32) *SkyGlowRenderer {
	return &SkyGlowRenderer{width: float32(width)}
}

// Resize updates the screen width.
func (r *SkyGlowRenderer) Resize(width int32) {
	r.width = float32(width)
}

// Draw renders the glow in a sky band whose top and bottom are screen rows.
// Nothing is drawn once the sky has scrolled away.
func (r *SkyGlowRenderer) Draw(g GlowState, skyTop, skyBottom float32, pal *Palette) {
	if skyBottom <= 0 {
		return
	}
	x := g.PosX * r.width
	y := skyTop + g.PosY*(skyBottom-skyTop)

	r.drawRadialLight(x, y, (skyBottom-skyTop)*1.5, g.Intensity, pal.Glow)
	r.drawGlow(x, y, g.Intensity, pal.Glow)
	if g.Night {
		// Crescent: cut the disc with the sky color
		rl.DrawCircle(int32(x+7), int32(y-4), 14, pal.SkyTop)
	}
}

// drawRadialLight draws a subtle radial gradient from the light source.
func (r *SkyGlowRenderer) drawRadialLight(x, y, maxRadius, intensity float32, tint rl.Color) {
	steps := 12
	for i := steps; i >= 0; i-- {
		t := float32(i) / float32(steps)
		radius := maxRadius * t * 0.4

		// Fast falloff keeps light near the source
		falloff := float32(math.Pow(float64(1-t), 4.0))
		alpha := falloff * 0.05 * intensity * 255

		if alpha < 1 {
			continue
		}
		rl.DrawCircle(int32(x), int32(y), radius, dim(tint, alpha/255))
	}
}

// drawGlow draws layered halos and a solid disc.
func (r *SkyGlowRenderer) drawGlow(x, y, intensity float32, tint rl.Color) {
	glowLayers := []struct {
		radius float32
		alpha  float32
	}{
		{60, 10},
		{40, 20},
		{28, 40},
	}

	for _, layer := range glowLayers {
		rl.DrawCircle(int32(x), int32(y), layer.radius, dim(tint, layer.alpha*intensity/255))
	}
	rl.DrawCircle(int32(x), int32(y), 18, dim(tint, intensity))
}
