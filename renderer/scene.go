package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
)

// SurfaceBand is the height of the wavy water surface, in scene pixels.
const SurfaceBand = 40

// SceneLayout holds the vertical structure of the scene, in scene pixels.
type SceneLayout struct {
	SceneH        float32
	SurfaceBottom float32 // lower edge of the water surface
	SeabedHeight  float32
}

// SurfaceTop returns the upper edge of the surface band.
func (l SceneLayout) SurfaceTop() float32 {
	return max(l.SurfaceBottom-SurfaceBand, 0)
}

// SeabedTop returns the scene y where the sand starts.
func (l SceneLayout) SeabedTop() float32 {
	return l.SceneH - l.SeabedHeight
}

// SceneRenderer draws the sky, the water surface, the water body and the seabed.
type SceneRenderer struct {
	water *WaterShader
	glow  *SkyGlowRenderer
}

// NewSceneRenderer creates a scene renderer. water may be nil.
func NewSceneRenderer(screenW int32, water *WaterShader) *SceneRenderer {
	return &SceneRenderer{
		water: water,
		glow:  NewSkyGlowRenderer(screenW),
	}
}

// Draw renders the scene under cam at time t (seconds).
func (r *SceneRenderer) Draw(cam *camera.Camera, layout SceneLayout, pal *Palette, t float32, night bool) {
	w := int32(cam.ViewportW)
	h := int32(cam.ViewportH)
	r.glow.Resize(w)

	skyTop := cam.SceneToScreen(0)
	surfaceTop := cam.SceneToScreen(layout.SurfaceTop())
	surfaceBottom := cam.SceneToScreen(layout.SurfaceBottom)
	seabedTop := cam.SceneToScreen(layout.SeabedTop())

	// Sky
	if surfaceTop > 0 {
		rl.DrawRectangleGradientV(0, int32(skyTop), w, int32(surfaceTop-skyTop)+1, pal.SkyTop, pal.SkyBottom)
		intensity := float32(1)
		if night {
			intensity = 0.8
		}
		r.glow.Draw(GlowState{PosX: 0.8, PosY: 0.4, Intensity: intensity, Night: night}, skyTop, surfaceTop, pal)
	}

	// Water body
	waterTop := clampf(surfaceBottom, 0, float32(h))
	waterBottom := clampf(seabedTop, 0, float32(h))
	if waterBottom > waterTop {
		if r.water != nil {
			r.water.Draw(t, 0, int32(waterTop), w, int32(waterBottom-waterTop), w, h, pal)
		} else {
			rl.DrawRectangleGradientV(0, int32(waterTop), w, int32(waterBottom-waterTop), pal.WaterTop, pal.WaterBottom)
		}
	}

	if surfaceBottom > 0 && surfaceTop < float32(h) {
		r.drawSurface(w, surfaceTop, surfaceBottom, pal, t)
	}

	if seabedTop < float32(h) {
		r.drawSeabed(w, h, seabedTop, pal)
	}
}

// drawSurface draws the wavy band between the sky and the water.
func (r *SceneRenderer) drawSurface(w int32, top, bottom float32, pal *Palette, t float32) {
	const step = 8
	for x := int32(0); x < w; x += step {
		phase := float64(x)*0.03 + float64(t)*1.5
		crest := top + SurfaceBand*0.35 + float32(math.Sin(phase))*6 + float32(math.Sin(phase*0.37+1))*4
		rl.DrawRectangle(x, int32(crest), step, int32(bottom-crest)+1, pal.Surface)
		rl.DrawRectangle(x, int32(crest), step, 2, pal.SurfaceFoam)
	}
}

// drawSeabed draws the sand with a few dunes.
func (r *SceneRenderer) drawSeabed(w, h int32, top float32, pal *Palette) {
	rl.DrawRectangle(0, int32(top), w, h-int32(top)+1, pal.Sand)
	dunes := int32(6)
	for i := int32(0); i <= dunes; i++ {
		cx := float32(i) * float32(w) / float32(dunes)
		rl.DrawEllipse(int32(cx), int32(top)+6, float32(w)/float32(dunes)*0.6, 12, pal.SandShadow)
	}
	rl.DrawRectangle(0, int32(top)+6, w, h, pal.Sand)
}

// Unload frees resources.
func (r *SceneRenderer) Unload() {
	if r.water != nil {
		r.water.Unload()
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
