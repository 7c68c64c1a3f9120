package renderer

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaterShaderPath is where the animated water shader is loaded from.
const WaterShaderPath = "shaders/water.fs"

// WaterShader renders the water body with an animated caustics shader.
type WaterShader struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32
	areaLoc       int32
	shallowLoc    int32
	deepLoc       int32
	path          string
	initialized   bool
}

// NewWaterShader returns a shader renderer, or nil if the shader file is
// missing. Callers fall back to a flat gradient on nil.
func NewWaterShader(path string) *WaterShader {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return &WaterShader{path: path}
}

// Init loads the shader (must be called after raylib window is created).
func (w *WaterShader) Init() {
	if w.initialized {
		return
	}

	w.shader = rl.LoadShader("", w.path)
	w.timeLoc = rl.GetShaderLocation(w.shader, "time")
	w.resolutionLoc = rl.GetShaderLocation(w.shader, "resolution")
	w.areaLoc = rl.GetShaderLocation(w.shader, "area")
	w.shallowLoc = rl.GetShaderLocation(w.shader, "shallow")
	w.deepLoc = rl.GetShaderLocation(w.shader, "deep")

	w.initialized = true
}

// Draw renders the water rectangle [x, y, width, height] on a screen of
// screenW x screenH.
func (w *WaterShader) Draw(time float32, x, y, width, height, screenW, screenH int32, pal *Palette) {
	if !w.initialized {
		w.Init()
	}

	rl.SetShaderValue(w.shader, w.timeLoc, []float32{time}, rl.ShaderUniformFloat)
	rl.SetShaderValue(w.shader, w.resolutionLoc, []float32{float32(screenW), float32(screenH)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(w.shader, w.areaLoc, []float32{float32(x), float32(y), float32(width), float32(height)}, rl.ShaderUniformVec4)
	rl.SetShaderValue(w.shader, w.shallowLoc, colorVec(pal.WaterTop), rl.ShaderUniformVec3)
	rl.SetShaderValue(w.shader, w.deepLoc, colorVec(pal.WaterBottom), rl.ShaderUniformVec3)

	rl.BeginShaderMode(w.shader)
	rl.DrawRectangle(x, y, width, height, rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (w *WaterShader) Unload() {
	if w.initialized {
		rl.UnloadShader(w.shader)
		w.initialized = false
	}
}

func colorVec(c rl.Color) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
