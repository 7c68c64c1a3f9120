// Shader debug tool - renders the water shader to PNG files for inspection,
// one per theme.
//
// Usage: go run ./cmd/shaderdebug -out water -time 2.5
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/systems"
)

func main() {
	shaderPath := flag.String("shader", renderer.WaterShaderPath, "Path to fragment shader")
	outPrefix := flag.String("out", "water", "Output PNG prefix; writes <prefix>_<theme>.png")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	t := flag.Float64("time", 0, "Shader time in seconds")
	theme := flag.String("theme", "both", "day, night or both")
	flag.Parse()

	var themes []systems.Theme
	switch *theme {
	case "day":
		themes = []systems.Theme{systems.ThemeDay}
	case "night":
		themes = []systems.Theme{systems.ThemeNight}
	case "both":
		themes = []systems.Theme{systems.ThemeDay, systems.ThemeNight}
	default:
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\n", *theme)
		os.Exit(2)
	}

	water := renderer.NewWaterShader(*shaderPath)
	if water == nil {
		fmt.Fprintf(os.Stderr, "Shader not found: %s\n", *shaderPath)
		os.Exit(1)
	}

	// Hidden window for the GL context
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()
	defer water.Unload()

	w, h := int32(*width), int32(*height)
	target := rl.LoadRenderTexture(w, h)
	defer rl.UnloadRenderTexture(target)

	failed := false
	for _, th := range themes {
		rl.BeginTextureMode(target)
		rl.ClearBackground(rl.Black)
		water.Draw(float32(*t), 0, 0, w, h, w, h, renderer.PaletteFor(th))
		rl.EndTextureMode()

		// Flip for the OpenGL origin
		img := rl.LoadImageFromTexture(target.Texture)
		rl.ImageFlipVertical(img)

		path := fmt.Sprintf("%s_%s.png", *outPrefix, th)
		if rl.ExportImage(*img, path) {
			fmt.Printf("Shader rendered to: %s (%dx%d, t=%.2f)\n", path, w, h, *t)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to export %s\n", path)
			failed = true
		}
		rl.UnloadImage(img)
	}
	if failed {
		os.Exit(1)
	}
}
