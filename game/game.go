package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/inspector"
	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/ui"
)

// PointerScript returns the cursor state at simulation time t (seconds).
// Headless runs use it in place of the mouse.
type PointerScript func(t float32) (x, y float32, active bool)

// Options configures game initialization.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Config overrides config.Cfg() when set.
	Config *config.Config

	// StatsCallback receives every flushed telemetry window.
	StatsCallback func(telemetry.WindowStats)

	// Pointer drives the cursor in headless mode. nil leaves it inactive.
	Pointer PointerScript

	// Now is the wall clock for day/night. time.Now if nil.
	Now func() time.Time
}

// Game holds the complete aquarium state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	rngSeed int64

	// Simulation
	swarm      *systems.Swarm
	clock      systems.Clock
	frameClock *systems.FrameClock // headless only
	decor      *ecs.World
	bubbles    *systems.BubbleField
	plants     *systems.PlantBed
	dayNight   *systems.DayNight

	// Rendering (nil in headless mode)
	fishRenderer  *renderer.FishRenderer
	sceneRenderer *renderer.SceneRenderer
	decorRenderer *renderer.DecorRenderer
	water         *renderer.WaterShader
	inspector     *inspector.Inspector
	hud           *ui.HUD
	controls      *ui.ControlsPanel
	tuning        *ui.TuningPanel
	overlays      *ui.OverlayRegistry
	perfPanel     *ui.PerfPanel
	renderPerf    *PerfStats
	showPerf      bool
	frame         int64

	cam    *camera.Camera
	layout renderer.SceneLayout
	clip   systems.ClipTracker

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool
	lastStats        telemetry.WindowStats

	// State
	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int
	pointerScript  PointerScript

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a new game with the specified options.
// Graphical mode must be called after the raylib window exists.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	screenW := cfg.Derived.ScreenW32
	screenH := cfg.Derived.ScreenH32

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		rngSeed:        opts.Seed,
		headless:       opts.Headless,
		stepsPerUpdate: stepsPerUpdate,
		pointerScript:  opts.Pointer,
		statsCallback:  opts.StatsCallback,
		logStats:       opts.LogStats,
		screenWidth:    screenW,
		screenHeight:   screenH,
	}

	// The swarm draws through a sink; headless runs have nothing to draw on
	var sink systems.FishSink
	if opts.Headless {
		g.frameClock = systems.NewFrameClock(cfg.Physics.DT)
		g.clock = g.frameClock
		sink = discardSink{}
	} else {
		g.clock = systems.ClockFunc(rl.GetTime)
		g.fishRenderer = renderer.NewFishRenderer()
		sink = g.fishRenderer
	}

	viewport := systems.Viewport{Width: screenW, Height: screenH}
	g.swarm = systems.NewSwarm(systems.SwarmParamsFromConfig(cfg), viewport, rng, g.clock, sink)

	g.decor = ecs.NewWorld()
	g.bubbles = systems.NewBubbleField(g.decor, cfg.Bubbles, rng)
	g.plants = systems.NewPlantBed(g.decor, cfg.Plants, rng)
	g.dayNight = systems.NewDayNight(cfg.DayNight, opts.Now, g.clock)
	g.dayNight.Update()

	g.cam = camera.New(screenW, screenH, cfg.Derived.SceneH32)
	g.layout = renderer.SceneLayout{
		SceneH:        cfg.Derived.SceneH32,
		SurfaceBottom: float32(cfg.Scene.SurfaceBottom),
		SeabedHeight:  float32(cfg.Scene.SeabedHeight),
	}
	g.clip.Update(g.cam.SceneToScreen(g.layout.SurfaceBottom))

	// Telemetry
	g.collector = telemetry.NewCollector(statsWindow, cfg.Derived.DT32)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.bookmarkDetector = telemetry.NewBookmarkDetector(6, cfg.Swarm.MaxFish)
	g.swarm.SetObserver(g.collector)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.initRendering()
	}

	return g
}

// initRendering creates the raylib-side renderers and panels.
func (g *Game) initRendering() {
	g.water = renderer.NewWaterShader(renderer.WaterShaderPath)
	if g.water == nil {
		slog.Warn("water shader not found, using gradient", "path", renderer.WaterShaderPath)
	}
	g.sceneRenderer = renderer.NewSceneRenderer(int32(g.screenWidth), g.water)
	g.decorRenderer = renderer.NewDecorRenderer()
	g.inspector = inspector.NewInspector(int32(g.screenWidth), int32(g.screenHeight))
	g.hud = ui.NewHUD()
	g.overlays = ui.NewOverlayRegistry()
	g.controls = ui.NewControlsPanel(10, 110, 200)
	g.tuning = ui.NewTuningPanel(int32(g.screenWidth)-ui.TuningPanelWidth-10, 10)
	g.perfPanel = ui.NewPerfPanel(10, 230)
	g.renderPerf = NewPerfStats()
}

// Update runs one frame of the graphical game: input, then the simulation.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs the simulation without input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		if g.frameClock != nil {
			g.frameClock.Step()
		}
		g.applyPointerScript()
		g.simulationStep()
	}
}

// applyPointerScript feeds the scripted cursor into the swarm.
func (g *Game) applyPointerScript() {
	if g.pointerScript == nil {
		return
	}
	x, y, active := g.pointerScript(g.seconds())
	ptr := g.swarm.Pointer()
	if active {
		ptr.Move(x, y)
	} else {
		ptr.Deactivate()
	}
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
	}
	if g.sceneRenderer != nil {
		g.sceneRenderer.Unload()
	}
}

// Tick returns the number of simulation steps run so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// FishCount returns the number of active fish.
func (g *Game) FishCount() int {
	return g.swarm.Count()
}

// Swarm returns the fish swarm.
func (g *Game) Swarm() *systems.Swarm {
	return g.swarm
}

// LastStats returns the most recent telemetry window.
func (g *Game) LastStats() telemetry.WindowStats {
	return g.lastStats
}

// seconds returns clock time in seconds.
func (g *Game) seconds() float32 {
	return float32(g.clock.Elapsed().Seconds())
}

// discardSink accepts the fish lifecycle and draws nothing.
type discardSink struct{}

func (discardSink) Create(ecs.Entity, components.FishKind, float32, float32, bool) {}
func (discardSink) Update(ecs.Entity, float32, float32, bool)                      {}
func (discardSink) Destroy(ecs.Entity)                                             {}
