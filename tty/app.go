package tty

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Options configures the terminal aquarium.
type Options struct {
	Seed      int64
	Sound     bool
	ShowStats bool
	Now       func() time.Time // wall clock for day/night; time.Now if nil
}

// App runs the aquarium on a tcell screen.
type App struct {
	screen tcell.Screen
	cfg    *config.Config

	clock    *systems.FrameClock
	swarm    *systems.Swarm
	layer    *FishLayer
	bubbles  *systems.BubbleField
	plants   *systems.PlantBed
	dayNight *systems.DayNight

	cam   *camera.Camera
	view  *SceneView
	input *InputFeed

	collector *telemetry.Collector
	opts      Options
	lastStats telemetry.WindowStats
}

// NewApp builds the aquarium for an initialized screen.
func NewApp(screen tcell.Screen, cfg *config.Config, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	cellW, cellH := cfg.TTY.CellWidth, cfg.TTY.CellHeight

	cols, rows := screen.Size()
	vp := systems.Viewport{Width: float32(cols * cellW), Height: float32(rows * cellH)}

	clock := systems.NewFrameClock(cfg.Physics.DT)
	layer := NewFishLayer(cellW, cellH)
	swarm := systems.NewSwarm(systems.SwarmParamsFromConfig(cfg), vp, rng, clock, layer)

	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT32)
	swarm.SetObserver(NewChime(collector, opts.Sound))

	decor := ecs.NewWorld()
	cam := camera.New(vp.Width, vp.Height, cfg.Derived.SceneH32)
	layout := Layout{
		SurfaceBottom: float32(cfg.Scene.SurfaceBottom),
		SeabedTop:     cfg.Derived.SceneH32 - float32(cfg.Scene.SeabedHeight),
	}

	a := &App{
		screen:    screen,
		cfg:       cfg,
		clock:     clock,
		swarm:     swarm,
		layer:     layer,
		bubbles:   systems.NewBubbleField(decor, cfg.Bubbles, rng),
		plants:    systems.NewPlantBed(decor, cfg.Plants, rng),
		dayNight:  systems.NewDayNight(cfg.DayNight, opts.Now, clock),
		cam:       cam,
		view:      NewSceneView(cam, layout, cellW, cellH),
		collector: collector,
		opts:      opts,
	}
	a.input = NewInputFeed(swarm.Pointer(), swarm.Viewport(), cam, cellW, cellH, float32(cfg.Scene.ScrollStep))
	a.dayNight.Update()
	return a
}

// Swarm returns the fish swarm.
func (a *App) Swarm() *systems.Swarm {
	return a.swarm
}

// Layer returns the fish layer.
func (a *App) Layer() *FishLayer {
	return a.layer
}

// Camera returns the scene camera.
func (a *App) Camera() *camera.Camera {
	return a.cam
}

// Handle applies one terminal event. Returns false when the app should quit.
func (a *App) Handle(ev tcell.Event) bool {
	switch a.input.Handle(ev) {
	case ActionQuit:
		return false
	case ActionReset:
		a.swarm.Reset()
	case ActionToggleTheme:
		if a.dayNight.Overridden() {
			a.dayNight.ClearOverride()
		} else if a.dayNight.Night() {
			a.dayNight.SetOverride(systems.ThemeDay)
		} else {
			a.dayNight.SetOverride(systems.ThemeNight)
		}
	}
	return true
}

// Step advances the aquarium by one frame.
func (a *App) Step() {
	a.clock.Step()
	a.swarm.Tick()

	t := a.seconds()
	a.plants.Update(t)
	if a.dayNight.Update() {
		slog.Info("theme changed", "theme", a.dayNight.Theme().String())
	}

	tick := a.swarm.Frame()
	if a.collector.ShouldFlush(tick) {
		speeds, avoids := a.swarm.Sample(nil, nil)
		a.lastStats = a.collector.Flush(tick, a.swarm.Count(), speeds, avoids)
		if a.opts.ShowStats {
			a.lastStats.LogStats()
		}
	}
}

// Draw renders one frame to the screen.
func (a *App) Draw() {
	pal := PaletteFor(a.dayNight.Theme())
	t := a.seconds()

	a.view.DrawBackground(a.screen, pal, t)
	a.view.DrawPlants(a.screen, a.plants, pal)
	clip := a.view.ClipRow()
	a.view.DrawBubbles(a.screen, a.bubbles, pal, t, clip)
	a.layer.Draw(a.screen, clip)

	if a.opts.ShowStats {
		a.drawStatus(pal)
	}
	a.screen.Show()
}

func (a *App) drawStatus(pal *Palette) {
	status := fmt.Sprintf(" fish %d/%d  exits %d  %s  [q]uit [r]eset [n]ight ",
		a.swarm.Count(), a.swarm.Params().MaxFish, a.lastStats.Exits, a.dayNight.Theme())
	for i, r := range status {
		a.screen.SetContent(i, 0, r, nil, pal.Status)
	}
}

func (a *App) seconds() float32 {
	return float32(a.clock.Elapsed().Seconds())
}

// Run drives the app at the configured frame rate until ctx is done or the
// user quits.
func (a *App) Run(ctx context.Context) {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	defer a.screen.DisableMouse()

	fps := a.cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !a.Handle(ev) {
				return
			}
		case <-ticker.C:
			a.Step()
			a.Draw()
		}
	}
}
