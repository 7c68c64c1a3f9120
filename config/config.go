// Package config provides configuration loading and access for the aquarium.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all aquarium configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Swarm     SwarmConfig     `yaml:"swarm"`
	Bubbles   BubblesConfig   `yaml:"bubbles"`
	Plants    PlantsConfig    `yaml:"plants"`
	Scene     SceneConfig     `yaml:"scene"`
	DayNight  DayNightConfig  `yaml:"day_night"`
	TTY       TTYConfig       `yaml:"tty"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds frame timing.
// Fish movement is per frame; DT only drives the clock used by the warm-up
// schedule and the decorative collaborators.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// SwarmConfig holds fish swarm parameters.
type SwarmConfig struct {
	MaxFish        int     `yaml:"max_fish"`
	SpawnChance    float64 `yaml:"spawn_chance"`    // Per-frame spawn probability
	SpawnMargin    float64 `yaml:"spawn_margin"`    // Off-screen spawn distance
	SpawnYMin      float64 `yaml:"spawn_y_min"`     // Spawn y = min + r*range
	SpawnYRange    float64 `yaml:"spawn_y_range"`
	SpeedMin       float64 `yaml:"speed_min"`       // Base speed = min + r*range
	SpeedRange     float64 `yaml:"speed_range"`
	BandMin        float64 `yaml:"band_min"`        // Vertical swim band
	BandMax        float64 `yaml:"band_max"`
	BounceDamping  float64 `yaml:"bounce_damping"`  // Vertical avoid velocity kept on band hit
	AvoidRadius    float64 `yaml:"avoid_radius"`
	AvoidStrength  float64 `yaml:"avoid_strength"`  // Repulsion speed at distance 0
	DecayActive    float64 `yaml:"decay_active"`    // Avoid decay, pointer active but out of radius
	DecayInactive  float64 `yaml:"decay_inactive"`  // Avoid decay, pointer inactive
	FlipThreshold  float64 `yaml:"flip_threshold"`  // Min |vx| to change orientation
	ExitMargin     float64 `yaml:"exit_margin"`
	WarmupCount    int     `yaml:"warmup_count"`
	WarmupInterval float64 `yaml:"warmup_interval"` // Seconds between warm-up spawns
}

// BubblesConfig holds decorative bubble parameters.
type BubblesConfig struct {
	Count          int     `yaml:"count"`
	SizeMin        float64 `yaml:"size_min"`
	SizeRange      float64 `yaml:"size_range"`
	DelayMax       float64 `yaml:"delay_max"`       // Seconds
	DurationMin    float64 `yaml:"duration_min"`    // Seconds per rise
	DurationRange  float64 `yaml:"duration_range"`
	DriftAmplitude float64 `yaml:"drift_amplitude"` // Horizontal wobble in pixels
}

// PlantsConfig holds sea-floor plant parameters.
type PlantsConfig struct {
	Count        int     `yaml:"count"`
	HeightMin    float64 `yaml:"height_min"`
	HeightRange  float64 `yaml:"height_range"`
	SwayAmp      float64 `yaml:"sway_amp"`       // Max sway angle in radians
	SwayFreq     float64 `yaml:"sway_freq"`      // Base sway frequency in Hz
	JitterScale  float64 `yaml:"jitter_scale"`   // Fraction of sway driven by simplex noise
	JitterSpeed  float64 `yaml:"jitter_speed"`   // Noise time scale
}

// SceneConfig holds the scrollable page layout.
// The scene is taller than the window; the water surface sits below the sky.
type SceneConfig struct {
	Height        int     `yaml:"height"`         // Total scene height (0 = 2x screen height)
	SurfaceBottom float64 `yaml:"surface_bottom"` // Scene y of the water surface's lower edge
	SeabedHeight  float64 `yaml:"seabed_height"`
	ScrollStep    float64 `yaml:"scroll_step"`    // Pixels per wheel notch
}

// DayNightConfig holds theme switching parameters.
type DayNightConfig struct {
	NightStart      int     `yaml:"night_start"`      // Hour at which night begins
	NightEnd        int     `yaml:"night_end"`        // Hour at which night ends
	RefreshInterval float64 `yaml:"refresh_interval"` // Seconds between re-evaluations
}

// TTYConfig holds terminal mode parameters.
type TTYConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Pixels represented by one terminal column
	CellHeight int `yaml:"cell_height"` // Pixels represented by one terminal row
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32        float32 // Physics.DT as float32
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	SceneH32    float32 // Effective scene height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the swarm cannot run with.
func (c *Config) validate() error {
	s := c.Swarm
	if s.MaxFish < 0 {
		return fmt.Errorf("swarm.max_fish must be >= 0, got %d", s.MaxFish)
	}
	if s.BandMin > s.BandMax {
		return fmt.Errorf("swarm.band_min (%g) exceeds swarm.band_max (%g)", s.BandMin, s.BandMax)
	}
	if s.AvoidRadius < 0 {
		return fmt.Errorf("swarm.avoid_radius must be >= 0, got %g", s.AvoidRadius)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be > 0, got %g", c.Physics.DT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	sceneH := c.Scene.Height
	if sceneH == 0 {
		sceneH = c.Screen.Height * 2
	}
	c.Derived.SceneH32 = float32(sceneH)

	if c.TTY.CellWidth <= 0 {
		c.TTY.CellWidth = 8
	}
	if c.TTY.CellHeight <= 0 {
		c.TTY.CellHeight = 16
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
