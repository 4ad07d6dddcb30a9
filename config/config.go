// Package config provides configuration loading and access for the
// swarm controller and simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration. Network weights are not
// configuration - they are compile-time parameters (see the neural
// package) or an explicit weights file.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Agent      AgentConfig      `yaml:"agent"`
	Comms      CommsConfig      `yaml:"comms"`
	Population PopulationConfig `yaml:"population"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the arena dimensions in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AgentConfig holds the controller's runtime knobs.
type AgentConfig struct {
	Noise float64 `yaml:"noise"` // exploration magnitude, >= 0
	Speed float64 `yaml:"speed"` // max motor-delta magnitude, > 0
}

// CommsConfig holds the proximity-communication model parameters.
type CommsConfig struct {
	MaxDistance    float64 `yaml:"max_distance"`    // signal strength reaches 0 here
	RangeThreshold float64 `yaml:"range_threshold"` // neighbor iff distance strictly below
}

// PopulationConfig holds swarm sizing.
type PopulationConfig struct {
	Robots  int `yaml:"robots"`
	Targets int `yaml:"targets"`
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`             // seconds per tick
	GridCellSize float64 `yaml:"grid_cell_size"` // spatial index cell size
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks for degenerate values once at load time, so the
// per-tick path never has to.
func (c *Config) Validate() error {
	if c.Agent.Speed <= 0 {
		return fmt.Errorf("config: agent.speed must be positive, got %g", c.Agent.Speed)
	}
	if c.Agent.Noise < 0 {
		return fmt.Errorf("config: agent.noise must be non-negative, got %g", c.Agent.Noise)
	}
	if c.Comms.MaxDistance <= 0 {
		return fmt.Errorf("config: comms.max_distance must be positive, got %g", c.Comms.MaxDistance)
	}
	if c.Comms.RangeThreshold <= 0 {
		return fmt.Errorf("config: comms.range_threshold must be positive, got %g", c.Comms.RangeThreshold)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("config: physics.dt must be positive, got %g", c.Physics.DT)
	}
	if c.Population.Robots < 1 {
		return fmt.Errorf("config: population.robots must be at least 1, got %d", c.Population.Robots)
	}
	return nil
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
