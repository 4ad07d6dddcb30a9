// Package agent ties the control network to a per-robot random source
// and runtime configuration, exposing the once-per-tick control step.
package agent

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/swarm/neural"
)

// Config holds the runtime knobs of one robot's controller. Supplied
// once at startup and never mutated afterward.
type Config struct {
	Noise float32 // exploration magnitude, >= 0
	Speed float32 // maximum motor-delta magnitude, > 0
}

// Validate rejects degenerate configurations. Called once at startup;
// the tick path assumes a validated config and performs no checks.
func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("agent config: speed must be positive, got %g", c.Speed)
	}
	if c.Noise < 0 {
		return fmt.Errorf("agent config: noise must be non-negative, got %g", c.Noise)
	}
	return nil
}

// Agent is one controllable unit. It owns its random source, seeded
// exactly once at construction, so reproducibility and concurrency are
// explicit: distinct agents may tick on distinct goroutines, but a
// single agent must only be ticked by one caller at a time.
type Agent struct {
	params *neural.Parameters
	cfg    Config
	rng    *rand.Rand
}

// New creates an agent around shared read-only parameters. The seed
// comes from the caller (hardware entropy on device, a master seed in
// simulation); the agent only needs a value, not its provenance.
func New(params *neural.Parameters, cfg Config, seed int64) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Agent{
		params: params,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Step runs one control tick: sensory input in, bounded motor delta
// out. The returned magnitude never exceeds the configured speed.
// input must carry at least neural.InputSize readings.
func (a *Agent) Step(input []float32) (dx, dy float32) {
	return a.params.Decide(input, a.cfg.Noise, a.cfg.Speed, a.rng)
}

// Config returns the agent's immutable runtime configuration.
func (a *Agent) Config() Config {
	return a.cfg
}
