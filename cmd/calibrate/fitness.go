package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/sim"
)

// ConnectivityEvaluator runs headless simulations and scores the swarm's
// mesh connectivity under a candidate (noise, speed) pair.
type ConnectivityEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	mu           sync.Mutex
	lastCoverage float64 // coverage from most recent Evaluate call
}

// NewConnectivityEvaluator creates a new evaluator.
func NewConnectivityEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *ConnectivityEvaluator {
	return &ConnectivityEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastCoverage returns the coverage score from the most recent evaluation.
func (ce *ConnectivityEvaluator) LastCoverage() float64 {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.lastCoverage
}

const (
	// warmupFrac skips the settling phase before sampling connectivity.
	warmupFrac = 0.2

	// coverageWeight blends arena coverage into the score so the
	// optimizer cannot win by freezing the swarm into one clump.
	coverageWeight = 0.25
)

// runResult holds the results from a single simulation run.
type runResult struct {
	meanNeighbors float64 // mean in-range neighbor count over sampled ticks
	coverage      float64 // mean displacement from spawn, normalized by arena diagonal
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated blended score: connected, spread-out swarms
// score low.
func (ce *ConnectivityEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(ce.seeds))
	var wg sync.WaitGroup

	for i, seed := range ce.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = ce.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalNeighbors, totalCoverage float64
	for _, r := range results {
		totalNeighbors += r.meanNeighbors
		totalCoverage += r.coverage
	}

	n := float64(len(ce.seeds))
	meanNeighbors := totalNeighbors / n
	coverage := totalCoverage / n

	ce.mu.Lock()
	ce.lastCoverage = coverage
	ce.mu.Unlock()

	return -(meanNeighbors + coverageWeight*coverage)
}

// runSimulation executes a single headless simulation run and samples
// connectivity after warmup.
func (ce *ConnectivityEvaluator) runSimulation(x []float64, seed int64) runResult {
	cfg := ce.copyConfig()
	ce.params.ApplyToConfig(cfg, x)

	s, err := sim.New(cfg, sim.Options{Seed: seed})
	if err != nil {
		// Clamped parameters always validate; a failure here means a
		// broken base config, which Evaluate cannot recover from.
		panic(err)
	}
	defer s.Close()

	warmupTicks := int32(warmupFrac * float64(ce.maxTicks))
	arenaW, arenaH := s.Arena()
	diag := math.Sqrt(float64(arenaW*arenaW + arenaH*arenaH))

	var neighborSum float64
	var samples int
	for s.Tick() < ce.maxTicks {
		s.Step()
		if s.Tick() < warmupTicks {
			continue
		}
		neighborSum += s.MeanNeighbors()
		samples++
	}

	result := runResult{}
	if samples > 0 {
		result.meanNeighbors = neighborSum / float64(samples)
	}

	// Coverage from final displacement, averaged over the swarm.
	robots := s.RobotStates(nil)
	if len(robots) > 0 && diag > 0 {
		var dispSum float64
		for _, r := range robots {
			// Fitness is displacement plus the collaboration bonus;
			// subtract the bonus to recover raw displacement.
			disp := float64(r.Fitness) - 0.5*float64(r.Neighbors)
			if disp < 0 {
				disp = 0
			}
			dispSum += disp
		}
		result.coverage = dispSum / float64(len(robots)) / diag
	}

	return result
}

// copyConfig creates a copy of the base config safe to mutate per run.
func (ce *ConnectivityEvaluator) copyConfig() *config.Config {
	cfg, _ := config.Load("")

	cfg.Screen = ce.baseConfig.Screen
	cfg.World = ce.baseConfig.World
	cfg.Agent = ce.baseConfig.Agent
	cfg.Comms = ce.baseConfig.Comms
	cfg.Population = ce.baseConfig.Population
	cfg.Physics = ce.baseConfig.Physics
	cfg.Telemetry = ce.baseConfig.Telemetry

	return cfg
}
