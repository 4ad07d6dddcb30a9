// Package sim runs the swarm simulation: a population of robots, each
// driven by its own control network, exchanging proximity signals in a
// bounded arena with a few stationary targets.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/agent"
	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/neural"
	"github.com/pthm-cable/swarm/systems"
	"github.com/pthm-cable/swarm/telemetry"
)

// collaborationBonus is the fitness credit per in-range neighbor.
const collaborationBonus = 0.5

// Options configures a simulation run.
type Options struct {
	Seed        int64
	WeightsPath string // empty = baked-in default parameters
	LogStats    bool
	OutputDir   string // empty = CSV output disabled
}

// Sim holds the complete simulation state.
type Sim struct {
	world *ecs.World
	rng   *rand.Rand

	robotMapper  *ecs.Map3[components.Position, components.Velocity, components.Robot]
	robotFilter  ecs.Filter3[components.Position, components.Velocity, components.Robot]
	targetMapper *ecs.Map2[components.Position, components.Target]

	grid *systems.SpatialGrid
	mesh *systems.MeshSystem

	// Brains keyed by robot ID; each owns its rng and is ticked only
	// from the single simulation goroutine.
	agents map[uint32]*agent.Agent

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	targets [][2]float32
	input   []float32 // sensory scratch, one tick at a time

	worldW, worldH float32
	dt             float32
	tick           int32
	paused         bool
}

// New creates a simulation from the given config and options.
// The options seed fans out to one private seed per robot, so a run is
// reproducible from its master seed alone.
func New(cfg *config.Config, opts Options) (*Sim, error) {
	params := neural.DefaultParameters()
	if opts.WeightsPath != "" {
		var err error
		params, err = neural.LoadParameters(opts.WeightsPath)
		if err != nil {
			return nil, fmt.Errorf("loading controller weights: %w", err)
		}
	}

	agentCfg := agent.Config{
		Noise: float32(cfg.Agent.Noise),
		Speed: float32(cfg.Agent.Speed),
	}
	if err := agentCfg.Validate(); err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()

	s := &Sim{
		world:        world,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		robotMapper:  ecs.NewMap3[components.Position, components.Velocity, components.Robot](world),
		robotFilter:  *ecs.NewFilter3[components.Position, components.Velocity, components.Robot](world),
		targetMapper: ecs.NewMap2[components.Position, components.Target](world),
		agents:       make(map[uint32]*agent.Agent),
		collector:    telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.DT),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:       output,
		logStats:     opts.LogStats,
		input:        make([]float32, neural.InputSize),
		worldW:       float32(cfg.World.Width),
		worldH:       float32(cfg.World.Height),
		dt:           float32(cfg.Physics.DT),
	}

	s.grid = systems.NewSpatialGrid(s.worldW, s.worldH, float32(cfg.Physics.GridCellSize))
	s.mesh = systems.NewMeshSystem(world, float32(cfg.Comms.MaxDistance), float32(cfg.Comms.RangeThreshold))

	for i := 0; i < cfg.Population.Robots; i++ {
		if err := s.spawnRobot(uint32(i), params, agentCfg); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.Population.Targets; i++ {
		s.spawnTarget()
	}

	return s, nil
}

// spawnRobot creates one robot entity and its controller.
func (s *Sim) spawnRobot(id uint32, params *neural.Parameters, cfg agent.Config) error {
	x := s.rng.Float32() * s.worldW
	y := s.rng.Float32() * s.worldH

	a, err := agent.New(params, cfg, s.rng.Int63())
	if err != nil {
		return err
	}
	s.agents[id] = a

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	robot := components.Robot{ID: id, StartX: x, StartY: y}
	s.robotMapper.NewEntity(&pos, &vel, &robot)

	return nil
}

// spawnTarget creates one stationary target.
func (s *Sim) spawnTarget() {
	pos := components.Position{
		X: s.rng.Float32() * s.worldW,
		Y: s.rng.Float32() * s.worldH,
	}
	s.targetMapper.NewEntity(&pos, &components.Target{})
	s.targets = append(s.targets, [2]float32{pos.X, pos.Y})
}

// Step advances the simulation by one tick: spatial index, mesh
// refresh, control, integration, telemetry. No-op while paused.
func (s *Sim) Step() {
	if s.paused {
		return
	}
	s.tick++
	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseSpatialGrid)
	s.updateSpatialGrid()

	s.perf.StartPhase(telemetry.PhaseMesh)
	s.mesh.Update(s.grid)

	s.perf.StartPhase(telemetry.PhaseControl)
	s.updateControl()

	s.perf.StartPhase(telemetry.PhasePhysics)
	s.updatePhysics()

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.updateTelemetry()

	s.perf.EndTick()
}

// updateSpatialGrid rebuilds the spatial index from robot positions.
func (s *Sim) updateSpatialGrid() {
	s.grid.Clear()

	query := s.robotFilter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		s.grid.Insert(query.Entity(), pos.X, pos.Y)
	}
}

// updateControl runs one control tick per robot: assemble the sensory
// vector, step the brain, store the bounded motor delta as velocity.
func (s *Sim) updateControl() {
	query := s.robotFilter.Query()
	for query.Next() {
		pos, vel, robot := query.Get()

		tx, ty := systems.NearestTarget(pos.X, pos.Y, s.targets)
		s.input = systems.ComputeSensors(s.input, pos.X, pos.Y, tx, ty, robot.Neighbors, robot.MeanRSSI)

		dx, dy := s.agents[robot.ID].Step(s.input)
		robot.CmdX, robot.CmdY = dx, dy
		vel.X, vel.Y = dx, dy

		s.collector.RecordCommand(dx, dy)
	}
}

// updatePhysics integrates motor deltas and refreshes fitness.
func (s *Sim) updatePhysics() {
	query := s.robotFilter.Query()
	for query.Next() {
		pos, vel, robot := query.Get()

		pos.X = clamp32(pos.X+vel.X*s.dt, 0, s.worldW)
		pos.Y = clamp32(pos.Y+vel.Y*s.dt, 0, s.worldH)

		// Explore fitness: net displacement from spawn plus a
		// collaboration bonus per in-range neighbor.
		ddx := pos.X - robot.StartX
		ddy := pos.Y - robot.StartY
		robot.Fitness = sqrt32(ddx*ddx+ddy*ddy) + collaborationBonus*float32(robot.Neighbors)
	}
}

// updateTelemetry closes stats windows and writes CSV records.
func (s *Sim) updateTelemetry() {
	if !s.collector.ShouldEmit(s.tick) {
		return
	}

	snap := telemetry.Snapshot{}
	query := s.robotFilter.Query()
	for query.Next() {
		pos, _, robot := query.Get()

		snap.Neighbors = append(snap.Neighbors, float64(robot.Neighbors))
		snap.RSSI = append(snap.RSSI, float64(robot.MeanRSSI))
		snap.Fitness = append(snap.Fitness, float64(robot.Fitness))

		tx, ty := systems.NearestTarget(pos.X, pos.Y, s.targets)
		ddx := float64(tx - pos.X)
		ddy := float64(ty - pos.Y)
		snap.TargetDist = append(snap.TargetDist, sqrt64(ddx*ddx+ddy*ddy))
	}

	stats := s.collector.Emit(s.tick, snap)
	if s.logStats {
		stats.LogStats()
	}
	if err := s.output.WriteTelemetry(stats); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := s.output.WritePerf(s.perf.Stats(), s.tick); err != nil {
		slog.Error("perf write failed", "error", err)
	}
}

// Tick returns the current tick count.
func (s *Sim) Tick() int32 {
	return s.tick
}

// Paused reports whether the simulation is paused.
func (s *Sim) Paused() bool {
	return s.paused
}

// SetPaused pauses or resumes stepping.
func (s *Sim) SetPaused(paused bool) {
	s.paused = paused
}

// Close flushes telemetry output.
func (s *Sim) Close() error {
	return s.output.Close()
}
