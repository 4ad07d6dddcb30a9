package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseSpatialGrid = "spatial_grid"
	PhaseMesh        = "mesh"
	PhaseControl     = "control"
	PhasePhysics     = "physics"
	PhaseTelemetry   = "telemetry"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks tick timings over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a performance collector averaging over
// windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated timing statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MaxTickDuration time.Duration
	PhaseAvg        map[string]time.Duration
	TicksPerSecond  float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{PhaseAvg: make(map[string]time.Duration)}
	}

	var totalTick, maxTick time.Duration
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		totalTick += s.TickDuration
		if s.TickDuration > maxTick {
			maxTick = s.TickDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avgTick := totalTick / time.Duration(p.sampleCount)

	phaseAvg := make(map[string]time.Duration)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
	}

	var ticksPerSec float64
	if avgTick > 0 {
		ticksPerSec = float64(time.Second) / float64(avgTick)
	}

	return PerfStats{
		AvgTickDuration: avgTick,
		MaxTickDuration: maxTick,
		PhaseAvg:        phaseAvg,
		TicksPerSecond:  ticksPerSec,
	}
}

// LogStats logs performance statistics via slog.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	for phase, dur := range s.PhaseAvg {
		attrs = append(attrs, "phase_"+phase+"_us", dur.Microseconds())
	}
	slog.Info("perf stats", attrs...)
}

// PerfRecord is the CSV row shape for perf.csv.
type PerfRecord struct {
	WindowEnd      int32   `csv:"window_end"`
	AvgTickUs      int64   `csv:"avg_tick_us"`
	MaxTickUs      int64   `csv:"max_tick_us"`
	TicksPerSecond float64 `csv:"ticks_per_sec"`
	SpatialGridUs  int64   `csv:"spatial_grid_us"`
	MeshUs         int64   `csv:"mesh_us"`
	ControlUs      int64   `csv:"control_us"`
	PhysicsUs      int64   `csv:"physics_us"`
	TelemetryUs    int64   `csv:"telemetry_us"`
}

// ToCSV converts aggregated stats into a CSV row.
func (s PerfStats) ToCSV(windowEnd int32) PerfRecord {
	return PerfRecord{
		WindowEnd:      windowEnd,
		AvgTickUs:      s.AvgTickDuration.Microseconds(),
		MaxTickUs:      s.MaxTickDuration.Microseconds(),
		TicksPerSecond: s.TicksPerSecond,
		SpatialGridUs:  s.PhaseAvg[PhaseSpatialGrid].Microseconds(),
		MeshUs:         s.PhaseAvg[PhaseMesh].Microseconds(),
		ControlUs:      s.PhaseAvg[PhaseControl].Microseconds(),
		PhysicsUs:      s.PhaseAvg[PhasePhysics].Microseconds(),
		TelemetryUs:    s.PhaseAvg[PhaseTelemetry].Microseconds(),
	}
}
