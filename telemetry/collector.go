package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Snapshot holds per-robot values sampled at a window boundary.
// Slices may be reordered by the collector.
type Snapshot struct {
	Neighbors  []float64
	RSSI       []float64
	Fitness    []float64
	TargetDist []float64
}

// Collector accumulates motor activity within a window and turns
// end-of-window snapshots into WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32
	dt              float64

	cmdMags []float64
}

// NewCollector creates a stats collector.
// windowSec: window length in simulation seconds; dt: seconds per tick.
func NewCollector(windowSec float64, dt float64) *Collector {
	ticks := int32(windowSec / dt)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowTicks: ticks, dt: dt}
}

// RecordCommand records one robot's motor-delta magnitude for a tick.
func (c *Collector) RecordCommand(dx, dy float32) {
	c.cmdMags = append(c.cmdMags, math.Hypot(float64(dx), float64(dy)))
}

// ShouldEmit reports whether tick closes the current window.
func (c *Collector) ShouldEmit(tick int32) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// Emit closes the window at tick and produces its statistics.
func (c *Collector) Emit(tick int32, snap Snapshot) WindowStats {
	neigh := ComputeDistribution(snap.Neighbors)

	s := WindowStats{
		WindowEndTick: tick,
		SimTimeSec:    float64(tick) * c.dt,
		Robots:        len(snap.Neighbors),

		NeighborsMean: neigh.Mean,
		NeighborsP10:  neigh.P10,
		NeighborsP50:  neigh.P50,
		NeighborsP90:  neigh.P90,
	}

	if len(snap.RSSI) > 0 {
		s.RSSIMean = stat.Mean(snap.RSSI, nil)
	}
	if len(c.cmdMags) > 0 {
		s.CmdMagMean, s.CmdMagStd = stat.MeanStdDev(c.cmdMags, nil)
		if math.IsNaN(s.CmdMagStd) { // single sample
			s.CmdMagStd = 0
		}
	}
	if len(snap.Fitness) > 0 {
		s.FitnessMean = stat.Mean(snap.Fitness, nil)
		best := snap.Fitness[0]
		for _, f := range snap.Fitness[1:] {
			if f > best {
				best = f
			}
		}
		s.FitnessBest = best
	}
	if len(snap.TargetDist) > 0 {
		s.TargetDistMean = stat.Mean(snap.TargetDist, nil)
	}

	c.windowStartTick = tick
	c.cmdMags = c.cmdMags[:0]

	return s
}
