package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowBoundary(t *testing.T) {
	c := NewCollector(1.0, 0.25) // 4 ticks per window

	if c.ShouldEmit(3) {
		t.Error("ShouldEmit(3) = true before window closes")
	}
	if !c.ShouldEmit(4) {
		t.Error("ShouldEmit(4) = false at window boundary")
	}

	c.Emit(4, Snapshot{})
	if c.ShouldEmit(7) {
		t.Error("ShouldEmit(7) = true right after emit at tick 4")
	}
	if !c.ShouldEmit(8) {
		t.Error("ShouldEmit(8) = false one window after emit")
	}
}

func TestCollectorEmit(t *testing.T) {
	c := NewCollector(1.0, 0.5)

	c.RecordCommand(3, 4) // magnitude 5
	c.RecordCommand(0, 1) // magnitude 1

	stats := c.Emit(10, Snapshot{
		Neighbors:  []float64{1, 2, 3},
		RSSI:       []float64{0.5, 0.7},
		Fitness:    []float64{2, 8, 5},
		TargetDist: []float64{4, 6},
	})

	if stats.WindowEndTick != 10 {
		t.Errorf("WindowEndTick = %d, want 10", stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-5.0) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want 5", stats.SimTimeSec)
	}
	if stats.Robots != 3 {
		t.Errorf("Robots = %d, want 3", stats.Robots)
	}
	if math.Abs(stats.NeighborsMean-2.0) > 1e-9 {
		t.Errorf("NeighborsMean = %v, want 2", stats.NeighborsMean)
	}
	if math.Abs(stats.RSSIMean-0.6) > 1e-9 {
		t.Errorf("RSSIMean = %v, want 0.6", stats.RSSIMean)
	}
	if math.Abs(stats.CmdMagMean-3.0) > 1e-9 {
		t.Errorf("CmdMagMean = %v, want 3", stats.CmdMagMean)
	}
	if stats.FitnessBest != 8 {
		t.Errorf("FitnessBest = %v, want 8", stats.FitnessBest)
	}
	if math.Abs(stats.TargetDistMean-5.0) > 1e-9 {
		t.Errorf("TargetDistMean = %v, want 5", stats.TargetDistMean)
	}

	// Command accumulator resets with the window.
	next := c.Emit(20, Snapshot{})
	if next.CmdMagMean != 0 {
		t.Errorf("CmdMagMean after reset = %v, want 0", next.CmdMagMean)
	}
}
