// Package telemetry aggregates per-tick swarm metrics into windowed
// statistics and writes them to CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated swarm statistics for one time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	Robots int `csv:"robots"`

	// Mesh connectivity, sampled at window end
	NeighborsMean float64 `csv:"neighbors_mean"`
	NeighborsP10  float64 `csv:"neighbors_p10"`
	NeighborsP50  float64 `csv:"neighbors_p50"`
	NeighborsP90  float64 `csv:"neighbors_p90"`
	RSSIMean      float64 `csv:"rssi_mean"`

	// Motor activity, accumulated over the window
	CmdMagMean float64 `csv:"cmd_mag_mean"`
	CmdMagStd  float64 `csv:"cmd_mag_std"`

	// Explore-task fitness, sampled at window end
	FitnessMean float64 `csv:"fitness_mean"`
	FitnessBest float64 `csv:"fitness_best"`

	// Mean distance to nearest target, sampled at window end
	TargetDistMean float64 `csv:"target_dist_mean"`
}

// Distribution summarizes one sampled metric.
type Distribution struct {
	Mean, P10, P50, P90 float64
}

// ComputeDistribution calculates mean and percentiles of values.
// Sorts in place. Returns zeros for an empty slice.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sort.Float64s(values)
	return Distribution{
		Mean: stat.Mean(values, nil),
		P10:  stat.Quantile(0.1, stat.Empirical, values, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, values, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, values, nil),
	}
}

// LogStats emits the window via slog.
func (s WindowStats) LogStats() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"robots", s.Robots,
		"neighbors_mean", s.NeighborsMean,
		"rssi_mean", s.RSSIMean,
		"cmd_mag_mean", s.CmdMagMean,
		"fitness_mean", s.FitnessMean,
		"fitness_best", s.FitnessBest,
		"target_dist_mean", s.TargetDistMean,
	)
}
