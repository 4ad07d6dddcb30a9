// Package comms models proximity communication between swarm robots:
// signal-strength attenuation and neighbor counting over raw distance
// samples from the ranging stack.
package comms

// SignalStrength returns the received-signal proxy for a neighbor at
// the given distance: 1 when coincident, falling linearly to 0 at
// maxDistance, and 0 beyond it. The result is always in [0, 1] and
// non-increasing in distance.
func SignalStrength(distance, maxDistance float32) float32 {
	if distance > maxDistance {
		return 0
	}
	return 1 - distance/maxDistance
}

// CountNeighbors counts distance samples strictly below threshold.
// A sample exactly at the threshold is out of range: the radio link
// budget treats the threshold distance itself as unreachable, and the
// strict inequality is relied on by the mesh layer.
func CountNeighbors(distances []float32, threshold float32) int {
	count := 0
	for _, d := range distances {
		if d < threshold {
			count++
		}
	}
	return count
}

// NeighborReport summarizes one communication cycle for one robot.
type NeighborReport struct {
	Count        int       // samples strictly inside maxDistance
	Strengths    []float32 // per-neighbor signal strength, in [0,1]
	MeanStrength float32   // mean over in-range neighbors, 0 if none
}

// Report derives a neighbor count and per-neighbor signal strengths
// from one tick's distance samples. Out-of-range samples contribute
// nothing. The report is recomputed every cycle; nothing is retained.
func Report(distances []float32, maxDistance float32) NeighborReport {
	r := NeighborReport{}

	var total float32
	for _, d := range distances {
		if d < maxDistance {
			s := SignalStrength(d, maxDistance)
			r.Strengths = append(r.Strengths, s)
			total += s
			r.Count++
		}
	}
	if r.Count > 0 {
		r.MeanStrength = total / float32(r.Count)
	}

	return r
}
