package systems

import (
	"github.com/pthm-cable/swarm/neural"
)

// sensorNorm scales positions and counts into the range the network
// was evolved against (arena coordinates on the order of ten units).
const sensorNorm = 10.0

// ComputeSensors assembles the sensory vector for one robot:
// own position, nearest-target position, neighbor count, mean RSSI.
// Layout and normalization match the evolved controller's inputs.
func ComputeSensors(dst []float32, selfX, selfY, targetX, targetY float32, neighbors int32, meanRSSI float32) []float32 {
	if cap(dst) < neural.InputSize {
		dst = make([]float32, neural.InputSize)
	}
	dst = dst[:neural.InputSize]

	dst[0] = selfX / sensorNorm
	dst[1] = selfY / sensorNorm
	dst[2] = targetX / sensorNorm
	dst[3] = targetY / sensorNorm
	dst[4] = float32(neighbors) / sensorNorm
	dst[5] = meanRSSI

	return dst
}

// NearestTarget returns the position of the closest target, or (0,0)
// when there are none - the controller then steers relative to origin,
// exactly as the original agent did without an assigned target.
func NearestTarget(x, y float32, targets [][2]float32) (tx, ty float32) {
	best := float32(-1)
	for _, t := range targets {
		dx := t[0] - x
		dy := t[1] - y
		d := dx*dx + dy*dy
		if best < 0 || d < best {
			best = d
			tx, ty = t[0], t[1]
		}
	}
	return tx, ty
}
