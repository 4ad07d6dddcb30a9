package sim

import "math"

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sqrt64(x float64) float64 {
	return math.Sqrt(x)
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
