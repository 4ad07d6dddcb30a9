package neural

import (
	"math"
	"math/rand"
)

// noiseDecayRate scales the exponent in the exploration-noise schedule.
// Note the exponent input is the configured noise magnitude itself, not
// elapsed time: the effective scale is constant for a given config.
// That matches the deployed controller and stays as-is.
const noiseDecayRate = 0.01

// Decide maps one sensory vector to a bounded motor delta.
//
// The raw network output is scaled by speed, perturbed per axis by a
// uniform draw in [-0.5, 0.5) times the exploration-noise scale, then
// norm-clamped: if the 2D magnitude exceeds speed, both components are
// rescaled so the magnitude equals speed exactly. Components are never
// clamped independently - that would distort heading.
//
// With noise == 0 no entropy is drawn and the result is a pure function
// of the input. rng is only touched when noise > 0, and access to it is
// the caller's to serialize.
func (p *Parameters) Decide(input []float32, noise, speed float32, rng *rand.Rand) (dx, dy float32) {
	out := p.Forward(input)

	dx = out[0] * speed
	dy = out[1] * speed

	if noise > 0 {
		noiseScale := noise * float32(math.Exp(float64(-noise*noiseDecayRate)))
		dx += (rng.Float32() - 0.5) * noiseScale
		dy += (rng.Float32() - 0.5) * noiseScale
	}

	mag := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if mag > speed {
		dx = dx / mag * speed
		dy = dy / mag * speed
	}

	return dx, dy
}
