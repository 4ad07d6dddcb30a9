package neural

import "math"

// Forward computes one inference pass: input -> hidden -> output, with
// tanh applied element-wise after each layer. Every output component is
// in [-1, 1] for any finite input.
//
// input must have at least InputSize elements; only the first InputSize
// are read. The caller owns that precondition - there is no runtime
// check in the tick path.
//
// The pass is pure: scratch lives on the stack, summation order is
// fixed (bias first, then inputs in index order), and identical input
// always produces identical output for a given Parameters value.
func (p *Parameters) Forward(input []float32) [OutputSize]float32 {
	var hidden [HiddenSize]float32
	for j := 0; j < HiddenSize; j++ {
		sum := p.B1[j]
		for i := 0; i < InputSize; i++ {
			sum += input[i] * p.W1[j][i]
		}
		hidden[j] = tanh32(sum)
	}

	var output [OutputSize]float32
	for k := 0; k < OutputSize; k++ {
		sum := p.B2[k]
		for j := 0; j < HiddenSize; j++ {
			sum += hidden[j] * p.W2[k][j]
		}
		output[k] = tanh32(sum)
	}

	return output
}

// tanh32 is exact tanh on float32. The motor contract depends on the
// strict [-1, 1] bound, which rules out the usual rational
// approximations (they overshoot 1 slightly near the cutoff).
func tanh32(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}
