// Package neural provides the feedforward control network for swarm robots.
package neural

import (
	"encoding/json"
	"fmt"
	"os"
)

// Network dimensions (compile-time constants for array sizing).
// The weight tables are typed against these, so a table of the wrong
// shape fails to compile rather than failing at runtime.
const (
	InputSize  = 6 // selfX, selfY, targetX, targetY, neighborCount, meanRSSI
	HiddenSize = 32
	OutputSize = 2 // dx, dy motor deltas
)

// Parameters holds the two dense layers of the control network.
// Values are fixed for the lifetime of the process; nothing in this
// package writes to them after construction, so a single Parameters
// value is safe to share across concurrently ticking agents.
type Parameters struct {
	W1 [HiddenSize][InputSize]float32  // input -> hidden weights
	B1 [HiddenSize]float32             // hidden biases
	W2 [OutputSize][HiddenSize]float32 // hidden -> output weights
	B2 [OutputSize]float32             // output biases
}

// DefaultParameters returns a copy of the baked-in evolved weight table.
func DefaultParameters() *Parameters {
	p := defaultParams
	return &p
}

// Weights holds flattened network weights for serialization.
type Weights struct {
	W1 []float32 `json:"w1"` // [HiddenSize * InputSize]
	B1 []float32 `json:"b1"` // [HiddenSize]
	W2 []float32 `json:"w2"` // [OutputSize * HiddenSize]
	B2 []float32 `json:"b2"` // [OutputSize]
}

// MarshalWeights flattens the parameters for JSON serialization.
func (p *Parameters) MarshalWeights() Weights {
	w := Weights{
		W1: make([]float32, HiddenSize*InputSize),
		B1: make([]float32, HiddenSize),
		W2: make([]float32, OutputSize*HiddenSize),
		B2: make([]float32, OutputSize),
	}

	for i := 0; i < HiddenSize; i++ {
		for j := 0; j < InputSize; j++ {
			w.W1[i*InputSize+j] = p.W1[i][j]
		}
	}
	copy(w.B1, p.B1[:])

	for i := 0; i < OutputSize; i++ {
		for j := 0; j < HiddenSize; j++ {
			w.W2[i*HiddenSize+j] = p.W2[i][j]
		}
	}
	copy(w.B2, p.B2[:])

	return w
}

// UnmarshalWeights restores parameters from flattened form.
// Flat slices shorter than the declared dimensions leave the remaining
// entries untouched.
func (p *Parameters) UnmarshalWeights(w Weights) {
	for i := 0; i < HiddenSize; i++ {
		for j := 0; j < InputSize; j++ {
			if i*InputSize+j < len(w.W1) {
				p.W1[i][j] = w.W1[i*InputSize+j]
			}
		}
	}
	for i := 0; i < HiddenSize && i < len(w.B1); i++ {
		p.B1[i] = w.B1[i]
	}

	for i := 0; i < OutputSize; i++ {
		for j := 0; j < HiddenSize; j++ {
			if i*HiddenSize+j < len(w.W2) {
				p.W2[i][j] = w.W2[i*HiddenSize+j]
			}
		}
	}
	for i := 0; i < OutputSize && i < len(w.B2); i++ {
		p.B2[i] = w.B2[i]
	}
}

// LoadParameters reads a flattened weight file produced by MarshalWeights.
func LoadParameters(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weights file: %w", err)
	}

	var w Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing weights file: %w", err)
	}

	p := &Parameters{}
	p.UnmarshalWeights(w)
	return p, nil
}
