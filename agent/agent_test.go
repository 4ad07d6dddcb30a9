package agent

import (
	"math"
	"testing"

	"github.com/pthm-cable/swarm/neural"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Noise: 0.1, Speed: 5}, false},
		{"zero noise ok", Config{Noise: 0, Speed: 5}, false},
		{"zero speed", Config{Noise: 0.1, Speed: 0}, true},
		{"negative speed", Config{Noise: 0.1, Speed: -1}, true},
		{"negative noise", Config{Noise: -0.1, Speed: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRejectsDegenerateConfig(t *testing.T) {
	_, err := New(neural.DefaultParameters(), Config{Noise: 0.1, Speed: 0}, 42)
	if err == nil {
		t.Fatal("New accepted zero speed")
	}
}

func TestStepBounded(t *testing.T) {
	a, err := New(neural.DefaultParameters(), Config{Noise: 0.5, Speed: 5}, 42)
	if err != nil {
		t.Fatal(err)
	}

	input := make([]float32, neural.InputSize)
	for tick := 0; tick < 1000; tick++ {
		for i := range input {
			input[i] = float32(tick%7) - 3
		}
		dx, dy := a.Step(input)
		mag := math.Sqrt(float64(dx*dx + dy*dy))
		if mag > 5+1e-5 {
			t.Fatalf("tick %d: magnitude %g exceeds speed", tick, mag)
		}
	}
}

func TestStepReproducible(t *testing.T) {
	input := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	run := func() [][2]float32 {
		a, err := New(neural.DefaultParameters(), Config{Noise: 0.1, Speed: 5}, 1234)
		if err != nil {
			t.Fatal(err)
		}
		var out [][2]float32
		for tick := 0; tick < 50; tick++ {
			dx, dy := a.Step(input)
			out = append(out, [2]float32{dx, dy})
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged between identically seeded runs: %v vs %v", i, a[i], b[i])
		}
	}
}
