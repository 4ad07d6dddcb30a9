package comms

import "testing"

func TestSignalStrength(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
		max      float32
		want     float32
	}{
		{"coincident", 0, 10, 1.0},
		{"halfway", 5, 10, 0.5},
		{"at max", 10, 10, 0.0},
		{"beyond max", 15, 10, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignalStrength(tt.distance, tt.max)
			if got != tt.want {
				t.Errorf("SignalStrength(%g, %g) = %g, want %g", tt.distance, tt.max, got, tt.want)
			}
		})
	}
}

func TestSignalStrengthMonotonic(t *testing.T) {
	prev := float32(2)
	for d := float32(0); d <= 20; d += 0.25 {
		s := SignalStrength(d, 10)
		if s < 0 || s > 1 {
			t.Fatalf("SignalStrength(%g, 10) = %g out of [0,1]", d, s)
		}
		if s > prev {
			t.Fatalf("SignalStrength not non-increasing at d=%g: %g > %g", d, s, prev)
		}
		prev = s
	}
}

func TestCountNeighbors(t *testing.T) {
	tests := []struct {
		name      string
		distances []float32
		threshold float32
		want      int
	}{
		{"strict less than", []float32{1, 2, 3, 4, 5}, 3, 2},
		{"boundary excluded", []float32{3}, 3, 0},
		{"empty", nil, 3, 0},
		{"all in range", []float32{0, 0.5, 1}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountNeighbors(tt.distances, tt.threshold)
			if got != tt.want {
				t.Errorf("CountNeighbors(%v, %g) = %d, want %d", tt.distances, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	r := Report([]float32{0, 5, 10, 15}, 10)

	// 10 and 15 are out of range (strict bound), 0 and 5 are in.
	if r.Count != 2 {
		t.Errorf("Count = %d, want 2", r.Count)
	}
	if len(r.Strengths) != 2 {
		t.Fatalf("len(Strengths) = %d, want 2", len(r.Strengths))
	}
	if r.Strengths[0] != 1.0 || r.Strengths[1] != 0.5 {
		t.Errorf("Strengths = %v, want [1 0.5]", r.Strengths)
	}
	if r.MeanStrength != 0.75 {
		t.Errorf("MeanStrength = %g, want 0.75", r.MeanStrength)
	}
}

func TestReportEmpty(t *testing.T) {
	r := Report(nil, 10)
	if r.Count != 0 || r.MeanStrength != 0 || len(r.Strengths) != 0 {
		t.Errorf("empty report = %+v, want zero value", r)
	}
}

func TestReportIdempotent(t *testing.T) {
	distances := []float32{1, 2, 3}
	a := Report(distances, 10)
	b := Report(distances, 10)

	if a.Count != b.Count || a.MeanStrength != b.MeanStrength {
		t.Errorf("repeated Report diverged: %+v vs %+v", a, b)
	}
	// Input samples must be untouched.
	if distances[0] != 1 || distances[1] != 2 || distances[2] != 3 {
		t.Errorf("Report mutated its input: %v", distances)
	}
}
