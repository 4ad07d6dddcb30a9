package sim

import (
	"math"
	"testing"

	"github.com/pthm-cable/swarm/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	return cfg
}

func TestNewSpawnsPopulation(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg, Options{Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	robots := s.RobotStates(nil)
	if len(robots) != cfg.Population.Robots {
		t.Errorf("spawned %d robots, want %d", len(robots), cfg.Population.Robots)
	}
	if len(s.Targets()) != cfg.Population.Targets {
		t.Errorf("spawned %d targets, want %d", len(s.Targets()), cfg.Population.Targets)
	}
}

func TestStepKeepsRobotsInArena(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg, Options{Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	w, h := s.Arena()
	var robots []RobotState
	for tick := 0; tick < 500; tick++ {
		s.Step()

		robots = s.RobotStates(robots[:0])
		for i, r := range robots {
			if r.X < 0 || r.X > w || r.Y < 0 || r.Y > h {
				t.Fatalf("tick %d: robot %d at (%g,%g) outside %gx%g arena", tick, i, r.X, r.Y, w, h)
			}
		}
	}
}

func TestStepBoundsCommands(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg, Options{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	speed := cfg.Agent.Speed
	var robots []RobotState
	for tick := 0; tick < 200; tick++ {
		s.Step()

		robots = s.RobotStates(robots[:0])
		for i, r := range robots {
			mag := math.Sqrt(float64(r.CmdX*r.CmdX + r.CmdY*r.CmdY))
			if mag > speed+1e-5 {
				t.Fatalf("tick %d: robot %d command magnitude %g exceeds speed %g", tick, i, mag, speed)
			}
		}
	}
}

func TestRunsReproducible(t *testing.T) {
	cfg := testConfig(t)

	run := func() []RobotState {
		s, err := New(cfg, Options{Seed: 99})
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()
		for tick := 0; tick < 100; tick++ {
			s.Step()
		}
		return s.RobotStates(nil)
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("population diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("robot %d diverged between identically seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPauseStopsStepping(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg, Options{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.Step()
	before := s.Tick()

	s.SetPaused(true)
	s.Step()
	if s.Tick() != before {
		t.Error("tick advanced while paused")
	}

	s.SetPaused(false)
	s.Step()
	if s.Tick() != before+1 {
		t.Error("tick did not advance after resume")
	}
}

func TestMeshCountsAreSymmetricallyPlausible(t *testing.T) {
	cfg := testConfig(t)
	// Shrink the arena so everything is inside comms range: each of
	// the N robots must then see all N-1 others.
	cfg.World.Width = 2
	cfg.World.Height = 2

	s, err := New(cfg, Options{Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.Step()

	robots := s.RobotStates(nil)
	for i, r := range robots {
		if int(r.Neighbors) != len(robots)-1 {
			t.Errorf("robot %d sees %d neighbors, want %d", i, r.Neighbors, len(robots)-1)
		}
		if r.MeanRSSI <= 0 || r.MeanRSSI > 1 {
			t.Errorf("robot %d mean RSSI %g out of (0,1]", i, r.MeanRSSI)
		}
	}
}
