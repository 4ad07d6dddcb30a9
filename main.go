package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/render"
	"github.com/pthm-cable/swarm/sim"
	"github.com/pthm-cable/swarm/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	weightsPath := flag.String("weights", "", "Controller weights JSON (empty = baked-in table)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := sim.Options{
		Seed:        rngSeed,
		WeightsPath: *weightsPath,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
	}

	s, err := sim.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	slog.Info("starting simulation",
		"seed", rngSeed,
		"robots", cfg.Population.Robots,
		"headless", *headless,
		"max_ticks", *maxTicks,
	)

	if *headless {
		runHeadless(s, *maxTicks, *stepsPerUpdate)
		return
	}
	runGraphics(s, cfg, *maxTicks)
}

// runHeadless steps the simulation as fast as possible.
func runHeadless(s *sim.Sim, maxTicks, stepsPerUpdate int) {
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}
	for {
		for i := 0; i < stepsPerUpdate; i++ {
			s.Step()
		}
		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			return
		}
	}
}

// runGraphics runs the interactive raylib loop.
func runGraphics(s *sim.Sim, cfg *config.Config, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Swarm Control")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	worldW, worldH := s.Arena()
	renderer := render.New(cfg.Screen.Width, cfg.Screen.Height,
		worldW, worldH,
		float32(cfg.Comms.MaxDistance), float32(cfg.Comms.RangeThreshold))

	panel := ui.NewControlsPanel(float32(cfg.Screen.Width)-230, 10, 220)
	uiState := ui.State{StepsPerFrame: 1, ShowLinks: true}

	var robots []sim.RobotState
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			uiState.Paused = !uiState.Paused
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			panel.Toggle()
		}

		s.SetPaused(uiState.Paused)
		for i := 0; i < int(uiState.StepsPerFrame); i++ {
			s.Step()
		}

		robots = s.RobotStates(robots[:0])
		renderer.ShowLinks = uiState.ShowLinks

		rl.BeginDrawing()
		renderer.Draw(robots, s.Targets(), worldW, worldH)
		renderer.DrawHUD(s.Tick(), robots, uiState.Paused)
		uiState = panel.Draw(uiState)
		rl.EndDrawing()

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			return
		}
	}
}
