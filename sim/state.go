package sim

// RobotState is a read-only view of one robot for rendering and tools.
type RobotState struct {
	X, Y       float32
	CmdX, CmdY float32
	Neighbors  int32
	MeanRSSI   float32
	Fitness    float32
}

// RobotStates appends the current state of every robot to dst and
// returns it. Reuse dst across frames to avoid allocations.
func (s *Sim) RobotStates(dst []RobotState) []RobotState {
	query := s.robotFilter.Query()
	for query.Next() {
		pos, _, robot := query.Get()
		dst = append(dst, RobotState{
			X: pos.X, Y: pos.Y,
			CmdX: robot.CmdX, CmdY: robot.CmdY,
			Neighbors: robot.Neighbors,
			MeanRSSI:  robot.MeanRSSI,
			Fitness:   robot.Fitness,
		})
	}
	return dst
}

// Targets returns the target positions. The slice is owned by the sim
// and must not be mutated.
func (s *Sim) Targets() [][2]float32 {
	return s.targets
}

// Arena returns the world dimensions.
func (s *Sim) Arena() (w, h float32) {
	return s.worldW, s.worldH
}

// MeanNeighbors returns the current mean in-range neighbor count, the
// connectivity measure used by the calibration tool.
func (s *Sim) MeanNeighbors() float64 {
	var total int64
	var count int
	query := s.robotFilter.Query()
	for query.Next() {
		_, _, robot := query.Get()
		total += int64(robot.Neighbors)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
