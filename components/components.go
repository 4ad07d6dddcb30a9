// Package components defines ECS components for the swarm simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Robot holds per-robot controller state observable by other systems.
// The brain itself lives outside the ECS (see sim), keyed by ID.
type Robot struct {
	ID uint32

	// Mesh state, refreshed every communication cycle.
	Neighbors int32   // in-range neighbor count
	MeanRSSI  float32 // mean signal strength over in-range neighbors

	// Last motor command, for telemetry and rendering.
	CmdX, CmdY float32

	// Explore-task fitness: net displacement from spawn plus a
	// collaboration bonus per neighbor.
	StartX, StartY float32
	Fitness        float32
}

// Target marks a stationary goal object robots steer toward.
type Target struct{}
