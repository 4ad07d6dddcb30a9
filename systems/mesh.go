package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/comms"
	"github.com/pthm-cable/swarm/components"
)

// MeshSystem refreshes each robot's view of the proximity mesh: the
// in-range neighbor count and the mean signal strength over those
// neighbors. Membership uses the strict range threshold; strength
// attenuates linearly out to the comms maximum.
type MeshSystem struct {
	filter ecs.Filter2[components.Position, components.Robot]
	posMap *ecs.Map1[components.Position]

	maxDistance    float32
	rangeThreshold float32

	// Scratch reused across ticks. The tick loop is single-threaded,
	// so exclusive access holds without locking.
	neighbors []Neighbor
	distances []float32
	members   []float32
}

// NewMeshSystem creates a mesh system for the given comms ranges.
func NewMeshSystem(w *ecs.World, maxDistance, rangeThreshold float32) *MeshSystem {
	return &MeshSystem{
		filter:         *ecs.NewFilter2[components.Position, components.Robot](w),
		posMap:         ecs.NewMap1[components.Position](w),
		maxDistance:    maxDistance,
		rangeThreshold: rangeThreshold,
	}
}

// Update recomputes mesh state for every robot from the spatial grid.
func (s *MeshSystem) Update(grid *SpatialGrid) {
	query := s.filter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, robot := query.Get()

		s.neighbors = grid.QueryRadiusInto(s.neighbors[:0], pos.X, pos.Y, s.maxDistance, entity, s.posMap)

		s.distances = s.distances[:0]
		for _, n := range s.neighbors {
			s.distances = append(s.distances, n.Dist)
		}

		robot.Neighbors = int32(comms.CountNeighbors(s.distances, s.rangeThreshold))

		// Strength is averaged over mesh members only, attenuated
		// against the full comms range as the radio does.
		s.members = s.members[:0]
		for _, d := range s.distances {
			if d < s.rangeThreshold {
				s.members = append(s.members, d)
			}
		}
		robot.MeanRSSI = comms.Report(s.members, s.maxDistance).MeanStrength
	}
}
