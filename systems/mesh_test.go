package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/components"
)

// meshFixture spawns robots at fixed positions and runs one mesh update.
func meshFixture(t *testing.T, positions [][2]float32, maxDistance, rangeThreshold float32) ([]ecs.Entity, *ecs.Map2[components.Position, components.Robot]) {
	t.Helper()

	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Robot](world)

	entities := make([]ecs.Entity, len(positions))
	for i, p := range positions {
		pos := components.Position{X: p[0], Y: p[1]}
		robot := components.Robot{ID: uint32(i)}
		entities[i] = mapper.NewEntity(&pos, &robot)
	}

	grid := NewSpatialGrid(100, 100, 5)
	for i, p := range positions {
		grid.Insert(entities[i], p[0], p[1])
	}

	mesh := NewMeshSystem(world, maxDistance, rangeThreshold)
	mesh.Update(grid)

	return entities, mapper
}

func TestMeshNeighborCounts(t *testing.T) {
	// Three robots in a line 4 apart, threshold 5: the middle one sees
	// both ends, the ends see only the middle (8 is not strictly < 5).
	entities, mapper := meshFixture(t, [][2]float32{
		{10, 10},
		{14, 10},
		{18, 10},
	}, 10, 5)

	wantCounts := []int32{1, 2, 1}
	for i, e := range entities {
		_, robot := mapper.Get(e)
		if robot.Neighbors != wantCounts[i] {
			t.Errorf("robot %d sees %d neighbors, want %d", i, robot.Neighbors, wantCounts[i])
		}
	}
}

func TestMeshBoundaryExcluded(t *testing.T) {
	// Distance exactly at the threshold does not count as a neighbor.
	entities, mapper := meshFixture(t, [][2]float32{
		{10, 10},
		{15, 10},
	}, 10, 5)

	for i, e := range entities {
		_, robot := mapper.Get(e)
		if robot.Neighbors != 0 {
			t.Errorf("robot %d sees %d neighbors at exact threshold distance, want 0", i, robot.Neighbors)
		}
		if robot.MeanRSSI != 0 {
			t.Errorf("robot %d mean RSSI %g with no mesh members, want 0", i, robot.MeanRSSI)
		}
	}
}

func TestMeshMeanRSSI(t *testing.T) {
	// One robot with two mesh members at distances 2 and 4 with a comms
	// maximum of 10: strengths 0.8 and 0.6, mean 0.7.
	entities, mapper := meshFixture(t, [][2]float32{
		{10, 10},
		{12, 10},
		{10, 14},
	}, 10, 5)

	_, robot := mapper.Get(entities[0])
	if robot.Neighbors != 2 {
		t.Fatalf("robot 0 sees %d neighbors, want 2", robot.Neighbors)
	}
	if math.Abs(float64(robot.MeanRSSI)-0.7) > 1e-6 {
		t.Errorf("robot 0 mean RSSI %g, want 0.7", robot.MeanRSSI)
	}
}

func TestMeshIsolatedRobot(t *testing.T) {
	entities, mapper := meshFixture(t, [][2]float32{
		{10, 10},
		{90, 90},
	}, 10, 5)

	for i, e := range entities {
		_, robot := mapper.Get(e)
		if robot.Neighbors != 0 {
			t.Errorf("isolated robot %d sees %d neighbors, want 0", i, robot.Neighbors)
		}
		if robot.MeanRSSI != 0 {
			t.Errorf("isolated robot %d mean RSSI %g, want 0", i, robot.MeanRSSI)
		}
	}
}
