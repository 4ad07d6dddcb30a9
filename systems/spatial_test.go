package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/components"
)

func TestSpatialGridQueryRadius(t *testing.T) {
	world := ecs.NewWorld()
	posMapper := ecs.NewMap1[components.Position](world)

	spawn := func(x, y float32) ecs.Entity {
		pos := components.Position{X: x, Y: y}
		return posMapper.NewEntity(&pos)
	}

	center := spawn(10, 10)
	near := spawn(12, 10)   // dist 2
	edge := spawn(10, 15)   // dist 5, exactly on the radius
	far := spawn(10, 16)    // dist 6, outside
	corner := spawn(19, 19) // well outside

	grid := NewSpatialGrid(20, 20, 5)
	for _, e := range []ecs.Entity{center, near, edge, far, corner} {
		pos := posMapper.Get(e)
		grid.Insert(e, pos.X, pos.Y)
	}

	found := grid.QueryRadiusInto(nil, 10, 10, 5, center, posMapper)

	got := map[ecs.Entity]Neighbor{}
	for _, n := range found {
		got[n.E] = n
	}

	if _, ok := got[center]; ok {
		t.Error("query returned the excluded entity")
	}
	if _, ok := got[far]; ok {
		t.Error("query returned an entity outside the radius")
	}
	if _, ok := got[corner]; ok {
		t.Error("query returned a far-corner entity")
	}

	n, ok := got[near]
	if !ok {
		t.Fatal("query missed an in-radius entity")
	}
	if n.Dist != 2 || n.DX != 2 || n.DY != 0 {
		t.Errorf("neighbor delta (%g,%g) dist %g, want (2,0) dist 2", n.DX, n.DY, n.Dist)
	}

	// Radius is inclusive: distance exactly equal to radius qualifies.
	if _, ok := got[edge]; !ok {
		t.Error("query missed an entity exactly on the radius")
	}
}

func TestSpatialGridClear(t *testing.T) {
	world := ecs.NewWorld()
	posMapper := ecs.NewMap1[components.Position](world)

	pos := components.Position{X: 5, Y: 5}
	e := posMapper.NewEntity(&pos)

	grid := NewSpatialGrid(10, 10, 5)
	grid.Insert(e, pos.X, pos.Y)
	grid.Clear()

	if found := grid.QueryRadiusInto(nil, 5, 5, 10, ecs.Entity{}, posMapper); len(found) != 0 {
		t.Errorf("query after Clear returned %d entities, want 0", len(found))
	}
}

func TestSpatialGridClampsOutOfBounds(t *testing.T) {
	world := ecs.NewWorld()
	posMapper := ecs.NewMap1[components.Position](world)

	// Outside the arena on both axes; must land in an edge cell rather
	// than index out of range.
	pos := components.Position{X: -3, Y: 25}
	e := posMapper.NewEntity(&pos)

	grid := NewSpatialGrid(20, 20, 5)
	grid.Insert(e, pos.X, pos.Y)

	found := grid.QueryRadiusInto(nil, 0, 20, 30, ecs.Entity{}, posMapper)
	if len(found) != 1 {
		t.Fatalf("query found %d entities, want 1", len(found))
	}
	if found[0].E != e {
		t.Error("query returned the wrong entity")
	}
}
