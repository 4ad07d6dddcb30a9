// Package systems provides the per-tick simulation systems: spatial
// indexing, mesh updates, and sensor assembly.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/components"
)

// Neighbor holds a nearby entity with precomputed spatial data.
type Neighbor struct {
	E      ecs.Entity
	DX, DY float32
	Dist   float32
}

// SpatialGrid provides cell-based neighbor lookups over a bounded
// arena. Positions outside the arena clamp to the edge cells.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]ecs.Entity
}

// NewSpatialGrid creates a grid covering the given arena size.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]ecs.Entity, cols*rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to the grid at the given position.
func (g *SpatialGrid) Insert(e ecs.Entity, x, y float32) {
	g.cells[g.cellIndex(x, y)] = append(g.cells[g.cellIndex(x, y)], e)
}

func (g *SpatialGrid) cellIndex(x, y float32) int {
	col := clampInt(int(x/g.cellSize), 0, g.cols-1)
	row := clampInt(int(y/g.cellSize), 0, g.rows-1)
	return row*g.cols + col
}

// QueryRadiusInto finds entities within radius and appends to dst.
// Returns the updated slice; reuse dst across calls to avoid
// allocations. Each Neighbor carries precomputed delta and distance.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, x, y, radius float32, exclude ecs.Entity, posMap *ecs.Map1[components.Position]) []Neighbor {
	cellRadius := int(radius/g.cellSize) + 1

	centerCol := clampInt(int(x/g.cellSize), 0, g.cols-1)
	centerRow := clampInt(int(y/g.cellSize), 0, g.rows-1)

	radiusSq := radius * radius

	for dc := -cellRadius; dc <= cellRadius; dc++ {
		col := centerCol + dc
		if col < 0 || col >= g.cols {
			continue
		}
		for dr := -cellRadius; dr <= cellRadius; dr++ {
			row := centerRow + dr
			if row < 0 || row >= g.rows {
				continue
			}

			for _, e := range g.cells[row*g.cols+col] {
				if e == exclude {
					continue
				}

				pos := posMap.Get(e)
				if pos == nil {
					continue
				}

				dx := pos.X - x
				dy := pos.Y - y
				distSq := dx*dx + dy*dy

				if distSq <= radiusSq {
					dst = append(dst, Neighbor{E: e, DX: dx, DY: dy, Dist: sqrt32(distSq)})
				}
			}
		}
	}

	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
