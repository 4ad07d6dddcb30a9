// Package render draws the swarm arena with raylib.
package render

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swarm/comms"
	"github.com/pthm-cable/swarm/sim"
)

// Renderer converts world coordinates to screen space and draws the
// arena, mesh links, robots, and targets.
type Renderer struct {
	scale          float32
	offsetX        float32
	offsetY        float32
	maxDistance    float32
	rangeThreshold float32

	ShowLinks bool
}

// New creates a renderer fitting a worldW x worldH arena into the
// given screen size, preserving aspect ratio.
func New(screenW, screenH int, worldW, worldH, maxDistance, rangeThreshold float32) *Renderer {
	scaleX := float32(screenW) / worldW
	scaleY := float32(screenH) / worldH
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	return &Renderer{
		scale:          scale,
		offsetX:        (float32(screenW) - worldW*scale) / 2,
		offsetY:        (float32(screenH) - worldH*scale) / 2,
		maxDistance:    maxDistance,
		rangeThreshold: rangeThreshold,
		ShowLinks:      true,
	}
}

func (r *Renderer) toScreen(x, y float32) (sx, sy float32) {
	return r.offsetX + x*r.scale, r.offsetY + y*r.scale
}

// Draw renders one frame of the simulation state.
func (r *Renderer) Draw(robots []sim.RobotState, targets [][2]float32, worldW, worldH float32) {
	rl.ClearBackground(rl.NewColor(12, 16, 24, 255))

	// Arena bounds
	ax, ay := r.toScreen(0, 0)
	rl.DrawRectangleLines(int32(ax), int32(ay), int32(worldW*r.scale), int32(worldH*r.scale), rl.DarkGray)

	if r.ShowLinks {
		r.drawLinks(robots)
	}

	for _, t := range targets {
		tx, ty := r.toScreen(t[0], t[1])
		rl.DrawCircleV(rl.Vector2{X: tx, Y: ty}, 0.4*r.scale, rl.Gold)
	}

	for _, robot := range robots {
		x, y := r.toScreen(robot.X, robot.Y)

		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, 0.25*r.scale, rl.SkyBlue)

		// Motor command vector, scaled down for readability.
		cx := x + robot.CmdX*r.scale*0.2
		cy := y + robot.CmdY*r.scale*0.2
		rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: cx, Y: cy}, rl.Green)
	}
}

// drawLinks draws a line per mesh link, faded by signal strength.
func (r *Renderer) drawLinks(robots []sim.RobotState) {
	for i := 0; i < len(robots); i++ {
		for j := i + 1; j < len(robots); j++ {
			dx := robots[j].X - robots[i].X
			dy := robots[j].Y - robots[i].Y
			dist := float32Sqrt(dx*dx + dy*dy)
			if dist >= r.rangeThreshold {
				continue
			}

			strength := comms.SignalStrength(dist, r.maxDistance)
			alpha := uint8(40 + strength*180)

			ax, ay := r.toScreen(robots[i].X, robots[i].Y)
			bx, by := r.toScreen(robots[j].X, robots[j].Y)
			rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, rl.NewColor(120, 200, 255, alpha))
		}
	}
}

// DrawHUD renders the status line.
func (r *Renderer) DrawHUD(tick int32, robots []sim.RobotState, paused bool) {
	var totalNeighbors int32
	for _, robot := range robots {
		totalNeighbors += robot.Neighbors
	}
	mean := float32(0)
	if len(robots) > 0 {
		mean = float32(totalNeighbors) / float32(len(robots))
	}

	status := fmt.Sprintf("tick %d | robots %d | mean neighbors %.1f | fps %d", tick, len(robots), mean, rl.GetFPS())
	if paused {
		status += " | PAUSED"
	}
	rl.DrawText(status, 10, 10, 18, rl.RayWhite)
}

func float32Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
