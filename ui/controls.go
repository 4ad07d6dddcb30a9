// Package ui provides the raygui control panel for the simulator.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State holds the user-adjustable run controls.
type State struct {
	Paused        bool
	StepsPerFrame float32 // simulation ticks per rendered frame, 1-10
	ShowLinks     bool
}

// ControlsPanel renders the run controls in a corner panel.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a panel anchored at (x, y).
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width, visible: true}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() {
	c.visible = !c.visible
}

// Draw renders the panel and returns the updated state.
func (c *ControlsPanel) Draw(state State) State {
	if !c.visible {
		return state
	}

	const rowHeight = 30
	const pad = 10

	x := c.x + pad
	y := c.y + pad
	w := c.width - 2*pad

	rl.DrawRectangle(int32(c.x), int32(c.y), int32(c.width), 4*rowHeight+3*pad, rl.NewColor(20, 24, 34, 220))

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight - 6}, label) {
		state.Paused = !state.Paused
	}
	y += rowHeight

	state.StepsPerFrame = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight - 6},
		"", fmt.Sprintf("%dx", int(state.StepsPerFrame)),
		state.StepsPerFrame, 1, 10,
	)
	y += rowHeight

	state.ShowLinks = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: rowHeight - 6, Height: rowHeight - 6},
		"mesh links", state.ShowLinks,
	)

	return state
}
