package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a user request for the player.
type Action int

const (
	ActionNone Action = iota
	ActionStep1
	ActionStep10
	ActionStep100
	ActionToggle
	ActionFaster
	ActionSlower
)

// Steps returns how many days a step action advances, 0 for other actions.
func (a Action) Steps() int {
	switch a {
	case ActionStep1:
		return 1
	case ActionStep10:
		return 10
	case ActionStep100:
		return 100
	default:
		return 0
	}
}

// KeyAction maps a pressed key to an action.
func KeyAction(key int32) Action {
	switch key {
	case rl.KeySpace:
		return ActionToggle
	case rl.KeyPeriod:
		return ActionFaster
	case rl.KeyComma:
		return ActionSlower
	case rl.KeyN, rl.KeyRight:
		return ActionStep1
	default:
		return ActionNone
	}
}

// ControlBar renders the play buttons along the top of the window.
type ControlBar struct {
	renderer *Renderer
	x, y     int32
}

// NewControlBar creates a control bar at x, y.
func NewControlBar(x, y int32) *ControlBar {
	return &ControlBar{renderer: NewRenderer(), x: x, y: y}
}

// Height is the vertical space the bar occupies.
func (c *ControlBar) Height() int32 { return 30 + c.renderer.Theme.Padding }

// Draw renders the buttons and returns the one clicked this frame.
func (c *ControlBar) Draw(playing, fast bool) Action {
	const w, h, gap = 90, 26, 8
	x := float32(c.x)
	y := float32(c.y)
	clicked := ActionNone

	button := func(label string, a Action) {
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, label) {
			clicked = a
		}
		x += w + gap
	}

	button("Next 1", ActionStep1)
	button("Next 10", ActionStep10)
	button("Next 100", ActionStep100)
	button(toggleText(playing, "Pause", "Play"), ActionToggle)
	if fast {
		button("Slower", ActionSlower)
	} else {
		button("Faster", ActionFaster)
	}
	return clicked
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}

// DrawHelp renders the key bindings and overlay toggles.
func (r *Renderer) DrawHelp(x, y, width int32, overlays *OverlayRegistry) {
	keys := [][2]string{
		{"Space", "Play / pause"},
		{",", "Slower"},
		{".", "Faster"},
		{"N", "Next day"},
		{"Wheel", "Scroll table"},
	}
	all := overlays.All()
	height := int32(len(keys)+len(all)+2)*r.Theme.LineHeight + r.Theme.Padding*3
	r.DrawPanel(x, y, width, height)

	px := x + r.Theme.Padding
	py := r.DrawSectionHeader(px, y+r.Theme.Padding, "Keys")
	for _, k := range keys {
		py = r.DrawLabelValue(px, py, k[0], k[1])
	}
	py += 4
	py = r.DrawSectionHeader(px, py, "Panels")
	for _, desc := range all {
		r.drawToggle(px, py, desc, overlays.IsEnabled(desc.ID), width-r.Theme.Padding*2)
		py += r.Theme.LineHeight
	}
}

// drawToggle draws a single overlay toggle line.
func (r *Renderer) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = r.Theme.BarFillHigh
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}
