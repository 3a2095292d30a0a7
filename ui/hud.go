package ui

import (
	"fmt"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/game"
	"github.com/pthm-cable/foodchain/telemetry"
	"github.com/pthm-cable/foodchain/traits"
)

// HUD renders the environment panel and the optional side panels.
type HUD struct {
	renderer  *Renderer
	x, y      int32
	width     int32
	maxEnergy float64
}

// NewHUD creates a HUD whose panels stack down from x, y.
func NewHUD(x, y, width int32, maxEnergy float64) *HUD {
	return &HUD{renderer: NewRenderer(), x: x, y: y, width: width, maxEnergy: maxEnergy}
}

// Width returns the panel column width.
func (h *HUD) Width() int32 { return h.width }

// statusLine describes the day and the play state.
func statusLine(day int, playing, fast bool) string {
	state := "paused"
	if playing {
		state = "playing"
		if fast {
			state += " (fast)"
		} else {
			state += " (slow)"
		}
	}
	return fmt.Sprintf("Day %d - %s", day, state)
}

// DrawEnvironment draws the day, resource pools and category counts and
// returns the Y below the panel.
func (h *HUD) DrawEnvironment(report game.DayReport, playing, fast bool) int32 {
	r := h.renderer
	env := report.Environment
	counts := report.Counts()

	lines := int32(5 + len(counts))
	height := lines*r.Theme.LineHeight + r.Theme.Padding*3
	if report.Extinct {
		height += r.Theme.LineHeight + 4
	}
	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + r.Theme.Padding
	y := r.DrawSectionHeader(x, h.y+r.Theme.Padding, statusLine(report.Day, playing, fast))
	inner := h.width - r.Theme.Padding*2
	y = r.DrawLevelBar(x, y, "Food", env.Food, env.InitialFood, r.Theme.BarFood, inner)
	y = r.DrawLevelBar(x, y, "Shelter", env.Shelter, env.InitialShelter, r.Theme.BarShelter, inner)
	y = r.DrawLabelValue(x, y, "Bodies", strconv.Itoa(env.Bodies)+" (+"+strconv.Itoa(env.FreshBodies)+" fresh)")
	y += 4
	for i, n := range counts {
		y = r.DrawLabelValue(x, y, components.Category(i).String(), strconv.Itoa(n))
	}

	if report.Extinct {
		y += 4
		rl.DrawText("EXTINCT - waiting for migrants", x, y, r.Theme.HeaderFontSize, r.Theme.Warning)
		y += r.Theme.LineHeight
	}
	return h.y + height + r.Theme.Padding
}

// DrawStats draws the events and distributions of the day at y.
func (h *HUD) DrawStats(s telemetry.DayStats, y int32) int32 {
	r := h.renderer
	rows := [][2]string{
		{"Births", strconv.Itoa(s.Births)},
		{"Migrants", strconv.Itoa(s.Migrants)},
		{"Kills", fmt.Sprintf("%d (%d foiled)", s.Kills, s.HuntsFoiled)},
		{"Starved", strconv.Itoa(s.Starvations)},
		{"Gathers", strconv.Itoa(s.Gathers)},
		{"Hides", strconv.Itoa(s.Hides)},
		{"Sheltered", strconv.Itoa(s.Sheltered)},
		{"Diversity", fmt.Sprintf("%.2f", s.StrategyDiversity)},
	}
	height := int32(len(rows)+3)*r.Theme.LineHeight + r.Theme.Padding*3
	r.DrawPanel(h.x, y, h.width, height)

	x := h.x + r.Theme.Padding
	py := r.DrawSectionHeader(x, y+r.Theme.Padding, "Today")
	for _, row := range rows {
		py = r.DrawLabelValue(x, py, row[0], row[1])
	}
	py = r.DrawEnergyBar(x, py, "Energy", float32(s.EnergyMean), float32(h.maxEnergy), h.width-r.Theme.Padding*2)
	r.DrawLabel(x, py, fmt.Sprintf("p10 %.1f  p50 %.1f  p90 %.1f", s.EnergyP10, s.EnergyP50, s.EnergyP90))
	return y + height + r.Theme.Padding
}

// DrawLegend draws the diet colours with the number alive of each.
func (h *HUD) DrawLegend(s telemetry.DayStats, y int32) int32 {
	r := h.renderer
	height := int32(len(traits.Diets)+1)*r.Theme.LineHeight + r.Theme.Padding*3
	r.DrawPanel(h.x, y, h.width, height)

	x := h.x + r.Theme.Padding
	py := r.DrawSectionHeader(x, y+r.Theme.Padding, "Diets")
	counts := s.DietCounts()
	for i, d := range traits.Diets {
		py = r.DrawColorSwatch(x, py, fmt.Sprintf("%s  %d", d, counts[i]), ToColor(d.Color()))
	}
	return y + height + r.Theme.Padding
}

// DrawPerf draws viewer frame timing and the average simulated day.
func (h *HUD) DrawPerf(frame telemetry.PerfStats, avgTickUS int64, y int32) int32 {
	r := h.renderer
	height := 3*r.Theme.LineHeight + r.Theme.Padding*3
	r.DrawPanel(h.x, y, h.width, height)

	x := h.x + r.Theme.Padding
	py := r.DrawSectionHeader(x, y+r.Theme.Padding, "Performance")
	py = r.DrawLabelValue(x, py, "FPS", fmt.Sprintf("%.0f", frame.FPS))
	tick := time.Duration(avgTickUS) * time.Microsecond
	color := r.Theme.ValueColor
	if tick > 10*time.Millisecond {
		color = rl.Orange
	}
	rl.DrawText("Day:", x, py, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(tick.String(), x+r.Theme.LabelWidth, py, r.Theme.FontSize, color)
	return y + height + r.Theme.Padding
}
