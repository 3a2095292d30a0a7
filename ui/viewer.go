package ui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/game"
	"github.com/pthm-cable/foodchain/telemetry"
)

const hudWidth = 260

// Viewer shows the reports of a Player in a raylib window and turns buttons
// and keys into player commands. It never touches the world directly.
type Viewer struct {
	player   *game.Player
	cfg      config.ViewerConfig
	renderer *Renderer
	controls *ControlBar
	hud      *HUD
	table    *Table
	overlays *OverlayRegistry
	frames   *telemetry.PerfCollector

	report    game.DayReport
	hasReport bool
}

// NewViewer creates a viewer for p laid out for cfg.Viewer.
func NewViewer(p *game.Player, cfg *config.Config) *Viewer {
	v := &Viewer{
		player:   p,
		cfg:      cfg.Viewer,
		renderer: NewRenderer(),
		overlays: NewOverlayRegistry(),
		frames:   telemetry.NewPerfCollector(cfg.Viewer.TargetFPS),
	}
	pad := v.renderer.Theme.Padding
	v.controls = NewControlBar(pad, pad)
	top := pad + v.controls.Height()
	v.hud = NewHUD(pad, top, hudWidth, cfg.Individual.MaxEnergy)
	v.table = NewTable(pad*2+hudWidth, top, cfg.Viewer.MaxRows)
	return v
}

// Run opens the window and draws until it is closed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) {
	rl.InitWindow(int32(v.cfg.Width), int32(v.cfg.Height), "Foodchain")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(v.cfg.TargetFPS))

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return
		}
		v.poll()
		v.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(v.renderer.Theme.Background)
		v.draw()
		rl.EndDrawing()

		v.frames.RecordFrame()
	}
}

// poll takes the latest report without blocking.
func (v *Viewer) poll() {
	select {
	case r := <-v.player.Reports():
		v.report = r
		v.hasReport = true
	default:
	}
}

func (v *Viewer) handleInput() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if a := KeyAction(key); a != ActionNone {
			v.apply(a)
			continue
		}
		v.overlays.HandleKeyPress(key)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && v.hasReport {
		lines := len(tableLines(v.report.Rows))
		v.table.Scroll(-int(wheel*3), lines)
	}
}

func (v *Viewer) apply(a Action) {
	switch {
	case a.Steps() > 0:
		v.player.Step(a.Steps())
	case a == ActionToggle:
		v.player.Toggle()
	case a == ActionFaster:
		v.player.SetSpeed(true)
	case a == ActionSlower:
		v.player.SetSpeed(false)
	}
}

func (v *Viewer) draw() {
	if a := v.controls.Draw(v.player.Playing(), v.player.Fast()); a != ActionNone {
		v.apply(a)
	}
	if !v.hasReport {
		v.renderer.DrawLabel(v.hud.x, v.hud.y, "Waiting for the first day...")
		return
	}

	y := v.hud.DrawEnvironment(v.report, v.player.Playing(), v.player.Fast())
	if v.overlays.IsEnabled(OverlayStats) {
		y = v.hud.DrawStats(v.report.Stats, y)
	}
	if v.overlays.IsEnabled(OverlayLegend) {
		y = v.hud.DrawLegend(v.report.Stats, y)
	}
	if v.overlays.IsEnabled(OverlayPerf) {
		y = v.hud.DrawPerf(v.frames.Stats(), v.report.AvgTickUS, y)
	}
	if v.overlays.IsEnabled(OverlayHelp) {
		v.renderer.DrawHelp(v.hud.x, y, v.hud.Width(), v.overlays)
	}

	v.table.Draw(v.report.Rows)
}
