package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/game"
	"github.com/pthm-cable/foodchain/traits"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  int32
		want Action
	}{
		{rl.KeySpace, ActionToggle},
		{rl.KeyPeriod, ActionFaster},
		{rl.KeyComma, ActionSlower},
		{rl.KeyN, ActionStep1},
		{rl.KeyS, ActionNone},
	}
	for _, tt := range tests {
		if got := KeyAction(tt.key); got != tt.want {
			t.Errorf("KeyAction(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}

	if ActionStep1.Steps() != 1 || ActionStep10.Steps() != 10 || ActionStep100.Steps() != 100 {
		t.Error("unexpected step counts")
	}
	if ActionToggle.Steps() != 0 {
		t.Error("expected toggle to advance no days")
	}
}

func TestOverlayRegistry(t *testing.T) {
	reg := NewOverlayRegistry()
	if !reg.IsEnabled(OverlayStats) {
		t.Error("expected stats to be shown initially")
	}

	if !reg.HandleKeyPress(rl.KeyL) || !reg.IsEnabled(OverlayLegend) {
		t.Fatal("expected L to show the legend")
	}
	reg.Toggle(OverlayHelp)
	if reg.IsEnabled(OverlayLegend) || !reg.IsEnabled(OverlayHelp) {
		t.Error("expected help and legend to be exclusive")
	}

	if reg.HandleKeyPress(rl.KeyQ) {
		t.Error("expected unbound keys to be ignored")
	}
	reg.SetEnabled("missing", true)
	if reg.IsEnabled("missing") {
		t.Error("expected unknown overlays to stay disabled")
	}
	if got := len(reg.All()); got != 4 {
		t.Errorf("expected 4 overlays, got %d", got)
	}
}

func TestTableLines(t *testing.T) {
	rows := []game.Row{
		{ID: "Bab", Category: components.CategoryAdult},
		{ID: "Cab", Category: components.CategoryAdult},
		{ID: "Dab", Category: components.CategoryStarved},
	}
	lines := tableLines(rows)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !lines[0].header || lines[0].count != 2 || lines[0].category != components.CategoryAdult {
		t.Errorf("unexpected first header %+v", lines[0])
	}
	if !lines[3].header || lines[3].count != 1 || lines[3].category != components.CategoryStarved {
		t.Errorf("unexpected second header %+v", lines[3])
	}
	if lines[4].row.ID != "Dab" {
		t.Errorf("expected Dab last, got %s", lines[4].row.ID)
	}
	if len(tableLines(nil)) != 0 {
		t.Error("expected no lines for no rows")
	}
}

func TestTableScroll(t *testing.T) {
	tbl := NewTable(0, 0, 10)
	tbl.Scroll(5, 12)
	if tbl.offset != 2 {
		t.Errorf("expected offset clamped to 2, got %d", tbl.offset)
	}
	tbl.Scroll(-50, 12)
	if tbl.offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", tbl.offset)
	}
	tbl.Scroll(3, 4)
	if tbl.offset != 0 {
		t.Errorf("expected no scrolling when everything fits, got %d", tbl.offset)
	}
}

func TestColors(t *testing.T) {
	theme := DefaultTheme()
	if got := theme.TextOn(rl.White); got != theme.DarkText {
		t.Error("expected dark text on white")
	}
	if got := theme.TextOn(rl.Black); got != theme.LightText {
		t.Error("expected light text on black")
	}

	c := ToColor(traits.RGB{R: 1, G: 2, B: 3})
	if c != (rl.Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("unexpected colour %v", c)
	}
}

func TestBarRatioAndStatus(t *testing.T) {
	if barRatio(5, 10) != 0.5 || barRatio(20, 10) != 1 || barRatio(3, 0) != 0 {
		t.Error("unexpected bar ratios")
	}
	if got := statusLine(4, false, true); got != "Day 4 - paused" {
		t.Errorf("unexpected status %q", got)
	}
	if got := statusLine(4, true, true); got != "Day 4 - playing (fast)" {
		t.Errorf("unexpected status %q", got)
	}
}
