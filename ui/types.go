// Package ui draws the simulation in a raylib window: the environment panel,
// play controls and the table of individuals.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/foodchain/traits"
)

// Theme holds UI styling constants.
type Theme struct {
	Background     rl.Color
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	DarkText       rl.Color
	LightText      rl.Color
	Warning        rl.Color
	BarBg          rl.Color
	BarFood        rl.Color
	BarShelter     rl.Color
	BarFillLow     rl.Color
	BarFillMedium  rl.Color
	BarFillHigh    rl.Color
	Padding        int32
	LineHeight     int32
	RowHeight      int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     rl.Color{R: 12, G: 14, B: 18, A: 255},
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		DarkText:       rl.Color{R: 16, G: 16, B: 16, A: 255},
		LightText:      rl.Color{R: 240, G: 240, B: 240, A: 255},
		Warning:        rl.Color{R: 220, G: 70, B: 60, A: 255},
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFood:        rl.Color{R: 100, G: 200, B: 100, A: 255},
		BarShelter:     rl.Color{R: 100, G: 150, B: 200, A: 255},
		BarFillLow:     rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarFillMedium:  rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:    rl.Color{R: 100, G: 200, B: 100, A: 255},
		Padding:        10,
		LineHeight:     16,
		RowHeight:      18,
		LabelWidth:     70,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// ToColor converts a strategy colour to a raylib colour.
func ToColor(c traits.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// TextOn picks dark or light text for legibility on background c.
func (t Theme) TextOn(c rl.Color) rl.Color {
	// Rec. 601 luma
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 140 {
		return t.DarkText
	}
	return t.LightText
}
