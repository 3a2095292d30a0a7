package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/game"
)

// tableLine is either a category header or one individual.
type tableLine struct {
	header   bool
	category components.Category
	count    int
	row      game.Row
}

// tableLines lays out rows, already ordered by category, under one header
// per non-empty category.
func tableLines(rows []game.Row) []tableLine {
	counts := make([]int, components.CategoryCount())
	for _, r := range rows {
		counts[r.Category]++
	}

	lines := make([]tableLine, 0, len(rows)+len(counts))
	for i, r := range rows {
		if i == 0 || rows[i-1].Category != r.Category {
			lines = append(lines, tableLine{header: true, category: r.Category, count: counts[r.Category]})
		}
		lines = append(lines, tableLine{category: r.Category, row: r})
	}
	return lines
}

// Table draws the individuals of a report, one line per row, with a
// scrollable window of at most maxRows lines.
type Table struct {
	renderer *Renderer
	columns  []components.FieldDescriptor
	x, y     int32
	maxRows  int
	offset   int
}

// NewTable creates a table whose column header sits at x, y.
func NewTable(x, y int32, maxRows int) *Table {
	if maxRows < 1 {
		maxRows = 1
	}
	return &Table{
		renderer: NewRenderer(),
		columns:  components.RowFieldDescriptors(),
		x:        x,
		y:        y,
		maxRows:  maxRows,
	}
}

// Scroll moves the window by delta lines, clamped to total lines.
func (t *Table) Scroll(delta, total int) {
	t.offset = clampOffset(t.offset+delta, total, t.maxRows)
}

func clampOffset(offset, total, visible int) int {
	return max(0, min(offset, total-visible))
}

// Draw renders the header and the visible lines of rows.
func (t *Table) Draw(rows []game.Row) {
	r := t.renderer
	lines := tableLines(rows)
	t.offset = clampOffset(t.offset, len(lines), t.maxRows)

	x := t.x
	for _, col := range t.columns {
		rl.DrawText(col.Label, x+4, t.y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		x += col.Width
	}

	y := t.y + r.Theme.RowHeight + 2
	end := min(len(lines), t.offset+t.maxRows)
	for _, line := range lines[t.offset:end] {
		if line.header {
			t.drawHeader(y, line)
		} else {
			t.drawRow(y, line.row)
		}
		y += r.Theme.RowHeight
	}

	if hidden := len(lines) - end; hidden > 0 {
		r.DrawLabel(t.x+4, y+2, fmt.Sprintf("... %d more lines (scroll)", hidden))
	}
}

func (t *Table) width() int32 {
	var w int32
	for _, col := range t.columns {
		w += col.Width
	}
	return w
}

func (t *Table) drawHeader(y int32, line tableLine) {
	r := t.renderer
	rl.DrawRectangle(t.x, y, t.width(), r.Theme.RowHeight, r.Theme.PanelBorder)
	title := fmt.Sprintf("%s (%d)", line.category, line.count)
	rl.DrawText(title, t.x+4, y+3, r.Theme.FontSize, r.Theme.SectionHeader)
}

func (t *Table) drawRow(y int32, row game.Row) {
	r := t.renderer
	bg := ToColor(row.Color)
	rl.DrawRectangle(t.x, y, t.width(), r.Theme.RowHeight-1, bg)
	fg := r.Theme.TextOn(bg)

	x := t.x
	for _, col := range t.columns {
		text := row.Field(col.ID)
		for text != "" && rl.MeasureText(text, r.Theme.FontSize) > col.Width-8 {
			text = trimLast(text)
		}
		rl.DrawText(text, x+4, y+3, r.Theme.FontSize, fg)
		x += col.Width
	}
}

// trimLast drops the last rune of s.
func trimLast(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
