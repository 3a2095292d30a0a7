package components

import (
	"strings"
)

// Category groups individuals for display.
type Category uint8

const (
	CategoryAdult Category = iota
	CategoryYoung
	CategoryEaten
	CategoryStarved
)

// String returns the display name for a Category.
func (c Category) String() string {
	names := CategoryNames()
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CategoryNames returns the display names for all categories.
// The order matches the Category constants.
func CategoryNames() []string {
	return []string{"Adult", "Young", "Eaten", "Starved"}
}

// CategoryCount returns the number of categories.
func CategoryCount() int {
	return len(CategoryNames())
}

// CategoryOf classifies an individual on the given day.
func CategoryOf(ind *Individual, today int) Category {
	switch {
	case ind.Starved():
		return CategoryStarved
	case ind.Eaten():
		return CategoryEaten
	case !ind.Adult(today):
		return CategoryYoung
	default:
		return CategoryAdult
	}
}

// EnergyLabels are the four energy levels, lowest first.
var EnergyLabels = []string{"critical", "low", "ok", "full"}

// EnergyLabel buckets an energy value by rounding.
func EnergyLabel(energy float64) string {
	top := len(EnergyLabels) - 1
	switch {
	case energy > float64(top):
		return EnergyLabels[top]
	case energy < 0:
		return EnergyLabels[0]
	}
	i := int(energy + 0.5)
	return EnergyLabels[i]
}

// AncestorsLabel is "x" without a parent, "Id †" when the parent is dead or
// gone, otherwise the living ancestor chain.
func AncestorsLabel(ind *Individual, lookup func(id string) *Individual) string {
	if ind.Parent == "" {
		return "x"
	}
	if p := lookup(ind.Parent); p == nil || p.Dead() {
		return ind.Parent + " †"
	}
	return strings.Join(ind.ParentIDs(lookup), ", ")
}

// FieldDescriptor describes a report column for UI display.
type FieldDescriptor struct {
	ID    string // Unique identifier
	Label string // Column header
	Width int32  // Column width in pixels
}

// RowFieldDescriptors returns the columns of the individuals table in display order.
func RowFieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "id", Label: "ID", Width: 70},
		{ID: "age", Label: "Age", Width: 50},
		{ID: "traits", Label: "Traits", Width: 80},
		{ID: "strategy", Label: "Strategy", Width: 100},
		{ID: "action", Label: "Action", Width: 170},
		{ID: "energy", Label: "Energy", Width: 80},
		{ID: "shelter", Label: "Shelter", Width: 70},
		{ID: "ancestors", Label: "Ancestors", Width: 170},
		{ID: "offspring", Label: "Offspring", Width: 110},
		{ID: "death", Label: "Death", Width: 60},
	}
}
