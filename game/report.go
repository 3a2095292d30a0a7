package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/telemetry"
	"github.com/pthm-cable/foodchain/traits"
)

// Row is the display view of one individual on the current day.
type Row struct {
	ID           string              `json:"id"`
	Diet         traits.Diet         `json:"diet"`
	Age          int                 `json:"age"`
	Category     components.Category `json:"category"`
	Traits       string              `json:"traits"`
	Strategy     string              `json:"strategy"`
	Action       string              `json:"action"`
	Energy       float64             `json:"energy"`
	EnergyLabel  string              `json:"energy_label"`
	Sheltered    bool                `json:"sheltered"`
	Ancestors    string              `json:"ancestors"`
	Offspring    []int               `json:"offspring"`
	OffspringSum int                 `json:"offspring_sum"`
	Death        string              `json:"death"` // "" while alive, "†<day>" once dead
	Color        traits.RGB          `json:"color"`

	deathDay int
}

// Field returns the display string for a column of RowFieldDescriptors.
func (r Row) Field(id string) string {
	switch id {
	case "id":
		return r.ID
	case "age":
		return strconv.Itoa(r.Age)
	case "traits":
		return r.Traits
	case "strategy":
		return r.Strategy
	case "action":
		return r.Action
	case "energy":
		return r.EnergyLabel
	case "shelter":
		if r.Sheltered {
			return "yes"
		}
		return ""
	case "ancestors":
		return r.Ancestors
	case "offspring":
		return offspringLabel(r.Offspring)
	case "death":
		return r.Death
	default:
		return ""
	}
}

func offspringLabel(counts []int) string {
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "/")
}

// Rows returns a display row for every individual in the active registry,
// grouped by category, then most recent death, oldest, most offspring, id.
func (w *World) Rows() []Row {
	individuals := w.Individuals()
	rows := make([]Row, 0, len(individuals))
	for _, ind := range individuals {
		rows = append(rows, w.row(ind))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.deathDay != b.deathDay {
			return a.deathDay > b.deathDay
		}
		if a.Age != b.Age {
			return a.Age > b.Age
		}
		if a.OffspringSum != b.OffspringSum {
			return a.OffspringSum > b.OffspringSum
		}
		return a.ID < b.ID
	})
	return rows
}

func (w *World) row(ind *components.Individual) Row {
	offspring := ind.OffspringCounts()
	sum := 0
	for _, n := range offspring {
		sum += n
	}

	r := Row{
		ID:           ind.ID,
		Diet:         ind.Diet(),
		Age:          ind.Age(w.day),
		Category:     components.CategoryOf(ind, w.day),
		Traits:       ind.Traits.String(),
		Strategy:     ind.Strategy.String(),
		Action:       ind.LastAction,
		Energy:       ind.Energy,
		EnergyLabel:  components.EnergyLabel(ind.Energy),
		Sheltered:    ind.Sheltered,
		Ancestors:    components.AncestorsLabel(ind, w.Lookup),
		Offspring:    offspring,
		OffspringSum: sum,
		Color:        ind.Strategy.Color(),
		deathDay:     -1,
	}
	if day, dead := ind.DeathDay(); dead {
		r.Death = fmt.Sprintf("†%d", day)
		r.deathDay = day
	}
	return r
}

// DayReport is an immutable summary of one day, safe to hand to other
// goroutines.
type DayReport struct {
	Day         int                            `json:"day"`
	Environment components.EnvironmentSnapshot `json:"environment"`
	Rows        []Row                          `json:"rows"`
	Stats       telemetry.DayStats             `json:"stats"`
	Extinct     bool                           `json:"extinct"`
	AvgTickUS   int64                          `json:"avg_tick_us"`
}

// Report builds the report of the current day.
func (w *World) Report() DayReport {
	return DayReport{
		Day:         w.day,
		Environment: w.Environment(),
		Rows:        w.Rows(),
		Stats:       w.lastStats,
		Extinct:     w.extinct,
		AvgTickUS:   w.perf.Stats().AvgTickDuration.Microseconds(),
	}
}

// Counts returns the number of rows per category.
func (r DayReport) Counts() []int {
	counts := make([]int, components.CategoryCount())
	for _, row := range r.Rows {
		counts[row.Category]++
	}
	return counts
}
