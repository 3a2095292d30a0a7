// Package telemetry provides per-day statistics, bookmarks, and CSV output.
package telemetry

import (
	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/traits"
)

// Collector counts events within a day and aggregates finished days into
// WindowStats every windowDays days.
type Collector struct {
	windowDays int

	current DayStats
	window  []DayStats
}

// NewCollector creates a new stats collector.
func NewCollector(windowDays int) *Collector {
	if windowDays < 1 {
		windowDays = 1
	}
	return &Collector{windowDays: windowDays}
}

// BeginDay resets the per-day counters.
func (c *Collector) BeginDay(day int) {
	c.current = DayStats{Day: day}
}

// RecordBirths records children born today.
func (c *Collector) RecordBirths(n int) {
	c.current.Births += n
}

// RecordMigrants records founders added by migration.
func (c *Collector) RecordMigrants(n int) {
	c.current.Migrants += n
}

// RecordKill records a successful hunt.
func (c *Collector) RecordKill() {
	c.current.Kills++
}

// RecordHuntFoiled records a hunt whose victim was no longer valid.
func (c *Collector) RecordHuntFoiled() {
	c.current.HuntsFoiled++
}

// RecordStarvations records deaths by starvation.
func (c *Collector) RecordStarvations(n int) {
	c.current.Starvations += n
}

// RecordAction records an executed action of the given kind. Hunts and
// births are recorded separately.
func (c *Collector) RecordAction(kind traits.ActionKind) {
	switch kind {
	case traits.Gather:
		c.current.Gathers++
	case traits.Scavenge:
		c.current.Scavenges++
	case traits.Hide:
		c.current.Hides++
	case traits.FeedChild:
		c.current.Feeds++
	}
}

// RecordNoop records a turn with no possible action.
func (c *Collector) RecordNoop() {
	c.current.Noops++
}

// EndDay samples the living population and the environment, appends the
// finished day to the current window and returns it.
func (c *Collector) EndDay(living []*components.Individual, env components.EnvironmentSnapshot) DayStats {
	s := c.current
	s.Living = len(living)
	s.FoodLeft = env.Food
	s.ShelterLeft = env.Shelter
	s.Bodies = env.Bodies
	s.Extinct = len(living) == 0

	energies := make([]float64, 0, len(living))
	strength := make([]float64, 0, len(living))
	speed := make([]float64, 0, len(living))
	agility := make([]float64, 0, len(living))
	strategies := make([]string, 0, len(living))

	for _, ind := range living {
		switch ind.Diet() {
		case traits.Herbivore:
			s.Herbivores++
		case traits.Carnivore:
			s.Carnivores++
		case traits.Omnivore:
			s.Omnivores++
		case traits.Scavenger:
			s.Scavengers++
		}
		if ind.Sheltered {
			s.Sheltered++
		}
		energies = append(energies, ind.Energy)
		strength = append(strength, ind.Traits.Get(traits.Strength))
		speed = append(speed, ind.Traits.Get(traits.Speed))
		agility = append(agility, ind.Traits.Get(traits.Agility))
		strategies = append(strategies, ind.Strategy.String())
	}

	s.EnergyMean, s.EnergyStd, s.EnergyP10, s.EnergyP50, s.EnergyP90 = ComputeDistribution(energies)
	s.StrengthMean = Mean(strength)
	s.SpeedMean = Mean(speed)
	s.AgilityMean = Mean(agility)
	s.StrategyDiversity = Diversity(strategies)

	c.window = append(c.window, s)
	c.current = DayStats{Day: s.Day}
	return s
}

// ShouldFlush returns true when the current window holds windowDays days.
func (c *Collector) ShouldFlush() bool {
	return len(c.window) >= c.windowDays
}

// Pending returns how many finished days are waiting in the current window.
func (c *Collector) Pending() int {
	return len(c.window)
}

// Flush aggregates the current window and starts a new one. Flushing an empty
// window returns zero stats.
func (c *Collector) Flush() WindowStats {
	if len(c.window) == 0 {
		return WindowStats{}
	}

	first := c.window[0]
	last := c.window[len(c.window)-1]
	ws := WindowStats{
		WindowStartDay: first.Day,
		WindowEndDay:   last.Day,
		Living:         last.Living,
		Herbivores:     last.Herbivores,
		Carnivores:     last.Carnivores,
		Omnivores:      last.Omnivores,
		Scavengers:     last.Scavengers,
		LivingMin:      first.Living,
		LivingMax:      first.Living,
	}

	living := make([]float64, len(c.window))
	energy := make([]float64, len(c.window))
	diversity := make([]float64, len(c.window))
	for i, d := range c.window {
		ws.Births += d.Births
		ws.Migrants += d.Migrants
		ws.Kills += d.Kills
		ws.HuntsFoiled += d.HuntsFoiled
		ws.Starvations += d.Starvations
		if d.Extinct {
			ws.ExtinctDays++
		}
		if d.Living < ws.LivingMin {
			ws.LivingMin = d.Living
		}
		if d.Living > ws.LivingMax {
			ws.LivingMax = d.Living
		}
		living[i] = float64(d.Living)
		energy[i] = d.EnergyMean
		diversity[i] = d.StrategyDiversity
	}
	ws.LivingMean = Mean(living)
	ws.EnergyMean = Mean(energy)
	ws.StrategyDiversity = Mean(diversity)

	c.window = c.window[:0]
	return ws
}
