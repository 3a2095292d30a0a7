package components

import (
	"math/rand"

	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/genetics"
	"github.com/pthm-cable/foodchain/traits"
)

// Params holds the per-individual constants shared by a population.
type Params struct {
	Domain        genetics.Domain
	MaxEnergy     float64
	InitialEnergy float64
	AdultAge      int
}

// ParamsFromConfig extracts individual parameters from the config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Domain:        genetics.DomainFromConfig(cfg.Gene),
		MaxEnergy:     cfg.Individual.MaxEnergy,
		InitialEnergy: cfg.Individual.InitialEnergy,
		AdultAge:      cfg.Individual.AdultAge,
	}
}

// DeathCause records why an individual died.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseEaten
	CauseStarved
)

func (c DeathCause) String() string {
	switch c {
	case CauseEaten:
		return "eaten"
	case CauseStarved:
		return "starved"
	default:
		return ""
	}
}

// Individual is one organism. Parent is a weak link held by id only and may
// be cleared once the parent has long left the registry. Children are strong
// links used for lineage queries and feeding.
type Individual struct {
	ID       string // Assigned on registration
	Birthday int
	Parent   string

	Strategy traits.Strategy
	Traits   traits.Traits

	Energy    float64
	Sheltered bool

	Children   []*Individual
	LastAction string // Description of the most recent turn

	params   Params
	dead     bool
	deathDay int
	cause    DeathCause
}

// NewIndividual creates an unregistered individual with initial energy.
func NewIndividual(p Params, birthday int, strategy traits.Strategy, tr traits.Traits) *Individual {
	return &Individual{
		Birthday: birthday,
		Strategy: strategy,
		Traits:   tr,
		Energy:   p.InitialEnergy,
		params:   p,
	}
}

// RandomIndividual creates an unregistered individual with a random diet and genetics.
func RandomIndividual(p Params, birthday int, rng *rand.Rand) *Individual {
	diet := traits.RandomDiet(rng)
	return NewIndividual(p, birthday,
		traits.RandomStrategy(diet, p.Domain, rng),
		traits.RandomTraits(p.Domain, rng),
	)
}

// Diet returns the individual's diet.
func (ind *Individual) Diet() traits.Diet { return ind.Strategy.Diet() }

// Params returns the population constants the individual was created with.
func (ind *Individual) Params() Params { return ind.params }

// Age is the number of days since birth, frozen at death.
func (ind *Individual) Age(today int) int {
	if ind.dead {
		return ind.deathDay - ind.Birthday
	}
	return today - ind.Birthday
}

// Adult reports whether the individual has reached adult age.
func (ind *Individual) Adult(today int) bool {
	return ind.Age(today) >= ind.params.AdultAge
}

// Alive reports whether the individual has not died.
func (ind *Individual) Alive() bool { return !ind.dead }

// Dead reports whether the individual has died.
func (ind *Individual) Dead() bool { return ind.dead }

// DeathDay returns the day of death and whether the individual is dead.
func (ind *Individual) DeathDay() (int, bool) { return ind.deathDay, ind.dead }

// Cause returns how the individual died.
func (ind *Individual) Cause() DeathCause { return ind.cause }

// Eaten reports death by predation.
func (ind *Individual) Eaten() bool { return ind.cause == CauseEaten }

// Starved reports death by starvation.
func (ind *Individual) Starved() bool { return ind.cause == CauseStarved }

// Hungry reports whether the individual has room for at least one unit of food.
func (ind *Individual) Hungry() bool {
	return ind.Energy <= ind.params.MaxEnergy-1
}

// Eat adds energy, capped at the maximum.
func (ind *Individual) Eat(v float64) {
	ind.Energy = min(ind.params.MaxEnergy, ind.Energy+v)
}

// Spend removes energy, floored at zero.
func (ind *Individual) Spend(v float64) {
	ind.Energy = max(0, ind.Energy-v)
}

// LeaveShelter clears the shelter flag and reports whether it was set.
func (ind *Individual) LeaveShelter() bool {
	if !ind.Sheltered {
		return false
	}
	ind.Sheltered = false
	return true
}

// Die marks the individual dead. The first cause sticks.
func (ind *Individual) Die(today int, cause DeathCause) {
	if ind.dead {
		return
	}
	ind.dead = true
	ind.deathDay = today
	ind.cause = cause
}

// CreateChild returns an unregistered child with independently mutated
// strategy and traits, and links it as a child of ind.
func (ind *Individual) CreateChild(today int, rng *rand.Rand) *Individual {
	child := NewIndividual(ind.params, today, ind.Strategy.Mutate(rng), ind.Traits.Mutate(rng))
	child.Parent = ind.ID
	ind.Children = append(ind.Children, child)
	return child
}

// LivingChildren returns the children that are still alive.
func (ind *Individual) LivingChildren() []*Individual {
	var living []*Individual
	for _, c := range ind.Children {
		if c.Alive() {
			living = append(living, c)
		}
	}
	return living
}

// CanBeHuntedBy reports whether predator can successfully hunt ind today.
// Dead, sheltered and newborn individuals are safe, as is anyone who beats
// the predator on some trait.
func (ind *Individual) CanBeHuntedBy(predator *Individual, today int) bool {
	if ind.dead || ind.Sheltered || ind.Age(today) == 0 {
		return false
	}
	return !ind.Traits.CanEscape(predator.Traits)
}

// OffspringCounts returns the number of living descendants per generation,
// children first. A last generation without living members is dropped; an
// earlier empty one is kept so deep extinct lines stay visible.
func (ind *Individual) OffspringCounts() []int {
	var counts []int
	generation := ind.Children
	for len(generation) > 0 {
		living := 0
		var next []*Individual
		for _, c := range generation {
			if c.Alive() {
				living++
			}
			next = append(next, c.Children...)
		}
		counts = append(counts, living)
		generation = next
	}
	if len(counts) > 0 && counts[len(counts)-1] == 0 {
		counts = counts[:len(counts)-1]
	}
	return counts
}

// OffspringSum returns the total number of living descendants.
func (ind *Individual) OffspringSum() int {
	sum := 0
	for _, n := range ind.OffspringCounts() {
		sum += n
	}
	return sum
}

// ParentIDs returns the direct parent followed by every consecutive living
// ancestor, oldest first. lookup resolves ids in the active registry and
// returns nil for anyone who has left it.
func (ind *Individual) ParentIDs(lookup func(id string) *Individual) []string {
	if ind.Parent == "" {
		return nil
	}
	ids := []string{ind.Parent}
	cur := lookup(ind.Parent)
	for cur != nil && cur.Parent != "" {
		next := lookup(cur.Parent)
		if next == nil || next.Dead() {
			break
		}
		ids = append(ids, next.ID)
		cur = next
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// Related reports whether other is ind's direct parent or child.
func (ind *Individual) Related(other *Individual) bool {
	if ind.Parent != "" && other.ID == ind.Parent {
		return true
	}
	return ind.ID != "" && other.Parent == ind.ID
}
