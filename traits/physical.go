package traits

import (
	"math/rand"

	"github.com/pthm-cable/foodchain/genetics"
)

// Physical trait names.
const (
	Strength = "strength"
	Speed    = "speed"
	Agility  = "agility"
)

// PhysicalGroups is the gene layout of physical traits.
var PhysicalGroups = [][]string{{Strength, Speed, Agility}}

// Traits is the chromosome of physical attributes.
type Traits struct {
	chromosome genetics.Chromosome
}

// NewTraits wraps a chromosome. Any grouped gene is a tracked trait.
func NewTraits(c genetics.Chromosome) Traits {
	return Traits{chromosome: c}
}

// RandomTraits draws random physical traits.
func RandomTraits(d genetics.Domain, rng *rand.Rand) Traits {
	return Traits{chromosome: genetics.RandomChromosome(PhysicalGroups, d, rng)}
}

// Mutate returns mutated traits.
func (t Traits) Mutate(rng *rand.Rand) Traits {
	return Traits{chromosome: t.chromosome.Mutate(rng)}
}

// Chromosome returns the underlying chromosome.
func (t Traits) Chromosome() genetics.Chromosome { return t.chromosome }

// Get returns the named trait value, 0 when absent or null.
func (t Traits) Get(name string) float64 {
	g, ok := t.chromosome.Gene(name)
	if !ok {
		return 0
	}
	v, _ := g.Value()
	return v
}

// EnergyNeed is the energy spent every day: 1 + strength/2.
func (t Traits) EnergyNeed() float64 {
	return 1 + t.Get(Strength)/2
}

// NutritionalValue is the energy a predator gains from eating this body.
func (t Traits) NutritionalValue() float64 {
	return 2 * t.EnergyNeed()
}

// CanEscape reports whether t beats the predator on any tracked trait.
func (t Traits) CanEscape(predator Traits) bool {
	for _, name := range t.chromosome.Names() {
		if t.Get(name) > predator.Get(name) {
			return true
		}
	}
	return false
}

func (t Traits) String() string {
	return t.chromosome.String()
}
