package traits

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/foodchain/genetics"
)

func TestDietPermissions(t *testing.T) {
	tests := []struct {
		diet                   Diet
		gather, hunt, scavenge bool
	}{
		{Herbivore, true, false, false},
		{Carnivore, false, true, false},
		{Omnivore, true, true, false},
		{Scavenger, false, false, true},
	}
	for _, tt := range tests {
		if got := tt.diet.CanGather(); got != tt.gather {
			t.Errorf("%s CanGather: expected %v, got %v", tt.diet, tt.gather, got)
		}
		if got := tt.diet.CanHunt(); got != tt.hunt {
			t.Errorf("%s CanHunt: expected %v, got %v", tt.diet, tt.hunt, got)
		}
		if got := tt.diet.CanScavenge(); got != tt.scavenge {
			t.Errorf("%s CanScavenge: expected %v, got %v", tt.diet, tt.scavenge, got)
		}
	}
}

func singleTrait(d genetics.Domain, v float64) Traits {
	return NewTraits(genetics.MustChromosome([][]string{{Strength}}, map[string]genetics.Gene{
		Strength: genetics.NewGene(d, v),
	}))
}

func TestCanEscape(t *testing.T) {
	d := genetics.Domain{Min: 0, Max: 10}
	prey := singleTrait(d, 5)
	predator := singleTrait(d, 3)

	if !prey.CanEscape(predator) {
		t.Error("expected prey with 5 to escape predator with 3")
	}
	if predator.CanEscape(prey) {
		t.Error("expected predator with 3 not to escape prey with 5")
	}
	if prey.CanEscape(prey) {
		t.Error("expected equal traits not to escape")
	}
}

func TestCanEscapeAnyTrait(t *testing.T) {
	d := genetics.DefaultDomain()
	mk := func(strength, speed, agility float64) Traits {
		return NewTraits(genetics.MustChromosome(PhysicalGroups, map[string]genetics.Gene{
			Strength: genetics.NewGene(d, strength),
			Speed:    genetics.NewGene(d, speed),
			Agility:  genetics.NewGene(d, agility),
		}))
	}

	predator := mk(2.0, 2.0, 1.0)
	if !mk(0.1, 0.1, 1.5).CanEscape(predator) {
		t.Error("expected a single superior trait to be enough to escape")
	}
	if mk(0.1, 0.1, 1.0).CanEscape(predator) {
		t.Error("expected no superior trait to mean no escape")
	}
}

func TestEnergyNeed(t *testing.T) {
	tr := singleTrait(genetics.DefaultDomain(), 1.0)
	if got := tr.EnergyNeed(); got != 1.5 {
		t.Errorf("expected energy need 1.5, got %v", got)
	}
	if got := tr.NutritionalValue(); got != 3.0 {
		t.Errorf("expected nutritional value 3, got %v", got)
	}
}

func TestRandomTraitsMutate(t *testing.T) {
	d := genetics.DefaultDomain()
	rng := rand.New(rand.NewSource(2))
	tr := RandomTraits(d, rng)
	for i := 0; i < 20; i++ {
		tr = tr.Mutate(rng)
		for _, name := range tr.Chromosome().Names() {
			if v := tr.Get(name); v < d.Min || v > d.Max {
				t.Fatalf("trait %s out of domain: %v", name, v)
			}
		}
	}
	if len(tr.String()) != 3 {
		t.Errorf("expected three-digit trait string, got %q", tr.String())
	}
}
