package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/genetics"
	"github.com/pthm-cable/foodchain/traits"
)

type fakeWorld struct {
	day  int
	cfg  *config.Config
	rng  *rand.Rand
	env  *components.Environment
	pop  []*components.Individual
	next int
}

func newFakeWorld(day int) *fakeWorld {
	return &fakeWorld{
		day: day,
		cfg: config.Default(),
		rng: rand.New(rand.NewSource(42)),
		env: &components.Environment{Food: 10, Shelter: 5},
	}
}

func (w *fakeWorld) Day() int { return w.day }
func (w *fakeWorld) Config() *config.Config { return w.cfg }
func (w *fakeWorld) Rand() *rand.Rand { return w.rng }
func (w *fakeWorld) Environment() *components.Environment { return w.env }
func (w *fakeWorld) Individuals() []*components.Individual { return w.pop }
func (w *fakeWorld) Register(ind *components.Individual) {
	ind.ID = components.Name(w.next)
	w.next++
	w.pop = append(w.pop, ind)
}

func uniformChromosome(groups [][]string, v float64) genetics.Chromosome {
	d := genetics.DefaultDomain()
	genes := make(map[string]genetics.Gene)
	for _, group := range groups {
		for _, name := range group {
			genes[name] = genetics.NewGene(d, v)
		}
	}
	return genetics.MustChromosome(groups, genes)
}

// spawn registers an individual with uniform strategy weights and traits.
func (w *fakeWorld) spawn(diet traits.Diet, birthday int, weight, trait float64) *components.Individual {
	p := components.ParamsFromConfig(w.cfg)
	ind := components.NewIndividual(p, birthday,
		traits.NewStrategy(diet, uniformChromosome(traits.StrategyGroups, weight)),
		traits.NewTraits(uniformChromosome(traits.PhysicalGroups, trait)),
	)
	w.Register(ind)
	return ind
}

func (w *fakeWorld) adopt(parent, child *components.Individual) {
	child.Parent = parent.ID
	parent.Children = append(parent.Children, child)
}

func TestHuntCandidatesExcludesFamily(t *testing.T) {
	w := newFakeWorld(5)
	hunter := w.spawn(traits.Carnivore, 0, 2.0, 2.0)
	parent := w.spawn(traits.Carnivore, 0, 0.1, 0.1)
	c1 := w.spawn(traits.Carnivore, 1, 0.1, 0.1)
	c2 := w.spawn(traits.Carnivore, 1, 0.1, 0.1)
	unrelated := w.spawn(traits.Carnivore, 0, 0.1, 0.1)
	w.adopt(parent, hunter)
	w.adopt(hunter, c1)
	w.adopt(hunter, c2)

	population := []*components.Individual{hunter, c1, parent, unrelated}
	got := HuntCandidates(hunter, population, w.day, 1)
	if len(got) != 1 || got[0] != unrelated {
		ids := make([]string, len(got))
		for i, v := range got {
			ids[i] = v.ID
		}
		t.Fatalf("expected only %s, got %v", unrelated.ID, ids)
	}
}

func TestHuntCandidatesSparesSimilarStrategies(t *testing.T) {
	w := newFakeWorld(5)
	hunter := w.spawn(traits.Carnivore, 0, 1.05, 2.0)
	w.spawn(traits.Carnivore, 0, 1.25, 0.1) // one bucket away
	stranger := w.spawn(traits.Carnivore, 0, 0.1, 0.1)

	got := HuntCandidates(hunter, w.pop, w.day, 1)
	if len(got) != 1 || got[0] != stranger {
		t.Fatalf("expected only the stranger, got %d candidates", len(got))
	}
	if got := HuntCandidates(hunter, w.pop, w.day, 0); len(got) != 2 {
		t.Errorf("expected lookalike to be huntable at margin 0, got %d candidates", len(got))
	}
}

func TestHuntExecute(t *testing.T) {
	w := newFakeWorld(5)
	hunter := w.spawn(traits.Carnivore, 0, 2.0, 2.0)
	hunter.Energy = 3
	hunter.Sheltered = true
	w.env.Shelter = 0
	victim := w.spawn(traits.Herbivore, 0, 0.1, 0.1)

	a := &HuntAction{actor: hunter}
	if !a.Possible(w) {
		t.Fatal("expected hunt to be possible")
	}
	out := a.Execute(w)

	if out.Foiled || out.Victim != victim {
		t.Fatalf("expected successful hunt of %s", victim.ID)
	}
	if !victim.Eaten() || !victim.Dead() {
		t.Error("expected victim to be eaten and dead")
	}
	if hunter.Energy != 4 {
		t.Errorf("expected hunter energy clamped to 4, got %v", hunter.Energy)
	}
	if hunter.Sheltered || w.env.Shelter != 1 {
		t.Error("expected hunter to leave shelter and return the slot")
	}
	if len(w.env.Fresh) != 1 || w.env.Fresh[0].ID != victim.ID || w.env.Fresh[0].DeathDay != 5 {
		t.Errorf("expected a fresh body for %s, got %v", victim.ID, w.env.Fresh)
	}
	if a.String() != "left shelter, hunted "+victim.ID {
		t.Errorf("unexpected description %q", a.String())
	}
}

func TestHuntForbiddenForYoungAndHerbivores(t *testing.T) {
	w := newFakeWorld(5)
	w.spawn(traits.Herbivore, 0, 0.1, 0.1)

	young := w.spawn(traits.Carnivore, 4, 2.0, 2.0)
	young.Energy = 1
	if (&HuntAction{actor: young}).Possible(w) {
		t.Error("expected hunt to be impossible at age 1")
	}

	herbivore := w.spawn(traits.Herbivore, 0, 2.0, 2.0)
	herbivore.Energy = 1
	if (&HuntAction{actor: herbivore}).Possible(w) {
		t.Error("expected hunt to be impossible for herbivores")
	}
}

func TestHuntFoiledIsNoop(t *testing.T) {
	w := newFakeWorld(5)
	hunter := w.spawn(traits.Carnivore, 0, 2.0, 2.0)
	hunter.Energy = 1
	victim := w.spawn(traits.Herbivore, 0, 0.1, 0.1)

	a := &HuntAction{actor: hunter}
	if !a.Possible(w) {
		t.Fatal("expected hunt to be possible")
	}
	// Another actor killed the victim after the eligibility check.
	victim.Die(5, components.CauseEaten)

	out := a.Execute(w)
	if !out.Foiled {
		t.Error("expected the hunt to be foiled")
	}
	if hunter.Energy != 1 {
		t.Errorf("expected hunter energy unchanged, got %v", hunter.Energy)
	}
	if len(w.env.Fresh) != 0 {
		t.Error("expected no body from a foiled hunt")
	}
}

func TestGather(t *testing.T) {
	w := newFakeWorld(3)
	ind := w.spawn(traits.Omnivore, 0, 1, 1)
	ind.Energy = 2
	ind.Sheltered = true
	w.env.Food = 1
	w.env.Shelter = 0

	a := &GatherAction{actor: ind}
	if !a.Possible(w) {
		t.Fatal("expected gather to be possible")
	}
	a.Execute(w)
	if ind.Energy != 3 || w.env.Food != 0 || w.env.Shelter != 1 || ind.Sheltered {
		t.Errorf("unexpected state: energy %v food %d shelter %d", ind.Energy, w.env.Food, w.env.Shelter)
	}
	if a.Possible(w) {
		t.Error("expected gather to be impossible without food")
	}

	scav := w.spawn(traits.Scavenger, 0, 1, 1)
	scav.Energy = 0
	w.env.Food = 5
	if (&GatherAction{actor: scav}).Possible(w) {
		t.Error("expected scavengers not to gather")
	}
}

func TestScavenge(t *testing.T) {
	w := newFakeWorld(3)
	ind := w.spawn(traits.Scavenger, 0, 1, 1)
	ind.Energy = 1
	if (&ScavengeAction{actor: ind}).Possible(w) {
		t.Error("expected scavenge to be impossible without bodies")
	}

	w.env.Bodies = append(w.env.Bodies, components.Body{ID: "Zuz", NutritionalValue: 2.5, DeathDay: 2})
	a := &ScavengeAction{actor: ind}
	if !a.Possible(w) {
		t.Fatal("expected scavenge to be possible")
	}
	out := a.Execute(w)
	if ind.Energy != 3.5 {
		t.Errorf("expected energy 3.5, got %v", ind.Energy)
	}
	if len(w.env.Bodies) != 0 || out.Body == nil || out.Body.ID != "Zuz" {
		t.Error("expected the body to be consumed")
	}
}

func TestHide(t *testing.T) {
	w := newFakeWorld(3)
	ind := w.spawn(traits.Herbivore, 0, 1, 1)
	w.env.Shelter = 1

	a := &HideAction{actor: ind}
	if !a.Possible(w) {
		t.Fatal("expected hide to be possible")
	}
	a.Execute(w)
	if !ind.Sheltered || w.env.Shelter != 0 {
		t.Error("expected individual to take the last slot")
	}
	if a.Possible(w) {
		t.Error("expected hide to be impossible when already sheltered")
	}
}

func TestReproduceModes(t *testing.T) {
	w := newFakeWorld(4)
	ind := w.spawn(traits.Herbivore, 0, 1, 1)
	ind.Energy = 3.7

	a := &ReproduceAction{actor: ind}
	if !a.Possible(w) {
		t.Fatal("expected adult to reproduce")
	}
	out := a.Execute(w)
	if len(out.Births) != 1 || len(w.pop) != 2 {
		t.Fatalf("expected one registered child, got %d births", len(out.Births))
	}
	if out.Births[0].Parent != ind.ID || out.Births[0].Birthday != 4 {
		t.Error("expected child linked to parent and born today")
	}

	w.cfg.Reproduction.Mode = config.ReproducePerEnergy
	out = (&ReproduceAction{actor: ind}).Execute(w)
	if len(out.Births) != 3 {
		t.Errorf("expected three children for 3.7 energy, got %d", len(out.Births))
	}

	w.cfg.Reproduction.RequireShelter = true
	if (&ReproduceAction{actor: ind}).Possible(w) {
		t.Error("expected unsheltered individual not to reproduce")
	}
	ind.Sheltered = true
	if !(&ReproduceAction{actor: ind}).Possible(w) {
		t.Error("expected sheltered individual to reproduce")
	}

	young := w.spawn(traits.Herbivore, 3, 1, 1)
	if (&ReproduceAction{actor: young}).Possible(w) {
		t.Error("expected young individual not to reproduce")
	}
}

func TestFeedChildOnlyLiving(t *testing.T) {
	w := newFakeWorld(4)
	parent := w.spawn(traits.Herbivore, 0, 1, 1)
	parent.Energy = 2
	dead := w.spawn(traits.Herbivore, 2, 1, 1)
	w.adopt(parent, dead)
	dead.Die(3, components.CauseStarved)

	a := &FeedChildAction{actor: parent}
	if a.Possible(w) {
		t.Fatal("expected feeding to be impossible with only dead children")
	}

	living := w.spawn(traits.Herbivore, 2, 1, 1)
	living.Energy = 1
	w.adopt(parent, living)
	if !a.Possible(w) {
		t.Fatal("expected feeding to be possible")
	}
	a.Execute(w)
	if living.Energy != 2 {
		t.Errorf("expected child energy 2, got %v", living.Energy)
	}

	parent.Energy = 1
	if a.Possible(w) {
		t.Error("expected feeding to need energy above 1")
	}
}

func TestHuntedBodyScavengeableNextDay(t *testing.T) {
	w := newFakeWorld(5)
	hunter := w.spawn(traits.Carnivore, 0, 2.0, 2.0)
	hunter.Energy = 1
	victim := w.spawn(traits.Herbivore, 0, 0.1, 0.1)
	scav := w.spawn(traits.Scavenger, 5, 1, 1) // newborns cannot be hunted
	scav.Energy = 1

	hunt := &HuntAction{actor: hunter}
	if !hunt.Possible(w) {
		t.Fatal("expected hunt to be possible")
	}
	hunt.Execute(w)
	if !victim.Dead() {
		t.Fatal("expected the victim to die")
	}
	if NewActions(scav)[traits.Scavenge].Possible(w) {
		t.Error("expected the body to stay out of reach on the death day")
	}

	w.day++
	w.env = RefreshEnvironment(w.env, w.day, w.pop, w.cfg, w.rng)
	if !NewActions(scav)[traits.Scavenge].Possible(w) {
		t.Fatal("expected the body to be scavengeable the next day")
	}

	w.day++
	w.env = RefreshEnvironment(w.env, w.day, w.pop, w.cfg, w.rng)
	if len(w.env.Bodies) != 0 {
		t.Errorf("expected an uneaten body to be dropped after one day, got %v", w.env.Bodies)
	}
}
