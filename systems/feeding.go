package systems

import (
	"log/slog"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/traits"
)

// GatherAction eats one unit of food from the pool.
type GatherAction struct {
	actor       *components.Individual
	leftShelter bool
}

func (a *GatherAction) Kind() traits.ActionKind { return traits.Gather }

func (a *GatherAction) Possible(w World) bool {
	return a.actor.Hungry() && a.actor.Diet().CanGather() && w.Environment().Food > 0
}

func (a *GatherAction) Execute(w World) Outcome {
	env := w.Environment()
	a.leftShelter = leaveShelter(a.actor, env)
	if env.TakeFood() {
		a.actor.Eat(1)
	}
	return Outcome{Kind: traits.Gather, LeftShelter: a.leftShelter}
}

func (a *GatherAction) String() string {
	return shelterPrefix(a.leftShelter) + "gathered"
}

// HuntAction kills and eats another individual.
type HuntAction struct {
	actor       *components.Individual
	candidates  []*components.Individual
	victim      *components.Individual
	foiled      bool
	leftShelter bool
}

func (a *HuntAction) Kind() traits.ActionKind { return traits.Hunt }

func (a *HuntAction) Possible(w World) bool {
	day := w.Day()
	if !a.actor.Hungry() || !a.actor.Diet().CanHunt() || a.actor.Age(day) <= 1 {
		return false
	}
	a.candidates = HuntCandidates(a.actor, w.Individuals(), day, w.Config().Kinship.SimilarityMargin)
	return len(a.candidates) > 0
}

func (a *HuntAction) Execute(w World) Outcome {
	env := w.Environment()
	day := w.Day()
	a.leftShelter = leaveShelter(a.actor, env)
	a.victim = a.candidates[w.Rand().Intn(len(a.candidates))]

	out := Outcome{Kind: traits.Hunt, LeftShelter: a.leftShelter, Victim: a.victim}
	if !a.victim.CanBeHuntedBy(a.actor, day) {
		a.foiled = true
		out.Foiled = true
		slog.Debug("hunt_foiled", "day", day, "hunter", a.actor.ID, "victim", a.victim.ID)
		return out
	}

	a.actor.Eat(a.victim.Traits.NutritionalValue())
	a.victim.Die(day, components.CauseEaten)
	leaveShelter(a.victim, env)
	env.AddBody(components.BodyOf(a.victim, day))
	return out
}

func (a *HuntAction) String() string {
	switch {
	case a.victim == nil:
		return shelterPrefix(a.leftShelter) + "hunted nothing"
	case a.foiled:
		return shelterPrefix(a.leftShelter) + "lost " + a.victim.ID
	default:
		return shelterPrefix(a.leftShelter) + "hunted " + a.victim.ID
	}
}

// HuntCandidates filters the population down to the individuals hunter may
// hunt today. Self, direct parent and children, and anyone whose strategy is
// within margin of the hunter's are spared as family before the escape rule
// is applied.
func HuntCandidates(hunter *components.Individual, population []*components.Individual, today, margin int) []*components.Individual {
	var out []*components.Individual
	for _, v := range population {
		if v == hunter || v.ID == hunter.ID {
			continue
		}
		if hunter.Related(v) {
			continue
		}
		if traits.SimilarWithin(v.Strategy, hunter.Strategy, margin) {
			continue
		}
		if !v.CanBeHuntedBy(hunter, today) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ScavengeAction eats a body left by a recent death.
type ScavengeAction struct {
	actor       *components.Individual
	body        components.Body
	leftShelter bool
}

func (a *ScavengeAction) Kind() traits.ActionKind { return traits.Scavenge }

func (a *ScavengeAction) Possible(w World) bool {
	return a.actor.Diet().CanScavenge() && a.actor.Hungry() && len(w.Environment().Bodies) > 0
}

func (a *ScavengeAction) Execute(w World) Outcome {
	env := w.Environment()
	a.leftShelter = leaveShelter(a.actor, env)
	a.body = env.TakeBody(w.Rand().Intn(len(env.Bodies)))
	a.actor.Eat(a.body.NutritionalValue)
	body := a.body
	return Outcome{Kind: traits.Scavenge, LeftShelter: a.leftShelter, Body: &body}
}

func (a *ScavengeAction) String() string {
	return shelterPrefix(a.leftShelter) + "scavenged " + a.body.ID
}

// FeedChildAction gives one unit of energy to a living child.
type FeedChildAction struct {
	actor *components.Individual
	child *components.Individual
}

func (a *FeedChildAction) Kind() traits.ActionKind { return traits.FeedChild }

func (a *FeedChildAction) Possible(w World) bool {
	return a.actor.Energy > 1 && len(a.actor.LivingChildren()) > 0
}

func (a *FeedChildAction) Execute(w World) Outcome {
	living := a.actor.LivingChildren()
	a.child = living[w.Rand().Intn(len(living))]
	a.child.Eat(1)
	return Outcome{Kind: traits.FeedChild, Victim: a.child}
}

func (a *FeedChildAction) String() string {
	if a.child == nil {
		return "fed nobody"
	}
	return "fed " + a.child.ID
}
