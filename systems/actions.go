// Package systems implements the daily actions and the per-day world phases.
package systems

import (
	"math/rand"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/traits"
)

// World is the simulation state actions read and mutate. All calls happen on
// the goroutine running the tick.
type World interface {
	Day() int
	Config() *config.Config
	Rand() *rand.Rand
	Environment() *components.Environment
	// Individuals returns the active registry in registration order.
	Individuals() []*components.Individual
	// Register assigns the next id and adds ind to the registry.
	Register(ind *components.Individual)
}

// Outcome reports what an executed action did, for bookkeeping.
type Outcome struct {
	Kind        traits.ActionKind
	LeftShelter bool
	Foiled      bool                     // Hunt victim was no longer valid
	Victim      *components.Individual   // Hunt victim, or the fed child
	Body        *components.Body         // Scavenged body
	Births      []*components.Individual // Registered children
}

// Action is one thing an individual can do on its turn. Possible may cache
// data for Execute; Execute must only be called right after Possible
// returned true in the same turn.
type Action interface {
	Kind() traits.ActionKind
	Possible(w World) bool
	Execute(w World) Outcome
	String() string
}

// NewActions returns one action of every kind for the actor, in ActionKinds order.
func NewActions(actor *components.Individual) []Action {
	actions := make([]Action, 0, len(traits.ActionKinds))
	for _, kind := range traits.ActionKinds {
		actions = append(actions, newAction(kind, actor))
	}
	return actions
}

func newAction(kind traits.ActionKind, actor *components.Individual) Action {
	switch kind {
	case traits.Gather:
		return &GatherAction{actor: actor}
	case traits.Hunt:
		return &HuntAction{actor: actor}
	case traits.Scavenge:
		return &ScavengeAction{actor: actor}
	case traits.Hide:
		return &HideAction{actor: actor}
	case traits.Reproduce:
		return &ReproduceAction{actor: actor}
	case traits.FeedChild:
		return &FeedChildAction{actor: actor}
	default:
		panic("systems: unknown action kind " + kind.String())
	}
}

// leaveShelter returns the actor's shelter slot to the pool if it held one.
func leaveShelter(actor *components.Individual, env *components.Environment) bool {
	if actor.LeaveShelter() {
		env.ReturnShelter()
		return true
	}
	return false
}

func shelterPrefix(left bool) string {
	if left {
		return "left shelter, "
	}
	return ""
}
