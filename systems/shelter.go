package systems

import (
	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/traits"
)

// HideAction claims a shelter slot, which protects from predation.
type HideAction struct {
	actor *components.Individual
}

func (a *HideAction) Kind() traits.ActionKind { return traits.Hide }

func (a *HideAction) Possible(w World) bool {
	return !a.actor.Sheltered && w.Environment().Shelter > 0
}

func (a *HideAction) Execute(w World) Outcome {
	if w.Environment().TakeShelter() {
		a.actor.Sheltered = true
	}
	return Outcome{Kind: traits.Hide}
}

func (a *HideAction) String() string { return "hid" }
