package systems

import (
	"math"
	"strings"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/traits"
)

// ReproduceAction creates and registers children with mutated genetics.
type ReproduceAction struct {
	actor    *components.Individual
	children []*components.Individual
}

func (a *ReproduceAction) Kind() traits.ActionKind { return traits.Reproduce }

func (a *ReproduceAction) Possible(w World) bool {
	rc := w.Config().Reproduction
	if !a.actor.Adult(w.Day()) || a.actor.Energy <= rc.MinEnergy {
		return false
	}
	if rc.RequireShelter && !a.actor.Sheltered {
		return false
	}
	return litterSize(a.actor, rc) > 0
}

func (a *ReproduceAction) Execute(w World) Outcome {
	n := litterSize(a.actor, w.Config().Reproduction)
	for i := 0; i < n; i++ {
		child := a.actor.CreateChild(w.Day(), w.Rand())
		w.Register(child)
		a.children = append(a.children, child)
	}
	return Outcome{Kind: traits.Reproduce, Births: a.children}
}

func (a *ReproduceAction) String() string {
	ids := make([]string, len(a.children))
	for i, c := range a.children {
		ids[i] = c.ID
	}
	return "bore " + strings.Join(ids, " ")
}

// litterSize is the number of children one reproduction event produces.
func litterSize(ind *components.Individual, rc config.ReproductionConfig) int {
	if rc.Mode == config.ReproducePerEnergy {
		return int(math.Floor(ind.Energy))
	}
	return 1
}
