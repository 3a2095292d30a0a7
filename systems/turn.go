package systems

import (
	"math/rand"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/traits"
)

// NoAction describes a turn in which nothing was possible or chosen.
const NoAction = "x"

// EatenAction replaces the last action of someone eaten before its turn.
const EatenAction = "eaten"

// TurnOrder returns the living individuals past their birth day in a
// uniformly random order.
func TurnOrder(population []*components.Individual, day int, rng *rand.Rand) []*components.Individual {
	order := make([]*components.Individual, 0, len(population))
	for _, ind := range population {
		if ind.Alive() && ind.Age(day) > 0 {
			order = append(order, ind)
		}
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// TakeTurn lets ind act once: the possible actions are collected, the
// strategy picks one and it is executed. Energy need is deducted either way.
// The second result is false for a no-op turn. Individuals that died earlier
// in the day do nothing and are not charged.
func TakeTurn(ind *components.Individual, w World) (Outcome, bool) {
	if ind.Dead() {
		ind.LastAction = EatenAction
		return Outcome{}, false
	}

	var possible []Action
	var kinds []traits.ActionKind
	for _, a := range NewActions(ind) {
		if a.Possible(w) {
			possible = append(possible, a)
			kinds = append(kinds, a.Kind())
		}
	}

	var out Outcome
	acted := false
	if idx, ok := ind.Strategy.Decide(kinds, w.Rand()); ok {
		chosen := possible[idx]
		out = chosen.Execute(w)
		ind.LastAction = chosen.String()
		acted = true
	} else {
		ind.LastAction = NoAction
	}

	Metabolize(ind)
	return out, acted
}
