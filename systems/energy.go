package systems

import (
	"github.com/pthm-cable/foodchain/components"
)

// Metabolize deducts the daily energy need. It applies whether or not the
// individual acted.
func Metabolize(ind *components.Individual) {
	ind.Spend(ind.Traits.EnergyNeed())
}

// Starve kills every living individual past its birth day whose energy ran
// out, releasing any shelter slot it held. With starved bodies enabled the
// dead are left for scavengers. It returns the individuals that died.
func Starve(w World) []*components.Individual {
	day := w.Day()
	env := w.Environment()
	starvedBodies := w.Config().Environment.StarvedBodies

	var starved []*components.Individual
	for _, ind := range w.Individuals() {
		if ind.Dead() || ind.Energy > 0 || ind.Age(day) == 0 {
			continue
		}
		ind.Die(day, components.CauseStarved)
		leaveShelter(ind, env)
		if starvedBodies {
			env.AddBody(components.BodyOf(ind, day))
		}
		starved = append(starved, ind)
	}
	return starved
}
