package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/systems"
)

// spawnRandom registers a random individual born today.
func (w *World) spawnRandom(migrant bool) *components.Individual {
	ind := components.RandomIndividual(w.params, w.day, w.rng)
	w.register(ind, migrant)
	return ind
}

// Populate seeds the initial population. Random founders are created on the
// current day, then every individual bears one child per day for
// population.initial_days days. The founders are discarded afterwards so
// the population starts as their descendants.
func (w *World) Populate() {
	pc := w.cfg.Population
	foundingDay := w.day

	for i := 0; i < pc.InitialFounders; i++ {
		w.spawnRandom(false)
	}

	for d := 0; d < pc.InitialDays; d++ {
		w.day++
		parents := w.Living()
		for _, p := range parents {
			w.register(p.CreateChild(w.day, w.rng), false)
		}
	}

	if pc.InitialDays > 0 {
		w.removeWhere(func(ind *components.Individual) bool {
			return ind.Birthday == foundingDay
		})
	}

	w.env = systems.RefreshEnvironment(nil, w.day, w.Individuals(), w.cfg, w.rng)
	w.extinct = len(w.Living()) == 0
}

// archiveDead removes everyone who died on a previous day from the active
// registry. Their ids stay resolvable as departed for lineage pruning.
func (w *World) archiveDead() {
	w.depart(w.registry.removeDead())
}

// removeWhere drops matching individuals from the registry.
func (w *World) removeWhere(match func(*components.Individual) bool) {
	w.depart(w.registry.removeWhere(func(_ ecs.Entity, ind *components.Individual) bool {
		return match(ind)
	}))
}

func (w *World) depart(removed []*components.Individual) {
	for _, ind := range removed {
		w.departed[ind.ID] = w.day
		w.lifetime.Remove(ind.ID)
	}
}

// pruneLineage clears parent ids of individuals whose parent left the
// registry more than lineage.parent_retention_days ago, and drops child
// subtrees in which everyone is dead and archived.
func (w *World) pruneLineage() {
	retention := w.cfg.Lineage.ParentRetentionDays

	for _, ind := range w.Individuals() {
		if ind.Parent != "" {
			if left, ok := w.departed[ind.Parent]; ok && w.day-left > retention {
				ind.Parent = ""
			}
		}
		if len(ind.Children) > 0 {
			kept := ind.Children[:0]
			for _, c := range ind.Children {
				if !w.archivedSubtree(c) {
					kept = append(kept, c)
				}
			}
			for i := len(kept); i < len(ind.Children); i++ {
				ind.Children[i] = nil
			}
			ind.Children = kept
		}
	}

	for id, left := range w.departed {
		if w.day-left > retention {
			delete(w.departed, id)
		}
	}
}

// archivedSubtree reports whether ind and all its descendants are dead and
// out of the registry.
func (w *World) archivedSubtree(ind *components.Individual) bool {
	if ind.Alive() || w.registry.lookup(ind.ID) != nil {
		return false
	}
	for _, c := range ind.Children {
		if !w.archivedSubtree(c) {
			return false
		}
	}
	return true
}
