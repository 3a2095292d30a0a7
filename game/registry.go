package game

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/foodchain/components"
)

// registry stores the active individuals as ECS entities. Every entity has a
// Member; living ones also carry the Alive tag. Individuals keep their
// children as plain pointers, so lineage survives removal of the entity.
type registry struct {
	world *ecs.World

	spawner  *ecs.Map2[components.Member, components.Alive]
	members  *ecs.Map1[components.Member]
	alive    *ecs.Map[components.Alive]
	all      *ecs.Filter1[components.Member]
	living   *ecs.Filter2[components.Member, components.Alive]
	entities map[string]ecs.Entity

	seq   int
	cache []*components.Individual
	dirty bool
}

func newRegistry() *registry {
	world := ecs.NewWorld()
	return &registry{
		world:    world,
		spawner:  ecs.NewMap2[components.Member, components.Alive](world),
		members:  ecs.NewMap1[components.Member](world),
		alive:    ecs.NewMap[components.Alive](world),
		all:      ecs.NewFilter1[components.Member](world),
		living:   ecs.NewFilter2[components.Member, components.Alive](world),
		entities: make(map[string]ecs.Entity),
	}
}

// add creates the entity for ind. The individual must already have its id.
func (r *registry) add(ind *components.Individual) {
	m := components.Member{Ind: ind, Seq: r.seq}
	r.seq++
	var e ecs.Entity
	if ind.Alive() {
		e = r.spawner.NewEntity(&m, &components.Alive{})
	} else {
		e = r.members.NewEntity(&m)
	}
	r.entities[ind.ID] = e
	r.dirty = true
}

// lookup returns the active individual with the given id, or nil.
func (r *registry) lookup(id string) *components.Individual {
	e, ok := r.entities[id]
	if !ok {
		return nil
	}
	return r.members.Get(e).Ind
}

// individuals returns every active individual in registration order. The
// slice is shared until the next structural change.
func (r *registry) individuals() []*components.Individual {
	if !r.dirty && r.cache != nil {
		return r.cache
	}
	var members []components.Member
	query := r.all.Query()
	for query.Next() {
		members = append(members, *query.Get())
	}
	r.cache = sortedIndividuals(members)
	r.dirty = false
	return r.cache
}

// sweep drops the Alive tag of every tagged individual that has died.
func (r *registry) sweep() {
	var died []ecs.Entity
	query := r.living.Query()
	for query.Next() {
		m, _ := query.Get()
		if m.Ind.Dead() {
			died = append(died, query.Entity())
		}
	}
	for _, e := range died {
		r.alive.Remove(e)
	}
}

// livingIndividuals returns the Alive-tagged individuals in registration order.
func (r *registry) livingIndividuals() []*components.Individual {
	r.sweep()
	var members []components.Member
	query := r.living.Query()
	for query.Next() {
		m, _ := query.Get()
		members = append(members, *m)
	}
	return sortedIndividuals(members)
}

// removeDead removes every entity without the Alive tag and returns the
// removed individuals.
func (r *registry) removeDead() []*components.Individual {
	r.sweep()
	return r.removeWhere(func(e ecs.Entity, _ *components.Individual) bool {
		return !r.alive.Has(e)
	})
}

// removeWhere removes matching entities and returns their individuals in
// registration order.
func (r *registry) removeWhere(match func(ecs.Entity, *components.Individual) bool) []*components.Individual {
	var entities []ecs.Entity
	var members []components.Member
	query := r.all.Query()
	for query.Next() {
		m := query.Get()
		if match(query.Entity(), m.Ind) {
			entities = append(entities, query.Entity())
			members = append(members, *m)
		}
	}

	for i, e := range entities {
		r.world.RemoveEntity(e)
		delete(r.entities, members[i].Ind.ID)
	}
	if len(entities) > 0 {
		r.dirty = true
	}
	return sortedIndividuals(members)
}

func sortedIndividuals(members []components.Member) []*components.Individual {
	sort.Slice(members, func(i, j int) bool { return members[i].Seq < members[j].Seq })
	out := make([]*components.Individual, len(members))
	for i, m := range members {
		out[i] = m.Ind
	}
	return out
}
