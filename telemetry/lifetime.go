package telemetry

import "github.com/pthm-cable/foodchain/components"

// LifetimeStats tracks per-individual statistics over its lifetime.
type LifetimeStats struct {
	Birthday int
	Migrant  bool

	Kills     int
	Gathers   int
	Scavenges int
	Feeds     int
	Litters   int

	PeakEnergy float64
}

// LifetimeTracker manages per-individual lifetime statistics, keyed by id.
type LifetimeTracker struct {
	stats map[string]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[string]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new individual.
func (lt *LifetimeTracker) Register(ind *components.Individual, migrant bool) {
	lt.stats[ind.ID] = &LifetimeStats{
		Birthday:   ind.Birthday,
		Migrant:    migrant,
		PeakEnergy: ind.Energy,
	}
}

// Get returns the lifetime stats for an individual, or nil if not tracked.
func (lt *LifetimeTracker) Get(id string) *LifetimeStats {
	return lt.stats[id]
}

// Len returns the number of tracked individuals.
func (lt *LifetimeTracker) Len() int {
	return len(lt.stats)
}

// Remove removes an individual's stats and returns them.
func (lt *LifetimeTracker) Remove(id string) *LifetimeStats {
	s := lt.stats[id]
	delete(lt.stats, id)
	return s
}

// RecordKill increments the kill count.
func (lt *LifetimeTracker) RecordKill(id string) {
	if s := lt.stats[id]; s != nil {
		s.Kills++
	}
}

// RecordGather increments the gather count.
func (lt *LifetimeTracker) RecordGather(id string) {
	if s := lt.stats[id]; s != nil {
		s.Gathers++
	}
}

// RecordScavenge increments the scavenge count.
func (lt *LifetimeTracker) RecordScavenge(id string) {
	if s := lt.stats[id]; s != nil {
		s.Scavenges++
	}
}

// RecordFeed increments the count of meals given to children.
func (lt *LifetimeTracker) RecordFeed(id string) {
	if s := lt.stats[id]; s != nil {
		s.Feeds++
	}
}

// RecordLitter increments the count of successful reproductions.
func (lt *LifetimeTracker) RecordLitter(id string) {
	if s := lt.stats[id]; s != nil {
		s.Litters++
	}
}

// UpdateEnergy tracks peak energy.
func (lt *LifetimeTracker) UpdateEnergy(id string, energy float64) {
	if s := lt.stats[id]; s != nil && energy > s.PeakEnergy {
		s.PeakEnergy = energy
	}
}

// DeathRecord is one row of deaths.csv.
type DeathRecord struct {
	Day        int     `csv:"day"`
	ID         string  `csv:"id"`
	Diet       string  `csv:"diet"`
	Cause      string  `csv:"cause"`
	Age        int     `csv:"age"`
	Parent     string  `csv:"parent"`
	Migrant    bool    `csv:"migrant"`
	Children   int     `csv:"children"`
	Offspring  int     `csv:"offspring"`
	Kills      int     `csv:"kills"`
	Gathers    int     `csv:"gathers"`
	Scavenges  int     `csv:"scavenges"`
	Feeds      int     `csv:"feeds"`
	Litters    int     `csv:"litters"`
	PeakEnergy float64 `csv:"peak_energy"`
	Strategy   string  `csv:"strategy"`
	Traits     string  `csv:"traits"`
}

// Die removes the dead individual's stats and returns its death record.
// Untracked individuals get a record with zero lifetime counters.
func (lt *LifetimeTracker) Die(ind *components.Individual) DeathRecord {
	day, _ := ind.DeathDay()
	rec := DeathRecord{
		Day:       day,
		ID:        ind.ID,
		Diet:      ind.Diet().String(),
		Cause:     ind.Cause().String(),
		Age:       ind.Age(day),
		Parent:    ind.Parent,
		Children:  len(ind.Children),
		Offspring: ind.OffspringSum(),
		Strategy:  ind.Strategy.String(),
		Traits:    ind.Traits.String(),
	}
	if s := lt.Remove(ind.ID); s != nil {
		rec.Migrant = s.Migrant
		rec.Kills = s.Kills
		rec.Gathers = s.Gathers
		rec.Scavenges = s.Scavenges
		rec.Feeds = s.Feeds
		rec.Litters = s.Litters
		rec.PeakEnergy = s.PeakEnergy
	}
	return rec
}
