package components

// Environment is the shared resource pool for one day. Food and shelter
// never go below zero: callers check availability before taking.
type Environment struct {
	InitialFood    int
	Food           int
	InitialShelter int
	Shelter        int
	Bodies         []Body // Scavengeable today
	Fresh          []Body // Died today, scavengeable after the next refresh
}

// EnvironmentSnapshot is a read-only view of the environment for reports.
type EnvironmentSnapshot struct {
	InitialFood    int `json:"initial_food"`
	Food           int `json:"food"`
	InitialShelter int `json:"initial_shelter"`
	Shelter        int `json:"shelter"`
	Bodies         int `json:"bodies"`
	FreshBodies    int `json:"fresh_bodies"`
}

// TakeFood removes one unit of food if any is left.
func (e *Environment) TakeFood() bool {
	if e.Food <= 0 {
		return false
	}
	e.Food--
	return true
}

// TakeShelter claims one shelter slot if any is left.
func (e *Environment) TakeShelter() bool {
	if e.Shelter <= 0 {
		return false
	}
	e.Shelter--
	return true
}

// ReturnShelter gives a shelter slot back to the pool.
func (e *Environment) ReturnShelter() {
	e.Shelter++
}

// AddBody deposits the body of someone who died today. It becomes
// scavengeable on the next day.
func (e *Environment) AddBody(b Body) {
	e.Fresh = append(e.Fresh, b)
}

// TakeBody removes and returns the body at index i.
func (e *Environment) TakeBody(i int) Body {
	b := e.Bodies[i]
	e.Bodies = append(e.Bodies[:i:i], e.Bodies[i+1:]...)
	return b
}

// Snapshot returns the current pool levels.
func (e *Environment) Snapshot() EnvironmentSnapshot {
	return EnvironmentSnapshot{
		InitialFood:    e.InitialFood,
		Food:           e.Food,
		InitialShelter: e.InitialShelter,
		Shelter:        e.Shelter,
		Bodies:         len(e.Bodies),
		FreshBodies:    len(e.Fresh),
	}
}
