package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/config"
)

// RefreshEnvironment builds the resource pool for day. Food and shelter are
// drawn from the configured factors scaled by the target population; shelter
// already held by the population is subtracted. The previous day's fresh
// bodies become scavengeable; bodies nobody ate are dropped.
func RefreshEnvironment(prev *components.Environment, day int, population []*components.Individual, cfg *config.Config, rng *rand.Rand) *components.Environment {
	ec := cfg.Environment
	target := float64(cfg.Population.Target)

	foodFactor := ec.MinFoodFactor + rng.Float64()*(ec.MaxFoodFactor-ec.MinFoodFactor)
	shelterFactor := ec.MinShelterFactor + rng.Float64()*(ec.MaxShelterFactor-ec.MinShelterFactor)

	sheltered := 0
	for _, ind := range population {
		if ind.Sheltered {
			sheltered++
		}
	}

	env := &components.Environment{
		InitialFood:    int(math.Round(foodFactor * target)),
		InitialShelter: max(0, int(math.Round(shelterFactor*target))-sheltered),
	}
	env.Food = env.InitialFood
	env.Shelter = env.InitialShelter

	if prev != nil && len(prev.Fresh) > 0 {
		env.Bodies = append([]components.Body(nil), prev.Fresh...)
	}
	return env
}

// Migrants returns how many newcomers arrive when the living population is
// below the floor: between one and the shortfall, uniformly.
func Migrants(living int, cfg *config.Config, rng *rand.Rand) int {
	shortfall := cfg.Population.MigrationFloor - living
	if shortfall <= 0 {
		return 0
	}
	return 1 + rng.Intn(shortfall)
}
