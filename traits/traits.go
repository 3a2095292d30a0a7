// Package traits defines organism behaviors and characteristics: diet,
// physical traits and the action strategy.
package traits

import (
	"fmt"
	"math/rand"
)

// Diet constrains which feeding actions an organism may ever attempt.
type Diet uint8

const (
	Herbivore Diet = iota // Gathers food
	Carnivore             // Hunts
	Omnivore              // Gathers and hunts
	Scavenger             // Eats bodies
)

// Diets lists every diet in declaration order.
var Diets = []Diet{Herbivore, Carnivore, Omnivore, Scavenger}

// RandomDiet picks a diet uniformly.
func RandomDiet(rng *rand.Rand) Diet {
	return Diets[rng.Intn(len(Diets))]
}

// CanGather reports whether the diet allows gathering.
func (d Diet) CanGather() bool {
	return d == Herbivore || d == Omnivore
}

// CanHunt reports whether the diet allows hunting.
func (d Diet) CanHunt() bool {
	return d == Carnivore || d == Omnivore
}

// CanScavenge reports whether the diet allows scavenging.
func (d Diet) CanScavenge() bool {
	return d == Scavenger
}

func (d Diet) String() string {
	switch d {
	case Herbivore:
		return "Herbivore"
	case Carnivore:
		return "Carnivore"
	case Omnivore:
		return "Omnivore"
	case Scavenger:
		return "Scavenger"
	default:
		return fmt.Sprintf("Diet(%d)", d)
	}
}

// MarshalText encodes the diet by name.
func (d Diet) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// hueCenter is the base hue, in degrees, strategies of this diet are drawn around.
func (d Diet) hueCenter() float64 {
	switch d {
	case Carnivore:
		return 10 // red
	case Herbivore:
		return 120 // green
	case Omnivore:
		return 210 // blue
	case Scavenger:
		return 300 // purple
	default:
		return 0
	}
}
