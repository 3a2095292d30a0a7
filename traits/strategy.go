package traits

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/foodchain/genetics"
)

// ActionKind identifies one of the actions an organism can take in a day.
type ActionKind uint8

const (
	Gather ActionKind = iota
	Hunt
	Scavenge
	Hide
	Reproduce
	FeedChild

	numActionKinds
)

// ActionKinds lists every action kind in evaluation order.
var ActionKinds = []ActionKind{Gather, Hunt, Scavenge, Hide, Reproduce, FeedChild}

// weightSlots maps each action kind to its strategy gene.
var weightSlots = [numActionKinds]string{
	Gather:    "gather",
	Hunt:      "hunt",
	Scavenge:  "scavenge",
	Hide:      "hide",
	Reproduce: "reproduce",
	FeedChild: "feed_child",
}

// actionHues places each weight gene on the colour wheel, in degrees.
var actionHues = map[string]float64{
	"feed_child": 0,
	"gather":     103,
	"hide":       154,
	"hunt":       206,
	"reproduce":  257,
	"scavenge":   309,
}

// StrategyGroups is the gene layout of a strategy: feeding, then survival.
var StrategyGroups = [][]string{
	{weightSlots[Gather], weightSlots[Hunt], weightSlots[Scavenge]},
	{weightSlots[Hide], weightSlots[Reproduce], weightSlots[FeedChild]},
}

// Slot returns the strategy gene name for the kind, or "" for an unknown kind.
func (k ActionKind) Slot() string {
	if k >= numActionKinds {
		return ""
	}
	return weightSlots[k]
}

func (k ActionKind) String() string {
	switch k {
	case Gather:
		return "Gather"
	case Hunt:
		return "Hunt"
	case Scavenge:
		return "Scavenge"
	case Hide:
		return "Hide"
	case Reproduce:
		return "Reproduce"
	case FeedChild:
		return "FeedChild"
	default:
		return fmt.Sprintf("ActionKind(%d)", k)
	}
}

// Strategy is the chromosome of action weights together with the diet that
// constrains it. Weights of actions the diet forbids are null.
type Strategy struct {
	diet       Diet
	chromosome genetics.Chromosome
}

// NewStrategy nulls the weights the diet forbids.
func NewStrategy(diet Diet, c genetics.Chromosome) Strategy {
	nullIf := func(c genetics.Chromosome, kind ActionKind, forbidden bool) genetics.Chromosome {
		if !forbidden {
			return c
		}
		g, _ := c.Gene(kind.Slot())
		return c.With(kind.Slot(), genetics.NullGene(g.Domain()))
	}
	c = nullIf(c, Gather, !diet.CanGather())
	c = nullIf(c, Hunt, !diet.CanHunt())
	c = nullIf(c, Scavenge, !diet.CanScavenge())
	return Strategy{diet: diet, chromosome: c}
}

// RandomStrategy draws random weights for the diet.
func RandomStrategy(diet Diet, d genetics.Domain, rng *rand.Rand) Strategy {
	return NewStrategy(diet, genetics.RandomChromosome(StrategyGroups, d, rng))
}

// Mutate returns a mutated strategy with the same diet.
func (s Strategy) Mutate(rng *rand.Rand) Strategy {
	return NewStrategy(s.diet, s.chromosome.Mutate(rng))
}

// Diet returns the strategy's diet.
func (s Strategy) Diet() Diet { return s.diet }

// Chromosome returns the underlying chromosome.
func (s Strategy) Chromosome() genetics.Chromosome { return s.chromosome }

// WeightGene returns the gene behind an action kind.
func (s Strategy) WeightGene(kind ActionKind) (genetics.Gene, bool) {
	return s.chromosome.Gene(kind.Slot())
}

// Weight returns the selection weight of an action kind. Kinds without an
// active gene weigh 1.
func (s Strategy) Weight(kind ActionKind) float64 {
	g, ok := s.WeightGene(kind)
	if !ok {
		return 1
	}
	v, active := g.Value()
	if !active {
		return 1
	}
	return v
}

// Decide picks one of the eligible kinds with probability proportional to its
// weight and returns its index. It returns false for an empty list. When every
// eligible weight is zero the choice falls back to uniform.
func (s Strategy) Decide(eligible []ActionKind, rng *rand.Rand) (int, bool) {
	if len(eligible) == 0 {
		return 0, false
	}

	total := 0.0
	for _, kind := range eligible {
		total += s.Weight(kind)
	}
	if total <= 0 {
		slog.Warn("decide_zero_weight", "diet", s.diet.String(), "eligible", len(eligible))
		return rng.Intn(len(eligible)), true
	}

	remaining := rng.Float64() * total
	for i, kind := range eligible {
		w := s.Weight(kind)
		if remaining < w {
			return i, true
		}
		remaining -= w
	}
	// Float rounding can leave a sliver past the last slice.
	return len(eligible) - 1, true
}

// Similar reports family resemblance: every weight within one bucket.
func Similar(a, b Strategy) bool {
	return SimilarWithin(a, b, 1)
}

// SimilarWithin compares two strategies with an explicit bucket margin.
func SimilarWithin(a, b Strategy, margin int) bool {
	return genetics.Similar(a.chromosome, b.chromosome, margin)
}

func (s Strategy) String() string {
	return s.chromosome.String()
}
