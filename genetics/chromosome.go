package genetics

import (
	"fmt"
	"math/rand"
	"strings"
)

// Chromosome is a set of named genes. Groups fix the display and iteration
// order; every name in Groups has a gene.
type Chromosome struct {
	groups [][]string
	genes  map[string]Gene
}

// NewChromosome builds a chromosome, failing if a grouped name has no gene.
func NewChromosome(groups [][]string, genes map[string]Gene) (Chromosome, error) {
	for _, group := range groups {
		for _, name := range group {
			if _, ok := genes[name]; !ok {
				return Chromosome{}, fmt.Errorf("chromosome: no gene for %q", name)
			}
		}
	}
	cp := make(map[string]Gene, len(genes))
	for k, v := range genes {
		cp[k] = v
	}
	return Chromosome{groups: groups, genes: cp}, nil
}

// MustChromosome is NewChromosome for fixed gene sets.
func MustChromosome(groups [][]string, genes map[string]Gene) Chromosome {
	c, err := NewChromosome(groups, genes)
	if err != nil {
		panic(err)
	}
	return c
}

// RandomChromosome draws a fresh random gene for every grouped name.
func RandomChromosome(groups [][]string, d Domain, rng *rand.Rand) Chromosome {
	genes := make(map[string]Gene)
	for _, group := range groups {
		for _, name := range group {
			genes[name] = RandomGene(d, rng)
		}
	}
	return Chromosome{groups: groups, genes: genes}
}

// Groups returns the gene name groups.
func (c Chromosome) Groups() [][]string { return c.groups }

// Names returns every grouped gene name in order.
func (c Chromosome) Names() []string {
	var names []string
	for _, group := range c.groups {
		names = append(names, group...)
	}
	return names
}

// Gene returns the named gene.
func (c Chromosome) Gene(name string) (Gene, bool) {
	g, ok := c.genes[name]
	return g, ok
}

// With returns a copy with the named gene replaced.
func (c Chromosome) With(name string, g Gene) Chromosome {
	genes := make(map[string]Gene, len(c.genes)+1)
	for k, v := range c.genes {
		genes[k] = v
	}
	genes[name] = g
	return Chromosome{groups: c.groups, genes: genes}
}

// Mutate returns a copy with every gene mutated independently.
// Genes are visited in group order so a seeded source gives repeatable results.
func (c Chromosome) Mutate(rng *rand.Rand) Chromosome {
	genes := make(map[string]Gene, len(c.genes))
	for _, name := range c.Names() {
		genes[name] = c.genes[name].Mutate(rng)
	}
	return Chromosome{groups: c.groups, genes: genes}
}

// Similar reports whether every gene of a differs from its counterpart in b
// by at most margin buckets.
func Similar(a, b Chromosome, margin int) bool {
	for _, name := range a.Names() {
		ga := a.genes[name]
		gb, ok := b.genes[name]
		if !ok {
			return false
		}
		if Difference(ga, gb) > margin {
			return false
		}
	}
	return true
}

// String concatenates bucket digits per group and joins groups with "-".
func (c Chromosome) String() string {
	parts := make([]string, len(c.groups))
	for i, group := range c.groups {
		var sb strings.Builder
		for _, name := range group {
			sb.WriteString(c.genes[name].String())
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, "-")
}
