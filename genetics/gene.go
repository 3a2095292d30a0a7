// Package genetics provides bounded genes and named gene collections.
package genetics

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/pthm-cable/foodchain/config"
)

// Buckets is the number of display/comparison buckets a gene value is quantized into.
const Buckets = 10

// Domain is the value range and mutation parameters shared by a set of genes.
type Domain struct {
	Min        float64
	Max        float64
	ShiftRange float64
	FlipChance float64
}

// DomainFromConfig builds a Domain from the gene config section.
func DomainFromConfig(c config.GeneConfig) Domain {
	return Domain{
		Min:        c.Min,
		Max:        c.Max,
		ShiftRange: c.ShiftRange,
		FlipChance: c.FlipChance,
	}
}

// DefaultDomain returns the canonical 0.1 to 2.0 domain.
func DefaultDomain() Domain {
	return Domain{Min: 0.1, Max: 2.0, ShiftRange: 0.5, FlipChance: 0.05}
}

func (d Domain) normalize(v float64) float64 {
	return (v - d.Min) / (d.Max - d.Min)
}

func (d Domain) denormalize(n float64) float64 {
	return d.Min + n*(d.Max-d.Min)
}

func (d Domain) clamp(v float64) float64 {
	return math.Max(d.Min, math.Min(d.Max, v))
}

// Gene is a single bounded scalar, or null when the owner cannot use it.
// Genes are values; every operation returns a new Gene.
type Gene struct {
	value  float64
	active bool
	domain Domain
}

// NewGene returns an active gene. The value is not clamped so callers can
// build fixtures outside the domain.
func NewGene(d Domain, v float64) Gene {
	return Gene{value: v, active: true, domain: d}
}

// NullGene returns an inactive gene.
func NullGene(d Domain) Gene {
	return Gene{domain: d}
}

// RandomGene samples uniformly in [d.Min, d.Max].
func RandomGene(d Domain, rng *rand.Rand) Gene {
	return NewGene(d, d.Min+rng.Float64()*(d.Max-d.Min))
}

// IsNull reports whether the gene is inactive.
func (g Gene) IsNull() bool { return !g.active }

// Value returns the raw value and whether the gene is active.
func (g Gene) Value() (float64, bool) { return g.value, g.active }

// Domain returns the gene's domain.
func (g Gene) Domain() Domain { return g.domain }

// Mutate inverts with the domain's flip chance, otherwise shifts.
func (g Gene) Mutate(rng *rand.Rand) Gene {
	if rng.Float64() < g.domain.FlipChance {
		return g.Invert()
	}
	return g.Shift(rng)
}

// Invert reflects the value about the middle of the domain.
func (g Gene) Invert() Gene {
	if !g.active {
		return g
	}
	return NewGene(g.domain, g.domain.clamp(g.domain.denormalize(1-g.domain.normalize(g.value))))
}

// Shift adds uniform noise in [-ShiftRange/2, +ShiftRange/2] and clamps.
func (g Gene) Shift(rng *rand.Rand) Gene {
	if !g.active {
		return g
	}
	shift := rng.Float64()*g.domain.ShiftRange - g.domain.ShiftRange/2
	return NewGene(g.domain, g.domain.clamp(g.value+shift))
}

// Bucket returns the quantized value in [0, Buckets-1], or -1 for a null gene.
func (g Gene) Bucket() int {
	if !g.active {
		return -1
	}
	b := int(math.Floor(g.domain.normalize(g.value) * Buckets))
	if b > Buckets-1 {
		b = Buckets - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// String returns the bucket digit, or "x" for a null gene.
func (g Gene) String() string {
	if !g.active {
		return "x"
	}
	return strconv.Itoa(g.Bucket())
}

// Difference compares two genes on their quantized form: 0 when both are
// null, 1 when exactly one is, otherwise the bucket distance.
func Difference(a, b Gene) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull() || b.IsNull():
		return 1
	}
	d := a.Bucket() - b.Bucket()
	if d < 0 {
		return -d
	}
	return d
}
