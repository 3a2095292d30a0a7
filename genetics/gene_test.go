package genetics

import (
	"math/rand"
	"testing"
)

func TestGeneMutationStaysInDomain(t *testing.T) {
	d := DefaultDomain()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		g := RandomGene(d, rng)
		for j := 0; j < 50; j++ {
			g = g.Mutate(rng)
			v, ok := g.Value()
			if !ok {
				t.Fatal("expected active gene to stay active")
			}
			if v < d.Min || v > d.Max {
				t.Fatalf("expected value in [%v, %v], got %v", d.Min, d.Max, v)
			}
		}
	}
}

func TestGeneShiftClamps(t *testing.T) {
	d := Domain{Min: 0.1, Max: 2.0, ShiftRange: 10}
	rng := rand.New(rand.NewSource(7))

	g := NewGene(d, 1.9)
	for i := 0; i < 100; i++ {
		v, _ := g.Shift(rng).Value()
		if v < d.Min || v > d.Max {
			t.Fatalf("expected clamped value, got %v", v)
		}
	}
}

func TestGeneInvert(t *testing.T) {
	d := DefaultDomain()

	v, _ := NewGene(d, 0.1).Invert().Value()
	if v < 1.999 || v > 2.0 {
		t.Errorf("expected min to invert to max, got %v", v)
	}

	v, _ = NewGene(d, 1.05).Invert().Value()
	if v < 1.049 || v > 1.051 {
		t.Errorf("expected midpoint to stay put, got %v", v)
	}
}

func TestNullGeneStaysNull(t *testing.T) {
	d := Domain{Min: 0.1, Max: 2.0, ShiftRange: 0.5, FlipChance: 0.5}
	rng := rand.New(rand.NewSource(3))

	g := NullGene(d)
	for i := 0; i < 50; i++ {
		g = g.Mutate(rng)
		if !g.IsNull() {
			t.Fatal("expected null gene to stay null")
		}
	}
	if g.Invert().IsNull() != true {
		t.Error("expected inverted null gene to be null")
	}
}

func TestGeneString(t *testing.T) {
	d := DefaultDomain()
	tests := []struct {
		gene Gene
		want string
	}{
		{NewGene(d, 0.1), "0"},
		{NewGene(d, 2.0), "9"},
		{NewGene(d, 1.05), "5"},
		{NewGene(d, 0.28), "0"},
		{NewGene(d, 0.30), "1"},
		{NullGene(d), "x"},
	}
	for _, tt := range tests {
		if got := tt.gene.String(); got != tt.want {
			v, _ := tt.gene.Value()
			t.Errorf("value %v: expected %q, got %q", v, tt.want, got)
		}
	}
}

func TestDifference(t *testing.T) {
	d := DefaultDomain()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		g := RandomGene(d, rng)
		if got := Difference(g, g); got != 0 {
			t.Fatalf("expected Difference(g, g) == 0, got %d", got)
		}
	}
	if got := Difference(NullGene(d), NullGene(d)); got != 0 {
		t.Errorf("expected 0 for two nulls, got %d", got)
	}
	if got := Difference(NullGene(d), NewGene(d, 2.0)); got != 1 {
		t.Errorf("expected 1 for null vs active, got %d", got)
	}
	if got := Difference(NewGene(d, 0.1), NewGene(d, 2.0)); got != 9 {
		t.Errorf("expected 9 for min vs max, got %d", got)
	}
	// Same bucket, different floats.
	if got := Difference(NewGene(d, 0.31), NewGene(d, 0.47)); got != 0 {
		t.Errorf("expected bucket-equal genes to compare equal, got %d", got)
	}
}
