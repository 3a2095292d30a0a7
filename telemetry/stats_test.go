package telemetry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/genetics"
	"github.com/pthm-cable/foodchain/traits"
)

func TestComputeDistribution(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	mean, std, p10, p50, p90 := ComputeDistribution(values)

	if math.Abs(mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p10 < 1 || p10 > 2 {
		t.Errorf("p10 = %v, want within [1, 2]", p10)
	}
	if p50 < 5 || p50 > 6 {
		t.Errorf("p50 = %v, want within [5, 6]", p50)
	}
	if p90 < 9 || p90 > 10 {
		t.Errorf("p90 = %v, want within [9, 10]", p90)
	}
	if values[0] != 10 {
		t.Error("expected the input slice to be left unsorted")
	}
}

func TestComputeDistributionSmall(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistribution(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}

	mean, std, p10, p50, p90 = ComputeDistribution([]float64{2.5})
	if mean != 2.5 || std != 0 || p10 != 2.5 || p50 != 2.5 || p90 != 2.5 {
		t.Error("single value should be every statistic")
	}
}

func TestDiversity(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   float64
	}{
		{"empty", nil, 0},
		{"uniform", []string{"a", "a", "a"}, 0},
		{"two even", []string{"a", "b", "a", "b"}, math.Ln2},
		{"four even", []string{"a", "b", "c", "d"}, math.Log(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diversity(tt.labels); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Diversity(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}

func newLiving(diet traits.Diet, energy float64, rng *rand.Rand) *components.Individual {
	p := components.ParamsFromConfig(config.Default())
	d := genetics.DefaultDomain()
	ind := components.NewIndividual(p, 0, traits.RandomStrategy(diet, d, rng), traits.RandomTraits(d, rng))
	ind.Energy = energy
	return ind
}

func TestCollectorDayAndWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCollector(2)

	c.BeginDay(1)
	c.RecordBirths(2)
	c.RecordMigrants(3)
	c.RecordKill()
	c.RecordHuntFoiled()
	c.RecordAction(traits.Gather)
	c.RecordAction(traits.Hide)
	c.RecordAction(traits.Hunt)
	c.RecordNoop()
	living := []*components.Individual{
		newLiving(traits.Herbivore, 1, rng),
		newLiving(traits.Herbivore, 3, rng),
		newLiving(traits.Carnivore, 2, rng),
	}
	living[0].Sheltered = true
	day := c.EndDay(living, components.EnvironmentSnapshot{Food: 4, Shelter: 1, Bodies: 2})

	if day.Day != 1 || day.Living != 3 || day.Herbivores != 2 || day.Carnivores != 1 || day.Sheltered != 1 {
		t.Errorf("unexpected population %+v", day)
	}
	if day.Births != 2 || day.Migrants != 3 || day.Kills != 1 || day.HuntsFoiled != 1 {
		t.Errorf("unexpected event counts %+v", day)
	}
	if day.Gathers != 1 || day.Hides != 1 || day.Noops != 1 || day.Scavenges != 0 {
		t.Errorf("unexpected action counts %+v", day)
	}
	if day.FoodLeft != 4 || day.ShelterLeft != 1 || day.Bodies != 2 {
		t.Errorf("unexpected resources %+v", day)
	}
	if math.Abs(day.EnergyMean-2) > 1e-9 {
		t.Errorf("energy mean = %v, want 2", day.EnergyMean)
	}
	if day.StrengthMean <= 0 {
		t.Error("expected a positive strength mean")
	}
	if c.ShouldFlush() {
		t.Fatal("expected the window to need another day")
	}

	c.BeginDay(2)
	c.RecordStarvations(3)
	gone := c.EndDay(nil, components.EnvironmentSnapshot{})
	if !gone.Extinct || gone.Starvations != 3 {
		t.Errorf("expected an extinct day with 3 starvations, got %+v", gone)
	}
	if !c.ShouldFlush() {
		t.Fatal("expected the window to be full")
	}

	ws := c.Flush()
	if ws.WindowStartDay != 1 || ws.WindowEndDay != 2 {
		t.Errorf("unexpected window bounds %d-%d", ws.WindowStartDay, ws.WindowEndDay)
	}
	if ws.Living != 0 || ws.LivingMin != 0 || ws.LivingMax != 3 || ws.LivingMean != 1.5 {
		t.Errorf("unexpected population range %+v", ws)
	}
	if ws.Births != 2 || ws.Starvations != 3 || ws.ExtinctDays != 1 {
		t.Errorf("unexpected totals %+v", ws)
	}
	if c.Pending() != 0 || c.ShouldFlush() {
		t.Error("expected flush to reset the window")
	}
	if (c.Flush() != WindowStats{}) {
		t.Error("expected an empty flush to return zero stats")
	}
}

func TestLifetimeTrackerDeathRecord(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	lt := NewLifetimeTracker()

	ind := newLiving(traits.Carnivore, 2, rng)
	ind.ID = "Bab"
	lt.Register(ind, true)
	lt.RecordKill("Bab")
	lt.RecordKill("Bab")
	lt.RecordLitter("Bab")
	lt.UpdateEnergy("Bab", 3.5)
	lt.UpdateEnergy("Bab", 1)
	lt.RecordKill("Nobody")

	ind.Die(4, components.CauseStarved)
	rec := lt.Die(ind)

	if rec.Day != 4 || rec.ID != "Bab" || rec.Cause != "starved" || rec.Age != 4 || rec.Diet != "Carnivore" {
		t.Errorf("unexpected record %+v", rec)
	}
	if !rec.Migrant || rec.Kills != 2 || rec.Litters != 1 || rec.PeakEnergy != 3.5 {
		t.Errorf("unexpected lifetime counters %+v", rec)
	}
	if lt.Len() != 0 || lt.Get("Bab") != nil {
		t.Error("expected the record to be removed")
	}
}
