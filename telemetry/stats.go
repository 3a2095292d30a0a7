package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DayStats holds the statistics of a single simulated day.
type DayStats struct {
	Day int `csv:"day" json:"day"`

	// Population at end of day
	Living     int `csv:"living" json:"living"`
	Herbivores int `csv:"herbivores" json:"herbivores"`
	Carnivores int `csv:"carnivores" json:"carnivores"`
	Omnivores  int `csv:"omnivores" json:"omnivores"`
	Scavengers int `csv:"scavengers" json:"scavengers"`
	Sheltered  int `csv:"sheltered" json:"sheltered"`

	// Events during the day
	Births      int `csv:"births" json:"births"`
	Migrants    int `csv:"migrants" json:"migrants"`
	Kills       int `csv:"kills" json:"kills"`
	HuntsFoiled int `csv:"hunts_foiled" json:"hunts_foiled"`
	Starvations int `csv:"starvations" json:"starvations"`
	Gathers     int `csv:"gathers" json:"gathers"`
	Scavenges   int `csv:"scavenges" json:"scavenges"`
	Hides       int `csv:"hides" json:"hides"`
	Feeds       int `csv:"feeds" json:"feeds"`
	Noops       int `csv:"noops" json:"noops"`

	// Resources left at end of day
	FoodLeft    int `csv:"food_left" json:"food_left"`
	ShelterLeft int `csv:"shelter_left" json:"shelter_left"`
	Bodies      int `csv:"bodies" json:"bodies"`

	// Energy distribution of the living
	EnergyMean float64 `csv:"energy_mean" json:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std" json:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10" json:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50" json:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90" json:"energy_p90"`

	// Mean physical traits of the living
	StrengthMean float64 `csv:"strength_mean" json:"strength_mean"`
	SpeedMean    float64 `csv:"speed_mean" json:"speed_mean"`
	AgilityMean  float64 `csv:"agility_mean" json:"agility_mean"`

	// Shannon entropy (nats) of the quantized strategy strings
	StrategyDiversity float64 `csv:"strategy_diversity" json:"strategy_diversity"`

	Extinct bool `csv:"extinct" json:"extinct"`
}

// DietCounts returns the living count per diet, in diet declaration order.
func (s DayStats) DietCounts() []int {
	return []int{s.Herbivores, s.Carnivores, s.Omnivores, s.Scavengers}
}

// DietsPresent returns how many diets have at least one living member.
func (s DayStats) DietsPresent() int {
	n := 0
	for _, c := range s.DietCounts() {
		if c > 0 {
			n++
		}
	}
	return n
}

// ComputeDistribution returns mean, standard deviation and the 10th, 50th and
// 90th percentiles. All are zero for an empty slice.
func ComputeDistribution(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}
	if len(values) == 1 {
		v := values[0]
		return v, 0, v, v, v
	}

	mean, std = stat.MeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Diversity returns the Shannon entropy of the label frequencies.
func Diversity(labels []string) float64 {
	if len(labels) == 0 {
		return 0
	}
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := make([]float64, len(keys))
	for i, k := range keys {
		p[i] = float64(counts[k]) / float64(len(labels))
	}
	return stat.Entropy(p)
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int("living", s.Living),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("carnivores", s.Carnivores),
		slog.Int("omnivores", s.Omnivores),
		slog.Int("scavengers", s.Scavengers),
		slog.Int("sheltered", s.Sheltered),
		slog.Int("births", s.Births),
		slog.Int("migrants", s.Migrants),
		slog.Int("kills", s.Kills),
		slog.Int("hunts_foiled", s.HuntsFoiled),
		slog.Int("starvations", s.Starvations),
		slog.Int("food_left", s.FoodLeft),
		slog.Int("shelter_left", s.ShelterLeft),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("strategy_diversity", s.StrategyDiversity),
		slog.Bool("extinct", s.Extinct),
	)
}

// WindowStats aggregates the days of one stats window.
type WindowStats struct {
	WindowStartDay int `csv:"window_start"`
	WindowEndDay   int `csv:"window_end"`

	// Population at window end
	Living     int `csv:"living"`
	Herbivores int `csv:"herbivores"`
	Carnivores int `csv:"carnivores"`
	Omnivores  int `csv:"omnivores"`
	Scavengers int `csv:"scavengers"`

	// Population range over the window
	LivingMin  int     `csv:"living_min"`
	LivingMax  int     `csv:"living_max"`
	LivingMean float64 `csv:"living_mean"`

	// Event totals over the window
	Births      int `csv:"births"`
	Migrants    int `csv:"migrants"`
	Kills       int `csv:"kills"`
	HuntsFoiled int `csv:"hunts_foiled"`
	Starvations int `csv:"starvations"`

	// Means over the window
	EnergyMean        float64 `csv:"energy_mean"`
	StrategyDiversity float64 `csv:"strategy_diversity"`

	ExtinctDays int `csv:"extinct_days"`
}

// DietCounts returns the living count per diet at window end.
func (s WindowStats) DietCounts() []int {
	return []int{s.Herbivores, s.Carnivores, s.Omnivores, s.Scavengers}
}

// DietsPresent returns how many diets have living members at window end.
func (s WindowStats) DietsPresent() int {
	n := 0
	for _, c := range s.DietCounts() {
		if c > 0 {
			n++
		}
	}
	return n
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartDay),
		slog.Int("window_end", s.WindowEndDay),
		slog.Int("living", s.Living),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("carnivores", s.Carnivores),
		slog.Int("omnivores", s.Omnivores),
		slog.Int("scavengers", s.Scavengers),
		slog.Int("living_min", s.LivingMin),
		slog.Int("living_max", s.LivingMax),
		slog.Float64("living_mean", s.LivingMean),
		slog.Int("births", s.Births),
		slog.Int("migrants", s.Migrants),
		slog.Int("kills", s.Kills),
		slog.Int("hunts_foiled", s.HuntsFoiled),
		slog.Int("starvations", s.Starvations),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("strategy_diversity", s.StrategyDiversity),
		slog.Int("extinct_days", s.ExtinctDays),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
