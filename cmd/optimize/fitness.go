package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/game"
	"github.com/pthm-cable/foodchain/telemetry"
	"github.com/pthm-cable/foodchain/traits"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxDays    int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxDays int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxDays:    maxDays,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Minimum viable population: a run staying below this for graceDays
// consecutive days counts as collapsed, even if migrants keep arriving.
const (
	minViablePop = 3
	graceDays    = 10
)

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalDays int                     // days before collapse (or maxDays if survived)
	windowStats  []telemetry.WindowStats // collected via StatsCallback each window
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Seeds run in parallel on independent worlds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	type seedResult struct {
		fitness float64
		quality float64
	}
	results := make([]seedResult, len(fe.seeds))

	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			r := fe.runSimulation(x, s)
			q := fe.computeQuality(r.windowStats)
			results[idx] = seedResult{fitness: computeFitness(r.survivalDays, q), quality: q}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until collapse or maxDays.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}
	w := game.NewWorldWithOptions(cfg, rand.New(rand.NewSource(seed)), game.Options{
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	w.Populate()

	first := w.Day()
	below := 0
	for w.Day()-first < fe.maxDays {
		w.Tick()
		if w.Stats().Living < minViablePop {
			below++
		} else {
			below = 0
		}
		if below >= graceDays {
			result.survivalDays = w.Day() - first
			return result
		}
	}
	result.survivalDays = fe.maxDays
	return result
}

// computeFitness combines survival and quality (lower = better).
// Survival dominates; quality adds up to a 50% bonus.
func computeFitness(survivalDays int, quality float64) float64 {
	return -(float64(survivalDays) * (1.0 + 0.5*quality))
}

// Quality component weights.
const (
	qualityWeightDiversity = 0.35
	qualityWeightStability = 0.25
	qualityWeightSelfSust  = 0.25
	qualityWeightEnergy    = 0.15

	qualityWarmupWindows = 2 // skip first N windows
)

// computeQuality computes ecosystem quality in [0, 1] from window stats:
// how many diets coexist, how steady the population is, how little it
// relies on migrants and how far its energy sits from both extremes.
func (fe *FitnessEvaluator) computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	var diversitySum, selfSum, energySum float64
	var selfCount int
	living := make([]float64, 0, len(valid))
	maxEnergy := fe.baseConfig.Individual.MaxEnergy

	for _, w := range valid {
		living = append(living, w.LivingMean)
		diversitySum += float64(w.DietsPresent()) / float64(len(traits.Diets))

		if arrivals := w.Births + w.Migrants; arrivals > 0 {
			selfSum += float64(w.Births) / float64(arrivals)
			selfCount++
		}

		if w.Living > 0 && maxEnergy > 0 {
			d := (w.EnergyMean/maxEnergy - 0.5) / 0.25
			energySum += math.Exp(-d * d)
		}
	}
	n := float64(len(valid))

	stability := 0.0
	if c := cv(living); len(living) >= 2 && c >= 0 {
		stability = math.Exp(-c * c)
	}
	selfSust := 0.0
	if selfCount > 0 {
		selfSust = selfSum / float64(selfCount)
	}

	quality := qualityWeightDiversity*diversitySum/n +
		qualityWeightStability*stability +
		qualityWeightSelfSust*selfSust +
		qualityWeightEnergy*energySum/n

	return clamp01(quality)
}

// cv computes the coefficient of variation (std/mean), -1 when undefined.
func cv(values []float64) float64 {
	if len(values) == 0 {
		return -1
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	if mean == 0 {
		return -1
	}
	return std / mean
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
