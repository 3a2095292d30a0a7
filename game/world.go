// Package game owns the simulation state and runs the daily tick.
package game

import (
	"math/rand"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/systems"
	"github.com/pthm-cable/foodchain/telemetry"
)

// Options configures the optional telemetry of a World.
type Options struct {
	LogStats bool                     // Log window stats and bookmarks via slog
	Output   *telemetry.OutputManager // CSV output, nil to disable
	PerfSize int                      // Days averaged by the perf collector

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
	// OnExtinction is called at the end of every day with no living individuals.
	OnExtinction func(day int)
}

// World holds the complete simulation state. A World is not safe for
// concurrent use; the Player serializes access to it.
type World struct {
	cfg    *config.Config
	rng    *rand.Rand
	params components.Params

	day      int
	registry *registry      // Active individuals: the living and today's dead
	departed map[string]int // Archived id -> day it left the registry
	nextID   int
	env      *components.Environment
	extinct  bool

	// Telemetry
	collector     *telemetry.Collector
	lifetime      *telemetry.LifetimeTracker
	bookmarks     *telemetry.BookmarkDetector
	perf          *telemetry.PerfCollector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	onExtinction  func(day int)
	lastStats     telemetry.DayStats
	deaths        []telemetry.DeathRecord
}

// NewWorld creates an empty world on day 0. All randomness is drawn from rng.
func NewWorld(cfg *config.Config, rng *rand.Rand) *World {
	return NewWorldWithOptions(cfg, rng, Options{})
}

// NewWorldWithOptions creates an empty world with telemetry options.
func NewWorldWithOptions(cfg *config.Config, rng *rand.Rand, opts Options) *World {
	perfSize := opts.PerfSize
	if perfSize <= 0 {
		perfSize = cfg.Telemetry.StatsWindow
	}
	return &World{
		cfg:           cfg,
		rng:           rng,
		params:        components.ParamsFromConfig(cfg),
		registry:      newRegistry(),
		departed:      make(map[string]int),
		env:           &components.Environment{},
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		lifetime:      telemetry.NewLifetimeTracker(),
		bookmarks:     telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory),
		perf:          telemetry.NewPerfCollector(perfSize),
		output:        opts.Output,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
		onExtinction:  opts.OnExtinction,
	}
}

// Day returns the current day.
func (w *World) Day() int { return w.day }

// Config returns the world configuration.
func (w *World) Config() *config.Config { return w.cfg }

// Individuals returns the active registry in registration order: the living
// and those who died today. The slice must not be modified.
func (w *World) Individuals() []*components.Individual { return w.registry.individuals() }

// Living returns the living individuals in registration order.
func (w *World) Living() []*components.Individual { return w.registry.livingIndividuals() }

// Environment returns a snapshot of today's resource pools.
func (w *World) Environment() components.EnvironmentSnapshot {
	return w.env.Snapshot()
}

// Lookup returns the active individual with the given id, or nil.
func (w *World) Lookup(id string) *components.Individual {
	return w.registry.lookup(id)
}

// Extinct reports whether the last day ended with no living individuals.
func (w *World) Extinct() bool { return w.extinct }

// Stats returns the statistics of the last simulated day.
func (w *World) Stats() telemetry.DayStats { return w.lastStats }

// Add registers an externally built individual, keeping its birthday.
func (w *World) Add(ind *components.Individual) {
	w.register(ind, false)
}

// register assigns the next id and adds ind to the registry.
func (w *World) register(ind *components.Individual, migrant bool) {
	ind.ID = components.Name(w.nextID)
	w.nextID++
	w.registry.add(ind)
	w.lifetime.Register(ind, migrant)
}

// recordDeath queues the death record of an individual that died today.
func (w *World) recordDeath(ind *components.Individual) {
	w.deaths = append(w.deaths, w.lifetime.Die(ind))
}

// turnState is the view of the world handed to actions during a tick.
type turnState struct {
	w *World
}

var _ systems.World = turnState{}

func (s turnState) Day() int { return s.w.day }
func (s turnState) Config() *config.Config { return s.w.cfg }
func (s turnState) Rand() *rand.Rand { return s.w.rng }
func (s turnState) Environment() *components.Environment { return s.w.env }
func (s turnState) Individuals() []*components.Individual { return s.w.Individuals() }
func (s turnState) Register(ind *components.Individual) { s.w.register(ind, false) }
