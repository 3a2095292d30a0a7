package game

import (
	"log/slog"

	"github.com/pthm-cable/foodchain/systems"
	"github.com/pthm-cable/foodchain/telemetry"
)

// Tick advances the world by one day. Phases run in a fixed order and a tick
// is never partially applied.
func (w *World) Tick() {
	w.perf.StartTick()
	state := turnState{w: w}

	w.perf.StartPhase(telemetry.PhaseArchive)
	w.archiveDead()
	w.pruneLineage()

	w.day++
	w.collector.BeginDay(w.day)

	w.perf.StartPhase(telemetry.PhaseMigration)
	w.migrate()

	w.perf.StartPhase(telemetry.PhaseEnvironment)
	w.env = systems.RefreshEnvironment(w.env, w.day, w.Individuals(), w.cfg, w.rng)

	w.perf.StartPhase(telemetry.PhaseTurns)
	for _, ind := range systems.TurnOrder(w.Living(), w.day, w.rng) {
		out, acted := systems.TakeTurn(ind, state)
		w.recordOutcome(ind, out, acted)
	}

	w.perf.StartPhase(telemetry.PhaseStarvation)
	starved := systems.Starve(state)
	for _, ind := range starved {
		w.recordDeath(ind)
	}
	w.collector.RecordStarvations(len(starved))

	w.perf.StartPhase(telemetry.PhaseTelemetry)
	living := w.Living()
	w.extinct = len(living) == 0
	w.endDayTelemetry(living)

	w.perf.EndTick()

	if w.extinct {
		slog.Warn("extinction", "day", w.day)
		if w.onExtinction != nil {
			w.onExtinction(w.day)
		}
	}
}

// Advance runs n ticks.
func (w *World) Advance(n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

// migrate adds random founders while the living population is below the
// migration floor.
func (w *World) migrate() {
	living := len(w.Living())

	n := systems.Migrants(living, w.cfg, w.rng)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		w.spawnRandom(true)
	}
	w.collector.RecordMigrants(n)
	slog.Info("migration", "day", w.day, "count", n, "living", living)
}
