package game

import (
	"log/slog"

	"github.com/pthm-cable/foodchain/components"
	"github.com/pthm-cable/foodchain/systems"
	"github.com/pthm-cable/foodchain/traits"
)

// recordOutcome feeds one turn into the collectors.
func (w *World) recordOutcome(actor *components.Individual, out systems.Outcome, acted bool) {
	if !acted {
		if actor.Alive() {
			w.collector.RecordNoop()
		}
		return
	}

	switch out.Kind {
	case traits.Hunt:
		if out.Foiled {
			w.collector.RecordHuntFoiled()
			break
		}
		w.collector.RecordKill()
		w.lifetime.RecordKill(actor.ID)
		w.recordDeath(out.Victim)
	case traits.Reproduce:
		w.collector.RecordBirths(len(out.Births))
		w.lifetime.RecordLitter(actor.ID)
	case traits.Gather:
		w.collector.RecordAction(out.Kind)
		w.lifetime.RecordGather(actor.ID)
	case traits.Scavenge:
		w.collector.RecordAction(out.Kind)
		w.lifetime.RecordScavenge(actor.ID)
	case traits.FeedChild:
		w.collector.RecordAction(out.Kind)
		w.lifetime.RecordFeed(actor.ID)
		if out.Victim != nil {
			w.lifetime.UpdateEnergy(out.Victim.ID, out.Victim.Energy)
		}
	default:
		w.collector.RecordAction(out.Kind)
	}
	w.lifetime.UpdateEnergy(actor.ID, actor.Energy)
}

// endDayTelemetry samples the finished day, writes CSV output and flushes the
// stats window when it is full.
func (w *World) endDayTelemetry(living []*components.Individual) {
	w.lastStats = w.collector.EndDay(living, w.env.Snapshot())

	if err := w.output.WriteDay(w.lastStats); err != nil {
		slog.Error("failed to write day stats", "error", err)
	}
	if err := w.output.WriteDeaths(w.deaths); err != nil {
		slog.Error("failed to write deaths", "error", err)
	}
	w.deaths = w.deaths[:0]

	if w.collector.ShouldFlush() {
		w.flushTelemetry()
	}
}

// flushTelemetry closes the stats window and handles bookmarks.
func (w *World) flushTelemetry() {
	stats := w.collector.Flush()
	perfStats := w.perf.Stats()

	if w.statsCallback != nil {
		w.statsCallback(stats)
	}

	if w.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := w.output.WriteWindow(stats); err != nil {
		slog.Error("failed to write window stats", "error", err)
	}
	if err := w.output.WritePerf(perfStats, stats.WindowEndDay); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range w.bookmarks.Check(stats) {
		if w.logStats {
			bm.LogBookmark()
		}
		if err := w.output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}
