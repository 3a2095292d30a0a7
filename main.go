package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/game"
	"github.com/pthm-cable/foodchain/telemetry"
	"github.com/pthm-cable/foodchain/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats and bookmarks via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	days := flag.Int("days", 0, "Headless: stop after N days (0 = until interrupted)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}
	if output != nil {
		slog.Info("writing output", "dir", output.Dir())
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()

	w := game.NewWorldWithOptions(cfg, rand.New(rand.NewSource(rngSeed)), game.Options{
		LogStats: *logStats,
		Output:   output,
	})
	w.Populate()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"days", *days,
			"population", len(w.Individuals()),
		)
		runHeadless(ctx, w, *days)
		return
	}

	player := game.NewPlayer(w)
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = player.Run(ctx)
	}()

	ui.NewViewer(player, cfg).Run(ctx)
	cancel()
	<-done
}

// runHeadless ticks until the day limit or ctx ends and logs a summary.
func runHeadless(ctx context.Context, w *game.World, days int) {
	start := time.Now()
	first := w.Day()
	var births, kills, starvations, migrants, extinctDays, peak int

	for days == 0 || w.Day()-first < days {
		if ctx.Err() != nil {
			break
		}
		w.Tick()

		s := w.Stats()
		births += s.Births
		kills += s.Kills
		starvations += s.Starvations
		migrants += s.Migrants
		peak = max(peak, s.Living)
		if s.Extinct {
			extinctDays++
		}
	}

	elapsed := time.Since(start)
	simulated := w.Day() - first
	perDay := time.Duration(0)
	if simulated > 0 {
		perDay = elapsed / time.Duration(simulated)
	}
	slog.Info("simulation finished",
		"days", humanize.Comma(int64(simulated)),
		"living", humanize.Comma(int64(len(w.Living()))),
		"peak_living", humanize.Comma(int64(peak)),
		"births", humanize.Comma(int64(births)),
		"kills", humanize.Comma(int64(kills)),
		"starvations", humanize.Comma(int64(starvations)),
		"migrants", humanize.Comma(int64(migrants)),
		"extinct_days", extinctDays,
		"elapsed", elapsed.Round(time.Millisecond).String(),
		"per_day", perDay.String(),
	)
}
