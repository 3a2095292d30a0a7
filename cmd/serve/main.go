// Command serve runs one simulation and streams its day reports to browsers
// over a websocket.
package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/game"
)

//go:embed static
var static embed.FS

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	addr := flag.String("addr", "", "Listen address (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	w := game.NewWorld(cfg, rand.New(rand.NewSource(rngSeed)))
	w.Populate()
	player := game.NewPlayer(w)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	h := newHub(player)
	go func() {
		if err := player.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("player stopped", "error", err)
		}
	}()
	go h.broadcast(ctx)

	assets, _ := fs.Sub(static, "static")
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.Handle("/", http.FileServer(http.FS(assets)))

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	slog.Info("serving", "addr", cfg.Server.Addr, "seed", rngSeed)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
