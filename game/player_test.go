package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

func nextReport(t *testing.T, p *Player) DayReport {
	t.Helper()
	select {
	case r := <-p.Reports():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a report")
		return DayReport{}
	}
}

func TestPlayerStepPlayPause(t *testing.T) {
	w := newTestWorld(21)
	w.cfg.Play.SlowInterval = 5 * time.Millisecond
	w.cfg.Play.FastInterval = time.Millisecond
	w.Populate()
	start := w.Day()

	p := NewPlayer(w)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	if r := nextReport(t, p); r.Day != start {
		t.Fatalf("expected the initial report for day %d, got %d", start, r.Day)
	}

	p.Step(3)
	if r := nextReport(t, p); r.Day != start+3 {
		t.Fatalf("expected day %d after stepping, got %d", start+3, r.Day)
	}

	p.SetSpeed(true)
	p.Play()
	last := start + 3
	for i := 0; i < 3; i++ {
		r := nextReport(t, p)
		if r.Day <= last {
			t.Fatalf("expected days to advance while playing, got %d after %d", r.Day, last)
		}
		last = r.Day
	}
	if !p.Playing() || !p.Fast() {
		t.Error("expected the player to be playing fast")
	}

	p.Toggle()
	// Drain anything published before the pause took effect.
	deadline := time.After(50 * time.Millisecond)
drain:
	for {
		select {
		case <-p.Reports():
		case <-deadline:
			break drain
		}
	}
	if p.Playing() {
		t.Error("expected the player to be paused")
	}
	select {
	case r := <-p.Reports():
		t.Errorf("expected no ticks while paused, got day %d", r.Day)
	case <-time.After(30 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPlayerDropsCommandsAfterRun(t *testing.T) {
	w := newTestWorld(23)
	p := NewPlayer(w)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	sent := make(chan struct{})
	go func() {
		defer close(sent)
		for i := 0; i < 100; i++ {
			p.Step(1)
			p.Toggle()
		}
	}()
	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("commands blocked after Run returned")
	}
	select {
	case <-p.Done():
	default:
		t.Error("expected Done to be closed")
	}
}
