package game

import (
	"context"
	"sync/atomic"
	"time"
)

type commandKind uint8

const (
	cmdPlay commandKind = iota
	cmdPause
	cmdToggle
	cmdSpeed
	cmdStep
)

type command struct {
	kind commandKind
	n    int
	fast bool
}

// Player drives a World from a timer. Only the goroutine running Run touches
// the world; everyone else sends commands and reads reports.
type Player struct {
	world   *World
	slow    time.Duration
	fastDur time.Duration

	cmds    chan command
	reports chan DayReport
	done    chan struct{} // Closed when Run returns

	playing atomic.Bool
	fast    atomic.Bool
}

// NewPlayer creates a paused player for w using the play intervals from its
// configuration.
func NewPlayer(w *World) *Player {
	return &Player{
		world:   w,
		slow:    w.cfg.Play.SlowInterval,
		fastDur: w.cfg.Play.FastInterval,
		cmds:    make(chan command, 16),
		reports: make(chan DayReport, 1),
		done:    make(chan struct{}),
	}
}

// Reports delivers the latest report after every tick or step. Stale reports
// are dropped when the reader falls behind.
func (p *Player) Reports() <-chan DayReport { return p.reports }

// Playing reports whether the timer is running.
func (p *Player) Playing() bool { return p.playing.Load() }

// Fast reports whether the fast interval is selected.
func (p *Player) Fast() bool { return p.fast.Load() }

// Play starts ticking on the timer.
func (p *Player) Play() { p.send(command{kind: cmdPlay}) }

// Pause stops ticking. A tick in progress always completes.
func (p *Player) Pause() { p.send(command{kind: cmdPause}) }

// Toggle switches between playing and paused.
func (p *Player) Toggle() { p.send(command{kind: cmdToggle}) }

// SetSpeed selects the fast or the slow interval.
func (p *Player) SetSpeed(fast bool) { p.send(command{kind: cmdSpeed, fast: fast}) }

// Step runs n ticks immediately and publishes one report.
func (p *Player) Step(n int) { p.send(command{kind: cmdStep, n: n}) }

// Done is closed once Run has returned.
func (p *Player) Done() <-chan struct{} { return p.done }

// send queues cmd. Commands sent after Run has returned are dropped.
func (p *Player) send(cmd command) {
	select {
	case p.cmds <- cmd:
	case <-p.done:
	}
}

func (p *Player) interval() time.Duration {
	if p.fast.Load() {
		return p.fastDur
	}
	return p.slow
}

// Run owns the world until ctx is cancelled. It publishes the initial report
// before handling commands.
func (p *Player) Run(ctx context.Context) error {
	var ticker *time.Ticker
	var tickC <-chan time.Time
	stop := func() {
		if ticker != nil {
			ticker.Stop()
		}
		ticker, tickC = nil, nil
		p.playing.Store(false)
	}
	start := func() {
		if ticker == nil {
			ticker = time.NewTicker(p.interval())
			tickC = ticker.C
		}
		p.playing.Store(true)
	}
	defer close(p.done)
	defer stop()

	p.publish(p.world.Report())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd := <-p.cmds:
			switch cmd.kind {
			case cmdPlay:
				start()
			case cmdPause:
				stop()
			case cmdToggle:
				if ticker == nil {
					start()
				} else {
					stop()
				}
			case cmdSpeed:
				p.fast.Store(cmd.fast)
				if ticker != nil {
					ticker.Reset(p.interval())
				}
			case cmdStep:
				if cmd.n > 0 {
					p.world.Advance(cmd.n)
					p.publish(p.world.Report())
				}
			}

		case <-tickC:
			p.world.Tick()
			p.publish(p.world.Report())
		}
	}
}

// publish replaces any unread report with r.
func (p *Player) publish(r DayReport) {
	select {
	case p.reports <- r:
		return
	default:
	}
	select {
	case <-p.reports:
	default:
	}
	p.reports <- r
}
