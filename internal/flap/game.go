package flap

import (
	"github.com/nkaryakin/flappyterm/internal/config"
	"github.com/nkaryakin/flappyterm/internal/core"
)

// Game is the simulation loop: it owns the bird, the pipe field, the frame
// clock, the score, and the pause/done flags. All mutation happens inside
// HandleInput and Tick, which must be called from a single goroutine.
//
// The session moves through three states: running, paused, ended. Ended is
// terminal; once done is set nothing mutates again.
type Game struct {
	cfg        config.Config
	bird       *Bird
	pipes      *PipeField
	frameClock int // advances only on non-paused ticks that don't end the game
	score      int
	done       bool
	paused     bool
}

// New creates a game session from a validated configuration and an RNG seed.
// The bird starts vertically centered at the configured x.
func New(cfg config.Config, seed int64) *Game {
	return &Game{
		cfg:   cfg,
		bird:  NewBird(cfg.Bird, cfg.FPS, (cfg.Field.Height-cfg.Bird.Height)/2),
		pipes: NewPipeField(cfg, seed),
	}
}

// HandleInput applies the tick's semantic input events.
//
// Quit ends the session. TogglePause flips the pause flag (no effect once
// ended). Climb always resets the climb timer, even while paused: the press
// registers immediately but its motion only manifests once unpaused.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.done = true
	}
	if in.Has(core.ActionTogglePause) && !g.done {
		g.paused = !g.paused
	}
	if in.Has(core.ActionClimb) {
		g.bird.TriggerClimb()
	}
}

// Tick advances the simulation by exactly one frame. It is a no-op once the
// game has ended.
func (g *Game) Tick() {
	if g.done {
		return
	}

	g.pipes.MaybeSpawn(g.frameClock, g.paused)

	if g.paused {
		return
	}

	if g.pipes.CollidesWithAny(g.bird) ||
		g.bird.Y() <= 0 ||
		g.bird.Y() >= g.cfg.Field.Height-g.cfg.Bird.Height {
		g.done = true
		return
	}

	g.pipes.CullOffscreen()
	g.pipes.UpdateAll(1)
	g.bird.Update(1)

	g.score += g.pipes.ScoreAndCount(g.bird.X())

	g.frameClock++
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Done reports whether the session has ended.
func (g *Game) Done() bool {
	return g.done
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// FrameClock returns the number of completed non-paused frames.
func (g *Game) FrameClock() int {
	return g.frameClock
}

// Config returns the session's configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}
