package flap

import (
	"github.com/nkaryakin/flappyterm/internal/core"
)

// PipeSnapshot is one pipe's render geometry in field pixels.
type PipeSnapshot struct {
	X            float64
	Width        float64
	TopHeight    float64
	BottomHeight float64
	TopPieces    int
	BottomPieces int
	Scored       bool
}

// Snapshot captures everything a renderer needs after one tick. The core
// emits geometry only; visual concerns like the wing-flap phase are sampled
// by the renderer from its own clock.
type Snapshot struct {
	FieldW, FieldH float64
	PieceHeight    float64
	Bird           core.RectF
	Climbing       bool
	Pipes          []PipeSnapshot
	Score          int
	FrameClock     int
	Paused         bool
	Done           bool
}

// Snapshot returns the current scene. The returned value shares nothing with
// the game's internal state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeSnapshot, 0, g.pipes.Len())
	for _, p := range g.pipes.Pipes() {
		pipes = append(pipes, PipeSnapshot{
			X:            p.X(),
			Width:        g.cfg.Pipes.Width,
			TopHeight:    p.TopHeight(),
			BottomHeight: p.BottomHeight(),
			TopPieces:    p.TopPieces(),
			BottomPieces: p.BottomPieces(),
			Scored:       p.Scored(),
		})
	}

	return Snapshot{
		FieldW:      g.cfg.Field.Width,
		FieldH:      g.cfg.Field.Height,
		PieceHeight: g.cfg.Pipes.PieceHeight,
		Bird:        g.bird.Rect(),
		Climbing:    g.bird.Climbing(),
		Pipes:       pipes,
		Score:       g.score,
		FrameClock:  g.frameClock,
		Paused:      g.paused,
		Done:        g.done,
	}
}
