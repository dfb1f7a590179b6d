// Package flap implements the Flappy Bird simulation core.
// It is platform-free and deterministic: one Tick advances the world by
// exactly one frame, input arrives as semantic actions, and the renderer
// consumes an immutable snapshot. Nothing in this package touches the wall
// clock, the terminal, or any I/O.
package flap

import (
	"math"

	"github.com/nkaryakin/flappyterm/internal/config"
	"github.com/nkaryakin/flappyterm/internal/core"
)

// Bird is the player avatar. Its horizontal position is fixed for the whole
// session; only y moves. While msecToClimb is positive the bird ascends on a
// cosine-eased curve, otherwise it sinks at a constant rate.
type Bird struct {
	x           float64 // never mutated after construction
	y           float64
	msecToClimb float64 // remaining climb time, in [0, ClimbDurationMsec]
	cfg         config.BirdConfig
	fps         float64
}

// NewBird creates a bird at the configured x and the given vertical position,
// optionally mid-climb (cfg.InitialClimbMsec gives the game its small hop at
// the very start).
func NewBird(cfg config.BirdConfig, fps, y float64) *Bird {
	return &Bird{
		x:           cfg.X,
		y:           y,
		msecToClimb: cfg.InitialClimbMsec,
		cfg:         cfg,
		fps:         fps,
	}
}

// Update advances the bird by the given number of frames.
//
// A climb is eased with a cosine: displacement is near zero at the start and
// end of the climb and maximal in the middle, averaging ClimbSpeed px/ms over
// the full duration. When no climb time remains the bird sinks at SinkSpeed.
// The bird never clamps its own y; bounds checking belongs to the game loop.
func (b *Bird) Update(deltaFrames float64) {
	elapsed := core.FramesToMsec(deltaFrames, b.fps)

	if b.msecToClimb > 0 {
		fracClimbDone := 1 - b.msecToClimb/b.cfg.ClimbDurationMsec
		b.y -= b.cfg.ClimbSpeed * elapsed * (1 - math.Cos(fracClimbDone*math.Pi))
		b.msecToClimb -= elapsed
		if b.msecToClimb < 0 {
			b.msecToClimb = 0
		}
		return
	}

	b.y += b.cfg.SinkSpeed * elapsed
}

// TriggerClimb starts a full climb. Triggering mid-climb restarts the ease
// curve from the beginning.
func (b *Bird) TriggerClimb() {
	b.msecToClimb = b.cfg.ClimbDurationMsec
}

// Climbing reports whether any climb time remains.
func (b *Bird) Climbing() bool {
	return b.msecToClimb > 0
}

// X returns the bird's fixed horizontal position.
func (b *Bird) X() float64 {
	return b.x
}

// Y returns the bird's current vertical position.
func (b *Bird) Y() float64 {
	return b.y
}

// Rect returns the bird's collision rectangle.
func (b *Bird) Rect() core.RectF {
	return core.NewRectF(b.x, b.y, b.cfg.Width, b.cfg.Height)
}
