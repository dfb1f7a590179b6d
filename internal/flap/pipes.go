package flap

import (
	"math/rand"

	"github.com/nkaryakin/flappyterm/internal/config"
	"github.com/nkaryakin/flappyterm/internal/core"
)

// pipeGeometry is the shared, immutable geometry every pipe needs.
type pipeGeometry struct {
	fieldW, fieldH float64
	width          float64
	pieceH         float64
	scrollSpeed    float64 // px/ms leftward
	fps            float64
}

func newPipeGeometry(cfg config.Config) pipeGeometry {
	return pipeGeometry{
		fieldW:      cfg.Field.Width,
		fieldH:      cfg.Field.Height,
		width:       cfg.Pipes.Width,
		pieceH:      cfg.Pipes.PieceHeight,
		scrollSpeed: cfg.Pipes.ScrollSpeed,
		fps:         cfg.FPS,
	}
}

// PipePair is one obstacle: a top and a bottom pipe column with a passable
// gap between them. Only x changes after construction.
type PipePair struct {
	x            float64
	topPieces    int // pieces in the top column, end cap included
	bottomPieces int // pieces in the bottom column, end cap included
	scored       bool
	geo          pipeGeometry
}

// NewPipePair builds a pipe pair at the right edge of the field with a
// randomly placed gap. totalBodyPieces body pieces are split between the two
// columns, each column getting at least one, then each column gains its end
// cap. Config validation guarantees totalBodyPieces >= 2.
func NewPipePair(rng *rand.Rand, geo pipeGeometry, totalBodyPieces int) *PipePair {
	bottom := 1 + rng.Intn(totalBodyPieces) // uniform in [1, total]
	top := totalBodyPieces - bottom

	return &PipePair{
		x:            geo.fieldW - 1,
		topPieces:    top + 1,
		bottomPieces: bottom + 1,
		geo:          geo,
	}
}

// TopHeight returns the top column's height in pixels.
func (p *PipePair) TopHeight() float64 {
	return float64(p.topPieces) * p.geo.pieceH
}

// BottomHeight returns the bottom column's height in pixels.
func (p *PipePair) BottomHeight() float64 {
	return float64(p.bottomPieces) * p.geo.pieceH
}

// Visible reports whether any part of the pipe still overlaps the field.
// A pipe goes invisible only once it is strictly beyond the left edge:
// at x == -width it still counts as visible, at anything less it is culled.
func (p *PipePair) Visible() bool {
	return -p.geo.width <= p.x && p.x < p.geo.fieldW
}

// Update scrolls the pipe left by the elapsed frames.
func (p *PipePair) Update(deltaFrames float64) {
	p.x -= p.geo.scrollSpeed * core.FramesToMsec(deltaFrames, p.geo.fps)
}

// topRect is the solid silhouette of the top column.
func (p *PipePair) topRect() core.RectF {
	return core.NewRectF(p.x, 0, p.geo.width, p.TopHeight())
}

// bottomRect is the solid silhouette of the bottom column.
func (p *PipePair) bottomRect() core.RectF {
	h := p.BottomHeight()
	return core.NewRectF(p.x, p.geo.fieldH-h, p.geo.width, h)
}

// CollidesWith tests the bird against the pipe's solid silhouette.
// The gap between the columns is not part of either rectangle, so a bird
// inside the gap never collides.
func (p *PipePair) CollidesWith(b *Bird) bool {
	r := b.Rect()
	return r.Intersects(p.topRect()) || r.Intersects(p.bottomRect())
}

// X returns the pipe's left edge.
func (p *PipePair) X() float64 {
	return p.x
}

// TopPieces returns the piece count of the top column, end cap included.
func (p *PipePair) TopPieces() int {
	return p.topPieces
}

// BottomPieces returns the piece count of the bottom column, end cap included.
func (p *PipePair) BottomPieces() int {
	return p.bottomPieces
}

// Scored reports whether this pipe has already been counted.
func (p *PipePair) Scored() bool {
	return p.scored
}

// PipeField is the ordered collection of live pipes, oldest first.
//
// Structural invariant: pipes are appended at the tail with x = fieldW-1 and
// all scroll at the same speed, so the slice is always ordered by ascending
// spawn time == ascending x. The head is the pipe nearest (or past) the left
// edge, which is what makes head-only culling correct.
type PipeField struct {
	pipes            []*PipePair
	rng              *rand.Rand
	geo              pipeGeometry
	totalBodyPieces  int
	spawnEveryFrames int
}

// NewPipeField creates an empty field with a seeded RNG for deterministic
// pipe generation.
func NewPipeField(cfg config.Config, seed int64) *PipeField {
	return &PipeField{
		pipes:            make([]*PipePair, 0, 8),
		rng:              rand.New(rand.NewSource(seed)),
		geo:              newPipeGeometry(cfg),
		totalBodyPieces:  cfg.TotalBodyPieces(),
		spawnEveryFrames: int(core.MsecToFrames(cfg.Pipes.AddIntervalMsec, cfg.FPS)),
	}
}

// MaybeSpawn appends a new pipe when the frame clock lands on the spawn
// cadence and the game is not paused. Frame 0 spawns: the first pipe appears
// the moment the game starts. Returns whether a pipe was spawned.
func (f *PipeField) MaybeSpawn(frameClock int, paused bool) bool {
	if paused || frameClock%f.spawnEveryFrames != 0 {
		return false
	}
	f.pipes = append(f.pipes, NewPipePair(f.rng, f.geo, f.totalBodyPieces))
	return true
}

// CullOffscreen removes pipes that have scrolled fully off the left edge.
// Only the head needs checking: by the ordering invariant, once the head is
// visible every later pipe is too.
func (f *PipeField) CullOffscreen() {
	for len(f.pipes) > 0 && !f.pipes[0].Visible() {
		f.pipes = f.pipes[1:]
	}
}

// UpdateAll scrolls every pipe by the elapsed frames.
func (f *PipeField) UpdateAll(deltaFrames float64) {
	for _, p := range f.pipes {
		p.Update(deltaFrames)
	}
}

// CollidesWithAny reports whether the bird hits any pipe.
func (f *PipeField) CollidesWithAny(b *Bird) bool {
	for _, p := range f.pipes {
		if p.CollidesWith(b) {
			return true
		}
	}
	return false
}

// ScoreAndCount marks every unscored pipe whose right edge has passed birdX
// and returns how many were newly marked. Each pipe scores at most once.
func (f *PipeField) ScoreAndCount(birdX float64) int {
	counted := 0
	for _, p := range f.pipes {
		if !p.scored && p.x+f.geo.width < birdX {
			p.scored = true
			counted++
		}
	}
	return counted
}

// Pipes returns the live pipes, oldest first.
func (f *PipeField) Pipes() []*PipePair {
	return f.pipes
}

// Len returns the number of live pipes.
func (f *PipeField) Len() int {
	return len(f.pipes)
}
