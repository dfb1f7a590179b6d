package flap

import (
	"testing"

	"github.com/nkaryakin/flappyterm/internal/config"
	"github.com/nkaryakin/flappyterm/internal/core"
)

func climbFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionClimb)
	return in
}

func TestGameSpawnsOnFirstTick(t *testing.T) {
	g := New(config.DefaultConfig(), 1)

	g.Tick()

	if g.pipes.Len() != 1 {
		t.Errorf("first tick spawned %d pipes, expected 1", g.pipes.Len())
	}
	snap := g.Snapshot()
	if len(snap.Pipes) != 1 {
		t.Errorf("snapshot has %d pipes, expected 1", len(snap.Pipes))
	}
}

func TestGameEndsAtTopBound(t *testing.T) {
	g := New(config.DefaultConfig(), 1)
	g.bird.y = 0

	g.Tick()

	if !g.Done() {
		t.Error("bird at y=0 should end the game")
	}
}

func TestGameEndsAtBottomBound(t *testing.T) {
	cfg := config.DefaultConfig()
	g := New(cfg, 1)
	g.bird.y = cfg.Field.Height - cfg.Bird.Height

	g.Tick()

	if !g.Done() {
		t.Error("bird at the bottom bound should end the game")
	}
}

// The frame clock stalls on the tick that ends the game.
func TestGameFrameClockStallsOnEndingTick(t *testing.T) {
	g := New(config.DefaultConfig(), 1)
	g.Tick()
	clock := g.FrameClock()

	g.bird.y = 0
	g.Tick()

	if !g.Done() {
		t.Fatal("game should have ended")
	}
	if g.FrameClock() != clock {
		t.Errorf("frame clock advanced on ending tick: %d -> %d", clock, g.FrameClock())
	}
}

func TestGameTickAfterDoneIsNoop(t *testing.T) {
	g := New(config.DefaultConfig(), 1)
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	g.HandleInput(in)

	snapBefore := g.Snapshot()
	g.Tick()
	snapAfter := g.Snapshot()

	if !snapBefore.Done || !snapAfter.Done {
		t.Fatal("quit should end the game")
	}
	if snapBefore.FrameClock != snapAfter.FrameClock || len(snapBefore.Pipes) != len(snapAfter.Pipes) {
		t.Error("tick after done mutated state")
	}
	if snapBefore.Bird != snapAfter.Bird {
		t.Error("tick after done moved the bird")
	}
}

func TestGamePauseStallsWorld(t *testing.T) {
	g := New(config.DefaultConfig(), 1)
	g.Tick() // frame 0: spawns the first pipe

	pause := core.NewInputFrame()
	pause.Set(core.ActionTogglePause)
	g.HandleInput(pause)

	if !g.Paused() {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 60; i++ {
		g.Tick()
	}
	after := g.Snapshot()

	if after.FrameClock != before.FrameClock {
		t.Errorf("frame clock advanced while paused: %d -> %d", before.FrameClock, after.FrameClock)
	}
	if after.Bird != before.Bird {
		t.Error("bird moved while paused")
	}
	if len(after.Pipes) != len(before.Pipes) {
		t.Errorf("pipes spawned while paused: %d -> %d", len(before.Pipes), len(after.Pipes))
	}
	if after.Pipes[0].X != before.Pipes[0].X {
		t.Error("pipes moved while paused")
	}

	// Collision checks are skipped entirely while paused.
	g.bird.y = 0
	g.Tick()
	if g.Done() {
		t.Error("paused tick must not run the collision check")
	}
}

// A climb press lands even while paused: the timer resets immediately and the
// motion shows up once the game is unpaused. Deliberate original behavior.
func TestGameClimbWhilePaused(t *testing.T) {
	cfg := config.DefaultConfig()
	g := New(cfg, 1)

	// Burn the initial 2ms climb so the bird is sinking.
	g.Tick()

	pause := core.NewInputFrame()
	pause.Set(core.ActionTogglePause)
	g.HandleInput(pause)

	g.HandleInput(climbFrame())
	if g.bird.msecToClimb != cfg.Bird.ClimbDurationMsec {
		t.Fatalf("climb while paused should reset the timer, got %v", g.bird.msecToClimb)
	}

	y := g.bird.Y()
	g.Tick()
	if g.bird.Y() != y {
		t.Error("paused tick must not move the bird, climb pending or not")
	}

	g.HandleInput(pause) // unpause
	g.Tick()
	g.Tick() // the first climb frame displaces ~0 by the ease curve
	if g.bird.Y() >= y {
		t.Error("pending climb should move the bird up after unpausing")
	}
}

func TestGameTogglePauseIgnoredOnceEnded(t *testing.T) {
	g := New(config.DefaultConfig(), 1)
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	g.HandleInput(in)

	pause := core.NewInputFrame()
	pause.Set(core.ActionTogglePause)
	g.HandleInput(pause)

	if g.Paused() {
		t.Error("pause toggle should have no effect once ended")
	}
}

func TestGameScoresPassedPipeOnce(t *testing.T) {
	cfg := config.DefaultConfig()
	g := New(cfg, 1)
	geo := newPipeGeometry(cfg)

	// A pipe whose right edge will scroll past the bird's x=50 this tick,
	// well clear of the bird vertically (its columns span the whole width,
	// but at x=-31 it cannot overlap the bird horizontally after moving).
	g.pipes.pipes = append(g.pipes.pipes, &PipePair{x: -31, topPieces: 4, bottomPieces: 8, geo: geo})

	g.Tick()
	if g.Score() != 1 {
		t.Fatalf("score = %d, expected 1", g.Score())
	}

	g.Tick()
	if g.Score() != 1 {
		t.Errorf("score = %d after second tick, expected still 1 (scored once)", g.Score())
	}
}

func TestGameCullsOffscreenPipes(t *testing.T) {
	cfg := config.DefaultConfig()
	g := New(cfg, 1)
	geo := newPipeGeometry(cfg)

	g.pipes.pipes = append(g.pipes.pipes, &PipePair{x: -200, topPieces: 4, bottomPieces: 8, geo: geo, scored: true})

	g.Tick() // also spawns the frame-0 pipe at the right edge

	for _, p := range g.pipes.Pipes() {
		if p.X() < -cfg.Pipes.Width {
			t.Errorf("offscreen pipe at x=%v survived the cull", p.X())
		}
	}
}

// Same seed and same inputs must produce an identical run.
func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()

	run := func() Snapshot {
		g := New(cfg, 12345)
		for i := 0; i < 600 && !g.Done(); i++ {
			in := core.NewInputFrame()
			if i%12 == 0 {
				in.Set(core.ActionClimb)
			}
			g.HandleInput(in)
			g.Tick()
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score {
		t.Errorf("scores differ: %d vs %d", s1.Score, s2.Score)
	}
	if s1.FrameClock != s2.FrameClock {
		t.Errorf("frame clocks differ: %d vs %d", s1.FrameClock, s2.FrameClock)
	}
	if s1.Bird != s2.Bird {
		t.Errorf("bird rects differ: %+v vs %+v", s1.Bird, s2.Bird)
	}
	if len(s1.Pipes) != len(s2.Pipes) {
		t.Fatalf("pipe counts differ: %d vs %d", len(s1.Pipes), len(s2.Pipes))
	}
	for i := range s1.Pipes {
		if s1.Pipes[i] != s2.Pipes[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, s1.Pipes[i], s2.Pipes[i])
		}
	}
}

func TestGameSnapshotGeometry(t *testing.T) {
	cfg := config.DefaultConfig()
	g := New(cfg, 1)
	g.Tick()

	snap := g.Snapshot()
	if snap.FieldW != cfg.Field.Width || snap.FieldH != cfg.Field.Height {
		t.Errorf("snapshot field %vx%v, expected %vx%v", snap.FieldW, snap.FieldH, cfg.Field.Width, cfg.Field.Height)
	}
	p := snap.Pipes[0]
	if p.TopHeight != float64(p.TopPieces)*cfg.Pipes.PieceHeight {
		t.Errorf("top height %v does not match %d pieces", p.TopHeight, p.TopPieces)
	}
	if p.BottomHeight != float64(p.BottomPieces)*cfg.Pipes.PieceHeight {
		t.Errorf("bottom height %v does not match %d pieces", p.BottomHeight, p.BottomPieces)
	}
}
