package tui

import (
	"fmt"
	"math"

	"github.com/nkaryakin/flappyterm/internal/core"
	"github.com/nkaryakin/flappyterm/internal/flap"
)

// Visual characters for rendering.
const (
	birdChar      = '●'
	birdWingUp    = '▲'
	birdWingDown  = '▼'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
)

// DrawScene draws one simulation snapshot onto the screen buffer, scaling
// the pixel-space field onto the terminal cell grid. wingUp selects the
// bird's flap pose; the caller samples it from the wall clock so the
// simulation stays clear of real time.
func DrawScene(dst *core.Screen, snap flap.Snapshot, wingUp bool) {
	dst.Clear()

	scaleX := float64(dst.Width()) / snap.FieldW
	scaleY := float64(dst.Height()) / snap.FieldH

	for _, p := range snap.Pipes {
		drawPipe(dst, snap, p, scaleX, scaleY)
	}

	drawBird(dst, snap.Bird, scaleX, scaleY, wingUp)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	if snap.Paused && !snap.Done {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Done {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart, Q to quit", snap.Score))
	}
}

// drawPipe renders both columns of one pipe pair with their end caps.
func drawPipe(dst *core.Screen, snap flap.Snapshot, p flap.PipeSnapshot, scaleX, scaleY float64) {
	x0 := int(math.Round(p.X * scaleX))
	x1 := int(math.Round((p.X + p.Width) * scaleX))
	topRows := int(math.Round(p.TopHeight * scaleY))
	bottomY := int(math.Round((snap.FieldH - p.BottomHeight) * scaleY))

	for x := x0; x < x1; x++ {
		// Top column, cap on its lowest row.
		for y := 0; y < topRows-1; y++ {
			dst.SetColored(x, y, pipeChar, core.ColorGreen)
		}
		if topRows > 0 {
			dst.SetColored(x, topRows-1, pipeCapTop, core.ColorBrightGreen)
		}

		// Bottom column, cap on its highest row.
		if bottomY < dst.Height() {
			dst.SetColored(x, bottomY, pipeCapBottom, core.ColorBrightGreen)
			for y := bottomY + 1; y < dst.Height(); y++ {
				dst.SetColored(x, y, pipeChar, core.ColorGreen)
			}
		}
	}
}

// drawBird renders the bird's scaled rectangle with a wing-pose marker in
// its top-right cell.
func drawBird(dst *core.Screen, bird core.RectF, scaleX, scaleY float64, wingUp bool) {
	bx := int(math.Round(bird.X * scaleX))
	by := int(math.Round(bird.Y * scaleY))
	bw := core.Max(1, int(math.Round(bird.W*scaleX)))
	bh := core.Max(1, int(math.Round(bird.H*scaleY)))

	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			dst.SetColored(bx+dx, by+dy, birdChar, core.ColorBrightYellow)
		}
	}

	wing := birdWingDown
	if wingUp {
		wing = birdWingUp
	}
	dst.SetColored(bx+bw-1, by, wing, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
