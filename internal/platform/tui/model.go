package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkaryakin/flappyterm/internal/config"
	"github.com/nkaryakin/flappyterm/internal/core"
	"github.com/nkaryakin/flappyterm/internal/flap"
	"github.com/nkaryakin/flappyterm/internal/platform/audio"
	"github.com/nkaryakin/flappyterm/internal/storage"
)

// Model is the Bubble Tea model that drives a flap.Game.
type Model struct {
	game       *flap.Game
	gameCfg    config.Config
	runtime    core.RuntimeConfig
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Manager
	keymap     KeyMapper
	inputFrame core.InputFrame
	snapshot   flap.Snapshot
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game configuration.
// store and sound may be nil; the game runs without persistence or audio.
func NewModel(gameCfg config.Config, store *storage.Store, sound *audio.Manager, rt core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := flap.New(gameCfg, rt.Seed)

	return Model{
		game:       game,
		gameCfg:    gameCfg,
		runtime:    rt,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		sound:      sound,
		inputFrame: core.NewInputFrame(),
		snapshot:   game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keymap.MapKey(msg.String())
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		if m.game.Done() {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
		// Unbound key, ignore.
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse treats any click as a climb, matching the original arcade feel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		m.inputFrame.Set(core.ActionClimb)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation keeps its own
// pixel-space field size; only the render buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by exactly one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.game.Done() {
		m.runtime.Seed = time.Now().UnixNano()
		m.game = flap.New(m.gameCfg, m.runtime.Seed)
		m.snapshot = m.game.Snapshot()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	prev := m.snapshot

	m.game.HandleInput(m.inputFrame)
	m.game.Tick()
	m.snapshot = m.game.Snapshot()

	m.playSounds(prev, m.snapshot)

	// Save score on game over (once)
	if m.snapshot.Done && !m.scoreSaved {
		if m.store != nil && m.snapshot.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.snapshot.Score)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.runtime.TickRate)
}

// playSounds compares consecutive snapshots and fires the matching effects.
func (m Model) playSounds(prev, next flap.Snapshot) {
	if m.sound == nil {
		return
	}
	if next.Climbing && !prev.Climbing {
		m.sound.PlayFlap()
	}
	if next.Score > prev.Score {
		m.sound.PlayScore()
	}
	if next.Done && !prev.Done {
		m.sound.PlayCrash()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.snapshot, wingUpNow())

	dir := filepath.Join(os.Getenv("HOME"), ".flappyterm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// wingUpNow samples the wing-flap pose from the wall clock. The pose is a
// purely cosmetic half-second oscillation and never feeds back into the
// simulation.
func wingUpNow() bool {
	return time.Now().UnixMilli()%500 >= 250
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.snapshot, wingUpNow())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.Config, store *storage.Store, sound *audio.Manager, rt core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, sound, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse clicks as flaps
	)

	_, err := p.Run()
	return err
}
