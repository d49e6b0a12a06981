package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/registry"
	"github.com/quarterslot/quarters/internal/storage"
)

// highScoreTableSize is the leaderboard depth a finished run must enter
// before the player is asked for a name.
const highScoreTableSize = 10

// GameModel is the Bubble Tea model for running a single game. It owns the
// tick loop, maps keys to input frames, and persists the score when a run
// ends. Runs that make the leaderboard prompt for a player name first.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string // default name for score entries
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	nameInput    textinput.Model
	enteringName bool

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a new model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = storage.DefaultPlayer
	ti.CharLimit = 16
	ti.Width = 20

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc returns to the menu once the run is over or paused. The quit
	// ends the standalone program; the SSH session model swaps screens
	// instead and drops the command.
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.gameState.Phase.Terminal() || m.gameState.Phase == core.PhasePaused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleNameKey feeds keystrokes to the name prompt.
func (m GameModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		name := m.nameInput.Value()
		if name == "" {
			name = m.player
		}
		m.saveScore(name)
		m.enteringName = false
		return m, nil
	case "esc":
		m.saveScore(m.player)
		m.enteringName = false
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the game so the field matches the terminal
	if !m.gameState.Phase.Terminal() {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Phase.Terminal() {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.enteringName = false
		m.nameInput.SetValue("")
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Phase.Terminal() && !m.scoreSaved && !m.enteringName {
		m.finishRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// finishRun decides what to do with the final score: leaderboard entries
// get a name prompt, everything else is saved quietly.
func (m *GameModel) finishRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		m.scoreSaved = true
		return
	}

	high, err := m.store.IsHighScore(m.game.ID(), m.gameState.Score, highScoreTableSize)
	if err == nil && high {
		m.enteringName = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return
	}

	m.saveScore(m.player)
}

// saveScreenshot dumps the current screen to a timestamped text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".quarters", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// saveScore persists the finished run under the given name.
func (m *GameModel) saveScore(name string) {
	if m.store != nil && m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), name, m.gameState.Score)
	}
	m.scoreSaved = true
}

// namePromptStyle frames the high score name prompt.
var namePromptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("229")).
	Padding(0, 2)

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.enteringName {
		prompt := namePromptStyle.Render(fmt.Sprintf(
			"New high score: %d!\nEnter your name:\n%s\n(enter to save, esc to skip)",
			m.gameState.Score, m.nameInput.View()))
		out += "\n" + prompt
	}

	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
