package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/replay"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures a game session.
type Options struct {
	Runner      config.RunnerConfig
	AssetSource string              // Registry source, e.g. "builtin" or "dir:/path"
	Store       *storage.Store      // Optional; scores are not saved when nil
	Sound       *audio.SoundManager // Optional; silent when nil
	Recorder    *replay.Recorder    // Optional; receives every simulated tick
	Logger      *log.Logger         // Optional; defaults to log.Default()
}

// assetsLoadedMsg carries the result of the asynchronous asset load.
type assetsLoadedMsg struct {
	catalog *assets.Catalog
	err     error
}

// loadAssetsCmd resolves every sprite of the runner through the registry.
func loadAssetsCmd(source string) tea.Cmd {
	return func() tea.Msg {
		p, err := registry.Create(source)
		if err != nil {
			return assetsLoadedMsg{err: err}
		}
		cat, err := assets.Load(context.Background(), p, assets.DefaultIDs())
		return assetsLoadedMsg{catalog: cat, err: err}
	}
}

// Model is the Bubble Tea model for a runner session.
type Model struct {
	opts       Options
	config     core.RuntimeConfig
	logger     *log.Logger
	screen     *core.Screen
	status     assets.Status
	loadErr    error
	game       *runner.Game
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model. Assets load when the program starts.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		opts:       opts,
		config:     cfg,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		status:     assets.StatusLoading,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// playfieldHeight leaves the last terminal row for the help line.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts loading assets. The tick loop starts once they are ready.
func (m Model) Init() tea.Cmd {
	return loadAssetsCmd(m.opts.AssetSource)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assetsLoadedMsg:
		return m.handleAssets(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.status == assets.StatusReady {
			m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleAssets starts the first run or enters the failed state.
func (m Model) handleAssets(msg assetsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = assets.StatusFailed
		m.loadErr = msg.err
		m.logger.Error("asset load failed", "source", m.opts.AssetSource, "error", msg.err)
		return m, nil
	}

	m.game = runner.New(m.opts.Runner, msg.catalog, m.config.Seed)
	m.game.Reset()
	m.gameState = m.game.State()
	m.status = assets.StatusReady
	m.logger.Info("assets loaded", "source", m.opts.AssetSource, "images", len(msg.catalog.Images()))

	return m, tickCmd(m.config.TickRate)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.status != assets.StatusReady {
		if action, isQuit := m.keyMapper.MapKey(msg); isQuit || action == core.ActionBack {
			return m.leave(isQuit)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.leave(true)
	}
	// Back to menu is only offered when the run is not in progress
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave(false)
		}
		return m, nil
	}

	m.inputFrame.Push(action)
	return m, nil
}

// leave ends the program, either entirely or back to the menu.
// A SessionModel drops the quit command when going back.
func (m Model) leave(quit bool) (tea.Model, tea.Cmd) {
	if quit {
		m.quitting = true
	} else {
		m.backToMenu = true
	}
	return m, tea.Quit
}

// handleResize processes window resize events.
// World coordinates are scaled at render time, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// frameDelta returns the seconds since the previous tick, clamped.
// The first tick uses the nominal frame time.
func (m Model) frameDelta(now time.Time) float64 {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	return core.ClampF(dt, 0, m.opts.Runner.Clock.MaxDt)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.status != assets.StatusReady || m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.frameDelta(now)
	m.lastTick = now

	if m.opts.Recorder != nil {
		m.opts.Recorder.Record(dt, m.inputFrame)
	}

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		switch e {
		case core.EventJumped:
			if m.opts.Sound != nil {
				m.opts.Sound.PlayJump()
			}
		case core.EventCrashed:
			if m.opts.Sound != nil {
				m.opts.Sound.PlayCrash()
			}
			m.saveRun()
		case core.EventRestarted:
			m.logger.Debug("run restarted")
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Persistence is best-effort.
func (m Model) saveRun() {
	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"score", m.gameState.Score,
		"elapsed", fmt.Sprintf("%.1fs", snap.State.Elapsed),
		"jumps", snap.Stats.Jumps,
	)

	if m.opts.Store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	run := storage.RunRecord{
		Score:    m.gameState.Score,
		Elapsed:  snap.State.Elapsed,
		MaxSpeed: snap.Stats.MaxSpeed,
		Jumps:    snap.Stats.Jumps,
		Seed:     m.game.Seed(),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// draw renders the current status or the game into the screen buffer.
func (m Model) draw() {
	switch m.status {
	case assets.StatusReady:
		m.game.Render(m.screen)
		// Hint until the first jump of the session
		if m.game.Stats().Jumps == 0 && !m.gameState.GameOver {
			m.screen.DrawTextCentered(m.screen.Height()-1, m.status.String(), core.ColorGray)
		}
	case assets.StatusFailed:
		m.screen.Clear()
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid-1, m.status.String(), core.ColorBrightRed)
		if m.loadErr != nil {
			m.screen.DrawTextCentered(mid+1, m.loadErr.Error(), core.ColorGray)
		}
	default:
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, m.status.String(), core.ColorWhite)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Status returns the asset load status.
func (m Model) Status() assets.Status {
	return m.status
}

// Err returns the asset load error, if any.
func (m Model) Err() error {
	return m.loadErr
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one session and returns the final model.
func Run(opts Options, cfg core.RuntimeConfig) (Model, error) {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to jump
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		model = m
	}
	return model, err
}
