package tui

import (
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/replay"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func testOptions(source string, store *storage.Store) Options {
	return Options{
		Runner:      config.DefaultRunnerConfig(),
		AssetSource: source,
		Store:       store,
		Logger:      log.New(io.Discard),
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// loaded runs the asset load command and feeds its result back.
func loaded(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(m.Init()())
	return next.(Model), cmd
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelLoadsAssetsThenTicks(t *testing.T) {
	m := NewModel(testOptions("builtin", nil), testRuntime())
	if m.Status() != assets.StatusLoading {
		t.Fatalf("new model status = %v, expected loading", m.Status())
	}
	if !strings.Contains(m.View(), "Loading...") {
		t.Error("loading view should show the status text")
	}

	m, cmd := loaded(t, m)
	if m.Status() != assets.StatusReady {
		t.Fatalf("status = %v, expected ready", m.Status())
	}
	if cmd == nil {
		t.Fatal("ready model should start the tick loop")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("ready view should show the HUD")
	}
}

func TestModelLoadFailureNeverTicks(t *testing.T) {
	for _, source := range []string{"dir:" + t.TempDir(), "ftp:somewhere"} {
		m, cmd := loaded(t, NewModel(testOptions(source, nil), testRuntime()))

		if m.Status() != assets.StatusFailed {
			t.Fatalf("%s: status = %v, expected failed", source, m.Status())
		}
		if cmd != nil {
			t.Errorf("%s: failed load should not start ticking", source)
		}
		if _, cmd := send(m, TickMsg(time.Now())); cmd != nil {
			t.Errorf("%s: tick after failure should be ignored", source)
		}
		if !strings.Contains(m.View(), "Error loading assets") {
			t.Errorf("%s: view should report the failure", source)
		}
	}
}

func TestModelFrameDeltaIsClamped(t *testing.T) {
	m, _ := loaded(t, NewModel(testOptions("builtin", nil), testRuntime()))

	start := time.Unix(1000, 0)
	m, _ = send(m, TickMsg(start))
	elapsed := m.game.Snapshot().State.Elapsed
	if math.Abs(elapsed-1.0/60) > 1e-9 {
		t.Errorf("first tick elapsed = %v, expected 1/60", elapsed)
	}

	m, _ = send(m, TickMsg(start.Add(time.Second)))
	elapsed = m.game.Snapshot().State.Elapsed
	if want := 1.0/60 + 0.05; math.Abs(elapsed-want) > 1e-9 {
		t.Errorf("elapsed after a stall = %v, expected %v", elapsed, want)
	}

	m, _ = send(m, TickMsg(start.Add(time.Second+20*time.Millisecond)))
	elapsed = m.game.Snapshot().State.Elapsed
	if want := 1.0/60 + 0.05 + 0.02; math.Abs(elapsed-want) > 1e-9 {
		t.Errorf("elapsed = %v, expected %v", elapsed, want)
	}
}

func TestModelJumpKeyAndClick(t *testing.T) {
	m, _ := loaded(t, NewModel(testOptions("builtin", nil), testRuntime()))
	now := time.Unix(1000, 0)

	m, _ = send(m, runeKey('w'))
	m, _ = send(m, TickMsg(now))
	if jumps := m.game.Stats().Jumps; jumps != 1 {
		t.Fatalf("jumps after key = %d, expected 1", jumps)
	}

	// Stay in the air, then land and click
	for i := 1; i < 120; i++ {
		m, _ = send(m, TickMsg(now.Add(time.Duration(i)*16*time.Millisecond)))
	}
	m, _ = send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, TickMsg(now.Add(120*16*time.Millisecond)))
	if jumps := m.game.Stats().Jumps; jumps != 2 {
		t.Errorf("jumps after click = %d, expected 2", jumps)
	}
}

func TestModelSavesRunOnceOnCrash(t *testing.T) {
	store := openStore(t)
	m, _ := loaded(t, NewModel(testOptions("builtin", store), testRuntime()))
	now := time.Unix(1000, 0)

	i := 0
	for ; i < 400 && !m.State().GameOver; i++ {
		m, _ = send(m, TickMsg(now.Add(time.Duration(i)*50*time.Millisecond)))
	}
	if !m.State().GameOver {
		t.Fatal("a player that never jumps should crash")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game over overlay")
	}

	// The loop keeps running after the crash
	for j := 0; j < 20; j++ {
		m, _ = send(m, TickMsg(now.Add(time.Duration(i+j)*50*time.Millisecond)))
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != m.State().Score {
		t.Errorf("scores = %+v, expected one entry of %d", scores, m.State().Score)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Seed != 7 || runs[0].Jumps != 0 || runs[0].Elapsed <= 0 {
		t.Errorf("unexpected run record: %+v", runs[0])
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	m, _ := loaded(t, NewModel(testOptions("builtin", nil), testRuntime()))
	now := time.Unix(1000, 0)
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, cmd := send(m, esc)
	if m.BackToMenu() || cmd != nil {
		t.Fatal("back should be ignored during a run")
	}

	m, _ = send(m, runeKey('p'))
	m, _ = send(m, TickMsg(now))
	if !m.State().Paused {
		t.Fatal("p should pause the run")
	}

	m, cmd = send(m, esc)
	if !m.BackToMenu() || !isQuit(cmd) {
		t.Error("back while paused should leave the game")
	}
	if m.IsQuitting() {
		t.Error("back is not a quit")
	}
}

func TestModelRecordsEveryTick(t *testing.T) {
	cfg := testRuntime()
	opts := testOptions("builtin", nil)
	rec := replay.NewRecorder(cfg.Seed, opts.Runner, opts.AssetSource)
	opts.Recorder = rec

	m, _ := loaded(t, NewModel(opts, cfg))
	now := time.Unix(1000, 0)
	for i := 0; i < 30; i++ {
		if i == 10 {
			m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		}
		m, _ = send(m, TickMsg(now.Add(time.Duration(i)*16*time.Millisecond)))
	}

	if rec.Len() != 30 {
		t.Fatalf("recorded %d frames, expected 30", rec.Len())
	}
	frame := rec.Recording().Frames[10]
	if len(frame.Actions) != 1 || frame.Actions[0] != core.ActionJump.String() {
		t.Errorf("frame 10 actions = %v, expected the jump", frame.Actions)
	}
}

func TestSessionMenuGameScoresFlow(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(testOptions("builtin", store), testRuntime())

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	// Play is the first entry
	cmd := step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || cmd == nil {
		t.Fatal("enter on Play should start a game")
	}
	step(cmd())
	if s.game.Status() != assets.StatusReady {
		t.Fatalf("game status = %v, expected ready", s.game.Status())
	}

	step(runeKey('p'))
	step(TickMsg(time.Unix(1000, 0)))
	if cmd := step(tea.KeyMsg{Type: tea.KeyEsc}); isQuit(cmd) {
		t.Error("leaving a game must not end the session")
	}
	if s.screen != screenMenu {
		t.Fatal("back should return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenScores {
		t.Fatal("High Scores should open the scoreboard")
	}
	if cmd := step(tea.KeyMsg{Type: tea.KeyEsc}); isQuit(cmd) || s.screen != screenMenu {
		t.Error("back from the scoreboard should return to the menu")
	}

	if cmd := step(runeKey('q')); !isQuit(cmd) {
		t.Error("q in the menu should end the session")
	}
	if s.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
