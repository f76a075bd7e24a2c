package replay

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func builtinCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	p, err := assets.Builtin()
	require.NoError(t, err)
	cat, err := assets.Load(context.Background(), p, assets.DefaultIDs())
	require.NoError(t, err)
	return cat
}

// playSession drives a game the way the TUI does and records it.
func playSession(t *testing.T, cat *assets.Catalog) (*Recorder, runner.Snapshot) {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	g := runner.New(cfg, cat, 1234)
	g.Reset()
	rec := NewRecorder(1234, cfg, "builtin")

	for i := 0; i < 1500; i++ {
		in := core.NewInputFrame()
		if i%35 == 0 {
			in.Push(core.ActionJump)
		}
		if g.State().GameOver && i%90 == 0 {
			in.Push(core.ActionRestart)
		}
		// Uneven frame times, as from a real clock.
		dt := 1.0 / 60
		if i%7 == 0 {
			dt = 1.0 / 45
		}
		rec.Record(dt, in)
		g.Step(dt, in)
	}
	return rec, g.Snapshot()
}

func TestRunReproducesSession(t *testing.T) {
	cat := builtinCatalog(t)
	rec, want := playSession(t, cat)

	res, err := Run(rec.Recording(), cat)
	require.NoError(t, err)

	assert.Equal(t, rec.Len(), res.Ticks)
	assert.Equal(t, want, res.Final)
	assert.Positive(t, res.Jumps)
}

func TestSaveLoadReproducesSession(t *testing.T) {
	cat := builtinCatalog(t)
	rec, want := playSession(t, cat)

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, Save(path, rec.Recording()))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), loaded.Seed)
	assert.Equal(t, "builtin", loaded.Assets)

	res, err := Run(loaded, cat)
	require.NoError(t, err)
	assert.Equal(t, want, res.Final)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(1, config.DefaultRunnerConfig(), "builtin").Recording()
	rec.Version = 99
	require.NoError(t, Encode(&buf, rec))

	_, err := Decode(&buf)
	assert.True(t, errors.Is(err, ErrVersion))
}

func TestDecodeRejectsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(1, config.DefaultRunnerConfig(), "builtin").Recording()
	rec.Config.Speed.Max = 1
	require.NoError(t, Encode(&buf, rec))

	_, err := Decode(&buf)
	var verr config.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestRunRejectsUnknownAction(t *testing.T) {
	rec := NewRecorder(1, config.DefaultRunnerConfig(), "builtin").Recording()
	rec.Frames = []Frame{{Dt: 0.016}, {Dt: 0.016, Actions: []string{"Teleport"}}}

	_, err := Run(rec, builtinCatalog(t))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "frame 1"))
}
