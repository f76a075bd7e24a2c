// Package replay records the (dt, input) sequence of a session and
// re-simulates it. The simulation is deterministic, so a recording plus the
// same sprite sizes reproduces the session exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// FormatVersion is written into every recording.
const FormatVersion = 1

// ErrVersion is returned for recordings written by an unknown format.
var ErrVersion = errors.New("replay: unsupported format version")

// Frame is one tick of input.
type Frame struct {
	Dt      float64  `yaml:"dt"`
	Actions []string `yaml:"actions,omitempty,flow"`
}

// Recording is a complete session.
type Recording struct {
	Version int                 `yaml:"version"`
	Seed    int64               `yaml:"seed"`
	Assets  string              `yaml:"assets"` // Asset source the session used
	Config  config.RunnerConfig `yaml:"config"`
	Frames  []Frame             `yaml:"frames"`
}

// Recorder collects frames as the platform steps the game.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a session.
func NewRecorder(seed int64, cfg config.RunnerConfig, assetSource string) *Recorder {
	return &Recorder{rec: Recording{
		Version: FormatVersion,
		Seed:    seed,
		Assets:  assetSource,
		Config:  cfg,
	}}
}

// Record appends one tick. The input frame is copied.
func (r *Recorder) Record(dt float64, in core.InputFrame) {
	f := Frame{Dt: dt}
	for _, a := range in.Actions {
		f.Actions = append(f.Actions, a.String())
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording returns the recording collected so far.
func (r *Recorder) Recording() *Recording {
	return &r.rec
}

// Encode writes a recording as YAML.
func Encode(w io.Writer, rec *Recording) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML recording and checks its version and config.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if err := rec.Config.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &rec, nil
}

// Save writes a recording to path.
func Save(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: cannot create %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Result summarizes a re-simulated session.
type Result struct {
	Final    runner.Snapshot
	Ticks    int
	Crashes  int
	Restarts int
	Jumps    int
}

// Run re-simulates a recording from a fresh game.
func Run(rec *Recording, sprites runner.Sprites) (Result, error) {
	g := runner.New(rec.Config, sprites, rec.Seed)
	g.Reset()

	var res Result
	in := core.NewInputFrame()
	for i, f := range rec.Frames {
		in.Clear()
		for _, name := range f.Actions {
			a := core.ParseAction(name)
			if a == core.ActionNone {
				return res, fmt.Errorf("replay: frame %d: unknown action %q", i, name)
			}
			in.Push(a)
		}

		step := g.Step(f.Dt, in)
		res.Ticks++
		for _, e := range step.Events {
			switch e {
			case core.EventCrashed:
				res.Crashes++
			case core.EventRestarted:
				res.Restarts++
			case core.EventJumped:
				res.Jumps++
			}
		}
	}

	res.Final = g.Snapshot()
	return res, nil
}
