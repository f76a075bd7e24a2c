// Package assets resolves the sprite set the runner needs before a session
// can start. Providers only report intrinsic sizes plus an opaque handle;
// the simulation never sees how images are stored or drawn.
package assets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sprite set layout.
const (
	RunFrames     = 7
	EnemyVariants = 3
)

// Fixed identifiers of the player poses.
const (
	IDIdle = "idle"
	IDJump = "jump"
	IDFall = "fall"
)

// RunID returns the identifier of run frame i (0-based).
func RunID(i int) string {
	return fmt.Sprintf("run%d", i+1)
}

// EnemyID returns the identifier of enemy variant i (0-based).
func EnemyID(i int) string {
	return fmt.Sprintf("enemy%d", i+1)
}

// DefaultIDs lists every identifier a session needs, in load order.
func DefaultIDs() []string {
	ids := []string{IDIdle, IDJump, IDFall}
	for i := 0; i < RunFrames; i++ {
		ids = append(ids, RunID(i))
	}
	for i := 0; i < EnemyVariants; i++ {
		ids = append(ids, EnemyID(i))
	}
	return ids
}

// Image is a resolved asset.
type Image struct {
	ID     string
	Width  int
	Height int
	Handle any // Provider specific; passed through to rendering untouched
}

// Provider resolves a single identifier.
type Provider interface {
	Resolve(ctx context.Context, id string) (Image, error)
}

// ErrLoad marks a failed load phase. Every error returned by Load matches it.
var ErrLoad = errors.New("assets: load failed")

// LoadError reports which identifier could not be resolved.
type LoadError struct {
	ID  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: cannot load %q: %v", e.ID, e.Err)
}

// Unwrap exposes both ErrLoad and the provider error.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// Status is the load phase state the platform reports to the user.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// String returns the user-visible status text.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "Loading..."
	case StatusReady:
		return "Space / Click to jump"
	case StatusFailed:
		return "Error loading assets"
	default:
		return "Unknown"
	}
}

// Load resolves all ids concurrently. The first failure cancels the rest
// and fails the whole phase; there is no partial catalog.
func Load(ctx context.Context, p Provider, ids []string) (*Catalog, error) {
	images := make([]Image, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			img, err := p.Resolve(gctx, id)
			if err != nil {
				return &LoadError{ID: id, Err: err}
			}
			if img.Width <= 0 || img.Height <= 0 {
				return &LoadError{ID: id, Err: fmt.Errorf("invalid size %dx%d", img.Width, img.Height)}
			}
			img.ID = id
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewCatalog(images)
}
