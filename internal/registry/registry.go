// Package registry provides a global registry of asset provider factories.
// Providers register themselves by scheme in init(), allowing the platform
// to pick a sprite source from a flag value without hardcoded dependencies.
//
// A source is written as "scheme" or "scheme:arg", e.g. "builtin" or
// "dir:/path/to/sprites".
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/assets"
)

// DefaultSource is used when no source is given.
const DefaultSource = "builtin"

// ProviderInfo contains metadata about a registered provider.
type ProviderInfo struct {
	Scheme      string
	Description string
}

// Factory creates a provider from the part of the source after the colon.
type Factory func(arg string) (assets.Provider, error)

type entry struct {
	factory     Factory
	description string
}

var (
	factories = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a provider factory to the registry.
// Panics if a provider with the same scheme is already registered.
func Register(scheme, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[scheme]; exists {
		panic(fmt.Sprintf("registry: provider %q already registered", scheme))
	}

	factories[scheme] = entry{factory: f, description: description}
}

// List returns information about all registered providers, sorted by scheme.
func List() []ProviderInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ProviderInfo, 0, len(factories))
	for scheme, e := range factories {
		result = append(result, ProviderInfo{
			Scheme:      scheme,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Scheme < result[j].Scheme
	})

	return result
}

// ParseSource splits a source into scheme and argument.
func ParseSource(source string) (scheme, arg string) {
	if source == "" {
		source = DefaultSource
	}
	scheme, arg, _ = strings.Cut(source, ":")
	return scheme, arg
}

// Create instantiates the provider named by source.
// Returns an error if the scheme is not registered.
func Create(source string) (assets.Provider, error) {
	scheme, arg := ParseSource(source)

	mu.RLock()
	e, ok := factories[scheme]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown asset source %q", scheme)
	}

	p, err := e.factory(arg)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", scheme, err)
	}
	return p, nil
}

// Exists checks if a provider with the given scheme is registered.
func Exists(scheme string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[scheme]
	return ok
}

func init() {
	Register("builtin", "embedded terminal sprites", func(string) (assets.Provider, error) {
		p, err := assets.Builtin()
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	Register("dir", "PNG files <id>.png in a directory (dir:/path)", func(arg string) (assets.Provider, error) {
		if arg == "" {
			return nil, fmt.Errorf("missing directory, use dir:/path")
		}
		return assets.Dir(arg), nil
	})
}
