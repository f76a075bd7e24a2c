package assets

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// spriteManifest is the on-disk layout of a glyph sprite set.
type spriteManifest struct {
	Sprites []spriteEntry `yaml:"sprites"`
}

type spriteEntry struct {
	ID     string   `yaml:"id"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Art    []string `yaml:"art"`
}

// GlyphProvider serves sprites from a YAML manifest. The handle of every
// image is its art lines.
type GlyphProvider struct {
	sprites map[string]spriteEntry
}

// Builtin returns the provider backed by the embedded manifest.
func Builtin() (*GlyphProvider, error) {
	return ParseManifest(builtinYAML)
}

// ParseManifest builds a provider from manifest YAML.
func ParseManifest(data []byte) (*GlyphProvider, error) {
	var m spriteManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}

	p := &GlyphProvider{sprites: make(map[string]spriteEntry, len(m.Sprites))}
	for _, s := range m.Sprites {
		if s.ID == "" {
			return nil, fmt.Errorf("assets: manifest entry without id")
		}
		if _, dup := p.sprites[s.ID]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", s.ID)
		}
		p.sprites[s.ID] = s
	}
	return p, nil
}

// Resolve implements Provider.
func (p *GlyphProvider) Resolve(ctx context.Context, id string) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	s, ok := p.sprites[id]
	if !ok {
		return Image{}, fmt.Errorf("no sprite named %q", id)
	}
	return Image{
		ID:     id,
		Width:  s.Width,
		Height: s.Height,
		Handle: s.Art,
	}, nil
}
