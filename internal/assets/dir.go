package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for DecodeConfig
	"os"
	"path/filepath"
)

// DirProvider reads <root>/<id>.png files. Only the PNG header is decoded;
// the handle is the file path.
type DirProvider struct {
	root string
}

// Dir creates a provider rooted at the given directory.
func Dir(root string) *DirProvider {
	return &DirProvider{root: root}
}

// Root returns the directory the provider reads from.
func (p *DirProvider) Root() string {
	return p.root
}

// Resolve implements Provider.
func (p *DirProvider) Resolve(ctx context.Context, id string) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	path := filepath.Join(p.root, id+".png")
	f, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if format != "png" {
		return Image{}, fmt.Errorf("%s: unsupported format %q", path, format)
	}

	return Image{
		ID:     id,
		Width:  cfg.Width,
		Height: cfg.Height,
		Handle: path,
	}, nil
}
