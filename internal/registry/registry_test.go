package registry

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/assets"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		source     string
		wantScheme string
		wantArg    string
	}{
		{"", "builtin", ""},
		{"builtin", "builtin", ""},
		{"dir:/tmp/sprites", "dir", "/tmp/sprites"},
		{"dir:C:/sprites", "dir", "C:/sprites"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			scheme, arg := ParseSource(tt.source)
			if scheme != tt.wantScheme || arg != tt.wantArg {
				t.Errorf("ParseSource(%q) = (%q, %q), expected (%q, %q)",
					tt.source, scheme, arg, tt.wantScheme, tt.wantArg)
			}
		})
	}
}

func TestCreateBuiltin(t *testing.T) {
	p, err := Create("builtin")
	if err != nil {
		t.Fatalf("Create(builtin) failed: %v", err)
	}
	if _, ok := p.(*assets.GlyphProvider); !ok {
		t.Errorf("expected *assets.GlyphProvider, got %T", p)
	}
}

func TestCreateDir(t *testing.T) {
	dir := t.TempDir()
	p, err := Create("dir:" + dir)
	if err != nil {
		t.Fatalf("Create(dir) failed: %v", err)
	}
	dp, ok := p.(*assets.DirProvider)
	if !ok {
		t.Fatalf("expected *assets.DirProvider, got %T", p)
	}
	if dp.Root() != dir {
		t.Errorf("Root() = %q, expected %q", dp.Root(), dir)
	}

	if _, err := Create("dir"); err == nil {
		t.Error("dir without a path should fail")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("s3:bucket"); err == nil {
		t.Error("unknown scheme should fail")
	}
}

func TestList(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 providers, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Scheme > list[i].Scheme {
			t.Error("List() should be sorted by scheme")
		}
	}
	if !Exists("builtin") || !Exists("dir") {
		t.Error("builtin and dir should be registered")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("builtin", "", nil)
}
