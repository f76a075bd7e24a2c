package assets

import "fmt"

// Catalog is a complete, resolved sprite set.
type Catalog struct {
	byID    map[string]Image
	run     []Image
	enemies []Image
}

// NewCatalog indexes images and checks that the full set is present.
func NewCatalog(images []Image) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Image, len(images))}
	for _, img := range images {
		c.byID[img.ID] = img
	}

	for _, id := range []string{IDIdle, IDJump, IDFall} {
		if _, ok := c.byID[id]; !ok {
			return nil, &LoadError{ID: id, Err: fmt.Errorf("missing from set")}
		}
	}
	for i := 0; i < RunFrames; i++ {
		img, ok := c.byID[RunID(i)]
		if !ok {
			return nil, &LoadError{ID: RunID(i), Err: fmt.Errorf("missing from set")}
		}
		c.run = append(c.run, img)
	}
	for i := 0; i < EnemyVariants; i++ {
		img, ok := c.byID[EnemyID(i)]
		if !ok {
			return nil, &LoadError{ID: EnemyID(i), Err: fmt.Errorf("missing from set")}
		}
		c.enemies = append(c.enemies, img)
	}
	return c, nil
}

// Image returns the image with the given id.
func (c *Catalog) Image(id string) (Image, bool) {
	img, ok := c.byID[id]
	return img, ok
}

// Images returns the set in DefaultIDs order.
func (c *Catalog) Images() []Image {
	ids := DefaultIDs()
	out := make([]Image, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.byID[id])
	}
	return out
}

// RunFrames returns the number of run cycle frames.
func (c *Catalog) RunFrames() int {
	return len(c.run)
}

// EnemyVariants returns the number of enemy looks.
func (c *Catalog) EnemyVariants() int {
	return len(c.enemies)
}

// EnemySize returns the intrinsic size of an enemy variant.
func (c *Catalog) EnemySize(variant int) (w, h float64) {
	img := c.enemies[variant]
	return float64(img.Width), float64(img.Height)
}

// Glyph returns terminal art for id, or nil if the handle carries none.
func (c *Catalog) Glyph(id string) []string {
	img, ok := c.byID[id]
	if !ok {
		return nil
	}
	if art, ok := img.Handle.([]string); ok {
		return art
	}
	return nil
}
