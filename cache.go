package quadview

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultCacheSize is the default number of non-placeholder tiles a
// TileCache holds before evicting.
const DefaultCacheSize = 16

// Tile is a decoded image resource held by a TileCache. The cache owns the
// underlying image exclusively: eviction and Clear deallocate it, so
// callers must not retain a Tile across ticks that may insert new entries.
type Tile struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

// Bounds returns the full rectangle of the tile, (0,0)-(Width,Height).
func (t *Tile) Bounds() Bounds {
	return fullBounds(t.Width, t.Height)
}

// release deallocates the tile's image immediately.
func (t *Tile) release() {
	if t.Image != nil {
		t.Image.Deallocate()
		t.Image = nil
	}
}

// Loader resolves a resource key to a decoded image. Returning an error
// means the resource does not exist; the cache recovers by substituting the
// shared placeholder tile.
type Loader interface {
	Load(key string) (*ebiten.Image, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(key string) (*ebiten.Image, error)

// Load calls f(key).
func (f LoaderFunc) Load(key string) (*ebiten.Image, error) { return f(key) }

// TileCache is a bounded key→tile store with insertion-order (FIFO)
// eviction. Deliberately FIFO, not LRU: re-requesting a tile does not
// protect it from eviction, matching the navigator's reference behavior.
//
// A single shared placeholder tile backs every failed load. It is created
// lazily on first fallback, does not count against capacity, is never
// evicted, and is released only by Clear.
//
// TileCache is not safe for concurrent use (quadview is single-threaded).
type TileCache struct {
	capacity int
	tiles    map[string]*Tile
	order    []string // insertion order, oldest first

	placeholder     *Tile
	placeholderSize int
	// failed records keys whose load already failed; they resolve straight
	// to the placeholder without re-invoking the loader. Holds no image
	// resources, so it is exempt from capacity and eviction.
	failed map[string]struct{}

	logger *log.Logger
}

// NewTileCache creates a cache holding at most capacity tiles. A capacity
// < 1 falls back to DefaultCacheSize. A nil logger falls back to
// log.Default().
func NewTileCache(capacity int, logger *log.Logger) *TileCache {
	if capacity < 1 {
		capacity = DefaultCacheSize
	}
	if logger == nil {
		logger = log.Default()
	}
	return &TileCache{
		capacity:        capacity,
		tiles:           make(map[string]*Tile, capacity),
		order:           make([]string, 0, capacity),
		placeholderSize: DefaultPlaceholderSize,
		failed:          make(map[string]struct{}),
		logger:          logger,
	}
}

// SetPlaceholderSize overrides the edge length of the lazily created
// placeholder tile. No effect once the placeholder exists.
func (c *TileCache) SetPlaceholderSize(size int) {
	c.placeholderSize = size
}

// Len returns the number of cached tiles, not counting the placeholder.
func (c *TileCache) Len() int { return len(c.tiles) }

// Contains reports whether key is currently cached.
func (c *TileCache) Contains(key string) bool {
	_, ok := c.tiles[key]
	return ok
}

// GetOrLoad returns the tile for key, invoking loader on a miss. When the
// loader fails the shared placeholder tile is returned instead and
// placeholder is true; the fallback is logged but never surfaced as an
// error, and later lookups of the same key reuse the placeholder without
// invoking the loader again. Inserting past capacity evicts the
// oldest-inserted tile and deallocates its image immediately.
func (c *TileCache) GetOrLoad(key string, loader Loader) (tile *Tile, placeholder bool) {
	if t, ok := c.tiles[key]; ok {
		return t, false
	}
	if _, ok := c.failed[key]; ok {
		return c.placeholderTile(), true
	}

	img, err := loader.Load(key)
	if err != nil {
		c.logger.Warn("tile not found, using placeholder", "key", key, "err", err)
		c.failed[key] = struct{}{}
		return c.placeholderTile(), true
	}

	if len(c.tiles) >= c.capacity {
		c.evictOldest()
	}

	b := img.Bounds()
	t := &Tile{Image: img, Width: b.Dx(), Height: b.Dy()}
	c.tiles[key] = t
	c.order = append(c.order, key)
	c.logger.Debug("loaded and cached tile", "key", key, "size", len(c.tiles))
	return t, false
}

// evictOldest removes and releases the earliest-inserted tile.
func (c *TileCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if t, ok := c.tiles[oldest]; ok {
		delete(c.tiles, oldest)
		t.release()
		c.logger.Debug("evicted tile", "key", oldest)
	}
}

// placeholderTile returns the shared placeholder, creating it on first use.
func (c *TileCache) placeholderTile() *Tile {
	if c.placeholder == nil {
		img := NewPlaceholderImage(c.placeholderSize)
		b := img.Bounds()
		c.placeholder = &Tile{Image: img, Width: b.Dx(), Height: b.Dy()}
	}
	return c.placeholder
}

// Clear releases every cached tile, including the placeholder. Use at
// shutdown; the cache remains usable afterwards.
func (c *TileCache) Clear() {
	for key, t := range c.tiles {
		delete(c.tiles, key)
		t.release()
	}
	c.order = c.order[:0]
	clear(c.failed)
	if c.placeholder != nil {
		c.placeholder.release()
		c.placeholder = nil
	}
}
