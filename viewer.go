package quadview

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ViewerConfig configures a Viewer. BaseName and Loader are required.
type ViewerConfig struct {
	// BaseName is the root tile's resource key, e.g. "root.jpg". Keys for
	// nested tiles derive from it via ResourceKey.
	BaseName string
	// Loader resolves resource keys to images.
	Loader Loader
	// CacheSize bounds the tile cache; 0 means DefaultCacheSize.
	CacheSize int
	// Frames is the zoom animation length; 0 means DefaultFrameCount.
	// Values below 2 are rejected.
	Frames int
	// StartPath is the initial navigation path; nil means the root tile.
	StartPath Path
	// Logger receives load, fallback, and zoom events; nil means
	// log.Default().
	Logger *log.Logger
}

// Viewer owns the navigation state of a quadrant-tile hierarchy: the
// current path, the current tile, the hovered quadrant, and the zoom
// animation in flight, if any.
//
// The viewer advances only on explicit Tick calls from the host's
// scheduler; there are no background goroutines. All methods must be called
// from a single goroutine.
type Viewer struct {
	base   string
	loader Loader
	cache  *TileCache
	logger *log.Logger

	path      Path
	tile      *Tile
	placeheld bool // current tile is the shared placeholder
	hovered   Quadrant

	session *zoomSession
	frames  int

	// resource keys memoized by canonical path string; derivation is pure,
	// so entries never invalidate.
	keys map[string]string
}

// NewViewer creates a Viewer and synchronously loads the tile at the start
// path (falling back to the placeholder if the loader cannot resolve it).
func NewViewer(cfg ViewerConfig) (*Viewer, error) {
	if cfg.BaseName == "" {
		return nil, errors.New("quadview: ViewerConfig.BaseName is required")
	}
	if cfg.Loader == nil {
		return nil, errors.New("quadview: ViewerConfig.Loader is required")
	}
	frames := cfg.Frames
	if frames == 0 {
		frames = DefaultFrameCount
	}
	if frames < 2 {
		return nil, fmt.Errorf("quadview: ViewerConfig.Frames must be >= 2, got %d", cfg.Frames)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	v := &Viewer{
		base:   cfg.BaseName,
		loader: cfg.Loader,
		cache:  NewTileCache(cfg.CacheSize, logger),
		logger: logger,
		path:   cfg.StartPath,
		frames: frames,
		keys:   make(map[string]string),
	}
	v.tile, v.placeheld = v.cache.GetOrLoad(v.resourceKey(v.path), v.loader)
	return v, nil
}

// Path returns the current navigation path. During an outward zoom this is
// already the destination (parent) path; during an inward zoom it remains
// the origin until the animation completes.
func (v *Viewer) Path() Path { return v.path }

// CurrentTile returns the tile the viewport is framing. The viewer's cache
// owns it; do not retain across ticks.
func (v *Viewer) CurrentTile() *Tile { return v.tile }

// ShowingPlaceholder reports whether the current tile is the shared
// placeholder substituted after a failed load.
func (v *Viewer) ShowingPlaceholder() bool { return v.placeheld }

// HoveredQuadrant returns the quadrant under the pointer.
func (v *Viewer) HoveredQuadrant() Quadrant { return v.hovered }

// IsAnimating reports whether a zoom transition is in flight.
func (v *Viewer) IsAnimating() bool { return v.session != nil }

// Direction returns the in-flight zoom direction; ok is false when idle.
func (v *Viewer) Direction() (dir ZoomDirection, ok bool) {
	if v.session == nil {
		return 0, false
	}
	return v.session.direction, true
}

// Viewport returns the rectangle of the current tile the renderer should
// frame: the interpolated bounds while animating, the full tile otherwise.
// Top-left origin, Y downward; see Bounds.FlipY for Y-up renderers.
func (v *Viewer) Viewport() Bounds {
	if v.session != nil {
		return v.session.current
	}
	return v.tile.Bounds()
}

// resourceKey derives (and memoizes) the key for the tile at path p.
func (v *Viewer) resourceKey(p Path) string {
	canon := p.String()
	if key, ok := v.keys[canon]; ok {
		return key
	}
	key := ResourceKey(v.base, p)
	v.keys[canon] = key
	return key
}

// ZoomIn starts an inward zoom into the hovered quadrant. It reports
// whether an animation started; a request while another animation is in
// flight is a silent no-op.
func (v *Viewer) ZoomIn() bool {
	return v.ZoomInto(v.hovered)
}

// ZoomInto starts an inward zoom into quadrant q. The destination path and
// tile are committed only when the animation completes. Out-of-range
// quadrants are clamped.
func (v *Viewer) ZoomInto(q Quadrant) bool {
	if v.session != nil {
		return false
	}
	q = clampQuadrant(q)

	start := v.tile.Bounds()
	end := QuadrantBounds(v.tile.Width, v.tile.Height, q)
	pending := v.path.Append(q)

	v.session = newZoomSession(ZoomIn, start, end, v.frames, pending)
	v.logger.Info("zooming in", "quadrant", int(q), "path", pending.String())
	return true
}

// ZoomOut starts an outward zoom to the parent tile. It reports whether an
// animation started; requests at the root or while animating are silent
// no-ops.
//
// The parent tile is loaded immediately and the path updates at session
// start rather than on completion, so anything displaying the path shows
// the destination during the outward transition. The asymmetry with ZoomIn
// is deliberate, preserved from the reference behavior.
func (v *Viewer) ZoomOut() bool {
	if v.session != nil {
		return false
	}
	parent, removed, ok := v.path.Pop()
	if !ok {
		return false
	}

	v.path = parent
	v.tile, v.placeheld = v.cache.GetOrLoad(v.resourceKey(parent), v.loader)

	start := QuadrantBounds(v.tile.Width, v.tile.Height, removed)
	end := v.tile.Bounds()

	v.session = newZoomSession(ZoomOut, start, end, v.frames, nil)
	v.logger.Info("zooming out", "path", parent.String())
	return true
}

// Tick advances the in-flight animation by one frame and reports whether
// it completed on this tick. Idle ticks are no-ops.
func (v *Viewer) Tick() (completed bool) {
	if v.session == nil {
		return false
	}
	if v.session.step() {
		v.finishZoom()
		return true
	}
	return false
}

// finishZoom commits the completed session: an inward zoom adopts the
// pending path and resolves its tile (placeholder on load failure), an
// outward zoom already did both at session start.
func (v *Viewer) finishZoom() {
	s := v.session
	v.session = nil
	if s.direction == ZoomIn {
		v.path = s.pending
		v.tile, v.placeheld = v.cache.GetOrLoad(v.resourceKey(s.pending), v.loader)
	}
}

// PointerMoved classifies (x, y) in current-tile pixel space and updates
// the hovered quadrant, reporting whether it changed. Hover is frozen while
// animating.
func (v *Viewer) PointerMoved(x, y float64) (changed bool) {
	if v.session != nil {
		return false
	}
	return v.SetHoveredQuadrant(ClassifyPoint(x, y, v.tile.Width, v.tile.Height))
}

// SetHoveredQuadrant sets the hovered quadrant directly, for hosts that do
// their own hit-testing. It reports whether the hover changed; changes are
// ignored while animating.
func (v *Viewer) SetHoveredQuadrant(q Quadrant) (changed bool) {
	if v.session != nil {
		return false
	}
	q = clampQuadrant(q)
	if q == v.hovered {
		return false
	}
	v.hovered = q
	return true
}

// HighlightBounds returns the rectangle of the hovered quadrant, for the
// idle-frame hover overlay.
func (v *Viewer) HighlightBounds() Bounds {
	return QuadrantBounds(v.tile.Width, v.tile.Height, v.hovered)
}

// LabelAnchors returns the four quadrant label positions for the current
// tile, ordered by quadrant index.
func (v *Viewer) LabelAnchors() [4]Vec2 {
	return LabelAnchors(v.tile.Width, v.tile.Height)
}

// Close finalizes any in-flight animation (equivalent to ticking it to the
// final frame, so the path and tile are never left half-committed) and
// releases every cached tile. The viewer must not be used afterwards.
func (v *Viewer) Close() {
	if v.session != nil {
		for !v.session.step() {
		}
		v.finishZoom()
	}
	v.cache.Clear()
	v.tile = nil
}
