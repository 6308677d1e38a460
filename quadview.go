package quadview

// Quadrant identifies one quarter of a tile image.
type Quadrant int

const (
	QuadrantTopLeft     Quadrant = iota // 0: x < midX, y < midY
	QuadrantTopRight                    // 1: x >= midX, y < midY
	QuadrantBottomLeft                  // 2: x < midX, y >= midY
	QuadrantBottomRight                 // 3: x >= midX, y >= midY
)

// Vec2 is a 2D point or offset in image pixel space.
type Vec2 struct {
	X, Y float64
}

// Bounds is an axis-aligned rectangle in image pixel space, stored as corner
// coordinates with X1 <= X2 and Y1 <= Y2. The origin is at the top-left with
// Y increasing downward; the low edges are inclusive, the high edges
// exclusive.
type Bounds struct {
	X1, Y1, X2, Y2 float64
}

// Width returns the horizontal extent of the rectangle.
func (b Bounds) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical extent of the rectangle.
func (b Bounds) Height() float64 { return b.Y2 - b.Y1 }

// FlipY returns the rectangle with its Y corners swapped, for renderers
// whose Y axis grows upward (the matplotlib-style set_ylim(y2, y1)
// convention). Quadview itself always works top-left-origin; apply this
// only at the boundary to such a renderer.
func (b Bounds) FlipY() Bounds {
	return Bounds{X1: b.X1, Y1: b.Y2, X2: b.X2, Y2: b.Y1}
}

// fullBounds returns the rectangle covering an entire width×height image.
func fullBounds(width, height int) Bounds {
	return Bounds{X2: float64(width), Y2: float64(height)}
}

// clampQuadrant forces q into the valid 0..3 range. Callers that derive
// quadrants from ClassifyPoint never trip this; it guards hand-fed indices.
func clampQuadrant(q Quadrant) Quadrant {
	if q < QuadrantTopLeft {
		return QuadrantTopLeft
	}
	if q > QuadrantBottomRight {
		return QuadrantBottomRight
	}
	return q
}

// ClassifyPoint returns the quadrant of a width×height image containing the
// point (x, y). Points exactly on a midline classify into the higher-index
// quadrant (right/bottom bias), which pins hover behavior at the boundary.
// The classification is defined for all real coordinates; filtering points
// outside the image is the caller's responsibility.
func ClassifyPoint(x, y float64, width, height int) Quadrant {
	midX := float64(width / 2)
	midY := float64(height / 2)
	q := QuadrantTopLeft
	if y >= midY {
		q += 2
	}
	if x >= midX {
		q++
	}
	return q
}

type boundsKey struct {
	width, height int
	quadrant      Quadrant
}

// quadrant bounds memo, keyed by image size (no sync — quadview is
// single-threaded). Entries are pure functions of the key, so the map never
// needs invalidation.
var quadrantBoundsCache = map[boundsKey]Bounds{}

// QuadrantBounds returns the rectangle of quadrant q within a width×height
// image. Midpoints are integer halves rounded down, so for odd sizes the
// right/bottom quadrants are one pixel larger. Out-of-range quadrant
// indices are clamped into 0..3.
func QuadrantBounds(width, height int, q Quadrant) Bounds {
	q = clampQuadrant(q)
	key := boundsKey{width, height, q}
	if b, ok := quadrantBoundsCache[key]; ok {
		return b
	}

	midX := float64(width / 2)
	midY := float64(height / 2)
	w := float64(width)
	h := float64(height)

	var b Bounds
	switch q {
	case QuadrantTopLeft:
		b = Bounds{0, 0, midX, midY}
	case QuadrantTopRight:
		b = Bounds{midX, 0, w, midY}
	case QuadrantBottomLeft:
		b = Bounds{0, midY, midX, h}
	case QuadrantBottomRight:
		b = Bounds{midX, midY, w, h}
	}

	quadrantBoundsCache[key] = b
	return b
}

// LabelAnchors returns the four quadrant label positions for a width×height
// image, ordered by quadrant index. Each anchor sits at the center of its
// quadrant's top-left quarter (midX/2, midY/2 offsets), matching the
// classic overlay layout.
func LabelAnchors(width, height int) [4]Vec2 {
	midX := width / 2
	midY := height / 2
	qx := float64(midX / 2)
	qy := float64(midY / 2)
	mx := float64(midX)
	my := float64(midY)

	return [4]Vec2{
		{qx, qy},
		{mx + qx, qy},
		{qx, my + qy},
		{mx + qx, my + qy},
	}
}
