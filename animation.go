package quadview

import (
	"time"

	"github.com/tanema/gween"
)

// DefaultFrameCount is the number of frames a zoom animation spans,
// including the start and end frames.
const DefaultFrameCount = 20

// DefaultTickInterval is the wall-clock cadence zoom animations are tuned
// for (~30 Hz). The Viewer itself is tick-driven and timing-agnostic; hosts
// own the scheduler (for Ebitengine, ebiten.SetTPS(30) matches this).
const DefaultTickInterval = 33 * time.Millisecond

// ZoomDirection distinguishes inward and outward viewport transitions.
type ZoomDirection int

const (
	ZoomIn  ZoomDirection = iota // viewport narrows from the full tile to a quadrant
	ZoomOut                      // viewport widens from a quadrant to the full parent tile
)

// String returns "in" or "out".
func (d ZoomDirection) String() string {
	if d == ZoomOut {
		return "out"
	}
	return "in"
}

// SmoothStep is a [gween] ease function implementing the classic
// t²(3−2t) ease-in-out reparametrization. At t=0 it yields exactly b and
// at t=d exactly b+c, and it is monotonic in between.
//
// [gween]: https://github.com/tanema/gween
func SmoothStep(t, b, c, d float32) float32 {
	p := t / d
	p = p * p * (3.0 - 2.0*p)
	return b + c*p
}

// zoomSession interpolates the viewport between two bounds over a fixed
// number of frames. Each corner coordinate gets its own tween; all four
// share the SmoothStep ease and advance one frame per step, so the eased
// parameter at frame f is exactly smoothstep(f/(frames-1)).
//
// At most one session exists at a time; the Viewer discards it on
// completion.
type zoomSession struct {
	direction ZoomDirection
	start     Bounds
	end       Bounds
	current   Bounds

	frame  int
	frames int

	// pending is the destination path a zoom-in commits on completion.
	// Zoom-out sessions leave it nil; their path change happens up front.
	pending Path

	tweens [4]*gween.Tween
}

// newZoomSession creates a session positioned at the start bounds (frame 0
// not yet emitted). frames must be >= 2.
func newZoomSession(direction ZoomDirection, start, end Bounds, frames int, pending Path) *zoomSession {
	s := &zoomSession{
		direction: direction,
		start:     start,
		end:       end,
		current:   start,
		frames:    frames,
		pending:   pending,
	}
	duration := float32(frames - 1)
	s.tweens[0] = gween.New(float32(start.X1), float32(end.X1), duration, SmoothStep)
	s.tweens[1] = gween.New(float32(start.Y1), float32(end.Y1), duration, SmoothStep)
	s.tweens[2] = gween.New(float32(start.X2), float32(end.X2), duration, SmoothStep)
	s.tweens[3] = gween.New(float32(start.Y2), float32(end.Y2), duration, SmoothStep)
	return s
}

// step emits the next frame into current and reports whether that was the
// final frame. Frame 0 is the untouched start bounds; the final frame lands
// exactly on the end bounds.
func (s *zoomSession) step() (done bool) {
	if s.frame > 0 {
		x1, _ := s.tweens[0].Update(1)
		y1, _ := s.tweens[1].Update(1)
		x2, _ := s.tweens[2].Update(1)
		y2, _ := s.tweens[3].Update(1)
		s.current = Bounds{float64(x1), float64(y1), float64(x2), float64(y2)}
	}
	s.frame++
	if s.frame >= s.frames {
		s.current = s.end
		return true
	}
	return false
}
