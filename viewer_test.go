package quadview

import (
	"testing"
)

// newTestViewer builds a Viewer over a countingLoader resolving the given
// keys as 400x400 tiles.
func newTestViewer(t *testing.T, startPath string, keys ...string) (*Viewer, *countingLoader) {
	t.Helper()
	loader := newCountingLoader(keys...)
	start, err := ParsePath(startPath)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewViewer(ViewerConfig{
		BaseName:  "root.jpg",
		Loader:    loader,
		StartPath: start,
		Logger:    quietLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return v, loader
}

// runToCompletion ticks until the in-flight animation finishes, returning
// the tick count. Fails the test if nothing completes within limit ticks.
func runToCompletion(t *testing.T, v *Viewer, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		if v.Tick() {
			return i
		}
	}
	t.Fatalf("animation did not complete within %d ticks", limit)
	return 0
}

func TestNewViewerValidation(t *testing.T) {
	loader := newCountingLoader("root.jpg")
	tests := []struct {
		name string
		cfg  ViewerConfig
	}{
		{"missing base name", ViewerConfig{Loader: loader}},
		{"missing loader", ViewerConfig{BaseName: "root.jpg"}},
		{"one-frame animation", ViewerConfig{BaseName: "root.jpg", Loader: loader, Frames: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewViewer(tt.cfg); err == nil {
				t.Error("expected configuration error")
			}
		})
	}
}

func TestZoomInScenario(t *testing.T) {
	v, _ := newTestViewer(t, "", "root.jpg", "root_2.jpg")
	defer v.Close()

	if !v.ZoomInto(QuadrantBottomLeft) {
		t.Fatal("zoom-in rejected while idle")
	}
	if !v.IsAnimating() {
		t.Fatal("not animating after zoom-in")
	}
	if got := v.Path().String(); got != "" {
		t.Errorf("path committed early on zoom-in: %q", got)
	}

	// First tick emits the full-image start bounds.
	v.Tick()
	if got, want := v.Viewport(), (Bounds{0, 0, 400, 400}); got != want {
		t.Errorf("frame 0 viewport = %+v, want %+v", got, want)
	}

	ticks := runToCompletion(t, v, 100)
	if ticks != DefaultFrameCount-1 {
		t.Errorf("completion after %d further ticks, want %d", ticks, DefaultFrameCount-1)
	}

	if v.IsAnimating() {
		t.Error("still animating after completion")
	}
	if got := v.Path().String(); got != "2" {
		t.Errorf("path after completion = %q, want \"2\"", got)
	}
	if v.ShowingPlaceholder() {
		t.Error("placeholder shown although root_2.jpg resolves")
	}
	if got, want := v.Viewport(), (Bounds{0, 0, 400, 400}); got != want {
		t.Errorf("idle viewport = %+v, want full new tile %+v", got, want)
	}
}

func TestZoomOutScenario(t *testing.T) {
	v, loader := newTestViewer(t, "0_2_1", "root.jpg", "root_0_2.jpg", "root_0_2_1.jpg")
	defer v.Close()

	if !v.ZoomOut() {
		t.Fatal("zoom-out rejected while idle")
	}

	// The path commits at session start, before the animation completes.
	if got := v.Path().String(); got != "0_2" {
		t.Errorf("path during outward zoom = %q, want \"0_2\"", got)
	}
	if loader.calls["root_0_2.jpg"] != 1 {
		t.Error("parent tile not loaded at session start")
	}
	if dir, ok := v.Direction(); !ok || dir != ZoomOut {
		t.Errorf("Direction() = %v, %v", dir, ok)
	}

	// Start rect: quadrant 1 of the parent; end rect: the full parent.
	v.Tick()
	if got, want := v.Viewport(), QuadrantBounds(400, 400, QuadrantTopRight); got != want {
		t.Errorf("outward start viewport = %+v, want %+v", got, want)
	}

	runToCompletion(t, v, 100)
	if got, want := v.Viewport(), (Bounds{0, 0, 400, 400}); got != want {
		t.Errorf("idle viewport = %+v, want %+v", got, want)
	}
	if got := v.Path().String(); got != "0_2" {
		t.Errorf("path after completion = %q, want \"0_2\"", got)
	}
}

func TestZoomOutAtRoot(t *testing.T) {
	v, _ := newTestViewer(t, "", "root.jpg")
	defer v.Close()

	if v.ZoomOut() {
		t.Error("zoom-out at root started an animation")
	}
	if v.IsAnimating() {
		t.Error("session created for a root zoom-out")
	}
	if got := v.Path().String(); got != "" {
		t.Errorf("path changed by root zoom-out: %q", got)
	}
}

func TestZoomRejectedWhileAnimating(t *testing.T) {
	v, _ := newTestViewer(t, "", "root.jpg", "root_0.jpg")
	defer v.Close()

	v.ZoomInto(QuadrantTopLeft)
	if v.ZoomInto(QuadrantTopRight) {
		t.Error("second zoom-in accepted mid-animation")
	}
	if v.ZoomOut() {
		t.Error("zoom-out accepted mid-animation")
	}

	runToCompletion(t, v, 100)
	if got := v.Path().String(); got != "0" {
		t.Errorf("path = %q, want \"0\" (first request only)", got)
	}
}

func TestPlaceholderFallbackOnZoomIn(t *testing.T) {
	v, loader := newTestViewer(t, "", "root.jpg") // root_3.jpg missing

	v.ZoomInto(QuadrantBottomRight)
	runToCompletion(t, v, 100)

	if !v.ShowingPlaceholder() {
		t.Fatal("placeholder not reported after failed load")
	}
	first := v.CurrentTile()
	if first.Width != DefaultPlaceholderSize {
		t.Errorf("placeholder width = %d, want %d", first.Width, DefaultPlaceholderSize)
	}

	// Navigate away and back: the same placeholder serves the failed key
	// and the loader is not retried.
	v.ZoomOut()
	runToCompletion(t, v, 100)
	v.ZoomInto(QuadrantBottomRight)
	runToCompletion(t, v, 100)

	if v.CurrentTile() != first {
		t.Error("failed key resolved to a different placeholder tile")
	}
	if loader.calls["root_3.jpg"] != 1 {
		t.Errorf("loader retried %d times for a failed key, want 1 total call", loader.calls["root_3.jpg"])
	}

	v.Close()
}

func TestHoverTracking(t *testing.T) {
	v, _ := newTestViewer(t, "", "root.jpg")
	defer v.Close()

	tests := []struct {
		name   string
		x, y   float64
		expect Quadrant
	}{
		{"top-left", 10, 10, QuadrantTopLeft},
		{"midpoint biases bottom-right", 200, 200, QuadrantBottomRight},
		{"top-right", 350, 10, QuadrantTopRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.PointerMoved(tt.x, tt.y)
			if got := v.HoveredQuadrant(); got != tt.expect {
				t.Errorf("hover = %d, want %d", got, tt.expect)
			}
		})
	}

	if v.PointerMoved(300, 10) {
		t.Error("unchanged hover reported as changed")
	}
}

func TestHoverFrozenWhileAnimating(t *testing.T) {
	v, _ := newTestViewer(t, "", "root.jpg", "root_0.jpg")
	defer v.Close()

	v.PointerMoved(10, 10)
	v.ZoomIn()
	if v.PointerMoved(350, 350) {
		t.Error("hover changed mid-animation")
	}
	if got := v.HoveredQuadrant(); got != QuadrantTopLeft {
		t.Errorf("hover = %d during animation, want %d", got, QuadrantTopLeft)
	}
}

func TestHighlightFollowsHover(t *testing.T) {
	v, _ := newTestViewer(t, "", "root.jpg")
	defer v.Close()

	v.SetHoveredQuadrant(QuadrantBottomLeft)
	if got, want := v.HighlightBounds(), (Bounds{0, 200, 200, 400}); got != want {
		t.Errorf("HighlightBounds() = %+v, want %+v", got, want)
	}
}

func TestCloseFinalizesInFlightZoom(t *testing.T) {
	v, loader := newTestViewer(t, "", "root.jpg", "root_1.jpg")

	v.ZoomInto(QuadrantTopRight)
	v.Tick() // partway through
	v.Close()

	// Teardown must not leave the path half-committed: the pending path is
	// adopted and its tile resolved before the cache is torn down.
	if got := v.Path().String(); got != "1" {
		t.Errorf("path after Close = %q, want \"1\"", got)
	}
	if v.IsAnimating() {
		t.Error("session survived Close")
	}
	if loader.calls["root_1.jpg"] != 1 {
		t.Errorf("destination tile loaded %d times during Close, want 1", loader.calls["root_1.jpg"])
	}
}

func TestStartPathDeepTile(t *testing.T) {
	v, loader := newTestViewer(t, "3_3", "root_3_3.jpg")
	defer v.Close()

	if got := v.Path().String(); got != "3_3" {
		t.Errorf("start path = %q, want \"3_3\"", got)
	}
	if loader.calls["root_3_3.jpg"] != 1 {
		t.Error("start tile not loaded on construction")
	}
	if v.ShowingPlaceholder() {
		t.Error("placeholder shown although the start tile resolves")
	}
}
