// Package quadview is a quadrant-path tile navigator for [Ebitengine].
//
// Quadview addresses a hierarchy of pre-rendered image tiles by quadrant
// paths ("0_2_1"), caches decoded tiles with bounded FIFO eviction, and
// animates the viewport between a tile and one of its quadrants with a
// smoothstep-eased transition on zoom-in and zoom-out.
//
// # Quick start
//
// Create a [Viewer] with a [Loader] that resolves resource keys to images,
// then feed it input and ticks from your game loop:
//
//	viewer, err := quadview.NewViewer(quadview.ViewerConfig{
//		BaseName: "root.jpg",
//		Loader:   loader,
//	})
//
//	// each tick (~30 Hz):
//	viewer.PointerMoved(imageX, imageY)
//	if wheelUp {
//		viewer.ZoomIn()
//	}
//	viewer.Tick()
//
//	vp := viewer.Viewport() // rectangle of the current tile to frame
//
// [Viewer.Viewport] is expressed in the current tile's pixel space with a
// top-left origin and Y growing downward, matching Ebitengine. Renderers
// with an upward-growing Y axis should apply [Bounds.FlipY] before use.
//
// # Tiles and resource keys
//
// A tile at path "0_2" under base name "root.jpg" resolves to the resource
// key "root_0_2.jpg" (see [ResourceKey]). How keys map to actual images is
// the [Loader]'s business; a loader failure is not an error. The viewer
// substitutes a shared placeholder tile (see [NewPlaceholderImage]) and
// reports the fallback through [Viewer.ShowingPlaceholder] and the logger.
//
// Quadview is single-threaded: all Viewer and TileCache methods must be
// called from the same goroutine that runs the game loop.
//
// [Ebitengine]: https://ebitengine.org
package quadview
