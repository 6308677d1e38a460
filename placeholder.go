package quadview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultPlaceholderSize is the edge length of the built-in placeholder
// tile.
const DefaultPlaceholderSize = 400

// placeholderColors are the four quadrant fill colors of the built-in
// placeholder, ordered by quadrant index: light blue, light green, light
// coral, light yellow.
var placeholderColors = [4]color.RGBA{
	{R: 173, G: 216, B: 230, A: 255},
	{R: 144, G: 238, B: 144, A: 255},
	{R: 240, G: 128, B: 128, A: 255},
	{R: 255, G: 255, B: 224, A: 255},
}

// NewPlaceholderImage builds a size×size stand-in tile with each quadrant
// filled in its own pastel color, so a missing resource is immediately
// recognizable while the quadrant layout stays navigable. A size < 2 falls
// back to DefaultPlaceholderSize.
func NewPlaceholderImage(size int) *ebiten.Image {
	if size < 2 {
		size = DefaultPlaceholderSize
	}
	img := ebiten.NewImage(size, size)
	for q := QuadrantTopLeft; q <= QuadrantBottomRight; q++ {
		b := QuadrantBounds(size, size, q)
		sub := img.SubImage(image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2))).(*ebiten.Image)
		sub.Fill(placeholderColors[q])
	}
	return img
}
