// Quadview opens a window on a hierarchy of pre-rendered image tiles
// addressed by quadrant paths. Scroll up over a quadrant to zoom into it,
// scroll down to zoom back out; the viewport animates between levels.
// Tiles are plain image files next to the root image: zooming into
// quadrant 2 of data/root.jpg displays data/root_2.jpg, and so on. Missing
// tiles show a four-color placeholder.
package main

import (
	"flag"
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/quadview"
)

const windowTitle = "Quadview"

var (
	gridColor      = color.NRGBA{R: 255, G: 0, B: 0, A: 178}
	highlightColor = color.NRGBA{R: 255, G: 255, B: 0, A: 51}
)

// whitePixel is a 1x1 white image stretched to draw solid rectangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// game adapts a quadview.Viewer to the ebiten game loop: wheel and cursor
// input in, one viewer tick per update, viewport-framed drawing out.
type game struct {
	viewer  *quadview.Viewer
	screenW int
	screenH int
}

func (g *game) Update() error {
	tile := g.viewer.CurrentTile()

	// Cursor position mapped into tile pixel space. The idle frame always
	// shows the full tile, and hover is frozen mid-animation, so the
	// full-tile mapping is the only one needed.
	cx, cy := ebiten.CursorPosition()
	ix := float64(cx) * float64(tile.Width) / float64(g.screenW)
	iy := float64(cy) * float64(tile.Height) / float64(g.screenH)
	g.viewer.PointerMoved(ix, iy)

	if _, wy := ebiten.Wheel(); wy > 0 {
		g.viewer.ZoomIn()
	} else if wy < 0 {
		g.viewer.ZoomOut()
	}

	g.viewer.Tick()

	if dir, ok := g.viewer.Direction(); ok {
		ebiten.SetWindowTitle(fmt.Sprintf("%s - zooming %s...", windowTitle, dir))
	} else {
		ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitle, pathLabel(g.viewer.Path())))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	tile := g.viewer.CurrentTile()
	vp := g.viewer.Viewport()

	// Frame the viewport rectangle: shift its corner to the origin, then
	// scale it up to fill the screen.
	sx := float64(g.screenW) / vp.Width()
	sy := float64(g.screenH) / vp.Height()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-vp.X1, -vp.Y1)
	op.GeoM.Scale(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tile.Image, op)

	if g.viewer.IsAnimating() {
		return
	}

	// Idle overlay: midlines, hovered-quadrant highlight, quadrant labels,
	// and a hint line. Scale factors map tile space to screen space (the
	// idle viewport is the full tile).
	midX := float64(tile.Width/2) * sx
	midY := float64(tile.Height/2) * sy
	fillRect(screen, 0, midY-1, float64(g.screenW), 2, gridColor)
	fillRect(screen, midX-1, 0, 2, float64(g.screenH), gridColor)

	hb := g.viewer.HighlightBounds()
	fillRect(screen, hb.X1*sx, hb.Y1*sy, hb.Width()*sx, hb.Height()*sy, highlightColor)

	for q, anchor := range g.viewer.LabelAnchors() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", q), int(anchor.X*sx), int(anchor.Y*sy))
	}

	hint := fmt.Sprintf("path: %s | scroll up: zoom in, scroll down: zoom out", pathLabel(g.viewer.Path()))
	if g.viewer.ShowingPlaceholder() {
		hint += " | tile missing, showing placeholder"
	}
	ebitenutil.DebugPrintAt(screen, hint, 4, g.screenH-16)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// fillRect stretches the white pixel into a tinted solid rectangle.
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel, op)
}

func pathLabel(p quadview.Path) string {
	if p.IsRoot() {
		return "root"
	}
	return p.String()
}

// fileLoader resolves resource keys as image file paths relative to the
// working directory.
func fileLoader(logger *log.Logger) quadview.Loader {
	return quadview.LoaderFunc(func(key string) (*ebiten.Image, error) {
		f, err := os.Open(key)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := ebitenutil.NewImageFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		logger.Debug("decoded tile", "file", key)
		return img, nil
	})
}

func main() {
	configPath := flag.String("config", "quadview.toml", "TOML config file")
	imagePath := flag.String("image", "", "root tile image (overrides config)")
	startPath := flag.String("path", "", "initial quadrant path, e.g. 0_2 (overrides config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	if err := run(*configPath, *imagePath, *startPath, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(configPath, imageOverride, pathOverride string, logger *log.Logger) error {
	explicit := configPath != "quadview.toml"
	cfg, err := loadConfig(configPath, explicit)
	if err != nil {
		return err
	}
	if imageOverride != "" {
		cfg.Image = imageOverride
	}
	if pathOverride != "" {
		cfg.StartPath = pathOverride
	}

	start, err := quadview.ParsePath(cfg.StartPath)
	if err != nil {
		return err
	}

	viewer, err := quadview.NewViewer(quadview.ViewerConfig{
		BaseName:  cfg.Image,
		Loader:    fileLoader(logger),
		CacheSize: cfg.CacheSize,
		Frames:    cfg.Frames,
		StartPath: start,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer viewer.Close()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting viewer", "image", cfg.Image, "path", pathLabel(start))
	return ebiten.RunGame(&game{
		viewer:  viewer,
		screenW: cfg.WindowWidth,
		screenH: cfg.WindowHeight,
	})
}
