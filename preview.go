package goldspiral

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/esimov/goldspiral/utils"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

const (
	MaxScreenX = 1366
	MaxScreenY = 768
)

var (
	defaultBkgColor  = color.White
	defaultFillColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// RasterPreview rasterizes the shapes emitted by a spiral into a bitmap.
// It is attached to a Spiral through its OnEmit hook.
type RasterPreview struct {
	FillColor color.Color
	BkgColor  color.Color

	width    int
	height   int
	outlines [][]vec.Vec2
}

// NewRasterPreview creates a preview canvas of the given size.
func NewRasterPreview(width, height int) *RasterPreview {
	return &RasterPreview{
		FillColor: defaultFillColor,
		BkgColor:  defaultBkgColor,
		width:     width,
		height:    height,
	}
}

// Add records the current outline of the shape. Outlines lying completely
// outside of the canvas are dropped.
func (r *RasterPreview) Add(s Shape) {
	outline := s.Outline()
	if len(outline) < 3 || !r.visible(outline) {
		return
	}
	r.outlines = append(r.outlines, outline)
}

// Len returns the number of outlines to be drawn.
func (r *RasterPreview) Len() int {
	return len(r.outlines)
}

// Image draws the recorded outlines. The result is downscaled, keeping
// the aspect ratio, when it does not fit into the maximum screen size.
func (r *RasterPreview) Image() *image.NRGBA {
	dst := imaging.New(r.width, r.height, r.BkgColor)

	z := vector.NewRasterizer(r.width, r.height)
	for _, o := range r.outlines {
		z.MoveTo(float32(o[0].X), float32(o[0].Y))
		for _, p := range o[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(r.FillColor), image.Point{})

	if r.width > MaxScreenX || r.height > MaxScreenY {
		return imaging.Fit(dst, MaxScreenX, MaxScreenY, imaging.Lanczos)
	}
	return dst
}

// Save encodes the preview into the file. The image format is deduced from the extension.
func (r *RasterPreview) Save(path string) error {
	if err := imaging.Save(r.Image(), path); err != nil {
		return fmt.Errorf("unable to save the preview image: %w", err)
	}
	return nil
}

// visible reports whether the bounding box of the outline intersects the canvas.
func (r *RasterPreview) visible(outline []vec.Vec2) bool {
	minX, minY := outline[0].X, outline[0].Y
	maxX, maxY := minX, minY
	for _, p := range outline[1:] {
		minX, maxX = utils.Min(minX, p.X), utils.Max(maxX, p.X)
		minY, maxY = utils.Min(minY, p.Y), utils.Max(maxY, p.Y)
	}
	return maxX >= 0 && maxY >= 0 && minX <= float64(r.width) && minY <= float64(r.height)
}
