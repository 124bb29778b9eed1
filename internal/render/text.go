package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// _upscale is the internal rasterization factor: glyphs are drawn at
// _upscale times the target size and downsampled with nearest-neighbor.
// That keeps edges hard on the low-resolution panel; smoothing filters
// would smear single-pixel strokes.
const _upscale = 2

// textWidth returns the pixel width of text at the given point size,
// measured the same way the crisp strip is produced so fit checks and
// rendering agree.
func (r *Renderer) textWidth(text string, size int) int {
	face, err := r.fonts.face(size * _upscale)
	if err != nil {
		return 0
	}
	return font.MeasureString(face, text).Ceil() / _upscale
}

// textStrip rasterizes one line of text at 2x and downsamples it with
// nearest-neighbor. Returns nil for text that measures to nothing.
func (r *Renderer) textStrip(text string, size int, fg, bg color.Color) *image.NRGBA {
	face, err := r.fonts.face(size * _upscale)
	if err != nil {
		return nil
	}

	w2 := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	h2 := (metrics.Ascent + metrics.Descent).Ceil()
	if w2 <= 0 || h2 <= 0 {
		return nil
	}

	tmp := imaging.New(w2, h2, bg)
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	return imaging.Resize(tmp, w2/_upscale, h2/_upscale, imaging.NearestNeighbor)
}

// drawText renders text at (x, y) on dst. Out-of-bounds draws are
// silently skipped, never clipped.
func (r *Renderer) drawText(dst *image.NRGBA, x, y int, text string, size int, fg, bg color.Color) {
	paste(dst, r.textStrip(text, size, fg, bg), x, y)
}

// paste composites src onto dst at (x, y) if it fits entirely within
// the canvas; otherwise the draw is skipped.
func paste(dst *image.NRGBA, src image.Image, x, y int) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	db := dst.Bounds()
	if x < 0 || y < 0 || x+sb.Dx() > db.Dx() || y+sb.Dy() > db.Dy() {
		return
	}
	rect := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, rect, src, sb.Min, draw.Src)
}

// bestFitSize walks sizes downward from start and returns the first
// whose rendered width fits maxWidth, or min when none do.
func (r *Renderer) bestFitSize(text string, maxWidth, start, min int) int {
	for size := start; size >= min; size-- {
		if r.textWidth(text, size) <= maxWidth {
			return size
		}
	}
	return min
}
