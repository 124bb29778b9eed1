// Package render turns track state into finished frames for the badge
// display. Rendering is pure: the same (track, artwork, offline, now)
// always produces the same bitmap.
package render

import (
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"

	"github.com/yuckyman/PiMO/internal/domain"
)

const (
	// Canvas is portrait 240x320: a 240x240 artwork square on top,
	// three text rows below.
	_canvasWidth  = 240
	_canvasHeight = 320
	_artSize      = 240

	_masterSize  = 16
	_minFitSize  = 10
	_padding     = 6
	_textTop     = _artSize + 3
	_row2Offset  = 28
	_row3Offset  = 28
	_columnWidth = (_canvasWidth - 3*_padding) / 2
	_fullWidth   = _canvasWidth - 2*_padding
	_leftX       = _padding
	_rightX      = 2*_padding + _columnWidth
)

// Renderer lays out track metadata and artwork onto a fixed-size canvas
type Renderer struct {
	theme Theme
	size  domain.CanvasSize
	fonts *fontCache
}

// NewRenderer creates a renderer with the default theme
func NewRenderer() (*Renderer, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		theme: DefaultTheme(),
		size:  domain.CanvasSize{Width: _canvasWidth, Height: _canvasHeight},
		fonts: fonts,
	}, nil
}

// Size returns the canvas dimensions
func (r *Renderer) Size() domain.CanvasSize { return r.size }

// TitleOverflows reports whether the track title needs the marquee.
// The sync loop uses this to re-render on an animation interval.
func (r *Renderer) TitleOverflows(track domain.Track) bool {
	return r.textWidth(track.Normalized().Title, _masterSize) > _fullWidth
}

// Render produces the now-playing frame. artwork may be nil; offline
// prefixes the status row with a marker; now drives the marquee and
// the clock.
func (r *Renderer) Render(track domain.Track, artwork image.Image, offline bool, now time.Time) (*image.NRGBA, error) {
	if r.size.Width <= 0 || r.size.Height <= 0 {
		return nil, fmt.Errorf("invalid render dimensions: %dx%d", r.size.Width, r.size.Height)
	}
	track = track.Normalized()

	canvas := imaging.New(r.size.Width, r.size.Height, r.theme.Background)

	// Artwork square, full width
	if artwork != nil && !artwork.Bounds().Empty() {
		art := imaging.Fill(artwork, _artSize, _artSize, imaging.Center, imaging.Lanczos)
		paste(canvas, art, 0, 0)
	} else {
		square := imaging.New(_artSize, _artSize, r.theme.PlaceholderFill)
		paste(canvas, square, 0, 0)
		glyph := "♪"
		gw := r.textWidth(glyph, _masterSize*2)
		r.drawText(canvas, (_artSize-gw)/2, _artSize/2-_masterSize, glyph, _masterSize*2, r.theme.Muted, r.theme.PlaceholderFill)
	}

	y := _textTop

	// Row 1: status label left, artist right at best-fit size
	status := "now playing..."
	if offline {
		status = "offline - " + status
	}
	r.drawText(canvas, _leftX, y, status, _masterSize, r.theme.Title, r.theme.Background)

	artistSize := r.bestFitSize(track.Artist, _columnWidth, _masterSize, _minFitSize)
	artistX := _rightX + _columnWidth - r.textWidth(track.Artist, artistSize)
	r.drawText(canvas, artistX, y, track.Artist, artistSize, r.theme.Text, r.theme.Background)

	// Row 2: title, marquee when it overflows the full column
	y += _row2Offset
	titleWidth := r.textWidth(track.Title, _masterSize)
	if titleWidth <= _fullWidth {
		r.drawText(canvas, _leftX, y, track.Title, _masterSize, r.theme.Text, r.theme.Background)
	} else {
		strip := r.textStrip(track.Title, _masterSize, r.theme.Text, r.theme.Background)
		if strip != nil {
			offset := MarqueeOffset(now, strip.Bounds().Dx(), _fullWidth)
			visible := imaging.Crop(strip, image.Rect(offset, 0, offset+_fullWidth, strip.Bounds().Dy()))
			paste(canvas, visible, _leftX, y)
		}
	}

	// Row 3: album left at best-fit size, clock right
	y += _row3Offset
	if track.Album != "" {
		albumSize := r.bestFitSize(track.Album, _columnWidth, _masterSize, _minFitSize)
		r.drawText(canvas, _leftX, y, track.Album, albumSize, r.theme.Text, r.theme.Background)
	}
	clock := now.Format("15:04")
	clockX := _rightX + _columnWidth - r.textWidth(clock, _masterSize)
	r.drawText(canvas, clockX, y, clock, _masterSize, r.theme.Text, r.theme.Background)

	return canvas, nil
}
