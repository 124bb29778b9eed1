package render

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// RenderWaiting produces the placeholder frame shown before the first
// successful fetch.
func (r *Renderer) RenderWaiting() *image.NRGBA {
	canvas := imaging.New(r.size.Width, r.size.Height, r.theme.Background)

	line1 := "Connecting..."
	line2 := "Waiting for Last.fm"
	x1 := (r.size.Width - r.textWidth(line1, _masterSize)) / 2
	x2 := (r.size.Width - r.textWidth(line2, _masterSize)) / 2

	r.drawText(canvas, x1, r.size.Height/2-20, line1, _masterSize, r.theme.Title, r.theme.Background)
	r.drawText(canvas, x2, r.size.Height/2+10, line2, _masterSize, r.theme.Muted, r.theme.Background)

	return canvas
}

// RenderError produces an error frame with the message word-wrapped
// across centered lines.
func (r *Renderer) RenderError(message string) *image.NRGBA {
	canvas := imaging.New(r.size.Width, r.size.Height, r.theme.ErrorBackground)

	heading := "Error"
	hx := (r.size.Width - r.textWidth(heading, _masterSize)) / 2
	r.drawText(canvas, hx, r.size.Height/2-40, heading, _masterSize, r.theme.ErrorTitle, r.theme.ErrorBackground)

	maxWidth := r.size.Width - 40
	y := r.size.Height/2 - 10
	line := ""
	for _, word := range strings.Fields(message) {
		candidate := strings.TrimSpace(line + " " + word)
		if r.textWidth(candidate, _masterSize) < maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lx := (r.size.Width - r.textWidth(line, _masterSize)) / 2
			r.drawText(canvas, lx, y, line, _masterSize, r.theme.Muted, r.theme.ErrorBackground)
			y += 20
		}
		line = word
	}
	if line != "" {
		lx := (r.size.Width - r.textWidth(line, _masterSize)) / 2
		r.drawText(canvas, lx, y, line, _masterSize, r.theme.Muted, r.theme.ErrorBackground)
	}

	return canvas
}
