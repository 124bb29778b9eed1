package render

import "image/color"

// Theme holds the colors used on the canvas. Explicit, typed fields;
// rendering variants take a Theme value instead of loose parameters.
type Theme struct {
	// Background fills the whole canvas
	Background color.NRGBA
	// Title colors the "now playing..." status label
	Title color.NRGBA
	// Text colors track, artist, album and clock text
	Text color.NRGBA
	// Muted colors secondary text (waiting subtitle, placeholder label)
	Muted color.NRGBA
	// PlaceholderFill fills the artwork square when no art is available
	PlaceholderFill color.NRGBA
	// ErrorBackground fills the error screen
	ErrorBackground color.NRGBA
	// ErrorTitle colors the error heading
	ErrorTitle color.NRGBA
}

// DefaultTheme matches the badge's stock look: dark background, green
// status line, off-white text.
func DefaultTheme() Theme {
	return Theme{
		Background:      color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Title:           color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		Text:            color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		Muted:           color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		PlaceholderFill: color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff},
		ErrorBackground: color.NRGBA{R: 0x1a, G: 0x00, B: 0x00, A: 0xff},
		ErrorTitle:      color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff},
	}
}
