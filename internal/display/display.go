// Package display drives the output device that consumes finished
// frames: a GC9307 SPI panel on Linux, or a PNG preview file anywhere.
package display

import (
	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

// ClampBrightness bounds a requested backlight level to 0..100
func ClampBrightness(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// New selects the output device. Preview mode always writes frames to
// a file; otherwise the LCD is attempted, falling back to preview mode
// when no panel is available (desktop development, missing SPI).
func New(logger *zap.Logger, preview bool, brightness int) (domain.Display, error) {
	if preview {
		return NewPreviewDisplay(logger, "preview.png"), nil
	}

	lcd, err := NewLCD(logger, ClampBrightness(brightness))
	if err != nil {
		logger.Warn("LCD not available, running in preview mode", zap.Error(err))
		return NewPreviewDisplay(logger, "preview.png"), nil
	}
	return lcd, nil
}
