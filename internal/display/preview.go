package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// PreviewDisplay writes each frame to a PNG file instead of hardware
type PreviewDisplay struct {
	logger     *zap.Logger
	path       string
	brightness int
}

// NewPreviewDisplay creates a file-backed display writing to path
func NewPreviewDisplay(logger *zap.Logger, path string) *PreviewDisplay {
	return &PreviewDisplay{logger: logger, path: path, brightness: 100}
}

// Show saves the frame to the preview file
func (d *PreviewDisplay) Show(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("refusing to show empty frame")
	}
	if err := imaging.Save(img, d.path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	d.logger.Debug("Preview saved", zap.String("path", d.path))
	return nil
}

// Clear overwrites the preview with a black frame
func (d *PreviewDisplay) Clear() error {
	return imaging.Save(imaging.New(240, 320, color.Black), d.path)
}

// SetBrightness records the level; a file has no backlight
func (d *PreviewDisplay) SetBrightness(percent int) error {
	d.brightness = ClampBrightness(percent)
	return nil
}
