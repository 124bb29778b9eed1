//go:build !linux
// +build !linux

package display

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

// StubLCD is a placeholder for platforms without SPI support
type StubLCD struct{}

// NewLCD reports that no panel is available on this platform; callers
// fall back to preview mode.
func NewLCD(logger *zap.Logger, brightness int) (*StubLCD, error) {
	return nil, fmt.Errorf("LCD output is only supported on linux")
}

func (s *StubLCD) Show(img image.Image) error       { return fmt.Errorf("no LCD on this platform") }
func (s *StubLCD) Clear() error                     { return fmt.Errorf("no LCD on this platform") }
func (s *StubLCD) SetBrightness(percent int) error  { return fmt.Errorf("no LCD on this platform") }
