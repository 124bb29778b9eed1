//go:build linux
// +build linux

package display

import (
	"fmt"
	"image"

	gc9307 "github.com/photonicat/periph.io-gc9307"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const (
	_spiDev = "SPI0.0"
	_rstPin = "GPIO25"
	_dcPin  = "GPIO24"
	_csPin  = "GPIO8"
	_blPin  = "GPIO18"

	_panelWidth  = 240
	_panelHeight = 320

	_pwmFreq = 1 * physic.KiloHertz
)

// LCDDisplay drives a GC9307 240x320 panel over SPI with a PWM
// backlight on a dedicated GPIO pin.
type LCDDisplay struct {
	logger     *zap.Logger
	port       spi.PortCloser
	panel      gc9307.Device
	backlight  gpio.PinIO
	brightness int
}

// NewLCD initializes the SPI bus, panel and backlight (Linux implementation)
func NewLCD(logger *zap.Logger, brightness int) (*LCDDisplay, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init failed: %w", err)
	}

	port, err := spireg.Open(_spiDev)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", _spiDev, err)
	}

	conn, err := port.Connect(32*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to connect SPI: %w", err)
	}

	panel := gc9307.New(conn, gpioreg.ByName(_rstPin), gpioreg.ByName(_dcPin), gpioreg.ByName(_csPin), gpioreg.ByName(_blPin))
	panel.Configure(gc9307.Config{
		Width:      _panelWidth,
		Height:     _panelHeight,
		Rotation:   gc9307.NO_ROTATION,
		FrameRate:  gc9307.FRAMERATE_60,
		VSyncLines: gc9307.MAX_VSYNC_SCANLINES,
	})

	d := &LCDDisplay{
		logger:     logger,
		port:       port,
		panel:      panel,
		backlight:  gpioreg.ByName(_blPin),
		brightness: ClampBrightness(brightness),
	}

	if err := d.SetBrightness(d.brightness); err != nil {
		logger.Warn("Backlight initialization failed", zap.Error(err))
	}

	logger.Info("LCD initialized",
		zap.String("spi", _spiDev),
		zap.Int("brightness", d.brightness))
	return d, nil
}

// Show pushes a frame to the panel
func (d *LCDDisplay) Show(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("refusing to show empty frame")
	}
	buf, w, h := toRGB565(img)
	if err := d.panel.DrawRGBBitmap8(0, 0, buf, int16(w), int16(h)); err != nil {
		return fmt.Errorf("failed to push frame: %w", err)
	}
	return nil
}

// Clear blanks the panel and turns the backlight off
func (d *LCDDisplay) Clear() error {
	buf := make([]byte, _panelWidth*_panelHeight*2)
	if err := d.panel.DrawRGBBitmap8(0, 0, buf, _panelWidth, _panelHeight); err != nil {
		return fmt.Errorf("failed to clear panel: %w", err)
	}
	if d.backlight != nil {
		return d.backlight.PWM(0, _pwmFreq)
	}
	return nil
}

// SetBrightness maps 0..100 onto the backlight PWM duty cycle
func (d *LCDDisplay) SetBrightness(percent int) error {
	d.brightness = ClampBrightness(percent)
	if d.backlight == nil {
		return fmt.Errorf("backlight pin %s not found", _blPin)
	}
	duty := gpio.Duty(int64(gpio.DutyMax) * int64(d.brightness) / 100)
	return d.backlight.PWM(duty, _pwmFreq)
}

// toRGB565 converts a frame into the panel's big-endian RGB565 layout
func toRGB565(img image.Image) ([]byte, int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, w*h*2)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pixel := uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(bl>>11)
			buf[i] = byte(pixel >> 8)
			buf[i+1] = byte(pixel)
			i += 2
		}
	}
	return buf, w, h
}
