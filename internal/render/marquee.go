package render

import "time"

const (
	// _marqueeCycle is the full animation period
	_marqueeCycle = 8 * time.Second
	// _marqueePause shows the unscrolled start of the text at the top
	// of each cycle
	_marqueePause = 2 * time.Second
	// _marqueeSpeed is the scroll rate in pixels per second
	_marqueeSpeed = 30.0
)

// MarqueeOffset returns how many pixels of the text are scrolled off
// the left edge at wall-clock time now. The cycle is: pause on the
// start, scroll left at constant speed until the end of the text is
// visible, scroll back, repeat. Position depends only on
// now mod cycle, so repeated calls at the same timestamp are
// idempotent and the animation survives restarts.
func MarqueeOffset(now time.Time, textWidth, visibleWidth int) int {
	overflow := textWidth - visibleWidth
	if overflow <= 0 {
		return 0
	}

	cyclePos := (time.Duration(now.UnixNano()) % _marqueeCycle).Seconds()
	pause := _marqueePause.Seconds()
	scrollDur := float64(overflow) / _marqueeSpeed

	var offset float64
	switch {
	case cyclePos < pause:
		offset = 0
	case cyclePos < pause+scrollDur:
		offset = (cyclePos - pause) * _marqueeSpeed
	default:
		offset = float64(overflow) - (cyclePos-pause-scrollDur)*_marqueeSpeed
	}

	if offset < 0 {
		offset = 0
	}
	if offset > float64(overflow) {
		offset = float64(overflow)
	}
	return int(offset)
}
