// Package change decides whether a track warrants a re-render.
package change

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/yuckyman/PiMO/internal/domain"
)

// Fingerprint returns a stable hash of the track's title and artist.
// Album is deliberately excluded so mid-song metadata corrections on
// the album field don't re-trigger renders.
func Fingerprint(track domain.Track) string {
	sum := md5.Sum([]byte(track.Title + track.Artist))
	return hex.EncodeToString(sum[:])
}

// Detector compares each track's fingerprint against the last one seen.
// Not safe for concurrent use; the sync loop is the only caller.
type Detector struct {
	last string
}

// NewDetector creates a detector with no prior fingerprint, so the
// first track always reports changed.
func NewDetector() *Detector {
	return &Detector{}
}

// Changed reports whether track differs from the previously seen one,
// updating the stored fingerprint when it does.
func (d *Detector) Changed(track domain.Track) bool {
	fp := Fingerprint(track)
	if fp == d.last {
		return false
	}
	d.last = fp
	return true
}
