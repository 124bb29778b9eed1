package engine

import (
	"bytes"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"github.com/yuckyman/PiMO/internal/domain"
)

// Frame is the shared cell holding the last published frame and its
// track metadata. The sync loop is the only writer; the preview server
// reads concurrently, so access is guarded by a single RWMutex rather
// than package globals.
type Frame struct {
	mu        sync.RWMutex
	png       []byte
	track     domain.Track
	offline   bool
	updatedAt time.Time
}

// NewFrame creates an empty cell
func NewFrame() *Frame {
	return &Frame{}
}

// Set encodes and stores a published frame with its metadata
func (f *Frame) Set(img *image.NRGBA, track domain.Track, offline bool) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("refusing to store empty frame")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.png = buf.Bytes()
	f.track = track
	f.offline = offline
	f.updatedAt = time.Now()
	return nil
}

// PNG returns the last published frame as PNG bytes, ok=false before
// the first publish
func (f *Frame) PNG() ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.png == nil {
		return nil, false
	}
	return f.png, true
}

// Snapshot returns the last published track metadata
func (f *Frame) Snapshot() (track domain.Track, offline bool, updatedAt time.Time, ok bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.track, f.offline, f.updatedAt, f.png != nil
}
