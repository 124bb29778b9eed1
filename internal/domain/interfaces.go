package domain

import (
	"context"
	"image"
	"time"
)

// TrackSource defines the interface for fetching the current track
// Implementations should handle the remote API communication
type TrackSource interface {
	// CurrentTrack returns the most recent track for the configured user.
	// Failures are reported as *FetchError so callers can distinguish
	// transient network trouble from permanent request errors.
	CurrentTrack(ctx context.Context) (Track, error)
}

// ArtworkStore defines the interface for retrieving album artwork,
// backed by a content-addressed disk cache
type ArtworkStore interface {
	// Get returns a decoded artwork bitmap for the URL, downloading and
	// caching it on a miss. A nil error always implies a usable image.
	Get(ctx context.Context, url string) (image.Image, error)

	// Invalidate removes the cached entry for the URL, if any
	Invalidate(url string) error
}

// TrackStore defines the interface for the single-slot offline cache
// of the last successfully fetched track
type TrackStore interface {
	// Save overwrites the slot with the track and a snapshot timestamp
	Save(track Track) error

	// Load returns the stored track, or ok=false if no slot exists,
	// the slot is unreadable, or it is older than maxAge
	Load(maxAge time.Duration) (Track, bool)
}

// Display defines the interface for the physical or simulated output
// device that consumes finished frames
type Display interface {
	// Show publishes a finished frame to the device
	Show(img image.Image) error

	// Clear blanks the device and turns the backlight off
	Clear() error

	// SetBrightness sets the backlight level; values outside 0..100
	// are clamped
	SetBrightness(percent int) error
}

// Fetcher defines the interface for raw HTTP byte retrieval.
// The artwork cache depends on this rather than a concrete client so
// tests can substitute an in-memory double.
type Fetcher interface {
	// Fetch downloads the resource and returns its raw bytes
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StatsSource defines the optional interface for listening statistics
type StatsSource interface {
	// UserStats aggregates weekly top artist, today's play count and
	// total scrobbles for the configured user
	UserStats(ctx context.Context) (UserStats, error)
}

// Notifier defines the interface for outbound event delivery
// (pet feedings, level-ups, evolutions, mood changes)
type Notifier interface {
	// Notify delivers one semantic event; failures must be swallowed
	// by the implementation, never propagated to the sync loop
	Notify(ctx context.Context, event Event)
}

// Event is a semantic notification produced by the pet
type Event struct {
	Kind    EventKind
	Message string
}

// EventKind enumerates the notification event types
type EventKind string

const (
	// EventFed is emitted when a new scrobble feeds the pet
	EventFed EventKind = "fed"
	// EventLeveledUp is emitted when the pet gains a level
	EventLeveledUp EventKind = "leveled-up"
	// EventEvolved is emitted when the pet reaches an evolution stage
	EventEvolved EventKind = "evolved"
	// EventMoodChanged is emitted when the pet's mood bucket changes
	EventMoodChanged EventKind = "mood-changed"
)
