package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

const _trackFile = "last_track.json"

// trackEntry is the on-disk shape of the single-slot track cache
type trackEntry struct {
	Track     domain.Track `json:"track"`
	Timestamp int64        `json:"timestamp"`
	CachedAt  string       `json:"cached_at"`
}

// TrackCache persists the last successfully fetched track so the
// display can keep working through network outages. One slot,
// overwritten whole-file on every save.
type TrackCache struct {
	logger *zap.Logger
	dir    string
	now    func() time.Time
}

// NewTrackCache creates a track cache rooted at dir
func NewTrackCache(logger *zap.Logger, dir string) *TrackCache {
	return &TrackCache{logger: logger, dir: dir, now: time.Now}
}

// Save overwrites the slot with track and a snapshot timestamp
func (c *TrackCache) Save(track domain.Track) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	now := c.now()
	entry := trackEntry{
		Track:     track,
		Timestamp: now.Unix(),
		CachedAt:  now.Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode track cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, _trackFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write track cache: %w", err)
	}
	return nil
}

// Load returns the stored track, or ok=false when no slot exists, the
// stored data is unreadable, or the entry is older than maxAge.
func (c *TrackCache) Load(maxAge time.Duration) (domain.Track, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, _trackFile))
	if err != nil {
		return domain.Track{}, false
	}

	var entry trackEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("Unreadable track cache, ignoring", zap.Error(err))
		return domain.Track{}, false
	}

	age := c.now().Sub(time.Unix(entry.Timestamp, 0))
	if age > maxAge {
		c.logger.Debug("Track cache expired", zap.Duration("age", age))
		return domain.Track{}, false
	}

	return entry.Track, true
}
