package domain

import "time"

// UnknownField is substituted for track fields the API left empty
const UnknownField = "Unknown"

// Track contains information about the most recently scrobbled track.
// Immutable once constructed; produced by the Last.fm client or the
// track cache, never mutated in place.
type Track struct {
	// Title of the track
	Title string `json:"name"`
	// Artist name
	Artist string `json:"artist"`
	// Album name, may be empty
	Album string `json:"album"`
	// ArtworkURL is the selected album art URL, may be empty
	ArtworkURL string `json:"image_url,omitempty"`
	// NowPlaying reports whether the track is currently playing
	// (as opposed to being the last finished scrobble)
	NowPlaying bool `json:"now_playing"`
}

// Normalized returns a copy with empty title/artist replaced by the
// Unknown sentinel, so the renderer never deals with blank fields.
func (t Track) Normalized() Track {
	if t.Title == "" {
		t.Title = UnknownField
	}
	if t.Artist == "" {
		t.Artist = UnknownField
	}
	return t
}

// CanvasSize holds the render surface dimensions
type CanvasSize struct {
	Width  int
	Height int
}

// UserStats is the read-only listening summary shown by the preview
// server (weekly top artist, today's plays, lifetime scrobbles).
type UserStats struct {
	TopArtist      string    `json:"top_artist"`
	TopArtistPlays int       `json:"top_artist_plays"`
	TodayPlays     int       `json:"today_plays"`
	TotalScrobbles int       `json:"total_scrobbles"`
	FetchedAt      time.Time `json:"fetched_at"`
}
