package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

const (
	_baseURL        = "http://ws.audioscrobbler.com/2.0/"
	_requestTimeout = 5 * time.Second // Essential to prevent blocking the sync loop
	_maxBodySize    = 1 * 1024 * 1024
)

// _backoff is the wait schedule between transient-failure attempts
var _backoff = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

// _artworkSizePriority orders the image variants Last.fm returns; the
// first variant with a non-empty URL wins
var _artworkSizePriority = []string{"extralarge", "large", "medium", "small"}

// Client talks to the Last.fm web API for a single configured user
type Client struct {
	logger   *zap.Logger
	client   *http.Client
	baseURL  string
	apiKey   string
	username string
}

// NewClient creates a Last.fm API client
func NewClient(logger *zap.Logger, apiKey, username string) *Client {
	return &Client{
		logger:   logger,
		client:   &http.Client{Timeout: _requestTimeout},
		baseURL:  _baseURL,
		apiKey:   apiKey,
		username: username,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a local server
func NewClientWithBaseURL(logger *zap.Logger, apiKey, username, baseURL string) *Client {
	c := NewClient(logger, apiKey, username)
	c.baseURL = baseURL
	return c
}

// CurrentTrack fetches the most recent track for the configured user.
// Transient failures (timeout, refused connection) are retried up to
// len(_backoff) attempts with exponential backoff; anything else fails
// the call immediately. The returned error is always a *domain.FetchError.
func (c *Client) CurrentTrack(ctx context.Context) (domain.Track, error) {
	var lastErr error

	for attempt := 0; attempt < len(_backoff); attempt++ {
		track, err := c.fetchRecentTrack(ctx)
		if err == nil {
			return track, nil
		}
		lastErr = err

		if !domain.IsTransient(err) {
			c.logger.Warn("Last.fm request failed, not retrying", zap.Error(err))
			return domain.Track{}, err
		}

		if attempt < len(_backoff)-1 {
			wait := _backoff[attempt]
			c.logger.Debug("Transient Last.fm failure, backing off",
				zap.Duration("wait", wait),
				zap.Int("attempt", attempt+1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return domain.Track{}, &domain.FetchError{Kind: domain.FetchTransient, Err: ctx.Err()}
			}
		}
	}

	c.logger.Warn("Last.fm unreachable after retries", zap.Error(lastErr))
	return domain.Track{}, lastErr
}

func (c *Client) fetchRecentTrack(ctx context.Context) (domain.Track, error) {
	params := url.Values{
		"method":  {"user.getrecenttracks"},
		"user":    {c.username},
		"api_key": {c.apiKey},
		"format":  {"json"},
		"limit":   {"1"},
	}

	var resp recentTracksResponse
	if err := c.call(ctx, params, &resp); err != nil {
		return domain.Track{}, err
	}

	tracks := resp.RecentTracks.Track
	if len(tracks) == 0 {
		return domain.Track{}, &domain.FetchError{
			Kind: domain.FetchPermanent,
			Err:  fmt.Errorf("no recent tracks for user %q", c.username),
		}
	}

	raw := tracks[0]
	track := domain.Track{
		Title:      raw.Name,
		Artist:     raw.Artist.Text,
		Album:      raw.Album.Text,
		ArtworkURL: selectArtworkURL(raw.Image),
		NowPlaying: raw.Attr.NowPlaying == "true",
	}.Normalized()

	return track, nil
}

// call performs one GET against the API and decodes the JSON body.
// Transport errors are classified transient, everything after a
// received response is permanent.
func (c *Client) call(ctx context.Context, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return &domain.FetchError{Kind: domain.FetchPermanent, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", "pimoDaemon/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.FetchError{Kind: domain.FetchTransient, Err: fmt.Errorf("network error: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.FetchError{
			Kind: domain.FetchPermanent,
			Err:  fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxBodySize))
	if err != nil {
		return &domain.FetchError{Kind: domain.FetchTransient, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.FetchError{Kind: domain.FetchPermanent, Err: fmt.Errorf("malformed response: %w", err)}
	}
	return nil
}

// selectArtworkURL picks one artwork URL from the same-image size
// variants, preferring larger declared sizes.
func selectArtworkURL(images []apiImage) string {
	for _, size := range _artworkSizePriority {
		for _, img := range images {
			if img.Size == size && img.Text != "" {
				return img.Text
			}
		}
	}
	return ""
}
