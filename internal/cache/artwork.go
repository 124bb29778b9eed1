package cache

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

const (
	// _minArtworkBytes rejects placeholder/blank payloads, which are
	// typically a few hundred bytes
	_minArtworkBytes = 1000
	// _artworkSize is the square edge artwork is normalized to on store
	_artworkSize = 240
	// _hashLen is the number of hex chars of the URL hash used as key
	_hashLen = 12
)

// Known Last.fm placeholder image identifiers; these URLs never carry
// real artwork and are rejected outright.
var _placeholderIDs = []string{
	"2a96cbd8b46e442fc41c2b86b821562f",
	"4128a6eb29f94943c9d206c08e625904",
}

// _sizeAlternates lists size tokens found in artwork URLs and the
// substitutions tried, in order, when the original URL fails
var _sizeAlternates = []struct {
	token string
	subs  []string
}{
	{"/174s/", []string{"/300x300/", "/64s/", "/126s/"}},
	{"/300x300/", []string{"/174s/", "/64s/"}},
}

// ArtworkCache is a content-addressed disk cache of downloaded album
// art, keyed by a hash of the source URL. Corrupt entries self-heal by
// deletion; failed downloads fall back to alternate size variants.
type ArtworkCache struct {
	logger  *zap.Logger
	fetcher domain.Fetcher
	dir     string
}

// NewArtworkCache creates an artwork cache rooted at dir
func NewArtworkCache(logger *zap.Logger, fetcher domain.Fetcher, dir string) *ArtworkCache {
	return &ArtworkCache{logger: logger, fetcher: fetcher, dir: dir}
}

// Get returns the artwork for url, from disk if cached, otherwise
// downloading, normalizing and caching it. The entry is always stored
// under the ORIGINAL url's hash, even when an alternate size variant
// supplied the bytes.
func (c *ArtworkCache) Get(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("empty artwork url")
	}
	for _, id := range _placeholderIDs {
		if strings.Contains(url, id) {
			return nil, fmt.Errorf("placeholder artwork rejected")
		}
	}

	path := c.path(url)
	if img, err := c.loadCached(path); err == nil {
		c.logger.Debug("Artwork cache hit", zap.String("path", path))
		return img, nil
	}

	candidates := append([]string{url}, alternateURLs(url)...)
	for _, candidate := range candidates {
		img, err := c.download(ctx, candidate)
		if err != nil {
			c.logger.Debug("Artwork download failed",
				zap.String("url", candidate), zap.Error(err))
			continue
		}
		if err := c.store(path, img); err != nil {
			c.logger.Warn("Failed to cache artwork", zap.Error(err))
		}
		return img, nil
	}

	return nil, fmt.Errorf("no usable artwork for %s", url)
}

// Invalidate removes the cached entry for url, if any
func (c *ArtworkCache) Invalidate(url string) error {
	err := os.Remove(c.path(url))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// loadCached decodes a cached file; an undecodable file is deleted so
// the next lookup re-downloads instead of serving corrupt data.
func (c *ArtworkCache) loadCached(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("Corrupt cached artwork, deleting", zap.String("path", path))
		os.Remove(path)
		return nil, err
	}
	return imaging.Clone(img), nil
}

func (c *ArtworkCache) download(ctx context.Context, url string) (image.Image, error) {
	data, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(data) < _minArtworkBytes {
		return nil, fmt.Errorf("payload too small (%d bytes), likely placeholder", len(data))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Normalize color mode and size before caching
	return imaging.Resize(img, _artworkSize, _artworkSize, imaging.Lanczos), nil
}

func (c *ArtworkCache) store(path string, img image.Image) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to write artwork cache: %w", err)
	}
	c.logger.Debug("Cached artwork", zap.String("path", path))
	return nil
}

func (c *ArtworkCache) path(url string) string {
	sum := md5.Sum([]byte(url))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])[:_hashLen]+".png")
}

// alternateURLs derives fallback URLs by swapping known size tokens
func alternateURLs(url string) []string {
	for _, alt := range _sizeAlternates {
		if !strings.Contains(url, alt.token) {
			continue
		}
		alts := make([]string, 0, len(alt.subs))
		for _, sub := range alt.subs {
			alts = append(alts, strings.Replace(url, alt.token, sub, 1))
		}
		return alts
	}
	return nil
}
