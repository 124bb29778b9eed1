package lastfm

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

// _scrobbleDateLayout is the human-readable timestamp format Last.fm
// attaches to finished scrobbles
const _scrobbleDateLayout = "02 Jan 2006, 15:04"

// UserStats aggregates the listening summary shown on the preview
// server. Each sub-read is best effort; a failed one leaves its fields
// zero rather than failing the whole summary.
func (c *Client) UserStats(ctx context.Context) (domain.UserStats, error) {
	stats := domain.UserStats{FetchedAt: time.Now()}

	if name, plays, err := c.weeklyTopArtist(ctx); err != nil {
		c.logger.Debug("Weekly artist chart unavailable", zap.Error(err))
	} else {
		stats.TopArtist = name
		stats.TopArtistPlays = plays
	}

	if plays, err := c.todayPlayCount(ctx); err != nil {
		c.logger.Debug("Today's play count unavailable", zap.Error(err))
	} else {
		stats.TodayPlays = plays
	}

	if total, err := c.totalScrobbles(ctx); err != nil {
		c.logger.Debug("Total scrobbles unavailable", zap.Error(err))
	} else {
		stats.TotalScrobbles = total
	}

	return stats, nil
}

func (c *Client) weeklyTopArtist(ctx context.Context) (string, int, error) {
	params := url.Values{
		"method":  {"user.getweeklyartistchart"},
		"user":    {c.username},
		"api_key": {c.apiKey},
		"format":  {"json"},
		"limit":   {"1"},
	}

	var resp weeklyArtistChartResponse
	if err := c.call(ctx, params, &resp); err != nil {
		return "", 0, err
	}

	artists := resp.WeeklyArtistChart.Artist
	if len(artists) == 0 {
		return "", 0, nil
	}
	plays, _ := strconv.Atoi(artists[0].PlayCount)
	return artists[0].Name, plays, nil
}

// todayPlayCount counts finished scrobbles dated today in the user's
// local timezone, scanning one page of recent tracks.
func (c *Client) todayPlayCount(ctx context.Context) (int, error) {
	params := url.Values{
		"method":  {"user.getrecenttracks"},
		"user":    {c.username},
		"api_key": {c.apiKey},
		"format":  {"json"},
		"limit":   {"200"},
	}

	var resp recentTracksResponse
	if err := c.call(ctx, params, &resp); err != nil {
		return 0, err
	}

	today := time.Now().Format("2006-01-02")
	count := 0
	for _, tr := range resp.RecentTracks.Track {
		if tr.Attr.NowPlaying == "true" {
			continue
		}
		if tr.Date.UTS != "" {
			uts, err := strconv.ParseInt(tr.Date.UTS, 10, 64)
			if err == nil && time.Unix(uts, 0).Format("2006-01-02") == today {
				count++
			}
			continue
		}
		stamp, err := time.ParseInLocation(_scrobbleDateLayout, tr.Date.Text, time.Local)
		if err == nil && stamp.Format("2006-01-02") == today {
			count++
		}
	}
	return count, nil
}

func (c *Client) totalScrobbles(ctx context.Context) (int, error) {
	params := url.Values{
		"method":  {"user.getinfo"},
		"user":    {c.username},
		"api_key": {c.apiKey},
		"format":  {"json"},
	}

	var resp userInfoResponse
	if err := c.call(ctx, params, &resp); err != nil {
		return 0, err
	}
	total, _ := strconv.Atoi(resp.User.PlayCount)
	return total, nil
}
