package lastfm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

// zeroBackoff removes the retry waits for the duration of a test
func zeroBackoff(t *testing.T) {
	t.Helper()
	saved := _backoff
	_backoff = []time.Duration{0, 0, 0}
	t.Cleanup(func() { _backoff = saved })
}

func TestCurrentTrackParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("method"); got != "user.getrecenttracks" {
			t.Errorf("method = %s, want user.getrecenttracks", got)
		}
		if got := r.URL.Query().Get("user"); got != "testuser" {
			t.Errorf("user = %s, want testuser", got)
		}
		fmt.Fprint(w, `{
			"recenttracks": {
				"track": [{
					"name": "Song Title",
					"artist": {"#text": "Some Artist"},
					"album": {"#text": "Some Album"},
					"image": [
						{"size": "small", "#text": "https://i.example.com/64s/a.png"},
						{"size": "large", "#text": "https://i.example.com/174s/a.png"},
						{"size": "extralarge", "#text": "https://i.example.com/300x300/a.png"}
					],
					"@attr": {"nowplaying": "true"}
				}]
			}
		}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(zap.NewNop(), "key", "testuser", srv.URL)
	track, err := c.CurrentTrack(context.Background())
	if err != nil {
		t.Fatalf("CurrentTrack failed: %v", err)
	}

	want := domain.Track{
		Title:      "Song Title",
		Artist:     "Some Artist",
		Album:      "Some Album",
		ArtworkURL: "https://i.example.com/300x300/a.png",
		NowPlaying: true,
	}
	if track != want {
		t.Errorf("track = %+v, want %+v", track, want)
	}
}

func TestCurrentTrackNormalizesEmptyFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recenttracks": {"track": [{"name": "", "artist": {"#text": ""}}]}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(zap.NewNop(), "key", "testuser", srv.URL)
	track, err := c.CurrentTrack(context.Background())
	if err != nil {
		t.Fatalf("CurrentTrack failed: %v", err)
	}
	if track.Title != domain.UnknownField || track.Artist != domain.UnknownField {
		t.Errorf("empty fields not normalized: %+v", track)
	}
}

func TestCurrentTrackEmptyHistoryIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recenttracks": {"track": []}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(zap.NewNop(), "key", "testuser", srv.URL)
	_, err := c.CurrentTrack(context.Background())
	if !domain.IsPermanent(err) {
		t.Errorf("empty history should be a permanent failure, got %v", err)
	}
}

func TestCurrentTrackPermanentFailureNotRetried(t *testing.T) {
	zeroBackoff(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(zap.NewNop(), "key", "testuser", srv.URL)
	_, err := c.CurrentTrack(context.Background())
	if !domain.IsPermanent(err) {
		t.Errorf("HTTP 500 should be a permanent failure, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("permanent failure retried: %d calls, want 1", n)
	}
}

func TestCurrentTrackTransientFailureRetried(t *testing.T) {
	zeroBackoff(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Drop the connection mid-request to simulate a flaky network
		hj, ok := w.(http.Hijacker)
		if !ok {
			return
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			return
		}
		conn.Close()
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(zap.NewNop(), "key", "testuser", srv.URL)
	_, err := c.CurrentTrack(context.Background())
	if !domain.IsTransient(err) {
		t.Errorf("dropped connection should be a transient failure, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("transient failure attempted %d times, want 3", n)
	}
}

func TestCurrentTrackMalformedBodyIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(zap.NewNop(), "key", "testuser", srv.URL)
	_, err := c.CurrentTrack(context.Background())
	if !domain.IsPermanent(err) {
		t.Errorf("malformed body should be a permanent failure, got %v", err)
	}
}

func TestSelectArtworkURL(t *testing.T) {
	tests := []struct {
		name   string
		images []apiImage
		want   string
	}{
		{
			name: "Prefers extralarge",
			images: []apiImage{
				{Size: "small", Text: "s"},
				{Size: "extralarge", Text: "xl"},
				{Size: "large", Text: "l"},
			},
			want: "xl",
		},
		{
			name: "Skips empty variants",
			images: []apiImage{
				{Size: "extralarge", Text: ""},
				{Size: "large", Text: ""},
				{Size: "medium", Text: "m"},
			},
			want: "m",
		},
		{
			name:   "No variants",
			images: nil,
			want:   "",
		},
		{
			name: "All empty",
			images: []apiImage{
				{Size: "extralarge", Text: ""},
				{Size: "small", Text: ""},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectArtworkURL(tt.images); got != tt.want {
				t.Errorf("selectArtworkURL = %q, want %q", got, tt.want)
			}
		})
	}
}
