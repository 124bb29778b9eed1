package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/config"
	"github.com/yuckyman/PiMO/internal/domain"
	"github.com/yuckyman/PiMO/internal/engine/mocks"
	"github.com/yuckyman/PiMO/internal/metrics"
	"github.com/yuckyman/PiMO/internal/render"
)

type engineFixture struct {
	engine  *Engine
	frame   *Frame
	source  *mocks.MockTrackSource
	artwork *mocks.MockArtworkStore
	tracks  *mocks.MockTrackStore
	display *mocks.MockDisplay
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	renderer, err := render.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	cfg := &config.AppConfig{
		PollInterval: time.Hour,
		MaxCacheAge:  5 * time.Minute,
		Brightness:   80,
	}

	f := &engineFixture{
		frame:   NewFrame(),
		source:  mocks.NewMockTrackSource(ctrl),
		artwork: mocks.NewMockArtworkStore(ctrl),
		tracks:  mocks.NewMockTrackStore(ctrl),
		display: mocks.NewMockDisplay(ctrl),
	}
	f.engine = NewEngine(zap.NewNop(), cfg, f.source, f.artwork, f.tracks,
		renderer, f.display, f.frame, metrics.New(), nil)
	return f
}

func transientErr() error {
	return &domain.FetchError{Kind: domain.FetchTransient, Err: errors.New("connection refused")}
}

func permanentErr() error {
	return &domain.FetchError{Kind: domain.FetchPermanent, Err: errors.New("unexpected status code: 500")}
}

func TestTickPublishesNewTrack(t *testing.T) {
	f := newEngineFixture(t)
	track := domain.Track{Title: "Song", Artist: "Artist", NowPlaying: true}

	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(track, nil)
	f.tracks.EXPECT().Save(track).Return(nil)
	f.display.EXPECT().Show(gomock.Any()).Return(nil)

	f.engine.tick(context.Background())

	got, offline, _, ok := f.frame.Snapshot()
	if !ok {
		t.Fatal("no frame published after a successful tick")
	}
	if got != track {
		t.Errorf("published track = %+v, want %+v", got, track)
	}
	if offline {
		t.Error("online tick published an offline frame")
	}
}

func TestTickSkipsUnchangedTrack(t *testing.T) {
	f := newEngineFixture(t)
	track := domain.Track{Title: "Song", Artist: "Artist"}

	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(track, nil).Times(2)
	f.tracks.EXPECT().Save(track).Return(nil).Times(2)
	// Exactly one render: the second tick sees the same fingerprint
	f.display.EXPECT().Show(gomock.Any()).Return(nil).Times(1)

	f.engine.tick(context.Background())
	f.engine.tick(context.Background())
}

func TestTickFallsBackToCacheWhenOffline(t *testing.T) {
	f := newEngineFixture(t)
	cached := domain.Track{Title: "Cached Song", Artist: "Cached Artist"}

	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(domain.Track{}, transientErr())
	f.tracks.EXPECT().Load(5 * time.Minute).Return(cached, true)
	f.display.EXPECT().Show(gomock.Any()).Return(nil)

	f.engine.tick(context.Background())

	got, offline, _, ok := f.frame.Snapshot()
	if !ok {
		t.Fatal("no frame published from the offline cache")
	}
	if got != cached {
		t.Errorf("published track = %+v, want cached %+v", got, cached)
	}
	if !offline {
		t.Error("cache-served frame not marked offline")
	}
}

func TestTickWithNoUsableCacheKeepsPreviousFrame(t *testing.T) {
	f := newEngineFixture(t)

	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(domain.Track{}, transientErr())
	f.tracks.EXPECT().Load(5 * time.Minute).Return(domain.Track{}, false)

	f.engine.tick(context.Background())

	if _, ok := f.frame.PNG(); ok {
		t.Error("a frame was published despite no track and no cache")
	}
}

func TestTickIgnoresPermanentFailures(t *testing.T) {
	f := newEngineFixture(t)

	// No Load, no Show: a bad response fails the tick outright
	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(domain.Track{}, permanentErr())

	f.engine.tick(context.Background())

	if _, ok := f.frame.PNG(); ok {
		t.Error("a frame was published on a permanent failure")
	}
}

func TestTickRerendersOnRecovery(t *testing.T) {
	f := newEngineFixture(t)
	track := domain.Track{Title: "Song", Artist: "Artist"}

	// Tick 1: offline, served from cache. Tick 2: the same track comes
	// back online; the unchanged fingerprint must not suppress the
	// render that drops the offline marker.
	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(domain.Track{}, transientErr())
	f.tracks.EXPECT().Load(5 * time.Minute).Return(track, true)
	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(track, nil)
	f.tracks.EXPECT().Save(track).Return(nil)
	f.display.EXPECT().Show(gomock.Any()).Return(nil).Times(2)

	f.engine.tick(context.Background())
	f.engine.tick(context.Background())

	_, offline, _, ok := f.frame.Snapshot()
	if !ok {
		t.Fatal("no frame published")
	}
	if offline {
		t.Error("recovered frame still marked offline")
	}
}

func TestTickArtworkFailureRendersPlaceholder(t *testing.T) {
	f := newEngineFixture(t)
	track := domain.Track{Title: "Song", Artist: "Artist", ArtworkURL: "https://i.example.com/300x300/a.png"}

	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(track, nil)
	f.tracks.EXPECT().Save(track).Return(nil)
	f.artwork.EXPECT().Get(gomock.Any(), track.ArtworkURL).Return(nil, errors.New("no usable artwork"))
	f.display.EXPECT().Show(gomock.Any()).Return(nil)

	f.engine.tick(context.Background())

	if _, ok := f.frame.PNG(); !ok {
		t.Error("artwork failure should not block the frame")
	}
}

func TestTickDisplayFailureSkipsFramePublish(t *testing.T) {
	f := newEngineFixture(t)
	track := domain.Track{Title: "Song", Artist: "Artist"}

	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(track, nil)
	f.tracks.EXPECT().Save(track).Return(nil)
	f.display.EXPECT().Show(gomock.Any()).Return(errors.New("spi write failed"))

	f.engine.tick(context.Background())

	if _, ok := f.frame.PNG(); ok {
		t.Error("frame cell updated although the display rejected the frame")
	}
}

func TestStartShowsWaitingScreenAndStopClears(t *testing.T) {
	f := newEngineFixture(t)

	ctx, cancel := context.WithCancel(context.Background())

	f.display.EXPECT().SetBrightness(80).Return(nil)
	f.display.EXPECT().Show(gomock.Any()).Return(nil).MinTimes(1)
	f.source.EXPECT().CurrentTrack(gomock.Any()).Return(domain.Track{}, permanentErr()).AnyTimes()
	f.display.EXPECT().Clear().Return(nil)

	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()
	// Let the loop goroutine observe the cancellation before the mock
	// controller starts verifying expectations
	time.Sleep(100 * time.Millisecond)

	if err := f.engine.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}
