// Package engine orchestrates the sync loop: fetch the current track,
// cache it, detect changes, render and publish frames.
package engine

import (
	"context"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/change"
	"github.com/yuckyman/PiMO/internal/config"
	"github.com/yuckyman/PiMO/internal/domain"
	"github.com/yuckyman/PiMO/internal/metrics"
	"github.com/yuckyman/PiMO/internal/pet"
	"github.com/yuckyman/PiMO/internal/render"
)

// _animInterval drives marquee re-renders between polls; the marquee
// position itself is a pure function of wall-clock time.
const _animInterval = 250 * time.Millisecond

// Engine runs the poll-tick state machine. Each tick is independent:
// a fetch success renders online, a transient failure falls back to
// the track cache and renders offline, anything else is a log-only
// tick that leaves the previous frame on the display.
type Engine struct {
	logger   *zap.Logger
	cfg      *config.AppConfig
	source   domain.TrackSource
	artwork  domain.ArtworkStore
	tracks   domain.TrackStore
	renderer *render.Renderer
	display  domain.Display
	frame    *Frame
	detector *change.Detector
	metrics  *metrics.Metrics
	pet      *pet.Pet

	// loop-local state, touched only by the sync goroutine
	current     domain.Track
	currentArt  image.Image
	hasTrack    bool
	lastOffline bool
}

// NewEngine creates the orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg *config.AppConfig,
	source domain.TrackSource,
	artwork domain.ArtworkStore,
	tracks domain.TrackStore,
	renderer *render.Renderer,
	disp domain.Display,
	frame *Frame,
	m *metrics.Metrics,
	p *pet.Pet,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		source:   source,
		artwork:  artwork,
		tracks:   tracks,
		renderer: renderer,
		display:  disp,
		frame:    frame,
		detector: change.NewDetector(),
		metrics:  m,
		pet:      p,
	}
}

// Start shows the waiting screen and launches the loop. Non-blocking.
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting",
		zap.Duration("pollInterval", e.cfg.PollInterval))

	if err := e.display.SetBrightness(e.cfg.Brightness); err != nil {
		e.logger.Warn("Failed to set brightness", zap.Error(err))
	}
	if err := e.display.Show(e.renderer.RenderWaiting()); err != nil {
		e.logger.Warn("Failed to show waiting screen", zap.Error(err))
	}

	go e.runLoop(ctx)
	return nil
}

// Stop blanks the display
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping")
	if err := e.display.Clear(); err != nil {
		e.logger.Warn("Failed to clear display", zap.Error(err))
	}
	return nil
}

func (e *Engine) runLoop(ctx context.Context) {
	// First tick immediately, then on the poll interval
	e.tick(ctx)

	poll := time.NewTicker(e.cfg.PollInterval)
	anim := time.NewTicker(_animInterval)
	defer poll.Stop()
	defer anim.Stop()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return
		case <-poll.C:
			e.tick(ctx)
		case <-anim.C:
			e.animate(ctx)
		}
	}
}

// tick performs one fetch → cache → detect → render → publish pass
func (e *Engine) tick(ctx context.Context) {
	e.metrics.Ticks.Inc()

	track, err := e.source.CurrentTrack(ctx)
	if err == nil {
		e.onlineTick(ctx, track)
		return
	}

	if domain.IsPermanent(err) {
		// Bad response shape or status: fail this tick only, touch no
		// cache state.
		e.metrics.FetchFailures.WithLabelValues("permanent").Inc()
		e.logger.Warn("Permanent fetch failure, skipping tick", zap.Error(err))
		return
	}

	e.metrics.FetchFailures.WithLabelValues("transient").Inc()
	e.offlineTick(ctx)
}

func (e *Engine) onlineTick(ctx context.Context, track domain.Track) {
	if err := e.tracks.Save(track); err != nil {
		e.logger.Warn("Failed to persist track cache", zap.Error(err))
	}

	changed := e.detector.Changed(track)
	if changed && e.pet != nil {
		e.pet.Feed(ctx, track)
	}

	if !changed && !e.lastOffline {
		e.logger.Debug("No change in track",
			zap.String("title", track.Title))
		return
	}

	e.logger.Info("Now playing",
		zap.String("title", track.Title),
		zap.String("artist", track.Artist))
	e.publish(ctx, track, false, time.Now())
}

func (e *Engine) offlineTick(ctx context.Context) {
	cached, ok := e.tracks.Load(e.cfg.MaxCacheAge)
	if !ok {
		e.logger.Warn("Data source unreachable and no usable track cache")
		return
	}

	e.metrics.OfflineTicks.Inc()
	changed := e.detector.Changed(cached)
	if !changed && e.lastOffline {
		e.logger.Debug("Offline, no change in cached track")
		return
	}

	e.logger.Info("Offline, using cached track",
		zap.String("title", cached.Title),
		zap.String("artist", cached.Artist))
	e.publish(ctx, cached, true, time.Now())
}

// animate re-renders the current frame when the title marquee is
// active, so the animation advances between polls.
func (e *Engine) animate(ctx context.Context) {
	if !e.hasTrack || !e.renderer.TitleOverflows(e.current) {
		return
	}
	e.publish(ctx, e.current, e.lastOffline, time.Now())
}

// publish renders and pushes one frame. Render or validation failures
// skip the tick and leave the previously shown frame in place.
func (e *Engine) publish(ctx context.Context, track domain.Track, offline bool, now time.Time) {
	// Marquee re-renders of the same track reuse the decoded artwork
	art := e.currentArt
	if !e.hasTrack || track.ArtworkURL != e.current.ArtworkURL {
		art = e.fetchArtwork(ctx, track)
	}

	img, err := e.renderer.Render(track, art, offline, now)
	if err != nil {
		e.logger.Error("Render failed, keeping previous frame", zap.Error(err))
		return
	}

	if err := e.display.Show(img); err != nil {
		e.logger.Error("Failed to publish frame", zap.Error(err))
		return
	}
	if err := e.frame.Set(img, track, offline); err != nil {
		e.logger.Warn("Failed to update shared frame", zap.Error(err))
	}

	e.metrics.Renders.Inc()
	e.current = track
	e.currentArt = art
	e.hasTrack = true
	e.lastOffline = offline
}

// fetchArtwork is best effort: any failure renders the placeholder
func (e *Engine) fetchArtwork(ctx context.Context, track domain.Track) image.Image {
	if track.ArtworkURL == "" {
		return nil
	}
	art, err := e.artwork.Get(ctx, track.ArtworkURL)
	if err != nil {
		e.metrics.ArtworkMisses.Inc()
		e.logger.Debug("No artwork available",
			zap.String("url", track.ArtworkURL), zap.Error(err))
		return nil
	}
	e.metrics.ArtworkHits.Inc()
	return art
}
