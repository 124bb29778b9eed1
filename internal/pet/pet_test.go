package pet

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

// recordingNotifier captures delivered events for assertions
type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *recordingNotifier) Notify(_ context.Context, ev domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) kinds() []domain.EventKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]domain.EventKind, 0, len(n.events))
	for _, ev := range n.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func (n *recordingNotifier) has(kind domain.EventKind) bool {
	for _, k := range n.kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func newTestPet(t *testing.T) (*Pet, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	return New(zap.NewNop(), n, t.TempDir()), n
}

func TestFeedRaisesStats(t *testing.T) {
	p, n := newTestPet(t)
	track := domain.Track{Title: "Song", Artist: "Artist"}

	p.Feed(context.Background(), track)

	s := p.Snapshot()
	if s.Hunger != 65 || s.Happiness != 60 || s.Energy != 55 {
		t.Errorf("stats after one feed = %.0f/%.0f/%.0f, want 65/60/55",
			s.Hunger, s.Happiness, s.Energy)
	}
	if s.Experience != 10 || s.TotalScrobbles != 1 {
		t.Errorf("xp/scrobbles = %d/%d, want 10/1", s.Experience, s.TotalScrobbles)
	}
	if s.LastFed.IsZero() {
		t.Error("LastFed not stamped")
	}
	if !n.has(domain.EventFed) {
		t.Errorf("no fed event delivered, got %v", n.kinds())
	}
}

func TestFeedStatsClampAtMax(t *testing.T) {
	p, _ := newTestPet(t)
	track := domain.Track{Title: "Song", Artist: "Artist"}

	for i := 0; i < 20; i++ {
		p.Feed(context.Background(), track)
	}

	s := p.Snapshot()
	if s.Hunger != 100 || s.Happiness != 100 || s.Energy != 100 {
		t.Errorf("stats should clamp at 100, got %.0f/%.0f/%.0f",
			s.Hunger, s.Happiness, s.Energy)
	}
}

func TestFeedMoodTransition(t *testing.T) {
	p, n := newTestPet(t)

	// One feed moves the stat average from 50 to 60: neutral -> happy
	p.Feed(context.Background(), domain.Track{Title: "Song", Artist: "Artist"})

	if got := p.Snapshot().Mood; got != "happy" {
		t.Errorf("mood = %s, want happy", got)
	}
	if !n.has(domain.EventMoodChanged) {
		t.Errorf("no mood change event delivered, got %v", n.kinds())
	}
}

func TestLevelUpAndEvolution(t *testing.T) {
	p, n := newTestPet(t)
	track := domain.Track{Title: "Song", Artist: "Artist"}

	// Level 1 needs 100 xp at 10 per feed
	for i := 0; i < 10; i++ {
		p.Feed(context.Background(), track)
	}
	if got := p.Snapshot().Level; got != 2 {
		t.Fatalf("level after 100 xp = %d, want 2", got)
	}
	if !n.has(domain.EventLeveledUp) {
		t.Errorf("no level-up event delivered, got %v", n.kinds())
	}

	// Levels 2..4 need 200+300+400 more xp; 90 further feeds reach level 5
	for i := 0; i < 90; i++ {
		p.Feed(context.Background(), track)
	}
	s := p.Snapshot()
	if s.Level != 5 {
		t.Fatalf("level after 1000 xp = %d, want 5", s.Level)
	}
	if s.EvolutionStage != 1 {
		t.Errorf("evolution stage = %d, want 1 at level 5", s.EvolutionStage)
	}
	if !n.has(domain.EventEvolved) {
		t.Errorf("no evolution event delivered, got %v", n.kinds())
	}
}

func TestDecayLowersStatsAndClampsAtZero(t *testing.T) {
	p, n := newTestPet(t)

	approx := func(got, want float64) bool {
		diff := got - want
		return diff > -1e-9 && diff < 1e-9
	}

	p.decay(context.Background())
	s := p.Snapshot()
	if !approx(s.Hunger, 49.5) || !approx(s.Happiness, 49.7) || !approx(s.Energy, 49.8) {
		t.Errorf("stats after one decay = %.1f/%.1f/%.1f, want 49.5/49.7/49.8",
			s.Hunger, s.Happiness, s.Energy)
	}

	for i := 0; i < 500; i++ {
		p.decay(context.Background())
	}
	s = p.Snapshot()
	if s.Hunger != 0 || s.Happiness != 0 || s.Energy != 0 {
		t.Errorf("stats should clamp at 0, got %.1f/%.1f/%.1f",
			s.Hunger, s.Happiness, s.Energy)
	}
	if s.Mood != "starving" {
		t.Errorf("mood = %s, want starving", s.Mood)
	}
	if !n.has(domain.EventMoodChanged) {
		t.Error("no mood change event delivered during decay")
	}
}

func TestStatePersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	n := &recordingNotifier{}

	p := New(zap.NewNop(), n, dir)
	p.Feed(context.Background(), domain.Track{Title: "Song", Artist: "Artist"})
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	restored := New(zap.NewNop(), n, dir)
	s := restored.Snapshot()
	if s.TotalScrobbles != 1 || s.Experience != 10 {
		t.Errorf("restored state = %d scrobbles / %d xp, want 1/10",
			s.TotalScrobbles, s.Experience)
	}
}
