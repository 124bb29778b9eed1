// Package pet implements the scrobble-fed virtual pet: stats decay
// over time and new tracks feed it, driving levels, evolution stages
// and moods.
package pet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

const (
	_stateFile = "pet_state.json"

	_maxStat = 100.0
	_minStat = 0.0

	// decay rates, points per minute
	_hungerDecay    = 0.5
	_happinessDecay = 0.3
	_energyDecay    = 0.2

	// feeding bonuses per new scrobble
	_feedHunger     = 15.0
	_feedHappiness  = 10.0
	_feedEnergy     = 5.0
	_feedExperience = 10

	// experience needed per level = level * _levelMultiplier
	_levelMultiplier = 100

	_decayInterval = time.Minute
)

// _evolutionLevels are the levels at which the pet evolves
var _evolutionLevels = []int{5, 10, 15, 20, 25}

// _stages names the evolution stages, index = stage
var _stages = []string{
	"Baby Melody",
	"Growing Melody",
	"Teen Melody",
	"Adult Melody",
	"Legendary Melody",
	"Mythic Melody",
}

// moodFor buckets the average of the three stats into a mood
func moodFor(avg float64) string {
	switch {
	case avg >= 80:
		return "ecstatic"
	case avg >= 60:
		return "happy"
	case avg >= 40:
		return "neutral"
	case avg >= 20:
		return "sad"
	default:
		return "starving"
	}
}

// State is the persisted pet state
type State struct {
	Name           string    `json:"name"`
	Hunger         float64   `json:"hunger"`
	Happiness      float64   `json:"happiness"`
	Energy         float64   `json:"energy"`
	Level          int       `json:"level"`
	Experience     int       `json:"experience"`
	Mood           string    `json:"mood"`
	EvolutionStage int       `json:"evolution_stage"`
	TotalScrobbles int       `json:"total_scrobbles"`
	LastFed        time.Time `json:"last_fed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Pet owns the state and emits semantic events on transitions.
// Safe for use from the sync loop and its own decay goroutine.
type Pet struct {
	logger   *zap.Logger
	notifier domain.Notifier
	path     string

	mu    sync.Mutex
	state State
}

// New loads persisted pet state from dir, or starts a fresh pet
func New(logger *zap.Logger, notifier domain.Notifier, dir string) *Pet {
	p := &Pet{
		logger:   logger,
		notifier: notifier,
		path:     filepath.Join(dir, _stateFile),
		state: State{
			Name:      "Melody",
			Hunger:    50,
			Happiness: 50,
			Energy:    50,
			Level:     1,
			Mood:      "neutral",
			UpdatedAt: time.Now(),
		},
	}

	if data, err := os.ReadFile(p.path); err == nil {
		var saved State
		if err := json.Unmarshal(data, &saved); err == nil && saved.Name != "" {
			p.state = saved
			logger.Info("Pet state restored",
				zap.String("name", saved.Name),
				zap.Int("level", saved.Level))
		}
	}
	return p
}

// Start launches the stat decay loop. Non-blocking.
func (p *Pet) Start(ctx context.Context) error {
	go p.decayLoop(ctx)
	return nil
}

// Stop persists the current state
func (p *Pet) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.save()
}

// Snapshot returns a copy of the current state
func (p *Pet) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Feed applies one new scrobble to the pet and emits events for
// feeding, level-ups, evolutions and mood changes.
func (p *Pet) Feed(ctx context.Context, track domain.Track) {
	p.mu.Lock()

	p.state.Hunger = clampStat(p.state.Hunger + _feedHunger)
	p.state.Happiness = clampStat(p.state.Happiness + _feedHappiness)
	p.state.Energy = clampStat(p.state.Energy + _feedEnergy)
	p.state.Experience += _feedExperience
	p.state.TotalScrobbles++
	p.state.LastFed = time.Now()

	events := []domain.Event{{
		Kind:    domain.EventFed,
		Message: fmt.Sprintf("%s fed with %q by %s", p.state.Name, track.Title, track.Artist),
	}}
	events = append(events, p.applyLevelUps()...)
	events = append(events, p.applyMood()...)

	p.state.UpdatedAt = time.Now()
	if err := p.save(); err != nil {
		p.logger.Warn("Failed to persist pet state", zap.Error(err))
	}
	p.mu.Unlock()

	for _, ev := range events {
		p.notifier.Notify(ctx, ev)
	}
}

func (p *Pet) decayLoop(ctx context.Context) {
	ticker := time.NewTicker(_decayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.decay(ctx)
		}
	}
}

func (p *Pet) decay(ctx context.Context) {
	p.mu.Lock()

	minutes := _decayInterval.Minutes()
	p.state.Hunger = clampStat(p.state.Hunger - _hungerDecay*minutes)
	p.state.Happiness = clampStat(p.state.Happiness - _happinessDecay*minutes)
	p.state.Energy = clampStat(p.state.Energy - _energyDecay*minutes)

	events := p.applyMood()
	p.state.UpdatedAt = time.Now()
	if err := p.save(); err != nil {
		p.logger.Warn("Failed to persist pet state", zap.Error(err))
	}
	p.mu.Unlock()

	for _, ev := range events {
		p.notifier.Notify(ctx, ev)
	}
}

// applyLevelUps consumes experience into levels and evolution stages.
// Caller holds the lock.
func (p *Pet) applyLevelUps() []domain.Event {
	var events []domain.Event
	for p.state.Experience >= p.state.Level*_levelMultiplier {
		p.state.Experience -= p.state.Level * _levelMultiplier
		p.state.Level++
		events = append(events, domain.Event{
			Kind:    domain.EventLeveledUp,
			Message: fmt.Sprintf("%s reached level %d!", p.state.Name, p.state.Level),
		})

		for i, lvl := range _evolutionLevels {
			if p.state.Level == lvl && p.state.EvolutionStage == i {
				p.state.EvolutionStage = i + 1
				events = append(events, domain.Event{
					Kind:    domain.EventEvolved,
					Message: fmt.Sprintf("%s evolved into %s!", p.state.Name, p.stageName()),
				})
			}
		}
	}
	return events
}

// applyMood recomputes the mood bucket. Caller holds the lock.
func (p *Pet) applyMood() []domain.Event {
	mood := moodFor((p.state.Hunger + p.state.Happiness + p.state.Energy) / 3)
	if mood == p.state.Mood {
		return nil
	}
	p.state.Mood = mood
	return []domain.Event{{
		Kind:    domain.EventMoodChanged,
		Message: fmt.Sprintf("%s is now %s", p.state.Name, mood),
	}}
}

func (p *Pet) stageName() string {
	if p.state.EvolutionStage < len(_stages) {
		return _stages[p.state.EvolutionStage]
	}
	return _stages[len(_stages)-1]
}

// save writes the state file. Caller holds the lock.
func (p *Pet) save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

func clampStat(v float64) float64 {
	if v < _minStat {
		return _minStat
	}
	if v > _maxStat {
		return _maxStat
	}
	return v
}
