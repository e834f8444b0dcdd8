// Package calculator holds the editable inputs of a score preview: the
// selected trial, vitality and completion time. Setters take free text the
// way an input form does and never fail; observers see every change.
package calculator

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/terra-clan/trial-scorecard/internal/catalog"
	"github.com/terra-clan/trial-scorecard/internal/models"
	"github.com/terra-clan/trial-scorecard/internal/scoring"
)

const (
	defaultVitality  = 24
	defaultElapsedMs = 900_000
)

// Snapshot is the derived view of the state after a change
type Snapshot struct {
	Index         int          `json:"index"`
	Trial         models.Trial `json:"trial"`
	Vitality      uint8        `json:"vitality"`
	RawVitality   uint8        `json:"raw_vitality"`
	ElapsedMs     uint32       `json:"elapsed_ms"`
	Score         int64        `json:"score"`
	VitalityBonus uint32       `json:"vitality_bonus"`
	Time          string       `json:"time"`
	TimePadded    string       `json:"time_padded"`
	Overrun       bool         `json:"overrun"`
	Depleted      bool         `json:"depleted"`
	TimeInput     string       `json:"time_input,omitempty"`
	ScoreInput    string       `json:"score_input,omitempty"`
}

// State is the input state of one preview
type State struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	index    int
	vitality uint8
	elapsed  uint32

	timeInput  string
	scoreInput string

	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(Snapshot)
}

// New creates a state on the first trial with the default inputs
func New(c *catalog.Catalog) *State {
	return &State{
		catalog:  c,
		vitality: defaultVitality,
		elapsed:  defaultElapsedMs,
	}
}

// Subscribe registers fn to be called after every change, in registration
// order. The returned function removes it.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

// SelectTrial switches trial, resetting vitality to its maximum and the time
// to its reference duration. Out of range indices are clamped.
func (s *State) SelectTrial(i int) {
	s.update(func() {
		s.index = s.catalog.Clamp(i)
		t := s.trial()
		s.vitality = t.MaxVitality
		s.elapsed = uint32(t.ScaledScoreFactor())
	})
}

// SetVitality sets the raw vitality value
func (s *State) SetVitality(v uint8) {
	s.update(func() {
		s.vitality = v
	})
}

// SetVitalityText parses a vitality count; unparseable text means 0
func (s *State) SetVitalityText(text string) {
	s.SetVitality(ParseVitality(text))
}

// SetElapsed sets the completion time in milliseconds
func (s *State) SetElapsed(ms uint32) {
	s.update(func() {
		s.elapsed = ms
	})
}

// SetTimeText parses a completion time. The time is left unchanged when the
// text is not a duration.
func (s *State) SetTimeText(text string) {
	s.update(func() {
		s.timeInput = text
		if ms, ok := ParseDuration(text); ok {
			s.elapsed = ms
		}
	})
}

// SetScoreText derives the completion time from a target score. The time is
// left unchanged when the text is not a number or the trial is worth nothing.
func (s *State) SetScoreText(text string) {
	s.update(func() {
		s.scoreInput = text
		target, ok := ParseScore(text)
		if !ok {
			return
		}

		t := s.trial()
		ms, err := scoring.TimeForScore(t, target, t.ClampVitality(s.vitality))
		if err != nil {
			slog.Debug("target score ignored", "trial", t.Name, "error", err)
			return
		}
		s.elapsed = ms
	})
}

// Snapshot returns the current derived view
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Card returns the current result as a share card
func (s *State) Card() models.ScoreCard {
	snap := s.Snapshot()
	return models.ScoreCard{
		Trial:         snap.Trial,
		ElapsedMs:     snap.ElapsedMs,
		Vitality:      snap.Vitality,
		Score:         snap.Score,
		VitalityBonus: snap.VitalityBonus,
		TimeText:      snap.Time,
		Overrun:       snap.Overrun,
	}
}

// update applies fn under the lock, then notifies observers outside it
func (s *State) update(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshot()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}

func (s *State) trial() models.Trial {
	t, _ := s.catalog.At(s.index)
	return t
}

func (s *State) snapshot() Snapshot {
	t := s.trial()
	vitality := t.ClampVitality(s.vitality)

	return Snapshot{
		Index:         s.index,
		Trial:         t,
		Vitality:      vitality,
		RawVitality:   s.vitality,
		ElapsedMs:     s.elapsed,
		Score:         scoring.Score(t, s.elapsed, vitality),
		VitalityBonus: scoring.VitalityBonus(vitality),
		Time:          scoring.FormatDurationRounded(s.elapsed),
		TimePadded:    scoring.FormatDurationPadded(s.elapsed),
		Overrun:       scoring.IsOverrun(t, s.elapsed),
		Depleted:      vitality == 0,
		TimeInput:     s.timeInput,
		ScoreInput:    s.scoreInput,
	}
}
