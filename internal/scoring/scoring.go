// Package scoring converts between completion time and trial score.
//
// The score of a run is
//
//	floor((raw + vitality*1000) * (1 + (factorMs - elapsedMs) / 10_000_000))
//
// where raw is the base score plus every hardmode bonus and factorMs is the
// trial's reference duration in milliseconds. TimeForScore solves the same
// equation for elapsedMs.
package scoring

import (
	"errors"
	"math"

	"github.com/terra-clan/trial-scorecard/internal/models"
)

const (
	// vitalityPoints is the flat bonus per remaining vitality
	vitalityPoints = 1000

	// timeScale is the number of milliseconds that shifts the multiplier by 1.0
	timeScale = 10_000_000.0
)

// ErrZeroTotal is returned by TimeForScore when the trial is worth no points,
// which leaves the time undefined.
var ErrZeroTotal = errors.New("trial total score is zero")

// VitalityBonus returns the flat bonus for the given vitality. It is not capped.
func VitalityBonus(vitality uint8) uint32 {
	return uint32(vitality) * vitalityPoints
}

// Score computes the final score. The result is truncated toward zero and is
// not floored, so a very large overrun gives a negative score.
func Score(t models.Trial, elapsedMs uint32, vitality uint8) int64 {
	total := totalScore(t, vitality)
	multiplier := 1.0 + (t.ScaledScoreFactor()-float64(elapsedMs))/timeScale
	return int64(total * multiplier)
}

// TimeForScore returns the elapsed milliseconds that produce target.
// Results below zero are clamped to zero, unlike Score.
func TimeForScore(t models.Trial, target uint32, vitality uint8) (uint32, error) {
	total := totalScore(t, vitality)
	if total == 0 {
		return 0, ErrZeroTotal
	}

	ratio := float64(target) / total
	elapsed := t.ScaledScoreFactor() - timeScale*(ratio-1.0)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > math.MaxUint32 {
		elapsed = math.MaxUint32
	}
	return uint32(elapsed), nil
}

// totalScore is the raw score plus the vitality bonus, before the time multiplier
func totalScore(t models.Trial, vitality uint8) float64 {
	return float64(t.RawScore()) + float64(VitalityBonus(vitality))
}

// IsOverrun reports whether elapsedMs is past the trial's reference duration
func IsOverrun(t models.Trial, elapsedMs uint32) bool {
	return float64(elapsedMs) > t.ScaledScoreFactor()
}

// ScoreQuantumMs is the span of elapsed time worth one score point.
// Converting a score back to a time is only exact to within this span.
func ScoreQuantumMs(t models.Trial, vitality uint8) float64 {
	total := totalScore(t, vitality)
	if total == 0 {
		return 0
	}
	return timeScale / total
}
