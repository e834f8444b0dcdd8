package models

import "fmt"

// ScoreCard is a finished result as shown on the share image
type ScoreCard struct {
	Trial         Trial  `json:"trial"`
	ElapsedMs     uint32 `json:"elapsed_ms"`
	Vitality      uint8  `json:"vitality"`
	Score         int64  `json:"score"`
	VitalityBonus uint32 `json:"vitality_bonus"`
	TimeText      string `json:"time"`
	Overrun       bool   `json:"overrun"`
}

// Depleted reports whether no vitality is left
func (c ScoreCard) Depleted() bool {
	return c.Vitality == 0
}

// ScoreText is the score as displayed. Negative scores show as 0.
func (c ScoreCard) ScoreText() string {
	if c.Score < 0 {
		return "0"
	}
	return fmt.Sprintf("%d", c.Score)
}

// VitalityText returns "current/max"
func (c ScoreCard) VitalityText() string {
	return fmt.Sprintf("%d/%d", c.Vitality, c.Trial.MaxVitality)
}

// Filename returns the download name for the rendered card
func (c ScoreCard) Filename() string {
	return fmt.Sprintf("%s_%s.png", c.Trial.Name, c.ScoreText())
}
