package models

// Hardmode is a difficulty tier of a trial. Its bonus is always counted.
type Hardmode struct {
	Name            string `yaml:"name" json:"name"`
	AdditionalScore uint32 `yaml:"additional_score" json:"additional_score"`
}

// Trial is a single catalog entry. Trials are built once by the catalog and
// only read afterwards.
type Trial struct {
	Name        string     `yaml:"name" json:"name"`
	DisplayName string     `yaml:"-" json:"display_name"`
	BaseScore   uint32     `yaml:"base_score" json:"base_score"`
	MaxVitality uint8      `yaml:"max_vitality" json:"max_vitality"`
	ScoreFactor float64    `yaml:"score_factor" json:"score_factor"` // seconds
	Hardmodes   []Hardmode `yaml:"hardmodes" json:"hardmodes"`
}

// TotalHardmodeBonus returns the sum of all tier bonuses
func (t Trial) TotalHardmodeBonus() uint32 {
	var total uint32
	for _, h := range t.Hardmodes {
		total += h.AdditionalScore
	}
	return total
}

// RawScore is the score for a bare clear with every tier bonus applied
func (t Trial) RawScore() uint32 {
	return t.BaseScore + t.TotalHardmodeBonus()
}

// ScaledScoreFactor returns the reference duration in milliseconds
func (t Trial) ScaledScoreFactor() float64 {
	return t.ScoreFactor * 1000
}

// Display returns the presentation name, falling back to the raw name
func (t Trial) Display() string {
	if t.DisplayName == "" {
		return t.Name
	}
	return t.DisplayName
}

// ClampVitality bounds v to the trial's vitality capacity
func (t Trial) ClampVitality(v uint8) uint8 {
	if v > t.MaxVitality {
		return t.MaxVitality
	}
	return v
}
