package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 18 {
		t.Fatalf("expected 18 trials, got %d", c.Len())
	}

	first, ok := c.At(0)
	if !ok {
		t.Fatal("first trial not found")
	}
	if first.Name != "Aetherian Archive" {
		t.Errorf("expected first trial 'Aetherian Archive', got '%s'", first.Name)
	}
	if first.BaseScore != 84300 || first.MaxVitality != 24 || first.ScoreFactor != 900 {
		t.Errorf("unexpected Aetherian Archive data: %+v", first)
	}
	if first.TotalHardmodeBonus() != 40000 {
		t.Errorf("expected hardmode bonus 40000, got %d", first.TotalHardmodeBonus())
	}
	if first.ScaledScoreFactor() != 900_000 {
		t.Errorf("expected scaled factor 900000, got %v", first.ScaledScoreFactor())
	}

	i, ok := c.Find("Cloudrest")
	if !ok {
		t.Fatal("Cloudrest not found")
	}
	cloudrest, _ := c.At(i)
	if len(cloudrest.Hardmodes) != 4 {
		t.Errorf("expected 4 Cloudrest tiers, got %d", len(cloudrest.Hardmodes))
	}
	if cloudrest.TotalHardmodeBonus() != 70000 {
		t.Errorf("expected Cloudrest bonus 70000, got %d", cloudrest.TotalHardmodeBonus())
	}

	last, _ := c.At(c.Len() - 1)
	if last.Name != "Vateshran Hollows" {
		t.Errorf("expected last trial 'Vateshran Hollows', got '%s'", last.Name)
	}
	if len(last.Hardmodes) != 0 {
		t.Errorf("expected no Vateshran Hollows tiers, got %d", len(last.Hardmodes))
	}

	for _, trial := range c.List() {
		if trial.ScoreFactor <= 0 {
			t.Errorf("%s: non-positive score factor", trial.Name)
		}
		if trial.MaxVitality == 0 || trial.MaxVitality > 40 {
			t.Errorf("%s: unexpected max vitality %d", trial.Name, trial.MaxVitality)
		}
	}
}

func TestDisplayNames(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		want string
	}{
		{"Aetherian Archive", "Aetherian Archive"},
		{"Hel Ra Citadel", "Hel Ra Citadel"},
		{"Sanctum Ophidia", "Sanctum Ophidia"},
		{"Maw of Lorkhaj", "Maw of Lorkhaj (VETERAN)"},
		{"Kyne's Aegis", "Kyne's Aegis (VETERAN)"},
		{"Vateshran Hollows", "Vateshran Hollows (VETERAN)"},
	}

	for _, tt := range tests {
		i, ok := c.Find(tt.name)
		if !ok {
			t.Errorf("%s not found", tt.name)
			continue
		}
		trial, _ := c.At(i)
		if trial.Display() != tt.want {
			t.Errorf("Display() = %q, want %q", trial.Display(), tt.want)
		}
	}
}

func TestListIsStable(t *testing.T) {
	c := Default()

	a := c.List()
	a[0].Name = "mutated"
	a[0].Hardmodes[0].AdditionalScore = 0

	b := c.List()
	if b[0].Name != "Aetherian Archive" {
		t.Errorf("List returned shared storage, got %q", b[0].Name)
	}
	if got := b[0].TotalHardmodeBonus(); got != 40000 {
		t.Errorf("catalog bonus changed through List: got %d, want 40000", got)
	}

	first, _ := c.At(0)
	first.Hardmodes[0].AdditionalScore = 1
	again, _ := c.At(0)
	if got := again.TotalHardmodeBonus(); got != 40000 {
		t.Errorf("catalog bonus changed through At: got %d, want 40000", got)
	}
}

func TestClamp(t *testing.T) {
	c := Default()

	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{7, 7},
		{17, 17},
		{18, 17},
		{1000, 17},
	}

	for _, tt := range tests {
		if got := c.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, ok := c.At(18); ok {
		t.Error("At(18) should be out of range")
	}
	if _, ok := c.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
}

func TestResolve(t *testing.T) {
	c := Default()

	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 6 ", 6, false},
		{"cloudrest", 6, false},
		{"HEL RA CITADEL", 1, false},
		{"18", 0, true},
		{"-1", 0, true},
		{"Nowhere", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := c.Resolve(tt.ref)
		if tt.wantErr {
			if !errors.Is(err, ErrTrialNotFound) {
				t.Errorf("Resolve(%q): expected ErrTrialNotFound, got %v", tt.ref, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.ref, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %d, want %d", tt.ref, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad yaml", "trials: [", "failed to parse YAML"},
		{"empty", "trials: []", "no trials"},
		{"missing name", "trials:\n  - base_score: 1\n    score_factor: 60\n", "name is required"},
		{"zero factor", "trials:\n  - name: A\n    score_factor: 0\n", "score_factor"},
		{"duplicate", "trials:\n  - name: A\n    score_factor: 60\n  - name: a\n    score_factor: 60\n", "duplicate"},
		{"factor overflow", "trials:\n  - name: A\n    score_factor: 5000000\n", "millisecond range"},
		{"overflow", "trials:\n  - name: A\n    base_score: 4294967295\n    score_factor: 60\n    hardmodes:\n      - { name: HM, additional_score: 1 }\n", "overflows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trials.yaml")

	data := `display_suffix: " (HM)"
suffix_exempt: [Arena]
trials:
  - name: Arena
    base_score: 1000
    max_vitality: 10
    score_factor: 60
  - name: Trial
    base_score: 2000
    max_vitality: 12
    score_factor: 120.5
    hardmodes:
      - { name: "+1", additional_score: 500 }
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 trials, got %d", c.Len())
	}

	arena, _ := c.At(0)
	if arena.Display() != "Arena" {
		t.Errorf("expected exempt display name, got %q", arena.Display())
	}

	trial, _ := c.At(1)
	if trial.Display() != "Trial (HM)" {
		t.Errorf("expected suffixed display name, got %q", trial.Display())
	}
	if trial.RawScore() != 2500 {
		t.Errorf("expected raw score 2500, got %d", trial.RawScore())
	}
	if trial.ScaledScoreFactor() != 120_500 {
		t.Errorf("expected scaled factor 120500, got %v", trial.ScaledScoreFactor())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
