package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/terra-clan/trial-scorecard/internal/models"
)

//go:embed trials.yaml
var defaultData []byte

// ErrTrialNotFound is returned when a trial reference matches nothing
var ErrTrialNotFound = errors.New("trial not found")

// Catalog is the ordered, read-only list of trials.
// Positions are stable and double as selection indices.
type Catalog struct {
	trials []models.Trial
	index  map[string]int
}

// Default returns the catalog built into the binary.
// The embedded data is validated by tests, so a parse failure here is a build defect.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("embedded trial catalog is invalid: %v", err))
	}
	return c
}

// LoadFile parses a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	slog.Info("catalog loaded", "path", path, "trials", c.Len())
	return c, nil
}

// Parse builds a catalog from YAML data
func Parse(data []byte) (*Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(cf.Trials) == 0 {
		return nil, fmt.Errorf("catalog has no trials")
	}

	exempt := make(map[string]bool, len(cf.SuffixExempt))
	for _, name := range cf.SuffixExempt {
		exempt[name] = true
	}

	c := &Catalog{
		trials: make([]models.Trial, 0, len(cf.Trials)),
		index:  make(map[string]int, len(cf.Trials)),
	}

	for i, t := range cf.Trials {
		if err := validateTrial(t); err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}

		key := strings.ToLower(t.Name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("trial %d: duplicate name %q", i, t.Name)
		}

		t.DisplayName = t.Name
		if !exempt[t.Name] {
			t.DisplayName = t.Name + cf.DisplaySuffix
		}

		c.index[key] = len(c.trials)
		c.trials = append(c.trials, t)
	}

	return c, nil
}

func validateTrial(t models.Trial) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !(t.ScoreFactor > 0) || math.IsInf(t.ScoreFactor, 0) {
		return fmt.Errorf("%s: score_factor must be positive", t.Name)
	}
	if t.ScaledScoreFactor() > math.MaxUint32 {
		return fmt.Errorf("%s: score_factor overflows the millisecond range", t.Name)
	}

	total := uint64(t.BaseScore)
	for _, h := range t.Hardmodes {
		total += uint64(h.AdditionalScore)
	}
	if total > math.MaxUint32 {
		return fmt.Errorf("%s: base score plus hardmode bonuses overflows", t.Name)
	}
	return nil
}

// List returns all trials in presentation order
func (c *Catalog) List() []models.Trial {
	result := make([]models.Trial, len(c.trials))
	for i, t := range c.trials {
		result[i] = cloneTrial(t)
	}
	return result
}

// Len returns the number of trials
func (c *Catalog) Len() int {
	return len(c.trials)
}

// At returns the trial at position i
func (c *Catalog) At(i int) (models.Trial, bool) {
	if i < 0 || i >= len(c.trials) {
		return models.Trial{}, false
	}
	return cloneTrial(c.trials[i]), true
}

// cloneTrial detaches the hardmode list from catalog storage
func cloneTrial(t models.Trial) models.Trial {
	t.Hardmodes = slices.Clone(t.Hardmodes)
	return t
}

// Clamp bounds i to a valid position
func (c *Catalog) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(c.trials) {
		return len(c.trials) - 1
	}
	return i
}

// Find looks a trial up by raw name, ignoring case
func (c *Catalog) Find(name string) (int, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// Resolve accepts either a position or a raw trial name
func (c *Catalog) Resolve(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if _, ok := c.At(n); !ok {
			return 0, fmt.Errorf("%w: index %d out of range [0, %d]", ErrTrialNotFound, n, c.Len()-1)
		}
		return n, nil
	}
	if i, ok := c.Find(ref); ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrTrialNotFound, ref)
}

// --- YAML file structs ---

// catalogFile represents the YAML structure of a catalog file
type catalogFile struct {
	DisplaySuffix string         `yaml:"display_suffix"`
	SuffixExempt  []string       `yaml:"suffix_exempt"`
	Trials        []models.Trial `yaml:"trials"`
}
