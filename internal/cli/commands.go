package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/terra-clan/trial-scorecard/internal/calculator"
	"github.com/terra-clan/trial-scorecard/internal/models"
	"github.com/terra-clan/trial-scorecard/internal/scoring"
)

// trialView is the JSON form of a catalog entry
type trialView struct {
	Index         int          `json:"index"`
	Trial         models.Trial `json:"trial"`
	HardmodeBonus uint32       `json:"hardmode_bonus"`
	ReferenceTime string       `json:"reference_time"`
}

// timeResult is the JSON form of the time command
type timeResult struct {
	Trial       string `json:"trial"`
	TargetScore uint32 `json:"target_score"`
	Vitality    uint8  `json:"vitality"`
	ElapsedMs   uint32 `json:"elapsed_ms"`
	Time        string `json:"time"`
	TimePadded  string `json:"time_padded"`
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// runTrials lists the catalog
func (a *App) runTrials(_ context.Context, args []string) error {
	fs := a.newFlagSet("trials")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	trials := a.catalog.List()
	if *asJSON {
		views := make([]trialView, 0, len(trials))
		for i, t := range trials {
			views = append(views, trialView{
				Index:         i,
				Trial:         t,
				HardmodeBonus: t.TotalHardmodeBonus(),
				ReferenceTime: scoring.FormatDurationRounded(uint32(t.ScaledScoreFactor())),
			})
		}
		return writeJSON(a.stdout, map[string]interface{}{
			"trials": views,
			"total":  len(views),
		})
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTRIAL\tBASE\tHARDMODES\tVITALITY\tTIME")
	for i, t := range trials {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
			i, t.Display(), t.BaseScore, t.TotalHardmodeBonus(), t.MaxVitality,
			scoring.FormatDurationRounded(uint32(t.ScaledScoreFactor())))
	}
	return tw.Flush()
}

// runScore prints the score for a completion time
func (a *App) runScore(_ context.Context, args []string) error {
	fs := a.newFlagSet("score")
	trialRef := fs.String("trial", "0", "trial index or name")
	timeText := fs.String("time", "", "completion time, [[H:]M:]S[.fraction]")
	vitalityText := fs.String("vitality", "", "remaining vitality (default: trial maximum)")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	state, err := a.newState(*trialRef, *vitalityText)
	if err != nil {
		return a.fail(*asJSON, "trial_not_found", err)
	}

	if _, ok := calculator.ParseDuration(*timeText); !ok {
		return a.fail(*asJSON, "validation_error", fmt.Errorf("%w: -time is required, e.g. 14:32.5", ErrUsage))
	}
	state.SetTimeText(*timeText)

	snap := state.Snapshot()
	if *asJSON {
		return writeJSON(a.stdout, snap)
	}
	return writeSnapshot(a.stdout, snap)
}

// runTime prints the completion time needed for a target score
func (a *App) runTime(_ context.Context, args []string) error {
	fs := a.newFlagSet("time")
	trialRef := fs.String("trial", "0", "trial index or name")
	scoreText := fs.String("score", "", "target score")
	vitalityText := fs.String("vitality", "", "remaining vitality (default: trial maximum)")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	state, err := a.newState(*trialRef, *vitalityText)
	if err != nil {
		return a.fail(*asJSON, "trial_not_found", err)
	}

	target, ok := calculator.ParseScore(*scoreText)
	if !ok {
		return a.fail(*asJSON, "validation_error", fmt.Errorf("%w: -score must be a non-negative integer", ErrUsage))
	}

	snap := state.Snapshot()
	ms, err := scoring.TimeForScore(snap.Trial, target, snap.Vitality)
	if err != nil {
		if errors.Is(err, scoring.ErrZeroTotal) {
			return a.fail(*asJSON, "zero_total", err)
		}
		return a.fail(*asJSON, "internal_error", err)
	}

	result := timeResult{
		Trial:       snap.Trial.Name,
		TargetScore: target,
		Vitality:    snap.Vitality,
		ElapsedMs:   ms,
		Time:        scoring.FormatDurationRounded(ms),
		TimePadded:  scoring.FormatDurationPadded(ms),
	}
	if *asJSON {
		return writeJSON(a.stdout, result)
	}
	return writeFields(a.stdout, []field{
		{"Trial", snap.Trial.Display()},
		{"Target Score", fmt.Sprintf("%d", target)},
		{"Vitality", fmt.Sprintf("%d/%d", snap.Vitality, snap.Trial.MaxVitality)},
		{"Total Time", fmt.Sprintf("%s (%s)", result.Time, result.TimePadded)},
	})
}

// runCard renders the share image to a file
func (a *App) runCard(_ context.Context, args []string) error {
	fs := a.newFlagSet("card")
	trialRef := fs.String("trial", "0", "trial index or name")
	timeText := fs.String("time", "", "completion time (default: reference time)")
	vitalityText := fs.String("vitality", "", "remaining vitality (default: trial maximum)")
	outDir := fs.String("out", a.outputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	state, err := a.newState(*trialRef, *vitalityText)
	if err != nil {
		return err
	}
	if *timeText != "" {
		if _, ok := calculator.ParseDuration(*timeText); !ok {
			return fmt.Errorf("%w: invalid -time %q", ErrUsage, *timeText)
		}
		state.SetTimeText(*timeText)
	}

	path, err := a.renderer.WriteFile(*outDir, state.Card())
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

// newState builds a calculator positioned on the referenced trial
func (a *App) newState(trialRef, vitalityText string) (*calculator.State, error) {
	idx, err := a.catalog.Resolve(trialRef)
	if err != nil {
		return nil, err
	}

	state := calculator.New(a.catalog)
	state.SelectTrial(idx)
	if vitalityText != "" {
		state.SetVitalityText(vitalityText)
	}
	return state, nil
}

// fail reports err in the requested format and returns it for the exit code
func (a *App) fail(asJSON bool, code string, err error) error {
	if asJSON {
		writeJSONError(a.stdout, code, err.Error())
	}
	return err
}

func writeSnapshot(w io.Writer, snap calculator.Snapshot) error {
	return writeFields(w, []field{
		{"Trial", snap.Trial.Display()},
		{"Final Score", models.ScoreCard{Score: snap.Score}.ScoreText()},
		{"Total Time", fmt.Sprintf("%s (%s)", snap.Time, snap.TimePadded)},
		{"Vitality Bonus", fmt.Sprintf("%d", snap.VitalityBonus)},
		{"Vitality", fmt.Sprintf("%d/%d", snap.Vitality, snap.Trial.MaxVitality)},
	})
}
