package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/terra-clan/trial-scorecard/internal/calculator"
)

const replPrompt = "> "

// runREPL drives one calculator from line commands on stdin
func (a *App) runREPL(ctx context.Context, args []string) error {
	fs := a.newFlagSet("repl")
	trialRef := fs.String("trial", "0", "initial trial index or name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	state, err := a.newState(*trialRef, "")
	if err != nil {
		return err
	}

	unsubscribe := state.Subscribe(func(snap calculator.Snapshot) {
		if err := writeSnapshot(a.stdout, snap); err != nil {
			slog.Warn("failed to print snapshot", "error", err)
		}
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	// stdin -> lines. A Read blocked in Scan does not observe ctx, so after
	// quit or cancel the goroutine lingers until the next line or EOF. The
	// reader belongs to the caller and is left open.
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	a.replHelp()
	if err := writeSnapshot(a.stdout, state.Snapshot()); err != nil {
		return err
	}

	for {
		fmt.Fprint(a.stdout, replPrompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(a.stdout)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(a.stdout)
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := a.replCommand(state, line); quit {
				return nil
			}
		}
	}
}

// replCommand executes one input line and reports whether the session ends
func (a *App) replCommand(state *calculator.State, line string) bool {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "":
	case "quit", "exit", "q":
		return true
	case "help", "?":
		a.replHelp()
	case "trial", "t":
		idx, err := a.catalog.Resolve(arg)
		if err != nil {
			fmt.Fprintln(a.stdout, err)
			return false
		}
		state.SelectTrial(idx)
	case "time":
		state.SetTimeText(arg)
	case "score":
		state.SetScoreText(arg)
	case "vitality", "v":
		state.SetVitalityText(arg)
	case "show":
		if err := writeSnapshot(a.stdout, state.Snapshot()); err != nil {
			slog.Warn("failed to print snapshot", "error", err)
		}
	case "trials":
		if err := a.runTrials(context.Background(), nil); err != nil {
			fmt.Fprintln(a.stdout, err)
		}
	case "card":
		dir := arg
		if dir == "" {
			dir = a.outputDir
		}
		path, err := a.renderer.WriteFile(dir, state.Card())
		if err != nil {
			fmt.Fprintln(a.stdout, err)
			return false
		}
		fmt.Fprintln(a.stdout, path)
	default:
		fmt.Fprintf(a.stdout, "unknown command %q, type help\n", name)
	}
	return false
}

func (a *App) replHelp() {
	fmt.Fprintln(a.stdout, "commands:")
	fmt.Fprintln(a.stdout, "  trial <index|name>   select a trial, resetting vitality and time")
	fmt.Fprintln(a.stdout, "  time <[[H:]M:]S[.f]> set the completion time")
	fmt.Fprintln(a.stdout, "  score <n>            set the time needed for a target score")
	fmt.Fprintln(a.stdout, "  vitality <n>         set remaining vitality")
	fmt.Fprintln(a.stdout, "  show                 print the current result")
	fmt.Fprintln(a.stdout, "  trials               list the catalog")
	fmt.Fprintln(a.stdout, "  card [dir]           render the share image")
	fmt.Fprintln(a.stdout, "  quit                 leave")
}
