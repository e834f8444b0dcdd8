// Package cli is the command-line front end: it parses user input, drives the
// calculator and prints or renders the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/terra-clan/trial-scorecard/internal/catalog"
	"github.com/terra-clan/trial-scorecard/internal/render"
)

// Common errors
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
)

// App wires the catalog and renderer to the commands
type App struct {
	catalog   *catalog.Catalog
	renderer  *render.Renderer
	outputDir string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewApp creates the command runner
func NewApp(c *catalog.Catalog, r *render.Renderer, outputDir string, stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{
		catalog:   c,
		renderer:  r,
		outputDir: outputDir,
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
	}
}

type command struct {
	name    string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"trials", "list the trial catalog", (*App).runTrials},
	{"score", "compute the score for a completion time", (*App).runScore},
	{"time", "compute the completion time for a target score", (*App).runTime},
	{"card", "render the share image", (*App).runCard},
	{"repl", "interactive calculator on stdin", (*App).runREPL},
}

// Run executes the subcommand named by args[0]
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.usage()
		return nil
	}

	for _, cmd := range commands {
		if cmd.name == name {
			slog.Debug("running command", "command", name, "args", args[1:])
			return cmd.run(a, ctx, args[1:])
		}
	}

	a.usage()
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (a *App) usage() {
	fmt.Fprintln(a.stderr, "usage: scorecard <command> [flags]")
	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(a.stderr, "  %-8s %s\n", cmd.name, cmd.summary)
	}
}
