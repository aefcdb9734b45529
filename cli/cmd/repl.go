package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/unitcalc/cli/cmd/repl"
	"github.com/ardnew/unitcalc/log"
)

// Repl reads, evaluates and prints input lines until exit or end of input.
type Repl struct {
	Quiet   bool   `help:"Omit the prompt when input is not a terminal" short:"q"`
	History string `default:"${history}" help:"History file" type:"path"`
}

// Run executes the repl command. A terminal gets the interactive editor;
// other input is read line by line.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	session, err := newSession(ctx)
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	log.DebugContext(ctx, "repl",
		slog.Bool("interactive", interactive),
		slog.String("history", r.History),
	)

	if interactive {
		return repl.Run(ctx, session, r.History, log.Default())
	}

	prompt := "> "
	if r.Quiet {
		prompt = ""
	}

	return repl.RunLines(ctx, session, os.Stdin, stdout(ctx), prompt, log.Default())
}
