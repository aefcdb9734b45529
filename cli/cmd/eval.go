package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/unitcalc/calc"
	"github.com/ardnew/unitcalc/log"
	"github.com/ardnew/unitcalc/quantity"
)

// Eval evaluates expression lines in a single session and prints the
// results.
type Eval struct {
	Lines  []string `arg:"" help:"Lines to evaluate, in order"                      name:"line"              optional:""`
	File   []string `       help:"Read lines from file(s) or '-' for stdin first"                             short:"f" type:"path"`
	Format string   `       help:"Output format"                             default:"text" enum:"text,json,yaml"`
}

// result is the machine-readable outcome of one evaluated line.
type result struct {
	Input string         `json:"input"          yaml:"input"`
	Name  string         `json:"name,omitempty" yaml:"name,omitempty"`
	Value quantity.Value `json:"value"          yaml:"value"`
}

// Run executes the eval command. Evaluation stops at the first error or
// the exit command. The results produced before an error are still
// written.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	session, err := newSession(ctx)
	if err != nil {
		return err
	}

	lines, err := e.input()
	if err != nil {
		return err
	}

	out := stdout(ctx)

	results := make([]result, 0, len(lines))

	for i, line := range lines {
		var outcome calc.Outcome

		outcome, err = session.Execute(ctx, line)
		if err != nil {
			err = ErrEvaluate.Wrap(err).With(
				slog.Int("line", i+1),
				slog.String("input", line),
			)

			break
		}

		log.TraceContext(ctx, "eval",
			slog.String("input", line),
			slog.String("kind", outcome.Kind.String()),
		)

		if outcome.Kind == calc.OutcomeExit {
			break
		}

		if outcome.Kind == calc.OutcomeSkip {
			continue
		}

		if e.Format == formatText {
			fmt.Fprintln(out, outcome)

			continue
		}

		results = append(results, result{
			Input: line,
			Name:  outcome.Name,
			Value: outcome.Value,
		})
	}

	if e.Format != formatText {
		if encErr := encode(ctx, out, e.Format, results); encErr != nil && err == nil {
			err = encErr
		}
	}

	return err
}

// input returns the lines of the source files followed by the line
// arguments. Without either, lines are read from stdin.
func (e *Eval) input() ([]string, error) {
	sources := e.File
	if len(sources) == 0 && len(e.Lines) == 0 {
		sources = []string{stdinSource}
	}

	var lines []string

	if src := buildSourceFiles(sources); src != nil {
		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}

		if err := scanner.Err(); err != nil {
			return nil, ErrReadSource.Wrap(err)
		}
	}

	return append(lines, e.Lines...), nil
}
