package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/unitcalc/calc"
	"github.com/ardnew/unitcalc/log"
)

// RunLines executes each line read from r and writes the results to w,
// writing prompt before every line. It returns at end of input or on the
// exit command. Evaluation errors are written as "Error: <message>" and do
// not stop the loop.
func RunLines(
	ctx context.Context,
	session *calc.Session,
	r io.Reader,
	w io.Writer,
	prompt string,
	logger log.Logger,
) error {
	scanner := bufio.NewScanner(r)

	for {
		if prompt != "" {
			if _, err := io.WriteString(w, prompt); err != nil {
				return err
			}
		}

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()

		if name, ok := parseCommand(line); ok {
			if quit := lineCommand(w, session, name); quit {
				return nil
			}

			continue
		}

		out, err := session.Execute(ctx, line)
		if err != nil {
			logger.DebugContext(ctx, "eval failed",
				slog.String("input", line),
				slog.Any("error", err),
			)
			fmt.Fprintf(w, "Error: %v\n", err)

			continue
		}

		switch out.Kind {
		case calc.OutcomeExit:
			return nil
		case calc.OutcomeSkip:
			continue
		default:
			fmt.Fprintln(w, out)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return nil
}

// lineCommand runs a REPL command in line mode and reports whether the
// loop should end.
func lineCommand(w io.Writer, session *calc.Session, name string) bool {
	switch name {
	case "q", "quit":
		return true
	case "h", "help":
		fmt.Fprint(w, helpMessage())
	case "v", "vars":
		fmt.Fprint(w, listVars(session))
	case "u", "units":
		fmt.Fprint(w, listUnits(session))
	case "c", "clear":
	default:
		fmt.Fprintf(w, "Error: %v: %s\n", ErrUnknownCommand, name)
	}

	return false
}
