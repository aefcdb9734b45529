package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardnew/unitcalc/calc"
)

// commandPrefix introduces a REPL command such as ":help".
const commandPrefix = ":"

// commandNames are the available REPL commands, without the prefix.
var commandNames = []string{"help", "vars", "units", "clear", "quit"}

func helpMessage() string {
	return `
Expressions:
  Operands are numbers with optional units (5, 2.5 km, 9.81 m/s^2),
  variables, or ( parenthesized expressions ).
  Operators ^ / * - + must have a space on each side.
  Assign with: name = expression

Commands:
  :help    Print this help
  :vars    List variables
  :units   List units
  :clear   Clear screen
  :quit    Exit (or type exit)

Keys:
  Tab / Shift-Tab cycle through completions
  Up / Down navigate history
  Ctrl+C on empty line or Ctrl+D to exit
`
}

// listVars renders the session's variables, one "name = value" per line.
func listVars(s *calc.Session) string {
	var b strings.Builder

	for _, name := range s.Symbols() {
		v, _ := s.Lookup(name)
		fmt.Fprintf(&b, "  %s = %s\n", name, v)
	}

	if b.Len() == 0 {
		return "  (none)\n"
	}

	return b.String()
}

// listUnits renders the session's units, one "symbol  factor base" per
// line.
func listUnits(s *calc.Session) string {
	units := s.Registry().Units()

	width := 0
	for _, u := range units {
		width = max(width, len(u.Symbol))
	}

	var b strings.Builder

	for _, u := range units {
		fmt.Fprintf(&b, "  %-*s  %s %s\n",
			width, u.Symbol,
			strconv.FormatFloat(u.Factor, 'g', -1, 64), u.Base())
	}

	return b.String()
}

// parseCommand reports whether input is a REPL command and returns its name.
func parseCommand(input string) (string, bool) {
	name, ok := strings.CutPrefix(strings.TrimSpace(input), commandPrefix)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(name), true
}
