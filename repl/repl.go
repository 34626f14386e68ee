// Package repl implements an interactive read-simplify-print loop over
// internal/exprlang: each line is parsed, lowered, simplified, and
// evaluated against whatever free variables the user has bound with
// "name = value" so far.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"symexpr/internal/exprlang"
	"symexpr/internal/symbolic"
)

const PROMPT = ">> "

// Start runs the loop, reading lines from in and writing results to out
// until in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := symbolic.Env{}

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if name, value, ok := parseAssignment(line); ok {
			env[name] = value
			color.New(color.FgGreen).Fprintf(out, "%c = %d\n", name, value)
			continue
		}

		expr, err := exprlang.ParseAndLower(line)
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "error: %s\n", err)
			continue
		}

		simplified := expr.Simplify()
		fmt.Fprintf(out, "= %s\n", simplified.String())

		if v, ok := simplified.Exec(env); ok {
			color.New(color.FgCyan).Fprintf(out, "  value: %d\n", v)
		}
	}
}

// parseAssignment recognizes the "x = 5" form used to bind a variable for
// later lines. It does not accept arbitrary expressions on the right-hand
// side: only integer literals.
func parseAssignment(line string) (byte, int64, bool) {
	eq := strings.IndexByte(line, '=')
	if eq <= 0 {
		return 0, 0, false
	}

	name := strings.TrimSpace(line[:eq])
	if len(name) != 1 {
		return 0, 0, false
	}

	value, err := strconv.ParseInt(strings.TrimSpace(line[eq+1:]), 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return name[0], value, true
}
