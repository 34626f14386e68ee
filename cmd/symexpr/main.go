package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	exprerrors "symexpr/internal/errors"
	"symexpr/internal/exprlang"
	"symexpr/repl"
)

func main() {
	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	failed := false
	for i, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		expr, err := exprlang.ParseAndLower(trimmed)
		if err != nil {
			reportError(string(source), line, i+1, err)
			failed = true
			continue
		}

		simplified := expr.Simplify()
		fmt.Printf("%s\n  = %s\n", trimmed, simplified.String())
		if v, ok := simplified.ToUsize(); ok {
			fmt.Printf("  value: %d\n", v)
		}
	}

	if failed {
		os.Exit(1)
	}

	color.Green("✅ Successfully processed %s", path)
}

// reportError prints a caret-style message for a parse or lowering
// failure. A CompilerError (e.g. an invalid variable name caught during
// lowering) is rendered through ErrorReporter for its suggestions and
// notes; a raw participle.Error falls back to a plain caret; anything
// else just names the line.
func reportError(fullSource, line string, lineNum int, err error) {
	var ce exprerrors.CompilerError
	if errors.As(err, &ce) {
		reporter := exprerrors.NewErrorReporter("<input>", fullSource)
		fmt.Print(reporter.FormatError(ce))
		return
	}

	var pe participle.Error
	if errors.As(err, &pe) {
		pos := pe.Position()
		caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"
		color.Red("❌ error at line %d, column %d:", lineNum, pos.Column)
		fmt.Println(line)
		color.HiRed(caret)
		fmt.Printf("→ %s\n", pe.Message())
		return
	}

	color.Red("❌ error at line %d: %s", lineNum, err)
	fmt.Println(line)
}
