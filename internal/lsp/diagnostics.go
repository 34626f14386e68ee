package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"symexpr/internal/exprlang"
)

// DiagnosticsForLines parses each line as an independent expression and
// returns one diagnostic per line that fails to parse or lower. An empty
// or whitespace-only line is not an error.
func DiagnosticsForLines(lines []string) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for i, line := range lines {
		if isBlank(line) {
			continue
		}

		if _, err := exprlang.ParseAndLower(line); err != nil {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(i), Character: 0},
					End:   protocol.Position{Line: uint32(i), Character: uint32(len(line))},
				},
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("symexpr"),
				Message:  err.Error(),
			})
		}
	}

	return diagnostics
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
