// Package exprlang is a small textual surface syntax over
// internal/symbolic: integer literals, single-character variables, the
// arithmetic/logical/comparison operators, and min/max function calls,
// parsed with participle and lowered to a symbolic.Expression.
package exprlang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes one expression at a time. It mirrors the teacher
// grammar's stateful single-"Root"-state lexer, pared down to the tokens
// this much smaller surface syntax needs.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Operator", `(\|\||&&|>=|[-+*/%<])`, nil},
		{"Punctuation", `[(),]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
