package errors

import "fmt"

// ExprErrorBuilder provides a fluent interface for building one diagnostic.
type ExprErrorBuilder struct {
	err CompilerError
}

// NewExprError creates a new error builder at the given level.
func NewExprError(level ErrorLevel, code, message string, pos Position) *ExprErrorBuilder {
	return &ExprErrorBuilder{
		err: CompilerError{
			Level:    level,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span.
func (b *ExprErrorBuilder) WithLength(length int) *ExprErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error.
func (b *ExprErrorBuilder) WithSuggestion(message string) *ExprErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error.
func (b *ExprErrorBuilder) WithNote(note string) *ExprErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error.
func (b *ExprErrorBuilder) WithHelp(help string) *ExprErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error.
func (b *ExprErrorBuilder) Build() CompilerError {
	return b.err
}

// SyntaxError reports an unexpected token while lexing or parsing an
// expression. When the offending token is a near-miss it suggests the
// first of knownKeywords within edit distance 2 (e.g. "mni" for "min"
// when "min" is listed first).
func SyntaxError(got string, pos Position, knownKeywords []string) CompilerError {
	builder := NewExprError(Error, ErrorSyntax, fmt.Sprintf("unexpected token '%s'", got), pos).
		WithLength(len(got))

	if similar := findSimilarNames(got, knownKeywords); len(similar) > 0 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	}

	return builder.WithHelp("expressions are built from integer literals, single-character variables, " +
		"+ - * / %, && ||, >= <, and min(a, b)/max(a, b)").Build()
}

// EmptyExpressionError reports an input that produced no expression at all.
func EmptyExpressionError(pos Position) CompilerError {
	return NewExprError(Error, ErrorEmptyExpression, "expression is empty", pos).
		WithSuggestion("enter an integer literal, a variable, or an operator expression").
		Build()
}

// InvalidVariableNameError reports a variable name longer than one
// character, since this engine's Term representation names a variable
// with a single byte.
func InvalidVariableNameError(name string, pos Position) CompilerError {
	return NewExprError(Error, ErrorInvalidVariableName,
		fmt.Sprintf("variable name '%s' is not a single character", name), pos).
		WithLength(len(name)).
		WithNote("this engine's variable terms hold exactly one ASCII character").
		WithSuggestion(fmt.Sprintf("use '%c' or another single letter", name[0])).
		Build()
}

// DivisionByZeroError reports a literal zero divisor or modulus.
func DivisionByZeroError(op string, pos Position) CompilerError {
	return NewExprError(Error, ErrorDivisionByZero, fmt.Sprintf("%s by a literal zero", op), pos).
		WithHelp("division and modulus by zero have no defined result").
		Build()
}

// ArithmeticOverflowError reports a checked arithmetic operation that
// would overflow 64 bits at constant-fold time.
func ArithmeticOverflowError(op string, a, b int64, pos Position) CompilerError {
	return NewExprError(Error, ErrorArithmeticOverflow,
		fmt.Sprintf("%d %s %d overflows a 64-bit integer", a, op, b), pos).
		WithNote("this engine uses checked, not saturating, arithmetic").
		Build()
}

// UnboundVariableWarning reports a variable with no binding at evaluation
// time. This is a warning, not a hard error: an unbound variable is valid
// input to Exec, which simply reports ok=false.
func UnboundVariableWarning(name byte, pos Position) CompilerError {
	return NewExprError(Warning, ErrorUnboundVariable,
		fmt.Sprintf("variable '%c' has no binding", name), pos).
		WithSuggestion("provide a value in the evaluation environment").
		Build()
}

// InlineCapacityExceededError reports a heap-backed expression that grew
// past the inline storage capacity and cannot convert back with Small.
func InlineCapacityExceededError(termCount, capacity int, pos Position) CompilerError {
	return NewExprError(Error, ErrorInlineCapacityExceeded,
		fmt.Sprintf("expression has %d terms, exceeding the inline capacity of %d", termCount, capacity), pos).
		WithSuggestion("simplify further before converting back to the inline flavor").
		WithSuggestion("or keep working in the heap-backed flavor").
		Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 1 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// levenshteinDistance computes the edit distance between a and b, used to
// power "did you mean" suggestions for near-miss tokens.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
