package exprlang

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var exprParser = participle.MustBuild[Expr](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseString parses one expression from source text into a grammar tree.
// Use Lower to turn the result into a symbolic.Expression.
func ParseString(source string) (*Expr, error) {
	expr, err := exprParser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("exprlang: %w", err)
	}
	return expr, nil
}
