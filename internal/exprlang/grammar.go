package exprlang

import "github.com/alecthomas/participle/v2/lexer"

// Expr is the grammar's entry point: a single expression, precedence
// climbing from Or (loosest) down to Primary (tightest), the same
// cascade-of-BinaryExpr shape the teacher grammar uses for its flat
// Expr/BinaryExpr/UnaryExpr chain, just split one level per precedence
// tier instead of left as a single flat operator list.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Or     *OrExpr `@@`
}

type OrExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *AndExpr `@@`
	Ops    []*OrOp  `{ @@ }`
}

type OrOp struct {
	Operator string   `@"||"`
	Right    *AndExpr `@@`
}

type AndExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *CmpExpr `@@`
	Ops    []*AndOp `{ @@ }`
}

type AndOp struct {
	Operator string   `@"&&"`
	Right    *CmpExpr `@@`
}

type CmpExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *AddExpr `@@`
	Ops    []*CmpOp `{ @@ }`
}

type CmpOp struct {
	Operator string   `@(">=" | "<")`
	Right    *AddExpr `@@`
}

type AddExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *MulExpr `@@`
	Ops    []*AddOp `{ @@ }`
}

type AddOp struct {
	Operator string   `@("+" | "-")`
	Right    *MulExpr `@@`
}

type MulExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Primary `@@`
	Ops    []*MulOp `{ @@ }`
}

type MulOp struct {
	Operator string   `@("*" | "/" | "%")`
	Right    *Primary `@@`
}

// Primary is a leaf of the expression grammar: an integer literal, a
// min/max function call, a single-character variable, or a parenthesized
// sub-expression. Field order is alternation order: participle tries
// MinCall, then MaxCall, then falls through to a bare Integer/Ident/Paren,
// backtracking whenever an earlier alternative's grammar fails outright
// (e.g. "min" not followed by "(" falls through to the Var alternative).
type Primary struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	MinCall *MinMaxCall `  "min" @@`
	MaxCall *MinMaxCall `| "max" @@`
	Number  *string     `| @Integer`
	Var     *string     `| @Ident`
	Paren   *Expr       `| "(" @@ ")"`
}

// MinMaxCall is the "(a, b)" tail shared by min(...) and max(...); which
// keyword introduced it is recorded by whichever Primary field is set.
type MinMaxCall struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Expr `"(" @@`
	Right  *Expr `"," @@ ")"`
}
