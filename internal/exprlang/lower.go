package exprlang

import (
	"fmt"
	"strconv"

	"symexpr/internal/errors"
	"symexpr/internal/symbolic"
)

// Lower walks a parsed grammar tree and builds the equivalent
// symbolic.Expression, applying the same combinators (and therefore the
// same short-circuit identities and peephole simplification) a caller
// building the expression programmatically would get.
func Lower(e *Expr) (symbolic.Expression, error) {
	return lowerOr(e.Or)
}

func lowerOr(e *OrExpr) (symbolic.Expression, error) {
	left, err := lowerAnd(e.Left)
	if err != nil {
		return symbolic.Expression{}, err
	}
	for _, op := range e.Ops {
		right, err := lowerAnd(op.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		left = left.Or(right)
	}
	return left, nil
}

func lowerAnd(e *AndExpr) (symbolic.Expression, error) {
	left, err := lowerCmp(e.Left)
	if err != nil {
		return symbolic.Expression{}, err
	}
	for _, op := range e.Ops {
		right, err := lowerCmp(op.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		left = left.And(right)
	}
	return left, nil
}

func lowerCmp(e *CmpExpr) (symbolic.Expression, error) {
	left, err := lowerAdd(e.Left)
	if err != nil {
		return symbolic.Expression{}, err
	}
	for _, op := range e.Ops {
		right, err := lowerAdd(op.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		switch op.Operator {
		case ">=":
			left = left.Gte(right)
		case "<":
			left = left.Lt(right)
		default:
			return symbolic.Expression{}, fmt.Errorf("exprlang: unknown comparison operator %q", op.Operator)
		}
	}
	return left, nil
}

func lowerAdd(e *AddExpr) (symbolic.Expression, error) {
	left, err := lowerMul(e.Left)
	if err != nil {
		return symbolic.Expression{}, err
	}
	for _, op := range e.Ops {
		right, err := lowerMul(op.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		switch op.Operator {
		case "+":
			left = left.Add(right)
		case "-":
			left = left.Sub(right)
		default:
			return symbolic.Expression{}, fmt.Errorf("exprlang: unknown additive operator %q", op.Operator)
		}
	}
	return left, nil
}

func lowerMul(e *MulExpr) (symbolic.Expression, error) {
	left, err := lowerPrimary(e.Left)
	if err != nil {
		return symbolic.Expression{}, err
	}
	for _, op := range e.Ops {
		right, err := lowerPrimary(op.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		switch op.Operator {
		case "*":
			left = left.Mul(right)
		case "/":
			left = left.Div(right)
		case "%":
			left = left.Rem(right)
		default:
			return symbolic.Expression{}, fmt.Errorf("exprlang: unknown multiplicative operator %q", op.Operator)
		}
	}
	return left, nil
}

func lowerPrimary(p *Primary) (symbolic.Expression, error) {
	switch {
	case p.MinCall != nil:
		left, err := Lower(p.MinCall.Left)
		if err != nil {
			return symbolic.Expression{}, err
		}
		right, err := Lower(p.MinCall.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		return left.Min(right), nil

	case p.MaxCall != nil:
		left, err := Lower(p.MaxCall.Left)
		if err != nil {
			return symbolic.Expression{}, err
		}
		right, err := Lower(p.MaxCall.Right)
		if err != nil {
			return symbolic.Expression{}, err
		}
		return left.Max(right), nil

	case p.Number != nil:
		n, err := strconv.ParseInt(*p.Number, 10, 64)
		if err != nil {
			return symbolic.Expression{}, fmt.Errorf("exprlang: invalid integer literal %q: %w", *p.Number, err)
		}
		return symbolic.FromInt(n), nil

	case p.Var != nil:
		if len(*p.Var) != 1 {
			pos := errors.Position{Line: p.Pos.Line, Column: p.Pos.Column}
			return symbolic.Expression{}, errors.InvalidVariableNameError(*p.Var, pos)
		}
		return symbolic.FromVar((*p.Var)[0]), nil

	case p.Paren != nil:
		return Lower(p.Paren)

	default:
		return symbolic.Expression{}, fmt.Errorf("exprlang: empty primary expression")
	}
}

// ParseAndLower is the common entry point: parse source text and lower it
// directly to a simplified symbolic.Expression.
func ParseAndLower(source string) (symbolic.Expression, error) {
	tree, err := ParseString(source)
	if err != nil {
		return symbolic.Expression{}, err
	}
	return Lower(tree)
}
