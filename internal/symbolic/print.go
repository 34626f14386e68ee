package symbolic

import (
	"strconv"
	"strings"
)

// String renders e in infix form via the stack machine of spec.md §4.6:
// Num/Var push their textual form, Min/Max pop two strings and emit
// "min(s1, s2)"/"max(s1, s2)", every other operator pops two strings and
// emits "(s1 OP s2)".
func (e Expression) String() string { return renderTerms(e.Slice()) }

// String is BigExpression's counterpart to Expression.String.
func (e BigExpression) String() string { return renderTerms(e.terms) }

// GoString gives Expression a debug form identical to String; the postfix
// stream has no structure beyond the rendering spec.md already defines.
func (e Expression) GoString() string { return e.String() }

// GoString is BigExpression's counterpart to Expression.GoString.
func (e BigExpression) GoString() string { return e.String() }

func renderTerms(terms []Term) string {
	if len(terms) == 0 {
		return ""
	}
	stack := make([]string, 0, len(terms))
	for _, t := range terms {
		switch t.Kind {
		case KindNum:
			stack = append(stack, strconv.FormatInt(t.Num, 10))
		case KindVar:
			stack = append(stack, string(t.Var))
		default:
			n := len(stack)
			// The postfix stream places the right-hand operand before
			// the left-hand operand (spec.md §4.2), so the two most
			// recently pushed strings pop as (left, right).
			left, right := stack[n-1], stack[n-2]
			stack = stack[:n-2]
			var rendered string
			switch t.Op {
			case OpMin:
				rendered = "min(" + left + ", " + right + ")"
			case OpMax:
				rendered = "max(" + left + ", " + right + ")"
			default:
				rendered = "(" + left + t.Op.Glyph() + right + ")"
			}
			stack = append(stack, rendered)
		}
	}
	return stack[len(stack)-1]
}

// renderTermsIndented is a small debugging helper that returns the
// rendering of terms prefixed with indent. Nothing in the module calls it.
func renderTermsIndented(terms []Term, indent string) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(renderTerms(terms))
	return b.String()
}
