package symbolic

import "iter"

// Big converts an inline expression to its heap-backed counterpart,
// preserving term order exactly.
func (e Expression) Big() BigExpression {
	var out BigExpression
	out.setTerms(e.Slice())
	return out
}

// Small converts a heap-backed expression back to the inline flavor. It
// panics if the expression has grown past InlineCapacity; callers unsure
// whether that can happen should use TrySmall instead. This mirrors the
// "inline storage overflow is a programmer error" stance of spec.md §7 —
// a caller that built in BigExpression and failed to simplify small
// enough before converting back has a logic bug, not a recoverable input
// error.
func (e BigExpression) Small() Expression {
	var out Expression
	out.setTerms(e.terms)
	return out
}

// TrySmall converts a heap-backed expression back to the inline flavor,
// reporting ok=false instead of panicking if it doesn't fit.
func (e BigExpression) TrySmall() (out Expression, ok bool) {
	if len(e.terms) > InlineCapacity {
		return Expression{}, false
	}
	out.setTerms(e.terms)
	return out, true
}

// Equal reports whether two expressions carry identical term sequences.
// Per spec.md's invariant 4, this is sequence equality, not algebraic
// equivalence: a+b and b+a are not forced equal.
func (e Expression) Equal(other Expression) bool {
	return equalTerms(e.Slice(), other.Slice())
}

// EqualBig compares an inline expression against a heap-backed one.
func (e Expression) EqualBig(other BigExpression) bool {
	return equalTerms(e.Slice(), other.Slice())
}

// Equal reports whether two heap-backed expressions carry identical term
// sequences.
func (e BigExpression) Equal(other BigExpression) bool {
	return equalTerms(e.terms, other.terms)
}

// EqualSmall compares a heap-backed expression against an inline one.
func (e BigExpression) EqualSmall(other Expression) bool {
	return equalTerms(e.terms, other.Slice())
}

func equalTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Product multiplicatively folds a sequence of expressions. It returns
// FromInt(0) on an empty sequence rather than the mathematically correct
// identity FromInt(1) — this mirrors luminal's std::iter::Product impl
// verbatim (spec.md §6, §9b); it is surprising but preserved for
// compatibility with the behavior this engine was distilled from.
func Product(exprs iter.Seq[Expression]) Expression {
	var (
		p     Expression
		first = true
	)
	for e := range exprs {
		if first {
			p = e
			first = false
			continue
		}
		p = p.Mul(e)
	}
	if first {
		return FromInt(0)
	}
	return p
}

// ProductBig is Product's heap-backed counterpart.
func ProductBig(exprs iter.Seq[BigExpression]) BigExpression {
	var (
		p     BigExpression
		first = true
	)
	for e := range exprs {
		if first {
			p = e
			first = false
			continue
		}
		p = p.Mul(e)
	}
	if first {
		return FromIntBig(0)
	}
	return p
}
