package symbolic

// This file implements the fixed-point peephole simplifier of spec.md
// §4.3: repeatedly scan the postfix term stream for (operand, operand,
// operator) triples and rewrite the first one that matches a rule, until
// a full pass finds nothing left to rewrite.
//
// Grounded on original_source/src/shape/symbolic.rs's reduce_triples.

// triple identifies one operator's two operand positions. aIdx/bIdx are
// -1 when that operand is itself the result of a not-yet-folded
// sub-expression (a "previously computed" slot in spec.md's wording)
// rather than a leaf Num/Var sitting directly before the operator.
type triple struct {
	aIdx, opIdx, bIdx int
}

// getTriples walks the term sequence once, recording every operator's
// operand positions. It mirrors the Rust source's stack walk; unlike the
// Rust version it does not additionally track which variable "survives"
// at a non-leaf slot, because the rewrite rules below never consult that
// information — they only ever inspect an operand that is a leaf, so the
// extra bookkeeping has no observable effect on the result.
func getTriples(terms []Term) []triple {
	stack := make([]int, 0, len(terms))
	var triples []triple
	for i, t := range terms {
		if t.IsOp() {
			n := len(stack)
			a := stack[n-1]
			b := stack[n-2]
			stack = stack[:n-2]
			triples = append(triples, triple{aIdx: a, opIdx: i, bIdx: b})
			stack = append(stack, -1)
		} else {
			stack = append(stack, i)
		}
	}
	return triples
}

// applyTriple inspects one triple against the live term slice and applies
// the first matching rule, per spec.md §4.3 step 2. It returns the
// rewritten slice and true if a rule fired.
func applyTriple(ts []Term, tr triple) ([]Term, bool) {
	op := ts[tr.opIdx].Op

	aLeaf, bLeaf := tr.aIdx >= 0, tr.bIdx >= 0
	var a, b Term
	if aLeaf {
		a = ts[tr.aIdx]
	}
	if bLeaf {
		b = ts[tr.bIdx]
	}

	// Constant fold: both operands are leaf numeric literals.
	if aLeaf && bLeaf && a.IsNum() && b.IsNum() {
		if c, ok := op.Apply(a.Num, b.Num); ok {
			ts[tr.aIdx] = NumTerm(c)
			return removeTwo(ts, tr.opIdx, tr.bIdx), true
		}
		return ts, false
	}

	// Infinity absorption in Min: min(inf, x) -> x, min(x, inf) -> x.
	if op == OpMin {
		if aLeaf && a.IsNum() && a.Num == Infinity {
			return removeTwo(ts, tr.opIdx, tr.aIdx), true
		}
		if bLeaf && b.IsNum() && b.Num == Infinity {
			return removeTwo(ts, tr.opIdx, tr.bIdx), true
		}
	}

	// Infinity absorption in Max: max(inf, x) -> inf, max(x, inf) -> inf.
	// x may be a compound sub-expression, so its whole span is removed.
	if op == OpMax {
		if bLeaf && b.IsNum() && b.Num == Infinity {
			// a's span runs from just after b up to the operator.
			return append(ts[:tr.bIdx+1], ts[tr.opIdx+1:]...), true
		}
		if aLeaf && a.IsNum() && a.Num == Infinity {
			// Walk back from a to the first term of b's span.
			start, depth := tr.aIdx, 1
			for depth > 0 {
				start--
				if ts[start].IsOp() {
					depth++
				} else {
					depth--
				}
			}
			ts[start] = a
			return append(ts[:start+1], ts[tr.opIdx+1:]...), true
		}
	}

	return ts, false
}

// removeTwo deletes the terms at indices i and j (order-independent) from
// ts in place, returning the shortened slice.
func removeTwo(ts []Term, i, j int) []Term {
	if i < j {
		i, j = j, i
	}
	ts = removeAt(ts, i)
	ts = removeAt(ts, j)
	return ts
}

func removeAt(ts []Term, i int) []Term {
	return append(ts[:i], ts[i+1:]...)
}

// simplifyTerms runs the fixed-point rewriter over a detached copy of
// terms and returns the simplified sequence. The fixed point terminates
// because every rule strictly reduces the term count.
func simplifyTerms(terms []Term) []Term {
	ts := append([]Term(nil), terms...)
	for {
		triples := getTriples(ts)
		changed := false
		for _, tr := range triples {
			if rewritten, ok := applyTriple(ts, tr); ok {
				ts = rewritten
				changed = true
				break
			}
		}
		if !changed {
			return ts
		}
	}
}

// Simplify rewrites e to its simplified normal form under the rules of
// spec.md §4.3. It is idempotent: e.Simplify().Simplify() == e.Simplify().
func (e Expression) Simplify() Expression {
	var out Expression
	out.setTerms(simplifyTerms(e.Slice()))
	return out
}

// Simplify is BigExpression's counterpart to Expression.Simplify.
func (e BigExpression) Simplify() BigExpression {
	var out BigExpression
	out.setTerms(simplifyTerms(e.terms))
	return out
}
