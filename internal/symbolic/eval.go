package symbolic

// Env maps a single-character variable name to its bound value. Only
// non-negative values are meaningful for shape arithmetic, but Exec places
// no restriction on the sign.
type Env map[byte]int64

// Exec evaluates e against variables, returning (value, true) or
// (0, false) if some Var term in e has no binding ("unbound" in spec.md's
// terms, not an error).
func (e Expression) Exec(variables Env) (int64, bool) {
	var stack [InlineCapacity]int64
	return execTerms(e.Slice(), variables, stack[:0])
}

// ExecStack is Exec with a caller-supplied scratch stack, so repeated
// evaluation on a hot path allocates nothing.
func (e Expression) ExecStack(variables Env, stack []int64) (int64, bool) {
	return execTerms(e.Slice(), variables, stack[:0])
}

// Exec is BigExpression's counterpart to Expression.Exec.
func (e BigExpression) Exec(variables Env) (int64, bool) {
	return execTerms(e.terms, variables, make([]int64, 0, len(e.terms)))
}

// ExecStack is BigExpression's counterpart to Expression.ExecStack.
func (e BigExpression) ExecStack(variables Env, stack []int64) (int64, bool) {
	return execTerms(e.terms, variables, stack[:0])
}

func execTerms(terms []Term, variables Env, stack []int64) (int64, bool) {
	for _, t := range terms {
		switch t.Kind {
		case KindNum:
			stack = append(stack, t.Num)
		case KindVar:
			v, ok := variables[t.Var]
			if !ok {
				return 0, false
			}
			stack = append(stack, v)
		default:
			n := len(stack)
			left, right := stack[n-1], stack[n-2]
			stack = stack[:n-2]
			v, ok := t.Op.Apply(left, right)
			if !ok {
				return 0, false
			}
			stack = append(stack, v)
		}
	}
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// ExecSingleVar evaluates e with every Var term bound to the same value,
// regardless of name. Used when all free variables are known to be
// identical (e.g. a single loop induction variable), it takes its own
// direct code path rather than routing through Exec with a synthetic
// single-entry Env, avoiding a map lookup per Var term on what is a hot
// path for shape-dimension resolution.
func (e Expression) ExecSingleVar(value int64) int64 {
	var stack [InlineCapacity]int64
	return execSingleVarTerms(e.Slice(), value, stack[:0])
}

// ExecSingleVarStack is ExecSingleVar with a caller-supplied scratch stack.
func (e Expression) ExecSingleVarStack(value int64, stack []int64) int64 {
	return execSingleVarTerms(e.Slice(), value, stack[:0])
}

// ExecSingleVar is BigExpression's counterpart to Expression.ExecSingleVar.
func (e BigExpression) ExecSingleVar(value int64) int64 {
	return execSingleVarTerms(e.terms, value, make([]int64, 0, len(e.terms)))
}

// ExecSingleVarStack is BigExpression's counterpart to
// Expression.ExecSingleVarStack.
func (e BigExpression) ExecSingleVarStack(value int64, stack []int64) int64 {
	return execSingleVarTerms(e.terms, value, stack[:0])
}

func execSingleVarTerms(terms []Term, value int64, stack []int64) int64 {
	for _, t := range terms {
		switch t.Kind {
		case KindNum:
			stack = append(stack, t.Num)
		case KindVar:
			stack = append(stack, value)
		default:
			n := len(stack)
			left, right := stack[n-1], stack[n-2]
			stack = stack[:n-2]
			v, _ := t.Op.Apply(left, right)
			stack = append(stack, v)
		}
	}
	return stack[len(stack)-1]
}

// ToUsize evaluates e against an empty environment, succeeding only if e
// carries no variables at all.
func (e Expression) ToUsize() (int64, bool) { return e.Exec(nil) }

// ToUsize is BigExpression's counterpart to Expression.ToUsize.
func (e BigExpression) ToUsize() (int64, bool) { return e.Exec(nil) }

// ToSymbols returns the variable characters appearing in e, in stream
// order, with duplicates preserved.
func (e Expression) ToSymbols() []byte { return toSymbols(e.Slice()) }

// ToSymbols is BigExpression's counterpart to Expression.ToSymbols.
func (e BigExpression) ToSymbols() []byte { return toSymbols(e.terms) }

func toSymbols(terms []Term) []byte {
	var out []byte
	for _, t := range terms {
		if t.IsVar() {
			out = append(out, t.Var)
		}
	}
	return out
}

// IsUnknown reports whether the reserved UnknownVar placeholder appears
// anywhere in e.
func (e Expression) IsUnknown() bool { return isUnknown(e.Slice()) }

// IsUnknown is BigExpression's counterpart to Expression.IsUnknown.
func (e BigExpression) IsUnknown() bool { return isUnknown(e.terms) }

func isUnknown(terms []Term) bool {
	for _, t := range terms {
		if t.IsVar() && t.Var == UnknownVar {
			return true
		}
	}
	return false
}
