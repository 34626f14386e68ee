package symbolic

import "fmt"

// Var names a variable on the right-hand side of a combinator, as
// distinct from a numeric literal of the same underlying byte width; Go
// has no separate "character" type the way Rust's char is distinct from
// its integer types, so the expression-construction API uses this named
// type to disambiguate "variable named 'x'" from "the number 120".
type Var byte

// ToExpression converts a scalar, Var, or expression to an inline
// Expression, following spec.md §6's constructor surface (signed/unsigned
// integer, bool treated as 0/1, variable character, or the other storage
// flavor). Passing a value of any other type is a programmer error and
// panics, per spec.md §7's "malformed expression ... treated as a
// programmer error" stance.
func ToExpression(v any) Expression {
	switch x := v.(type) {
	case Expression:
		return x
	case BigExpression:
		return x.Small()
	case Var:
		return FromVar(byte(x))
	case bool:
		return FromBool(x)
	case int:
		return FromInt(int64(x))
	case int8:
		return FromInt(int64(x))
	case int16:
		return FromInt(int64(x))
	case int32:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint:
		return FromInt(int64(x))
	case uint8:
		return FromInt(int64(x))
	case uint16:
		return FromInt(int64(x))
	case uint32:
		return FromInt(int64(x))
	case uint64:
		return FromInt(int64(x))
	default:
		panic(fmt.Sprintf("symbolic: cannot convert %T to Expression", v))
	}
}

// ToBigExpression is ToExpression's heap-backed counterpart.
func ToBigExpression(v any) BigExpression {
	switch x := v.(type) {
	case BigExpression:
		return x
	case Expression:
		return x.Big()
	default:
		return ToExpression(v).Big()
	}
}

func (e Expression) isNum(n int64) bool {
	return e.n == 1 && e.terms[0] == NumTerm(n)
}

func (e BigExpression) isNum(n int64) bool {
	return len(e.terms) == 1 && e.terms[0] == NumTerm(n)
}

// binaryBuild implements the shared construction protocol of spec.md
// §4.2: extend the right-hand operand's buffer with the left-hand
// operand's buffer, append the operator, then simplify. Short-circuit
// identities are applied by each combinator before this is reached.
func binaryBuild(rhsTerms, selfTerms []Term, op Op) []Term {
	out := make([]Term, 0, len(rhsTerms)+len(selfTerms)+1)
	out = append(out, rhsTerms...)
	out = append(out, selfTerms...)
	out = append(out, OpTerm(op))
	return simplifyTerms(out)
}

// --- Expression combinators ---

func (e Expression) Add(rhs any) Expression {
	r := ToExpression(rhs)
	switch {
	case r.isNum(0):
		return e
	case e.isNum(0):
		return r
	case e.Equal(r):
		return e.Mul(int64(2))
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpAdd))
	return out
}

func (e Expression) Sub(rhs any) Expression {
	r := ToExpression(rhs)
	switch {
	case r.isNum(0):
		return e
	case e.Equal(r):
		return FromInt(0)
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpSub))
	return out
}

func (e Expression) Mul(rhs any) Expression {
	r := ToExpression(rhs)
	switch {
	case r.isNum(1):
		return e
	case e.isNum(1):
		return r
	case r.isNum(0), e.isNum(0):
		return FromInt(0)
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpMul))
	return out
}

func (e Expression) Div(rhs any) Expression {
	r := ToExpression(rhs)
	switch {
	case r.isNum(1):
		return e
	case e.Equal(r):
		return FromInt(1)
	case e.isNum(0):
		return FromInt(0)
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpDiv))
	return out
}

func (e Expression) Rem(rhs any) Expression {
	r := ToExpression(rhs)
	if r.isNum(1) || r.Equal(e) {
		return FromInt(0)
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpMod))
	return out
}

func (e Expression) And(rhs any) Expression {
	r := ToExpression(rhs)
	switch {
	case r.isNum(0), e.isNum(0):
		return FromInt(0)
	case r.isNum(1):
		return e
	case e.isNum(1):
		return r
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpAnd))
	return out
}

func (e Expression) Or(rhs any) Expression {
	r := ToExpression(rhs)
	if r.isNum(1) || e.isNum(1) {
		return FromInt(1)
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpOr))
	return out
}

func (e Expression) Min(rhs any) Expression {
	r := ToExpression(rhs)
	if r.Equal(e) {
		return e
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpMin))
	return out
}

func (e Expression) Max(rhs any) Expression {
	r := ToExpression(rhs)
	switch {
	case r.Equal(e), r.isNum(0):
		return e
	case e.isNum(0):
		return r
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpMax))
	return out
}

func (e Expression) Gte(rhs any) Expression {
	r := ToExpression(rhs)
	if r.Equal(e) {
		return FromInt(1)
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpGte))
	return out
}

// Lt implements spec.md's compound identity (a mod n) < n -> 1, in
// addition to the plain x < x -> 0 identity, matching the Rust source's
// constructor-time special case rather than relying solely on generic
// peephole folding (see SPEC_FULL.md's supplemental-features section).
func (e Expression) Lt(rhs any) Expression {
	r := ToExpression(rhs)
	if r.Equal(e) {
		return FromInt(0)
	}
	if rs, es := r.Slice(), e.Slice(); len(rs) == 1 && rs[0].IsNum() {
		if len(es) > 0 && es[len(es)-1] == OpTerm(OpMod) {
			// The modulus must be a single literal term equal to rhs.
			trs := getTriples(es)
			if m := trs[len(trs)-1].bIdx; m >= 0 && es[m] == rs[0] {
				return FromInt(1)
			}
		}
	}
	var out Expression
	out.setTerms(binaryBuild(r.Slice(), e.Slice(), OpLt))
	return out
}

// --- Expression compound-assign counterparts ---

func (e *Expression) AddAssign(rhs any) { *e = e.Add(rhs) }
func (e *Expression) SubAssign(rhs any) { *e = e.Sub(rhs) }
func (e *Expression) MulAssign(rhs any) { *e = e.Mul(rhs) }
func (e *Expression) DivAssign(rhs any) { *e = e.Div(rhs) }
func (e *Expression) RemAssign(rhs any) { *e = e.Rem(rhs) }
func (e *Expression) AndAssign(rhs any) { *e = e.And(rhs) }
func (e *Expression) OrAssign(rhs any)  { *e = e.Or(rhs) }

// --- BigExpression combinators (same identities, heap-backed) ---

func (e BigExpression) Add(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	switch {
	case r.isNum(0):
		return e
	case e.isNum(0):
		return r
	case e.Equal(r):
		return e.Mul(int64(2))
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpAdd))
	return out
}

func (e BigExpression) Sub(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	switch {
	case r.isNum(0):
		return e
	case e.Equal(r):
		return FromIntBig(0)
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpSub))
	return out
}

func (e BigExpression) Mul(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	switch {
	case r.isNum(1):
		return e
	case e.isNum(1):
		return r
	case r.isNum(0), e.isNum(0):
		return FromIntBig(0)
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpMul))
	return out
}

func (e BigExpression) Div(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	switch {
	case r.isNum(1):
		return e
	case e.Equal(r):
		return FromIntBig(1)
	case e.isNum(0):
		return FromIntBig(0)
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpDiv))
	return out
}

func (e BigExpression) Rem(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	if r.isNum(1) || r.Equal(e) {
		return FromIntBig(0)
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpMod))
	return out
}

func (e BigExpression) And(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	switch {
	case r.isNum(0), e.isNum(0):
		return FromIntBig(0)
	case r.isNum(1):
		return e
	case e.isNum(1):
		return r
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpAnd))
	return out
}

func (e BigExpression) Or(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	if r.isNum(1) || e.isNum(1) {
		return FromIntBig(1)
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpOr))
	return out
}

func (e BigExpression) Min(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	if r.Equal(e) {
		return e
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpMin))
	return out
}

func (e BigExpression) Max(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	switch {
	case r.Equal(e), r.isNum(0):
		return e
	case e.isNum(0):
		return r
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpMax))
	return out
}

func (e BigExpression) Gte(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	if r.Equal(e) {
		return FromIntBig(1)
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpGte))
	return out
}

func (e BigExpression) Lt(rhs any) BigExpression {
	r := ToBigExpression(rhs)
	if r.Equal(e) {
		return FromIntBig(0)
	}
	if rs, es := r.terms, e.terms; len(rs) == 1 && rs[0].IsNum() {
		if len(es) > 0 && es[len(es)-1] == OpTerm(OpMod) {
			// The modulus must be a single literal term equal to rhs.
			trs := getTriples(es)
			if m := trs[len(trs)-1].bIdx; m >= 0 && es[m] == rs[0] {
				return FromIntBig(1)
			}
		}
	}
	var out BigExpression
	out.setTerms(binaryBuild(r.terms, e.terms, OpLt))
	return out
}

func (e *BigExpression) AddAssign(rhs any) { *e = e.Add(rhs) }
func (e *BigExpression) SubAssign(rhs any) { *e = e.Sub(rhs) }
func (e *BigExpression) MulAssign(rhs any) { *e = e.Mul(rhs) }
func (e *BigExpression) DivAssign(rhs any) { *e = e.Div(rhs) }
func (e *BigExpression) RemAssign(rhs any) { *e = e.Rem(rhs) }
func (e *BigExpression) AndAssign(rhs any) { *e = e.And(rhs) }
func (e *BigExpression) OrAssign(rhs any)  { *e = e.Or(rhs) }
