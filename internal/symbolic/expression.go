package symbolic

import "fmt"

// InlineCapacity is the fixed term capacity of Expression, the inline
// storage flavor. A shape descriptor embeds dozens of these with no heap
// traffic; callers building expressions that may grow past this should
// build in BigExpression and convert back with Small/TrySmall once
// simplified.
const InlineCapacity = 20

// Expression is a postfix symbolic expression backed by a fixed-capacity,
// stack-inlined buffer. It is a plain value: freely copyable, with no
// hidden allocation, the Go analog of
// GenericExpression<ArrayVec<[Term; 20]>>.
type Expression struct {
	terms [InlineCapacity]Term
	n     int
}

// BigExpression is a postfix symbolic expression backed by an unbounded
// heap buffer, the Go analog of GenericExpression<Vec<Term>>. It is used
// transiently while building intermediates that may exceed the inline
// capacity.
type BigExpression struct {
	terms []Term
}

// Zero returns the default expression, a single Num(0) term.
func Zero() Expression {
	var e Expression
	e.terms[0] = NumTerm(0)
	e.n = 1
	return e
}

// ZeroBig is Zero's heap-backed counterpart.
func ZeroBig() BigExpression {
	return BigExpression{terms: []Term{NumTerm(0)}}
}

// FromInt builds a single-term expression from an integer literal.
func FromInt(n int64) Expression { return fromTerm(NumTerm(n)) }

// FromIntBig is FromInt's heap-backed counterpart.
func FromIntBig(n int64) BigExpression { return fromTermBig(NumTerm(n)) }

// FromBool builds a single-term expression from a boolean, treated as 0/1.
func FromBool(b bool) Expression {
	if b {
		return FromInt(1)
	}
	return FromInt(0)
}

// FromVar builds a single-term expression naming variable c. Passing
// UnknownVar produces the reserved "unresolved dimension" placeholder.
func FromVar(c byte) Expression { return fromTerm(VarTerm(c)) }

// FromVarBig is FromVar's heap-backed counterpart.
func FromVarBig(c byte) BigExpression { return fromTermBig(VarTerm(c)) }

// Unknown builds the reserved "unknown/unresolved" placeholder expression.
func Unknown() Expression { return FromVar(UnknownVar) }

func fromTerm(t Term) Expression {
	var e Expression
	e.terms[0] = t
	e.n = 1
	return e
}

func fromTermBig(t Term) BigExpression {
	return BigExpression{terms: []Term{t}}
}

// --- Storage implementation: Expression ---

func (e *Expression) Len() int      { return e.n }
func (e *Expression) At(i int) Term { return e.terms[i] }
func (e *Expression) Set(i int, t Term) {
	e.terms[i] = t
}

func (e *Expression) Push(t Term) bool {
	if e.n >= InlineCapacity {
		return false
	}
	e.terms[e.n] = t
	e.n++
	return true
}

func (e *Expression) Pop() (Term, bool) {
	if e.n == 0 {
		return Term{}, false
	}
	e.n--
	return e.terms[e.n], true
}

func (e *Expression) RemoveAt(i int) {
	copy(e.terms[i:e.n-1], e.terms[i+1:e.n])
	e.n--
}

func (e *Expression) Extend(ts []Term) bool {
	if e.n+len(ts) > InlineCapacity {
		return false
	}
	copy(e.terms[e.n:], ts)
	e.n += len(ts)
	return true
}

func (e *Expression) Slice() []Term {
	return e.terms[:e.n]
}

// setTerms overwrites the expression's contents from ts, panicking if ts
// does not fit the inline capacity. Used internally after a simplify or
// substitute pass that worked against a detached []Term slice.
func (e *Expression) setTerms(ts []Term) {
	if len(ts) > InlineCapacity {
		panic(fmt.Sprintf("symbolic: expression of %d terms exceeds inline capacity %d", len(ts), InlineCapacity))
	}
	e.n = copy(e.terms[:], ts)
}

// --- Storage implementation: BigExpression ---

func (e *BigExpression) Len() int      { return len(e.terms) }
func (e *BigExpression) At(i int) Term { return e.terms[i] }
func (e *BigExpression) Set(i int, t Term) {
	e.terms[i] = t
}

func (e *BigExpression) Push(t Term) bool {
	e.terms = append(e.terms, t)
	return true
}

func (e *BigExpression) Pop() (Term, bool) {
	n := len(e.terms)
	if n == 0 {
		return Term{}, false
	}
	t := e.terms[n-1]
	e.terms = e.terms[:n-1]
	return t, true
}

func (e *BigExpression) RemoveAt(i int) {
	e.terms = append(e.terms[:i], e.terms[i+1:]...)
}

func (e *BigExpression) Extend(ts []Term) bool {
	e.terms = append(e.terms, ts...)
	return true
}

func (e *BigExpression) Slice() []Term {
	return e.terms
}

func (e *BigExpression) setTerms(ts []Term) {
	cp := make([]Term, len(ts))
	copy(cp, ts)
	e.terms = cp
}

// IsEmpty reports whether the expression carries no terms at all. This is
// distinct from being the Zero() expression, which carries one Num(0)
// term; a well-formed expression built through the public API is never
// empty.
func (e Expression) IsEmpty() bool    { return e.n == 0 }
func (e BigExpression) IsEmpty() bool { return len(e.terms) == 0 }

// Clone returns an independent copy. Expression is already a plain value
// (copying it copies the array), so Clone is only interesting for
// BigExpression, whose slice header would otherwise alias the same
// backing array as the original.
func (e Expression) Clone() Expression { return e }

func (e BigExpression) Clone() BigExpression {
	var out BigExpression
	out.setTerms(e.terms)
	return out
}
