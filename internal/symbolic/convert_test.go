package symbolic

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigSmallRoundTrip(t *testing.T) {
	e := FromVar('x').Add(int64(1))
	big := e.Big()
	small, ok := big.TrySmall()
	assert.True(t, ok)
	assert.True(t, e.Equal(small))
}

func TestSmallPanicsPastInlineCapacity(t *testing.T) {
	var big BigExpression
	ts := make([]Term, InlineCapacity+1)
	for i := range ts {
		ts[i] = NumTerm(int64(i))
	}
	big.setTerms(ts)
	_, ok := big.TrySmall()
	assert.False(t, ok)
	assert.Panics(t, func() { big.Small() })
}

func TestEqualIsSequenceEqualityNotAlgebraic(t *testing.T) {
	a := FromVar('a').Add(FromVar('b'))
	b := FromVar('b').Add(FromVar('a'))
	assert.False(t, a.Equal(b), "a+b and b+a should not compare equal")
}

func seqOf(exprs ...Expression) iter.Seq[Expression] {
	return func(yield func(Expression) bool) {
		for _, e := range exprs {
			if !yield(e) {
				return
			}
		}
	}
}

func TestProductEmptyReturnsZero(t *testing.T) {
	p := Product(seqOf())
	v, ok := p.ToUsize()
	assert.True(t, ok)
	assert.Equal(t, int64(0), v, "Product of an empty sequence is 0, not the identity 1")
}

func TestProductOfSeveral(t *testing.T) {
	p := Product(seqOf(FromInt(2), FromInt(3), FromInt(4)))
	v, ok := p.ToUsize()
	assert.True(t, ok)
	assert.Equal(t, int64(24), v)
}
