package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteSplicesAndSimplifies(t *testing.T) {
	e := FromVar('x').Add(int64(1))
	sub := e.Substitute('x', FromInt(5))
	v, ok := sub.ToUsize()
	assert.True(t, ok)
	assert.Equal(t, int64(6), v)
}

func TestSubstituteLeavesOtherVariablesFree(t *testing.T) {
	e := FromVar('x').Add(FromVar('y'))
	sub := e.Substitute('x', FromInt(10))
	assert.Equal(t, []byte{'y'}, sub.ToSymbols())
}

func TestSubstituteBigProducesBigExpression(t *testing.T) {
	e := FromVar('x')
	sub := e.SubstituteBig('x', FromIntBig(3))
	v, ok := sub.ToUsize()
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)
}

func TestSubstituteReplacesAllOccurrences(t *testing.T) {
	e := FromVar('x').Mul(FromVar('x'))
	sub := e.Substitute('x', FromInt(4))
	v, ok := sub.ToUsize()
	assert.True(t, ok)
	assert.Equal(t, int64(16), v)
}
