package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecUnboundVariable(t *testing.T) {
	e := FromVar('x')
	_, ok := e.Exec(nil)
	assert.False(t, ok)

	v, ok := e.Exec(Env{'x': 9})
	assert.True(t, ok)
	assert.Equal(t, int64(9), v)
}

func TestExecSingleVarBindsEveryVariable(t *testing.T) {
	e := FromVar('i').Add(FromVar('j'))
	assert.Equal(t, int64(10), e.ExecSingleVar(5))
}

func TestExecStackReusesScratch(t *testing.T) {
	e := FromVar('x').Mul(int64(2))
	scratch := make([]int64, 0, 4)
	v, ok := e.ExecStack(Env{'x': 21}, scratch)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
}

func TestToUsizeFailsWithFreeVariable(t *testing.T) {
	_, ok := FromVar('x').ToUsize()
	assert.False(t, ok)

	v, ok := FromInt(7).ToUsize()
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)
}

func TestToSymbolsPreservesOrderAndDuplicates(t *testing.T) {
	e := FromVar('x').Add(FromVar('y')).Mul(FromVar('x'))
	assert.Equal(t, []byte{'x', 'y', 'x'}, e.ToSymbols())
}

func TestIsUnknown(t *testing.T) {
	assert.True(t, Unknown().IsUnknown())
	assert.False(t, FromVar('x').IsUnknown())
}

func TestBigExpressionExecMatchesExpression(t *testing.T) {
	e := FromVar('x').Add(int64(1)).Mul(int64(3))
	big := e.Big()
	v1, ok1 := e.Exec(Env{'x': 4})
	v2, ok2 := big.Exec(Env{'x': 4})
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, v1, v2)
}
