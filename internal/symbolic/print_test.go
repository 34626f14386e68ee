package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringInfixRendering(t *testing.T) {
	e := FromVar('x').Add(int64(1))
	assert.Equal(t, "(x+1)", e.String())
}

func TestStringMinMaxRenderAsFunctionCalls(t *testing.T) {
	x, y := FromVar('x'), FromVar('y')
	assert.Equal(t, "min(x, y)", x.Min(y).String())
	assert.Equal(t, "max(x, y)", x.Max(y).String())
}

func TestStringLiteralAndVariable(t *testing.T) {
	assert.Equal(t, "7", FromInt(7).String())
	assert.Equal(t, "x", FromVar('x').String())
}

func TestGoStringMatchesString(t *testing.T) {
	e := FromVar('a').Sub(FromVar('b'))
	assert.Equal(t, e.String(), e.GoString())
}

func TestBigExpressionStringMatchesExpression(t *testing.T) {
	e := FromVar('x').Mul(int64(2))
	assert.Equal(t, e.String(), e.Big().String())
}
