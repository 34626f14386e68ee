package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Add(int64(0)).Equal(x))
	assert.True(t, FromInt(0).Add(x).Equal(x))
	assert.True(t, x.Add(x).Equal(x.Mul(int64(2))))
}

func TestSubIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Sub(int64(0)).Equal(x))
	assert.True(t, x.Sub(x).Equal(FromInt(0)))
}

func TestMulIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Mul(int64(1)).Equal(x))
	assert.True(t, FromInt(1).Mul(x).Equal(x))
	assert.True(t, x.Mul(int64(0)).Equal(FromInt(0)))
	assert.True(t, FromInt(0).Mul(x).Equal(FromInt(0)))
}

func TestDivIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Div(int64(1)).Equal(x))
	assert.True(t, x.Div(x).Equal(FromInt(1)))
	assert.True(t, FromInt(0).Div(x).Equal(FromInt(0)))
}

func TestRemIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Rem(int64(1)).Equal(FromInt(0)))
	assert.True(t, x.Rem(x).Equal(FromInt(0)))
}

func TestAndIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.And(int64(0)).Equal(FromInt(0)))
	assert.True(t, FromInt(0).And(x).Equal(FromInt(0)))
	assert.True(t, x.And(int64(1)).Equal(x))
	assert.True(t, FromInt(1).And(x).Equal(x))
}

func TestOrIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Or(int64(1)).Equal(FromInt(1)))
	assert.True(t, FromInt(1).Or(x).Equal(FromInt(1)))
}

func TestMinMaxIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Min(x).Equal(x))
	assert.True(t, x.Max(x).Equal(x))
	assert.True(t, x.Max(int64(0)).Equal(x))
	assert.True(t, FromInt(0).Max(x).Equal(x))
}

func TestGteLtIdentities(t *testing.T) {
	x := FromVar('x')
	assert.True(t, x.Gte(x).Equal(FromInt(1)))
	assert.True(t, x.Lt(x).Equal(FromInt(0)))
}

func TestLtModBoundIdentity(t *testing.T) {
	// (a mod 8) < 8 is always true, regardless of a's value.
	a := FromVar('a')
	e := a.Rem(int64(8)).Lt(int64(8))
	assert.True(t, e.Equal(FromInt(1)))
}

func TestLtModBoundIdentityRequiresMatchingLiteral(t *testing.T) {
	a := FromVar('a')
	e := a.Rem(int64(8)).Lt(int64(9))
	assert.False(t, e.Equal(FromInt(1)))
}

func TestCompoundAssign(t *testing.T) {
	e := FromVar('x')
	e.AddAssign(int64(5))
	v, ok := e.Exec(Env{'x': 1})
	assert.True(t, ok)
	assert.Equal(t, int64(6), v)

	e.MulAssign(int64(2))
	v, ok = e.Exec(Env{'x': 1})
	assert.True(t, ok)
	assert.Equal(t, int64(12), v)
}

func TestVarConversion(t *testing.T) {
	e := ToExpression(Var('q'))
	assert.Equal(t, []byte{'q'}, e.ToSymbols())
}

func TestToExpressionPanicsOnUnsupportedType(t *testing.T) {
	assert.Panics(t, func() { ToExpression("not a number") })
}

func TestBigExpressionBuildersMirrorExpression(t *testing.T) {
	x := FromVarBig('x')
	assert.True(t, x.Add(int64(0)).Equal(x))
	assert.True(t, x.Mul(int64(0)).Equal(FromIntBig(0)))
	assert.True(t, x.Gte(x).Equal(FromIntBig(1)))
}
