package symbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermConstructors(t *testing.T) {
	n := NumTerm(42)
	assert.True(t, n.IsNum())
	assert.False(t, n.IsVar())
	assert.Equal(t, int64(42), n.Num)

	v := VarTerm('x')
	assert.True(t, v.IsVar())
	assert.Equal(t, byte('x'), v.Var)

	op := OpTerm(OpAdd)
	assert.True(t, op.IsOp())
	assert.Equal(t, OpAdd, op.Op)
}

func TestZeroValueTermIsNumZero(t *testing.T) {
	var z Term
	assert.True(t, z.IsNum())
	assert.Equal(t, int64(0), z.Num)
}

func TestOpGlyph(t *testing.T) {
	cases := map[Op]string{
		OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
		OpMin: "min", OpMax: "max", OpAnd: "&&", OpOr: "||",
		OpGte: ">=", OpLt: "<",
	}
	for op, want := range cases {
		assert.Equal(t, want, op.Glyph())
	}
}

func TestOpApplyArithmetic(t *testing.T) {
	v, ok := OpAdd.Apply(2, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)

	v, ok = OpSub.Apply(10, 4)
	assert.True(t, ok)
	assert.Equal(t, int64(6), v)

	v, ok = OpMul.Apply(6, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	v, ok = OpDiv.Apply(10, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)

	v, ok = OpMod.Apply(10, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestOpApplyDivModByZero(t *testing.T) {
	_, ok := OpDiv.Apply(1, 0)
	assert.False(t, ok)
	_, ok = OpMod.Apply(1, 0)
	assert.False(t, ok)
}

func TestOpApplyOverflow(t *testing.T) {
	_, ok := OpAdd.Apply(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = OpSub.Apply(math.MinInt64, 1)
	assert.False(t, ok)
	_, ok = OpMul.Apply(math.MaxInt64, 2)
	assert.False(t, ok)
}

func TestOpApplyMulByZeroNeverOverflows(t *testing.T) {
	v, ok := OpMul.Apply(math.MaxInt64, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)
}

func TestOpApplyMinMaxAndLogic(t *testing.T) {
	v, _ := OpMin.Apply(3, 7)
	assert.Equal(t, int64(3), v)
	v, _ = OpMax.Apply(3, 7)
	assert.Equal(t, int64(7), v)
	v, _ = OpAnd.Apply(1, 0)
	assert.Equal(t, int64(0), v)
	v, _ = OpOr.Apply(1, 0)
	assert.Equal(t, int64(1), v)
	v, _ = OpGte.Apply(5, 5)
	assert.Equal(t, int64(1), v)
	v, _ = OpLt.Apply(5, 5)
	assert.Equal(t, int64(0), v)
}
