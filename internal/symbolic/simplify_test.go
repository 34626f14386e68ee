package symbolic

import "testing"

func TestSimplifyConstantFold(t *testing.T) {
	e := FromInt(2).Add(int64(3))
	v, ok := e.ToUsize()
	if !ok || v != 5 {
		t.Fatalf("got (%d, %v), want (5, true)", v, ok)
	}
}

func TestSimplifyShapeBoundExpression(t *testing.T) {
	// ((x+255)/256)*256, evaluated at x=767, should settle to 768 once x
	// is bound — a classic padded-shape rounding expression.
	x := FromVar('x')
	e := x.Add(int64(255)).Div(int64(256)).Mul(int64(256))
	v, ok := e.Exec(Env{'x': 767})
	if !ok || v != 768 {
		t.Fatalf("got (%d, %v), want (768, true)", v, ok)
	}
}

func TestSimplifyCollapsesToVariable(t *testing.T) {
	a := FromVar('a')
	e := a.Mul(int64(1)).Add(int64(0)).Div(int64(1)).Add(FromInt(1).Sub(int64(1)))
	if !e.Equal(a) {
		t.Fatalf("expected simplification to %q, got %q", a, e)
	}
}

func TestSimplifyMinInfinityAbsorption(t *testing.T) {
	x := FromVar('x')
	e := x.Min(int64(Infinity))
	if !e.Equal(x) {
		t.Fatalf("min(x, inf) should simplify to x, got %q", e)
	}
}

func TestSimplifyMaxInfinityAbsorption(t *testing.T) {
	x := FromVar('x')
	e := x.Max(int64(Infinity))
	want := FromInt(Infinity)
	if !e.Equal(want) {
		t.Fatalf("max(x, inf) should simplify to inf, got %q", e)
	}
}

func TestSimplifyIsIdempotent(t *testing.T) {
	e := FromVar('x').Add(int64(1)).Mul(int64(2))
	once := e.Simplify()
	twice := once.Simplify()
	if !once.Equal(twice) {
		t.Fatalf("Simplify should be idempotent: %q != %q", once, twice)
	}
}
