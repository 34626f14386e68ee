package exprlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evalString(t *testing.T, src string, env map[byte]int64) int64 {
	t.Helper()
	e, err := ParseAndLower(src)
	if err != nil {
		t.Fatalf("ParseAndLower(%q) failed: %v", src, err)
	}
	v, ok := e.Exec(env)
	if !ok {
		t.Fatalf("Exec(%q) against %v did not resolve", src, env)
	}
	return v
}

func TestParseAndLowerArithmetic(t *testing.T) {
	assert.Equal(t, int64(7), evalString(t, "3 + 4", nil))
	assert.Equal(t, int64(5), evalString(t, "2 * 3 - 1", nil))
	assert.Equal(t, int64(20), evalString(t, "(2 + 3) * 4", nil))
}

func TestParseAndLowerPrecedence(t *testing.T) {
	// Mul binds tighter than Add: 2 + 3*4 = 14, not 20.
	assert.Equal(t, int64(14), evalString(t, "2 + 3 * 4", nil))
}

func TestParseAndLowerVariables(t *testing.T) {
	assert.Equal(t, int64(10), evalString(t, "x + 1", map[byte]int64{'x': 9}))
}

func TestParseAndLowerMinMax(t *testing.T) {
	assert.Equal(t, int64(3), evalString(t, "min(3, 7)", nil))
	assert.Equal(t, int64(7), evalString(t, "max(3, 7)", nil))
	assert.Equal(t, int64(4), evalString(t, "min(x, 4)", map[byte]int64{'x': 9}))
}

func TestParseAndLowerComparisonAndLogic(t *testing.T) {
	assert.Equal(t, int64(1), evalString(t, "3 >= 3", nil))
	assert.Equal(t, int64(0), evalString(t, "3 < 3", nil))
	assert.Equal(t, int64(1), evalString(t, "1 && 1", nil))
	assert.Equal(t, int64(0), evalString(t, "0 || 0", nil))
}

func TestParseAndLowerShapeBoundExpression(t *testing.T) {
	v := evalString(t, "((x + 255) / 256) * 256", map[byte]int64{'x': 767})
	assert.Equal(t, int64(768), v)
}

func TestLowerRejectsMultiCharacterVariable(t *testing.T) {
	_, err := ParseAndLower("foo + 1")
	assert.Error(t, err)
}

func TestParseStringRejectsMalformedInput(t *testing.T) {
	_, err := ParseAndLower("3 + + 4")
	assert.Error(t, err)
}
