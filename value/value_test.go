package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, value.Nil.IsTruthy())
	assert.False(t, value.False.IsTruthy())
	assert.True(t, value.True.IsTruthy())
	assert.True(t, value.NewNumber(0).IsTruthy())
	assert.True(t, value.NewString("").IsTruthy())
	assert.True(t, value.NewArray(nil).IsTruthy())
}

func TestNumberEqualityNormalizesNegativeZero(t *testing.T) {
	assert.True(t, value.NewNumber(0).Equals(value.NewNumber(-0.0)))
}

func TestCrossTypeEqualityIsFalse(t *testing.T) {
	assert.False(t, value.NewNumber(1).Equals(value.NewString("1")))
	assert.False(t, value.Nil.Equals(value.False))
}

func TestArrayEquality(t *testing.T) {
	a := value.NewArray([]value.Value{value.NewNumber(1), value.NewString("x")})
	b := value.NewArray([]value.Value{value.NewNumber(1), value.NewString("x")})
	c := value.NewArray([]value.Value{value.NewNumber(1)})
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestDictionaryEqualityIgnoresOrder(t *testing.T) {
	a := value.NewDictionary(map[string]value.Value{"a": value.NewNumber(1), "b": value.NewNumber(2)})
	b := value.NewDictionary(map[string]value.Value{"b": value.NewNumber(2), "a": value.NewNumber(1)})
	assert.True(t, a.Equals(b))
}

func TestSymbolEquality(t *testing.T) {
	assert.True(t, value.NewSymbol("approve").Equals(value.NewSymbol("approve")))
	assert.False(t, value.NewSymbol("approve").Equals(value.NewSymbol("deny")))
}

func TestNumberCompare(t *testing.T) {
	c, err := value.NewNumber(1).Compare(value.NewNumber(2))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = value.NewNumber(1).Compare(value.NewString("x"))
	assert.Error(t, err)
}

func TestStringCompare(t *testing.T) {
	c, err := value.NewString("a").Compare(value.NewString("b"))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestFromInterfaceSymbolTag(t *testing.T) {
	v, err := value.FromInterface(map[string]any{"__symbol__": "approve"})
	require.NoError(t, err)
	sym, ok := v.(*value.Symbol)
	require.True(t, ok)
	assert.Equal(t, "approve", sym.Name)
}

func TestFromInterfaceRejectsNonFiniteNumber(t *testing.T) {
	_, err := value.FromInterface(map[string]any{"x": math.NaN()})
	assert.Error(t, err)
}

func TestFromInterfaceRejectsOversizedArray(t *testing.T) {
	items := make([]any, value.MaxArrayElements+1)
	_, err := value.FromInterface(items)
	assert.Error(t, err)
}

func TestToJSONRoundTripsSymbol(t *testing.T) {
	data, err := value.ToJSON(value.NewSymbol("adult"))
	require.NoError(t, err)
	v, err := value.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, v.Equals(value.NewSymbol("adult")))
}

func TestFromJSONBuildsNestedStructures(t *testing.T) {
	v, err := value.FromJSON([]byte(`{"user":{"age":25,"tags":["a","b"]}}`))
	require.NoError(t, err)
	dict, ok := v.(*value.Dictionary)
	require.True(t, ok)
	user, ok := dict.Get("user")
	require.True(t, ok)
	assert.Equal(t, value.DICTIONARY, user.Type())
}
