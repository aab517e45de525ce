package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func TestStrUpcaseDowncase(t *testing.T) {
	v, err := strUpcase([]value.Value{value.NewString("hi There")})
	require.NoError(t, err)
	assert.Equal(t, "HI THERE", v.(*value.String).Value)

	v, err = strDowncase([]value.Value{value.NewString("HI There")})
	require.NoError(t, err)
	assert.Equal(t, "hi there", v.(*value.String).Value)
}

func TestStrCapitalize(t *testing.T) {
	v, err := strCapitalize([]value.Value{value.NewString("hELLO")})
	require.NoError(t, err)
	assert.Equal(t, "Hello", v.(*value.String).Value)

	v, err = strCapitalize([]value.Value{value.NewString("")})
	require.NoError(t, err)
	assert.Equal(t, "", v.(*value.String).Value)
}

func TestStrStripVariants(t *testing.T) {
	v, err := strStrip([]value.Value{value.NewString("  hi  ")})
	require.NoError(t, err)
	assert.Equal(t, "hi", v.(*value.String).Value)

	v, err = strLstrip([]value.Value{value.NewString("  hi  ")})
	require.NoError(t, err)
	assert.Equal(t, "hi  ", v.(*value.String).Value)

	v, err = strRstrip([]value.Value{value.NewString("  hi  ")})
	require.NoError(t, err)
	assert.Equal(t, "  hi", v.(*value.String).Value)
}

func TestStrSplitJoin(t *testing.T) {
	v, err := strSplit([]value.Value{value.NewString("a,b,c"), value.NewString(",")})
	require.NoError(t, err)
	arr := v.(*value.Array)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, "b", arr.Elements[1].(*value.String).Value)

	joined, err := strJoin([]value.Value{arr, value.NewString("-")})
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", joined.(*value.String).Value)
}

func TestStrReplace(t *testing.T) {
	v, err := strReplace([]value.Value{value.NewString("foo bar foo"), value.NewString("foo"), value.NewString("baz")})
	require.NoError(t, err)
	assert.Equal(t, "baz bar baz", v.(*value.String).Value)
}

func TestStrTruncate(t *testing.T) {
	v, err := strTruncate([]value.Value{value.NewString("hello world"), value.NewNumber(5)})
	require.NoError(t, err)
	assert.Equal(t, "hello...", v.(*value.String).Value)

	v, err = strTruncate([]value.Value{value.NewString("hi"), value.NewNumber(10)})
	require.NoError(t, err)
	assert.Equal(t, "hi", v.(*value.String).Value)
}

func TestStrPrependAppend(t *testing.T) {
	v, err := strPrepend([]value.Value{value.NewString("world"), value.NewString("hello ")})
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.(*value.String).Value)

	v, err = strAppend([]value.Value{value.NewString("hello"), value.NewString(" world")})
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.(*value.String).Value)
}

func TestStrTypeError(t *testing.T) {
	_, err := strUpcase([]value.Value{value.NewNumber(1)})
	assert.Error(t, err)
}
