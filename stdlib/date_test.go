package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func TestDateNowReturnsInjectedValue(t *testing.T) {
	injected := value.NewString("2025-01-18T00:00:00Z")
	v, err := dateNow([]value.Value{injected})
	require.NoError(t, err)
	assert.Same(t, injected, v)
}

func TestDateFormatTokens(t *testing.T) {
	v, err := dateFormat([]value.Value{value.NewString("2023-06-15T14:30:00Z"), value.NewString("YYYY-MM-DD")})
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15", v.(*value.String).Value)

	v, err = dateFormat([]value.Value{value.NewString("2023-06-15T14:30:05Z"), value.NewString("HH:mm:ss")})
	require.NoError(t, err)
	assert.Equal(t, "14:30:05", v.(*value.String).Value)

	v, err = dateFormat([]value.Value{value.NewString("2023-06-15"), value.NewString("MMM DD, YYYY")})
	require.NoError(t, err)
	assert.Equal(t, "Jun 15, 2023", v.(*value.String).Value)
}

func TestDateFormatInvalidDate(t *testing.T) {
	_, err := dateFormat([]value.Value{value.NewString("not-a-date"), value.NewString("YYYY")})
	assert.Error(t, err)
}

func TestDateFormatTypeError(t *testing.T) {
	_, err := dateFormat([]value.Value{value.NewNumber(1), value.NewString("YYYY")})
	assert.Error(t, err)
}

func TestDateNowRegisteredEnvAware(t *testing.T) {
	spec, ok := Lookup("date_now")
	require.True(t, ok)
	assert.True(t, spec.NeedsExecutionTime)
}
