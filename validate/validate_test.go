package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/parser"
	"github.com/deepnoodle-ai/amoskeag/validate"
)

func parseAndValidate(t *testing.T, source string, allowedSymbols []string) error {
	t.Helper()
	expr, err := parser.Parse(source)
	require.NoError(t, err)
	return validate.New(source, allowedSymbols).Validate(expr)
}

func TestValidateAcceptsSimpleArithmetic(t *testing.T) {
	err := parseAndValidate(t, "2 + 3 * 4", nil)
	assert.NoError(t, err)
}

func TestValidateSymbolMembership(t *testing.T) {
	err := parseAndValidate(t, ":adult", []string{"adult", "minor"})
	assert.NoError(t, err)

	err = parseAndValidate(t, ":adult", []string{"minor"})
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedSymbol, compileErr.Code)
}

func TestValidateUndefinedFunction(t *testing.T) {
	err := parseAndValidate(t, "uppcase(\"hi\")", nil)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedFunction, compileErr.Code)
	assert.Contains(t, compileErr.Detail(), "did you mean")
}

func TestValidateArityMismatch(t *testing.T) {
	err := parseAndValidate(t, "upcase(\"a\", \"b\")", nil)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.ArityMismatch, compileErr.Code)
}

func TestValidateDuplicateKey(t *testing.T) {
	err := parseAndValidate(t, `{"a": 1, "a": 2}`, nil)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.DuplicateKey, compileErr.Code)
}

func TestValidateAllowsLetShadowing(t *testing.T) {
	err := parseAndValidate(t, "let x = 1 in let x = x + 1 in x", nil)
	assert.NoError(t, err)
}

func TestValidateWalksNestedExpressions(t *testing.T) {
	err := parseAndValidate(t, `if size([1, 2, :bad]) > 0 then "y" else "n" end`, nil)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedSymbol, compileErr.Code)
}

func TestValidatePipeDesugaredBeforeValidation(t *testing.T) {
	err := parseAndValidate(t, `"  hi  " | strip | downcase`, nil)
	assert.NoError(t, err)
}
