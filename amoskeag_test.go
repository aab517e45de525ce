package amoskeag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag"
	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/value"
)

func TestCompileAndEvaluateArithmetic(t *testing.T) {
	program, err := amoskeag.Compile("2 + 3 * 4", nil)
	require.NoError(t, err)

	result, err := program.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 14.0, result.(*value.Number).Value)
}

func TestCompileAndEvaluateVariableNavigation(t *testing.T) {
	program, err := amoskeag.Compile("user.age * 2", nil)
	require.NoError(t, err)

	data := map[string]any{"user": map[string]any{"age": 25.0}}
	result, err := program.Evaluate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.(*value.Number).Value)
}

func TestCompileRejectsUndefinedSymbol(t *testing.T) {
	_, err := amoskeag.Compile(":adult", []string{"minor"})
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedSymbol, compileErr.Code)
}

func TestCompileAcceptsWhitelistedSymbol(t *testing.T) {
	program, err := amoskeag.Compile("if user.age >= 18 :adult else :minor end", []string{"adult", "minor"})
	require.NoError(t, err)

	result, err := program.Evaluate(context.Background(), map[string]any{"user": map[string]any{"age": 25.0}})
	require.NoError(t, err)
	assert.Equal(t, "adult", result.(*value.Symbol).Name)
}

func TestCompileRejectsDuplicateDictionaryKey(t *testing.T) {
	_, err := amoskeag.Compile(`{"a": 1, "a": 2}`, nil)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.DuplicateKey, compileErr.Code)
}

func TestCompileRejectsUndefinedFunction(t *testing.T) {
	_, err := amoskeag.Compile(`uppcase("hi")`, nil)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.UndefinedFunction, compileErr.Code)
}

func TestCompileRejectsTooManyAllowedSymbols(t *testing.T) {
	names := make([]string, amoskeag.MaxAllowedSymbols+1)
	for i := range names {
		names[i] = "s"
	}
	_, err := amoskeag.Compile(":s", names)
	require.Error(t, err)
	compileErr, ok := err.(*errs.CompileError)
	require.True(t, ok)
	assert.Equal(t, errs.TooManySymbols, compileErr.Code)
}

func TestEvaluateDivisionByZeroIsEvalError(t *testing.T) {
	program, err := amoskeag.Compile("10 / x", nil)
	require.NoError(t, err)

	_, err = program.Evaluate(context.Background(), map[string]any{"x": 0.0})
	require.Error(t, err)
	evalErr, ok := err.(*errs.EvalError)
	require.True(t, ok)
	assert.Equal(t, errs.EvalDivisionByZero, evalErr.Code)
}

func TestEvaluatePipelineAndFinancialBuiltin(t *testing.T) {
	program, err := amoskeag.Compile("pmt(0.045 / 12, 360, 250000) | round(2)", nil)
	require.NoError(t, err)

	result, err := program.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, -1266.71, result.(*value.Number).Value, 0.01)
}

func TestEvaluateDateNowFromExecutionTimeSlot(t *testing.T) {
	program, err := amoskeag.Compile(`date_format(date_now(), "YYYY-MM-DD")`, nil)
	require.NoError(t, err)

	data := map[string]any{"metadata": map[string]any{"execution_time": "2025-01-18T00:00:00Z"}}
	result, err := program.Evaluate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-18", result.(*value.String).Value)
}

func TestProgramIsReusableAcrossEvaluations(t *testing.T) {
	program, err := amoskeag.Compile("x * x", nil)
	require.NoError(t, err)

	first, err := program.Evaluate(context.Background(), map[string]any{"x": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 9.0, first.(*value.Number).Value)

	second, err := program.Evaluate(context.Background(), map[string]any{"x": 4.0})
	require.NoError(t, err)
	assert.Equal(t, 16.0, second.(*value.Number).Value)
}

func TestProgramHasStableIdentity(t *testing.T) {
	program, err := amoskeag.Compile("1 + 1", nil)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", program.ID().String())
	assert.Equal(t, "1 + 1", program.Source())
}

func TestEvaluateRejectsOversizedInputData(t *testing.T) {
	program, err := amoskeag.Compile("size(items)", nil)
	require.NoError(t, err)

	items := make([]any, value.MaxArrayElements+1)
	_, err = program.Evaluate(context.Background(), map[string]any{"items": items})
	require.Error(t, err)
	_, ok := err.(*errs.InputError)
	require.True(t, ok)
}

func TestIngestConvertsAndBoundsHostData(t *testing.T) {
	v, err := amoskeag.Ingest(map[string]any{"a": 1.0, "b": []any{true, "x"}})
	require.NoError(t, err)
	dict, ok := v.(*value.Dictionary)
	require.True(t, ok)
	assert.Equal(t, 2, dict.Len())

	_, err = amoskeag.Ingest(map[string]any{"n": nanValue()})
	require.Error(t, err)
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
