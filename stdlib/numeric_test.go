package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func TestNumAbsCeilFloor(t *testing.T) {
	v, err := numAbs([]value.Value{value.NewNumber(-3.5)})
	require.NoError(t, err)
	assert.Equal(t, 3.5, v.(*value.Number).Value)

	v, err = numCeil([]value.Value{value.NewNumber(1.2)})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.(*value.Number).Value)

	v, err = numFloor([]value.Value{value.NewNumber(1.8)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*value.Number).Value)
}

func TestNumRound(t *testing.T) {
	v, err := numRound([]value.Value{value.NewNumber(1.2345)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*value.Number).Value)

	v, err = numRound([]value.Value{value.NewNumber(1.2345), value.NewNumber(2)})
	require.NoError(t, err)
	assert.Equal(t, 1.23, v.(*value.Number).Value)

	_, err = numRound([]value.Value{value.NewNumber(1.2), value.NewNumber(1.5)})
	assert.Error(t, err)
}

func TestNumMaxMinScalar(t *testing.T) {
	v, err := numMax([]value.Value{value.NewNumber(1), value.NewNumber(5)})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.(*value.Number).Value)

	v, err = numMin([]value.Value{value.NewNumber(1), value.NewNumber(5)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*value.Number).Value)
}

func TestNumMaxMinArrayReduction(t *testing.T) {
	arr := value.NewArray([]value.Value{value.NewNumber(3), value.NewNumber(1), value.NewNumber(4)})
	v, err := numMax([]value.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, 4.0, v.(*value.Number).Value)

	v, err = numMin([]value.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*value.Number).Value)

	_, err = numMax([]value.Value{value.NewArray(nil)})
	assert.Error(t, err)
}

func TestNumClamp(t *testing.T) {
	v, err := numClamp([]value.Value{value.NewNumber(15), value.NewNumber(0), value.NewNumber(10)})
	require.NoError(t, err)
	assert.Equal(t, 10.0, v.(*value.Number).Value)
}

func TestNumArithmeticDuals(t *testing.T) {
	v, err := numPlus([]value.Value{value.NewNumber(1), value.NewNumber(2)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*value.Number).Value)

	v, err = numMinus([]value.Value{value.NewNumber(5), value.NewNumber(2)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*value.Number).Value)

	v, err = numTimes([]value.Value{value.NewNumber(3), value.NewNumber(4)})
	require.NoError(t, err)
	assert.Equal(t, 12.0, v.(*value.Number).Value)

	v, err = numDividedBy([]value.Value{value.NewNumber(10), value.NewNumber(4)})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.(*value.Number).Value)

	v, err = numModulo([]value.Value{value.NewNumber(10), value.NewNumber(3)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*value.Number).Value)
}

func TestNumDivisionByZero(t *testing.T) {
	_, err := numDividedBy([]value.Value{value.NewNumber(1), value.NewNumber(0)})
	assert.True(t, IsDivisionByZero(err))

	_, err = numModulo([]value.Value{value.NewNumber(1), value.NewNumber(0)})
	assert.True(t, IsDivisionByZero(err))
}
