package stdlib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func numValue(t *testing.T, v value.Value, err error) float64 {
	t.Helper()
	require.NoError(t, err)
	n, ok := v.(*value.Number)
	require.True(t, ok, "expected *value.Number, got %T", v)
	return n.Value
}

func TestFinPmt(t *testing.T) {
	v, err := finPmt([]value.Value{value.NewNumber(0.00375), value.NewNumber(360), value.NewNumber(250000)})
	got := numValue(t, v, err)
	assert.InDelta(t, -1266.71, got, 1.0)

	v, err = finPmt([]value.Value{value.NewNumber(0), value.NewNumber(12), value.NewNumber(1200)})
	assert.InDelta(t, -100.0, numValue(t, v, err), 1e-9)

	_, err = finPmt([]value.Value{value.NewNumber(0.01), value.NewNumber(0), value.NewNumber(1000)})
	assert.Error(t, err)
}

func TestFinPv(t *testing.T) {
	v, err := finPv([]value.Value{value.NewNumber(0.08 / 12), value.NewNumber(20 * 12), value.NewNumber(-1000)})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)
}

func TestFinFv(t *testing.T) {
	v, err := finFv([]value.Value{
		value.NewNumber(0.06 / 12), value.NewNumber(10 * 12), value.NewNumber(-100), value.NewNumber(-1000),
	})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)
}

func TestFinNper(t *testing.T) {
	v, err := finNper([]value.Value{value.NewNumber(0.075 / 12), value.NewNumber(-200), value.NewNumber(8000)})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)

	_, err = finNper([]value.Value{value.NewNumber(0), value.NewNumber(0), value.NewNumber(1000)})
	assert.Error(t, err)
}

func TestFinRate(t *testing.T) {
	v, err := finRate([]value.Value{value.NewNumber(48), value.NewNumber(-200), value.NewNumber(8000)})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}

func TestFinNpv(t *testing.T) {
	arr := value.NewArray([]value.Value{
		value.NewNumber(-10000), value.NewNumber(3000), value.NewNumber(4200), value.NewNumber(6800),
	})
	v, err := finNpv([]value.Value{value.NewNumber(0.1), arr})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)

	_, err = finNpv([]value.Value{value.NewNumber(0.1), value.NewArray(nil)})
	assert.Error(t, err)
}

func TestFinIrr(t *testing.T) {
	arr := value.NewArray([]value.Value{
		value.NewNumber(-10000), value.NewNumber(3000), value.NewNumber(4200), value.NewNumber(6800),
	})
	v, err := finIrr([]value.Value{arr})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)

	allNegative := value.NewArray([]value.Value{value.NewNumber(-1), value.NewNumber(-2)})
	_, err = finIrr([]value.Value{allNegative})
	assert.Error(t, err)
}

func TestFinMirr(t *testing.T) {
	arr := value.NewArray([]value.Value{
		value.NewNumber(-10000), value.NewNumber(3000), value.NewNumber(4200), value.NewNumber(6800),
	})
	v, err := finMirr([]value.Value{arr, value.NewNumber(0.1), value.NewNumber(0.12)})
	got := numValue(t, v, err)
	assert.False(t, math.IsNaN(got))
}

func TestFinSln(t *testing.T) {
	v, err := finSln([]value.Value{value.NewNumber(30000), value.NewNumber(7500), value.NewNumber(10)})
	assert.InDelta(t, 2250.0, numValue(t, v, err), 1e-9)

	_, err = finSln([]value.Value{value.NewNumber(30000), value.NewNumber(7500), value.NewNumber(0)})
	assert.Error(t, err)
}

func TestFinDdb(t *testing.T) {
	v, err := finDdb([]value.Value{
		value.NewNumber(30000), value.NewNumber(7500), value.NewNumber(10), value.NewNumber(1),
	})
	got := numValue(t, v, err)
	assert.InDelta(t, 6000.0, got, 1e-9)

	_, err = finDdb([]value.Value{
		value.NewNumber(30000), value.NewNumber(7500), value.NewNumber(10), value.NewNumber(1.5),
	})
	assert.Error(t, err)
}

func TestFinDb(t *testing.T) {
	v, err := finDb([]value.Value{
		value.NewNumber(1000000), value.NewNumber(100000), value.NewNumber(6),
		value.NewNumber(1), value.NewNumber(7),
	})
	got := numValue(t, v, err)
	assert.Greater(t, got, 0.0)
}

func TestFinIpmtPpmt(t *testing.T) {
	rate := value.NewNumber(0.1 / 12)
	nper := value.NewNumber(3 * 12)
	pv := value.NewNumber(8000)

	ipVal, ipErr := finIpmt([]value.Value{rate, value.NewNumber(1), nper, pv})
	ip := numValue(t, ipVal, ipErr)
	assert.InDelta(t, -8000*0.1/12, ip, 1e-9)

	ppVal, ppErr := finPpmt([]value.Value{rate, value.NewNumber(1), nper, pv})
	pp := numValue(t, ppVal, ppErr)

	pmtVal, pmtErr := finPmt([]value.Value{rate, nper, pv})
	pmt := numValue(t, pmtVal, pmtErr)

	assert.InDelta(t, pmt, ip+pp, 1e-6)
}

func TestFinCumipmtCumprinc(t *testing.T) {
	rate := value.NewNumber(0.09 / 12)
	nper := value.NewNumber(30 * 12)
	pv := value.NewNumber(125000)
	sp := value.NewNumber(1)
	ep := value.NewNumber(12)
	typ := value.NewNumber(0)

	interest, err := finCumipmt([]value.Value{rate, nper, pv, sp, ep, typ})
	require.NoError(t, err)

	principal, err := finCumprinc([]value.Value{rate, nper, pv, sp, ep, typ})
	require.NoError(t, err)

	pmt, err := finPmt([]value.Value{rate, nper, pv})
	require.NoError(t, err)

	assert.InDelta(t, pmt.(*value.Number).Value*12, interest.(*value.Number).Value+principal.(*value.Number).Value, 1e-6)

	_, err = finCumipmt([]value.Value{rate, nper, pv, sp, ep, value.NewNumber(2)})
	assert.Error(t, err)
}
