package stdlib

import (
	"math"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func init() {
	register("pmt", finPmt, 3)
	register("pv", finPv, 3)
	register("fv", finFv, 4)
	register("nper", finNper, 3)
	register("rate", finRate, 3)
	register("npv", finNpv, 2)
	register("irr", finIrr, 1)
	register("mirr", finMirr, 3)
	register("sln", finSln, 3)
	register("ddb", finDdb, 4)
	register("db", finDb, 5)
	register("ipmt", finIpmt, 4)
	register("ppmt", finPpmt, 4)
	register("cumipmt", finCumipmt, 6)
	register("cumprinc", finCumprinc, 6)
}

// finPmt computes the payment for a loan with constant payments and a
// constant interest rate: PMT = -PV * (r * (1+r)^n) / ((1+r)^n - 1).
func finPmt(args []value.Value) (value.Value, error) {
	r, n, p, err := threeNumbers(args)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, argErrorf("pmt: nper must be greater than 0")
	}
	if r == 0 {
		return value.NewNumber(-p / n), nil
	}
	factor := math.Pow(1+r, n)
	return value.NewNumber(-p * (r * factor) / (factor - 1)), nil
}

// finPv computes present value: PV = -PMT * ((1 - (1+r)^-n) / r).
func finPv(args []value.Value) (value.Value, error) {
	r, n, pmt, err := threeNumbers(args)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, argErrorf("pv: nper must be greater than 0")
	}
	if r == 0 {
		return value.NewNumber(-pmt * n), nil
	}
	factor := math.Pow(1+r, -n)
	return value.NewNumber(-pmt * ((1 - factor) / r)), nil
}

// finFv computes future value:
// FV = -PV*(1+r)^n - PMT*(((1+r)^n - 1)/r).
func finFv(args []value.Value) (value.Value, error) {
	r, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	n, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	pmt, err := asNumber(args[2])
	if err != nil {
		return nil, err
	}
	pv, err := asNumber(args[3])
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, argErrorf("fv: nper must be greater than 0")
	}
	if r == 0 {
		return value.NewNumber(-pv - pmt*n), nil
	}
	factor := math.Pow(1+r, n)
	return value.NewNumber(-pv*factor - pmt*((factor-1)/r)), nil
}

// finNper computes the number of periods:
// NPER = log(PMT / (PMT + PV*r)) / log(1+r).
func finNper(args []value.Value) (value.Value, error) {
	r, pmt, pv, err := threeNumbers(args)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		if pmt == 0 {
			return nil, argErrorf("nper: payment cannot be zero when rate is zero")
		}
		return value.NewNumber(-pv / pmt), nil
	}
	denom := pmt + pv*r
	if denom == 0 || pmt/denom <= 0 {
		return nil, argErrorf("nper: invalid payment or present value for given rate")
	}
	return value.NewNumber(math.Log(pmt/denom) / math.Log(1+r)), nil
}

// finRate solves for the periodic interest rate by Newton-Raphson, since
// there is no closed-form inverse of the payment formula.
func finRate(args []value.Value) (value.Value, error) {
	n, pmt, pv, err := threeNumbers(args)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, argErrorf("rate: nper must be greater than 0")
	}
	if math.Abs(n-1) < 1e-10 {
		return value.NewNumber(-pmt/pv - 1), nil
	}

	rate := 0.05
	if pv < 0 {
		rate = 0.2
	}
	const tolerance = 1e-7
	const maxIterations = 2000

	for i := 0; i < maxIterations; i++ {
		r := rate
		onePlusR := 1 + r
		factor := math.Pow(onePlusR, n)
		pInv := 1 / factor

		f := pv + pmt*((1-pInv)/r)
		df := pmt * ((r*n*pInv/onePlusR - 1 + pInv) / (r * r))

		if math.Abs(df) < tolerance {
			return nil, argErrorf("rate: calculation did not converge")
		}

		newRate := rate - f/df
		if newRate < 0.0001 {
			newRate = 0.0001
		}

		if math.Abs(newRate-rate) < tolerance {
			return value.NewNumber(newRate), nil
		}
		rate = newRate
		if rate < 0.0001 || rate > 50.0 {
			return nil, argErrorf("rate: calculation did not converge to a reasonable value")
		}
	}
	return nil, argErrorf("rate: calculation exceeded maximum iterations")
}

// finNpv computes net present value of a cash-flow series discounted at a
// fixed periodic rate, with the first value at period 1.
func finNpv(args []value.Value) (value.Value, error) {
	r, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	arr, err := asArray(args[1])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, argErrorf("npv: values array must not be empty")
	}
	cashFlows, err := numericElements(arr)
	if err != nil {
		return nil, typeErrorf("npv: values must be an array of numbers")
	}
	var total float64
	for i, v := range cashFlows {
		period := float64(i + 1)
		total += v / math.Pow(1+r, period)
	}
	return value.NewNumber(total), nil
}

// finIrr solves for the rate at which NPV = 0 by Newton-Raphson.
func finIrr(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, argErrorf("irr: values array must not be empty")
	}
	cashFlows, err := numericElements(arr)
	if err != nil {
		return nil, typeErrorf("irr: values must be an array of numbers")
	}

	var hasPositive, hasNegative bool
	for _, v := range cashFlows {
		if v > 0 {
			hasPositive = true
		}
		if v < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return nil, argErrorf("irr: cash flows must contain both positive and negative values")
	}

	rate := 0.1
	const tolerance = 1e-6
	const maxIterations = 100

	for i := 0; i < maxIterations; i++ {
		var npv, dnpv float64
		for period, cf := range cashFlows {
			factor := math.Pow(1+rate, float64(period))
			npv += cf / factor
			dnpv -= float64(period) * cf / ((1 + rate) * factor)
		}
		if math.Abs(dnpv) < tolerance {
			return nil, argErrorf("irr: calculation did not converge")
		}
		newRate := rate - npv/dnpv
		if math.Abs(newRate-rate) < tolerance {
			return value.NewNumber(newRate), nil
		}
		rate = newRate
		if rate < -0.99 || rate > 100.0 {
			return nil, argErrorf("irr: calculation did not converge to a reasonable value")
		}
	}
	return nil, argErrorf("irr: calculation exceeded maximum iterations")
}

// finMirr assumes positive cash flows are reinvested at reinvestRate and
// negative cash flows are financed at financeRate.
func finMirr(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	financeRate, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	reinvestRate, err := asNumber(args[2])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, argErrorf("mirr: values array must not be empty")
	}
	cashFlows, err := numericElements(arr)
	if err != nil {
		return nil, typeErrorf("mirr: values must be an array of numbers")
	}

	n := float64(len(cashFlows))
	var pvNegative, fvPositive float64
	for i, cf := range cashFlows {
		if cf < 0 {
			pvNegative += cf / math.Pow(1+financeRate, float64(i))
		}
	}
	for i, cf := range cashFlows {
		if cf > 0 {
			period := n - 1 - float64(i)
			fvPositive += cf * math.Pow(1+reinvestRate, period)
		}
	}
	if pvNegative == 0 || fvPositive == 0 {
		return nil, argErrorf("mirr: cash flows must contain both positive and negative values")
	}
	return value.NewNumber(math.Pow(fvPositive/-pvNegative, 1/(n-1)) - 1), nil
}

// finSln computes straight-line depreciation: (cost - salvage) / life.
func finSln(args []value.Value) (value.Value, error) {
	cost, salvage, life, err := threeNumbers(args)
	if err != nil {
		return nil, err
	}
	if life <= 0 {
		return nil, argErrorf("sln: life must be greater than 0")
	}
	return value.NewNumber((cost - salvage) / life), nil
}

// finDdb computes double-declining-balance depreciation for the given
// period, never depreciating below the salvage value.
func finDdb(args []value.Value) (value.Value, error) {
	cost, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	salvage, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	life, err := asNumber(args[2])
	if err != nil {
		return nil, err
	}
	period, err := asNumber(args[3])
	if err != nil {
		return nil, err
	}
	if life <= 0 {
		return nil, argErrorf("ddb: life must be greater than 0")
	}
	if period < 1 || period > life {
		return nil, argErrorf("ddb: period must be between 1 and %v", life)
	}
	if period != math.Trunc(period) {
		return nil, argErrorf("ddb: period must be an integer")
	}

	rate := 2.0 / life
	bookValue := cost
	var depreciation float64
	target := int(period)
	for i := 1; i <= target; i++ {
		depreciation = bookValue * rate
		if bookValue-depreciation < salvage {
			depreciation = bookValue - salvage
		}
		bookValue -= depreciation
		if i == target {
			break
		}
	}
	return value.NewNumber(math.Max(depreciation, 0)), nil
}

// finDb computes fixed-declining-balance depreciation, supporting a
// partial first year measured in months.
func finDb(args []value.Value) (value.Value, error) {
	cost, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	salvage, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	life, err := asNumber(args[2])
	if err != nil {
		return nil, err
	}
	period, err := asNumber(args[3])
	if err != nil {
		return nil, err
	}
	month, err := asNumber(args[4])
	if err != nil {
		return nil, err
	}
	if life <= 0 {
		return nil, argErrorf("db: life must be greater than 0")
	}
	if period < 1 || period > life+1 {
		return nil, argErrorf("db: period must be between 1 and %v", life+1)
	}
	if month < 1 || month > 12 {
		return nil, argErrorf("db: month must be between 1 and 12")
	}
	if salvage >= cost {
		return value.NewNumber(0), nil
	}

	rate := 1 - math.Pow(salvage/cost, 1/life)
	rate = math.Round(rate*1000) / 1000

	var depreciation float64
	if period == 1 {
		depreciation = cost * rate * month / 12
	} else {
		tempTotal := cost * rate * month / 12
		for i := 2; i < int(period); i++ {
			depr := (cost - tempTotal) * rate
			tempTotal += depr
		}
		if period < life+1 {
			depreciation = (cost - tempTotal) * rate
		} else {
			depreciation = (cost - tempTotal) * rate * (12 - month) / 12
		}
	}
	return value.NewNumber(depreciation), nil
}

// finIpmt computes the interest portion of a payment for a given period,
// deriving the remaining balance from the payment computed by finPmt.
func finIpmt(args []value.Value) (value.Value, error) {
	r, per, n, pv, err := fourNumbers(args)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, argErrorf("ipmt: nper must be greater than 0")
	}
	if per < 1 || per > n {
		return nil, argErrorf("ipmt: per must be between 1 and %v", n)
	}
	if per == 1 {
		return value.NewNumber(-pv * r), nil
	}

	payment, err := pmtValue(r, n, pv)
	if err != nil {
		return nil, err
	}
	factor := math.Pow(1+r, per-1)
	balance := pv*factor + payment*((factor-1)/r)
	return value.NewNumber(-balance * r), nil
}

// finPpmt computes the principal portion of a payment as total payment
// minus the interest portion.
func finPpmt(args []value.Value) (value.Value, error) {
	r, per, n, pv, err := fourNumbers(args)
	if err != nil {
		return nil, err
	}
	if per < 1 || per > n {
		return nil, argErrorf("ppmt: per must be between 1 and %v", n)
	}
	payment, err := pmtValue(r, n, pv)
	if err != nil {
		return nil, err
	}
	interest, err := ipmtValue(r, per, n, pv)
	if err != nil {
		return nil, err
	}
	return value.NewNumber(payment - interest), nil
}

// finCumipmt sums the interest portion of payments over an inclusive
// period range.
func finCumipmt(args []value.Value) (value.Value, error) {
	r, n, pv, sp, ep, typ, err := sixNumbers(args)
	if err != nil {
		return nil, err
	}
	if sp < 1 || sp > n {
		return nil, argErrorf("cumipmt: start_period must be between 1 and %v", n)
	}
	if ep < sp || ep > n {
		return nil, argErrorf("cumipmt: end_period must be between %v and %v", sp, n)
	}
	if typ != 0 && typ != 1 {
		return nil, argErrorf("cumipmt: type must be 0 or 1")
	}
	var total float64
	for period := int(sp); period <= int(ep); period++ {
		interest, err := ipmtValue(r, float64(period), n, pv)
		if err != nil {
			return nil, err
		}
		total += interest
	}
	return value.NewNumber(total), nil
}

// finCumprinc sums the principal portion of payments over an inclusive
// period range, adjusting for beginning-of-period payments.
func finCumprinc(args []value.Value) (value.Value, error) {
	r, n, pv, sp, ep, typ, err := sixNumbers(args)
	if err != nil {
		return nil, err
	}
	if sp < 1 || sp > n {
		return nil, argErrorf("cumprinc: start_period must be between 1 and %v", n)
	}
	if ep < sp || ep > n {
		return nil, argErrorf("cumprinc: end_period must be between %v and %v", sp, n)
	}
	if typ != 0 && typ != 1 {
		return nil, argErrorf("cumprinc: type must be 0 or 1")
	}
	payment, err := pmtValue(r, n, pv)
	if err != nil {
		return nil, err
	}
	var total float64
	for period := int(sp); period <= int(ep); period++ {
		interest, err := ipmtValue(r, float64(period), n, pv)
		if err != nil {
			return nil, err
		}
		principal := payment - interest
		if typ == 1 {
			principal /= 1 + r
		}
		total += principal
	}
	return value.NewNumber(total), nil
}

// pmtValue and ipmtValue are the raw float forms of finPmt/finIpmt, used
// by the amortization builtins that compose them internally.
func pmtValue(r, n, pv float64) (float64, error) {
	if n <= 0 {
		return 0, argErrorf("nper must be greater than 0")
	}
	if r == 0 {
		return -pv / n, nil
	}
	factor := math.Pow(1+r, n)
	return -pv * (r * factor) / (factor - 1), nil
}

func ipmtValue(r, per, n, pv float64) (float64, error) {
	if per == 1 {
		return -pv * r, nil
	}
	payment, err := pmtValue(r, n, pv)
	if err != nil {
		return 0, err
	}
	factor := math.Pow(1+r, per-1)
	balance := pv*factor + payment*((factor-1)/r)
	return -balance * r, nil
}

func threeNumbers(args []value.Value) (float64, float64, float64, error) {
	a, err := asNumber(args[0])
	if err != nil {
		return 0, 0, 0, err
	}
	b, err := asNumber(args[1])
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := asNumber(args[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func fourNumbers(args []value.Value) (float64, float64, float64, float64, error) {
	a, b, c, err := threeNumbers(args[:3])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	d, err := asNumber(args[3])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return a, b, c, d, nil
}

func sixNumbers(args []value.Value) (float64, float64, float64, float64, float64, float64, error) {
	a, b, c, d, err := fourNumbers(args[:4])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	e, err := asNumber(args[4])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	f, err := asNumber(args[5])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	return a, b, c, d, e, f, nil
}
