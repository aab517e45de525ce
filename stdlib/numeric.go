package stdlib

import (
	"math"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func init() {
	register("abs", numAbs, 1)
	register("ceil", numCeil, 1)
	register("floor", numFloor, 1)
	register("round", numRound, 1, 2)
	register("max", numMax, 1, 2)
	register("min", numMin, 1, 2)
	register("clamp", numClamp, 3)
	register("plus", numPlus, 2)
	register("minus", numMinus, 2)
	register("times", numTimes, 2)
	register("divided_by", numDividedBy, 2)
	register("modulo", numModulo, 2)
}

func numAbs(args []value.Value) (value.Value, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(math.Abs(n)), nil
}

func numCeil(args []value.Value) (value.Value, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(math.Ceil(n)), nil
}

func numFloor(args []value.Value) (value.Value, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(math.Floor(n)), nil
}

func numRound(args []value.Value) (value.Value, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	digits := 0
	if len(args) == 2 {
		d, err := asNumber(args[1])
		if err != nil {
			return nil, err
		}
		if d != math.Trunc(d) {
			return nil, argErrorf("round: digits must be an integer, got %v", d)
		}
		digits = int(d)
	}
	scale := math.Pow(10, float64(digits))
	return value.NewNumber(math.Round(n*scale) / scale), nil
}

// numMax implements both the two-argument scalar form max(a, b) and the
// one-argument reduction form max(array) over a numeric array; the two
// share a name and are disambiguated by arity, like round/1 and round/2.
func numMax(args []value.Value) (value.Value, error) {
	if len(args) == 2 {
		a, b, err := twoNumbers(args)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(math.Max(a, b)), nil
	}
	return reduceNumericArray(args[0], math.Inf(-1), math.Max)
}

func numMin(args []value.Value) (value.Value, error) {
	if len(args) == 2 {
		a, b, err := twoNumbers(args)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(math.Min(a, b)), nil
	}
	return reduceNumericArray(args[0], math.Inf(1), math.Min)
}

func reduceNumericArray(v value.Value, identity float64, combine func(a, b float64) float64) (value.Value, error) {
	arr, err := asArray(v)
	if err != nil {
		return nil, err
	}
	nums, err := numericElements(arr)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, argErrorf("array must not be empty")
	}
	result := identity
	for _, n := range nums {
		result = combine(result, n)
	}
	return value.NewNumber(result), nil
}

func numClamp(args []value.Value) (value.Value, error) {
	x, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	lo, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	hi, err := asNumber(args[2])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(math.Min(math.Max(x, lo), hi)), nil
}

// numPlus, numMinus, numTimes, numDividedBy, numModulo are pipe-friendly
// duals of the arithmetic operators, letting a pipe chain read left to
// right: "x | plus(1) | times(2)" instead of nested infix expressions.
func numPlus(args []value.Value) (value.Value, error) {
	a, b, err := twoNumbers(args)
	if err != nil {
		return nil, err
	}
	return value.NewNumber(a + b), nil
}

func numMinus(args []value.Value) (value.Value, error) {
	a, b, err := twoNumbers(args)
	if err != nil {
		return nil, err
	}
	return value.NewNumber(a - b), nil
}

func numTimes(args []value.Value) (value.Value, error) {
	a, b, err := twoNumbers(args)
	if err != nil {
		return nil, err
	}
	return value.NewNumber(a * b), nil
}

func numDividedBy(args []value.Value) (value.Value, error) {
	a, b, err := twoNumbers(args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, errDivisionByZero
	}
	return value.NewNumber(a / b), nil
}

func numModulo(args []value.Value) (value.Value, error) {
	a, b, err := twoNumbers(args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, errDivisionByZero
	}
	return value.NewNumber(math.Mod(a, b)), nil
}

func twoNumbers(args []value.Value) (float64, float64, error) {
	a, err := asNumber(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := asNumber(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
