package stdlib

import "github.com/deepnoodle-ai/amoskeag/value"

func init() {
	register("if_then_else", logicIfThenElse, 3)
	register("choose", logicChoose, 2)
	register("coalesce", logicCoalesce, Variadic)
	register("default", logicDefault, 2)
	register("is_number", isType(value.NUMBER), 1)
	register("is_string", isType(value.STRING), 1)
	register("is_boolean", isType(value.BOOLEAN), 1)
	register("is_nil", isType(value.NIL), 1)
	register("is_array", isType(value.ARRAY), 1)
	register("is_dictionary", isType(value.DICTIONARY), 1)
	register("is_symbol", isType(value.SYMBOL), 1)
}

// logicIfThenElse is strict: both branches are supplied already evaluated
// by the caller, unlike the "if" expression form which evaluates lazily.
func logicIfThenElse(args []value.Value) (value.Value, error) {
	if args[0].IsTruthy() {
		return args[1], nil
	}
	return args[2], nil
}

// logicChoose selects a 1-based, Excel-compatible index into an array.
// An out-of-range index is a type error, unlike "at" which returns Nil.
func logicChoose(args []value.Value) (value.Value, error) {
	idx, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	arr, err := asArray(args[1])
	if err != nil {
		return nil, err
	}
	i := int(idx)
	if i < 1 || i > len(arr.Elements) {
		return nil, typeErrorf("choose: index %d out of range for array of length %d", i, len(arr.Elements))
	}
	return arr.Elements[i-1], nil
}

// logicCoalesce returns the first non-nil argument, or Nil if all are nil.
// It is the only variadic built-in: registered with arity -1 to mean "any
// number of arguments", checked specially by the validator.
func logicCoalesce(args []value.Value) (value.Value, error) {
	for _, a := range args {
		if _, isNil := a.(*value.NilType); !isNil {
			return a, nil
		}
	}
	return value.Nil, nil
}

func logicDefault(args []value.Value) (value.Value, error) {
	if _, isNil := args[0].(*value.NilType); isNil {
		return args[1], nil
	}
	return args[0], nil
}

func isType(t value.Type) Func {
	return func(args []value.Value) (value.Value, error) {
		return value.NewBoolean(args[0].Type() == t), nil
	}
}
