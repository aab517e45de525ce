// Package eval implements the tree-walking evaluator that turns a validated
// ast.Expr and an Environment into a value.Value.
package eval

import (
	"context"
	"fmt"
	"math"

	"github.com/deepnoodle-ai/amoskeag/ast"
	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
	"github.com/deepnoodle-ai/amoskeag/stdlib"
	"github.com/deepnoodle-ai/amoskeag/value"
)

// Eval evaluates expr against env, checking ctx for cancellation at each
// Call, If, and Let node — the only points where a pathologically deep AST
// could make evaluation take a noticeable amount of wall-clock time, since
// the language itself has no loops or recursion.
func Eval(ctx context.Context, expr ast.Expr, env *Environment, source string) (value.Value, error) {
	e := &evaluator{ctx: ctx, source: source}
	return e.eval(expr, env)
}

type evaluator struct {
	ctx    context.Context
	source string
}

func (e *evaluator) checkContext() error {
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	default:
		return nil
	}
}

func (e *evaluator) eval(expr ast.Expr, env *Environment) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.NumberLit:
		return value.NewNumber(x.Value), nil
	case *ast.StringLit:
		return value.NewString(x.Value), nil
	case *ast.BoolLit:
		return value.NewBoolean(x.Value), nil
	case *ast.NilLit:
		return value.Nil, nil
	case *ast.SymbolLit:
		return value.NewSymbol(x.Name), nil
	case *ast.ArrayLit:
		return e.evalArrayLit(x, env)
	case *ast.DictLit:
		return e.evalDictLit(x, env)
	case *ast.Var:
		return e.evalVar(x, env), nil
	case *ast.Unary:
		return e.evalUnary(x, env)
	case *ast.Binary:
		return e.evalBinary(x, env)
	case *ast.If:
		return e.evalIf(x, env)
	case *ast.Let:
		return e.evalLet(x, env)
	case *ast.Call:
		return e.evalCall(x, env)
	default:
		return nil, fmt.Errorf("eval: unhandled node type %T", expr)
	}
}

func (e *evaluator) evalArrayLit(x *ast.ArrayLit, env *Environment) (value.Value, error) {
	elements := make([]value.Value, len(x.Elements))
	for i, el := range x.Elements {
		v, err := e.eval(el, env)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return value.NewArray(elements), nil
}

func (e *evaluator) evalDictLit(x *ast.DictLit, env *Environment) (value.Value, error) {
	entries := make(map[string]value.Value, len(x.Entries))
	for _, entry := range x.Entries {
		keyVal, err := e.eval(entry.Key, env)
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.(*value.String)
		if !ok {
			return nil, e.typeErrorAt(entry.Key.Pos(), "dictionary key must be a string, got %s", keyVal.Type())
		}
		v, err := e.eval(entry.Value, env)
		if err != nil {
			return nil, err
		}
		entries[key.Value] = v
	}
	return value.NewDictionary(entries), nil
}

// evalVar implements safe navigation: an absent binding, a missing key, or
// a non-dictionary intermediate all yield Nil rather than an error.
func (e *evaluator) evalVar(x *ast.Var, env *Environment) value.Value {
	current := env.Lookup(x.Name)
	for _, segment := range x.Path {
		dict, ok := current.(*value.Dictionary)
		if !ok {
			return value.Nil
		}
		next, found := dict.Get(segment)
		if !found {
			return value.Nil
		}
		current = next
	}
	return current
}

func (e *evaluator) evalUnary(x *ast.Unary, env *Environment) (value.Value, error) {
	operand, err := e.eval(x.X, env)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case "-":
		n, ok := operand.(*value.Number)
		if !ok {
			return nil, e.typeErrorAt(x.Pos(), "unary \"-\" requires a number, got %s", operand.Type())
		}
		return value.NewNumber(-n.Value), nil
	case "not":
		return value.NewBoolean(!operand.IsTruthy()), nil
	default:
		return nil, fmt.Errorf("eval: unknown unary operator %q", x.Op)
	}
}

func (e *evaluator) evalBinary(x *ast.Binary, env *Environment) (value.Value, error) {
	switch x.Op {
	case "and":
		return e.evalAnd(x, env)
	case "or":
		return e.evalOr(x, env)
	}

	left, err := e.eval(x.X, env)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(x.Y, env)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case "==":
		return value.NewBoolean(left.Equals(right)), nil
	case "!=":
		return value.NewBoolean(!left.Equals(right)), nil
	case "<", ">", "<=", ">=":
		return e.evalCompare(x, left, right)
	case "+":
		return e.evalPlus(x, left, right)
	case "-", "*", "/", "%":
		return e.evalArith(x, left, right)
	default:
		return nil, fmt.Errorf("eval: unknown binary operator %q", x.Op)
	}
}

func (e *evaluator) evalAnd(x *ast.Binary, env *Environment) (value.Value, error) {
	left, err := e.eval(x.X, env)
	if err != nil {
		return nil, err
	}
	if !left.IsTruthy() {
		return left, nil
	}
	return e.eval(x.Y, env)
}

func (e *evaluator) evalOr(x *ast.Binary, env *Environment) (value.Value, error) {
	left, err := e.eval(x.X, env)
	if err != nil {
		return nil, err
	}
	if left.IsTruthy() {
		return left, nil
	}
	return e.eval(x.Y, env)
}

type comparable interface {
	Compare(other value.Value) (int, error)
}

func (e *evaluator) evalCompare(x *ast.Binary, left, right value.Value) (value.Value, error) {
	l, ok := left.(comparable)
	if !ok {
		return nil, e.typeErrorAt(x.Pos(), "%q is not supported between %s and %s", x.Op, left.Type(), right.Type())
	}
	cmp, err := l.Compare(right)
	if err != nil {
		return nil, e.typeErrorAt(x.Pos(), "%q is not supported between %s and %s", x.Op, left.Type(), right.Type())
	}
	switch x.Op {
	case "<":
		return value.NewBoolean(cmp < 0), nil
	case ">":
		return value.NewBoolean(cmp > 0), nil
	case "<=":
		return value.NewBoolean(cmp <= 0), nil
	case ">=":
		return value.NewBoolean(cmp >= 0), nil
	default:
		return nil, fmt.Errorf("eval: unknown comparison operator %q", x.Op)
	}
}

// evalPlus additionally supports String+String concatenation and
// Array+Array concatenation, per the arithmetic semantics table.
func (e *evaluator) evalPlus(x *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Number:
		r, ok := right.(*value.Number)
		if !ok {
			return nil, e.typeErrorAt(x.Pos(), "%q requires two numbers, got %s and %s", x.Op, left.Type(), right.Type())
		}
		return value.NewNumber(l.Value + r.Value), nil
	case *value.String:
		r, ok := right.(*value.String)
		if !ok {
			return nil, e.typeErrorAt(x.Pos(), "%q requires two strings, got %s and %s", x.Op, left.Type(), right.Type())
		}
		return value.NewString(l.Value + r.Value), nil
	case *value.Array:
		r, ok := right.(*value.Array)
		if !ok {
			return nil, e.typeErrorAt(x.Pos(), "%q requires two arrays, got %s and %s", x.Op, left.Type(), right.Type())
		}
		combined := make([]value.Value, 0, len(l.Elements)+len(r.Elements))
		combined = append(combined, l.Elements...)
		combined = append(combined, r.Elements...)
		return value.NewArray(combined), nil
	default:
		return nil, e.typeErrorAt(x.Pos(), "%q is not supported for %s", x.Op, left.Type())
	}
}

func (e *evaluator) evalArith(x *ast.Binary, left, right value.Value) (value.Value, error) {
	l, ok := left.(*value.Number)
	if !ok {
		return nil, e.typeErrorAt(x.Pos(), "%q requires two numbers, got %s and %s", x.Op, left.Type(), right.Type())
	}
	r, ok := right.(*value.Number)
	if !ok {
		return nil, e.typeErrorAt(x.Pos(), "%q requires two numbers, got %s and %s", x.Op, left.Type(), right.Type())
	}
	switch x.Op {
	case "-":
		return value.NewNumber(l.Value - r.Value), nil
	case "*":
		return value.NewNumber(l.Value * r.Value), nil
	case "/":
		if r.Value == 0 {
			return nil, e.divisionByZeroAt(x.Pos())
		}
		return value.NewNumber(l.Value / r.Value), nil
	case "%":
		if r.Value == 0 {
			return nil, e.divisionByZeroAt(x.Pos())
		}
		return value.NewNumber(math.Mod(l.Value, r.Value)), nil
	default:
		return nil, fmt.Errorf("eval: unknown arithmetic operator %q", x.Op)
	}
}

func (e *evaluator) evalIf(x *ast.If, env *Environment) (value.Value, error) {
	if err := e.checkContext(); err != nil {
		return nil, err
	}
	cond, err := e.eval(x.Cond, env)
	if err != nil {
		return nil, err
	}
	if cond.IsTruthy() {
		return e.eval(x.Cons, env)
	}
	return e.eval(x.Alt, env)
}

func (e *evaluator) evalLet(x *ast.Let, env *Environment) (value.Value, error) {
	if err := e.checkContext(); err != nil {
		return nil, err
	}
	v, err := e.eval(x.Value, env)
	if err != nil {
		return nil, err
	}
	return e.eval(x.Body, env.Extend(x.Name, v))
}

func (e *evaluator) evalCall(x *ast.Call, env *Environment) (value.Value, error) {
	if err := e.checkContext(); err != nil {
		return nil, err
	}
	spec, ok := stdlib.Lookup(x.FuncName)
	if !ok {
		return nil, e.errorAt(errs.UndefinedFunction, x.Pos(), "undefined function %q", x.FuncName)
	}

	if spec.NeedsExecutionTime {
		execTime := env.Lookup("metadata")
		v := lookupPath(execTime, []string{"execution_time"})
		result, err := spec.Fn([]value.Value{v})
		if err != nil {
			return nil, e.wrapBuiltinError(x, err)
		}
		return result, nil
	}

	args := make([]value.Value, len(x.Args))
	for i, argExpr := range x.Args {
		v, err := e.eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	result, err := spec.Fn(args)
	if err != nil {
		return nil, e.wrapBuiltinError(x, err)
	}
	return result, nil
}

func lookupPath(root value.Value, path []string) value.Value {
	current := root
	for _, segment := range path {
		dict, ok := current.(*value.Dictionary)
		if !ok {
			return value.Nil
		}
		next, found := dict.Get(segment)
		if !found {
			return value.Nil
		}
		current = next
	}
	return current
}

func (e *evaluator) wrapBuiltinError(x *ast.Call, err error) error {
	switch {
	case stdlib.IsDivisionByZero(err):
		return e.divisionByZeroAt(x.Pos())
	case isArgumentError(err):
		return e.errorAt(errs.EvalArgumentError, x.Pos(), "%s: %s", x.FuncName, err.Error())
	case isTypeError(err):
		return e.errorAt(errs.EvalTypeError, x.Pos(), "%s: %s", x.FuncName, err.Error())
	default:
		return e.errorAt(errs.EvalTypeError, x.Pos(), "%s: %s", x.FuncName, err.Error())
	}
}

func isArgumentError(err error) bool {
	_, ok := err.(*stdlib.ArgumentError)
	return ok
}

func isTypeError(err error) bool {
	_, ok := err.(*stdlib.TypeError)
	return ok
}

func (e *evaluator) typeErrorAt(pos token.Position, format string, args ...any) error {
	return e.errorAt(errs.EvalTypeError, pos, format, args...)
}

func (e *evaluator) divisionByZeroAt(pos token.Position) error {
	return errs.NewEvalError(errs.EvalDivisionByZero, "division by zero", errs.LocationFromPosition(pos, e.source))
}

func (e *evaluator) errorAt(code errs.Code, pos token.Position, format string, args ...any) error {
	return errs.NewEvalError(code, fmt.Sprintf(format, args...), errs.LocationFromPosition(pos, e.source))
}
