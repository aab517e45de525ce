// Package validate implements the single static-checking pass that runs
// between parsing and evaluation: symbol membership against the host's
// allowed-symbol set, built-in function name and arity resolution, and
// dictionary key uniqueness. Everything else — operator applicability,
// division by zero, index bounds — is checked dynamically by eval, since it
// depends on runtime values the validator never sees.
package validate

import (
	"fmt"
	"sort"

	"github.com/deepnoodle-ai/amoskeag/ast"
	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
	"github.com/deepnoodle-ai/amoskeag/stdlib"
)

// Validator walks a parsed AST once and reports the first violation found.
type Validator struct {
	source         string
	allowedSymbols map[string]bool
}

// New creates a Validator against the given source (for diagnostic
// locations) and the set of symbol names the host permits.
func New(source string, allowedSymbols []string) *Validator {
	set := make(map[string]bool, len(allowedSymbols))
	for _, s := range allowedSymbols {
		set[s] = true
	}
	return &Validator{source: source, allowedSymbols: set}
}

// Validate walks expr and returns the first CompileError encountered, or nil
// if the program is well-formed.
func (v *Validator) Validate(expr ast.Expr) error {
	return v.walk(expr)
}

func (v *Validator) walk(expr ast.Expr) error {
	switch x := expr.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit, *ast.NilLit, *ast.Var:
		return nil
	case *ast.SymbolLit:
		return v.checkSymbol(x)
	case *ast.ArrayLit:
		for _, el := range x.Elements {
			if err := v.walk(el); err != nil {
				return err
			}
		}
		return nil
	case *ast.DictLit:
		return v.checkDict(x)
	case *ast.Unary:
		return v.walk(x.X)
	case *ast.Binary:
		if err := v.walk(x.X); err != nil {
			return err
		}
		return v.walk(x.Y)
	case *ast.If:
		if err := v.walk(x.Cond); err != nil {
			return err
		}
		if err := v.walk(x.Cons); err != nil {
			return err
		}
		return v.walk(x.Alt)
	case *ast.Let:
		if err := v.walk(x.Value); err != nil {
			return err
		}
		// Shadowing an outer binding of the same name is allowed and needs
		// no special handling here: name resolution happens at evaluation
		// time against the environment, not statically.
		return v.walk(x.Body)
	case *ast.Call:
		return v.checkCall(x)
	case *ast.BadExpr:
		return v.errorf(errs.ParseUnexpectedToken, x.Pos(), "invalid expression")
	default:
		return fmt.Errorf("validate: unhandled node type %T", expr)
	}
}

func (v *Validator) checkSymbol(x *ast.SymbolLit) error {
	if v.allowedSymbols[x.Name] {
		return nil
	}
	names := make([]string, 0, len(v.allowedSymbols))
	for name := range v.allowedSymbols {
		names = append(names, name)
	}
	sort.Strings(names)
	suggestions := errs.SuggestSimilar(x.Name, names)
	return v.errorfSuggest(errs.UndefinedSymbol, x.Pos(), suggestions, "undefined symbol %q", x.Name)
}

func (v *Validator) checkDict(x *ast.DictLit) error {
	seen := make(map[string]bool, len(x.Entries))
	for _, entry := range x.Entries {
		lit, ok := entry.Key.(*ast.StringLit)
		if ok {
			if seen[lit.Value] {
				return v.errorf(errs.DuplicateKey, entry.Key.Pos(), "duplicate dictionary key %q", lit.Value)
			}
			seen[lit.Value] = true
		}
		if err := v.walk(entry.Key); err != nil {
			return err
		}
		if err := v.walk(entry.Value); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) checkCall(x *ast.Call) error {
	if _, ok := stdlib.Lookup(x.FuncName); !ok {
		suggestions := errs.SuggestSimilar(x.FuncName, stdlib.Names())
		return v.errorfSuggest(errs.UndefinedFunction, x.Pos(), suggestions, "undefined function %q", x.FuncName)
	}
	if !stdlib.AcceptsArity(x.FuncName, len(x.Args)) {
		return v.errorf(errs.ArityMismatch, x.Pos(),
			"function %q does not accept %d argument(s)", x.FuncName, len(x.Args))
	}
	for _, arg := range x.Args {
		if err := v.walk(arg); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) errorf(code errs.Code, pos token.Position, format string, args ...any) error {
	return errs.NewCompileError(code, fmt.Sprintf(format, args...), errs.LocationFromPosition(pos, v.source))
}

func (v *Validator) errorfSuggest(code errs.Code, pos token.Position, suggestions []errs.Suggestion, format string, args ...any) error {
	return errs.NewCompileError(code, fmt.Sprintf(format, args...), errs.LocationFromPosition(pos, v.source), suggestions...)
}
