package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// Eval evaluates input against root and converts the result to a Value.
func Eval(input string, root ir.Value, opts ...Option) (ir.Value, error) {
	x, err := run(input, NewEnv(root, opts...), root, nil)
	if err != nil {
		return ir.Value{}, err
	}
	return fromResult(x)
}

// When evaluates input against root and reports the truth of the result.
func When(input string, root ir.Value, opts ...Option) (bool, error) {
	v, err := Eval(input, root, opts...)
	if err != nil {
		return false, err
	}
	return ir.Truth(v), nil
}

func run(input string, env Env, root ir.Value, at path.Path) (any, error) {
	program, err := expr.Compile(input, append(exprOpts(root, at), expr.Env(map[string]any(env)))...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	x, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	if debug.Eval() {
		debug.Log("eval", "expr", input, "at", at.String(), "result", fmt.Sprintf("%#v", x))
	}
	return x, nil
}

func fromResult(x any) (ir.Value, error) {
	v, err := ir.FromAny(x)
	if err != nil {
		return ir.Value{}, fmt.Errorf("could not translate evaluation result %T: %w", x, err)
	}
	return v, nil
}
