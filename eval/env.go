package eval

import (
	"maps"
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/vtree/ir"
	"github.com/signadot/vtree/path"
)

// Env holds the variables visible to an expression.
type Env map[string]any

// Option configures evaluation.
type Option func(*options)

type options struct {
	vars Env
}

// Vars adds variables to the environment. They shadow root entries of the
// same name.
func Vars(vars Env) Option {
	return func(o *options) {
		if o.vars == nil {
			o.vars = Env{}
		}
		maps.Copy(o.vars, vars)
	}
}

// NewEnv returns the environment for root.
func NewEnv(root ir.Value, opts ...Option) Env {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	env := Env{}
	if root.Type == ir.MapType {
		for k, v := range root.Map {
			env[k] = v.ToAny()
		}
	}
	maps.Copy(env, o.vars)
	return env
}

// exprOpts provides the script functions. at is the location reported by
// whereami.
func exprOpts(root ir.Value, at path.Path) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			p, err := path.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			v, ok := root.Lookup(p)
			if !ok {
				return nil, nil
			}
			return v.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			p, err := path.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			_, ok := root.Lookup(p)
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("whereami", func(params ...any) (any, error) {
			return at.String(), nil
		},
			new(func() string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
