package builtins

import (
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
)

// registerEnvironmentFns wires the three environment-introspection
// primitives: `environment()` (the caller's frame), `parent()` (the
// frame one call out, the default for `eval`'s `envir` formal), and
// `new.env()` (a fresh child scope).
func registerEnvironmentFns(r *Registry) {
	r.Register("environment", "env", "the currently executing frame", func(args []object.Value, _ []string, ctx CallContext) (object.Value, error) {
		if len(args) != 0 {
			return nil, wrongArgCount("environment", 0, len(args))
		}
		env := ctx.CurrentEnv()
		if env == nil {
			return nil, signal.New(signal.Domain, "environment(): no active call frame")
		}
		return object.EnvironmentValue{Env: env}, nil
	})

	r.Register("parent", "env", "the frame enclosing the current call", func(args []object.Value, _ []string, ctx CallContext) (object.Value, error) {
		if len(args) != 0 {
			return nil, wrongArgCount("parent", 0, len(args))
		}
		env := ctx.ParentEnv()
		if env == nil {
			env = ctx.CurrentEnv()
		}
		if env == nil {
			return nil, signal.New(signal.Domain, "parent(): no enclosing call frame")
		}
		return object.EnvironmentValue{Env: env}, nil
	})

	r.Register("new.env", "env", "a fresh environment enclosed by the current frame", func(args []object.Value, _ []string, ctx CallContext) (object.Value, error) {
		if len(args) != 0 {
			return nil, wrongArgCount("new.env", 0, len(args))
		}
		parent := ctx.CurrentEnv()
		return object.EnvironmentValue{Env: object.NewChildEnvironment(parent)}, nil
	})
}
