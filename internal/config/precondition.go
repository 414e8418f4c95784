package config

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reglet-dev/fieldset/internal/schema"
)

// CompilePrecondition compiles a precondition expression into a predicate.
// The supplied value is bound to the identifier `value`, e.g.
// "0 <= value && value <= 150" or "value in ['air', 'land', 'water']".
//
// Compilation happens once at schema load; evaluation errors or non-boolean
// results at check time reject the value.
func CompilePrecondition(src string) (schema.Precondition, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid precondition expression %q: %w", src, err)
	}

	return preconditionFunc(program), nil
}

func preconditionFunc(program *vm.Program) schema.Precondition {
	return func(value any) bool {
		out, err := expr.Run(program, map[string]any{"value": value})
		if err != nil {
			return false
		}
		ok, isBool := out.(bool)
		return isBool && ok
	}
}
