package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/lolgo-lang/lolgo/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Inspect opens an interactive starlark session with the given globals
// bound, for poking at token streams and lexeme lists.
type Inspect func(ctx context.Context, what string, globals map[string]any)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "inspect: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "inspect end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
