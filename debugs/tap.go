package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/quirl/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// Tap opens an interactive starlark session on stdin over globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Inspect evaluates a single starlark expression over globals.
type Inspect func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "inspect",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "inspect print", "msg", msg)
			},
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<inspect>", expr, toStringDict(globals))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return value, nil
	}
}
