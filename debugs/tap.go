package debugs

import (
	"context"
	"maps"
	"os"
	"slices"

	"github.com/reusee/taisp/lisp"
	"github.com/reusee/taisp/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with globals bound.
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
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, starlarkGlobals(globals))
	}
}

func starlarkGlobals(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict)
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// TapFile parses a source file and taps into its syntax trees.
// A parse error is bound as "error" together with the trees parsed before it.
type TapFile func(ctx context.Context, path string) error

func (Module) TapFile(
	tap Tap,
) TapFile {
	return func(ctx context.Context, path string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		globals := map[string]any{
			"path":   path,
			"source": string(content),
		}
		var trees []*lisp.Node
		parser := lisp.NewParser(lisp.NewTokenizer(lisp.NewSource(path, string(content))))
		for node, err := range parser.Expressions() {
			if err != nil {
				globals["error"] = err
				break
			}
			trees = append(trees, node)
		}
		globals["trees"] = trees
		tap(ctx, path, globals)
		return nil
	}
}
