package runs

import (
	"context"
	"os"

	"github.com/reusee/taisp/lisp"
	"github.com/reusee/taisp/logs"
)

// RunSource evaluates every top-level expression of content in order and halts on the first error.
type RunSource func(ctx context.Context, name string, content string) error

func (Module) RunSource(
	lib lisp.Library,
	logger logs.Logger,
	newSpan logs.NewSpan,
) RunSource {
	return func(ctx context.Context, name string, content string) error {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "run", "name", name)

		interpreter := lisp.NewInterpreter(lib)
		parser := lisp.NewParser(lisp.NewTokenizer(lisp.NewSource(name, content)))
		n := 0
		for node, err := range parser.Expressions() {
			if err != nil {
				logger.DebugContext(ctx, "run failed", "error", logs.WrapSpan(ctx, err))
				return err
			}
			if _, err := interpreter.Eval(node); err != nil {
				logger.DebugContext(ctx, "run failed", "error", logs.WrapSpan(ctx, err))
				return err
			}
			n++
		}

		logger.DebugContext(ctx, "run done", "name", name, "expressions", n)
		return nil
	}
}

type RunFile func(ctx context.Context, path string) error

func (Module) RunFile(
	runSource RunSource,
) RunFile {
	return func(ctx context.Context, path string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return wrap(err)
		}
		return runSource(ctx, path, string(content))
	}
}
