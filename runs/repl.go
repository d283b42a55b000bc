package runs

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/reusee/taisp/builtins"
	"github.com/reusee/taisp/configs"
	"github.com/reusee/taisp/lisp"
	"github.com/reusee/taisp/logs"
)

type NewSession func() *Session

func (Module) NewSession(
	lib lisp.Library,
	prefix configs.ResultPrefix,
	stdout builtins.Stdout,
	stderr builtins.Stderr,
	logger logs.Logger,
) NewSession {
	return func() *Session {
		return &Session{
			interpreter: lisp.NewInterpreter(lib),
			prefix:      string(prefix),
			stdout:      stdout,
			stderr:      stderr,
			logger:      logger,
		}
	}
}

// REPL reads lines until end of input or interrupt.
type REPL func(ctx context.Context) error

func (Module) REPL(
	newSession NewSession,
	prompt configs.Prompt,
	historyFile configs.HistoryFile,
	stdout builtins.Stdout,
	stderr builtins.Stderr,
	logger logs.Logger,
	newSpan logs.NewSpan,
) REPL {
	return func(ctx context.Context) error {
		ctx, _ = newSpan(ctx, "")
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
			Stdout:      stdout,
			Stderr:      stderr,
		})
		if err != nil {
			return wrap(err)
		}
		defer rl.Close()
		logger.DebugContext(ctx, "repl start", "history", historyFile)

		session := newSession()
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return wrap(err)
			}
			if line == "" {
				continue
			}
			session.EvalLine(ctx, line)
		}

		logger.DebugContext(ctx, "repl end")
		return nil
	}
}
