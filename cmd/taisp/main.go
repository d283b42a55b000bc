package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taisp/cmds"
	"github.com/reusee/taisp/debugs"
	"github.com/reusee/taisp/logs"
	"github.com/reusee/taisp/modes"
	"github.com/reusee/taisp/runs"
	"github.com/reusee/taisp/vars"
)

var (
	runFlag = cmds.Collect[string]("run")
	tapFlag = cmds.Var[string]("tap")
)

func init() {
	cmds.Define("repl", cmds.Func(func() {}).Desc("start the interactive prompt (default)"))
}

func main() {
	args := os.Args[1:]
	// taisp script.lisp
	if len(args) == 1 && strings.HasSuffix(args[0], ".lisp") {
		args = []string{"run", args[0]}
	}
	cmds.Execute(args)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		runFile runs.RunFile,
		repl runs.REPL,
		tapFile debugs.TapFile,
		logger logs.Logger,
	) {

		if path := vars.DerefOrZero(tapFlag); path != "" {
			if err := tapFile(ctx, path); err != nil {
				fail(err)
			}
			return
		}

		if len(*runFlag) > 0 {
			for _, path := range *runFlag {
				if err := runFile(ctx, path); err != nil {
					logger.DebugContext(ctx, "run file", "path", path, "error", err)
					fail(err)
				}
			}
			return
		}

		if err := repl(ctx); err != nil {
			fail(err)
		}
	})
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", strings.TrimRight(err.Error(), "\n"))
	os.Exit(1)
}
