package runs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/taisp/lisp"
	"github.com/reusee/taisp/logs"
)

// Session evaluates REPL input line by line. An error only aborts the line it came from.
type Session struct {
	interpreter *lisp.Interpreter
	prefix      string
	stdout      io.Writer
	stderr      io.Writer
	logger      logs.Logger
	lines       int
}

// EvalLine evaluates every expression on line, printing each result, and reports whether all succeeded.
func (s *Session) EvalLine(ctx context.Context, line string) bool {
	s.lines++
	name := fmt.Sprintf("<repl:%d>", s.lines)
	parser := lisp.NewParser(lisp.NewTokenizer(lisp.NewSource(name, line)))
	for node, err := range parser.Expressions() {
		if err == nil {
			node, err = s.interpreter.Eval(node)
		}
		if err != nil {
			s.logger.DebugContext(ctx, "repl error", "line", s.lines, "error", err)
			fmt.Fprintf(s.stderr, "ERROR: %s\n", strings.TrimRight(err.Error(), "\n"))
			return false
		}
		fmt.Fprintf(s.stdout, "%s%s\n", s.prefix, display(node))
	}
	return true
}

func display(node *lisp.Node) string {
	if node.Kind == lisp.NodeList {
		return node.String()
	}
	value, err := lisp.ToValue(node)
	if err != nil {
		return node.String()
	}
	return value.String()
}
