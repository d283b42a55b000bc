package builtins

import (
	"io"
	"strings"

	"github.com/reusee/taisp/lisp"
	"github.com/samber/lo"
)

// Print writes the display form of every argument with no separator and evaluates to 0.
func Print(name string, w io.Writer, newline bool) lisp.Func {
	return func(args []lisp.Value) (*lisp.Node, error) {
		if err := variadicArity(name, 1, args); err != nil {
			return nil, err
		}
		out := strings.Join(lo.Map(args, func(arg lisp.Value, _ int) string {
			return arg.String()
		}), "")
		if newline {
			out += "\n"
		}
		if _, err := io.WriteString(w, out); err != nil {
			return nil, err
		}
		return lisp.NumberNode(0), nil
	}
}
