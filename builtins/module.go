package builtins

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taisp/lisp"
)

type Module struct {
	dscope.Module
}

type Stdout io.Writer

type Stderr io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Stderr() Stderr {
	return os.Stderr
}

func (Module) Library(
	stdout Stdout,
	stderr Stderr,
) lisp.Library {
	return New(stdout, stderr)
}

// New returns the standard function library, printing to stdout and stderr.
func New(stdout io.Writer, stderr io.Writer) lisp.Library {
	return lisp.Library{
		"print":     Print("print", stdout, false),
		"println":   Print("println", stdout, true),
		"eprint":    Print("eprint", stderr, false),
		"eprintln":  Print("eprintln", stderr, true),
		"concat":    Concat,
		"to_string": ToString,
		"to_number": ToNumber,
		"add":       Add,
		"sub":       Sub,
		"mul":       Mul,
		"div":       Div,
	}
}
