package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/taisp/lisp"
)

func Concat(args []lisp.Value) (*lisp.Node, error) {
	if err := variadicArity("concat", 2, args); err != nil {
		return nil, err
	}
	strs, err := textArgs(args)
	if err != nil {
		return nil, err
	}
	return lisp.StringNode(strings.Join(strs, "")), nil
}

func ToString(args []lisp.Value) (*lisp.Node, error) {
	if err := unaryArity("to_string", args); err != nil {
		return nil, err
	}
	n, err := args[0].Int64()
	if err != nil {
		return nil, fmt.Errorf("argument 1: %w", err)
	}
	return lisp.StringNode(strconv.FormatInt(n, 10)), nil
}

func ToNumber(args []lisp.Value) (*lisp.Node, error) {
	if err := unaryArity("to_number", args); err != nil {
		return nil, err
	}
	s, err := args[0].Str()
	if err != nil {
		return nil, fmt.Errorf("argument 1: %w", err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to number", s)
	}
	return lisp.NumberNode(n), nil
}
