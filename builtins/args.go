package builtins

import (
	"fmt"

	"github.com/reusee/taisp/lisp"
)

func variadicArity(name string, min int, args []lisp.Value) error {
	if len(args) < min {
		return fmt.Errorf("invalid amount of arguments passed to (%s x y ...)", name)
	}
	return nil
}

func unaryArity(name string, args []lisp.Value) error {
	if len(args) != 1 {
		return fmt.Errorf("invalid amount of arguments passed to (%s x)", name)
	}
	return nil
}

func numberArgs(args []lisp.Value) ([]int64, error) {
	ret := make([]int64, 0, len(args))
	for i, arg := range args {
		n, err := arg.Int64()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ret = append(ret, n)
	}
	return ret, nil
}

func textArgs(args []lisp.Value) ([]string, error) {
	ret := make([]string, 0, len(args))
	for i, arg := range args {
		s, err := arg.Str()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ret = append(ret, s)
	}
	return ret, nil
}
