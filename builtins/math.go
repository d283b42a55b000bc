package builtins

import (
	"errors"

	"github.com/reusee/taisp/lisp"
)

var ErrDivisionByZero = errors.New("division by zero")

func Add(args []lisp.Value) (*lisp.Node, error) {
	return fold("add", args, func(acc, n int64) (int64, error) {
		return acc + n, nil
	})
}

func Sub(args []lisp.Value) (*lisp.Node, error) {
	return fold("sub", args, func(acc, n int64) (int64, error) {
		return acc - n, nil
	})
}

func Mul(args []lisp.Value) (*lisp.Node, error) {
	return fold("mul", args, func(acc, n int64) (int64, error) {
		return acc * n, nil
	})
}

// Div truncates toward zero.
func Div(args []lisp.Value) (*lisp.Node, error) {
	return fold("div", args, func(acc, n int64) (int64, error) {
		if n == 0 {
			return 0, ErrDivisionByZero
		}
		return acc / n, nil
	})
}

// fold applies fn left to right starting from the first argument. At least two numbers are required.
func fold(name string, args []lisp.Value, fn func(acc, n int64) (int64, error)) (*lisp.Node, error) {
	if err := variadicArity(name, 2, args); err != nil {
		return nil, err
	}
	nums, err := numberArgs(args)
	if err != nil {
		return nil, err
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc, err = fn(acc, n)
		if err != nil {
			return nil, err
		}
	}
	return lisp.NumberNode(acc), nil
}
