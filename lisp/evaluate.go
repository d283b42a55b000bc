package lisp

import (
	"errors"
	"fmt"
)

// Evaluate reduces node to a result node. Leaves evaluate to themselves.
func Evaluate(node *Node, lib Library) (*Node, error) {
	switch node.Kind {

	case NodeNumber, NodeString, NodeSymbol:
		return node, nil

	case NodeList:
		if len(node.Children) == 0 {
			return nil, errorf(EvalError, node.Pos, "cannot evaluate empty list")
		}

		args := make([]Value, 0, len(node.Children))
		for _, child := range node.Children {
			result, err := Evaluate(child, lib)
			if err != nil {
				return nil, err
			}
			value, err := ToValue(result)
			if err != nil {
				return nil, WithPos(err, child.Pos)
			}
			args = append(args, value)
		}

		head := args[0]
		if head.Kind == ValueNumber {
			return nil, errorf(EvalError, node.Children[0].Pos, "function name must be a symbol, got %s", head.Kind)
		}
		name := head.Text
		args = args[1:]

		fn, ok := lib.Lookup(name)
		if !ok {
			return nil, errorf(EvalError, node.Children[0].Pos, "unknown function: %s", name)
		}

		result, err := fn(args)
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				return nil, WithPos(err, node.Pos)
			}
			return nil, &Error{
				Kind: EvalError,
				Msg:  name,
				Pos:  node.Pos,
				Err:  err,
			}
		}
		if result == nil {
			return nil, errorf(EvalError, node.Pos, "%s returned no value", name)
		}
		return result, nil

	}
	panic(fmt.Errorf("unknown node kind: %v", node.Kind))
}

type Interpreter struct {
	Library Library
}

func NewInterpreter(lib Library) *Interpreter {
	return &Interpreter{
		Library: lib,
	}
}

func (i *Interpreter) Eval(node *Node) (*Node, error) {
	return Evaluate(node, i.Library)
}

// EvalSource parses and evaluates every top-level expression in content and returns the last result.
// Evaluation stops at the first error.
func (i *Interpreter) EvalSource(name string, content string) (*Node, error) {
	var result *Node
	parser := NewParser(NewTokenizer(NewSource(name, content)))
	for node, err := range parser.Expressions() {
		if err != nil {
			return nil, err
		}
		result, err = i.Eval(node)
		if err != nil {
			return nil, err
		}
	}
	if result == nil {
		return nil, errorf(ParseError, Pos{}, "expected '(' got %s", TokenEOF)
	}
	return result, nil
}
