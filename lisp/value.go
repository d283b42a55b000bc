package lisp

import (
	"fmt"
	"strconv"
)

type ValueKind uint8

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueSymbol
)

func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValueString:
		return "string"
	case ValueSymbol:
		return "symbol"
	}
	panic("unknown value kind")
}

// Value is a scalar passed to and returned from library functions. It never holds a list.
type Value struct {
	Kind ValueKind
	Int  int64
	Text string
}

func Number(n int64) Value {
	return Value{Kind: ValueNumber, Int: n}
}

func String(s string) Value {
	return Value{Kind: ValueString, Text: s}
}

func Symbol(s string) Value {
	return Value{Kind: ValueSymbol, Text: s}
}

// ToValue narrows a node to a scalar. Lists have no scalar form and are rejected.
func ToValue(node *Node) (Value, error) {
	switch node.Kind {
	case NodeNumber:
		return Number(node.Int), nil
	case NodeString:
		return String(node.Text), nil
	case NodeSymbol:
		return Symbol(node.Text), nil
	case NodeList:
		return Value{}, errorf(EvalError, node.Pos, "list has no scalar value: %s", node)
	}
	panic("unknown node kind")
}

func (v Value) Int64() (int64, error) {
	if v.Kind != ValueNumber {
		return 0, fmt.Errorf("expected number, got %s", v.Kind)
	}
	return v.Int, nil
}

// Str returns the text of a string or symbol.
func (v Value) Str() (string, error) {
	switch v.Kind {
	case ValueString, ValueSymbol:
		return v.Text, nil
	}
	return "", fmt.Errorf("expected string, got %s", v.Kind)
}

// String is the display form: decimal for numbers, raw text otherwise.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatInt(v.Int, 10)
	case ValueString, ValueSymbol:
		return v.Text
	}
	panic("unknown value kind")
}

func (v Value) Node() *Node {
	switch v.Kind {
	case ValueNumber:
		return NumberNode(v.Int)
	case ValueString:
		return StringNode(v.Text)
	case ValueSymbol:
		return SymbolNode(v.Text)
	}
	panic("unknown value kind")
}
