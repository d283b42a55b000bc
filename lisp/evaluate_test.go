package lisp

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func testLibrary() Library {
	return Library{
		"add": func(args []Value) (*Node, error) {
			if len(args) < 2 {
				return nil, fmt.Errorf("invalid amount of arguments passed to (add x y ...)")
			}
			var total int64
			for _, arg := range args {
				n, err := arg.Int64()
				if err != nil {
					return nil, err
				}
				total += n
			}
			return NumberNode(total), nil
		},
		"sub": func(args []Value) (*Node, error) {
			if len(args) < 2 {
				return nil, fmt.Errorf("invalid amount of arguments passed to (sub x y ...)")
			}
			total, err := args[0].Int64()
			if err != nil {
				return nil, err
			}
			for _, arg := range args[1:] {
				n, err := arg.Int64()
				if err != nil {
					return nil, err
				}
				total -= n
			}
			return NumberNode(total), nil
		},
		"concat": func(args []Value) (*Node, error) {
			var sb strings.Builder
			for _, arg := range args {
				s, err := arg.Str()
				if err != nil {
					return nil, err
				}
				sb.WriteString(s)
			}
			return StringNode(sb.String()), nil
		},
		"list": func(args []Value) (*Node, error) {
			node := ListNode()
			for _, arg := range args {
				node.Children = append(node.Children, arg.Node())
			}
			return node, nil
		},
		"nothing": func(args []Value) (*Node, error) {
			return nil, nil
		},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected *Node
	}{
		{"(add 2 3)", NumberNode(5)},
		{"(sub 10 3 2)", NumberNode(5)},
		{`(concat "a" "b" "c")`, StringNode("abc")},
		{"(add (sub 10 4) (add 1 1 1))", NumberNode(9)},
		{`(concat "x" sym)`, StringNode("xsym")},
		{`("add" 1 2)`, NumberNode(3)},
		{"((concat ad d) 40 2)", NumberNode(42)},
		{"(list 1 b)", ListNode(NumberNode(1), SymbolNode("b"))},
		{"(add 1 2)\n(sub 1 2)", NumberNode(-1)},
	}
	interpreter := NewInterpreter(testLibrary())
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, err := interpreter.EvalSource("test", test.input)
			if err != nil {
				t.Fatal(err)
			}
			if !result.Equal(test.expected) {
				t.Fatalf("got %v", result)
			}
		})
	}
}

func TestEvaluateLeaf(t *testing.T) {
	for _, node := range []*Node{
		NumberNode(1),
		StringNode("s"),
		SymbolNode("sym"),
	} {
		result, err := Evaluate(node, nil)
		if err != nil {
			t.Fatal(err)
		}
		if result != node {
			t.Fatalf("got %v", result)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  *Error
		msg   string
	}{
		{"(nope 1 2)", ErrEval, "unknown function: nope"},
		{"(add 1)", ErrEval, "add: invalid amount of arguments"},
		{`(add 1 "x")`, ErrEval, "expected number, got string"},
		{"()", ErrEval, "cannot evaluate empty list"},
		{"(add (()) 1)", ErrEval, "cannot evaluate empty list"},
		{"(1 2)", ErrEval, "function name must be a symbol, got number"},
		{"(add (list 1 2) 3)", ErrEval, "list has no scalar value"},
		{"(add 1 2) (nope)", ErrEval, "unknown function: nope"},
		{"(nothing)", ErrEval, "nothing returned no value"},
		{"(add 1 2", ErrParse, "unterminated list"},
		{"", ErrParse, "expected '(' got end of input"},
	}
	interpreter := NewInterpreter(testLibrary())
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := interpreter.EvalSource("test", test.input)
			if err == nil {
				t.Fatal("should error")
			}
			if !errors.Is(err, test.kind) {
				t.Fatalf("got %v", err)
			}
			if !strings.Contains(err.Error(), test.msg) {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestEvaluateStopsAtFirstError(t *testing.T) {
	calls := 0
	lib := testLibrary()
	lib["count"] = func(args []Value) (*Node, error) {
		calls++
		return NumberNode(int64(calls)), nil
	}
	_, err := NewInterpreter(lib).EvalSource("test", "(count) (nope) (count)")
	if err == nil {
		t.Fatal("should error")
	}
	if calls != 1 {
		t.Fatalf("got %v", calls)
	}
}

func TestToValue(t *testing.T) {
	v, err := ToValue(NumberNode(3))
	if err != nil {
		t.Fatal(err)
	}
	if v != Number(3) {
		t.Fatalf("got %v", v)
	}
	v, err = ToValue(SymbolNode("x"))
	if err != nil {
		t.Fatal(err)
	}
	if v != Symbol("x") {
		t.Fatalf("got %v", v)
	}
	// lists are rejected rather than narrowed to zero
	_, err = ToValue(ListNode(NumberNode(1)))
	if !errors.Is(err, ErrEval) {
		t.Fatalf("got %v", err)
	}
}
