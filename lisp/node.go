package lisp

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type NodeKind uint8

const (
	NodeNumber NodeKind = iota
	NodeString
	NodeSymbol
	NodeList
)

func (k NodeKind) String() string {
	switch k {
	case NodeNumber:
		return "number"
	case NodeString:
		return "string"
	case NodeSymbol:
		return "symbol"
	case NodeList:
		return "list"
	}
	panic("unknown node kind")
}

// Node is a syntax tree node.
// Int is set for NodeNumber, Text for NodeString and NodeSymbol, Children for NodeList.
type Node struct {
	Kind     NodeKind
	Int      int64
	Text     string
	Children []*Node
	Pos      Pos
}

func NumberNode(n int64) *Node {
	return &Node{Kind: NodeNumber, Int: n}
}

func StringNode(s string) *Node {
	return &Node{Kind: NodeString, Text: s}
}

func SymbolNode(s string) *Node {
	return &Node{Kind: NodeSymbol, Text: s}
}

func ListNode(children ...*Node) *Node {
	return &Node{Kind: NodeList, Children: children}
}

// String renders the node as source text that parses back to the same tree.
func (n *Node) String() string {
	switch n.Kind {
	case NodeNumber:
		return strconv.FormatInt(n.Int, 10)
	case NodeString:
		return `"` + n.Text + `"`
	case NodeSymbol:
		return n.Text
	case NodeList:
		return "(" + strings.Join(lo.Map(n.Children, func(child *Node, _ int) string {
			return child.String()
		}), " ") + ")"
	}
	panic("unknown node kind")
}

// Equal reports whether two trees have the same kinds, payloads and child order. Positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case NodeNumber:
		return n.Int == other.Int
	case NodeString, NodeSymbol:
		return n.Text == other.Text
	case NodeList:
		if len(n.Children) != len(other.Children) {
			return false
		}
		for i, child := range n.Children {
			if !child.Equal(other.Children[i]) {
				return false
			}
		}
		return true
	}
	panic("unknown node kind")
}
