package lisp

import "iter"

type Parser struct {
	stream TokenStream
}

func NewParser(stream TokenStream) *Parser {
	return &Parser{
		stream: stream,
	}
}

func (p *Parser) next() (*Token, error) {
	token, err := p.stream.Current()
	if err != nil {
		return nil, err
	}
	p.stream.Consume()
	return token, nil
}

// ParseExpression parses one parenthesized list.
// With expectOpenParen false, the opening paren is assumed to be consumed already.
func (p *Parser) ParseExpression(expectOpenParen bool) (*Node, error) {
	var listPos Pos
	if expectOpenParen {
		token, err := p.next()
		if err != nil {
			return nil, err
		}
		if token.Kind != TokenLeftParen {
			return nil, errorf(ParseError, token.Pos, "expected '(' got %s", token.Kind)
		}
		listPos = token.Pos
	}

	var children []*Node
	for {
		token, err := p.next()
		if err != nil {
			return nil, err
		}
		switch token.Kind {

		case TokenRightParen:
			return &Node{
				Kind:     NodeList,
				Children: children,
				Pos:      listPos,
			}, nil

		case TokenNumber:
			children = append(children, &Node{
				Kind: NodeNumber,
				Int:  token.Int,
				Pos:  token.Pos,
			})

		case TokenString:
			children = append(children, &Node{
				Kind: NodeString,
				Text: token.Text,
				Pos:  token.Pos,
			})

		case TokenSymbol:
			children = append(children, &Node{
				Kind: NodeSymbol,
				Text: token.Text,
				Pos:  token.Pos,
			})

		case TokenLeftParen:
			child, err := p.ParseExpression(false)
			if err != nil {
				return nil, err
			}
			child.Pos = token.Pos
			children = append(children, child)

		case TokenEOF:
			return nil, errorf(ParseError, token.Pos, "unterminated list")

		default:
			panic("unknown token kind")
		}
	}
}

// Expressions yields each top-level list until end of input, stopping at the first error.
func (p *Parser) Expressions() iter.Seq2[*Node, error] {
	return func(yield func(*Node, error) bool) {
		for {
			token, err := p.stream.Current()
			if err != nil {
				yield(nil, err)
				return
			}
			if token.Kind == TokenEOF {
				return
			}
			node, err := p.ParseExpression(true)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(node, nil) {
				return
			}
		}
	}
}

func Parse(name string, content string) (ret []*Node, _ error) {
	parser := NewParser(NewTokenizer(NewSource(name, content)))
	for node, err := range parser.Expressions() {
		if err != nil {
			return nil, err
		}
		ret = append(ret, node)
	}
	return ret, nil
}
