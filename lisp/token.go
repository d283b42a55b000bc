package lisp

type Token struct {
	Kind TokenKind
	Text string
	Int  int64
	Pos  Pos
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenSymbol
	TokenString
	TokenNumber
	TokenLeftParen
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenSymbol:
		return "symbol"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	}
	panic("unknown token kind")
}
