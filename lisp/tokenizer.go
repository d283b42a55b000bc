package lisp

import (
	"iter"
	"strconv"
)

type Tokenizer struct {
	cursor  *Cursor
	current *Token
}

var _ TokenStream = new(Tokenizer)

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		cursor: NewCursor(source),
	}
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) Next() (*Token, error) {
	token, err := t.Current()
	if err != nil {
		return nil, err
	}
	t.Consume()
	return token, nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	c := t.cursor
	for !c.AtEnd() {
		r := c.Current()
		startPos := c.Pos()

		switch {

		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			c.Advance()

		case r == '#':
			t.skipComment()

		case r == '(':
			c.Advance()
			return &Token{Kind: TokenLeftParen, Pos: startPos}, nil

		case r == ')':
			c.Advance()
			return &Token{Kind: TokenRightParen, Pos: startPos}, nil

		case r == '"':
			return t.parseString(startPos)

		case r == '-' || isDigit(r):
			return t.parseNumber(startPos)

		case isLetter(r) || r == '_':
			return t.parseSymbol(startPos)

		default:
			return nil, errorf(LexError, startPos, "unrecognized character %q", r)
		}
	}

	return &Token{Kind: TokenEOF, Pos: c.Pos()}, nil
}

func (t *Tokenizer) skipComment() {
	end := t.cursor.Scan(func(r rune) bool {
		return r != '\n'
	})
	if end == NotFound {
		end = t.cursor.Len()
	}
	t.cursor.Seek(end)
}

func (t *Tokenizer) parseString(startPos Pos) (*Token, error) {
	c := t.cursor
	c.Advance() // opening quote
	end := c.Scan(func(r rune) bool {
		return r != '"'
	})
	if end == NotFound {
		return nil, errorf(LexError, startPos, "unterminated string")
	}
	text := c.Slice(end)
	c.Seek(end)
	c.Advance() // closing quote
	return &Token{
		Kind: TokenString,
		Text: text,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber(startPos Pos) (*Token, error) {
	c := t.cursor
	negative := false
	if c.Current() == '-' {
		negative = true
		c.Advance()
	}
	end := c.Scan(isDigit)
	if end == NotFound {
		end = c.Len()
	}
	digits := c.Slice(end)
	if digits == "" {
		return nil, errorf(LexError, startPos, "malformed number: expected digit after '-'")
	}
	text := digits
	if negative {
		text = "-" + digits
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errorf(LexError, startPos, "malformed number %s: out of range", text)
	}
	c.Seek(end)
	return &Token{
		Kind: TokenNumber,
		Text: text,
		Int:  n,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseSymbol(startPos Pos) (*Token, error) {
	c := t.cursor
	end := c.Scan(func(r rune) bool {
		return isLetter(r) || isDigit(r) || r == '_'
	})
	if end == NotFound {
		end = c.Len()
	}
	text := c.Slice(end)
	c.Seek(end)
	return &Token{
		Kind: TokenSymbol,
		Text: text,
		Pos:  startPos,
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// Tokens yields every token of source, ending with the EOF token or the first error.
func Tokens(source *Source) iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		tokenizer := NewTokenizer(source)
		for {
			token, err := tokenizer.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(token, nil) {
				return
			}
			if token.Kind == TokenEOF {
				return
			}
		}
	}
}
