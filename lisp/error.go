package lisp

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind uint8

const (
	LexError ErrorKind = iota + 1
	ParseError
	EvalError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case EvalError:
		return "eval error"
	}
	return "error"
}

var (
	ErrLex   = &Error{Kind: LexError}
	ErrParse = &Error{Kind: ParseError}
	ErrEval  = &Error{Kind: EvalError}
)

type Error struct {
	Kind ErrorKind
	Msg  string
	Pos  Pos
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Pos.Source == nil {
		return msg
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", msg, e.Pos.Source.Name, e.Pos.Line, e.Pos.Column)

	lines := e.Pos.Source.Lines
	idx := e.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		runes := []rune(line)
		col := e.Pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				w := runeWidth(r)
				for k := 0; k < w; k++ {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels ErrLex, ErrParse and ErrEval.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == ErrLex || t == ErrParse || t == ErrEval {
		return e.Kind == t.Kind
	}
	return e == t
}

func errorf(kind ErrorKind, pos Pos, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Pos:  pos,
	}
}

// WithPos attaches pos to err as an eval error, unless err is already a positioned language error.
func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Pos.Source != nil {
			return err
		}
		ret := *e
		ret.Pos = pos
		return &ret
	}
	return &Error{
		Kind: EvalError,
		Pos:  pos,
		Err:  err,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
