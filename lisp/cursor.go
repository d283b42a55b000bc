package lisp

import "fmt"

// NotFound is returned by Cursor.Scan when the predicate holds up to the end of the buffer.
const NotFound = -1

// Cursor is a read position over an immutable rune buffer.
// Callers must check AtEnd before reading the current rune.
type Cursor struct {
	source *Source
	runes  []rune
	offset int
	line   int
	column int
}

func NewCursor(source *Source) *Cursor {
	return &Cursor{
		source: source,
		runes:  []rune(source.Content),
		line:   1,
		column: 1,
	}
}

func (c *Cursor) Len() int {
	return len(c.runes)
}

func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.runes)
}

func (c *Cursor) Pos() Pos {
	return Pos{
		Source: c.source,
		Offset: c.offset,
		Line:   c.line,
		Column: c.column,
	}
}

func (c *Cursor) Current() rune {
	if c.offset >= len(c.runes) {
		panic(fmt.Errorf("cursor read past end: offset %d, length %d", c.offset, len(c.runes)))
	}
	return c.runes[c.offset]
}

// Scan returns the index of the first rune at or after the current offset for which pred is false.
// The position is not moved.
func (c *Cursor) Scan(pred func(rune) bool) int {
	for i := c.offset; i < len(c.runes); i++ {
		if !pred(c.runes[i]) {
			return i
		}
	}
	return NotFound
}

// Slice returns the runes from the current offset up to end, exclusive.
func (c *Cursor) Slice(end int) string {
	if end < c.offset || end > len(c.runes) {
		panic(fmt.Errorf("cursor slice out of range: [%d:%d], length %d", c.offset, end, len(c.runes)))
	}
	return string(c.runes[c.offset:end])
}

func (c *Cursor) Advance() {
	if c.offset >= len(c.runes) {
		return
	}
	if c.runes[c.offset] == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	c.offset++
}

// Seek moves forward to offset, keeping line and column in step.
func (c *Cursor) Seek(offset int) {
	if offset < c.offset {
		panic(fmt.Errorf("cursor cannot seek backwards: %d < %d", offset, c.offset))
	}
	offset = min(offset, len(c.runes))
	for c.offset < offset {
		c.Advance()
	}
}
