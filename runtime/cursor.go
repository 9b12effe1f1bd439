package ber

// Cursor is a bounds-tracked read position over a caller-owned byte slice.
//
// A Cursor never owns or copies bytes. Cursors are values: copying one forks
// an independent view, and a child returned by an extractor never refers back
// to its parent. The zero Cursor is empty.
type Cursor struct {
	buf       []byte // root buffer, shared by every cursor derived from it
	pos       int    // read position within buf
	remaining uint   // bytes still available to this view; pos+remaining <= len(buf)
	tag       uint8  // application tag number, set by Constructed
}

// NewCursor returns a root Cursor spanning all of b.
func NewCursor(b []byte) Cursor {
	return Cursor{buf: b, remaining: uint(len(b))}
}

// PeekByte returns the next byte without consuming it.
// ok is false if no bytes remain.
func (c *Cursor) PeekByte() (v byte, ok bool) {
	if c.remaining == 0 {
		return 0, false
	}
	return c.buf[c.pos], true
}

// TakeByte returns the next byte and consumes it.
// ok is false if no bytes remain.
func (c *Cursor) TakeByte() (v byte, ok bool) {
	if c.remaining == 0 {
		return 0, false
	}
	v = c.buf[c.pos]
	c.pos++
	c.remaining--
	return v, true
}

// Skip advances the cursor by exactly n bytes. If fewer than n bytes remain
// it returns false and leaves the cursor unmodified.
func (c *Cursor) Skip(n uint) bool {
	if n > c.remaining {
		return false
	}
	c.pos += int(n)
	c.remaining -= n
	return true
}

// Remaining returns the number of bytes still available to the cursor.
func (c Cursor) Remaining() uint { return c.remaining }

// Empty reports whether no bytes remain.
func (c Cursor) Empty() bool { return c.remaining == 0 }

// Offset returns the read position relative to the start of the root buffer.
func (c Cursor) Offset() int { return c.pos }

// Tag returns the application tag number (0-31) of a cursor produced by
// Constructed. It is zero for every other cursor.
func (c Cursor) Tag() int { return int(c.tag) }

// Bytes returns the bytes remaining to the cursor. The result aliases the
// root buffer and is capped so that appending to it cannot overwrite bytes
// outside the view.
func (c Cursor) Bytes() []byte {
	end := c.pos + int(c.remaining)
	return c.buf[c.pos:end:end]
}

// child returns a cursor over the next n bytes of c. The caller must have
// checked n <= c.remaining.
func (c Cursor) child(n uint) Cursor {
	return Cursor{buf: c.buf, pos: c.pos, remaining: n}
}

// span returns the next n bytes of c as a Span. The caller must have checked
// n <= c.remaining.
func (c Cursor) span(n uint) Span {
	end := c.pos + int(n)
	return Span{Offset: c.pos, Data: c.buf[c.pos:end:end]}
}

// Span is a borrowed view of a primitive element's contents.
type Span struct {
	// Offset of the first content byte relative to the root buffer.
	Offset int
	// Data aliases the root buffer. Callers must not modify it.
	Data []byte
}

// Len returns the number of content bytes.
func (s Span) Len() int { return len(s.Data) }

// End returns the offset just past the last content byte.
func (s Span) End() int { return s.Offset + len(s.Data) }
