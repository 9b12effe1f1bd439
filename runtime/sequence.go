package ber

// ForEach calls fn with a cursor positioned at each element remaining to c,
// in order, advancing with Next. The cursor passed to fn spans the element
// and every sibling after it, so extractors can be applied to it directly.
//
// ForEach stops at the first error returned by fn, or with ErrNoMatch if an
// element is truncated. The receiver is not modified.
func (c Cursor) ForEach(fn func(el Cursor) error) error {
	for !c.Empty() {
		if err := fn(c); err != nil {
			return err
		}
		if err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Split returns one cursor per element remaining to c. Each returned cursor
// spans exactly one element, header included.
func (c Cursor) Split() (out []Cursor, err error) {
	err = c.ForEach(func(el Cursor) error {
		next := el
		if err := next.Next(); err != nil {
			return err
		}
		out = append(out, el.child(el.remaining-next.remaining))
		return nil
	})
	return out, err
}

// Count returns the number of elements remaining to c.
func (c Cursor) Count() (n int, err error) {
	err = c.ForEach(func(Cursor) error { n++; return nil })
	return n, err
}
