package ber

// Kind reports which extractor matches the element at the cursor position,
// or InvalidKind if the element is not well framed.
func (c Cursor) Kind() Kind {
	v, err := classify(c)
	if err != nil {
		return InvalidKind
	}
	return v.Kind
}

// NextKind returns the kind of the first element in b.
func NextKind(b []byte) Kind {
	return NewCursor(b).Kind()
}
