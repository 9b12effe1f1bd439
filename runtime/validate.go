package ber

import "github.com/synadia-labs/ber.go/oid"

// ValidateBytes validates that the first element in b is well-formed and
// returns the bytes after it.
// Checks performed:
// - every element is framed within its parent's contents
// - application, SEQUENCE and SET contents consist only of whole elements
// - OBJECT IDENTIFIER contents are a valid arc encoding
func ValidateBytes(b []byte) (rest []byte, err error) {
	return Walker{}.ValidateBytes(b)
}

// ValidateBytes is like the package-level ValidateBytes but nests no deeper
// than w.MaxDepth.
func (w Walker) ValidateBytes(b []byte) (rest []byte, err error) {
	c := NewCursor(b)
	el, err := c.Element()
	if err != nil {
		return b, err
	}
	one := c.child(uint(el.Len()))
	if err := w.Walk(one, validateVisit); err != nil {
		return b, err
	}
	return b[el.Len():], nil
}

// ValidateDocument validates all elements in b until input is exhausted.
func ValidateDocument(b []byte) error {
	return Walker{}.ValidateDocument(b)
}

// ValidateDocument is like the package-level ValidateDocument but nests no
// deeper than w.MaxDepth.
func (w Walker) ValidateDocument(b []byte) error {
	return w.Walk(NewCursor(b), validateVisit)
}

func validateVisit(v Visit) error {
	if v.Kind != KindOID {
		return nil
	}
	if _, err := oid.Decode(v.Element.Content.Data); err != nil {
		return err
	}
	return nil
}
