package ber

// header consumes a tag octet accepted by match and the length that follows
// it, on a copy of c. It returns the copy positioned at the first content
// byte together with the content length, which is guaranteed to be no larger
// than the copy's remaining bytes.
func (c Cursor) header(match func(tag byte) bool) (Cursor, byte, uint, error) {
	tag, ok := c.TakeByte()
	if !ok || !match(tag) {
		return c, 0, 0, ErrNoMatch
	}
	length, err := c.ReadLength()
	if err != nil || length > c.remaining {
		return c, 0, 0, ErrNoMatch
	}
	return c, tag, length, nil
}

// The high-tag-number form (all tag number bits set) is not supported.
func isConstructed(tag byte) bool {
	return tag&maskClassConstructed == tagConstructedPrefix && tag&maskTagNumber != maskTagNumber
}

func isSequence(tag byte) bool    { return tag&maskUniversal == tagSequence }
func isSet(tag byte) bool         { return tag&maskUniversal == tagSet }
func isOID(tag byte) bool         { return tag == tagOID }
func isOctetString(tag byte) bool { return tag == tagOctetString }
func anyTag(byte) bool            { return true }

// Constructed enters a constructed context-specific element ([0] .. [30],
// tag octets 0xA0-0xBE) at the cursor position. The returned cursor spans
// exactly the element's contents and its Tag method reports the tag number.
// The receiver is not modified.
func (c Cursor) Constructed() (Cursor, error) {
	p, tag, length, err := c.header(isConstructed)
	if err != nil {
		return Cursor{}, err
	}
	child := p.child(length)
	child.tag = tag & maskTagNumber
	return child, nil
}

// Sequence enters the SEQUENCE at the cursor position. The returned cursor
// spans exactly the sequence contents. The receiver is not modified.
func (c Cursor) Sequence() (Cursor, error) {
	p, _, length, err := c.header(isSequence)
	if err != nil {
		return Cursor{}, err
	}
	return p.child(length), nil
}

// Set enters the SET at the cursor position. The returned cursor spans
// exactly the set contents. The receiver is not modified.
func (c Cursor) Set() (Cursor, error) {
	p, _, length, err := c.header(isSet)
	if err != nil {
		return Cursor{}, err
	}
	return p.child(length), nil
}

// OID returns the encoded contents of the OBJECT IDENTIFIER at the cursor
// position. The receiver is not modified.
func (c Cursor) OID() (Span, error) {
	p, _, length, err := c.header(isOID)
	if err != nil {
		return Span{}, err
	}
	return p.span(length), nil
}

// OctetString returns the contents of the OCTET STRING at the cursor
// position. The receiver is not modified.
func (c Cursor) OctetString() (Span, error) {
	p, _, length, err := c.header(isOctetString)
	if err != nil {
		return Span{}, err
	}
	return p.span(length), nil
}

// Next advances the cursor past the element at its position, whatever its
// tag, so that the following sibling can be inspected. If the element is
// truncated or no bytes remain, Next returns ErrNoMatch and the cursor is
// left unmodified.
func (c *Cursor) Next() error {
	p, _, length, err := c.header(anyTag)
	if err != nil {
		return err
	}
	p.Skip(length)
	*c = p
	return nil
}

// Element describes the framing of a single element of any tag.
type Element struct {
	Tag     byte // tag octet
	Offset  int  // offset of the tag octet relative to the root buffer
	Header  int  // size of the tag and length octets
	Content Span // element contents
}

// Constructed reports whether the constructed bit of the tag octet is set.
func (e Element) Constructed() bool { return e.Tag&maskConstructed != 0 }

// Len returns the total encoded size of the element.
func (e Element) Len() int { return e.Header + e.Content.Len() }

// Element reads the framing of the element at the cursor position without
// matching its tag. It applies the same length checks as the extractors.
// The receiver is not modified.
func (c Cursor) Element() (Element, error) {
	p, tag, length, err := c.header(anyTag)
	if err != nil {
		return Element{}, err
	}
	return Element{
		Tag:     tag,
		Offset:  c.pos,
		Header:  p.pos - c.pos,
		Content: p.span(length),
	}, nil
}
