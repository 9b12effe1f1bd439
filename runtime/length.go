package ber

// ReadLength decodes an ASN.1 length field at the cursor position and
// consumes it.
//
// Short form lengths (0-127) are a single octet. In the long form the low
// seven bits of the first octet give the count of big-endian length octets
// that follow. Counts as wide as the native length counter, or wider, are
// rejected before any octet is accumulated: accumulating them could wrap the
// counter and yield a length far smaller than the one encoded.
//
// A lone 0x80 (the BER indefinite-length marker) decodes as length 0.
//
// ReadLength returns ErrNoMatch if the field is truncated or too wide, in
// which case the cursor is left unmodified.
func (c *Cursor) ReadLength() (uint, error) {
	return c.readLength(lengthWidth)
}

// readLength is ReadLength with an explicit counter width in bytes.
func (c *Cursor) readLength(width int) (uint, error) {
	p := *c
	l, ok := p.TakeByte()
	if !ok {
		return 0, ErrNoMatch
	}
	if l&lengthLongForm == 0 {
		*c = p
		return uint(l), nil
	}
	n := int(l & lengthOctets)
	if n >= width {
		return 0, ErrNoMatch
	}
	var length uint
	for i := 0; i < n; i++ {
		o, ok := p.TakeByte()
		if !ok {
			return 0, ErrNoMatch
		}
		length = length<<8 | uint(o)
	}
	*c = p
	return length, nil
}
