package ber

import (
	"strconv"

	"github.com/synadia-labs/ber.go/oid"
)

// DiagBytes renders the first element in b in a compact diagnostic notation
// and returns the remaining bytes. For example
//
//	[0] { SEQUENCE { OID 1.2.840.113549.1.7.2, OCTET STRING h'2a' } }
//
// OIDs whose contents are not a valid arc encoding render as OID h'..'.
// Elements outside the supported subset render opaquely as tag(0x02) h'..'.
func DiagBytes(b []byte) (string, []byte, error) {
	return Walker{}.DiagBytes(b)
}

// DiagBytes is like the package-level DiagBytes but nests no deeper than
// w.MaxDepth.
func (w Walker) DiagBytes(b []byte) (string, []byte, error) {
	c := NewCursor(b)
	el, err := c.Element()
	if err != nil {
		return "", b, err
	}
	bb := getByteBuffer()
	defer putByteBuffer(bb)
	if err := diagOne(bb, c, 0, w.limit()); err != nil {
		return "", b, err
	}
	return bb.String(), b[el.Len():], nil
}

// DiagDocument renders every element in b, one per line.
func DiagDocument(b []byte) (string, error) {
	return Walker{}.DiagDocument(b)
}

// DiagDocument is like the package-level DiagDocument but nests no deeper
// than w.MaxDepth.
func (w Walker) DiagDocument(b []byte) (string, error) {
	limit := w.limit()
	bb := getByteBuffer()
	defer putByteBuffer(bb)
	i := 0
	err := NewCursor(b).ForEach(func(el Cursor) error {
		if i > 0 {
			bb.writeByte('\n')
		}
		if err := diagOne(bb, el, 0, limit); err != nil {
			return WrapError(err, i)
		}
		i++
		return nil
	})
	if err != nil {
		return "", err
	}
	return bb.String(), nil
}

// diagOne renders the element at c. As in walk, an element nested limit or
// more levels deep is an error.
func diagOne(bb *byteBuffer, c Cursor, depth, limit int) error {
	if depth >= limit {
		return ErrMaxDepthExceeded
	}
	v, err := classify(c)
	if err != nil {
		return err
	}
	data := v.Element.Content.Data
	switch v.Kind {
	case KindApplication:
		bb.writeByte('[')
		bb.writeString(strconv.Itoa(v.Contents.Tag()))
		bb.writeString("] ")
		return diagChildren(bb, v.Contents, depth, limit)
	case KindSequence:
		bb.writeString("SEQUENCE ")
		return diagChildren(bb, v.Contents, depth, limit)
	case KindSet:
		bb.writeString("SET ")
		return diagChildren(bb, v.Contents, depth, limit)
	case KindOID:
		bb.writeString("OID ")
		if id, err := oid.Decode(data); err == nil {
			bb.writeString(id.String())
		} else {
			bb.writeHex(data)
		}
	case KindOctetString:
		bb.writeString("OCTET STRING ")
		bb.writeHex(data)
	default:
		bb.writeString("tag(0x")
		bb.writeString(strconv.FormatUint(uint64(v.Element.Tag)>>4, 16))
		bb.writeString(strconv.FormatUint(uint64(v.Element.Tag)&0xF, 16))
		bb.writeString(") ")
		bb.writeHex(data)
	}
	return nil
}

func diagChildren(bb *byteBuffer, c Cursor, depth, limit int) error {
	if c.Empty() {
		bb.writeString("{}")
		return nil
	}
	bb.writeString("{ ")
	i := 0
	err := c.ForEach(func(el Cursor) error {
		if i > 0 {
			bb.writeString(", ")
		}
		if err := diagOne(bb, el, depth+1, limit); err != nil {
			return WrapError(err, i)
		}
		i++
		return nil
	})
	if err != nil {
		return err
	}
	bb.writeString(" }")
	return nil
}
