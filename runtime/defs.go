// Package ber is a minimal, bounds-safe decoder for a subset of ASN.1 BER/DER.
//
// It understands constructed application tags, SEQUENCE, SET, OBJECT IDENTIFIER
// and OCTET STRING, and extracts views of an untrusted, caller-supplied byte
// slice without ever reading past its bounds. Nothing is copied: every Cursor
// and Span borrows from the slice passed to NewCursor.
//
// The package is organized in three layers:
//   - Cursor: PeekByte, TakeByte and Skip over a live remaining-byte counter.
//   - ReadLength: short- and long-form length decoding on top of the Cursor.
//   - Extractors: Constructed, Sequence, Set, OID, OctetString and Next.
//
// A typical caller peels an application wrapper and walks its children:
//
//	root := ber.NewCursor(blob)
//	app, err := root.Constructed()
//	seq, err := app.Sequence()
//	for {
//		if oid, err := seq.OID(); err == nil {
//			// inspect oid.Data
//		}
//		if seq.Next() != nil {
//			break
//		}
//	}
//
// Every failure is reported as ErrNoMatch, so a position can be probed against
// several candidate tags in turn (CHOICE style).
package ber

import "math/bits"

const (
	// DefaultMaxDepth bounds the nesting depth followed by Walk, ValidateBytes
	// and DiagBytes. Each nesting level costs at least two input bytes, so the
	// limit only matters for adversarial inputs.
	DefaultMaxDepth = 1024

	// lengthWidth is the byte width of the native length counter. Long-form
	// lengths with this many (or more) octets are rejected.
	lengthWidth = bits.UintSize / 8
)

// Tag octets matched by the extractors.
const (
	tagOctetString = 0x04
	tagOID         = 0x06
	tagSequence    = 0x30
	tagSet         = 0x31

	// class (application/context) + constructed bit
	maskClassConstructed = 0xE0
	maskConstructed      = 0x20
	tagConstructedPrefix = 0xA0
	maskTagNumber        = 0x1F
	// everything but the top class bit
	maskUniversal = 0x7F

	lengthLongForm = 0x80
	lengthOctets   = 0x7F
)

// Kind identifies which extractor matched an element.
type Kind byte

const (
	InvalidKind Kind = iota

	KindApplication // [n] constructed wrapper
	KindSequence    // SEQUENCE
	KindSet         // SET
	KindOID         // OBJECT IDENTIFIER
	KindOctetString // OCTET STRING
	KindOther       // any other well-framed element, kept opaque
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindOID:
		return "oid"
	case KindOctetString:
		return "octet-string"
	case KindOther:
		return "other"
	default:
		return "<invalid>"
	}
}

// Constructed reports whether elements of this kind contain nested elements.
func (k Kind) Constructed() bool {
	return k == KindApplication || k == KindSequence || k == KindSet
}
