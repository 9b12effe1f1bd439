// Package oid interprets the contents of ASN.1 OBJECT IDENTIFIER elements.
//
// The ber package hands out OIDs as raw content bytes; this package turns them
// into arcs, renders them in dotted notation and maps them to names.
package oid

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmpty       = errors.New("oid: empty encoding")
	ErrTruncated   = errors.New("oid: truncated arc")
	ErrNonMinimal  = errors.New("oid: non-minimal arc encoding")
	ErrOverflow    = errors.New("oid: arc overflows uint64")
	ErrInvalidText = errors.New("oid: invalid dotted notation")
)

// OID is a decoded object identifier.
type OID []uint64

// Decode decodes the contents octets of an OBJECT IDENTIFIER.
func Decode(b []byte) (OID, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	out := make(OID, 0, len(b)+1)
	for first := true; len(b) > 0; first = false {
		v, rest, err := readArc(b)
		if err != nil {
			return nil, err
		}
		b = rest
		if !first {
			out = append(out, v)
			continue
		}
		// the first subidentifier packs the first two arcs as 40*X+Y
		switch {
		case v < 40:
			out = append(out, 0, v)
		case v < 80:
			out = append(out, 1, v-40)
		default:
			out = append(out, 2, v-80)
		}
	}
	return out, nil
}

// readArc reads one base-128 subidentifier.
func readArc(b []byte) (uint64, []byte, error) {
	if b[0] == 0x80 {
		return 0, b, ErrNonMinimal
	}
	var v uint64
	for i, c := range b {
		if v > math.MaxUint64>>7 {
			return 0, b, ErrOverflow
		}
		v = v<<7 | uint64(c&0x7F)
		if c&0x80 == 0 {
			return v, b[i+1:], nil
		}
	}
	return 0, b, ErrTruncated
}

// AppendEncode appends the contents octets of o to b.
func AppendEncode(b []byte, o OID) ([]byte, error) {
	if err := o.check(); err != nil {
		return b, err
	}
	first := o[0]*40 + o[1]
	if first < o[1] {
		return b, ErrOverflow
	}
	b = appendArc(b, first)
	for _, v := range o[2:] {
		b = appendArc(b, v)
	}
	return b, nil
}

func appendArc(b []byte, v uint64) []byte {
	var tmp [10]byte
	i := len(tmp) - 1
	tmp[i] = byte(v & 0x7F)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		tmp[i] = byte(v&0x7F) | 0x80
	}
	return append(b, tmp[i:]...)
}

func (o OID) check() error {
	if len(o) < 2 || o[0] > 2 || (o[0] < 2 && o[1] >= 40) {
		return ErrInvalidText
	}
	return nil
}

// Parse parses dotted notation such as "1.2.840.113549".
func Parse(s string) (OID, error) {
	parts := strings.Split(s, ".")
	out := make(OID, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, ErrInvalidText
		}
		out = append(out, v)
	}
	if err := out.check(); err != nil {
		return nil, err
	}
	return out, nil
}

// MustParse is like Parse but panics on error. It is meant for
// package-level tables of well-known identifiers.
func MustParse(s string) OID {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return o
}

// String returns the dotted notation of o.
func (o OID) String() string {
	var sb strings.Builder
	for i, v := range o {
		if i != 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	return sb.String()
}

// Equal reports whether o and other have the same arcs.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether o lies under the arc prefix.
func (o OID) HasPrefix(prefix OID) bool {
	return len(o) >= len(prefix) && o[:len(prefix)].Equal(prefix)
}
