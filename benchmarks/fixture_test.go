package benchmarks

import (
	"bytes"
	encoding_asn1 "encoding/asn1"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var oidSignedData = encoding_asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}

// signedBlob mirrors the shape of a signed package header:
//
//	[0] { SEQUENCE { OID signedData, SET { OCTET STRING * n } } }
func signedBlob(tb testing.TB, n, size int) []byte {
	tb.Helper()
	var b cryptobyte.Builder
	b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidSignedData)
			b.AddASN1(asn1.SET, func(b *cryptobyte.Builder) {
				for i := 0; i < n; i++ {
					b.AddASN1OctetString(bytes.Repeat([]byte{byte(i)}, size))
				}
			})
		})
	})
	out, err := b.Bytes()
	if err != nil {
		tb.Fatalf("cryptobyte build: %v", err)
	}
	return out
}

// signedSet is the encoding/asn1 view of the SEQUENCE inside signedBlob.
type signedSet struct {
	Type    encoding_asn1.ObjectIdentifier
	Digests [][]byte `asn1:"set"`
}
