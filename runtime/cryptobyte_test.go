package ber_test

import (
	"bytes"
	encoding_asn1 "encoding/asn1"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/synadia-labs/ber.go/oid"
	ber "github.com/synadia-labs/ber.go/runtime"
)

var (
	oidSignedData = encoding_asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
	oidSHA256     = encoding_asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
)

// buildSignedBlob builds [0] { SEQUENCE { OID signedData, SET { OCTET STRING * n } } }
// with a digest large enough to force long-form lengths.
func buildSignedBlob(t testing.TB, n int) ([]byte, [][]byte) {
	t.Helper()
	var digests [][]byte
	for i := 0; i < n; i++ {
		digests = append(digests, bytes.Repeat([]byte{byte(i)}, 200))
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidSignedData)
			b.AddASN1(asn1.SET, func(b *cryptobyte.Builder) {
				for _, d := range digests {
					b.AddASN1OctetString(d)
				}
			})
		})
	})
	out, err := b.Bytes()
	if err != nil {
		t.Fatalf("cryptobyte build: %v", err)
	}
	return out, digests
}

func TestDecodeCryptobyteFixture(t *testing.T) {
	blob, digests := buildSignedBlob(t, 3)

	app, err := ber.NewCursor(blob).Constructed()
	if err != nil {
		t.Fatalf("Constructed error: %v", err)
	}
	if app.Tag() != 0 {
		t.Fatalf("tag number = %d, want 0", app.Tag())
	}
	seq, err := app.Sequence()
	if err != nil {
		t.Fatalf("Sequence error: %v", err)
	}
	span, err := seq.OID()
	if err != nil {
		t.Fatalf("OID error: %v", err)
	}
	id, err := oid.Decode(span.Data)
	if err != nil {
		t.Fatalf("oid.Decode error: %v", err)
	}
	if id.String() != oidSignedData.String() {
		t.Fatalf("oid = %s, want %s", id, oidSignedData)
	}
	if err := seq.Next(); err != nil {
		t.Fatalf("Next error: %v", err)
	}
	set, err := seq.Set()
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	for i, want := range digests {
		got, err := set.OctetString()
		if err != nil {
			t.Fatalf("digest %d: OctetString error: %v", i, err)
		}
		if !bytes.Equal(got.Data, want) {
			t.Fatalf("digest %d mismatch", i)
		}
		if !bytes.Equal(blob[got.Offset:got.End()], want) {
			t.Fatalf("digest %d: offset %d does not address the root buffer", i, got.Offset)
		}
		if err := set.Next(); err != nil {
			t.Fatalf("digest %d: Next error: %v", i, err)
		}
	}
	if !set.Empty() {
		t.Fatalf("set has %d trailing bytes", set.Remaining())
	}
	if err := ber.ValidateDocument(blob); err != nil {
		t.Fatalf("ValidateDocument error: %v", err)
	}
}

func TestOIDMatchesCryptobyteEncoding(t *testing.T) {
	for _, want := range []encoding_asn1.ObjectIdentifier{oidSignedData, oidSHA256, {2, 999, 3}} {
		var b cryptobyte.Builder
		b.AddASN1ObjectIdentifier(want)
		enc, err := b.Bytes()
		if err != nil {
			t.Fatalf("build %s: %v", want, err)
		}
		span, err := ber.NewCursor(enc).OID()
		if err != nil {
			t.Fatalf("%s: OID error: %v", want, err)
		}
		got, err := oid.Decode(span.Data)
		if err != nil || got.String() != want.String() {
			t.Fatalf("decoded %s (%v), want %s", got, err, want)
		}
	}
}

// headerFitsCounter reports whether the length field at b[1] has fewer
// octets than the native counter is wide.
func headerFitsCounter(b []byte) bool {
	return len(b) > 1 && (b[1]&0x80 == 0 || int(b[1]&0x7f) < ber.LengthWidth)
}

// FuzzAgreesWithCryptobyte checks that everything cryptobyte accepts as a
// DER OCTET STRING, OID, SEQUENCE or SET is accepted with the same contents.
// The cursor also accepts non-minimal BER lengths, so the converse does not
// hold.
func FuzzAgreesWithCryptobyte(f *testing.F) {
	blob, _ := buildSignedBlob(f, 2)
	f.Add(blob)
	f.Add([]byte{0x04, 0x81, 0x80})
	f.Add([]byte{0x06, 0x03, 0x2a, 0x86, 0x48})
	f.Add([]byte{0x31, 0x03, 0x04, 0x01, 0xaa})

	f.Fuzz(func(t *testing.T, data []byte) {
		if !headerFitsCounter(data) {
			return
		}
		c := ber.NewCursor(data)
		leaves := []struct {
			tag asn1.Tag
			get func() (ber.Span, error)
		}{
			{asn1.OCTET_STRING, c.OctetString},
			{asn1.OBJECT_IDENTIFIER, c.OID},
		}
		for _, l := range leaves {
			var want cryptobyte.String
			s := cryptobyte.String(data)
			if !s.ReadASN1(&want, l.tag) {
				continue
			}
			got, err := l.get()
			if err != nil {
				t.Fatalf("tag %#x: cryptobyte accepted, cursor rejected: %v", l.tag, err)
			}
			if !bytes.Equal(got.Data, want) {
				t.Fatalf("tag %#x: contents differ", l.tag)
			}
		}

		groups := []struct {
			tag asn1.Tag
			get func() (ber.Cursor, error)
		}{
			{asn1.SEQUENCE, c.Sequence},
			{asn1.SET, c.Set},
		}
		for _, g := range groups {
			var want cryptobyte.String
			s := cryptobyte.String(data)
			if !s.ReadASN1(&want, g.tag) {
				continue
			}
			got, err := g.get()
			if err != nil {
				t.Fatalf("tag %#x: cryptobyte accepted, cursor rejected: %v", g.tag, err)
			}
			if !bytes.Equal(got.Bytes(), want) {
				t.Fatalf("tag %#x: contents differ", g.tag)
			}
		}
	})
}
