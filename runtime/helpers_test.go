package ber_test

import (
	"encoding/hex"
	"testing"

	ber "github.com/synadia-labs/ber.go/runtime"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// sameCursor reports whether a and b are the same view. Cursors are not
// comparable with == because they hold a slice.
func sameCursor(a, b ber.Cursor) bool {
	return a.Offset() == b.Offset() && a.Remaining() == b.Remaining() && a.Tag() == b.Tag()
}
