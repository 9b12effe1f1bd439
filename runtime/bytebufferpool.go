package ber

import (
	"encoding/hex"
	"sync"
)

// byteBuffer is a pooled, append-only scratch buffer used by the renderers.
type byteBuffer struct {
	b []byte
}

var bbPool = sync.Pool{New: func() any { return &byteBuffer{b: make([]byte, 0, 512)} }}

// getByteBuffer obtains a pooled buffer with zero length.
func getByteBuffer() *byteBuffer {
	bb := bbPool.Get().(*byteBuffer)
	bb.b = bb.b[:0]
	return bb
}

// putByteBuffer returns bb to the pool. Oversized buffers are dropped so a
// single large rendering does not pin its memory.
func putByteBuffer(bb *byteBuffer) {
	if cap(bb.b) > 64<<10 {
		return
	}
	bbPool.Put(bb)
}

// String returns a copy of the buffered bytes.
func (bb *byteBuffer) String() string { return string(bb.b) }

// extend grows the buffer by n bytes and returns the newly appended region
// for direct writes.
func (bb *byteBuffer) extend(n int) []byte {
	old := len(bb.b)
	bb.b = append(bb.b, make([]byte, n)...)
	return bb.b[old:]
}

func (bb *byteBuffer) writeString(s string) { bb.b = append(bb.b, s...) }

func (bb *byteBuffer) writeByte(c byte) { bb.b = append(bb.b, c) }

// writeHex appends data as h'..' in lower case hex.
func (bb *byteBuffer) writeHex(data []byte) {
	bb.writeString("h'")
	hex.Encode(bb.extend(hex.EncodedLen(len(data))), data)
	bb.writeByte('\'')
}
