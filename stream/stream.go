// Package stream defines the minimal read-cursor and append-sink
// capability set the parser and the serializers are built on, together
// with in-memory implementations of both.
package stream

import (
	"bytes"
	"unicode/utf8"
)

// Source is a forward-only cursor over a sequence of Unicode scalar
// values.
type Source interface {
	// Current returns the character under the cursor, or false when
	// the input is exhausted.
	Current() (rune, bool)
	// Next advances the cursor by one character. Past the end it is a
	// no-op.
	Next()
	// More reports whether unread input remains.
	More() bool
}

// Destination is an append-only byte sink. There is no random access
// and no overwrite.
type Destination interface {
	WriteByte(c byte)
	WriteString(s string)
}

// Reader is an in-memory Source decoding UTF-8 from a byte slice one
// rune at a time.
type Reader struct {
	input []byte
	pos   int
	ch    rune
	width int
}

var _ Source = (*Reader)(nil)

// NewReader returns a Reader positioned at the first character of
// data.
func NewReader(data []byte) *Reader {
	r := &Reader{input: data}
	r.decode()
	return r
}

// NewReaderString is a convenience wrapper around NewReader.
func NewReaderString(s string) *Reader {
	return NewReader([]byte(s))
}

func (r *Reader) decode() {
	if r.pos >= len(r.input) {
		r.width = 0
		return
	}
	r.ch, r.width = utf8.DecodeRune(r.input[r.pos:])
}

func (r *Reader) Current() (rune, bool) {
	if r.pos >= len(r.input) {
		return 0, false
	}
	return r.ch, true
}

func (r *Reader) Next() {
	if r.pos >= len(r.input) {
		return
	}
	r.pos += r.width
	r.decode()
}

func (r *Reader) More() bool {
	return r.pos < len(r.input)
}

// Buffer is an in-memory Destination.
type Buffer struct {
	buf bytes.Buffer
}

var _ Destination = (*Buffer)(nil)

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) WriteByte(c byte) {
	b.buf.WriteByte(c)
}

func (b *Buffer) WriteString(s string) {
	b.buf.WriteString(s)
}

// String returns the accumulated bytes as a string.
func (b *Buffer) String() string { return b.buf.String() }

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int { return b.buf.Len() }

// Reset truncates the buffer to empty.
func (b *Buffer) Reset() { b.buf.Reset() }
