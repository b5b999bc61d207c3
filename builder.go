package jsonbuild

// Builder accumulates JSON text in an owned byte buffer. The zero value is
// ready to use. needComma tracks whether the next member written into the
// innermost active scope must be preceded by a separator; it is a single
// builder-wide flag, so correctness relies on open/close calls being paired
// correctly by the caller.
type Builder struct {
	buf       []byte
	needComma bool
}

// NewBuilder returns a builder with capacity preallocated, for callers that
// know the rough size of the documents they emit.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Len reports the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Cap reports the capacity of the underlying buffer.
func (b *Builder) Cap() int {
	return cap(b.buf)
}

// Clear resets the builder for reuse without releasing capacity.
func (b *Builder) Clear() {
	b.buf = b.buf[:0]
	b.needComma = false
}

// Reserve guarantees space for at least n more bytes without reallocation.
// This is the only operation that grows the buffer; the write paths reserve
// up front and then append into already-available capacity.
func (b *Builder) Reserve(n int) {
	if cap(b.buf)-len(b.buf) < n {
		b.grow(n)
	}
}

func (b *Builder) grow(n int) {
	c := 2 * cap(b.buf)
	if least := len(b.buf) + n + 64; c < least {
		c = least
	}
	newbuf := make([]byte, len(b.buf), c)
	copy(newbuf, b.buf)
	b.buf = newbuf
}

// String returns a copy of the content written so far. The copy stays valid
// after the builder is cleared or reused.
func (b *Builder) String() string {
	return string(b.buf)
}

// Bytes returns the written content without copying. The slice aliases the
// builder's buffer and is valid only until the next mutating call.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// IntoBytes hands the underlying buffer to the caller and leaves the
// builder empty, ready for a fresh document. This is the no-copy extraction
// used to splice a finished sub-document into a parent via AddRawBytes.
func (b *Builder) IntoBytes() []byte {
	buf := b.buf
	b.buf = nil
	b.needComma = false
	return buf
}
