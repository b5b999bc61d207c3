package jsonbuild

// The Value family writes one element into the current array scope.

func (b *Builder) ValueInt(v int64) *Builder {
	b.comma()
	b.appendInt(v)
	return b
}

func (b *Builder) ValueUint(v uint64) *Builder {
	b.comma()
	b.appendUint(v)
	return b
}

func (b *Builder) ValueFloat(v float64) *Builder {
	b.comma()
	b.appendFloat(v)
	return b
}

func (b *Builder) ValueBool(v bool) *Builder {
	b.comma()
	b.appendBool(v)
	return b
}

func (b *Builder) ValueNull() *Builder {
	b.comma()
	b.appendNull()
	return b
}

// ValueString escapes v; safe for arbitrary content.
func (b *Builder) ValueString(v string) *Builder {
	b.comma()
	b.appendEscaped(v)
	return b
}

// ValueStringBytes is ValueString for byte-slice content.
func (b *Builder) ValueStringBytes(v []byte) *Builder {
	b.comma()
	b.appendEscaped(bytesView(v))
	return b
}

// ValueSafe writes v verbatim inside quotes with no scanning; the caller
// attests that v needs no escaping.
func (b *Builder) ValueSafe(v string) *Builder {
	b.comma()
	b.Reserve(len(v) + 2)
	b.buf = append(b.buf, '"')
	b.buf = append(b.buf, v...)
	b.buf = append(b.buf, '"')
	return b
}

// ValueRaw splices already-serialized JSON verbatim, unquoted and unescaped.
func (b *Builder) ValueRaw(v string) *Builder {
	b.comma()
	b.Reserve(len(v))
	b.buf = append(b.buf, v...)
	return b
}

// ValueRawBytes is ValueRaw for a fragment obtained from IntoBytes.
func (b *Builder) ValueRawBytes(v []byte) *Builder {
	b.comma()
	b.Reserve(len(v))
	b.buf = append(b.buf, v...)
	return b
}

// ValueStringOrNull writes null for an empty v, else the escaped string.
func (b *Builder) ValueStringOrNull(v string) *Builder {
	b.comma()
	if v == "" {
		b.appendNull()
	} else {
		b.appendEscaped(v)
	}
	return b
}
