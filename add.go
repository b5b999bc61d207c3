package jsonbuild

// The Add family writes one `"key":value` member into the current object
// scope. Keys follow the Key contract: written verbatim, never escaped.

func (b *Builder) AddInt(k string, v int64) *Builder {
	b.appendKey(k)
	b.appendInt(v)
	b.needComma = true
	return b
}

func (b *Builder) AddUint(k string, v uint64) *Builder {
	b.appendKey(k)
	b.appendUint(v)
	b.needComma = true
	return b
}

func (b *Builder) AddFloat(k string, v float64) *Builder {
	b.appendKey(k)
	b.appendFloat(v)
	b.needComma = true
	return b
}

func (b *Builder) AddBool(k string, v bool) *Builder {
	b.appendKey(k)
	b.appendBool(v)
	b.needComma = true
	return b
}

func (b *Builder) AddNull(k string) *Builder {
	b.appendKey(k)
	b.appendNull()
	b.needComma = true
	return b
}

// AddString escapes v; safe for arbitrary content.
func (b *Builder) AddString(k string, v string) *Builder {
	b.appendKey(k)
	b.appendEscaped(v)
	b.needComma = true
	return b
}

// AddStringBytes is AddString for byte-slice content, escaped without an
// intermediate string allocation.
func (b *Builder) AddStringBytes(k string, v []byte) *Builder {
	b.appendKey(k)
	b.appendEscaped(bytesView(v))
	b.needComma = true
	return b
}

// AddSafe writes v verbatim inside quotes with no scanning. The caller
// attests that v contains no characters requiring escaping.
func (b *Builder) AddSafe(k string, v string) *Builder {
	b.appendKey(k)
	b.Reserve(len(v) + 2)
	b.buf = append(b.buf, '"')
	b.buf = append(b.buf, v...)
	b.buf = append(b.buf, '"')
	b.needComma = true
	return b
}

// AddRaw splices v verbatim with no quotes and no escaping. v must be
// already-serialized JSON, e.g. the output of another builder.
func (b *Builder) AddRaw(k string, v string) *Builder {
	b.appendKey(k)
	b.Reserve(len(v))
	b.buf = append(b.buf, v...)
	b.needComma = true
	return b
}

// AddRawBytes is AddRaw for a byte-slice fragment, typically one obtained
// from IntoBytes.
func (b *Builder) AddRawBytes(k string, v []byte) *Builder {
	b.appendKey(k)
	b.Reserve(len(v))
	b.buf = append(b.buf, v...)
	b.needComma = true
	return b
}

// AddStringOrNull writes null for an empty v, else the escaped string.
func (b *Builder) AddStringOrNull(k string, v string) *Builder {
	b.appendKey(k)
	if v == "" {
		b.appendNull()
	} else {
		b.appendEscaped(v)
	}
	b.needComma = true
	return b
}

// AddStringIf writes the member only when cond holds; otherwise the call is
// a no-op and the pending-separator state is untouched.
func (b *Builder) AddStringIf(cond bool, k string, v string) *Builder {
	if cond {
		return b.AddString(k, v)
	}
	return b
}
