package jsonbuild

// comma writes the member separator if one is pending and arms the flag for
// the member that follows.
func (b *Builder) comma() {
	if b.needComma {
		b.Reserve(1)
		b.buf = append(b.buf, ',')
	}
	b.needComma = true
}

func (b *Builder) appendKey(k string) {
	b.Reserve(len(k) + 4)
	if b.needComma {
		b.buf = append(b.buf, ',')
	}
	b.buf = append(b.buf, '"')
	b.buf = append(b.buf, k...)
	b.buf = append(b.buf, '"', ':')
	b.needComma = false
}

// StartObject opens an object scope, separated from a preceding sibling if
// needed. The first member of the new scope gets no separator.
func (b *Builder) StartObject() *Builder {
	b.comma()
	b.Reserve(1)
	b.buf = append(b.buf, '{')
	b.needComma = false
	return b
}

// EndObject closes the current object scope. The enclosing scope now has a
// member, so its next sibling will be separated.
func (b *Builder) EndObject() *Builder {
	b.Reserve(1)
	b.buf = append(b.buf, '}')
	b.needComma = true
	return b
}

// StartArray opens an array scope.
func (b *Builder) StartArray() *Builder {
	b.comma()
	b.Reserve(1)
	b.buf = append(b.buf, '[')
	b.needComma = false
	return b
}

// EndArray closes the current array scope.
func (b *Builder) EndArray() *Builder {
	b.Reserve(1)
	b.buf = append(b.buf, ']')
	b.needComma = true
	return b
}

// Key writes `"k":` for a member whose value is emitted by the next call,
// typically a nested StartObject or StartArray. The key is written verbatim
// between the quotes with no escaping; keys are expected to be literal field
// names known at the call site, and a key containing a quote or backslash
// corrupts the output.
func (b *Builder) Key(k string) *Builder {
	b.appendKey(k)
	return b
}
