package jsonbuild

// appendEscaped writes s as a quoted JSON string. The scan keeps a safe-run
// start marker and bulk-copies unescaped stretches instead of appending byte
// by byte. Capacity is reserved for the worst case up front so the loop
// never grows the buffer.
//
// Control bytes below 0x20 with no two-character escape are dropped from the
// output entirely rather than encoded as \u00XX.
func (b *Builder) appendEscaped(s string) {
	b.Reserve(2*len(s) + 2)
	b.buf = append(b.buf, '"')

	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var repl string
		switch c {
		case '"':
			repl = `\"`
		case '\\':
			repl = `\\`
		case '\b':
			repl = `\b`
		case '\f':
			repl = `\f`
		case '\n':
			repl = `\n`
		case '\r':
			repl = `\r`
		case '\t':
			repl = `\t`
		default:
			if c < 0x20 {
				b.buf = append(b.buf, s[start:i]...)
				start = i + 1
			}
			continue
		}
		b.buf = append(b.buf, s[start:i]...)
		b.buf = append(b.buf, repl...)
		start = i + 1
	}

	b.buf = append(b.buf, s[start:]...)
	b.buf = append(b.buf, '"')
}
