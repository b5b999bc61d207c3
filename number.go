package jsonbuild

import "strconv"

func (b *Builder) appendInt(v int64) {
	b.Reserve(24)
	if v == 0 {
		b.buf = append(b.buf, '0')
		return
	}
	// Take the magnitude through uint64 so MinInt64 negates cleanly.
	u := uint64(v)
	if v < 0 {
		b.buf = append(b.buf, '-')
		u = -u
	}
	b.appendDigits(u)
}

func (b *Builder) appendUint(v uint64) {
	b.Reserve(24)
	if v == 0 {
		b.buf = append(b.buf, '0')
		return
	}
	b.appendDigits(v)
}

// appendDigits assumes v > 0 and that space was already reserved. Digits are
// extracted least-significant-first into a scratch array sized for the 20
// digits of MaxUint64, then copied in order.
func (b *Builder) appendDigits(v uint64) {
	var tmp [20]byte
	p := len(tmp)
	for v > 0 {
		p--
		tmp[p] = '0' + byte(v%10)
		v /= 10
	}
	b.buf = append(b.buf, tmp[p:]...)
}

// appendFloat formats with 6 significant digits. This is not round-trip-safe
// for values that need full double precision.
func (b *Builder) appendFloat(v float64) {
	b.Reserve(32)
	b.buf = strconv.AppendFloat(b.buf, v, 'g', 6, 64)
}

func (b *Builder) appendBool(v bool) {
	if v {
		b.Reserve(4)
		b.buf = append(b.buf, "true"...)
	} else {
		b.Reserve(5)
		b.buf = append(b.buf, "false"...)
	}
}

func (b *Builder) appendNull() {
	b.Reserve(4)
	b.buf = append(b.buf, "null"...)
}
