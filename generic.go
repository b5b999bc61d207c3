package jsonbuild

import "golang.org/x/exp/constraints"

// Number covers every numeric type the builder can format.
type Number interface {
	constraints.Integer | constraints.Float
}

// appendNumber is the single polymorphic numeric write path: floats get the
// 6-significant-digit formatting, negative signed values the signed path,
// everything else the unsigned digit extraction.
func appendNumber[T Number](b *Builder, v T) {
	if T(1)/T(2) != 0 {
		b.appendFloat(float64(v))
	} else if v < 0 {
		b.appendInt(int64(v))
	} else {
		b.appendUint(uint64(v))
	}
}

// Add writes `"key":v` for any numeric v. Methods cannot take type
// parameters, so the generic entry points are package functions taking the
// builder first.
func Add[T Number](b *Builder, key string, v T) *Builder {
	b.appendKey(key)
	appendNumber(b, v)
	b.needComma = true
	return b
}

// AddIf writes the member only when cond holds; a false cond writes nothing
// and leaves the pending-separator state untouched.
func AddIf[T Number](b *Builder, cond bool, key string, v T) *Builder {
	if cond {
		return Add(b, key, v)
	}
	return b
}

// AddOrNull writes null when val equals the caller-chosen undefined
// sentinel, else the formatted value.
func AddOrNull[T Number](b *Builder, key string, val, undefined T) *Builder {
	b.appendKey(key)
	if val == undefined {
		b.appendNull()
	} else {
		appendNumber(b, val)
	}
	b.needComma = true
	return b
}

// Value writes a numeric array element.
func Value[T Number](b *Builder, v T) *Builder {
	b.comma()
	appendNumber(b, v)
	return b
}

// ValueOrNull writes null when val equals the undefined sentinel, else the
// formatted element.
func ValueOrNull[T Number](b *Builder, val, undefined T) *Builder {
	b.comma()
	if val == undefined {
		b.appendNull()
	} else {
		appendNumber(b, val)
	}
	return b
}
