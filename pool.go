package jsonbuild

import "sync"

// Builders past this capacity are not returned to the pool, so a single
// oversized document cannot pin its buffer forever.
const maxPooledCap = 1 << 16

var builderPool = sync.Pool{
	New: func() any {
		return NewBuilder(512)
	},
}

// Borrow fetches a cleared builder from the shared pool.
func Borrow() *Builder {
	return builderPool.Get().(*Builder)
}

// Return clears b and puts it back in the pool. b must not be used after
// Return; slices obtained from Bytes alias a buffer the next borrower will
// overwrite.
func Return(b *Builder) {
	if b.Cap() > maxPooledCap {
		return
	}
	b.Clear()
	builderPool.Put(b)
}
