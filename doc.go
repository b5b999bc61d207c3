// Package jsonbuild builds JSON documents incrementally into a single
// growable byte buffer, without constructing an intermediate value tree.
//
// A Builder is driven by an ordered sequence of calls: open a scope, add
// keyed members or array elements, close the scope. Each call appends the
// encoded bytes immediately, so emitting a record costs at most one buffer
// growth and zero per-field allocations. Separators between members are
// inserted automatically.
//
// The builder trusts the caller. It performs no balance checking of
// open/close calls and never escapes key text; mismatched scopes or keys
// containing reserved characters produce invalid output silently. See Key
// for the key contract and the Safe/Raw variants for the corresponding
// value-side trade-offs.
//
// A Builder must not be used from multiple goroutines concurrently.
package jsonbuild
