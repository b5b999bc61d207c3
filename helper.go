package jsonbuild

import "unsafe"

func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

// bytesView reinterprets s as a string without copying. The result must not
// outlive s.
func bytesView(s []byte) string {
	return *(*string)(noescape(unsafe.Pointer(&s)))
}
