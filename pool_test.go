package jsonbuild

import "testing"

func Test_BorrowReturn(t *testing.T) {
	b := Borrow()
	if b.Len() != 0 {
		t.Fatalf("borrowed builder not empty: %d bytes", b.Len())
	}
	b.StartObject().AddInt("a", 1).EndObject()
	Return(b)

	b2 := Borrow()
	if b2.Len() != 0 {
		t.Errorf("reused builder not cleared: %q", b2.String())
	}
	b2.StartObject().EndObject()
	if got := b2.String(); got != "{}" {
		t.Errorf("reused builder produced %q", got)
	}
	Return(b2)
}

func Test_ReturnOversized(t *testing.T) {
	b := NewBuilder(maxPooledCap + 1)
	b.StartArray().EndArray()
	// Must be dropped, not pooled; only observable effect is no panic and no
	// clearing of the caller's view.
	Return(b)
	if got := b.String(); got != "[]" {
		t.Errorf("oversized builder was cleared: %q", got)
	}
}
