package ecs

import "testing"

func TestSignatureSetClearHas(t *testing.T) {
	var s Signature
	if s.Has(3) {
		t.Fatalf("fresh signature should have no bits set")
	}
	s = s.Set(3)
	if !s.Has(3) {
		t.Fatalf("expected bit 3 set")
	}
	s = s.Set(70)
	if !s.Has(70) {
		t.Fatalf("expected bit 70 set (second word)")
	}
	s = s.Clear(3)
	if s.Has(3) || !s.Has(70) {
		t.Fatalf("clear of bit 3 should not disturb bit 70")
	}
}

func TestSignatureContainsAndIntersects(t *testing.T) {
	var full, partial, other Signature
	full = full.Set(1).Set(2).Set(3)
	partial = partial.Set(1).Set(2)
	other = other.Set(64)

	if !full.Contains(partial) {
		t.Fatalf("expected full to contain partial")
	}
	if partial.Contains(full) {
		t.Fatalf("partial should not contain full")
	}
	if full.Intersects(other) {
		t.Fatalf("full and other share no bits")
	}
	if !full.Intersects(partial) {
		t.Fatalf("full and partial share bits")
	}
}

func TestSignatureIsZeroAndEqual(t *testing.T) {
	var a, b Signature
	if !a.IsZero() {
		t.Fatalf("zero-value signature should report IsZero")
	}
	a = a.Set(5)
	if a.IsZero() {
		t.Fatalf("signature with a set bit should not report IsZero")
	}
	b = b.Set(5)
	if !a.Equal(b) {
		t.Fatalf("expected equal signatures built the same way")
	}
}
