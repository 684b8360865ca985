package ecs

import "testing"

func TestStoreInsertGetRemovePacksContiguously(t *testing.T) {
	s := newStore[string]()

	s.Insert(Entity(1), "one")
	s.Insert(Entity(2), "two")
	s.Insert(Entity(3), "three")

	if s.Len() != 3 {
		t.Fatalf("expected len 3, got %d", s.Len())
	}

	v, ok := s.Get(Entity(2))
	if !ok || *v != "two" {
		t.Fatalf("expected to find entity 2 -> two, got %v ok=%v", v, ok)
	}

	// Remove the middle element; the last element must fill its hole and the
	// dense array must stay contiguous over [0, len).
	s.remove(Entity(2))

	if s.Len() != 2 {
		t.Fatalf("expected len 2 after remove, got %d", s.Len())
	}
	if s.has(Entity(2)) {
		t.Fatalf("entity 2 should no longer be present")
	}
	if !s.has(Entity(1)) || !s.has(Entity(3)) {
		t.Fatalf("remaining entities should still be present")
	}
	// Entity 3 (formerly last) should have moved into slot 1 (the hole).
	i, ok := s.IndexOf(Entity(3))
	if !ok || i != 1 {
		t.Fatalf("expected entity 3 moved to index 1, got index=%d ok=%v", i, ok)
	}
	if got := s.Dense()[i]; got != "three" {
		t.Fatalf("dense slot %d should hold 'three', got %q", i, got)
	}
	if got := s.Entities()[i]; got != Entity(3) {
		t.Fatalf("entities slot %d should hold entity 3, got %d", i, got)
	}
}

func TestStoreSwapKeepsIndexInSync(t *testing.T) {
	s := newStore[int]()
	s.Insert(Entity(10), 100)
	s.Insert(Entity(20), 200)

	s.swap(0, 1)

	if got := s.Dense()[0]; got != 200 {
		t.Fatalf("expected slot 0 to hold 200 after swap, got %d", got)
	}
	i, ok := s.IndexOf(Entity(20))
	if !ok || i != 0 {
		t.Fatalf("expected entity 20 at index 0 after swap, got %d ok=%v", i, ok)
	}
	i, ok = s.IndexOf(Entity(10))
	if !ok || i != 1 {
		t.Fatalf("expected entity 10 at index 1 after swap, got %d ok=%v", i, ok)
	}
}

func TestStoreRemoveOfAbsentEntityIsNoop(t *testing.T) {
	s := newStore[int]()
	s.Insert(Entity(1), 1)
	s.remove(Entity(99))
	if s.Len() != 1 {
		t.Fatalf("remove of unknown entity should not change length, got %d", s.Len())
	}
}
