package ecs

import "testing"

func TestEntityAllocatorReusesFreedIDs(t *testing.T) {
	a := newEntityAllocator()

	e1, err := a.acquire()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	e2, err := a.acquire()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if e1 == e2 {
		t.Fatalf("acquire returned duplicate id %d", e1)
	}

	a.release(e1)
	e3, err := a.acquire()
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	if e3 != e1 {
		t.Fatalf("expected freed id %d to be reused, got %d", e1, e3)
	}
}

func TestEntityAllocatorRejectsOverMax(t *testing.T) {
	a := newEntityAllocator()
	for i := 0; i < MaxEntities; i++ {
		if _, err := a.acquire(); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	if _, err := a.acquire(); err == nil {
		t.Fatalf("expected error acquiring beyond MaxEntities")
	}
}
