package assets

import (
	"fmt"
	"testing"
)

func TestRegistryAcquireCachesAndIncrementsRefCount(t *testing.T) {
	loads := 0
	r := NewRegistry(func(name string) (string, error) {
		loads++
		return "payload:" + name, nil
	})

	h1, err := r.Acquire("rock.png", true)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	h2, err := r.Acquire("rock.png", true)
	if err != nil {
		t.Fatalf("Acquire (second): %v", err)
	}
	if h1 != h2 {
		t.Fatalf("expected the same handle for repeated acquires of the same name")
	}
	if loads != 1 {
		t.Fatalf("expected the loader to run once, ran %d times", loads)
	}
	if got := r.ReferenceCount(h1); got != 2 {
		t.Fatalf("expected ref count 2 after two acquires, got %d", got)
	}

	payload, ok := r.Payload(h1)
	if !ok || payload != "payload:rock.png" {
		t.Fatalf("unexpected payload %q ok=%v", payload, ok)
	}
}

func TestRegistryAutoReleaseEvictsAtZeroRefCount(t *testing.T) {
	r := NewRegistry(func(name string) (int, error) { return 42, nil })

	h, _ := r.Acquire("x", true)
	r.Release(h)

	if r.Len() != 0 {
		t.Fatalf("expected auto-release to evict the slot, registry still has %d entries", r.Len())
	}
	if _, ok := r.Payload(h); ok {
		t.Fatalf("expected Payload to report the handle as gone after auto-release")
	}
}

func TestRegistryWithoutAutoReleaseSurvivesZeroRefCount(t *testing.T) {
	r := NewRegistry(func(name string) (int, error) { return 7, nil })

	h, _ := r.Acquire("y", false)
	r.Release(h)

	if r.Len() != 1 {
		t.Fatalf("expected the slot to survive without auto-release, got len %d", r.Len())
	}
	if got := r.ReferenceCount(h); got != 0 {
		t.Fatalf("expected ref count 0, got %d", got)
	}
}

func TestRegistryAcquireFailurePropagatesLoaderError(t *testing.T) {
	r := NewRegistry(func(name string) (int, error) {
		return 0, fmt.Errorf("decode failure")
	})
	if _, err := r.Acquire("broken", true); err == nil {
		t.Fatalf("expected Acquire to surface the loader error")
	}
	if r.Len() != 0 {
		t.Fatalf("expected a failed load to register nothing, got len %d", r.Len())
	}
}
