package core

import (
	"errors"
	"testing"
)

func TestEngineErrorFormatting(t *testing.T) {
	err := NewError(KindOutOfRange, "index %d out of range [0,%d)", 5, 3)
	if err.Kind != KindOutOfRange {
		t.Fatalf("expected KindOutOfRange, got %v", err.Kind)
	}
	want := "out-of-range: index 5 out of range [0,3)"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEngineErrorAtIncludesLocation(t *testing.T) {
	err := NewErrorAt(KindFramebufferResizeFailed, "framebuffer.go", 42, "zero dimension")
	if got := err.Error(); got != "framebuffer-resize-failed: zero dimension (framebuffer.go:42)" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestEngineErrorIsMatchesByKind(t *testing.T) {
	a := NewError(KindTextureUnsupportedFormat, "5 channels")
	b := NewError(KindTextureUnsupportedFormat, "different message")
	c := NewError(KindInvalidValue, "unrelated")

	if !errors.Is(a, b) {
		t.Fatalf("expected errors with the same Kind to match via errors.Is")
	}
	if errors.Is(a, c) {
		t.Fatalf("expected errors with different Kind to not match")
	}
}
