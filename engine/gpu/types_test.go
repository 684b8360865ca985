package gpu

import "testing"

func TestAttributeMaskContains(t *testing.T) {
	var provided AttributeMask
	provided = provided.Set(AttrPosition).Set(AttrNormal).Set(AttrUV0)

	var required AttributeMask
	required = required.Set(AttrPosition).Set(AttrUV0)

	if !provided.Contains(required) {
		t.Fatalf("expected provided mask to be a superset of required")
	}

	required = required.Set(AttrTangent)
	if provided.Contains(required) {
		t.Fatalf("expected provided mask missing tangent to fail superset check")
	}
}

func TestTextureFormatChannels(t *testing.T) {
	cases := map[TextureFormat]int{
		FormatR8:    1,
		FormatRG8:   2,
		FormatRGB8:  3,
		FormatRGBA8: 4,
	}
	for format, want := range cases {
		if got := format.Channels(); got != want {
			t.Fatalf("format %v: Channels() = %d, want %d", format, got, want)
		}
	}
}

func TestTextureFormatIsInteger(t *testing.T) {
	if !FormatRedInteger32.IsInteger() {
		t.Fatalf("expected RedInteger32 to be an integer format")
	}
	if FormatRGBA8.IsInteger() {
		t.Fatalf("expected RGBA8 to not be an integer format")
	}
}

func TestBackendRegistryUnknownFailsWithKind(t *testing.T) {
	_, err := NewBackend("nonexistent-backend")
	if err == nil {
		t.Fatalf("expected error for unregistered backend name")
	}
}
