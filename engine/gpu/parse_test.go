package gpu

import (
	"strings"
	"testing"
)

func TestParseShaderSourceSplitsStages(t *testing.T) {
	src := "" +
		"#type vertex\n" +
		"#version 450\n" +
		"void main() {}\n" +
		"#type fragment\n" +
		"#version 450\n" +
		"void main() {}\n"

	vert, frag, err := ParseShaderSource(src)
	if err != nil {
		t.Fatalf("ParseShaderSource: %v", err)
	}
	if !strings.Contains(vert, "#version 450") || strings.Contains(vert, "#type") {
		t.Fatalf("unexpected vertex section: %q", vert)
	}
	if !strings.Contains(frag, "#version 450") || strings.Contains(frag, "#type") {
		t.Fatalf("unexpected fragment section: %q", frag)
	}
}

func TestParseShaderSourceRejectsUnknownStage(t *testing.T) {
	_, _, err := ParseShaderSource("#type geometry\nfoo\n")
	if err == nil {
		t.Fatalf("expected error for unrecognized stage")
	}
}

func TestParseShaderSourceRejectsEmptySource(t *testing.T) {
	_, _, err := ParseShaderSource("just some text, no #type markers\n")
	if err == nil {
		t.Fatalf("expected error when no stage sections are present")
	}
}
