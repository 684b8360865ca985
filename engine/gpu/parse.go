package gpu

import (
	"bufio"
	"strings"

	"github.com/spaghettifunk/animacore/engine/core"
)

// Stage identifies one shader pipeline stage. Only vertex and fragment are
// recognized in this version (spec §6).
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

// ParseShaderSource splits a single shader text file into its stage
// sources. Each section is introduced by a line beginning with
// "#type <stage>"; everything until the next #type line (or EOF) belongs
// to that stage. Unknown stage names or a source with no recognized
// sections fail with core.KindShaderCreationFailed, carrying the offending
// line number.
func ParseShaderSource(src string) (vertex, fragment string, err error) {
	scanner := bufio.NewScanner(strings.NewReader(src))

	var current Stage
	var haveCurrent bool
	var builder strings.Builder
	lineNo := 0

	flush := func() {
		if !haveCurrent {
			return
		}
		switch current {
		case StageVertex:
			vertex = builder.String()
		case StageFragment:
			fragment = builder.String()
		}
		builder.Reset()
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#type") {
			flush()
			stageName := strings.TrimSpace(strings.TrimPrefix(trimmed, "#type"))
			switch stageName {
			case "vertex":
				current = StageVertex
			case "fragment":
				current = StageFragment
			default:
				return "", "", core.NewErrorAt(core.KindShaderCreationFailed, "shader source", lineNo,
					"unrecognized stage %q", stageName)
			}
			haveCurrent = true
			continue
		}
		if haveCurrent {
			builder.WriteString(line)
			builder.WriteByte('\n')
		}
	}
	flush()

	if vertex == "" && fragment == "" {
		return "", "", core.NewErrorAt(core.KindShaderCreationFailed, "shader source", lineNo,
			"no #type vertex or #type fragment section found")
	}
	return vertex, fragment, nil
}
