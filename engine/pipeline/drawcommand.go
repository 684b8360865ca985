package pipeline

import "github.com/spaghettifunk/animacore/engine/gpu"

// FilterMask selects which passes a DrawCommand participates in (spec §4.6).
type FilterMask uint32

const (
	FilterForward FilterMask = 1 << iota
	FilterOutline
	FilterUI
	FilterPick
)

// Intersects reports whether any bit of mask is set in both m and mask.
func (m FilterMask) Intersects(mask FilterMask) bool {
	return m&mask != 0
}

// DrawCommand is a single draw request appended by a render system and
// consumed by whichever passes accept its Filter (spec §4.6).
type DrawCommand struct {
	VertexArray gpu.VertexArray
	Shader      gpu.ShaderProgram
	Uniforms    map[string]interface{}
	Filter      FilterMask
}
