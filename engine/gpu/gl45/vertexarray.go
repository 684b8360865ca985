package gl45

import (
	gl "github.com/go-gl/gl/v4.5-core/gl"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

type vertexArray struct {
	id         uint32
	indexCount int
}

func (b *Backend) NewVertexArray() gpu.VertexArray {
	va := &vertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

func (v *vertexArray) Bind()   { gl.BindVertexArray(v.id) }
func (v *vertexArray) Unbind() { gl.BindVertexArray(0) }
func (v *vertexArray) Delete() { gl.DeleteVertexArrays(1, &v.id) }

func (v *vertexArray) SetIndexBuffer(ibo gpu.Buffer) {
	v.Bind()
	ibo.Bind()
	v.indexCount = ibo.Count()
}

func (v *vertexArray) IndexCount() int { return v.indexCount }

// Draw binds the array and issues a single indexed draw call over its
// full index range.
func (v *vertexArray) Draw() {
	v.Bind()
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(v.indexCount), gl.UNSIGNED_INT, 0)
}

func glAttribType(t gpu.AttribType) uint32 {
	switch t {
	case gpu.AttribInt32:
		return gl.INT
	case gpu.AttribUint32:
		return gl.UNSIGNED_INT
	default:
		return gl.FLOAT
	}
}

// AddAttribute binds vbo to the vertex attribute named in layout, located
// against program's reflected attribute table (spec §4.3).
func (v *vertexArray) AddAttribute(vbo gpu.Buffer, program gpu.ShaderProgram, layout gpu.AttribLayout) error {
	location, ok := program.AttributeLocation(layout.Name)
	if !ok {
		return core.NewError(core.KindShaderInvalidUniform, "vertex attribute %q not found in program", layout.Name)
	}
	v.Bind()
	vbo.Bind()
	gl.EnableVertexAttribArray(uint32(location))
	gl.VertexAttribPointerWithOffset(uint32(location), int32(layout.Packing), glAttribType(layout.Type),
		layout.Normalized, int32(layout.Stride), uintptr(layout.Offset))
	return glErr()
}
