package gl45

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.5-core/gl"

	"github.com/spaghettifunk/animacore/engine/gpu"
)

func glUsage(u gpu.BufferUsage) uint32 {
	switch u {
	case gpu.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gpu.StreamDraw:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

// buffer is the shared GL buffer-object wrapper behind both vertex and
// index buffers; target distinguishes ARRAY_BUFFER from ELEMENT_ARRAY_BUFFER.
type buffer struct {
	id     uint32
	target uint32
	count  int
}

func (b *buffer) Bind()   { gl.BindBuffer(b.target, b.id) }
func (b *buffer) Unbind() { gl.BindBuffer(b.target, 0) }
func (b *buffer) Delete() { gl.DeleteBuffers(1, &b.id) }
func (b *buffer) Count() int { return b.count }

// NewVertexBuffer uploads an interleaved float32 vertex buffer (spec §4.7:
// position/uv/normal/tangent/bitangent/entity-id per vertex).
func (b *Backend) NewVertexBuffer(usage gpu.BufferUsage, data []float32) (gpu.Buffer, error) {
	if len(data) == 0 {
		return nil, glErr()
	}
	buf := &buffer{target: gl.ARRAY_BUFFER, count: len(data)}
	gl.GenBuffers(1, &buf.id)
	buf.Bind()
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), glUsage(usage))
	return buf, glErr()
}

// NewIndexBuffer uploads a uint32 index buffer.
func (b *Backend) NewIndexBuffer(data []uint32) (gpu.Buffer, error) {
	if len(data) == 0 {
		return nil, glErr()
	}
	buf := &buffer{target: gl.ELEMENT_ARRAY_BUFFER, count: len(data)}
	gl.GenBuffers(1, &buf.id)
	buf.Bind()
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	return buf, glErr()
}
