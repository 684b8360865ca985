package primitives

import (
	stdmath "math"

	"github.com/spaghettifunk/animacore/engine/gpu"
)

// vertexFloatCount is the number of float32 slots one interleaved Vertex
// occupies: position(3) + uv(2) + normal(3) + tangent(3) + bitangent(3) +
// entity id(1, bit-reinterpreted).
const vertexFloatCount = 15

const vertexStride = vertexFloatCount * 4

// Flatten packs the mesh's vertices into an interleaved float32 buffer
// suitable for gpu.Backend.NewVertexBuffer. The integer entity id has no
// float32 home of its own, so it travels as the raw bit pattern of a
// float32 (stdmath.Float32frombits); Layout's a_entityID attribute is
// declared AttribInt32 so the backend reads those bits back unconverted.
func (m Mesh) Flatten() []float32 {
	out := make([]float32, 0, len(m.Vertices)*vertexFloatCount)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.UV.X, v.UV.Y,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Tangent.X, v.Tangent.Y, v.Tangent.Z,
			v.Bitangent.X, v.Bitangent.Y, v.Bitangent.Z,
			stdmath.Float32frombits(uint32(v.EntityID)),
		)
	}
	return out
}

// Layout describes Vertex's interleaved attribute layout for
// gpu.VertexArray.AddAttribute calls against a compiled shader program
// (spec §4.7).
func Layout() []gpu.AttribLayout {
	return []gpu.AttribLayout{
		{Name: "a_position", Packing: 3, Type: gpu.AttribFloat32, Stride: vertexStride, Offset: 0},
		{Name: "a_uv", Packing: 2, Type: gpu.AttribFloat32, Stride: vertexStride, Offset: 3 * 4},
		{Name: "a_normal", Packing: 3, Type: gpu.AttribFloat32, Stride: vertexStride, Offset: 5 * 4},
		{Name: "a_tangent", Packing: 3, Type: gpu.AttribFloat32, Stride: vertexStride, Offset: 8 * 4},
		{Name: "a_bitangent", Packing: 3, Type: gpu.AttribFloat32, Stride: vertexStride, Offset: 11 * 4},
		{Name: "a_entityID", Packing: 1, Type: gpu.AttribInt32, Stride: vertexStride, Offset: 14 * 4},
	}
}

// BuildVertexArray uploads mesh's vertex/index data through backend and
// binds its attributes against program, returning a draw-ready
// gpu.VertexArray (spec §4.7: "constructed once and cached").
func BuildVertexArray(backend gpu.Backend, program gpu.ShaderProgram, mesh Mesh) (gpu.VertexArray, error) {
	vbo, err := backend.NewVertexBuffer(gpu.StaticDraw, mesh.Flatten())
	if err != nil {
		return nil, err
	}
	ibo, err := backend.NewIndexBuffer(mesh.Indices)
	if err != nil {
		vbo.Delete()
		return nil, err
	}

	va := backend.NewVertexArray()
	for _, layout := range Layout() {
		if err := va.AddAttribute(vbo, program, layout); err != nil {
			va.Delete()
			return nil, err
		}
	}
	va.SetIndexBuffer(ibo)
	return va, nil
}
