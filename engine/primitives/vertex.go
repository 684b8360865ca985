package primitives

import "github.com/spaghettifunk/animacore/engine/math"

// Vertex is the common attribute layout emitted by every primitive
// generator: position, uv, normal, tangent, bitangent, entity id (spec §4.7).
type Vertex struct {
	Position  math.Vec3
	UV        math.Vec2
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3
	EntityID  int32
}

// Mesh is the static (position+index) output of a primitive generator,
// constructed once and intended to be uploaded to a gpu.VertexArray and
// cached by the caller.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// faceNormal returns the normalized cross product of the two outgoing
// edges (b-a) x (c-a), used to derive a flat per-face normal (spec §4.7).
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalized()
}

// appendFace appends three vertices (a flat-shaded triangle) sharing the
// same face normal and a shared uv triplet to mesh, indexing them
// sequentially (used by the unique-corner-expansion primitives: cube,
// pyramid, tetrahedron).
func appendFace(verts []Vertex, indices []uint32, a, b, c math.Vec3, uvA, uvB, uvC math.Vec2, entityID int32) ([]Vertex, []uint32) {
	n := faceNormal(a, b, c)
	base := uint32(len(verts))
	verts = append(verts,
		Vertex{Position: a, UV: uvA, Normal: n, EntityID: entityID},
		Vertex{Position: b, UV: uvB, Normal: n, EntityID: entityID},
		Vertex{Position: c, UV: uvC, Normal: n, EntityID: entityID},
	)
	indices = append(indices, base, base+1, base+2)
	return verts, indices
}
