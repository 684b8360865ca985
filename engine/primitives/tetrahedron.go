package primitives

import "github.com/spaghettifunk/animacore/engine/math"

// Tetrahedron builds a 4-corner tetrahedron expanded to 12 flat-shaded
// vertices, one triangle per face (spec §4.7, grounded on the teacher's
// original genTetrahedronMesh in renderer/primitives/Tetrahedron.cpp).
func Tetrahedron(entityID int32) Mesh {
	const size = 1.0
	v0 := math.NewVec3(-size, -size, -size)
	v1 := math.NewVec3(size, -size, size)
	v2 := math.NewVec3(-size, size, size)
	v3 := math.NewVec3(size, size, -size)

	uvA := math.NewVec2(0.5, 1)
	uvB := math.NewVec2(0, 0)
	uvC := math.NewVec2(1, 0)

	var verts []Vertex
	var indices []uint32
	verts, indices = appendFace(verts, indices, v0, v1, v2, uvA, uvB, uvC, entityID)
	verts, indices = appendFace(verts, indices, v0, v2, v3, uvA, uvB, uvC, entityID)
	verts, indices = appendFace(verts, indices, v0, v3, v1, uvA, uvB, uvC, entityID)
	verts, indices = appendFace(verts, indices, v1, v3, v2, uvA, uvB, uvC, entityID)
	return Mesh{Vertices: verts, Indices: indices}
}
