package primitives

import "github.com/spaghettifunk/animacore/engine/math"

// Pyramid builds a 5-corner pyramid (square base, apex) expanded to 18
// flat-shaded vertices: 2 base triangles + 4 side triangles (spec §4.7,
// grounded on the teacher's original genPyramidMesh in
// renderer/primitives/Pyramid.cpp).
func Pyramid(entityID int32) Mesh {
	top := math.NewVec3(0, 1, 0)
	v1 := math.NewVec3(-1, -1, -1)
	v2 := math.NewVec3(1, -1, -1)
	v3 := math.NewVec3(1, -1, 1)
	v4 := math.NewVec3(-1, -1, 1)

	uvBaseA := math.NewVec2(0.5, 0)
	uvBaseB := math.NewVec2(0, 1)
	uvBaseC := math.NewVec2(1, 1)
	uvSideA := math.NewVec2(0.5, 1)
	uvSideB := math.NewVec2(0, 0)
	uvSideC := math.NewVec2(1, 0)

	var verts []Vertex
	var indices []uint32
	verts, indices = appendFace(verts, indices, v1, v2, v3, uvBaseA, uvBaseB, uvBaseC, entityID)
	verts, indices = appendFace(verts, indices, v1, v3, v4, uvBaseA, uvBaseC, uvBaseB, entityID)
	verts, indices = appendFace(verts, indices, top, v2, v1, uvSideA, uvSideB, uvSideC, entityID)
	verts, indices = appendFace(verts, indices, top, v3, v2, uvSideA, uvSideB, uvSideC, entityID)
	verts, indices = appendFace(verts, indices, top, v4, v3, uvSideA, uvSideB, uvSideC, entityID)
	verts, indices = appendFace(verts, indices, top, v1, v4, uvSideA, uvSideB, uvSideC, entityID)
	return Mesh{Vertices: verts, Indices: indices}
}
