package primitives

import "github.com/spaghettifunk/animacore/engine/math"

// Cube builds a 36-vertex cube (8 unique corners expanded per-face so every
// face gets its own flat normal), unit square uv per face, entityID baked
// into every vertex (spec §4.7, grounded on the teacher's original
// genCubeMesh in renderer/primitives/Cube.cpp).
func Cube(entityID int32) Mesh {
	x, y, z := float32(0.5), float32(0.5), float32(0.5)

	a0 := math.NewVec3(+x, +y, +z)
	a1 := math.NewVec3(-x, +y, +z)
	a2 := math.NewVec3(-x, -y, +z)
	a3 := math.NewVec3(+x, -y, +z)
	a4 := math.NewVec3(+x, +y, -z)
	a5 := math.NewVec3(-x, +y, -z)
	a6 := math.NewVec3(-x, -y, -z)
	a7 := math.NewVec3(+x, -y, -z)

	faces := [6][3]math.Vec3{
		{a1, a2, a3}, // front
		{a2, a6, a7}, // bottom
		{a6, a5, a4}, // back
		{a5, a1, a0}, // top
		{a0, a3, a7}, // right
		{a5, a6, a2}, // left
	}
	secondTri := [6][3]math.Vec3{
		{a3, a0, a1},
		{a7, a3, a2},
		{a4, a7, a6},
		{a0, a4, a5},
		{a7, a4, a0},
		{a2, a1, a5},
	}

	uv0 := math.NewVec2(0, 1)
	uv1 := math.NewVec2(0, 0)
	uv2 := math.NewVec2(1, 0)
	uv3 := math.NewVec2(1, 1)

	var verts []Vertex
	var indices []uint32
	for i := 0; i < 6; i++ {
		verts, indices = appendFace(verts, indices, faces[i][0], faces[i][1], faces[i][2], uv0, uv1, uv2, entityID)
		verts, indices = appendFace(verts, indices, secondTri[i][0], secondTri[i][1], secondTri[i][2], uv2, uv3, uv0, entityID)
	}
	return Mesh{Vertices: verts, Indices: indices}
}
