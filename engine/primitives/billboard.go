package primitives

import "github.com/spaghettifunk/animacore/engine/math"

// Billboard builds a single 2-triangle quad facing +Z with origin-top-left
// corner uvs (spec §4.7, grounded on the teacher's original
// genBillboardMesh in renderer/primitives/Billboard.cpp).
func Billboard(entityID int32) Mesh {
	bl := math.NewVec3(-0.5, -0.5, 0)
	br := math.NewVec3(0.5, -0.5, 0)
	tr := math.NewVec3(0.5, 0.5, 0)
	tl := math.NewVec3(-0.5, 0.5, 0)

	uvBL := math.NewVec2(0, 1)
	uvBR := math.NewVec2(1, 1)
	uvTR := math.NewVec2(1, 0)
	uvTL := math.NewVec2(0, 0)

	forward := math.NewVec3(0, 0, 1)
	verts := []Vertex{
		{Position: bl, UV: uvBL, Normal: forward, EntityID: entityID},
		{Position: br, UV: uvBR, Normal: forward, EntityID: entityID},
		{Position: tr, UV: uvTR, Normal: forward, EntityID: entityID},
		{Position: tr, UV: uvTR, Normal: forward, EntityID: entityID},
		{Position: tl, UV: uvTL, Normal: forward, EntityID: entityID},
		{Position: bl, UV: uvBL, Normal: forward, EntityID: entityID},
	}
	indices := []uint32{0, 1, 2, 3, 4, 5}
	return Mesh{Vertices: verts, Indices: indices}
}

// BillboardFaceRotation computes the face-camera rotation for a billboard
// at billboardPosition looking toward cameraPosition: a look vector from
// billboard to camera (optionally constrained to the horizontal plane),
// orthonormalized into right/up, producing a basis whose columns are
// (right, up, -look) to preserve winding (spec §4.6, grounded on the
// teacher's original calculateBillboardRotation). This is the sole source
// of truth for billboard facing; render systems call it rather than
// recomputing the rotation themselves.
func BillboardFaceRotation(billboardPosition, cameraPosition, cameraUp math.Vec3, constrainToY bool) math.Mat4 {
	look := cameraPosition.Sub(billboardPosition).Normalized()
	if constrainToY {
		look.Y = 0
		look = look.Normalized()
	}
	right := cameraUp.Cross(look).Normalized()
	up := look.Cross(right)

	var mat math.Mat4
	mat.Data[0], mat.Data[1], mat.Data[2], mat.Data[3] = right.X, right.Y, right.Z, 0
	mat.Data[4], mat.Data[5], mat.Data[6], mat.Data[7] = up.X, up.Y, up.Z, 0
	mat.Data[8], mat.Data[9], mat.Data[10], mat.Data[11] = -look.X, -look.Y, -look.Z, 0
	mat.Data[12], mat.Data[13], mat.Data[14], mat.Data[15] = 0, 0, 0, 1
	return mat
}
