package primitives

import (
	m "github.com/chewxy/math32"

	"github.com/spaghettifunk/animacore/engine/math"
)

// CylinderSegments is the fixed segment count used by the cylinder
// generator (spec §4.7 suggests e.g. 8).
const CylinderSegments = 8

// Cylinder builds an indexed unit cylinder (radius 1, height 2, from
// y=-1 to y=+1): a ring of quads for the side, plus fan-triangulated top
// and bottom caps sharing an apex vertex, uv wrapping the side as
// (angle/2π, v) with v = 1 on the top ring and 0 on the bottom ring
// (spec §4.7, grounded on the teacher's original
// generateCylinderVertices/generateCylinderIndices in
// renderer/primitives/Cylinder.cpp).
func Cylinder(entityID int32) Mesh {
	n := CylinderSegments
	ringAngle := func(i int) float32 { return float32(i) / float32(n) * math.K_PI_2 }

	var verts []Vertex
	var indices []uint32

	// Side: two rings, one per height, normals pointing radially outward.
	topStart := uint32(len(verts))
	for i := 0; i < n; i++ {
		angle := ringAngle(i)
		x, z := m.Cos(angle), m.Sin(angle)
		pos := math.NewVec3(x, 1, z)
		verts = append(verts, Vertex{
			Position: pos,
			UV:       math.NewVec2(angle/math.K_PI_2, 1),
			Normal:   math.NewVec3(x, 0, z),
			EntityID: entityID,
		})
	}
	bottomStart := uint32(len(verts))
	for i := 0; i < n; i++ {
		angle := ringAngle(i)
		x, z := m.Cos(angle), m.Sin(angle)
		pos := math.NewVec3(x, -1, z)
		verts = append(verts, Vertex{
			Position: pos,
			UV:       math.NewVec2(angle/math.K_PI_2, 0),
			Normal:   math.NewVec3(x, 0, z),
			EntityID: entityID,
		})
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		a, b := topStart+uint32(i), topStart+uint32(next)
		c, d := bottomStart+uint32(i), bottomStart+uint32(next)
		indices = append(indices, a, b, c, b, d, c)
	}

	// Caps: separate ring copies so each gets a flat vertical normal,
	// fan-triangulated from the first ring vertex (the apex).
	topCapStart := uint32(len(verts))
	for i := 0; i < n; i++ {
		angle := ringAngle(i)
		x, z := m.Cos(angle), m.Sin(angle)
		verts = append(verts, Vertex{
			Position: math.NewVec3(x, 1, z),
			UV:       math.NewVec2(0.5+x*0.5, 0.5+z*0.5),
			Normal:   math.NewVec3(0, 1, 0),
			EntityID: entityID,
		})
	}
	for i := 1; i+1 < n; i++ {
		indices = append(indices, topCapStart, topCapStart+uint32(i), topCapStart+uint32(i+1))
	}

	bottomCapStart := uint32(len(verts))
	for i := 0; i < n; i++ {
		angle := ringAngle(i)
		x, z := m.Cos(angle), m.Sin(angle)
		verts = append(verts, Vertex{
			Position: math.NewVec3(x, -1, z),
			UV:       math.NewVec2(0.5+x*0.5, 0.5+z*0.5),
			Normal:   math.NewVec3(0, -1, 0),
			EntityID: entityID,
		})
	}
	for i := 1; i+1 < n; i++ {
		indices = append(indices, bottomCapStart, bottomCapStart+uint32(i+1), bottomCapStart+uint32(i))
	}

	return Mesh{Vertices: verts, Indices: indices}
}
