package primitives

import (
	m "github.com/chewxy/math32"

	"github.com/spaghettifunk/animacore/engine/math"
)

var icosahedronIndices = [60]uint32{
	2, 1, 0, 1, 2, 3, 5, 4, 3, 4, 8, 3,
	7, 6, 0, 6, 9, 0, 11, 10, 4, 10, 11, 6,
	9, 5, 2, 5, 9, 11, 8, 7, 1, 7, 8, 10,
	2, 5, 3, 8, 1, 3, 9, 2, 0, 1, 7, 0,
	11, 9, 6, 7, 10, 6, 5, 11, 4, 10, 8, 4,
}

// icosahedronVertices returns the 12 unit-sphere vertices of a regular
// icosahedron (golden-ratio construction), grounded on the teacher's
// original generateSphereVertices in renderer/primitives/Sphere.cpp.
func icosahedronVertices() []math.Vec3 {
	phi := (1.0 + m.Sqrt(5.0)) * 0.5
	a := float32(1.0)
	b := float32(1.0 / phi)

	verts := []math.Vec3{
		math.NewVec3(0, b, -a),
		math.NewVec3(b, a, 0),
		math.NewVec3(-b, a, 0),
		math.NewVec3(0, b, a),
		math.NewVec3(0, -b, a),
		math.NewVec3(-a, 0, b),
		math.NewVec3(0, -b, -a),
		math.NewVec3(a, 0, -b),
		math.NewVec3(a, 0, b),
		math.NewVec3(-a, 0, -b),
		math.NewVec3(b, -a, 0),
		math.NewVec3(-b, -a, 0),
	}
	for i, v := range verts {
		verts[i] = v.Normalize()
	}
	return verts
}

type vec3Key [3]int32

// quantize keys a position for midpoint dedup at a fixed precision, local
// to one generation call (Open Question: sphere subdivision cache
// lifetime is per-call, not cross-frame/module-level).
func quantize(v math.Vec3) vec3Key {
	const scale = 1 << 16
	return vec3Key{int32(v.X * scale), int32(v.Y * scale), int32(v.Z * scale)}
}

// subdivide splits every triangle in indices into four by introducing edge
// midpoints, deduplicated by position within this call; all vertices are
// renormalized to the unit sphere after each pass (spec §4.7, grounded on
// the teacher's original loopSubdivision).
func subdivide(vertices []math.Vec3, indices []uint32, rounds int) ([]math.Vec3, []uint32) {
	for r := 0; r < rounds; r++ {
		midpoints := make(map[vec3Key]uint32)
		var newIndices []uint32

		midpointIndex := func(a, b math.Vec3) uint32 {
			mid := a.Add(b).MulScalar(0.5)
			key := quantize(mid)
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			idx := uint32(len(vertices))
			vertices = append(vertices, mid)
			midpoints[key] = idx
			return idx
		}

		for i := 0; i+2 < len(indices); i += 3 {
			v1, v2, v3 := indices[i], indices[i+1], indices[i+2]
			m1 := midpointIndex(vertices[v1], vertices[v2])
			m2 := midpointIndex(vertices[v2], vertices[v3])
			m3 := midpointIndex(vertices[v1], vertices[v3])

			newIndices = append(newIndices,
				v1, m1, m3,
				m1, v2, m2,
				m3, m2, v3,
				m1, m2, m3,
			)
		}

		for i, v := range vertices {
			vertices[i] = v.Normalize()
		}
		indices = newIndices
	}
	return vertices, indices
}

// equirectangularUV maps a unit-sphere position to a (u, v) texture
// coordinate: u = (atan2(z, x) + π)/2π, v = acos(y)/π (spec §4.7).
func equirectangularUV(p math.Vec3) math.Vec2 {
	u := (m.Atan2(p.Z, p.X) + math.K_PI) / math.K_PI_2
	v := m.Acos(math.Clamp(p.Y, -1, 1)) / math.K_PI
	return math.NewVec2(u, v)
}

// Sphere builds an indexed unit-sphere mesh by subdividing an icosahedron
// `subdivisions` times; normals equal vertex positions, uv uses an
// equirectangular projection (spec §4.7).
func Sphere(subdivisions int, entityID int32) Mesh {
	positions := icosahedronVertices()
	indices := append([]uint32(nil), icosahedronIndices[:]...)
	positions, indices = subdivide(positions, indices, subdivisions)

	verts := make([]Vertex, len(positions))
	for i, p := range positions {
		verts[i] = Vertex{
			Position: p,
			Normal:   p,
			UV:       equirectangularUV(p),
			EntityID: entityID,
		}
	}
	return Mesh{Vertices: verts, Indices: indices}
}
