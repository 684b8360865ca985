package assets

import (
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/systems"
)

// Resolver satisfies systems.AssetResolver over a pair of registries, one
// for meshes (vertex arrays) and one for materials (shader programs),
// decoupling engine/systems from knowing how assets are loaded or named.
type Resolver struct {
	Meshes    *Registry[gpu.VertexArray]
	Materials *Registry[gpu.ShaderProgram]
}

var _ systems.AssetResolver = (*Resolver)(nil)

// NewResolver wraps the given mesh and material registries.
func NewResolver(meshes *Registry[gpu.VertexArray], materials *Registry[gpu.ShaderProgram]) *Resolver {
	return &Resolver{Meshes: meshes, Materials: materials}
}

func (r *Resolver) VertexArrayFor(handle uint32) (gpu.VertexArray, bool) {
	return r.Meshes.Payload(Handle(handle))
}

func (r *Resolver) ShaderProgramFor(handle uint32) (gpu.ShaderProgram, bool) {
	return r.Materials.Payload(Handle(handle))
}
