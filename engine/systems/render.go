package systems

import (
	"github.com/spaghettifunk/animacore/engine/ecs"
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/math"
	"github.com/spaghettifunk/animacore/engine/pipeline"
	"github.com/spaghettifunk/animacore/engine/primitives"
)

// AssetResolver resolves the opaque handles stored in MeshRenderer into
// the GPU objects a draw command needs. Kept as a narrow interface
// rather than importing engine/assets directly, so this package stays a
// thin consumer of whatever asset registry the application wires in.
type AssetResolver interface {
	VertexArrayFor(handle uint32) (gpu.VertexArray, bool)
	ShaderProgramFor(handle uint32) (gpu.ShaderProgram, bool)
}

// outlineShaderHandle is looked up by the selection outline system; callers
// configure it once at startup (it has no per-entity handle since every
// selected entity uses the same outline program).
var outlineShaderHandle uint32
var outlineShaderSet bool

// SetOutlineShaderHandle registers the handle the selection outline
// system resolves via AssetResolver.
func SetOutlineShaderHandle(handle uint32) {
	outlineShaderHandle = handle
	outlineShaderSet = true
}

// MeshRenderSystem builds one DrawCommand per (renderable entity, queued
// camera) pair and appends it to that camera's pipeline (spec.md §4.6).
func MeshRenderSystem(c *ecs.Coordinator, sceneID int, resolver AssetResolver) {
	rc := ecs.Singleton[ecs.RenderContext](c)
	scenes := ecs.ComponentStore[ecs.SceneTag](c)
	meshes := ecs.ComponentStore[ecs.MeshRenderer](c)
	if rc == nil || scenes == nil || meshes == nil {
		return
	}

	meshEntities := meshes.Entities()
	for i, mr := range meshes.Dense() {
		e := meshEntities[i]
		tag, ok := scenes.Get(e)
		if !ok || tag.SceneID != sceneID || !tag.Rendered {
			continue
		}
		va, ok := resolver.VertexArrayFor(mr.Mesh)
		if !ok {
			continue
		}
		shader, ok := resolver.ShaderProgramFor(mr.Material)
		if !ok {
			continue
		}

		model := math.NewMat4Identity()
		if t := ecs.GetComponent[ecs.Transform](c, e); t != nil {
			model = t.World
		}

		for _, cam := range rc.Cameras {
			if cam.Pipeline == nil {
				continue
			}
			cam.Pipeline.PushDrawCommand(pipeline.DrawCommand{
				VertexArray: va,
				Shader:      shader,
				Uniforms: map[string]interface{}{
					"u_model":          model,
					"u_viewProjection": cam.ViewProjection,
					"u_entityID":       int32(e),
				},
				Filter: pipeline.FilterForward,
			})

			if ecs.HasComponent[ecs.Selected](c, e) && outlineShaderSet {
				outlineShader, ok := resolver.ShaderProgramFor(outlineShaderHandle)
				if ok {
					cam.Pipeline.PushDrawCommand(pipeline.DrawCommand{
						VertexArray: va,
						Shader:      outlineShader,
						Uniforms: map[string]interface{}{
							"u_model":          model,
							"u_viewProjection": cam.ViewProjection,
						},
						Filter: pipeline.FilterOutline,
					})
				}
			}
		}
	}
}

// BillboardRenderSystem builds a DrawCommand for every Billboard in the
// rendered scene, computing a face-camera model matrix for each queued
// camera via primitives.BillboardFaceRotation (spec.md §4.6).
func BillboardRenderSystem(c *ecs.Coordinator, sceneID int, resolver AssetResolver) {
	rc := ecs.Singleton[ecs.RenderContext](c)
	scenes := ecs.ComponentStore[ecs.SceneTag](c)
	billboards := ecs.ComponentStore[ecs.Billboard](c)
	if rc == nil || scenes == nil || billboards == nil {
		return
	}

	billboardEntities := billboards.Entities()
	for i, b := range billboards.Dense() {
		e := billboardEntities[i]
		tag, ok := scenes.Get(e)
		if !ok || tag.SceneID != sceneID || !tag.Rendered {
			continue
		}
		transform := ecs.GetComponent[ecs.Transform](c, e)
		if transform == nil || b.VertexArray == nil {
			continue
		}

		for _, cam := range rc.Cameras {
			if cam.Pipeline == nil {
				continue
			}
			up := math.NewVec3(0, 1, 0)
			if b.HasCustomAxis {
				up = b.CustomAxis
			}
			rotation := primitives.BillboardFaceRotation(transform.Position, cam.Position, up, b.AxisLocked)
			scale := math.NewMat4Scale(math.NewVec3(b.Width, b.Height, 1))
			translation := math.NewMat4Translation(transform.Position)
			model := scale.Mul(rotation).Mul(translation)

			cam.Pipeline.PushDrawCommand(pipeline.DrawCommand{
				VertexArray: b.VertexArray,
				Shader:      mustBillboardShader(resolver),
				Uniforms: map[string]interface{}{
					"u_model":          model,
					"u_viewProjection": cam.ViewProjection,
					"u_entityID":       int32(e),
				},
				Filter: pipeline.FilterForward,
			})
		}
	}
}

var billboardShaderHandle uint32
var billboardShaderSet bool

// SetBillboardShaderHandle registers the handle BillboardRenderSystem
// resolves for every billboard draw command.
func SetBillboardShaderHandle(handle uint32) {
	billboardShaderHandle = handle
	billboardShaderSet = true
}

func mustBillboardShader(resolver AssetResolver) gpu.ShaderProgram {
	if !billboardShaderSet {
		return nil
	}
	shader, _ := resolver.ShaderProgramFor(billboardShaderHandle)
	return shader
}
